package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress             string
	DatabaseURI            string
	JWTSecret              string
	AdminEmail             string
	AdminPasswordHash      string
	UploadDir              string
	StaticDir              string
	PaymentProviderAddress string
	CartTTL                time.Duration
	CartSweepInterval      time.Duration
	CartSweepBatch         int
	ShutdownTimeout        time.Duration
}

const (
	defaultRunAddress        = ":8080"
	defaultJWTSecret         = "change-me-in-production"
	defaultUploadDir         = "public/uploads"
	defaultStaticDir         = "public/static"
	defaultCartTTL           = 72 * time.Hour
	defaultCartSweepInterval = 15 * time.Minute
	defaultCartSweepBatch    = 500
	defaultShutdownTimeout   = 10 * time.Second
)

// Load parses configuration from flags and environment variables.
func Load() (*Config, error) {
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:             getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		DatabaseURI:            getString(lookup, "DATABASE_URI", ""),
		JWTSecret:              getString(lookup, "JWT_SECRET", defaultJWTSecret),
		AdminEmail:             getString(lookup, "ADMIN_EMAIL", ""),
		AdminPasswordHash:      getString(lookup, "ADMIN_PASSWORD_HASH", ""),
		UploadDir:              getString(lookup, "UPLOAD_DIR", defaultUploadDir),
		StaticDir:              getString(lookup, "STATIC_DIR", defaultStaticDir),
		PaymentProviderAddress: getString(lookup, "PAYMENT_PROVIDER_ADDRESS", ""),
		CartTTL:                getDuration(lookup, "CART_TTL", defaultCartTTL),
		CartSweepInterval:      getDuration(lookup, "CART_SWEEP_INTERVAL", defaultCartSweepInterval),
		CartSweepBatch:         getInt(lookup, "CART_SWEEP_BATCH", defaultCartSweepBatch),
		ShutdownTimeout:        getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
	}

	fs := flag.NewFlagSet("bandstand", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		cartTTLStr         = cfg.CartTTL.String()
		sweepIntervalStr   = cfg.CartSweepInterval.String()
		shutdownTimeoutStr = cfg.ShutdownTimeout.String()
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN")
	fs.StringVar(&cfg.JWTSecret, "jwt-secret", cfg.JWTSecret, "Secret for signing auth tokens")
	fs.StringVar(&cfg.AdminEmail, "admin-email", cfg.AdminEmail, "Admin account email")
	fs.StringVar(&cfg.UploadDir, "upload-dir", cfg.UploadDir, "Managed image upload directory")
	fs.StringVar(&cfg.StaticDir, "static-dir", cfg.StaticDir, "Secondary static image directory")
	fs.StringVar(&cfg.PaymentProviderAddress, "payment-provider", cfg.PaymentProviderAddress, "Payment provider base URL (empty disables verification)")
	fs.StringVar(&cartTTLStr, "cart-ttl", cartTTLStr, "Lifetime of idle cart lines")
	fs.StringVar(&sweepIntervalStr, "cart-sweep-interval", sweepIntervalStr, "Interval between stale cart sweeps")
	fs.IntVar(&cfg.CartSweepBatch, "cart-sweep-batch", cfg.CartSweepBatch, "Maximum cart lines removed per sweep")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.CartTTL, err = time.ParseDuration(cartTTLStr); err != nil {
		return nil, fmt.Errorf("invalid cart ttl: %w", err)
	}

	if cfg.CartSweepInterval, err = time.ParseDuration(sweepIntervalStr); err != nil {
		return nil, fmt.Errorf("invalid cart sweep interval: %w", err)
	}

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if secretFile, ok := lookup("JWT_SECRET_FILE"); ok && secretFile != "" {
		content, err := os.ReadFile(secretFile)
		if err != nil {
			return nil, fmt.Errorf("read jwt secret file: %w", err)
		}
		cfg.JWTSecret = string(content)
	}

	// ADMIN_PASSWORD is a development convenience; production deployments
	// pass a precomputed bcrypt hash.
	if cfg.AdminPasswordHash == "" {
		if password, ok := lookup("ADMIN_PASSWORD"); ok && password != "" {
			hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
			if err != nil {
				return nil, fmt.Errorf("hash admin password: %w", err)
			}
			cfg.AdminPasswordHash = string(hash)
		}
	}

	if cfg.CartSweepBatch <= 0 {
		cfg.CartSweepBatch = defaultCartSweepBatch
	}

	if cfg.CartTTL <= 0 {
		cfg.CartTTL = defaultCartTTL
	}

	if cfg.CartSweepInterval <= 0 {
		cfg.CartSweepInterval = defaultCartSweepInterval
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI must be provided")
	}

	if cfg.AdminEmail == "" {
		return nil, fmt.Errorf("admin email must be provided")
	}

	if cfg.AdminPasswordHash == "" {
		return nil, fmt.Errorf("admin password hash must be provided")
	}

	return cfg, nil
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getInt(lookup envLookup, key string, def int) int {
	if v, ok := lookup(key); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

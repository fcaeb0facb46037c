package usecase

import (
	"strings"

	"github.com/bandstand/bandstand/internal/config"
	domainErrors "github.com/bandstand/bandstand/internal/domain/errors"
	pkgAuth "github.com/bandstand/bandstand/internal/pkg/auth"
)

// adminUserID is the identifier encoded into tokens for the single
// configured admin identity.
const adminUserID = 1

// AuthUseCase checks credentials against the configured admin identity
// and manages session tokens.
type AuthUseCase struct {
	adminEmail string
	adminHash  string
	hasher     pkgAuth.PasswordHasher
	tokens     pkgAuth.Strategy
}

// NewAuthUseCase constructs AuthUseCase from configuration.
func NewAuthUseCase(cfg *config.Config, hasher pkgAuth.PasswordHasher, strategy pkgAuth.Strategy) *AuthUseCase {
	return &AuthUseCase{
		adminEmail: cfg.AdminEmail,
		adminHash:  cfg.AdminPasswordHash,
		hasher:     hasher,
		tokens:     strategy,
	}
}

// Authenticate validates admin credentials and returns a session token.
func (u *AuthUseCase) Authenticate(email, password string) (string, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return "", domainErrors.ErrInvalidCredentials
	}

	if !strings.EqualFold(email, u.adminEmail) {
		return "", domainErrors.ErrInvalidCredentials
	}

	if err := u.hasher.Compare(u.adminHash, password); err != nil {
		return "", domainErrors.ErrInvalidCredentials
	}

	return u.tokens.IssueToken(pkgAuth.Identity{UserID: adminUserID, Email: u.adminEmail})
}

// ParseToken extracts identity from provided token.
func (u *AuthUseCase) ParseToken(token string) (*pkgAuth.Identity, error) {
	if token == "" {
		return nil, pkgAuth.ErrInvalidToken
	}
	return u.tokens.ParseToken(token)
}

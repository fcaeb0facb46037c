package payment

import (
	"io"
	"log/slog"
	"testing"

	"github.com/bandstand/bandstand/internal/config"
)

func TestNewClientUsesConfig(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	client, err := newClient(clientParams{Config: &config.Config{PaymentProviderAddress: "http://example.com"}, Logger: logger})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := client.(*HTTPClient); !ok {
		t.Fatalf("expected *HTTPClient, got %T", client)
	}
}

func TestNewClientWithoutAddressTrusts(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	client, err := newClient(clientParams{Config: &config.Config{}, Logger: logger})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := client.(TrustingClient); !ok {
		t.Fatalf("expected TrustingClient, got %T", client)
	}
}

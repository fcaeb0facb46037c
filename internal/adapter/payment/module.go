package payment

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/bandstand/bandstand/internal/config"
)

// Module exposes the payment client implementation to the fx graph.
// Without a configured provider address the trusting client is used and
// no server-side verification happens.
var Module = fx.Provide(newClient)

type clientParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newClient(p clientParams) (Client, error) {
	if p.Config.PaymentProviderAddress == "" {
		return TrustingClient{}, nil
	}
	return NewHTTPClient(p.Config.PaymentProviderAddress, p.Logger)
}

package di

import (
	"go.uber.org/fx"

	"github.com/bandstand/bandstand/internal/adapter/payment"
	"github.com/bandstand/bandstand/internal/app"
	"github.com/bandstand/bandstand/internal/assets"
	"github.com/bandstand/bandstand/internal/config"
	"github.com/bandstand/bandstand/internal/logger"
	"github.com/bandstand/bandstand/internal/pkg/auth"
	"github.com/bandstand/bandstand/internal/server/http/handlers"
	"github.com/bandstand/bandstand/internal/server/http/router"
	"github.com/bandstand/bandstand/internal/storage/postgres"
	"github.com/bandstand/bandstand/internal/usecase"
)

// Module assembles the whole application graph. Options passed in are
// appended last so tests can replace any provided component.
func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		payment.Module,
		assets.Module,
		usecase.Module,
		fx.Provide(func(f *app.SiteFacade) handlers.SiteFacade { return f }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}

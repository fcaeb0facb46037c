package assets

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/bandstand/bandstand/internal/config"
)

// Module wires the image asset manager into the fx graph.
var Module = fx.Provide(newManager)

type managerParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newManager(p managerParams) (*Manager, error) {
	return NewManager(p.Config.UploadDir, p.Config.StaticDir, p.Logger)
}

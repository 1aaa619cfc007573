package analyzer

import (
	"context"
	"log/slog"

	"github.com/kanoonai/kanoon-web/internal/module"
	"github.com/kanoonai/kanoon-web/internal/modules/feature"
	"github.com/kanoonai/kanoon-web/internal/registry"
	"github.com/kanoonai/kanoon-web/internal/storage"
	"github.com/labstack/echo/v4"
)

// Deps adds upload staging to the shared module dependencies.
type Deps struct {
	feature.Deps
	Stager   *storage.Stager
	MaxBytes int64
}

// Module implements module.Module for the FIR and evidence analyzer.
type Module struct {
	module.BaseModule
	deps Deps
}

// New creates the analyzer module.
func New(deps Deps) *Module {
	return &Module{deps: deps}
}

// Name returns the module name.
func (m *Module) Name() string {
	return featureName
}

// Boot sets up the analyzer routes.
func (m *Module) Boot(ctx context.Context, g *echo.Group, reg *registry.Registry) error {
	slog.Info("Booting analyzer module: setting up routes...")
	guard := registry.MustGet(reg, registry.InflightGuardKey)
	handler := NewHandler(m.deps, registry.MustGet(reg, registry.RecorderKey))

	g.GET("", handler.Get)
	g.POST("", handler.Post, guard.Inflight(m.Name()))
	return nil
}

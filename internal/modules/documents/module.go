package documents

import (
	"context"
	"log/slog"

	"github.com/kanoonai/kanoon-web/internal/module"
	"github.com/kanoonai/kanoon-web/internal/modules/feature"
	"github.com/kanoonai/kanoon-web/internal/registry"
	"github.com/labstack/echo/v4"
)

// Module implements module.Module for the legal document generator.
type Module struct {
	module.BaseModule
	deps feature.Deps
}

// New creates the document generator module.
func New(deps feature.Deps) *Module {
	return &Module{deps: deps}
}

// Name returns the module name.
func (m *Module) Name() string {
	return featureName
}

// Boot sets up the document generator routes.
func (m *Module) Boot(ctx context.Context, g *echo.Group, reg *registry.Registry) error {
	slog.Info("Booting document generator module: setting up routes...")
	guard := registry.MustGet(reg, registry.InflightGuardKey)
	handler := NewHandler(m.deps, registry.MustGet(reg, registry.RecorderKey))

	g.GET("", handler.Get)
	g.GET("/party", handler.Party)
	g.POST("", handler.Post, guard.Inflight(m.Name()))
	return nil
}

package learning

import (
	"context"
	"log/slog"

	"github.com/kanoonai/kanoon-web/internal/module"
	"github.com/kanoonai/kanoon-web/internal/modules/feature"
	"github.com/kanoonai/kanoon-web/internal/registry"
	"github.com/labstack/echo/v4"
)

// Module implements module.Module for the law student hub.
type Module struct {
	module.BaseModule
	deps feature.Deps
}

// New creates the learning hub module.
func New(deps feature.Deps) *Module {
	return &Module{deps: deps}
}

// Name returns the module name.
func (m *Module) Name() string {
	return featureName
}

// Boot sets up the learning hub routes. All three tools share one
// in-flight slot.
func (m *Module) Boot(ctx context.Context, g *echo.Group, reg *registry.Registry) error {
	slog.Info("Booting learning hub module: setting up routes...")
	guard := registry.MustGet(reg, registry.InflightGuardKey)
	handler := NewHandler(m.deps, registry.MustGet(reg, registry.RecorderKey))

	g.GET("", handler.Get)
	g.GET("/:tool", handler.Tool)
	g.POST("/"+Simplify, handler.Simplify, guard.Inflight(m.Name()))
	g.POST("/"+Evaluate, handler.Evaluate, guard.Inflight(m.Name()))
	g.POST("/"+Research, handler.Research, guard.Inflight(m.Name()))
	return nil
}

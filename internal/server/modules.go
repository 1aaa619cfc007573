package server

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/kanoonai/kanoon-web/internal/middleware"
	"github.com/kanoonai/kanoon-web/internal/module"
	"github.com/kanoonai/kanoon-web/internal/routes"
)

// InitModules registers every module with the registry and then boots each
// one on its own group under /dashboard/<name>. The session requirement
// applies to the whole group.
func (s *Server) InitModules(ctx context.Context, mods []module.Module) error {
	reg := s.Kernel.Registry

	for _, m := range mods {
		if err := m.Register(reg); err != nil {
			return fmt.Errorf("register module %s: %w", m.Name(), err)
		}
	}

	requireSession := middleware.RequireSession(s.Kernel.Sessions, routes.Login, s.Cfg.DashboardRequireLogin)
	for _, m := range mods {
		group := s.E.Group(routes.DashboardRoot+"/"+m.Name(), requireSession)
		if err := m.Boot(ctx, group, reg); err != nil {
			return fmt.Errorf("boot module %s: %w", m.Name(), err)
		}
		slog.Debug("Module booted", "module", m.Name())
	}

	s.modules = mods
	return nil
}

// shutdownModules gives every module a chance to release its resources.
func (s *Server) shutdownModules(ctx context.Context) {
	for _, m := range s.modules {
		if err := m.Shutdown(ctx); err != nil {
			slog.Error("Module shutdown failed", "module", m.Name(), "error", err)
		}
	}
}

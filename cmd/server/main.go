package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/kanoonai/kanoon-web/internal/app"
	"github.com/kanoonai/kanoon-web/internal/config"
	"github.com/kanoonai/kanoon-web/internal/logging"
	"github.com/kanoonai/kanoon-web/internal/rendering"
	"github.com/kanoonai/kanoon-web/internal/server"
	"github.com/labstack/echo/v4"
)

func main() {
	cfg := config.New()
	logging.New()

	ctx := context.Background()
	kernel, err := server.NewKernel(ctx, cfg)
	if err != nil {
		slog.Error("Failed to initialize core services", "error", err)
		os.Exit(1)
	}

	renderer := rendering.NewUniversalRenderer()
	s, err := server.New(server.Dependencies{
		Config:   cfg,
		Echo:     echo.New(),
		Renderer: renderer,
		Kernel:   kernel,
	})
	if err != nil {
		slog.Error("Failed to create server", "error", err)
		os.Exit(1)
	}

	if err := s.InitModules(ctx, app.NewModules(kernel.ModuleDeps(renderer))); err != nil {
		slog.Error("Failed to initialize modules", "error", err)
		os.Exit(1)
	}
	s.RegisterRoutes()

	s.Start()
}

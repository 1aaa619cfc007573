package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

const shutdownTimeout = 10 * time.Second

// Start runs the HTTP server until an interrupt or terminate signal, then
// shuts down the listener, the modules and the kernel in that order.
func (s *Server) Start() {
	go func() {
		slog.Info("Starting server", "addr", s.Cfg.Addr, "backend", s.Cfg.APIBaseURL)
		if err := s.E.Start(s.Cfg.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.E.Logger.Fatalf("shutting down the server: %v", err)
		}
	}()

	waitForShutdown()
	slog.Info("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.E.Shutdown(ctx); err != nil {
		slog.Error("HTTP server shutdown failed", "error", err)
	}
	s.shutdownModules(ctx)
	if err := s.Kernel.Close(ctx); err != nil {
		slog.Error("Kernel shutdown failed", "error", err)
	}
}

// waitForShutdown blocks until the process is asked to stop.
func waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
}

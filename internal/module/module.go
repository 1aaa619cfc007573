// Package module defines the lifecycle every dashboard tool follows.
package module

import (
	"context"

	"github.com/kanoonai/kanoon-web/internal/registry"
	"github.com/labstack/echo/v4"
)

// Module is one dashboard tool (chatbot, summarizer, notices...). The server
// calls Register on every module, then Boot on each, then Shutdown on exit.
type Module interface {
	// Name is the route slug under /dashboard and the key for activity counts.
	Name() string

	Register(reg *registry.Registry) error

	// Boot mounts the tool's handlers on router, which is already guarded by
	// the session check and prefixed with /dashboard/<name>.
	Boot(ctx context.Context, router *echo.Group, reg *registry.Registry) error

	Shutdown(ctx context.Context) error
}

// BaseModule is embedded by tools that need no Register or Shutdown step.
type BaseModule struct{}

func (BaseModule) Register(*registry.Registry) error { return nil }

func (BaseModule) Boot(context.Context, *echo.Group, *registry.Registry) error { return nil }

func (BaseModule) Shutdown(context.Context) error { return nil }

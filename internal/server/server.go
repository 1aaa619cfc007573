package server

import (
	"errors"

	"github.com/google/uuid"
	"github.com/kanoonai/kanoon-web/internal/config"
	appmiddleware "github.com/kanoonai/kanoon-web/internal/middleware"
	"github.com/kanoonai/kanoon-web/internal/module"
	"github.com/kanoonai/kanoon-web/internal/rendering"
	"github.com/kanoonai/kanoon-web/internal/session"
	"github.com/kanoonai/kanoon-web/internal/validation"
	echosession "github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// Dependencies are the collaborators the server is built from.
type Dependencies struct {
	Config   *config.Config
	Echo     *echo.Echo
	Renderer rendering.Renderer
	Kernel   *Kernel
}

// Server holds the dependencies for the HTTP server.
type Server struct {
	E        *echo.Echo
	Cfg      *config.Config
	Renderer rendering.Renderer
	Kernel   *Kernel

	modules []module.Module
}

// New creates a Server and installs the global middleware chain.
func New(deps Dependencies) (*Server, error) {
	if deps.Config == nil || deps.Echo == nil || deps.Renderer == nil || deps.Kernel == nil {
		return nil, errors.New("server: config, echo, renderer and kernel are required")
	}

	e := deps.Echo
	e.HideBanner = true
	e.Validator = validation.New()

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(appmiddleware.Logger)
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(echosession.Middleware(session.NewBackingStore(deps.Config)))
	e.Use(appmiddleware.Visitor(deps.Kernel.Sessions))

	setupErrorHandling(e)

	return &Server{
		E:        e,
		Cfg:      deps.Config,
		Renderer: deps.Renderer,
		Kernel:   deps.Kernel,
	}, nil
}

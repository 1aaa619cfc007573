package server

import (
	"net/http"

	"github.com/kanoonai/kanoon-web/internal/activity"
	"github.com/kanoonai/kanoon-web/internal/handlers"
	"github.com/kanoonai/kanoon-web/internal/middleware"
	"github.com/kanoonai/kanoon-web/internal/routes"
	"github.com/kanoonai/kanoon-web/web"
	"github.com/kanoonai/kanoon-web/web/src/templates/pages"
	"github.com/labstack/echo/v4"
)

// HealthResponse is served at /health.
type HealthResponse struct {
	Status      string                     `json:"status"`
	Submissions map[string]activity.Counts `json:"submissions"`
}

// RegisterRoutes sets up the public pages, the auth flows, the dashboard
// index redirect, static assets and the health check.
func (s *Server) RegisterRoutes() {
	public := handlers.NewPageHandler(s.Renderer)
	authHandler := handlers.NewAuthHandler(s.Kernel.Backend, s.Kernel.Sessions, s.Renderer)
	rateLimiter := middleware.RateLimiter(s.Cfg.AuthAttemptsPerMinute)

	s.E.StaticFS("/static", echo.MustSubFS(web.FS, "static"))

	s.E.GET(routes.Home, public.Home)
	s.E.GET(routes.About, public.About)
	s.E.GET(routes.Terms, public.Info(pages.Terms))
	s.E.GET(routes.Privacy, public.Info(pages.Privacy))
	s.E.GET(routes.Support, public.Info(pages.Support))
	s.E.GET(routes.ReportIssue, public.Info(pages.ReportIssue))

	s.E.GET(routes.Login, authHandler.LoginGet)
	s.E.POST(routes.Login, authHandler.LoginPost, rateLimiter)

	s.E.GET(routes.Signup, authHandler.SignupGet)
	s.E.POST(routes.Signup, authHandler.SignupPost, rateLimiter)
	s.E.POST(pages.SignupStrengthPath, authHandler.SignupStrength)

	s.E.GET(routes.Logout, authHandler.Logout)
	s.E.POST(routes.Logout, authHandler.Logout)

	s.E.GET(routes.ForgotPassword, authHandler.ForgotPasswordGet)
	s.E.POST(routes.ForgotPassword, authHandler.ForgotPasswordPost, rateLimiter)

	s.E.GET(routes.ResetPassword, authHandler.ResetPasswordGet)
	s.E.POST(routes.ResetPassword, authHandler.ResetPasswordPost, rateLimiter)

	// The index always resolves to the chatbot, with or without a session.
	toChatbot := func(c echo.Context) error {
		return c.Redirect(http.StatusSeeOther, routes.Chatbot)
	}
	s.E.GET(routes.DashboardRoot, toChatbot)
	s.E.GET(routes.DashboardRoot+"/", toChatbot)

	s.E.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, HealthResponse{
			Status:      "ok",
			Submissions: s.Kernel.Tally.Snapshot(),
		})
	})
}

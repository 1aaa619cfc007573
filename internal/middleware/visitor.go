package middleware

import (
	"github.com/kanoonai/kanoon-web/internal/session"
	"github.com/labstack/echo/v4"
)

// Visitor gives every browser a visitor id on its first request, so page
// loads settle the id before any form can be submitted. It must run after
// the session middleware.
func Visitor(store session.Store) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			store.VisitorID(c)
			return next(c)
		}
	}
}

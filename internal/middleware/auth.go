package middleware

import (
	"net/http"

	"github.com/kanoonai/kanoon-web/internal/domain"
	"github.com/kanoonai/kanoon-web/internal/session"
	"github.com/labstack/echo/v4"
)

const UserContextKey = "user"

// RequireSession protects dashboard pages. Anonymous visitors are
// redirected to loginPath. With enabled false every visitor passes and the
// shell renders placeholder identity values.
func RequireSession(store session.Store, loginPath string, enabled bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, ok := store.Load(c)
			if ok {
				c.Set(UserContextKey, user)
				return next(c)
			}

			if !enabled {
				return next(c)
			}

			// htmx follows 3xx transparently and would swap the login page
			// into a fragment target; HX-Redirect forces a full navigation.
			if c.Request().Header.Get("HX-Request") == "true" {
				c.Response().Header().Set("HX-Redirect", loginPath)
				return c.NoContent(http.StatusUnauthorized)
			}
			return c.Redirect(http.StatusSeeOther, loginPath)
		}
	}
}

// CurrentUser returns the Session stored by RequireSession, or nil for
// anonymous visitors.
func CurrentUser(c echo.Context) *domain.Session {
	user, _ := c.Get(UserContextKey).(*domain.Session)
	return user
}

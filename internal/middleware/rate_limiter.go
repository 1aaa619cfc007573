package middleware

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
)

const rateLimitedMessage = "Too many requests. Please try again later."

// RateLimiter throttles the credential forms (login, signup, password
// reset) to perMinute submissions per client IP. The whole allowance may be
// used at once; it then refills evenly over the minute.
func RateLimiter(perMinute int) echo.MiddlewareFunc {
	if perMinute <= 0 {
		perMinute = 1
	}
	store := middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
		Rate:      rate.Every(time.Minute / time.Duration(perMinute)),
		Burst:     perMinute,
		ExpiresIn: 3 * time.Minute,
	})

	return middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Store: store,
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		DenyHandler: func(c echo.Context, ip string, err error) error {
			FromContext(c.Request().Context()).Warn("Auth form rate limited", "ip", ip)
			return c.String(http.StatusTooManyRequests, rateLimitedMessage)
		},
	})
}

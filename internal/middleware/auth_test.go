package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/sessions"
	"github.com/kanoonai/kanoon-web/internal/domain"
	"github.com/kanoonai/kanoon-web/internal/session"
	echosession "github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSessionSecret = "a-very-secret-key-for-testing-!"

// newTestApp wires the session middleware and a login route that stores
// a Session, so later requests can replay its cookie.
func newTestApp(store session.Store, mw echo.MiddlewareFunc) *echo.Echo {
	e := echo.New()
	e.Use(echosession.Middleware(sessions.NewCookieStore([]byte(testSessionSecret))))

	e.GET("/test-login", func(c echo.Context) error {
		return store.Save(c, &domain.Session{Name: "A", Email: "a@x.com"})
	})
	e.GET("/dashboard/chatbot", func(c echo.Context) error {
		user := CurrentUser(c)
		if user == nil {
			return c.String(http.StatusOK, "anonymous")
		}
		return c.String(http.StatusOK, user.Name)
	}, mw)
	return e
}

func loginCookies(t *testing.T, e *echo.Echo) []*http.Cookie {
	t.Helper()
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/test-login", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)
	return cookies
}

func TestRequireSession(t *testing.T) {
	store := session.NewStore()

	t.Run("redirects anonymous visitors to login", func(t *testing.T) {
		e := newTestApp(store, RequireSession(store, "/login", true))

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/dashboard/chatbot", nil))

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/login", rec.Header().Get(echo.HeaderLocation))
	})

	t.Run("htmx requests get HX-Redirect", func(t *testing.T) {
		e := newTestApp(store, RequireSession(store, "/login", true))

		req := httptest.NewRequest(http.MethodGet, "/dashboard/chatbot", nil)
		req.Header.Set("HX-Request", "true")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "/login", rec.Header().Get("HX-Redirect"))
	})

	t.Run("allows a visitor with a session", func(t *testing.T) {
		e := newTestApp(store, RequireSession(store, "/login", true))

		req := httptest.NewRequest(http.MethodGet, "/dashboard/chatbot", nil)
		for _, cookie := range loginCookies(t, e) {
			req.AddCookie(cookie)
		}
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "A", rec.Body.String())
	})

	t.Run("disabled guard lets anonymous visitors through", func(t *testing.T) {
		e := newTestApp(store, RequireSession(store, "/login", false))

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/dashboard/chatbot", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "anonymous", rec.Body.String())
	})
}

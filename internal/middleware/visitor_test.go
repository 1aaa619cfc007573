package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/sessions"
	"github.com/kanoonai/kanoon-web/internal/session"
	echosession "github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVisitorIsAssignedOnFirstPageLoad(t *testing.T) {
	store := session.NewStore()

	e := echo.New()
	e.Use(echosession.Middleware(sessions.NewCookieStore([]byte(testSessionSecret))))
	e.Use(Visitor(store))
	e.GET("/dashboard/chatbot", func(c echo.Context) error {
		return c.String(http.StatusOK, store.VisitorID(c))
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/dashboard/chatbot", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	first := rec.Body.String()
	require.NotEmpty(t, first)
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1, "an existing id is not saved again")

	again := httptest.NewRequest(http.MethodGet, "/dashboard/chatbot", nil)
	again.AddCookie(cookies[0])
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, again)

	assert.Equal(t, first, rec.Body.String())
	assert.Empty(t, rec.Result().Cookies())
}

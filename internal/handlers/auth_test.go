package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gorilla/sessions"
	"github.com/kanoonai/kanoon-web/internal/domain"
	"github.com/kanoonai/kanoon-web/internal/handlers"
	"github.com/kanoonai/kanoon-web/internal/rendering"
	"github.com/kanoonai/kanoon-web/internal/routes"
	kanoonsession "github.com/kanoonai/kanoon-web/internal/session"
	"github.com/kanoonai/kanoon-web/internal/testutils"
	"github.com/kanoonai/kanoon-web/internal/validation"
	"github.com/kanoonai/kanoon-web/web/src/templates/pages"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const whoamiPath = "/_test/whoami"

type authApp struct {
	e    *echo.Echo
	fake *testutils.Backend
}

func setupAuthTest(t *testing.T, backendHandler http.HandlerFunc) *authApp {
	t.Helper()
	fake := testutils.NewBackend(t, backendHandler)

	e := echo.New()
	e.Validator = validation.New()
	e.Use(session.Middleware(sessions.NewCookieStore([]byte(testutils.SessionSecret))))

	store := kanoonsession.NewStore()
	renderer := rendering.NewUniversalRenderer()
	auth := handlers.NewAuthHandler(fake.Client, store, renderer)
	public := handlers.NewPageHandler(renderer)

	e.GET(routes.Home, public.Home)
	e.GET(routes.Terms, public.Info(pages.Terms))
	e.GET(routes.Login, auth.LoginGet)
	e.POST(routes.Login, auth.LoginPost)
	e.GET(routes.Signup, auth.SignupGet)
	e.POST(routes.Signup, auth.SignupPost)
	e.POST(pages.SignupStrengthPath, auth.SignupStrength)
	e.GET(routes.ForgotPassword, auth.ForgotPasswordGet)
	e.POST(routes.ForgotPassword, auth.ForgotPasswordPost)
	e.GET(routes.ResetPassword, auth.ResetPasswordGet)
	e.POST(routes.ResetPassword, auth.ResetPasswordPost)
	e.POST(routes.Logout, auth.Logout)
	e.GET(whoamiPath, func(c echo.Context) error {
		user, ok := store.Load(c)
		if !ok {
			return c.NoContent(http.StatusNoContent)
		}
		return c.JSON(http.StatusOK, user)
	})

	return &authApp{e: e, fake: fake}
}

func (a *authApp) do(method, path string, form url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	a.e.ServeHTTP(rec, req)
	return rec
}

func (a *authApp) whoami(t *testing.T, cookies []*http.Cookie) *domain.Session {
	t.Helper()
	rec := a.do(http.MethodGet, whoamiPath, nil, cookies...)
	if rec.Code == http.StatusNoContent {
		return nil
	}
	var user domain.Session
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&user))
	return &user
}

func TestLoginStoresSessionAndRedirects(t *testing.T) {
	app := setupAuthTest(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/login", r.URL.Path)
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "a@x.com", body["email"])
		assert.Equal(t, "secret", body["password"])
		testutils.JSON(w, http.StatusOK, `{"name":"A","email":"a@x.com"}`)
	})

	rec := app.do(http.MethodPost, routes.Login, url.Values{"email": {"a@x.com"}, "password": {"secret"}})
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, routes.Chatbot, rec.Header().Get(echo.HeaderLocation))

	user := app.whoami(t, testutils.Cookies(rec))
	require.NotNil(t, user)
	assert.Equal(t, domain.Session{Name: "A", Email: "a@x.com"}, *user)
}

func TestLoginFailureKeepsEmail(t *testing.T) {
	app := setupAuthTest(t, func(w http.ResponseWriter, r *http.Request) {
		testutils.JSON(w, http.StatusUnauthorized, `{"detail":"Invalid email or password"}`)
	})

	rec := app.do(http.MethodPost, routes.Login, url.Values{"email": {"a@x.com"}, "password": {"bad"}})
	require.Equal(t, http.StatusOK, rec.Code)
	body := testutils.Body(t, rec)
	assert.Contains(t, body, "Invalid email or password")
	assert.Contains(t, body, `value="a@x.com"`)
	assert.Nil(t, app.whoami(t, testutils.Cookies(rec)))
}

func TestLoginRequiresBothFields(t *testing.T) {
	app := setupAuthTest(t, func(w http.ResponseWriter, r *http.Request) {})

	rec := app.do(http.MethodPost, routes.Login, url.Values{"email": {"a@x.com"}})
	assert.Contains(t, testutils.Body(t, rec), "Please enter your email and password.")
	assert.Equal(t, 0, app.fake.Calls())
}

func TestSignupChecksRunInOrder(t *testing.T) {
	app := setupAuthTest(t, func(w http.ResponseWriter, r *http.Request) {})

	valid := func() url.Values {
		return url.Values{
			"name":             {"Asha"},
			"email":            {"asha@example.com"},
			"phone_number":     {"9876543210"},
			"gender":           {"Female"},
			"password":         {"Secret#123"},
			"confirm_password": {"Secret#123"},
			"terms":            {"on"},
		}
	}

	tests := []struct {
		name    string
		edit    func(url.Values)
		message string
	}{
		{"weak beats mismatch", func(v url.Values) { v.Set("password", "short"); v.Set("confirm_password", "other") }, "Password is too weak. Please choose a stronger password."},
		{"mismatch", func(v url.Values) { v.Set("confirm_password", "Secret#124") }, "Passwords do not match. Please re-enter."},
		{"gender", func(v url.Values) { v.Del("gender") }, "Please select your gender."},
		{"phone", func(v url.Values) { v.Set("phone_number", "") }, "Please enter your phone number."},
		{"terms", func(v url.Values) { v.Del("terms") }, "You must agree to the Terms &amp; Conditions."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := valid()
			tt.edit(form)
			rec := app.do(http.MethodPost, routes.Signup, form)
			require.Equal(t, http.StatusOK, rec.Code)
			body := testutils.Body(t, rec)
			assert.Contains(t, body, tt.message)
			assert.Contains(t, body, `value="asha@example.com"`)
		})
	}
	assert.Equal(t, 0, app.fake.Calls())
}

func TestSignupSuccess(t *testing.T) {
	app := setupAuthTest(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/signup", r.URL.Path)
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "9876543210", body["phone_number"])
		assert.Equal(t, "Female", body["gender"])
		testutils.JSON(w, http.StatusCreated, `{"id":3,"name":"Asha","email":"asha@example.com","phone_number":"9876543210","gender":"Female","created_at":"2025-01-01"}`)
	})

	rec := app.do(http.MethodPost, routes.Signup, url.Values{
		"name":             {"Asha"},
		"email":            {"asha@example.com"},
		"phone_number":     {"9876543210"},
		"gender":           {"Female"},
		"password":         {"Secret#123"},
		"confirm_password": {"Secret#123"},
		"terms":            {"on"},
	})
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, routes.Chatbot, rec.Header().Get(echo.HeaderLocation))

	user := app.whoami(t, testutils.Cookies(rec))
	require.NotNil(t, user)
	assert.Equal(t, domain.Session{ID: 3, Name: "Asha", Email: "asha@example.com", Phone: "9876543210", Gender: "Female"}, *user)
}

func TestSignupStrength(t *testing.T) {
	app := setupAuthTest(t, func(w http.ResponseWriter, r *http.Request) {})

	rec := app.do(http.MethodPost, pages.SignupStrengthPath, url.Values{"password": {"password1"}})
	body := testutils.Body(t, rec)
	assert.Contains(t, body, `data-score="2"`)
	assert.Contains(t, body, "Medium")
	assert.NotContains(t, body, "<html")
}

func TestForgotPasswordShowsMessage(t *testing.T) {
	app := setupAuthTest(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/forgot-password", r.URL.Path)
		testutils.JSON(w, http.StatusOK, `{"message":"Reset link sent to your email."}`)
	})

	rec := app.do(http.MethodPost, routes.ForgotPassword, url.Values{"email": {"a@x.com"}})
	assert.Contains(t, testutils.Body(t, rec), "Reset link sent to your email.")
}

func TestResetPassword(t *testing.T) {
	app := setupAuthTest(t, func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "tok", body["token"])
		assert.Equal(t, "longenough", body["new_password"])
		testutils.JSON(w, http.StatusOK, `{"message":"Password updated"}`)
	})

	t.Run("missing token", func(t *testing.T) {
		rec := app.do(http.MethodGet, routes.ResetPassword, nil)
		assert.Contains(t, testutils.Body(t, rec), "No reset token found. Please use the link from your email.")
	})

	t.Run("form carries token", func(t *testing.T) {
		rec := app.do(http.MethodGet, routes.ResetPassword+"?token=tok", nil)
		assert.Contains(t, testutils.Body(t, rec), `name="token" value="tok"`)
	})

	tests := []struct {
		name    string
		form    url.Values
		message string
	}{
		{"mismatch", url.Values{"token": {"tok"}, "password": {"longenough"}, "confirm_password": {"different"}}, "Passwords do not match."},
		{"too short", url.Values{"token": {"tok"}, "password": {"short"}, "confirm_password": {"short"}}, "Password must be at least 8 characters."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := app.do(http.MethodPost, routes.ResetPassword, tt.form)
			assert.Contains(t, testutils.Body(t, rec), tt.message)
		})
	}
	assert.Equal(t, 0, app.fake.Calls())

	rec := app.do(http.MethodPost, routes.ResetPassword, url.Values{"token": {"tok"}, "password": {"longenough"}, "confirm_password": {"longenough"}})
	body := testutils.Body(t, rec)
	assert.Contains(t, body, "Password Updated!")
	assert.Contains(t, body, `content="3;url=/login"`)
	assert.Equal(t, 1, app.fake.Calls())
}

func TestLogoutClearsSession(t *testing.T) {
	app := setupAuthTest(t, func(w http.ResponseWriter, r *http.Request) {
		testutils.JSON(w, http.StatusOK, `{"name":"A","email":"a@x.com"}`)
	})

	login := app.do(http.MethodPost, routes.Login, url.Values{"email": {"a@x.com"}, "password": {"secret"}})
	cookies := testutils.Cookies(login)
	require.NotNil(t, app.whoami(t, cookies))

	rec := app.do(http.MethodPost, routes.Logout, nil, cookies...)
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, routes.Home, rec.Header().Get(echo.HeaderLocation))

	after := testutils.Cookies(rec)
	assert.Nil(t, app.whoami(t, after))

	home := app.do(http.MethodGet, routes.Home, nil, after...)
	assert.Contains(t, testutils.Body(t, home), "You have been logged out.")
}

func TestPublicPagesCarryScrollReset(t *testing.T) {
	app := setupAuthTest(t, func(w http.ResponseWriter, r *http.Request) {})

	for _, path := range []string{routes.Home, routes.Terms, routes.Login, routes.Signup, routes.ForgotPassword} {
		t.Run(path, func(t *testing.T) {
			rec := app.do(http.MethodGet, path, nil)
			require.Equal(t, http.StatusOK, rec.Code)
			assert.Contains(t, testutils.Body(t, rec), `<script src="/static/kanoon.js" defer>`)
		})
	}
}

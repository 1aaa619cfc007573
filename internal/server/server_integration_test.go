package server_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/kanoonai/kanoon-web/internal/activity"
	"github.com/kanoonai/kanoon-web/internal/app"
	"github.com/kanoonai/kanoon-web/internal/rendering"
	"github.com/kanoonai/kanoon-web/internal/routes"
	"github.com/kanoonai/kanoon-web/internal/server"
	"github.com/kanoonai/kanoon-web/internal/testutils"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupIntegrationTest builds the whole application the way cmd/server
// does, pointed at a fake backend.
func setupIntegrationTest(t *testing.T, backendHandler http.HandlerFunc) (*server.Server, *testutils.Backend) {
	t.Helper()

	fake := testutils.NewBackend(t, backendHandler)
	cfg := testutils.ConfigForTests(t)
	cfg.APIBaseURL = fake.Server.URL

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	kernel, err := server.NewKernel(ctx, cfg)
	require.NoError(t, err)
	t.Cleanup(func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = kernel.Close(shutdownCtx)
	})

	renderer := rendering.NewUniversalRenderer()
	s, err := server.New(server.Dependencies{
		Config:   cfg,
		Echo:     echo.New(),
		Renderer: renderer,
		Kernel:   kernel,
	})
	require.NoError(t, err)

	require.NoError(t, s.InitModules(ctx, app.NewModules(kernel.ModuleDeps(renderer))))
	s.RegisterRoutes()
	return s, fake
}

func serve(s *server.Server, req *http.Request, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	s.E.ServeHTTP(rec, req)
	return rec
}

func postForm(s *server.Server, path string, form url.Values, htmx bool, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	if htmx {
		req.Header.Set("HX-Request", "true")
	}
	return serve(s, req, cookies...)
}

func login(t *testing.T, s *server.Server) []*http.Cookie {
	t.Helper()
	rec := postForm(s, routes.Login, url.Values{"email": {"a@x.com"}, "password": {"secret"}}, false)
	require.Equal(t, http.StatusSeeOther, rec.Code)
	require.Equal(t, routes.Chatbot, rec.Header().Get(echo.HeaderLocation))
	return testutils.Cookies(rec)
}

func TestDashboardIndexRedirectsToChatbot(t *testing.T) {
	s, _ := setupIntegrationTest(t, func(w http.ResponseWriter, r *http.Request) {})

	for _, path := range []string{"/dashboard", "/dashboard/"} {
		t.Run(path, func(t *testing.T) {
			rec := serve(s, httptest.NewRequest(http.MethodGet, path, nil))
			assert.Equal(t, http.StatusSeeOther, rec.Code)
			assert.Equal(t, routes.Chatbot, rec.Header().Get(echo.HeaderLocation))
		})
	}
}

func TestDashboardRequiresLogin(t *testing.T) {
	s, _ := setupIntegrationTest(t, func(w http.ResponseWriter, r *http.Request) {})

	rec := serve(s, httptest.NewRequest(http.MethodGet, routes.FAQBuilder, nil))
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, routes.Login, rec.Header().Get(echo.HeaderLocation))

	req := httptest.NewRequest(http.MethodPost, routes.FAQBuilder, nil)
	req.Header.Set("HX-Request", "true")
	rec = serve(s, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, routes.Login, rec.Header().Get("HX-Redirect"))
}

func TestLoginThenUseATool(t *testing.T) {
	s, fake := setupIntegrationTest(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/auth/login":
			testutils.JSON(w, http.StatusOK, `{"name":"A","email":"a@x.com"}`)
		case "/api/v1/faq/generate-from-topic":
			testutils.JSON(w, http.StatusOK, `{"faqs":[{"question":"Q1","answer":"A1"}]}`)
		default:
			http.NotFound(w, r)
		}
	})
	cookies := login(t, s)

	page := serve(s, httptest.NewRequest(http.MethodGet, routes.Chatbot, nil), cookies...)
	require.Equal(t, http.StatusOK, page.Code)
	body := testutils.Body(t, page)
	assert.Contains(t, body, "a@x.com")
	assert.Contains(t, body, "Legal Query Chatbot")

	rec := postForm(s, routes.FAQBuilder, url.Values{"topic": {"RERA"}}, true, cookies...)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, strings.Count(testutils.Body(t, rec), "<details"))
	assert.Equal(t, 2, fake.Calls())

	assert.Eventually(t, func() bool {
		return s.Kernel.Tally.Snapshot()["faq-builder"] == activity.Counts{Succeeded: 1}
	}, 2*time.Second, 10*time.Millisecond)
}

func TestConcurrentSubmitAfterLoginReachesBackendOnce(t *testing.T) {
	var faqCalls atomic.Int32
	entered := make(chan struct{})
	unblock := make(chan struct{})
	s, _ := setupIntegrationTest(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/auth/login":
			testutils.JSON(w, http.StatusOK, `{"name":"A","email":"a@x.com"}`)
		case "/api/v1/faq/generate-from-topic":
			if faqCalls.Add(1) == 1 {
				close(entered)
				<-unblock
			}
			testutils.JSON(w, http.StatusOK, `{"faqs":[{"question":"Q1","answer":"A1"}]}`)
		default:
			http.NotFound(w, r)
		}
	})
	cookies := login(t, s)
	form := url.Values{"topic": {"RERA"}}

	var wg sync.WaitGroup
	var first *httptest.ResponseRecorder
	wg.Add(1)
	go func() {
		defer wg.Done()
		first = postForm(s, routes.FAQBuilder, form, true, cookies...)
	}()

	select {
	case <-entered:
	case <-time.After(2 * time.Second):
		close(unblock)
		t.Fatal("first submission never reached the backend")
	}

	second := postForm(s, routes.FAQBuilder, form, true, cookies...)
	close(unblock)
	wg.Wait()

	assert.Equal(t, http.StatusConflict, second.Code)
	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, int32(1), faqCalls.Load())
}

func TestHealthReportsSubmissions(t *testing.T) {
	s, _ := setupIntegrationTest(t, func(w http.ResponseWriter, r *http.Request) {})
	s.Kernel.Tally.Add(activity.Submission{Feature: "chatbot", Outcome: activity.Failed})

	rec := serve(s, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var health server.HealthResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&health))
	assert.Equal(t, "ok", health.Status)
	assert.Equal(t, activity.Counts{Failed: 1}, health.Submissions["chatbot"])
}

func TestPublicPagesAndAssets(t *testing.T) {
	s, _ := setupIntegrationTest(t, func(w http.ResponseWriter, r *http.Request) {})

	for _, path := range []string{routes.Home, routes.About, routes.Terms, routes.Privacy, routes.Support, routes.ReportIssue, routes.Login, routes.Signup, routes.ForgotPassword, routes.ResetPassword} {
		t.Run(path, func(t *testing.T) {
			rec := serve(s, httptest.NewRequest(http.MethodGet, path, nil))
			require.Equal(t, http.StatusOK, rec.Code)
			assert.Contains(t, testutils.Body(t, rec), "/static/kanoon.js")
		})
	}

	rec := serve(s, httptest.NewRequest(http.MethodGet, "/static/kanoon.js", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, testutils.Body(t, rec), "scrollTo(0, 0)")
}

func TestUnknownPageRendersErrorPage(t *testing.T) {
	s, _ := setupIntegrationTest(t, func(w http.ResponseWriter, r *http.Request) {})

	rec := serve(s, httptest.NewRequest(http.MethodGet, "/no-such-page", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	body := testutils.Body(t, rec)
	assert.Contains(t, body, "Not Found")
	assert.Contains(t, body, "Back to Home")
}

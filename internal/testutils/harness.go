package testutils

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gorilla/sessions"
	"github.com/kanoonai/kanoon-web/internal/activity"
	"github.com/kanoonai/kanoon-web/internal/backend"
	"github.com/kanoonai/kanoon-web/internal/domain"
	"github.com/kanoonai/kanoon-web/internal/middleware"
	"github.com/kanoonai/kanoon-web/internal/module"
	"github.com/kanoonai/kanoon-web/internal/modules/feature"
	"github.com/kanoonai/kanoon-web/internal/pubsub"
	"github.com/kanoonai/kanoon-web/internal/registry"
	"github.com/kanoonai/kanoon-web/internal/rendering"
	"github.com/kanoonai/kanoon-web/internal/routes"
	kanoonsession "github.com/kanoonai/kanoon-web/internal/session"
	"github.com/kanoonai/kanoon-web/internal/validation"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace/noop"
)

// SessionSecret signs the cookies of every test harness.
const SessionSecret = "a-very-secret-key-for-testing-!"

const signInPath = "/_test/sign-in"

// Harness mounts dashboard modules on an echo instance the way the server
// does, minus the login requirement.
type Harness struct {
	E        *echo.Echo
	Deps     feature.Deps
	Registry *registry.Registry
	Tally    *activity.Tally
}

// NewHarness builds modules from the shared dependencies and boots them
// against client.
func NewHarness(t *testing.T, client *backend.Client, build ...func(feature.Deps) module.Module) *Harness {
	t.Helper()

	e := echo.New()
	e.Validator = validation.New()
	e.Use(session.Middleware(sessions.NewCookieStore([]byte(SessionSecret))))
	e.Use(middleware.Logger)

	store := kanoonsession.NewStore()
	deps := feature.Deps{
		Backend:  client,
		Renderer: rendering.NewUniversalRenderer(),
		Sessions: store,
	}

	bus := pubsub.NewWatermillBridge(noop.NewTracerProvider().Tracer("test"))
	t.Cleanup(func() { _ = bus.Close() })
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	tally := activity.NewTally()
	require.NoError(t, tally.Subscribe(ctx, bus))
	recorder := activity.NewRecorder(bus)
	reg := registry.New(ConfigForTests(t))
	registry.Set(reg, registry.RecorderKey, recorder)
	registry.Set(reg, registry.TallyKey, tally)
	registry.Set(reg, registry.InflightGuardKey, middleware.NewInflightGuard(store, recorder))

	e.Use(middleware.Visitor(store))
	e.POST(signInPath, func(c echo.Context) error {
		if email := c.FormValue("email"); email != "" {
			if err := store.Save(c, &domain.Session{Name: c.FormValue("name"), Email: email}); err != nil {
				return err
			}
		}
		return c.NoContent(http.StatusNoContent)
	})

	mods := make([]module.Module, 0, len(build))
	for _, b := range build {
		m := b(deps)
		require.NoError(t, m.Register(reg))
		mods = append(mods, m)
	}
	for _, m := range mods {
		group := e.Group(routes.DashboardRoot+"/"+m.Name(), middleware.RequireSession(store, routes.Login, false))
		require.NoError(t, m.Boot(ctx, group, reg))
	}

	return &Harness{E: e, Deps: deps, Registry: reg, Tally: tally}
}

// Visitor returns cookies for a fresh visitor, signed in as user when set.
func (h *Harness) Visitor(t *testing.T, user *domain.Session) []*http.Cookie {
	t.Helper()
	form := url.Values{}
	if user != nil {
		form.Set("name", user.Name)
		form.Set("email", user.Email)
	}
	rec := h.Do(httptest.NewRequest(http.MethodPost, signInPath, strings.NewReader(form.Encode())), form)
	require.Equal(t, http.StatusNoContent, rec.Code)
	return Cookies(rec)
}

// Cookies returns the response cookies, keeping only the last Set-Cookie
// for each name the way a browser would. A handler that saves a session more
// than once emits one header per save.
func Cookies(rec *httptest.ResponseRecorder) []*http.Cookie {
	index := map[string]int{}
	var out []*http.Cookie
	for _, ck := range rec.Result().Cookies() {
		if i, seen := index[ck.Name]; seen {
			out[i] = ck
			continue
		}
		index[ck.Name] = len(out)
		out = append(out, ck)
	}
	return out
}

// Do serves req. A non-nil form marks the body as url-encoded.
func (h *Harness) Do(req *http.Request, form url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	if form != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	h.E.ServeHTTP(rec, req)
	return rec
}

// PostForm submits form to path as an htmx request.
func (h *Harness) PostForm(path string, form url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("HX-Request", "true")
	return h.Do(req, form, cookies...)
}

// Post submits form to path as a plain browser form post.
func (h *Harness) Post(path string, form url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	return h.Do(httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode())), form, cookies...)
}

// Upload posts content as the multipart file field of an htmx request.
// An empty filename sends the form without a file.
func (h *Harness) Upload(t *testing.T, path, field, filename, content string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	if filename != "" {
		part, err := w.CreateFormFile(field, filename)
		require.NoError(t, err)
		_, err = io.WriteString(part, content)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, path, body)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())
	req.Header.Set("HX-Request", "true")
	return h.Do(req, nil, cookies...)
}

// Get fetches path as a full page.
func (h *Harness) Get(path string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	return h.Do(httptest.NewRequest(http.MethodGet, path, nil), nil, cookies...)
}

// Body reads the whole response body.
func Body(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	b, err := io.ReadAll(rec.Result().Body)
	require.NoError(t, err)
	return string(b)
}

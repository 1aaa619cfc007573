package rendering

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

func TestRenderComponent(t *testing.T) {
	r := NewUniversalRenderer()
	ctx := context.Background()

	t.Run("gomponents node", func(t *testing.T) {
		out, err := r.RenderComponent(ctx, h.P(g.Text("Q1")))
		require.NoError(t, err)
		assert.Equal(t, "<p>Q1</p>", string(out))
	})

	t.Run("templ component", func(t *testing.T) {
		comp := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
			_, err := io.WriteString(w, "<span>ok</span>")
			return err
		})
		out, err := r.RenderComponent(ctx, comp)
		require.NoError(t, err)
		assert.Equal(t, "<span>ok</span>", string(out))
	})

	t.Run("unsupported type", func(t *testing.T) {
		_, err := r.RenderComponent(ctx, 42)
		assert.Error(t, err)
	})
}

func TestRenderPage(t *testing.T) {
	e := echo.New()
	r := NewUniversalRenderer()
	e.Renderer = r

	e.GET("/page", func(c echo.Context) error {
		return r.RenderPage(c, http.StatusAccepted, h.Div(g.Text("hello")))
	})
	e.GET("/render", func(c echo.Context) error {
		return c.Render(http.StatusOK, "", h.Div(g.Text("via echo")))
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/page", nil))
	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, "<div>hello</div>", rec.Body.String())
	assert.Contains(t, rec.Header().Get(echo.HeaderContentType), "text/html")

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/render", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "<div>via echo</div>", rec.Body.String())
}

package handlers

import (
	"net/http"

	"github.com/kanoonai/kanoon-web/internal/rendering"
	"github.com/kanoonai/kanoon-web/internal/view"
	"github.com/kanoonai/kanoon-web/web/src/templates/layouts"
	"github.com/kanoonai/kanoon-web/web/src/templates/pages"
	"github.com/labstack/echo/v4"
	g "maragu.dev/gomponents"
)

// PageHandler serves the static public pages.
type PageHandler struct {
	renderer rendering.Renderer
}

func NewPageHandler(renderer rendering.Renderer) *PageHandler {
	return &PageHandler{renderer: renderer}
}

func (h *PageHandler) Home(c echo.Context) error {
	return renderPublic(c, h.renderer, "Home", http.StatusOK, pages.HomeContent())
}

func (h *PageHandler) About(c echo.Context) error {
	return renderPublic(c, h.renderer, "About", http.StatusOK, pages.AboutContent())
}

// Info returns a handler for one of the policy documents.
func (h *PageHandler) Info(page pages.InfoPage) echo.HandlerFunc {
	return func(c echo.Context) error {
		return renderPublic(c, h.renderer, page.Title, http.StatusOK, page)
	}
}

// renderPublic wraps content in the public layout together with any
// pending flash messages.
func renderPublic(c echo.Context, r rendering.Renderer, title string, status int, content g.Node) error {
	page := layouts.Base(title, view.GetFlashData(c), view.AdaptGomponentToTempl(content))
	return r.RenderPage(c, status, page)
}

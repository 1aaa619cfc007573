// Package feature holds the request plumbing shared by the dashboard modules.
package feature

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/kanoonai/kanoon-web/internal/activity"
	"github.com/kanoonai/kanoon-web/internal/backend"
	"github.com/kanoonai/kanoon-web/internal/domain"
	"github.com/kanoonai/kanoon-web/internal/middleware"
	"github.com/kanoonai/kanoon-web/internal/rendering"
	"github.com/kanoonai/kanoon-web/internal/session"
	"github.com/kanoonai/kanoon-web/internal/storage"
	"github.com/kanoonai/kanoon-web/internal/view"
	"github.com/kanoonai/kanoon-web/web/src/templates/layouts"
	"github.com/labstack/echo/v4"
	g "maragu.dev/gomponents"
)

// Deps are the services every dashboard module needs.
type Deps struct {
	Backend  *backend.Client
	Renderer rendering.Renderer
	Sessions session.Store
}

// IsHTMX reports whether the request was issued by htmx.
func IsHTMX(c echo.Context) bool {
	return c.Request().Header.Get("HX-Request") == "true"
}

// Page renders content inside the dashboard shell for path.
func Page(c echo.Context, r rendering.Renderer, path string, content g.Node) error {
	shell := layouts.Shell{
		Path:  path,
		User:  middleware.CurrentUser(c),
		Flash: view.GetFlashData(c),
	}
	return r.RenderPage(c, http.StatusOK, layouts.Dashboard(shell, view.AdaptGomponentToTempl(content)))
}

// Respond renders the result region alone for htmx, or the whole page
// built around it for a plain form post.
func Respond(c echo.Context, r rendering.Renderer, path string, region g.Node, page func(region g.Node) g.Node) error {
	if IsHTMX(c) {
		return r.RenderPage(c, http.StatusOK, region)
	}
	return Page(c, r, path, page(region))
}

// Record publishes the outcome of one backend call for the visitor.
func Record(c echo.Context, rec *activity.Recorder, sessions session.Store, name string, err error) {
	outcome := activity.Succeeded
	if err != nil {
		outcome = activity.Failed
	}
	rec.Record(c.Request().Context(), sessions.VisitorID(c), name, outcome)
}

// Log writes a backend failure to the request logger. Validation errors
// are expected and not logged.
func Log(c echo.Context, name string, err error) {
	if err == nil || errors.Is(err, domain.ErrValidation) {
		return
	}
	middleware.FromContext(c.Request().Context()).Warn("Feature request failed", "feature", name, "error", err)
}

// StageUpload hands the named multipart file to the stager after the local
// type and size checks. missing is shown when no file was sent.
func StageUpload(c echo.Context, stager *storage.Stager, visitorID, field, missing string, maxBytes int64) (*storage.Staged, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, domain.Invalid(missing)
		}
		return nil, fmt.Errorf("read upload: %w", err)
	}
	if err := backend.CheckUpload(fh.Filename, fh.Size, maxBytes); err != nil {
		return nil, err
	}
	return stager.Stage(c.Request().Context(), visitorID, fh)
}

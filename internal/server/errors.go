package server

import (
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"
	"strconv"

	"github.com/kanoonai/kanoon-web/internal/middleware"
	"github.com/kanoonai/kanoon-web/internal/routes"
	"github.com/kanoonai/kanoon-web/internal/view"
	"github.com/kanoonai/kanoon-web/web/src/templates/layouts"
	"github.com/labstack/echo/v4"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// setupErrorHandling installs the HTTP error handler. Errors echo already
// knows about keep their status; anything else is logged with a stack trace
// and answered with 500.
func setupErrorHandling(e *echo.Echo) {
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		message := http.StatusText(code)

		var he *echo.HTTPError
		if errors.As(err, &he) {
			code = he.Code
			message = fmt.Sprint(he.Message)
			if he.Internal != nil {
				middleware.FromContext(c.Request().Context()).Error("Request failed", "status", code, "error", he.Internal)
			}
		} else {
			middleware.FromContext(c.Request().Context()).Error("Internal Server Error (Unhandled)",
				"error", err,
				"stack_trace", string(debug.Stack()),
			)
		}

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(code)
		} else if c.Request().Header.Get("HX-Request") == "true" {
			err = c.String(code, message)
		} else {
			err = renderError(c, code, message)
		}
		if err != nil {
			e.Logger.Error(err)
		}
	}
}

func renderError(c echo.Context, code int, message string) error {
	content := h.Div(h.Class("card auth-card"),
		h.H1(g.Text(strconv.Itoa(code))),
		h.P(g.Text(message)),
		h.A(h.Class("btn btn-primary"), h.Href(routes.Home), g.Text("Back to Home")),
	)
	page := layouts.Base(http.StatusText(code), view.FlashData{}, view.AdaptGomponentToTempl(content))

	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(code)
	return page.Render(c.Request().Context(), c.Response())
}

package chatbot

import (
	"net/http"
	"strings"

	"github.com/kanoonai/kanoon-web/internal/activity"
	"github.com/kanoonai/kanoon-web/internal/modules/feature"
	"github.com/kanoonai/kanoon-web/internal/routes"
	"github.com/labstack/echo/v4"
	g "maragu.dev/gomponents"
)

// Handler serves the chatbot page.
type Handler struct {
	deps     feature.Deps
	recorder *activity.Recorder
}

func NewHandler(deps feature.Deps, recorder *activity.Recorder) *Handler {
	return &Handler{deps: deps, recorder: recorder}
}

// Get renders the conversation with the greeting only. Past exchanges live
// in the browser DOM.
func (h *Handler) Get(c echo.Context) error {
	return feature.Page(c, h.deps.Renderer, routes.Chatbot, page(nil))
}

// Post asks the backend and appends the exchange to the log.
func (h *Handler) Post(c echo.Context) error {
	query := strings.TrimSpace(c.FormValue("query"))
	if query == "" {
		if feature.IsHTMX(c) {
			return c.NoContent(http.StatusNoContent)
		}
		return c.Redirect(http.StatusSeeOther, routes.Chatbot)
	}

	reply := Message{Sender: AI}
	answer, err := h.deps.Backend.Query(c.Request().Context(), query)
	feature.Record(c, h.recorder, h.deps.Sessions, "chatbot", err)
	if err != nil {
		feature.Log(c, "chatbot", err)
		reply.Text = fallbackText
		reply.Law = fallbackLaw
		reply.Error = true
	} else {
		reply.Text = answer.AIResponse
		reply.Law = answer.RelevantLaw
	}

	exchange := []Message{{Sender: User, Text: query}, reply}
	return feature.Respond(c, h.deps.Renderer, routes.Chatbot, bubbles(exchange), func(g.Node) g.Node {
		return page(exchange)
	})
}

package learning

import (
	"net/http"
	"strings"

	"github.com/kanoonai/kanoon-web/internal/activity"
	"github.com/kanoonai/kanoon-web/internal/backend"
	"github.com/kanoonai/kanoon-web/internal/domain"
	"github.com/kanoonai/kanoon-web/internal/modules/feature"
	"github.com/kanoonai/kanoon-web/internal/routes"
	"github.com/kanoonai/kanoon-web/internal/view"
	"github.com/labstack/echo/v4"
	g "maragu.dev/gomponents"
)

const (
	featureName = "learning-hub"

	emptySectionMessage = "Please enter a legal section."
	emptyAnswerMessage  = "Please provide both the question and your answer."
	emptyTopicMessage   = "Please enter a legal topic to research."
)

// Handler serves the three learning tools.
type Handler struct {
	deps     feature.Deps
	recorder *activity.Recorder
}

func NewHandler(deps feature.Deps, recorder *activity.Recorder) *Handler {
	return &Handler{deps: deps, recorder: recorder}
}

// Get renders the hub with the tool named by the "tool" query parameter.
func (h *Handler) Get(c echo.Context) error {
	tool := toolOrDefault(c.QueryParam("tool"))
	return feature.Page(c, h.deps.Renderer, routes.LearningHub, page(tool, panel(tool, nil, nil)))
}

// Tool swaps in the panel of one tool for htmx tab clicks.
func (h *Handler) Tool(c echo.Context) error {
	tool := toolOrDefault(c.Param("tool"))
	if !feature.IsHTMX(c) {
		return c.Redirect(http.StatusSeeOther, routes.LearningHub+"?tool="+string(tool))
	}
	return h.deps.Renderer.RenderPage(c, http.StatusOK, g.Group{tabs(tool, true), panel(tool, nil, nil)})
}

func (h *Handler) Simplify(c echo.Context) error {
	section := strings.TrimSpace(c.FormValue("section"))
	values := map[string]string{"section": section}
	if section == "" {
		return h.respond(c, Simplify, values, nil, domain.Invalid(emptySectionMessage))
	}
	result, err := h.deps.Backend.SimplifyBareAct(c.Request().Context(), section)
	feature.Record(c, h.recorder, h.deps.Sessions, featureName, err)
	if err != nil {
		return h.respond(c, Simplify, values, nil, err)
	}
	return h.respond(c, Simplify, values, simplification(result), nil)
}

func (h *Handler) Evaluate(c echo.Context) error {
	question := strings.TrimSpace(c.FormValue("question"))
	answer := strings.TrimSpace(c.FormValue("answer"))
	values := map[string]string{"question": question, "answer": answer}
	if question == "" || answer == "" {
		return h.respond(c, Evaluate, values, nil, domain.Invalid(emptyAnswerMessage))
	}
	result, err := h.deps.Backend.EvaluateAnswer(c.Request().Context(), question, answer)
	feature.Record(c, h.recorder, h.deps.Sessions, featureName, err)
	if err != nil {
		return h.respond(c, Evaluate, values, nil, err)
	}
	return h.respond(c, Evaluate, values, evaluation(result), nil)
}

func (h *Handler) Research(c echo.Context) error {
	topic := strings.TrimSpace(c.FormValue("topic"))
	values := map[string]string{"topic": topic}
	if topic == "" {
		return h.respond(c, Research, values, nil, domain.Invalid(emptyTopicMessage))
	}
	result, err := h.deps.Backend.ResearchTopic(c.Request().Context(), topic)
	feature.Record(c, h.recorder, h.deps.Sessions, featureName, err)
	if err != nil {
		return h.respond(c, Research, values, nil, err)
	}
	return h.respond(c, Research, values, research(result), nil)
}

// respond renders the result of one tool, or the error banner when err is set.
func (h *Handler) respond(c echo.Context, tool Tool, values map[string]string, result g.Node, err error) error {
	if err != nil {
		feature.Log(c, featureName, err)
		result = view.ErrorBanner(backend.Message(err))
	}
	return feature.Respond(c, h.deps.Renderer, routes.LearningHub, result, func(region g.Node) g.Node {
		return page(tool, panel(tool, values, region))
	})
}

package faq

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
	featureName       = "faq-builder"
	emptyTopicMessage = "Please enter a legal topic."
	downloadPrefix    = "Failed to download PDF: "
)

// Handler serves the FAQ builder.
type Handler struct {
	deps     feature.Deps
	recorder *activity.Recorder
}

func NewHandler(deps feature.Deps, recorder *activity.Recorder) *Handler {
	return &Handler{deps: deps, recorder: recorder}
}

func (h *Handler) Get(c echo.Context) error {
	return feature.Page(c, h.deps.Renderer, routes.FAQBuilder, page("", nil))
}

// Generate asks the backend for the FAQs of a topic.
func (h *Handler) Generate(c echo.Context) error {
	topic := strings.TrimSpace(c.FormValue("topic"))

	var region g.Node
	if topic == "" {
		region = view.ErrorBanner(emptyTopicMessage)
	} else {
		faqs, err := h.deps.Backend.GenerateFAQs(c.Request().Context(), topic)
		feature.Record(c, h.recorder, h.deps.Sessions, featureName, err)
		if err != nil {
			feature.Log(c, featureName, err)
			region = view.ErrorBanner(backend.Message(err))
		} else {
			region = results(topic, faqs)
		}
	}
	return feature.Respond(c, h.deps.Renderer, routes.FAQBuilder, region, func(region g.Node) g.Node {
		return page(topic, region)
	})
}

// Download renders the submitted FAQs to PDF and sends the browser to it.
func (h *Handler) Download(c echo.Context) error {
	topic := strings.TrimSpace(c.FormValue("topic"))
	faqs, err := submitted(c)
	if err == nil {
		var dl *backend.FAQDownload
		dl, err = h.deps.Backend.DownloadFAQPDF(c.Request().Context(), topic, faqs)
		feature.Record(c, h.recorder, h.deps.Sessions, featureName, err)
		if err == nil {
			return c.Redirect(http.StatusSeeOther, h.deps.Backend.ResolveURL(dl.PDFURL))
		}
	}

	feature.Log(c, featureName, err)
	region := g.Group{view.ErrorBanner(downloadPrefix + backend.Message(err)), results(topic, faqs)}
	return feature.Page(c, h.deps.Renderer, routes.FAQBuilder, page(topic, region))
}

// submitted reads the FAQ list carried by the download form.
func submitted(c echo.Context) ([]backend.FAQ, error) {
	values, err := c.FormParams()
	if err != nil {
		return nil, err
	}
	questions, answers := values["question"], values["answer"]
	if len(questions) == 0 || len(questions) != len(answers) {
		return nil, domain.Invalid("There are no FAQs to download.")
	}
	faqs := make([]backend.FAQ, len(questions))
	for i := range questions {
		faqs[i] = backend.FAQ{Question: questions[i], Answer: answers[i]}
	}
	return faqs, nil
}

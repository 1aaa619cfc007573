package summarizer

import (
	"github.com/kanoonai/kanoon-web/internal/activity"
	"github.com/kanoonai/kanoon-web/internal/backend"
	"github.com/kanoonai/kanoon-web/internal/modules/feature"
	"github.com/kanoonai/kanoon-web/internal/routes"
	"github.com/labstack/echo/v4"
)

const (
	featureName    = "case-summarizer"
	missingMessage = "Please select a file to summarize."
)

// Handler serves the case law summarizer.
type Handler struct {
	deps     Deps
	recorder *activity.Recorder
}

func NewHandler(deps Deps, recorder *activity.Recorder) *Handler {
	return &Handler{deps: deps, recorder: recorder}
}

func (h *Handler) Get(c echo.Context) error {
	return feature.Page(c, h.deps.Renderer, routes.CaseSummarizer, page(nil))
}

// Post checks the uploaded judgment and forwards it to the backend.
func (h *Handler) Post(c echo.Context) error {
	result, err := h.summarize(c)
	region := outcome(result, h.deps.Backend, err)
	if err != nil {
		feature.Log(c, featureName, err)
	}
	return feature.Respond(c, h.deps.Renderer, routes.CaseSummarizer, region, page)
}

func (h *Handler) summarize(c echo.Context) (*backend.SummaryResult, error) {
	ctx := c.Request().Context()
	staged, err := feature.StageUpload(c, h.deps.Stager, h.deps.Sessions.VisitorID(c), "file", missingMessage, h.deps.MaxBytes)
	if err != nil {
		return nil, err
	}
	content, err := staged.Open()
	if err != nil {
		staged.Finish(ctx, err)
		return nil, err
	}
	defer content.Close()

	result, err := h.deps.Backend.Summarize(ctx, backend.Upload{Filename: staged.Filename, Content: content})
	staged.Finish(ctx, err)
	feature.Record(c, h.recorder, h.deps.Sessions, featureName, err)
	return result, err
}

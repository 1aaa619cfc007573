package analyzer

import (
	"github.com/kanoonai/kanoon-web/internal/activity"
	"github.com/kanoonai/kanoon-web/internal/backend"
	"github.com/kanoonai/kanoon-web/internal/modules/feature"
	"github.com/kanoonai/kanoon-web/internal/routes"
	"github.com/labstack/echo/v4"
)

const (
	featureName    = "fir-analyzer"
	missingMessage = "Please select an FIR to analyze."
)

// Handler serves the FIR analyzer.
type Handler struct {
	deps     Deps
	recorder *activity.Recorder
}

func NewHandler(deps Deps, recorder *activity.Recorder) *Handler {
	return &Handler{deps: deps, recorder: recorder}
}

func (h *Handler) Get(c echo.Context) error {
	return feature.Page(c, h.deps.Renderer, routes.FIRAnalyzer, page(nil))
}

func (h *Handler) Post(c echo.Context) error {
	analysis, err := h.analyze(c)
	if err != nil {
		feature.Log(c, featureName, err)
	}
	return feature.Respond(c, h.deps.Renderer, routes.FIRAnalyzer, outcome(analysis, err), page)
}

func (h *Handler) analyze(c echo.Context) (*backend.FIRAnalysis, error) {
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

	analysis, err := h.deps.Backend.AnalyzeFIR(ctx, backend.Upload{Filename: staged.Filename, Content: content})
	staged.Finish(ctx, err)
	feature.Record(c, h.recorder, h.deps.Sessions, featureName, err)
	return analysis, err
}

package notices

import (
	"errors"

	"github.com/kanoonai/kanoon-web/internal/activity"
	"github.com/kanoonai/kanoon-web/internal/backend"
	"github.com/kanoonai/kanoon-web/internal/domain"
	"github.com/kanoonai/kanoon-web/internal/modules/feature"
	"github.com/kanoonai/kanoon-web/internal/routes"
	"github.com/kanoonai/kanoon-web/internal/validation"
	"github.com/labstack/echo/v4"
	g "maragu.dev/gomponents"
)

const (
	featureName        = "notice-generator"
	unsupportedMessage = "Selected notice type is not yet supported."
	badNumberMessage   = "Please enter whole numbers in the numeric fields."
)

// Handler serves the legal notice generator.
type Handler struct {
	deps     feature.Deps
	recorder *activity.Recorder
}

func NewHandler(deps feature.Deps, recorder *activity.Recorder) *Handler {
	return &Handler{deps: deps, recorder: recorder}
}

func (h *Handler) Get(c echo.Context) error {
	return feature.Page(c, h.deps.Renderer, routes.NoticeGenerator, page(defaultType, nil, result(nil, "")))
}

// Post generates the selected notice. Coming-soon types are refused
// without calling the backend.
func (h *Handler) Post(c echo.Context) error {
	selected := c.FormValue(typeField)
	values, _ := c.FormParams()

	var region g.Node
	links, err := h.generate(c, selected)
	if err != nil {
		feature.Log(c, featureName, err)
		region = result(nil, backend.Message(err))
	} else {
		region = result(links, "")
	}

	if _, ok := feature.Find(variants, selected); !ok {
		selected = defaultType
	}
	return feature.Respond(c, h.deps.Renderer, routes.NoticeGenerator, region, func(region g.Node) g.Node {
		return page(selected, values, region)
	})
}

func (h *Handler) generate(c echo.Context, selected string) (*backend.DownloadLinks, error) {
	variant, ok := feature.Find(variants, selected)
	if !ok {
		return nil, domain.Invalid(unsupportedMessage)
	}
	notice, ok := newNotice(variant.Value)
	if !ok {
		return nil, domain.Invalid(unsupportedMessage)
	}

	if err := c.Bind(notice); err != nil {
		var he *echo.HTTPError
		if errors.As(err, &he) {
			return nil, domain.Invalid(badNumberMessage)
		}
		return nil, err
	}
	if err := c.Validate(notice); err != nil {
		if fields := validation.Fields(err); len(fields) > 0 {
			return nil, domain.Invalid(variant.MissingMessage(fields))
		}
		return nil, err
	}

	links, err := h.deps.Backend.GenerateNotice(c.Request().Context(), notice)
	feature.Record(c, h.recorder, h.deps.Sessions, featureName, err)
	if err != nil {
		return nil, err
	}
	return &backend.DownloadLinks{
		PDFURL:  h.deps.Backend.ResolveURL(links.PDFURL),
		DocxURL: h.deps.Backend.ResolveURL(links.DocxURL),
	}, nil
}

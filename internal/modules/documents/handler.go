package documents

import (
	"errors"
	"net/http"
	"net/url"

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
	featureName        = "document-generator"
	unknownTypeMessage = "Please select a document type."
	badNumberMessage   = "Please enter whole numbers in the numeric fields."
)

// Handler serves the document generator.
type Handler struct {
	deps     feature.Deps
	recorder *activity.Recorder
}

func NewHandler(deps feature.Deps, recorder *activity.Recorder) *Handler {
	return &Handler{deps: deps, recorder: recorder}
}

func (h *Handler) Get(c echo.Context) error {
	selected := c.QueryParam(typeField)
	if _, ok := feature.Find(variants, selected); !ok {
		selected = defaultType
	}
	return feature.Page(c, h.deps.Renderer, routes.DocumentGenerator, page(selected, nil, result(nil, "")))
}

// Party returns one empty receiving party row for the NDA form.
func (h *Handler) Party(c echo.Context) error {
	return h.deps.Renderer.RenderPage(c, http.StatusOK, partyRow("", ""))
}

// Post validates the selected document form and asks the backend to
// render it. Invalid forms never reach the backend.
func (h *Handler) Post(c echo.Context) error {
	selected := c.FormValue(typeField)
	values := formValues(c)

	links, err := h.generate(c, selected)
	var region g.Node
	if err != nil {
		feature.Log(c, featureName, err)
		region = result(nil, backend.Message(err))
	} else {
		region = result(links, "")
	}

	if _, ok := feature.Find(variants, selected); !ok {
		selected = defaultType
	}
	return feature.Respond(c, h.deps.Renderer, routes.DocumentGenerator, region, func(region g.Node) g.Node {
		return page(selected, values, region)
	})
}

func (h *Handler) generate(c echo.Context, selected string) (*backend.DownloadLinks, error) {
	variant, ok := feature.Find(variants, selected)
	if !ok {
		return nil, domain.Invalid(unknownTypeMessage)
	}
	doc, ok := newDocument(variant.Value)
	if !ok {
		return nil, domain.Invalid(unknownTypeMessage)
	}
	if err := bind(c, doc, variant); err != nil {
		return nil, err
	}

	links, err := h.deps.Backend.GenerateDocument(c.Request().Context(), doc)
	feature.Record(c, h.recorder, h.deps.Sessions, featureName, err)
	if err != nil {
		return nil, err
	}
	return &backend.DownloadLinks{
		PDFURL:  h.deps.Backend.ResolveURL(links.PDFURL),
		DocxURL: h.deps.Backend.ResolveURL(links.DocxURL),
	}, nil
}

// bind fills doc from the request and runs the tag and document checks.
func bind(c echo.Context, doc Document, variant feature.Variant) error {
	if err := c.Bind(doc); err != nil {
		var he *echo.HTTPError
		if errors.As(err, &he) {
			return domain.Invalid(badNumberMessage)
		}
		return err
	}
	// Document rules such as the NDA party count come before required fields.
	if err := doc.Check(); err != nil {
		return err
	}
	if err := c.Validate(doc); err != nil {
		if fields := validation.Fields(err); len(fields) > 0 {
			return domain.Invalid(variant.MissingMessage(fields))
		}
		return err
	}
	return nil
}

// formValues is the submitted form, used to refill a plain post.
func formValues(c echo.Context) url.Values {
	values, err := c.FormParams()
	if err != nil {
		return nil
	}
	return values
}

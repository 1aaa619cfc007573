package feature

import (
	"net/url"
	"strings"

	"github.com/kanoonai/kanoon-web/internal/view"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Input declares one control of a variant form. Key is the full form key,
// prefixed with the variant value.
type Input struct {
	Key         string
	Label       string
	Placeholder string
	// Type is the HTML input type, "text" when empty.
	Type     string
	Default  string
	Optional bool
}

// Section is a titled group of inputs.
type Section struct {
	Legend string
	Inputs []Input
}

// Variant is one selectable form of a multi-type page such as the
// document or notice generators.
type Variant struct {
	Value    string
	Label    string
	Disabled bool
	Sections []Section
	// Extra renders controls that are not plain inputs.
	Extra func(values url.Values) g.Node
}

// Label returns the label declared for key, or key itself.
func (v Variant) Label(key string) string {
	for _, s := range v.Sections {
		for _, in := range s.Inputs {
			if in.Key == key {
				return in.Label
			}
		}
	}
	return key
}

// MissingMessage lists the labels of the failed form keys.
func (v Variant) MissingMessage(keys []string) string {
	labels := make([]string, 0, len(keys))
	for _, k := range keys {
		labels = append(labels, v.Label(k))
	}
	return "Please fill in the required fields: " + strings.Join(labels, ", ") + "."
}

// Find returns the enabled variant with value.
func Find(variants []Variant, value string) (Variant, bool) {
	for _, v := range variants {
		if v.Value == value && !v.Disabled {
			return v, true
		}
	}
	return Variant{}, false
}

// VariantFields renders a selector named selectName followed by one
// fieldset per variant. Only the selected variant is visible; the others
// keep their values while hidden. values holds a previous submission and
// overrides the defaults.
func VariantFields(selectName, selectLabel, selected string, variants []Variant, values url.Values) g.Node {
	options := make([]view.Option, 0, len(variants))
	for _, v := range variants {
		options = append(options, view.Option{Value: v.Value, Label: v.Label, Disabled: v.Disabled})
	}

	return g.Group{
		view.Select(view.Field{Name: selectName, Label: selectLabel, Value: selected, Required: true}, options,
			g.Attr("data-tab-select", selectName),
		),
		g.Map(variants, func(v Variant) g.Node {
			if v.Disabled {
				return nil
			}
			return h.FieldSet(h.Class("variant"),
				g.Attr("data-tab-group", selectName),
				g.Attr("data-tab-panel", v.Value),
				g.If(v.Value != selected, g.Attr("hidden")),
				g.If(v.Value != selected, h.Disabled()),
				g.Map(v.Sections, func(s Section) g.Node {
					return view.Fieldset(s.Legend, g.Map(s.Inputs, func(in Input) g.Node {
						return view.Input(view.Field{
							Name:        in.Key,
							Label:       in.Label,
							Value:       valueOr(values, in.Key, in.Default),
							Placeholder: in.Placeholder,
							Type:        in.Type,
							Required:    !in.Optional,
						})
					}))
				}),
				g.If(v.Extra != nil, extra(v, values)),
			)
		}),
	}
}

func extra(v Variant, values url.Values) g.Node {
	if v.Extra == nil {
		return nil
	}
	return v.Extra(values)
}

func valueOr(values url.Values, key, fallback string) string {
	if vs, ok := values[key]; ok && len(vs) > 0 {
		return vs[0]
	}
	return fallback
}

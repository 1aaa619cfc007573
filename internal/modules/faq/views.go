package faq

import (
	"github.com/kanoonai/kanoon-web/internal/backend"
	"github.com/kanoonai/kanoon-web/internal/routes"
	"github.com/kanoonai/kanoon-web/internal/view"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

const resultID = "faq-result"

var downloadPath = routes.FAQBuilder + "/download"

func page(topic string, region g.Node) g.Node {
	return g.Group{
		h.P(h.Class("muted"), g.Text(`Enter any legal topic (e.g., "Cheque Bounce", "RERA") to generate a list of common questions and answers.`)),
		h.Div(h.Class("card"),
			view.HxForm(routes.FAQBuilder, "#"+resultID, h.Class("inline-form"),
				view.Input(view.Field{Name: "topic", Label: "Legal Topic", Value: topic, Placeholder: "e.g., 'Cheque Bounce under Section 138'"}),
				view.SubmitButton("Generate", "Generating..."),
			),
		),
		h.Div(h.ID(resultID), region),
	}
}

// results lists each FAQ as a collapsed accordion item with a download
// form that carries the list back for the PDF render.
func results(topic string, faqs []backend.FAQ) g.Node {
	if len(faqs) == 0 {
		return h.Div(h.Class("card empty"),
			h.H3(g.Text("No FAQs Generated")),
			h.P(g.Text("The AI could not generate FAQs for this topic. Please try a different or broader topic.")),
		)
	}
	return h.Div(h.Class("faqs"),
		h.Div(h.Class("result-header"),
			h.H3(g.Text(`Generated FAQs for "`+topic+`"`)),
			h.Form(h.Method("post"), h.Action(downloadPath), g.Attr("hx-boost", "false"),
				h.Input(h.Type("hidden"), h.Name("topic"), h.Value(topic)),
				g.Map(faqs, func(f backend.FAQ) g.Node {
					return g.Group{
						h.Input(h.Type("hidden"), h.Name("question"), h.Value(f.Question)),
						h.Input(h.Type("hidden"), h.Name("answer"), h.Value(f.Answer)),
					}
				}),
				h.Button(h.Type("submit"), h.Class("btn btn-secondary"), g.Text("Download PDF")),
			),
		),
		g.Map(faqs, item),
	)
}

func item(f backend.FAQ) g.Node {
	return h.Details(h.Class("faq"),
		h.Summary(g.Text(f.Question)),
		h.Div(h.Class("answer"),
			h.P(h.Class("prewrap"), g.Text(f.Answer)),
			h.Button(h.Type("button"), h.Class("btn btn-small"),
				g.Attr("data-answer", f.Answer),
				g.Attr("hx-on:click", "navigator.clipboard.writeText(this.dataset.answer)"),
				g.Text("Copy Answer"),
			),
		),
	)
}

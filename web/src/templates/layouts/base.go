package layouts

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/kanoonai/kanoon-web/internal/routes"
	"github.com/kanoonai/kanoon-web/internal/view"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

const htmxSrc = "https://unpkg.com/htmx.org@2.0.4"

// document renders the outer HTML page shared by every layout. Each page
// loads kanoon.js, which resets the scroll position on load and after htmx
// history navigation.
func document(title string, bodyClass string, body ...g.Node) g.Node {
	return h.Doctype(
		h.HTML(h.Lang("en"),
			h.Head(
				h.Meta(h.Charset("utf-8")),
				h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1")),
				h.TitleEl(g.Text(CalculateTitle(title))),
				h.Link(h.Rel("stylesheet"), h.Href("/static/kanoon.css")),
				h.Script(h.Src(htmxSrc), h.Defer()),
				h.Script(h.Src("/static/kanoon.js"), h.Defer()),
			),
			h.Body(g.If(bodyClass != "", h.Class(bodyClass)), g.Group(body)),
		),
	)
}

// Base wraps a public page in the site navbar and footer.
func Base(title string, flash view.FlashData, content templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return document(title, "",
			navbar(),
			h.Main(h.Class("container"),
				view.Flash(flash),
				view.AdaptTemplToGomponent(ctx, content),
			),
			footer(),
		).Render(w)
	})
}

func navbar() g.Node {
	return h.Nav(h.Class("navbar"),
		h.A(h.Class("brand"), h.Href(routes.Home), g.Text("KanoonAI")),
		h.Div(
			h.A(h.Href(routes.About), g.Text("About")),
			h.A(h.Href(routes.Chatbot), g.Text("Dashboard")),
			h.A(h.Href(routes.Login), g.Text("Login")),
			h.A(h.Href(routes.Signup), g.Text("Sign Up")),
		),
	)
}

func footer() g.Node {
	return h.Footer(h.Class("footer"),
		h.Nav(
			h.A(h.Href(routes.About), g.Text("About Us")),
			h.A(h.Href(routes.Terms), g.Text("Terms & Conditions")),
			h.A(h.Href(routes.Privacy), g.Text("Privacy Policy")),
			h.A(h.Href(routes.Support), g.Text("Customer Support")),
			h.A(h.Href(routes.ReportIssue), g.Text("Report an Issue")),
		),
		h.P(g.Text("© 2025 KanoonAI. All rights reserved.")),
	)
}

package pages

import (
	"io"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// ContactEmail receives support requests and issue reports.
const ContactEmail = "ksaabrarahmed2021@gmail.com"

// InfoPage is a static policy or help document.
type InfoPage struct {
	Title   string
	Updated string
	Intro   []string
	// Sections are numbered by the content itself.
	Sections []InfoSection
}

// InfoSection is one titled block of an InfoPage.
type InfoSection struct {
	Title string
	Body  []g.Node
}

func para(text string) g.Node {
	return h.P(g.Text(text))
}

func bullets(items ...string) g.Node {
	return h.Ul(h.Class("bullets"), g.Map(items, func(item string) g.Node {
		return h.Li(g.Text(item))
	}))
}

func mailto() g.Node {
	return h.P(h.A(h.Href("mailto:"+ContactEmail), g.Text(ContactEmail)))
}

// Render implements gomponents.Node.
func (p InfoPage) Render(w io.Writer) error {
	return h.Article(h.Class("card info-page"),
		h.H1(g.Text(p.Title)),
		g.If(p.Updated != "", h.P(h.Class("strength"), g.Text("Last Updated: "+p.Updated))),
		g.Map(p.Intro, para),
		g.Map(p.Sections, func(s InfoSection) g.Node {
			return h.Section(h.Class("result-section"),
				h.H2(g.Text(s.Title)),
				g.Group(s.Body),
			)
		}),
	).Render(w)
}

func nodes(n ...g.Node) []g.Node {
	return n
}

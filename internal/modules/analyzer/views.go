package analyzer

import (
	"github.com/kanoonai/kanoon-web/internal/backend"
	"github.com/kanoonai/kanoon-web/internal/routes"
	"github.com/kanoonai/kanoon-web/internal/view"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

const (
	resultID    = "fir-result"
	notFound    = "Not Found"
	noWitnesses = "No witnesses mentioned"
)

func page(region g.Node) g.Node {
	return g.Group{
		h.Div(h.Class("card"),
			view.UploadForm(routes.FIRAnalyzer, "#"+resultID,
				h.Label(h.For("file"), h.Class("dropzone"),
					h.P(h.Strong(g.Text("Drag 'n' drop an FIR file here"))),
					h.Input(h.Type("file"), h.ID("file"), h.Name("file"), h.Accept(".pdf,.docx,.txt"), h.Required()),
					h.Span(h.Class("muted"), g.Text("Click to browse")),
					h.P(h.Class("muted small"), g.Text("Supports: .pdf, .docx, .txt")),
				),
				view.SubmitButton("Analyze FIR", "Analyzing Document..."),
			),
		),
		h.Div(h.ID(resultID), region),
	}
}

type detail struct {
	title string
	value g.Node
}

// outcome renders the eleven extracted FIR fields or the error.
func outcome(a *backend.FIRAnalysis, err error) g.Node {
	if err != nil {
		return view.ErrorBanner(backend.Message(err))
	}
	if a == nil {
		return nil
	}

	details := []detail{
		{"FIR Number", text(a.FIRNumber)},
		{"Police Station", text(a.PoliceStation)},
		{"Date of Filing", text(a.DateOfFiling)},
		{"Complainant / Informant", text(a.Complainant)},
		{"Date and Time of Incident", text(a.DateAndTimeOfIncident)},
		{"Place of Incident", text(a.PlaceOfIncident)},
		{"Accused / Suspect(s)", text(a.AccusedName)},
		{"Witnesses", witnesses(a.Witnesses)},
		{"Offence (Summary)", text(a.Offence)},
		{"Offences Mentioned (Sections)", text(a.OffencesMentioned)},
		{"Investigating Officer (I/O)", text(a.InvestigatingOfficer)},
	}
	return h.Div(h.Class("card"),
		h.H3(g.Text("Extracted FIR Details")),
		h.Dl(g.Map(details, func(d detail) g.Node {
			return g.Group{h.Dt(g.Text(d.title)), h.Dd(d.value)}
		})),
	)
}

func text(t backend.Text) g.Node {
	return view.TextOr(t.String(), notFound)
}

func witnesses(names []string) g.Node {
	listed := make([]string, 0, len(names))
	for _, n := range names {
		if n != "" {
			listed = append(listed, n)
		}
	}
	if len(listed) == 0 {
		return h.Em(g.Text(noWitnesses))
	}
	return h.Ul(h.Class("bullets"), g.Map(listed, func(n string) g.Node { return h.Li(g.Text(n)) }))
}

package summarizer

import (
	"github.com/kanoonai/kanoon-web/internal/backend"
	"github.com/kanoonai/kanoon-web/internal/routes"
	"github.com/kanoonai/kanoon-web/internal/view"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

const resultID = "summary-result"

func page(region g.Node) g.Node {
	return g.Group{
		h.Div(h.Class("card"),
			view.UploadForm(routes.CaseSummarizer, "#"+resultID,
				uploader("Drag 'n' drop a file here"),
				view.SubmitButton("Summarize Document", "Analyzing Document..."),
			),
		),
		h.Div(h.ID(resultID), region),
	}
}

func uploader(prompt string) g.Node {
	return h.Label(h.For("file"), h.Class("dropzone"),
		h.P(h.Strong(g.Text(prompt))),
		h.Input(h.Type("file"), h.ID("file"), h.Name("file"), h.Accept(".pdf,.docx,.txt"), h.Required()),
		h.Span(h.Class("muted"), g.Text("Click to browse")),
		h.P(h.Class("muted small"), g.Text("Supports: .pdf, .docx, .txt")),
	)
}

// outcome renders the result of one summarization.
func outcome(result *backend.SummaryResult, client *backend.Client, err error) g.Node {
	if err != nil {
		return view.ErrorBanner(backend.Message(err))
	}
	if result == nil {
		return nil
	}
	s := result.Summary
	return h.Div(h.Class("card summary"),
		h.Div(h.Class("result-header"),
			h.H3(g.Text("Case Summary")),
			view.DownloadLinks(client.ResolveURL(result.DownloadLinks.PDFURL), client.ResolveURL(result.DownloadLinks.DocxURL)),
		),
		view.ResultSection("1. Case Title",
			h.Dl(
				pair("Case Name", s.CaseTitleInfo.CaseName),
				pair("Case Number", s.CaseTitleInfo.CaseNumber),
				pair("Court Name", s.CaseTitleInfo.CourtName),
				pair("Jurisdiction", s.CaseTitleInfo.Jurisdiction),
				pair("Citation(s)", s.CaseTitleInfo.Citations),
			),
		),
		view.ResultSection("2. Parties Involved",
			h.Dl(
				pair("Petitioner", s.PartiesInvolved.Petitioner),
				pair("Advocates for Petitioner", s.PartiesInvolved.AdvocatesPetitioner),
				pair("Respondent", s.PartiesInvolved.Respondent),
				pair("Advocates for Respondent", s.PartiesInvolved.AdvocatesRespondent),
			),
		),
		view.ResultSection("3. Date of Judgment",
			h.Dl(pair("Date of Judgment", s.Dates.DateOfJudgment)),
		),
		view.ResultSection("4. Important Dates",
			h.Dl(
				pair("Date of Filing", s.Dates.DateOfFiling),
				pair("Date of Judgment", s.Dates.DateOfJudgment),
			),
		),
		view.ResultSection("5. Sections Invoked",
			h.P(view.TextOr(s.SectionsInvoked.String(), "N/A")),
		),
		view.ResultSection("6. Legal Issues / Questions Before the Court",
			view.BulletList(nonBlank(s.LegalIssues), "Not specified / N/A"),
		),
		view.ResultSection("7. Final Judgment",
			h.P(h.Class("prewrap"), view.TextOr(s.FinalJudgment.String(), "No summary available.")),
		),
	)
}

func pair(title string, value backend.Text) g.Node {
	return g.Group{
		h.Dt(g.Text(title)),
		h.Dd(view.TextOr(value.String(), "N/A")),
	}
}

func nonBlank(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}

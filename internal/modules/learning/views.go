package learning

import (
	"github.com/kanoonai/kanoon-web/internal/backend"
	"github.com/kanoonai/kanoon-web/internal/routes"
	"github.com/kanoonai/kanoon-web/internal/view"
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	h "maragu.dev/gomponents/html"
)

// Tool names one of the hub's tools. It is also the path segment of the
// tool's endpoints.
type Tool string

const (
	Simplify Tool = "simplify"
	Evaluate Tool = "evaluate"
	Research Tool = "research"
)

const (
	tabsID   = "learning-tabs"
	resultID = "tool-result"
)

type tab struct {
	tool  Tool
	title string
}

var toolTitles = []tab{
	{Simplify, "Bare Act Simplifier"},
	{Evaluate, "Answer Evaluator"},
	{Research, "Legal Researcher"},
}

func toolOrDefault(name string) Tool {
	for _, t := range toolTitles {
		if string(t.tool) == name {
			return t.tool
		}
	}
	return Simplify
}

func page(tool Tool, content g.Node) g.Node {
	return h.Div(h.Class("learning"),
		tabs(tool, false),
		h.Div(h.ID("tool-panel"), content),
	)
}

// tabs renders the tool switcher. oob marks the copy sent with a panel swap.
func tabs(active Tool, oob bool) g.Node {
	return h.Nav(h.ID(tabsID), h.Class("tabs"), h.Role("tablist"),
		g.If(oob, hx.SwapOOB("true")),
		g.Map(toolTitles, func(t tab) g.Node {
			return h.A(
				h.Href(routes.LearningHub+"?tool="+string(t.tool)),
				hx.Get(routes.LearningHub+"/"+string(t.tool)),
				hx.Target("#tool-panel"),
				hx.PushURL(routes.LearningHub+"?tool="+string(t.tool)),
				h.Role("tab"),
				h.Class(tabClass(t.tool == active)),
				g.Attr("aria-selected", boolString(t.tool == active)),
				g.Text(t.title),
			)
		}),
	)
}

func tabClass(active bool) string {
	if active {
		return "tab active"
	}
	return "tab"
}

func boolString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

// panel renders the form of tool with values and the result region.
func panel(tool Tool, values map[string]string, result g.Node) g.Node {
	action := routes.LearningHub + "/" + string(tool)
	var form g.Node
	switch tool {
	case Evaluate:
		form = view.HxForm(action, "#"+resultID,
			view.TextArea(view.Field{Name: "question", Label: "1. Enter the Exam Question", Value: values["question"],
				Placeholder: "e.g., 'What is Culpable Homicide? Differentiate it from Murder.'"}, 3),
			view.TextArea(view.Field{Name: "answer", Label: "2. Enter Your Full Answer", Value: values["answer"],
				Placeholder: "e.g., 'Culpable Homicide is defined under Section 299 of the IPC...'"}, 8),
			view.SubmitButton("Evaluate My Answer", "Evaluating..."),
		)
	case Research:
		form = view.HxForm(action, "#"+resultID, h.Class("inline-form"),
			view.Input(view.Field{Name: "topic", Label: "Legal Topic", Value: values["topic"],
				Placeholder: "e.g., 'Cruelty under Hindu Marriage Act', 'Section 34 IPC Common Intention'"}),
			view.SubmitButton("Get Notes", "Researching..."),
		)
	default:
		form = view.HxForm(action, "#"+resultID, h.Class("inline-form"),
			view.Input(view.Field{Name: "section", Label: "Legal Section", Value: values["section"],
				Placeholder: "e.g., 'IPC 304A', 'Section 113B Evidence Act'"}),
			view.SubmitButton("Simplify", "Analyzing..."),
		)
	}
	return h.Div(h.Class("card"),
		form,
		h.Div(h.ID(resultID), result),
	)
}

func simplification(s *backend.Simplification) g.Node {
	return g.Group{
		view.ResultSection("Section Title", h.H3(h.Class("headline"), g.Text(s.SectionTitle))),
		view.ResultSection("Simplified Meaning", h.P(g.Text(s.SimplifiedMeaning))),
		view.ResultSection("Legal Ingredients (Checklist)", view.BulletList(s.LegalIngredients, "None listed.")),
		view.ResultSection("Exceptions (if any)", view.BulletList(s.Exceptions, "No specific exceptions mentioned.")),
		view.ResultSection("Real-life Illustration", h.BlockQuote(h.P(g.Text(s.RealLifeIllustration)))),
		view.ResultSection("Landmark Cases", h.Ul(h.Class("cases"), g.Map(s.LandmarkCases, func(lc backend.LandmarkCase) g.Node {
			return h.Li(
				h.Strong(g.Text(lc.CaseName)),
				g.If(lc.Citation != "", h.Span(h.Class("muted"), g.Text(" ("+lc.Citation+")"))),
				h.P(g.Text(lc.Summary)),
			)
		}))),
		view.ResultSection("Memory Trick (Mnemonic)", h.P(g.Text(s.MemoryTrick))),
	}
}

func evaluation(e *backend.Evaluation) g.Node {
	criteria := []struct{ title, feedback string }{
		{"Structure", e.EvaluationCriteria.Structure},
		{"Case Law Usage", e.EvaluationCriteria.CaseUsage},
		{"Bare Act Accuracy", e.EvaluationCriteria.BareActAccuracy},
		{"Grammar & Clarity", e.EvaluationCriteria.Grammar},
		{"Legal Reasoning", e.EvaluationCriteria.LegalReasoning},
	}
	return g.Group{
		view.ResultSection("AI Professor's Score",
			h.P(h.Class("score"), h.Span(h.Class("marks"), g.Text(e.MarksOutOf10.String())), h.Span(g.Text(" / 10"))),
		),
		view.ResultSection("Evaluation Criteria", h.Dl(g.Map(criteria, func(c struct{ title, feedback string }) g.Node {
			return g.Group{h.Dt(g.Text(c.title)), h.Dd(view.TextOr(c.feedback, "N/A"))}
		}))),
		view.ResultSection("Areas for Improvement", view.BulletList(e.Mistakes, "No mistakes found.")),
		view.ResultSection("Suggestion to Score More", h.BlockQuote(h.P(g.Text(e.SuggestionToScoreMore)))),
		view.ResultSection("Model 'A+' Answer", h.Div(h.Class("prewrap"), g.Text(e.ImprovedAnswer))),
	}
}

func research(r *backend.Research) g.Node {
	return g.Group{
		view.ResultSection("Topic Definition", h.P(g.Text(r.TopicDefinition))),
		view.ResultSection("Bare Act Section(s)", h.P(view.TextOr(r.BareActSection.String(), "N/A"))),
		view.ResultSection("Legal Ingredients", view.BulletList(r.LegalIngredients, "None listed.")),
		view.ResultSection("Landmark Cases", h.Ul(h.Class("cases"), g.Map(r.ImportantCases, func(rc backend.ResearchCase) g.Node {
			return h.Li(
				h.Strong(g.Text(rc.CaseName)),
				h.P(h.Strong(g.Text("Facts: ")), g.Text(rc.Facts)),
				h.P(h.Strong(g.Text("Ratio: ")), g.Text(rc.Ratio)),
			)
		}))),
		view.ResultSection("Comparison with Similar Concepts", h.P(view.TextOr(r.Comparison.String(), "N/A"))),
		view.ResultSection("10-Mark Model Answer", h.Div(h.Class("prewrap"), g.Text(r.ModelAnswer10Marks))),
		view.ResultSection("Potential Viva Questions", h.Ol(g.Map(r.VivaQuestions, func(q string) g.Node {
			return h.Li(g.Text(q))
		}))),
	}
}

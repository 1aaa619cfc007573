package pages

import (
	"github.com/kanoonai/kanoon-web/internal/routes"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

type feature struct {
	title       string
	description string
	path        string
}

var features = []feature{
	{"Legal Query Chatbot", "Get instant, accurate answers to complex legal questions, trained on Indian law.", routes.Chatbot},
	{"Document Generator", "Create print-ready contracts, affidavits, and deeds (NDA, Rent, Sale) in seconds.", routes.DocumentGenerator},
	{"Case Law Summarizer", "Upload any judgment and receive a perfect 9-point summary and downloadable report.", routes.CaseSummarizer},
	{"FIR & Evidence Analyzer", "Extract key information (complainant, sections, etc.) from uploaded FIRs instantly.", routes.FIRAnalyzer},
	{"Legal Notice Generator", "Draft and generate professional legal notices for unpaid salary, loan recovery, and more.", routes.NoticeGenerator},
	{"Law Student Hub", "Your personal AI mentor for simplifying bare acts, evaluating answers, and researching topics.", routes.LearningHub},
	{"FAQ Builder", "Instantly generate a list of common client questions and answers for any legal topic.", routes.FAQBuilder},
	{"Secure & Private", "Your data is your own. We prioritize security and confidentiality for all your work.", ""},
}

// HomeContent is the landing page.
func HomeContent() g.Node {
	return g.Group{
		h.Section(h.Class("hero"),
			h.H1(g.Text("Meet Your AI Legal Assistant")),
			h.P(g.Text("Automate your legal research, generate complex documents, and get instant answers. Our platform streamlines your entire workflow, saving you time and money.")),
			h.A(h.Class("btn btn-primary"), h.Href(routes.Signup), g.Text("Get Started Now")),
		),
		h.Section(
			h.H2(g.Text("An All-in-One Legal Toolkit")),
			h.P(g.Text("Everything you need to supercharge your legal practice.")),
			h.Div(h.Class("features"), g.Map(features, featureCard)),
		),
	}
}

func featureCard(f feature) g.Node {
	return h.Div(h.Class("card feature"),
		h.H3(g.If(f.path == "", g.Text(f.title)), g.If(f.path != "", h.A(h.Href(f.path), g.Text(f.title)))),
		h.P(g.Text(f.description)),
	)
}

// AboutContent describes the product and its developer.
func AboutContent() g.Node {
	return h.Article(h.Class("card"),
		h.H1(g.Text("About KanoonAI")),
		para("KanoonAI is a modern, AI-powered legal companion built to help people understand law simple, fast, and accessible for everyone in India."),
		para("Whether you're a student, professional, or someone seeking clarity, KanoonAI helps you understand legal concepts instantly."),
		para("We simplify complex laws, summarize cases, assist with drafting, and answer legal questions in clean, easy language, all within seconds."),
		para("Our goal is simple: to make legal knowledge easier to access, easier to learn, and easier to use."),
		h.Section(h.Class("result-section"),
			h.H2(g.Text("Meet the Developer")),
			h.H3(g.Text("K S Abrar Ali Ahmed")),
			para("College: K S School of Engineering and Management"),
			h.Div(h.Class("download-links"),
				h.A(h.Class("btn btn-primary"), h.Href("https://www.linkedin.com/in/abrar-ali-ahmed/"), h.Target("_blank"), h.Rel("noopener noreferrer"), g.Text("LinkedIn")),
				h.A(h.Class("btn btn-primary"), h.Href("https://github.com/AbrarAli9876/"), h.Target("_blank"), h.Rel("noopener noreferrer"), g.Text("GitHub")),
			),
			mailto(),
		),
	)
}

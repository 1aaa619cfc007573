package chatbot

import (
	"github.com/kanoonai/kanoon-web/internal/routes"
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	h "maragu.dev/gomponents/html"
)

type Sender string

const (
	User Sender = "user"
	AI   Sender = "ai"
)

const (
	greeting     = "Hello! I am KanoonAI. How can I assist you with your legal questions today?"
	fallbackText = "Sorry, I couldn't connect to the AI. Please check the backend server and try again."
	fallbackLaw  = "Connection Error"
)

// Message is one chat bubble.
type Message struct {
	Sender Sender
	Text   string
	Law    string
	// Error marks the fallback reply; its Law names the failure.
	Error bool
}

func page(history []Message) g.Node {
	return h.Div(h.Class("card chat"),
		h.Div(h.ID("chat-log"), h.Class("chat-log"),
			bubble(Message{Sender: AI, Text: greeting}),
			bubbles(history),
		),
		h.Form(
			h.Method("post"),
			h.Action(routes.Chatbot),
			hx.Post(routes.Chatbot),
			hx.Target("#chat-log"),
			hx.Swap("beforeend"),
			g.Attr("hx-disabled-elt", "find button[type='submit']"),
			g.Attr("hx-on::after-request", "if(event.detail.successful) this.reset()"),
			h.Div(h.Class("field"),
				h.Textarea(h.Name("query"), h.ID("query"), h.Class("input"), h.Rows("2"),
					h.Placeholder("Type your legal question here... (e.g., 'What is RERA?')"),
				),
			),
			h.Button(h.Type("submit"), h.Class("btn btn-primary"),
				h.Span(h.Class("idle-label"), g.Text("Send")),
				h.Span(h.Class("busy-label"), g.Text("KanoonAI is thinking...")),
			),
		),
	)
}

func bubbles(messages []Message) g.Node {
	return g.Map(messages, bubble)
}

func bubble(m Message) g.Node {
	return h.Div(h.Class("bubble "+string(m.Sender)),
		h.P(g.Text(m.Text)),
		g.If(m.Sender == AI && m.Law != "" && !m.Error,
			h.P(h.Class("law"), h.Strong(g.Text("Relevant Law: ")), g.Text(m.Law)),
		),
		g.If(m.Sender == AI && m.Error,
			h.P(h.Class("law alert-error"), h.Role("alert"), g.Text(m.Law)),
		),
	)
}

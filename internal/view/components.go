package view

import (
	"strconv"

	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	h "maragu.dev/gomponents/html"
)

// Field describes one labelled form control.
type Field struct {
	Name        string
	Label       string
	Value       string
	Placeholder string
	// Type defaults to "text".
	Type     string
	Required bool
	ReadOnly bool
}

// Input renders a labelled input.
func Input(f Field) g.Node {
	typ := f.Type
	if typ == "" {
		typ = "text"
	}
	return h.Div(h.Class("field"),
		fieldLabel(f),
		h.Input(
			h.Type(typ),
			h.ID(f.Name),
			h.Name(f.Name),
			h.Value(f.Value),
			h.Class("input"),
			g.If(f.Placeholder != "", h.Placeholder(f.Placeholder)),
			g.If(f.Required, h.Required()),
			g.If(f.ReadOnly, h.ReadOnly()),
		),
	)
}

// TextArea renders a labelled multi-line input.
func TextArea(f Field, rows int) g.Node {
	return h.Div(h.Class("field"),
		fieldLabel(f),
		h.Textarea(
			h.ID(f.Name),
			h.Name(f.Name),
			h.Rows(strconv.Itoa(rows)),
			h.Class("input"),
			g.If(f.Placeholder != "", h.Placeholder(f.Placeholder)),
			g.If(f.Required, h.Required()),
			g.Text(f.Value),
		),
	)
}

func fieldLabel(f Field) g.Node {
	return h.Label(h.For(f.Name), h.Class("label"),
		g.Text(f.Label),
		g.If(f.Required, h.Span(h.Class("required"), g.Text(" *"))),
	)
}

// Option is one choice of a Select.
type Option struct {
	Value    string
	Label    string
	Disabled bool
}

// Select renders a labelled drop-down with selected pre-chosen.
func Select(f Field, options []Option, extra ...g.Node) g.Node {
	return h.Div(h.Class("field"),
		fieldLabel(f),
		h.Select(
			h.ID(f.Name),
			h.Name(f.Name),
			h.Class("input"),
			g.If(f.Required, h.Required()),
			g.Group(extra),
			g.Map(options, func(o Option) g.Node {
				return h.Option(
					h.Value(o.Value),
					g.If(o.Value == f.Value, h.Selected()),
					g.If(o.Disabled, h.Disabled()),
					g.Text(o.Label),
				)
			}),
		),
	)
}

// Fieldset groups fields under a legend.
func Fieldset(legend string, children ...g.Node) g.Node {
	return h.FieldSet(h.Class("fieldset"),
		h.Legend(g.Text(legend)),
		g.Group(children),
	)
}

// HxForm posts in place with htmx and swaps the response into target. The
// submit button is disabled while the request is in flight. action keeps
// the form usable without JavaScript.
func HxForm(action, target string, children ...g.Node) g.Node {
	return h.Form(
		h.Method("post"),
		h.Action(action),
		hx.Post(action),
		hx.Target(target),
		hx.Swap("innerHTML"),
		g.Attr("hx-disabled-elt", "find button[type='submit']"),
		g.Group(children),
	)
}

// UploadForm is HxForm for multipart file uploads.
func UploadForm(action, target string, children ...g.Node) g.Node {
	return h.Form(
		h.Method("post"),
		h.Action(action),
		h.EncType("multipart/form-data"),
		hx.Post(action),
		hx.Target(target),
		hx.Swap("innerHTML"),
		hx.Encoding("multipart/form-data"),
		g.Attr("hx-disabled-elt", "find button[type='submit']"),
		g.Group(children),
	)
}

// SubmitButton shows busyLabel while htmx has the request in flight.
func SubmitButton(label, busyLabel string) g.Node {
	return h.Button(h.Type("submit"), h.Class("btn btn-primary"),
		h.Span(h.Class("idle-label"), g.Text(label)),
		h.Span(h.Class("busy-label"), g.Text(busyLabel)),
	)
}

// ErrorBanner renders msg as an inline error, or nothing when msg is empty.
func ErrorBanner(msg string) g.Node {
	if msg == "" {
		return nil
	}
	return h.Div(h.Class("alert alert-error"), h.Role("alert"), g.Text(msg))
}

// SuccessBanner renders msg as an inline confirmation.
func SuccessBanner(msg string) g.Node {
	if msg == "" {
		return nil
	}
	return h.Div(h.Class("alert alert-success"), h.Role("status"), g.Text(msg))
}

// Flash renders every flash message.
func Flash(f FlashData) g.Node {
	if f.Empty() {
		return nil
	}
	return h.Div(h.Class("flash"),
		g.Map(f.Success, SuccessBanner),
		g.Map(f.Error, ErrorBanner),
	)
}

// ResultSection titles one block of a rendered backend result.
func ResultSection(title string, children ...g.Node) g.Node {
	return h.Section(h.Class("result-section"),
		h.H3(g.Text(title)),
		g.Group(children),
	)
}

// TextOr renders s, or fallback in italics when s is empty.
func TextOr(s, fallback string) g.Node {
	if s == "" {
		return h.Em(g.Text(fallback))
	}
	return g.Text(s)
}

// BulletList renders items, or empty in italics when there are none.
func BulletList(items []string, empty string) g.Node {
	if len(items) == 0 {
		return h.P(h.Em(g.Text(empty)))
	}
	return h.Ul(h.Class("bullets"), g.Map(items, func(item string) g.Node {
		return h.Li(g.Text(item))
	}))
}

// DownloadLinks renders the generated file links. Empty URLs are skipped.
func DownloadLinks(pdfURL, docxURL string) g.Node {
	if pdfURL == "" && docxURL == "" {
		return nil
	}
	return h.Div(h.Class("download-links"),
		g.If(pdfURL != "", h.A(h.Href(pdfURL), h.Target("_blank"), h.Rel("noopener"), h.Class("btn btn-secondary"), g.Text("Download PDF"))),
		g.If(docxURL != "", h.A(h.Href(docxURL), h.Target("_blank"), h.Rel("noopener"), h.Class("btn btn-secondary"), g.Text("Download DOCX"))),
	)
}

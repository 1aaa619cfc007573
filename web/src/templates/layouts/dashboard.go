package layouts

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/kanoonai/kanoon-web/internal/domain"
	"github.com/kanoonai/kanoon-web/internal/routes"
	"github.com/kanoonai/kanoon-web/internal/view"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Shell describes the request-specific parts of the dashboard frame.
type Shell struct {
	// Path selects the active sidebar entry and the header title.
	Path  string
	User  *domain.Session
	Flash view.FlashData
}

// Dashboard wraps a feature page in the sidebar and top bar. A nil user
// renders the placeholder identity.
func Dashboard(shell Shell, content templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		title := routes.Title(shell.Path)
		return document(title, "dashboard",
			h.Div(h.Class("shell"),
				sidebar(shell.Path),
				h.Div(h.Class("main"),
					topbar(title, shell.User),
					h.Main(h.Class("content"), h.ID("content"),
						view.Flash(shell.Flash),
						view.AdaptTemplToGomponent(ctx, content),
					),
				),
			),
		).Render(w)
	})
}

func sidebar(active string) g.Node {
	current, _ := routes.Lookup(active)
	return h.Aside(h.Class("sidebar"),
		h.A(h.Class("brand"), h.Href(routes.Home), g.Text("KanoonAI")),
		h.Nav(
			g.Map(routes.Sidebar(), func(r routes.Route) g.Node {
				return h.A(
					h.Href(r.Path),
					g.Attr("data-icon", r.Icon),
					g.If(r.Path == current.Path, h.Class("active")),
					g.Text(r.Title),
				)
			}),
		),
	)
}

func topbar(title string, user *domain.Session) g.Node {
	return h.Header(h.Class("topbar"),
		h.H1(g.Text(title)),
		h.Div(h.Class("user"),
			avatar(user),
			h.Div(
				h.Strong(g.Text(user.DisplayName())),
				h.Small(g.Text(user.DisplayEmail())),
			),
			h.A(h.Href(routes.Settings), g.Text("Settings")),
			h.Form(h.Method("post"), h.Action(routes.Logout),
				h.Button(h.Type("submit"), h.Class("btn btn-link"), g.Text("Logout")),
			),
		),
	)
}

func avatar(user *domain.Session) g.Node {
	if user == nil || user.ProfilePicture == "" {
		return h.Span(h.Class("avatar"))
	}
	return h.Img(h.Class("avatar"), h.Src(user.ProfilePicture), h.Alt("Profile picture"))
}

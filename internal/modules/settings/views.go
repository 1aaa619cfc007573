package settings

import (
	"strings"

	"github.com/kanoonai/kanoon-web/internal/domain"
	"github.com/kanoonai/kanoon-web/internal/routes"
	"github.com/kanoonai/kanoon-web/internal/view"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	h "maragu.dev/gomponents/html"
)

const (
	profilePath  = routes.Settings + "/profile"
	passwordPath = routes.Settings + "/password"
)

var genderTitle = cases.Title(language.English)

// unsetGender stands in for profiles that never recorded a gender.
const unsetGender = "prefer_not_to_say"

func genderOrUnset(gender string) string {
	if gender == "" {
		return unsetGender
	}
	return gender
}

// genderLabel turns a stored gender value such as "prefer_not_to_say"
// into display text.
func genderLabel(gender string) string {
	return genderTitle.String(strings.ReplaceAll(genderOrUnset(gender), "_", " "))
}

func page(user domain.Session, profileResult, passwordResult g.Node) g.Node {
	return g.Group{
		h.Div(h.Class("card"),
			h.H3(g.Text("Profile")),
			h.Form(
				h.Method("post"),
				h.Action(profilePath),
				h.EncType("multipart/form-data"),
				hx.Post(profilePath),
				hx.Target("#profile-result"),
				hx.Encoding("multipart/form-data"),
				g.Attr("hx-disabled-elt", "find button[type='submit']"),
				avatar(user),
				view.Input(view.Field{Name: "name", Label: "Full Name", Value: user.Name, Placeholder: "Your Name"}),
				view.Input(view.Field{Name: "email", Label: "Email Address", Value: user.Email, Type: "email", ReadOnly: true}),
				view.Input(view.Field{Name: "gender", Label: "Gender", Value: genderLabel(user.Gender), ReadOnly: true}),
				view.Input(view.Field{Name: "phone", Label: "Phone Number", Value: user.Phone, Type: "tel", Placeholder: "+91 98765 43210"}),
				view.SubmitButton("Save Changes", "Saving..."),
			),
			h.Div(h.ID("profile-result"), profileResult),
		),
		h.Div(h.Class("card"),
			h.H3(g.Text("Change Password")),
			view.HxForm(passwordPath, "#password-result",
				view.Input(view.Field{Name: "current", Label: "Current Password", Type: "password", Placeholder: "••••••••"}),
				view.Input(view.Field{Name: "new", Label: "New Password", Type: "password", Placeholder: "••••••••"}),
				view.Input(view.Field{Name: "confirm", Label: "Confirm New Password", Type: "password", Placeholder: "••••••••"}),
				view.SubmitButton("Update Password", "Updating..."),
			),
			h.Div(h.ID("password-result"), passwordResult),
		),
		h.Div(h.Class("card links"),
			h.A(h.Href(routes.Terms), g.Text("Terms & Conditions")),
			h.A(h.Href(routes.Privacy), g.Text("Privacy Policy")),
			h.A(h.Href(routes.Support), g.Text("Customer Support")),
			h.A(h.Href(routes.ReportIssue), h.Class("danger"), g.Text("Report an Issue")),
		),
	}
}

func avatar(user domain.Session) g.Node {
	return h.Div(h.Class("field picture"),
		g.If(user.ProfilePicture != "",
			h.Img(h.Src(user.ProfilePicture), h.Alt("Profile picture"), h.Class("avatar large")),
		),
		g.If(user.ProfilePicture == "",
			h.Div(h.Class("avatar large placeholder"), g.Text(initial(user))),
		),
		h.Label(h.For("picture"), h.Class("label"), g.Text("Profile Picture")),
		h.Input(h.Type("file"), h.ID("picture"), h.Name("picture"), h.Accept("image/*")),
		g.If(user.ProfilePicture != "",
			h.Label(h.Class("checkbox"),
				h.Input(h.Type("checkbox"), h.Name("remove_picture")),
				g.Text(" Remove picture"),
			),
		),
	)
}

func initial(user domain.Session) string {
	name := []rune(user.DisplayName())
	return strings.ToUpper(string(name[:1]))
}

package pages

import (
	"strconv"

	"github.com/kanoonai/kanoon-web/internal/domain"
	"github.com/kanoonai/kanoon-web/internal/routes"
	"github.com/kanoonai/kanoon-web/internal/view"
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	h "maragu.dev/gomponents/html"
)

// SignupStrengthPath renders the live password strength meter.
const SignupStrengthPath = routes.Signup + "/strength"

// LoginData pre-fills the login form.
type LoginData struct {
	Email string
	Error string
}

// SignupData pre-fills the signup form after a rejected attempt.
type SignupData struct {
	Name   string
	Email  string
	Phone  string
	Gender string
	Error  string
}

// ForgotPasswordData carries the backend acknowledgement.
type ForgotPasswordData struct {
	Email   string
	Message string
	Error   string
}

// ResetPasswordData carries the token through the form.
type ResetPasswordData struct {
	Token string
	Error string
}

// GenderOptions are offered on the signup and settings forms.
var GenderOptions = []view.Option{
	{Value: "", Label: "Select Gender", Disabled: true},
	{Value: "Male", Label: "Male"},
	{Value: "Female", Label: "Female"},
	{Value: "Other", Label: "Other"},
}

func authCard(title string, children ...g.Node) g.Node {
	return h.Div(h.Class("card auth-card"),
		h.H1(g.Text(title)),
		g.Group(children),
	)
}

func plainForm(action string, children ...g.Node) g.Node {
	return h.Form(h.Method("post"), h.Action(action), g.Group(children))
}

// LoginContent is the sign-in form.
func LoginContent(d LoginData) g.Node {
	return authCard("Welcome Back",
		view.ErrorBanner(d.Error),
		plainForm(routes.Login,
			view.Input(view.Field{Name: "email", Label: "Email Address", Type: "email", Value: d.Email, Placeholder: "you@example.com", Required: true}),
			view.Input(view.Field{Name: "password", Label: "Password", Type: "password", Placeholder: "••••••••", Required: true}),
			h.P(h.A(h.Href(routes.ForgotPassword), g.Text("Forgot Password?"))),
			view.SubmitButton("Login", "Logging in..."),
		),
		h.P(g.Text("Don't have an account? "), h.A(h.Href(routes.Signup), g.Text("Sign Up"))),
	)
}

// SignupContent is the registration form.
func SignupContent(d SignupData) g.Node {
	return authCard("Create Your Account",
		view.ErrorBanner(d.Error),
		plainForm(routes.Signup,
			view.Input(view.Field{Name: "name", Label: "Full Name", Value: d.Name, Placeholder: "Ksaab", Required: true}),
			view.Input(view.Field{Name: "email", Label: "Email Address", Type: "email", Value: d.Email, Placeholder: "you@example.com", Required: true}),
			view.Input(view.Field{Name: "phone_number", Label: "Phone Number", Type: "tel", Value: d.Phone, Placeholder: "+91 98765 43210"}),
			view.Select(view.Field{Name: "gender", Label: "Gender", Value: d.Gender}, GenderOptions),
			h.Div(h.Class("field"),
				h.Label(h.For("password"), h.Class("label"), g.Text("Password")),
				h.Input(h.Type("password"), h.ID("password"), h.Name("password"), h.Class("input"), h.Placeholder("••••••••"), h.Required(),
					hx.Post(SignupStrengthPath),
					hx.Trigger("keyup changed delay:300ms"),
					hx.Target("#password-strength"),
				),
				h.Div(h.ID("password-strength"), PasswordStrength(domain.CheckPasswordStrength(""))),
			),
			view.Input(view.Field{Name: "confirm_password", Label: "Confirm Password", Type: "password", Placeholder: "••••••••", Required: true}),
			h.Div(h.Class("field"),
				h.Label(
					h.Input(h.Type("checkbox"), h.Name("terms"), h.Value("on")),
					g.Text(" I agree to the "),
					h.A(h.Href(routes.Terms), h.Target("_blank"), g.Text("Terms & Conditions")),
					g.Text(" and "),
					h.A(h.Href(routes.Privacy), h.Target("_blank"), g.Text("Privacy Policy")),
				),
			),
			view.SubmitButton("Sign Up", "Creating account..."),
		),
		h.P(g.Text("Already have an account? "), h.A(h.Href(routes.Login), g.Text("Log In"))),
	)
}

// PasswordStrength renders the strength meter fragment.
func PasswordStrength(s domain.PasswordStrength) g.Node {
	return h.P(h.Class("strength"), g.Attr("data-score", strconv.Itoa(s.Score)), g.Text(s.Label))
}

// ForgotPasswordContent asks for the account email.
func ForgotPasswordContent(d ForgotPasswordData) g.Node {
	return authCard("Reset Password",
		view.ErrorBanner(d.Error),
		g.If(d.Message != "", g.Group{
			view.SuccessBanner(d.Message),
			h.P(g.Text("Check your email (and spam folder) for the link.")),
		}),
		plainForm(routes.ForgotPassword,
			view.Input(view.Field{Name: "email", Label: "Email Address", Type: "email", Value: d.Email, Placeholder: "you@example.com", Required: true}),
			view.SubmitButton("Send Reset Link", "Sending..."),
		),
		h.P(h.A(h.Href(routes.Login), g.Text("Back to Login"))),
	)
}

// ResetPasswordContent sets a new password for the token.
func ResetPasswordContent(d ResetPasswordData) g.Node {
	return authCard("Set New Password",
		view.ErrorBanner(d.Error),
		plainForm(routes.ResetPassword,
			h.Input(h.Type("hidden"), h.Name("token"), h.Value(d.Token)),
			view.Input(view.Field{Name: "password", Label: "New Password", Type: "password", Placeholder: "••••••••", Required: true}),
			view.Input(view.Field{Name: "confirm_password", Label: "Confirm Password", Type: "password", Placeholder: "••••••••", Required: true}),
			view.SubmitButton("Update Password", "Updating..."),
		),
	)
}

// ResetInvalidContent is shown when the link carries no token.
func ResetInvalidContent() g.Node {
	return authCard("Invalid Request",
		h.P(g.Text("No reset token found. Please use the link from your email.")),
		h.A(h.Class("btn btn-primary"), h.Href(routes.Login), g.Text("Go to Login")),
	)
}

// ResetSuccessRefresh is the meta refresh value sending the visitor to the
// login page after a successful reset.
const ResetSuccessRefresh = "3;url=" + routes.Login

// ResetSuccessContent confirms the reset and redirects once to login.
func ResetSuccessContent() g.Node {
	return authCard("Password Updated!",
		h.Meta(g.Attr("http-equiv", "refresh"), h.Content(ResetSuccessRefresh)),
		h.P(g.Text("Your password has been changed successfully.")),
		h.P(g.Text("Redirecting to login...")),
		h.A(h.Class("btn btn-primary"), h.Href(routes.Login), g.Text("Login Now")),
	)
}

// Package routes is the static route table shared by the server, the
// dashboard shell and the CLI.
package routes

import "strings"

type Group string

const (
	Public    Group = "public"
	Dashboard Group = "dashboard"
)

// Well-known paths.
const (
	Home           = "/"
	Login          = "/login"
	Signup         = "/signup"
	Logout         = "/logout"
	ForgotPassword = "/forgot-password"
	ResetPassword  = "/reset-password"
	About          = "/about"
	Terms          = "/terms-and-conditions"
	Privacy        = "/privacy-policy"
	Support        = "/customer-support"
	ReportIssue    = "/report-issue"

	DashboardRoot     = "/dashboard"
	Chatbot           = "/dashboard/chatbot"
	DocumentGenerator = "/dashboard/document-generator"
	CaseSummarizer    = "/dashboard/case-summarizer"
	FIRAnalyzer       = "/dashboard/fir-analyzer"
	NoticeGenerator   = "/dashboard/notice-generator"
	LearningHub       = "/dashboard/learning-hub"
	FAQBuilder        = "/dashboard/faq-builder"
	Settings          = "/dashboard/settings"
)

// DefaultTitle is shown for dashboard paths without a table entry.
const DefaultTitle = "Dashboard"

// Route describes one page of the site.
type Route struct {
	Path      string
	Title     string
	Group     Group
	IsIndex   bool
	InSidebar bool
	// Icon names the sidebar glyph.
	Icon string
}

// Slug is the last path segment, used as the feature name.
func (r Route) Slug() string {
	return r.Path[strings.LastIndex(r.Path, "/")+1:]
}

var table = []Route{
	{Path: Home, Title: "Home", Group: Public},
	{Path: Login, Title: "Login", Group: Public},
	{Path: Signup, Title: "Sign Up", Group: Public},
	{Path: ForgotPassword, Title: "Forgot Password", Group: Public},
	{Path: ResetPassword, Title: "Reset Password", Group: Public},
	{Path: About, Title: "About", Group: Public},
	{Path: Terms, Title: "Terms & Conditions", Group: Public},
	{Path: Privacy, Title: "Privacy Policy", Group: Public},
	{Path: Support, Title: "Customer Support", Group: Public},
	{Path: ReportIssue, Title: "Report an Issue", Group: Public},

	{Path: DashboardRoot, Title: DefaultTitle, Group: Dashboard, IsIndex: true},
	{Path: Chatbot, Title: "Legal Query Chatbot", Group: Dashboard, InSidebar: true, Icon: "chat"},
	{Path: DocumentGenerator, Title: "Document Generator", Group: Dashboard, InSidebar: true, Icon: "document"},
	{Path: CaseSummarizer, Title: "Case Law Summarizer", Group: Dashboard, InSidebar: true, Icon: "scale"},
	{Path: FIRAnalyzer, Title: "FIR & Evidence Analyzer", Group: Dashboard, InSidebar: true, Icon: "search"},
	{Path: NoticeGenerator, Title: "Legal Notice Generator", Group: Dashboard, InSidebar: true, Icon: "notice"},
	{Path: LearningHub, Title: "Law Student Hub", Group: Dashboard, InSidebar: true, Icon: "book"},
	{Path: FAQBuilder, Title: "FAQ Builder", Group: Dashboard, InSidebar: true, Icon: "help"},
	{Path: Settings, Title: "Account Settings", Group: Dashboard},
}

// All returns every route in declaration order.
func All() []Route {
	out := make([]Route, len(table))
	copy(out, table)
	return out
}

// Sidebar returns the dashboard entries shown in the side navigation.
func Sidebar() []Route {
	var out []Route
	for _, r := range table {
		if r.InSidebar {
			out = append(out, r)
		}
	}
	return out
}

// Lookup finds the route registered at path. A trailing slash is ignored.
func Lookup(path string) (Route, bool) {
	if len(path) > 1 {
		path = strings.TrimRight(path, "/")
	}
	for _, r := range table {
		if r.Path == path {
			return r, true
		}
	}
	return Route{}, false
}

// Title returns the dashboard heading for path, falling back to
// DefaultTitle for unknown paths.
func Title(path string) string {
	if r, ok := Lookup(path); ok && r.Group == Dashboard {
		return r.Title
	}
	return DefaultTitle
}

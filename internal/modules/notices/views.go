package notices

import (
	"net/url"

	"github.com/kanoonai/kanoon-web/internal/backend"
	"github.com/kanoonai/kanoon-web/internal/modules/feature"
	"github.com/kanoonai/kanoon-web/internal/routes"
	"github.com/kanoonai/kanoon-web/internal/view"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

const (
	typeField   = "notice_type"
	defaultType = "unpaid_salary"
	resultID    = "notice-result"
)

func text(key, label, placeholder string) feature.Input {
	return feature.Input{Key: key, Label: label, Placeholder: placeholder}
}

func number(key, label, placeholder, def string) feature.Input {
	return feature.Input{Key: key, Label: label, Placeholder: placeholder, Type: "number", Default: def}
}

var variants = []feature.Variant{
	{
		Value: "unpaid_salary",
		Label: "Notice for Unpaid Salary",
		Sections: []feature.Section{
			{Legend: "1. Recipient Details (To)", Inputs: []feature.Input{
				text("unpaid_salary.recipient_name", "Recipient Full Name", "e.g., 'Mr. HR Manager'"),
				text("unpaid_salary.recipient_designation", "Recipient Designation", "e.g., 'Head of Human Resources'"),
				text("unpaid_salary.recipient_company_name", "Company Name", "e.g., 'Tech Solutions Pvt. Ltd.'"),
				text("unpaid_salary.recipient_company_address", "Company Address", "e.g., '123 Cyber Towers, Hyderabad'"),
			}},
			{Legend: "2. Sender Details (From)", Inputs: []feature.Input{
				text("unpaid_salary.sender_name", "Your Full Name", "e.g., 'Priya Sharma'"),
				text("unpaid_salary.employee_id", "Your Employee ID", "e.g., 'TS1234'"),
				text("unpaid_salary.employee_company_name", "Your Company Name", "e.g., 'Tech Solutions Pvt. Ltd.'"),
				text("unpaid_salary.employee_company_address", "Your Address (for records)", "e.g., '456, Green Park, Delhi'"),
			}},
			{Legend: "3. Case Details", Inputs: []feature.Input{
				text("unpaid_salary.employment_start_date", "Employment Start Date", "e.g., '01/06/2023'"),
				text("unpaid_salary.employment_end_date", "Employment End Date", "e.g., '15/10/2025'"),
				text("unpaid_salary.unpaid_salary_period", "Unpaid Salary Period", "e.g., 'September & October 2025'"),
				number("unpaid_salary.unpaid_salary_amount", "Unpaid Salary Amount (₹)", "e.g., '100000'", ""),
				text("unpaid_salary.unpaid_salary_amount_words", "Unpaid Salary (in words)", "e.g., 'One Lakh'"),
				number("unpaid_salary.response_time_days", "Response Time (in days)", "e.g., '15'", "15"),
			}},
		},
	},
	{
		Value: "loan_repayment",
		Label: "Notice for Loan Repayment",
		Sections: []feature.Section{
			{Legend: "1. Borrower Details (To)", Inputs: []feature.Input{
				text("loan_repayment.borrower_name", "Borrower's Full Name", "e.g., 'Mr. Arun Kumar'"),
				text("loan_repayment.borrower_address", "Borrower's Address", "e.g., '789, MG Road, Bangalore'"),
			}},
			{Legend: "2. Lender Details (From)", Inputs: []feature.Input{
				text("loan_repayment.lender_name", "Your Full Name (Lender)", "e.g., 'Mr. Suresh Reddy'"),
				text("loan_repayment.lender_address", "Your Address", "e.g., '123, Jubilee Hills, Hyderabad'"),
				text("loan_repayment.lender_contact", "Your Contact Number", "e.g., '98XXXXXX99'"),
			}},
			{Legend: "3. Loan & Default Details", Inputs: []feature.Input{
				number("loan_repayment.loan_amount", "Original Loan Amount (₹)", "e.g., '50000'", ""),
				text("loan_repayment.loan_amount_words", "Loan Amount (in words)", "e.g., 'Fifty Thousand'"),
				text("loan_repayment.loan_date", "Date of Loan", "e.g., '01/01/2025'"),
				number("loan_repayment.repayment_period", "Repayment Period (in months)", "e.g., '6'", ""),
				text("loan_repayment.loan_purpose", "Purpose of Loan", "e.g., 'a personal medical emergency'"),
				number("loan_repayment.installment_amount", "Installment Amount (₹)", "e.g., '9000'", ""),
				text("loan_repayment.outstanding_date", "Outstanding Amount As Of (Date)", "e.g., '12/11/2025'"),
				number("loan_repayment.outstanding_amount", "Total Outstanding Amount (₹)", "e.g., '32000'", ""),
				text("loan_repayment.outstanding_amount_words", "Outstanding Amount (in words)", "e.g., 'Thirty-Two Thousand'"),
				number("loan_repayment.response_time_days", "Response Time (in days)", "e.g., '15'", "15"),
			}},
		},
	},
	{Value: "defamation", Label: "Notice for Defamation (Coming Soon)", Disabled: true},
	{Value: "property", Label: "Property Dispute Notice (Coming Soon)", Disabled: true},
}

func page(selected string, values url.Values, region g.Node) g.Node {
	return h.Div(h.Class("split"),
		h.Div(h.Class("card"),
			view.HxForm(routes.NoticeGenerator, "#"+resultID,
				feature.VariantFields(typeField, "Notice Type", selected, variants, values),
				view.SubmitButton("Generate Notice", "Generating Notice..."),
			),
		),
		h.Div(h.Class("card"),
			h.H3(g.Text("Your Generated Files")),
			h.Div(h.ID(resultID), region),
		),
	)
}

func result(links *backend.DownloadLinks, errMsg string) g.Node {
	if errMsg != "" {
		return view.ErrorBanner(errMsg)
	}
	if links == nil {
		return h.P(h.Class("muted"), g.Text("Select a notice type and fill out the form."))
	}
	return g.Group{
		view.SuccessBanner("Success! Your notice is ready to download."),
		g.If(links.PDFURL == "", h.Div(h.Class("alert alert-warning"), h.Role("status"),
			g.Text("PDF conversion failed, but your DOCX file was generated."),
		)),
		view.DownloadLinks(links.PDFURL, links.DocxURL),
	}
}

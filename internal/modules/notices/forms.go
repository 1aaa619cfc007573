package notices

import "github.com/kanoonai/kanoon-web/internal/backend"

type UnpaidSalary struct {
	RecipientName           string `form:"unpaid_salary.recipient_name" json:"recipient_name" validate:"required"`
	RecipientDesignation    string `form:"unpaid_salary.recipient_designation" json:"recipient_designation" validate:"required"`
	RecipientCompanyName    string `form:"unpaid_salary.recipient_company_name" json:"recipient_company_name" validate:"required"`
	RecipientCompanyAddress string `form:"unpaid_salary.recipient_company_address" json:"recipient_company_address" validate:"required"`
	SenderName              string `form:"unpaid_salary.sender_name" json:"sender_name" validate:"required"`
	EmployeeID              string `form:"unpaid_salary.employee_id" json:"employee_id" validate:"required"`
	EmployeeCompanyName     string `form:"unpaid_salary.employee_company_name" json:"employee_company_name" validate:"required"`
	EmployeeCompanyAddress  string `form:"unpaid_salary.employee_company_address" json:"employee_company_address" validate:"required"`
	EmploymentStartDate     string `form:"unpaid_salary.employment_start_date" json:"employment_start_date" validate:"required"`
	EmploymentEndDate       string `form:"unpaid_salary.employment_end_date" json:"employment_end_date" validate:"required"`
	UnpaidSalaryPeriod      string `form:"unpaid_salary.unpaid_salary_period" json:"unpaid_salary_period" validate:"required"`
	UnpaidSalaryAmount      int    `form:"unpaid_salary.unpaid_salary_amount" json:"unpaid_salary_amount" validate:"required"`
	UnpaidSalaryAmountWords string `form:"unpaid_salary.unpaid_salary_amount_words" json:"unpaid_salary_amount_words" validate:"required"`
	ResponseTimeDays        int    `form:"unpaid_salary.response_time_days" json:"response_time_days" validate:"required"`
}

func (UnpaidSalary) Endpoint() string { return "/api/v1/notice/generate-unpaid-salary-notice" }

type LoanRepayment struct {
	BorrowerName           string `form:"loan_repayment.borrower_name" json:"borrower_name" validate:"required"`
	BorrowerAddress        string `form:"loan_repayment.borrower_address" json:"borrower_address" validate:"required"`
	LenderName             string `form:"loan_repayment.lender_name" json:"lender_name" validate:"required"`
	LenderAddress          string `form:"loan_repayment.lender_address" json:"lender_address" validate:"required"`
	LenderContact          string `form:"loan_repayment.lender_contact" json:"lender_contact" validate:"required"`
	LoanAmount             int    `form:"loan_repayment.loan_amount" json:"loan_amount" validate:"required"`
	LoanAmountWords        string `form:"loan_repayment.loan_amount_words" json:"loan_amount_words" validate:"required"`
	LoanDate               string `form:"loan_repayment.loan_date" json:"loan_date" validate:"required"`
	RepaymentPeriod        int    `form:"loan_repayment.repayment_period" json:"repayment_period" validate:"required"`
	LoanPurpose            string `form:"loan_repayment.loan_purpose" json:"loan_purpose" validate:"required"`
	InstallmentAmount      int    `form:"loan_repayment.installment_amount" json:"installment_amount" validate:"required"`
	OutstandingDate        string `form:"loan_repayment.outstanding_date" json:"outstanding_date" validate:"required"`
	OutstandingAmount      int    `form:"loan_repayment.outstanding_amount" json:"outstanding_amount" validate:"required"`
	OutstandingAmountWords string `form:"loan_repayment.outstanding_amount_words" json:"outstanding_amount_words" validate:"required"`
	ResponseTimeDays       int    `form:"loan_repayment.response_time_days" json:"response_time_days" validate:"required"`
}

func (LoanRepayment) Endpoint() string { return "/api/v1/notice/generate-loan-repayment-notice" }

func newNotice(value string) (backend.Generator, bool) {
	switch value {
	case "unpaid_salary":
		return &UnpaidSalary{}, true
	case "loan_repayment":
		return &LoanRepayment{}, true
	}
	return nil, false
}

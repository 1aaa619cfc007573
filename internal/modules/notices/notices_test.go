package notices_test

import (
	"encoding/json"
	"net/http"
	"net/url"
	"testing"

	"github.com/kanoonai/kanoon-web/internal/module"
	"github.com/kanoonai/kanoon-web/internal/modules/feature"
	"github.com/kanoonai/kanoon-web/internal/modules/notices"
	"github.com/kanoonai/kanoon-web/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const path = "/dashboard/notice-generator"

func setup(t *testing.T, handler http.HandlerFunc) (*testutils.Harness, *testutils.Backend) {
	t.Helper()
	fake := testutils.NewBackend(t, handler)
	h := testutils.NewHarness(t, fake.Client, func(d feature.Deps) module.Module { return notices.New(d) })
	return h, fake
}

func loanForm() url.Values {
	form := url.Values{"notice_type": {"loan_repayment"}}
	for key, value := range map[string]string{
		"borrower_name":            "Mr. Arun Kumar",
		"borrower_address":         "789, MG Road, Bangalore",
		"lender_name":              "Mr. Suresh Reddy",
		"lender_address":           "123, Jubilee Hills, Hyderabad",
		"lender_contact":           "9800000099",
		"loan_amount":              "50000",
		"loan_amount_words":        "Fifty Thousand",
		"loan_date":                "01/01/2025",
		"repayment_period":         "6",
		"loan_purpose":             "a medical emergency",
		"installment_amount":       "9000",
		"outstanding_date":         "12/11/2025",
		"outstanding_amount":       "32000",
		"outstanding_amount_words": "Thirty-Two Thousand",
		"response_time_days":       "15",
	} {
		form.Set("loan_repayment."+key, value)
	}
	return form
}

func TestGetListsComingSoonTypesDisabled(t *testing.T) {
	h, _ := setup(t, func(w http.ResponseWriter, r *http.Request) {})

	rec := h.Get(path)
	require.Equal(t, http.StatusOK, rec.Code)
	body := testutils.Body(t, rec)
	assert.Contains(t, body, `<option value="defamation" disabled>Notice for Defamation (Coming Soon)</option>`)
	assert.Contains(t, body, `<option value="unpaid_salary" selected>Notice for Unpaid Salary</option>`)
	assert.Contains(t, body, `name="unpaid_salary.response_time_days" value="15"`)
	assert.Contains(t, body, "Select a notice type and fill out the form.")
}

func TestLoanRepaymentNotice(t *testing.T) {
	h, _ := setup(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/notice/generate-loan-repayment-notice", r.URL.Path)
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, float64(32000), body["outstanding_amount"])
		assert.Equal(t, "Mr. Arun Kumar", body["borrower_name"])
		assert.Len(t, body, 15)
		testutils.JSON(w, http.StatusOK, `{"pdf_url":null,"docx_url":"/static/outputs/notice.docx"}`)
	})

	rec := h.PostForm(path, loanForm())
	require.Equal(t, http.StatusOK, rec.Code)
	body := testutils.Body(t, rec)
	assert.Contains(t, body, "Success! Your notice is ready to download.")
	assert.Contains(t, body, "PDF conversion failed, but your DOCX file was generated.")
	assert.NotContains(t, body, "Download PDF")
	assert.Contains(t, body, "/static/outputs/notice.docx")
}

func TestUnsupportedTypeNeverCallsBackend(t *testing.T) {
	h, fake := setup(t, func(w http.ResponseWriter, r *http.Request) {})

	rec := h.PostForm(path, url.Values{"notice_type": {"defamation"}})
	assert.Contains(t, testutils.Body(t, rec), "Selected notice type is not yet supported.")
	assert.Equal(t, 0, fake.Calls())
}

func TestZeroAmountIsMissing(t *testing.T) {
	h, fake := setup(t, func(w http.ResponseWriter, r *http.Request) {})

	form := loanForm()
	form.Set("loan_repayment.loan_amount", "")

	rec := h.PostForm(path, form)
	assert.Contains(t, testutils.Body(t, rec), "Please fill in the required fields: Original Loan Amount (₹).")
	assert.Equal(t, 0, fake.Calls())
}

func TestValidationDetailFromBackend(t *testing.T) {
	h, _ := setup(t, func(w http.ResponseWriter, r *http.Request) {
		testutils.JSON(w, http.StatusUnprocessableEntity, `{"detail":[{"loc":["body","loan_amount"],"msg":"Input should be greater than 0"}]}`)
	})

	rec := h.PostForm(path, loanForm())
	assert.Contains(t, testutils.Body(t, rec), "loan_amount")
}

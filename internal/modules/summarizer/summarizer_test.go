package summarizer_test

import (
	"io"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/kanoonai/kanoon-web/internal/activity"
	"github.com/kanoonai/kanoon-web/internal/module"
	"github.com/kanoonai/kanoon-web/internal/modules/feature"
	"github.com/kanoonai/kanoon-web/internal/modules/summarizer"
	"github.com/kanoonai/kanoon-web/internal/storage"
	"github.com/kanoonai/kanoon-web/internal/testutils"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const path = "/dashboard/case-summarizer"

const summaryJSON = `{
	"summary_data": {
		"case_title_info": {"case_name": "State v. Sharma", "case_number": "CRL.A 12/2020", "court_name": "High Court of Delhi", "jurisdiction": "", "citations": ["2021 SCC 1", "AIR 2021 SC 5"]},
		"parties_involved": {"petitioner": "State", "advocates_petitioner": "", "respondent": "R. Sharma", "advocates_respondent": "Adv. Rao"},
		"dates": {"date_of_filing": "01/02/2020", "date_of_judgment": "05/06/2021"},
		"sections_invoked": "IPC 302",
		"legal_issues": ["Whether the confession was voluntary", ""],
		"final_judgment": ""
	},
	"download_links": {"pdf_url": "/static/summaries/s.pdf", "docx_url": "/static/summaries/s.docx"}
}`

func setup(t *testing.T, handler http.HandlerFunc) (*testutils.Harness, *testutils.Backend, afero.Fs) {
	t.Helper()
	fs := afero.NewMemMapFs()
	fake := testutils.NewBackend(t, handler)
	h := testutils.NewHarness(t, fake.Client, func(d feature.Deps) module.Module {
		return summarizer.New(summarizer.Deps{
			Deps:     d,
			Stager:   storage.NewStager(storage.NewAferoStore(fs)),
			MaxBytes: 1 << 20,
		})
	})
	return h, fake, fs
}

func stagedFiles(t *testing.T, fs afero.Fs) int {
	t.Helper()
	count := 0
	err := afero.Walk(fs, "/", func(path string, info os.FileInfo, err error) error {
		if err == nil && !info.IsDir() {
			count++
		}
		return nil
	})
	require.NoError(t, err)
	return count
}

func TestGetRendersUploader(t *testing.T) {
	h, _, _ := setup(t, func(w http.ResponseWriter, r *http.Request) {})

	rec := h.Get(path)
	require.Equal(t, http.StatusOK, rec.Code)
	body := testutils.Body(t, rec)
	assert.Contains(t, body, `enctype="multipart/form-data"`)
	assert.Contains(t, body, "Summarize Document")
	assert.Contains(t, body, "Supports: .pdf, .docx, .txt")
}

func TestSummaryRendersAllSections(t *testing.T) {
	h, _, fs := setup(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/summarizer/upload-and-summarize", r.URL.Path)
		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		content, _ := io.ReadAll(file)
		assert.Equal(t, "judgment.pdf", header.Filename)
		assert.Equal(t, "JUDGMENT TEXT", string(content))
		testutils.JSON(w, http.StatusOK, summaryJSON)
	})

	rec := h.Upload(t, path, "file", "judgment.pdf", "JUDGMENT TEXT")
	require.Equal(t, http.StatusOK, rec.Code)
	body := testutils.Body(t, rec)
	for _, section := range []string{"1. Case Title", "2. Parties Involved", "3. Date of Judgment", "4. Important Dates", "5. Sections Invoked", "6. Legal Issues / Questions Before the Court", "7. Final Judgment"} {
		assert.Contains(t, body, section)
	}
	assert.Contains(t, body, "State v. Sharma")
	assert.Contains(t, body, "2021 SCC 1, AIR 2021 SC 5")
	assert.Contains(t, body, "<dt>Jurisdiction</dt><dd><em>N/A</em></dd>")
	assert.Contains(t, body, "<li>Whether the confession was voluntary</li>")
	assert.Contains(t, body, "No summary available.")
	assert.Contains(t, body, "/static/summaries/s.docx")
	assert.Equal(t, 0, stagedFiles(t, fs))

	assert.Eventually(t, func() bool {
		return h.Tally.Snapshot()["case-summarizer"] == activity.Counts{Succeeded: 1}
	}, time.Second, 10*time.Millisecond)
}

func TestMissingFile(t *testing.T) {
	h, fake, _ := setup(t, func(w http.ResponseWriter, r *http.Request) {})

	rec := h.Upload(t, path, "file", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, testutils.Body(t, rec), "Please select a file to summarize.")
	assert.Equal(t, 0, fake.Calls())
}

func TestUnsupportedFileType(t *testing.T) {
	h, fake, fs := setup(t, func(w http.ResponseWriter, r *http.Request) {})

	rec := h.Upload(t, path, "file", "photo.png", "PNG")
	assert.Contains(t, testutils.Body(t, rec), "Unsupported file type. Please upload a PDF, DOCX, or TXT file.")
	assert.Equal(t, 0, fake.Calls())
	assert.Equal(t, 0, stagedFiles(t, fs))
}

func TestBackendDetailIsShown(t *testing.T) {
	h, _, fs := setup(t, func(w http.ResponseWriter, r *http.Request) {
		testutils.JSON(w, http.StatusBadRequest, `{"detail":"Could not extract text from the document."}`)
	})

	rec := h.Upload(t, path, "file", "scan.pdf", "%PDF")
	assert.Contains(t, testutils.Body(t, rec), "Could not extract text from the document.")
	assert.Equal(t, 1, stagedFiles(t, fs), "a rejected upload is kept for inspection")
}

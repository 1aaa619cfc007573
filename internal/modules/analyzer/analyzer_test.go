package analyzer_test

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/kanoonai/kanoon-web/internal/activity"
	"github.com/kanoonai/kanoon-web/internal/module"
	"github.com/kanoonai/kanoon-web/internal/modules/analyzer"
	"github.com/kanoonai/kanoon-web/internal/modules/feature"
	"github.com/kanoonai/kanoon-web/internal/storage"
	"github.com/kanoonai/kanoon-web/internal/testutils"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const path = "/dashboard/fir-analyzer"

func setup(t *testing.T, maxBytes int64, handler http.HandlerFunc) (*testutils.Harness, *testutils.Backend) {
	t.Helper()
	fake := testutils.NewBackend(t, handler)
	h := testutils.NewHarness(t, fake.Client, func(d feature.Deps) module.Module {
		return analyzer.New(analyzer.Deps{
			Deps:     d,
			Stager:   storage.NewStager(storage.NewAferoStore(afero.NewMemMapFs())),
			MaxBytes: maxBytes,
		})
	})
	return h, fake
}

func TestAnalysisRendersElevenFields(t *testing.T) {
	h, _ := setup(t, 1<<20, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/analyzer/analyze-fir", r.URL.Path)
		testutils.JSON(w, http.StatusOK, `{
			"fir_number": "42/2025",
			"police_station": "Koramangala",
			"date_of_filing": null,
			"complainant": "A. Kumar",
			"date_and_time_of_incident": "03/03/2025 22:00",
			"place_of_incident": "MG Road",
			"accused_name": ["B. Singh", "C. Rao"],
			"witnesses": [],
			"offence": "Theft",
			"offences_mentioned": "IPC 379",
			"investigating_officer": "SI Patil"
		}`)
	})

	rec := h.Upload(t, path, "file", "fir.txt", "FIR")
	require.Equal(t, http.StatusOK, rec.Code)
	body := testutils.Body(t, rec)
	assert.Equal(t, 11, strings.Count(body, "<dt>"))
	assert.Contains(t, body, "<dt>Date of Filing</dt><dd><em>Not Found</em></dd>")
	assert.Contains(t, body, "B. Singh, C. Rao")
	assert.Contains(t, body, "No witnesses mentioned")
	assert.Contains(t, body, "SI Patil")

	assert.Eventually(t, func() bool {
		return h.Tally.Snapshot()["fir-analyzer"] == activity.Counts{Succeeded: 1}
	}, time.Second, 10*time.Millisecond)
}

func TestMissingFIR(t *testing.T) {
	h, fake := setup(t, 1<<20, func(w http.ResponseWriter, r *http.Request) {})

	rec := h.Upload(t, path, "file", "", "")
	assert.Contains(t, testutils.Body(t, rec), "Please select an FIR to analyze.")
	assert.Equal(t, 0, fake.Calls())
}

func TestOversizedFIR(t *testing.T) {
	h, fake := setup(t, 1<<20, func(w http.ResponseWriter, r *http.Request) {})

	big := make([]byte, 2<<20)
	rec := h.Upload(t, path, "file", "fir.pdf", string(big))
	assert.Contains(t, testutils.Body(t, rec), "File is too large. The maximum size is 1 MB.")
	assert.Equal(t, 0, fake.Calls())
}

func TestUnreachableBackend(t *testing.T) {
	h, fake := setup(t, 1<<20, func(w http.ResponseWriter, r *http.Request) {})
	fake.Server.Close()

	rec := h.Upload(t, path, "file", "fir.pdf", "FIR")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, testutils.Body(t, rec), `role="alert"`)

	assert.Eventually(t, func() bool {
		return h.Tally.Snapshot()["fir-analyzer"] == activity.Counts{Failed: 1}
	}, time.Second, 10*time.Millisecond)
}

package learning_test

import (
	"encoding/json"
	"net/http"
	"net/url"
	"testing"

	"github.com/kanoonai/kanoon-web/internal/module"
	"github.com/kanoonai/kanoon-web/internal/modules/feature"
	"github.com/kanoonai/kanoon-web/internal/modules/learning"
	"github.com/kanoonai/kanoon-web/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const path = "/dashboard/learning-hub"

func setup(t *testing.T, handler http.HandlerFunc) (*testutils.Harness, *testutils.Backend) {
	t.Helper()
	fake := testutils.NewBackend(t, handler)
	h := testutils.NewHarness(t, fake.Client, func(d feature.Deps) module.Module { return learning.New(d) })
	return h, fake
}

func TestGetSelectsToolFromQuery(t *testing.T) {
	h, _ := setup(t, func(w http.ResponseWriter, r *http.Request) {})

	tests := []struct {
		query  string
		active string
		field  string
	}{
		{"", "Bare Act Simplifier", `name="section"`},
		{"?tool=evaluate", "Answer Evaluator", `name="answer"`},
		{"?tool=research", "Legal Researcher", `name="topic"`},
		{"?tool=unknown", "Bare Act Simplifier", `name="section"`},
	}
	for _, tt := range tests {
		t.Run(tt.active+tt.query, func(t *testing.T) {
			body := testutils.Body(t, h.Get(path+tt.query))
			assert.Contains(t, body, `class="tab active" aria-selected="true">`+tt.active+`</a>`)
			assert.Contains(t, body, tt.field)
		})
	}
}

func TestToolPanelRedirectsWithoutHTMX(t *testing.T) {
	h, _ := setup(t, func(w http.ResponseWriter, r *http.Request) {})

	rec := h.Get(path + "/research")
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, path+"?tool=research", rec.Header().Get("Location"))
}

func TestEmptyInputsNeverCallBackend(t *testing.T) {
	h, fake := setup(t, func(w http.ResponseWriter, r *http.Request) {})

	tests := []struct {
		tool    string
		form    url.Values
		message string
	}{
		{"simplify", url.Values{"section": {"  "}}, "Please enter a legal section."},
		{"evaluate", url.Values{"question": {"What is murder?"}, "answer": {""}}, "Please provide both the question and your answer."},
		{"research", url.Values{}, "Please enter a legal topic to research."},
	}
	for _, tt := range tests {
		t.Run(tt.tool, func(t *testing.T) {
			rec := h.PostForm(path+"/"+tt.tool, tt.form)
			require.Equal(t, http.StatusOK, rec.Code)
			assert.Contains(t, testutils.Body(t, rec), tt.message)
		})
	}
	assert.Equal(t, 0, fake.Calls())
}

func TestSimplify(t *testing.T) {
	h, _ := setup(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/learning/simplify-bare-act", r.URL.Path)
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "IPC 304A", body["section"])
		testutils.JSON(w, http.StatusOK, `{
			"section_title": "Section 304A IPC",
			"simplified_meaning": "Death by negligence.",
			"legal_ingredients": ["Death caused", "Rash or negligent act"],
			"exceptions": [],
			"real_life_illustration": "A driver speeding.",
			"landmark_cases": [{"case_name": "Jacob Mathew v. State of Punjab", "citation": "(2005) 6 SCC 1", "summary": "Medical negligence."}],
			"memory_trick": "RND"
		}`)
	})

	rec := h.PostForm(path+"/simplify", url.Values{"section": {"IPC 304A"}})
	require.Equal(t, http.StatusOK, rec.Code)
	body := testutils.Body(t, rec)
	assert.Contains(t, body, "Section 304A IPC")
	assert.Contains(t, body, "<li>Rash or negligent act</li>")
	assert.Contains(t, body, "No specific exceptions mentioned.")
	assert.Contains(t, body, "Jacob Mathew v. State of Punjab")
	assert.NotContains(t, body, "<html")
}

func TestEvaluateShowsStringMarks(t *testing.T) {
	h, _ := setup(t, func(w http.ResponseWriter, r *http.Request) {
		testutils.JSON(w, http.StatusOK, `{
			"marks_out_of_10": "7",
			"evaluation_criteria": {"structure": "Good", "case_usage": "", "bare_act_accuracy": "Fair", "grammar": "Good", "legal_reasoning": "Weak"},
			"mistakes": ["No case law cited"],
			"improved_answer": "Culpable homicide...",
			"suggestion_to_score_more": "Cite Reg v. Govinda."
		}`)
	})

	rec := h.PostForm(path+"/evaluate", url.Values{"question": {"Q"}, "answer": {"A"}})
	body := testutils.Body(t, rec)
	assert.Contains(t, body, `<span class="marks">7</span>`)
	assert.Contains(t, body, "<dt>Case Law Usage</dt><dd><em>N/A</em></dd>")
	assert.Contains(t, body, "Cite Reg v. Govinda.")
}

func TestResearchRendersFullPageWithoutHTMX(t *testing.T) {
	h, _ := setup(t, func(w http.ResponseWriter, r *http.Request) {
		testutils.JSON(w, http.StatusOK, `{
			"topic_definition": "Common intention.",
			"bare_act_section": ["Section 34 IPC"],
			"legal_ingredients": [],
			"important_cases": [{"case_name": "Mahbub Shah v. Emperor", "facts": "F", "ratio": "R"}],
			"comparison": null,
			"model_answer_10_marks": "Answer",
			"viva_questions": ["What is common intention?"]
		}`)
	})

	rec := h.Post(path+"/research", url.Values{"topic": {"Section 34 IPC"}})
	require.Equal(t, http.StatusOK, rec.Code)
	body := testutils.Body(t, rec)
	assert.Contains(t, body, "<html")
	assert.Contains(t, body, `value="Section 34 IPC"`)
	assert.Contains(t, body, "Mahbub Shah v. Emperor")
	assert.Contains(t, body, `class="tab active" aria-selected="true">Legal Researcher</a>`)
}

package backend

import (
	"encoding/json"
	"strings"
)

// Text decodes either a JSON string or an array of strings. The backend's
// AI extraction returns both shapes for the same field.
type Text string

func (t *Text) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*t = ""
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*t = Text(s)
		return nil
	}

	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return err
	}
	*t = Text(strings.Join(list, ", "))
	return nil
}

func (t Text) String() string {
	return string(t)
}

// DownloadLinks is the set of generated files for one request.
type DownloadLinks struct {
	PDFURL  string `json:"pdf_url,omitempty"`
	DocxURL string `json:"docx_url,omitempty"`
}

// MessageResponse is the acknowledgement body of the password endpoints.
type MessageResponse struct {
	Message string `json:"message"`
}

type ChatAnswer struct {
	AIResponse  string `json:"ai_response"`
	RelevantLaw string `json:"relevant_law"`
}

type CaseSummary struct {
	CaseTitleInfo struct {
		CaseName     Text `json:"case_name"`
		CaseNumber   Text `json:"case_number"`
		CourtName    Text `json:"court_name"`
		Jurisdiction Text `json:"jurisdiction"`
		Citations    Text `json:"citations"`
	} `json:"case_title_info"`
	PartiesInvolved struct {
		Petitioner          Text `json:"petitioner"`
		AdvocatesPetitioner Text `json:"advocates_petitioner"`
		Respondent          Text `json:"respondent"`
		AdvocatesRespondent Text `json:"advocates_respondent"`
	} `json:"parties_involved"`
	Dates struct {
		DateOfFiling   Text `json:"date_of_filing"`
		DateOfJudgment Text `json:"date_of_judgment"`
	} `json:"dates"`
	SectionsInvoked Text     `json:"sections_invoked"`
	LegalIssues     []string `json:"legal_issues"`
	FinalJudgment   Text     `json:"final_judgment"`
}

type SummaryResult struct {
	Summary       CaseSummary   `json:"summary_data"`
	DownloadLinks DownloadLinks `json:"download_links"`
}

type FIRAnalysis struct {
	FIRNumber             Text     `json:"fir_number"`
	PoliceStation         Text     `json:"police_station"`
	DateOfFiling          Text     `json:"date_of_filing"`
	Complainant           Text     `json:"complainant"`
	DateAndTimeOfIncident Text     `json:"date_and_time_of_incident"`
	PlaceOfIncident       Text     `json:"place_of_incident"`
	AccusedName           Text     `json:"accused_name"`
	Witnesses             []string `json:"witnesses"`
	Offence               Text     `json:"offence"`
	OffencesMentioned     Text     `json:"offences_mentioned"`
	InvestigatingOfficer  Text     `json:"investigating_officer"`
}

type FAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type FAQDownload struct {
	PDFURL   string `json:"pdf_url"`
	Filename string `json:"filename"`
}

type LandmarkCase struct {
	CaseName string `json:"case_name"`
	Citation string `json:"citation"`
	Summary  string `json:"summary"`
}

type Simplification struct {
	SectionTitle         string         `json:"section_title"`
	SimplifiedMeaning    string         `json:"simplified_meaning"`
	LegalIngredients     []string       `json:"legal_ingredients"`
	Exceptions           []string       `json:"exceptions"`
	RealLifeIllustration string         `json:"real_life_illustration"`
	LandmarkCases        []LandmarkCase `json:"landmark_cases"`
	MemoryTrick          string         `json:"memory_trick"`
}

type Evaluation struct {
	MarksOutOf10       json.Number `json:"marks_out_of_10"`
	EvaluationCriteria struct {
		Structure       string `json:"structure"`
		CaseUsage       string `json:"case_usage"`
		BareActAccuracy string `json:"bare_act_accuracy"`
		Grammar         string `json:"grammar"`
		LegalReasoning  string `json:"legal_reasoning"`
	} `json:"evaluation_criteria"`
	Mistakes              []string `json:"mistakes"`
	ImprovedAnswer        string   `json:"improved_answer"`
	SuggestionToScoreMore string   `json:"suggestion_to_score_more"`
}

type ResearchCase struct {
	CaseName string `json:"case_name"`
	Facts    string `json:"facts"`
	Ratio    string `json:"ratio"`
}

type Research struct {
	TopicDefinition    string         `json:"topic_definition"`
	BareActSection     Text           `json:"bare_act_section"`
	LegalIngredients   []string       `json:"legal_ingredients"`
	ImportantCases     []ResearchCase `json:"important_cases"`
	Comparison         Text           `json:"comparison"`
	ModelAnswer10Marks string         `json:"model_answer_10_marks"`
	VivaQuestions      []string       `json:"viva_questions"`
}

package domain

// QuestionType controls how a question is answered.
type QuestionType string

const (
	QuestionLikert      QuestionType = "likert"
	QuestionSelect      QuestionType = "select"
	QuestionMultiSelect QuestionType = "multi-select"
	QuestionNumber      QuestionType = "number"
	QuestionText        QuestionType = "text"
)

type Question struct {
	ID      string       `json:"id"`
	Text    string       `json:"text"`
	Area    Area         `json:"area"`
	Section string       `json:"section"`
	Type    QuestionType `json:"type"`
	Options []string     `json:"options,omitempty"`
}

var sectionNames = map[Area]string{
	AreaGeneral:               "Institutional Overview",
	AreaGovernance:            "Governance & Leadership",
	AreaAcademic:              "Academic Affairs",
	AreaStudentServices:       "Student Services & Success",
	AreaEnrollment:            "Enrollment Management & Admissions",
	AreaFinance:               "Finance & Budget",
	AreaHumanResources:        "Human Resources & Talent",
	AreaTechnology:            "Information Technology & Digital Infrastructure",
	AreaFacilities:            "Facilities & Operations",
	AreaMarketing:             "Marketing, Communications & Advancement",
	AreaInstitutionalResearch: "Institutional Research & Data Analytics",
	AreaCompliance:            "Compliance & Risk Management",
}

var (
	yesNo        = []string{"Yes", "No"}
	yesNoPlanned = []string{"Yes", "No", "Planned"}
)

func q(id string, area Area, typ QuestionType, text string, options ...string) Question {
	return Question{ID: id, Text: text, Area: area, Section: sectionNames[area], Type: typ, Options: options}
}

var questionBank = []Question{
	q("inst-1", AreaGeneral, QuestionSelect, "What is your institution type?",
		"Community College", "Regional University", "Flagship", "Private Non-profit"),
	q("inst-2", AreaGeneral, QuestionNumber, "Number of physical campuses?"),
	q("inst-3", AreaGeneral, QuestionSelect, "Do campuses currently share centralized admin services?",
		"Yes", "Partial", "No"),
	q("inst-4", AreaGeneral, QuestionNumber, "Annual operating budget (USD)?"),
	q("inst-5", AreaGeneral, QuestionNumber, "How many enterprise systems (ERP, SIS, CRM, LMS, HCM) duplicate each other's function?"),

	q("gov-1", AreaGovernance, QuestionLikert, "Is there a written decision-matrix delineating authority across divisions?"),
	q("gov-2", AreaGovernance, QuestionLikert, "How often does cabinet-level strategic review surface overlapping initiatives?"),
	q("gov-3", AreaGovernance, QuestionLikert, "How much overlap in reporting lines appears in the org chart?"),

	q("acad-1", AreaAcademic, QuestionLikert, "How fragmented are academic divisions and colleges?"),
	q("acad-2", AreaAcademic, QuestionLikert, "How common are courses with fewer than 10 enrolled students?"),
	q("acad-3", AreaAcademic, QuestionLikert, "How often are course shells rebuilt separately on each campus?"),
	q("acad-4", AreaAcademic, QuestionNumber, "How many academic or administrative roles duplicate another role's function?"),

	q("ss-1", AreaStudentServices, QuestionSelect, "Is advising decentralized by college?", yesNo...),
	q("ss-2", AreaStudentServices, QuestionNumber, "Student-to-advisor ratio?"),
	q("ss-3", AreaStudentServices, QuestionSelect, "AI chatbots currently deployed for tier-1 FAQs?", yesNoPlanned...),

	q("enroll-1", AreaEnrollment, QuestionNumber, "What is your annual enrollment target?"),
	q("enroll-2", AreaEnrollment, QuestionSelect, "Is application processing centralized or decentralized?",
		"Centralized", "Decentralized"),
	q("enroll-3", AreaEnrollment, QuestionSelect, "Do you use AI tools for lead scoring or outreach?", yesNoPlanned...),

	q("fin-1", AreaFinance, QuestionLikert, "How far are budget owners from zero-based budgeting practice?"),
	q("fin-2", AreaFinance, QuestionLikert, "How often is procurement spend duplicated across independent cost centers?"),
	q("fin-3", AreaFinance, QuestionLikert, "How much purchasing happens outside shared services consortia?"),

	q("hr-1", AreaHumanResources, QuestionSelect, "Does your institution use a centralized applicant tracking system?", yesNoPlanned...),
	q("hr-2", AreaHumanResources, QuestionNumber, "Average time-to-fill for open staff roles (in days)?"),
	q("hr-3", AreaHumanResources, QuestionNumber, "Percent of performance reviews completed on time?"),

	q("it-1", AreaTechnology, QuestionLikert, "How far have key systems migrated to cloud/SaaS?"),
	q("it-2", AreaTechnology, QuestionLikert, "How well does help-desk automation resolve routine requests?"),
	q("it-3", AreaTechnology, QuestionLikert, "How widely is RPA/AI used for transcript evaluation?"),

	q("fac-1", AreaFacilities, QuestionNumber, "Total gross square footage managed by facilities staff?"),
	q("fac-2", AreaFacilities, QuestionSelect, "Do multiple campuses share maintenance or security contracts?", yesNo...),
	q("fac-3", AreaFacilities, QuestionNumber, "Energy cost per square foot (annual average in USD)?"),

	q("mkt-1", AreaMarketing, QuestionNumber, "Number of full-time staff supporting marketing and communications?"),
	q("mkt-2", AreaMarketing, QuestionSelect, "Are advancement/alumni engagement tools integrated with CRM?",
		"Yes", "No", "Partially"),
	q("mkt-3", AreaMarketing, QuestionNumber, "Percent of marketing budget allocated to digital advertising?"),

	q("ir-1", AreaInstitutionalResearch, QuestionLikert, "How mature is your dedicated institutional research function?"),
	q("ir-2", AreaInstitutionalResearch, QuestionLikert, "How regularly does leadership review key performance indicators?"),
	q("ir-3", AreaInstitutionalResearch, QuestionLikert, "How complete is the centralized data warehouse for cross-functional reporting?"),

	q("comp-1", AreaCompliance, QuestionSelect, "How often is FERPA training completed by faculty/staff?",
		"Annually", "Every two years", "Not required"),
	q("comp-2", AreaCompliance, QuestionSelect, "Does the institution have a formal risk register?", yesNo...),
	q("comp-3", AreaCompliance, QuestionSelect, "Have there been any recent data privacy incidents?", yesNo...),
}

// Questions returns the full bank in presentation order.
func Questions() []Question {
	out := make([]Question, len(questionBank))
	copy(out, questionBank)
	return out
}

// QuestionsForTier returns the questions whose area the tier unlocks.
func QuestionsForTier(t Tier) []Question {
	var out []Question
	for _, qu := range questionBank {
		if t.HasArea(qu.Area) {
			out = append(out, qu)
		}
	}
	return out
}

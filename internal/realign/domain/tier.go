package domain

import (
	"errors"
	"slices"
)

var ErrUnknownTier = errors.New("domain: unknown tier")

type TierID string

const (
	TierExpressDiagnostic        TierID = "express-diagnostic"
	TierOneTimeDiagnostic        TierID = "one-time-diagnostic"
	TierMonthlySubscription      TierID = "monthly-subscription"
	TierComprehensivePackage     TierID = "comprehensive-package"
	TierEnterpriseTransformation TierID = "enterprise-transformation"
)

// Area is a question bank section.
type Area string

const (
	AreaGeneral               Area = "general"
	AreaGovernance            Area = "governance"
	AreaAcademic              Area = "academic"
	AreaFinance               Area = "finance"
	AreaStudentServices       Area = "student_services"
	AreaEnrollment            Area = "enrollment"
	AreaHumanResources        Area = "human_resources"
	AreaTechnology            Area = "technology"
	AreaFacilities            Area = "facilities"
	AreaMarketing             Area = "marketing"
	AreaInstitutionalResearch Area = "institutional_research"
	AreaCompliance            Area = "compliance"
)

var (
	coreAreas     = []Area{AreaGeneral, AreaGovernance, AreaAcademic, AreaFinance}
	extendedAreas = append(slices.Clone(coreAreas),
		AreaStudentServices, AreaEnrollment, AreaHumanResources, AreaTechnology, AreaFacilities)
	allAreas = append(slices.Clone(extendedAreas),
		AreaMarketing, AreaInstitutionalResearch, AreaCompliance)
)

// Tier describes what a pricing tier unlocks. Zero limits mean unlimited.
type Tier struct {
	ID              TierID `json:"id"`
	Name            string `json:"name"`
	MaxAssessments  int    `json:"max_assessments"`
	ScenarioBuilder bool   `json:"scenario_builder"`
	MaxScenarios    int    `json:"max_scenarios"`
	RetentionMonths int    `json:"retention_months"`
	Areas           []Area `json:"areas"`
}

var tiers = []Tier{
	{
		ID:              TierExpressDiagnostic,
		Name:            "Express Diagnostic",
		MaxAssessments:  1,
		RetentionMonths: 6,
		Areas:           coreAreas,
	},
	{
		ID:              TierOneTimeDiagnostic,
		Name:            "One-Time Diagnostic",
		MaxAssessments:  1,
		RetentionMonths: 6,
		Areas:           extendedAreas,
	},
	{
		ID:              TierMonthlySubscription,
		Name:            "Monthly Subscription",
		RetentionMonths: 12,
		Areas:           extendedAreas,
	},
	{
		ID:              TierComprehensivePackage,
		Name:            "Comprehensive Package",
		MaxAssessments:  1,
		ScenarioBuilder: true,
		MaxScenarios:    5,
		RetentionMonths: 18,
		Areas:           allAreas,
	},
	{
		ID:              TierEnterpriseTransformation,
		Name:            "Enterprise Transformation",
		ScenarioBuilder: true,
		Areas:           allAreas,
	},
}

// Tiers returns every tier, cheapest first.
func Tiers() []Tier {
	return slices.Clone(tiers)
}

// ParseTier looks up a tier by id.
func ParseTier(id string) (Tier, error) {
	for _, t := range tiers {
		if string(t.ID) == id {
			return t, nil
		}
	}
	return Tier{}, ErrUnknownTier
}

// HasArea reports whether the tier unlocks questions from a.
func (t Tier) HasArea(a Area) bool {
	return slices.Contains(t.Areas, a)
}

// AllowsAnotherAssessment reports whether an owner already holding existing
// assessments on this tier may submit one more.
func (t Tier) AllowsAnotherAssessment(existing int) bool {
	return t.MaxAssessments == 0 || existing < t.MaxAssessments
}

// AllowsAnotherScenario reports whether a realignment already holding
// existing scenarios may gain one more.
func (t Tier) AllowsAnotherScenario(existing int) bool {
	if !t.ScenarioBuilder {
		return false
	}
	return t.MaxScenarios == 0 || existing < t.MaxScenarios
}

// Permanent reports whether realignments on this tier are never expired.
func (t Tier) Permanent() bool { return t.RetentionMonths == 0 }

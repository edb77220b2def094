package http

import (
	"github.com/northpath/realign/internal/realign/domain"
	"github.com/northpath/realign/internal/realign/service"
	"github.com/northpath/realign/pkg/realignsdk"
	"github.com/northpath/realign/pkg/scoring"
)

func toRealignment(r domain.Realignment) realignsdk.Realignment {
	tags := domain.TagSummary(r.Roles)
	return realignsdk.Realignment{
		ID:                r.ID,
		OwnerID:           r.OwnerID,
		OwnerEmail:        r.OwnerEmail,
		Organization:      toOrganization(r.Org),
		Tier:              string(r.Tier),
		Roles:             toRoles(r.Roles),
		Answers:           nonNilAnswers(r.Answers),
		Budget:            r.Budget,
		Scores:            r.Scores,
		TagSummary:        realignsdk.TagSummary(tags),
		ConsultantComment: r.ConsultantComment,
		Tag:               r.Tag,
		Favorited:         r.Favorited,
		CreatedAt:         r.CreatedAt,
		UpdatedAt:         r.UpdatedAt,
	}
}

// toSharedRealignment strips owner and consultant details from a realignment
// viewed through a share link.
func toSharedRealignment(r domain.Realignment) realignsdk.Realignment {
	out := toRealignment(r)
	out.OwnerID = ""
	out.OwnerEmail = ""
	out.ConsultantComment = ""
	out.Favorited = false
	return out
}

func toRealignments(rs []domain.Realignment) []realignsdk.Realignment {
	out := make([]realignsdk.Realignment, len(rs))
	for i, r := range rs {
		out[i] = toRealignment(r)
	}
	return out
}

func toOrganization(o domain.OrgData) realignsdk.Organization {
	return realignsdk.Organization{Name: o.Name, OrgType: o.OrgType}
}

func fromOrganization(o realignsdk.Organization) domain.OrgData {
	return domain.OrgData{Name: o.Name, OrgType: o.OrgType}
}

func toRoles(roles []domain.Role) []realignsdk.Role {
	out := make([]realignsdk.Role, len(roles))
	for i, r := range roles {
		out[i] = realignsdk.Role{ID: r.ID, Name: r.Name, Tag: string(r.Tag)}
	}
	return out
}

func fromRoles(roles []realignsdk.Role) []domain.Role {
	out := make([]domain.Role, len(roles))
	for i, r := range roles {
		out[i] = domain.Role{ID: r.ID, Name: r.Name, Tag: domain.RoleTag(r.Tag)}
	}
	return out
}

func nonNilAnswers(a []scoring.Answer) []scoring.Answer {
	if a == nil {
		return []scoring.Answer{}
	}
	return a
}

func toVersion(v service.VersionEntry) realignsdk.Version {
	changed := v.Changed
	if changed == nil {
		changed = []string{}
	}
	return realignsdk.Version{
		ID:            v.ID,
		RealignmentID: v.RealignmentID,
		Organization:  toOrganization(v.Org),
		Roles:         toRoles(v.Roles),
		AccessedBy:    v.AccessedBy,
		AccessedAt:    v.AccessedAt,
		Note:          v.Note,
		Changed:       changed,
	}
}

func toScenario(s domain.Scenario) realignsdk.Scenario {
	return realignsdk.Scenario{
		ID:            s.ID,
		RealignmentID: s.RealignmentID,
		Title:         s.Title,
		Description:   s.Description,
		CreatedAt:     s.CreatedAt,
	}
}

func toQuestion(q domain.Question) realignsdk.Question {
	return realignsdk.Question{
		ID:      q.ID,
		Text:    q.Text,
		Area:    string(q.Area),
		Section: q.Section,
		Type:    string(q.Type),
		Options: q.Options,
	}
}

func toTier(t domain.Tier) realignsdk.Tier {
	areas := make([]string, len(t.Areas))
	for i, a := range t.Areas {
		areas[i] = string(a)
	}
	return realignsdk.Tier{
		ID:              string(t.ID),
		Name:            t.Name,
		MaxAssessments:  t.MaxAssessments,
		ScenarioBuilder: t.ScenarioBuilder,
		MaxScenarios:    t.MaxScenarios,
		RetentionMonths: t.RetentionMonths,
		Areas:           areas,
	}
}

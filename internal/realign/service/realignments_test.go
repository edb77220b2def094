package service

import (
	"context"
	"testing"

	"github.com/northpath/realign/internal/realign/domain"
	"github.com/northpath/realign/pkg/scoring"
	"github.com/stretchr/testify/require"
)

func TestSubmitScoresAndVersions(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	r := f.submit(t, owner, domain.TierMonthlySubscription)
	// gov-1=4 and acad-4=2 both feed redundancy.
	require.Equal(t, 60, r.Scores.Redundancy)
	require.Equal(t, 60, r.Scores.AIReadiness)
	require.Equal(t, int64(67500), r.Scores.EstimatedSavings)
	require.Equal(t, owner.UserID, r.OwnerID)
	require.Equal(t, owner.Email, r.OwnerEmail)

	got, err := f.realignments.Get(ctx, owner, r.ID)
	require.NoError(t, err)
	require.Equal(t, r.Scores.Redundancy, got.Scores.Redundancy)

	versions, err := f.versions.List(ctx, owner, r.ID)
	require.NoError(t, err)
	require.Len(t, versions, 1)
	require.Equal(t, owner.UserID, versions[0].AccessedBy)
	require.Empty(t, versions[0].Changed)
}

func TestSubmitValidation(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	tests := []struct {
		name   string
		mutate func(*SubmitInput)
	}{
		{"unknown tier", func(in *SubmitInput) { in.Tier = "gold" }},
		{"missing org name", func(in *SubmitInput) { in.Org.Name = "" }},
		{"missing org type", func(in *SubmitInput) { in.Org.OrgType = " " }},
		{"role without name", func(in *SubmitInput) { in.Roles = []domain.Role{{ID: "r1"}} }},
		{"bad role tag", func(in *SubmitInput) { in.Roles = []domain.Role{{ID: "r1", Name: "x", Tag: "legacy"}} }},
		{"negative budget", func(in *SubmitInput) { in.Budget = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := submitInput(domain.TierMonthlySubscription)
			tt.mutate(&in)
			_, err := f.realignments.Submit(ctx, owner, in)
			require.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestSubmitSkipsNonNumericAnswers(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	in := submitInput(domain.TierMonthlySubscription)
	in.Answers = append(in.Answers, scoring.Answer{ID: "gov-3", Value: scoring.String("Significant")})

	r, err := f.realignments.Submit(ctx, owner, in)
	require.NoError(t, err)
	require.Equal(t, 60, r.Scores.Redundancy)
	require.Equal(t, []string{"gov-3"}, r.Scores.Skipped)
}

func TestSubmitEnforcesTierLimit(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	first := f.submit(t, owner, domain.TierExpressDiagnostic)

	_, err := f.realignments.Submit(ctx, owner, submitInput(domain.TierExpressDiagnostic))
	require.ErrorIs(t, err, ErrTierLimit)

	// Other owners and other tiers are unaffected.
	f.submit(t, stranger, domain.TierExpressDiagnostic)
	f.submit(t, owner, domain.TierOneTimeDiagnostic)

	// Restoring a version is another assessment on the same tier.
	versions, err := f.versions.List(ctx, owner, first.ID)
	require.NoError(t, err)
	_, err = f.versions.Restore(ctx, owner, versions[0].ID, "")
	require.ErrorIs(t, err, ErrTierLimit)

	n, err := f.store.Realignments().CountRealignmentsByOwnerTier(ctx, owner.UserID, domain.TierExpressDiagnostic)
	require.NoError(t, err)
	require.Equal(t, 1, n)
}

func TestAccessControl(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	r := f.submit(t, owner, domain.TierMonthlySubscription)

	_, err := f.realignments.Get(ctx, stranger, r.ID)
	require.ErrorIs(t, err, ErrForbidden)

	_, err = f.realignments.Get(ctx, consultant, r.ID)
	require.NoError(t, err)

	_, err = f.realignments.Get(ctx, owner, "missing")
	require.ErrorIs(t, err, ErrRealignmentNotFound)

	require.ErrorIs(t, f.realignments.Delete(ctx, stranger, r.ID), ErrForbidden)
	require.ErrorIs(t, f.realignments.SetFavorite(ctx, stranger, r.ID, true), ErrForbidden)
	_, err = f.realignments.Update(ctx, stranger, r.ID, UpdateInput{Org: r.Org})
	require.ErrorIs(t, err, ErrForbidden)
}

func TestUpdateRescoresAndRecordsVersion(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	r := f.submit(t, owner, domain.TierMonthlySubscription)

	updated, err := f.realignments.Update(ctx, owner, r.ID, UpdateInput{
		Org:     domain.OrgData{Name: "Acme University", OrgType: r.Org.OrgType},
		Roles:   r.Roles[:1],
		Answers: []scoring.Answer{{ID: "gov-1", Value: scoring.Number(5)}},
		Budget:  100_000,
		Note:    "merged advising",
	})
	require.NoError(t, err)
	require.Equal(t, 100, updated.Scores.Redundancy)
	require.Zero(t, updated.Scores.AIReadiness)
	require.Zero(t, updated.Scores.EstimatedSavings)

	versions, err := f.versions.List(ctx, owner, r.ID)
	require.NoError(t, err)
	require.Len(t, versions, 2)
	require.Equal(t, "merged advising", versions[0].Note)
	require.Equal(t, []string{domain.FieldName, domain.FieldRoles}, versions[0].Changed)

	_, err = f.realignments.Update(ctx, owner, r.ID, UpdateInput{Org: domain.OrgData{Name: "x"}})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestFavoriteListAndDelete(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	a := f.submit(t, owner, domain.TierMonthlySubscription)
	b := f.submit(t, owner, domain.TierMonthlySubscription)
	f.submit(t, stranger, domain.TierMonthlySubscription)

	require.NoError(t, f.realignments.SetFavorite(ctx, owner, a.ID, true))

	mine, err := f.realignments.ListMine(ctx, owner)
	require.NoError(t, err)
	require.Len(t, mine, 2)
	require.Equal(t, b.ID, mine[0].ID)
	require.True(t, mine[1].Favorited)

	require.NoError(t, f.realignments.Delete(ctx, owner, a.ID))
	_, err = f.realignments.Get(ctx, owner, a.ID)
	require.ErrorIs(t, err, ErrRealignmentNotFound)
}

func TestImport(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	var doc domain.ImportDocument
	doc.Organization.Name = "Imported College"
	doc.Organization.OrgType = "regional_university"
	doc.Roles = []domain.Role{{ID: "r1", Name: "Bursar", Tag: domain.TagOpen}}

	r, err := f.realignments.Import(ctx, owner, string(domain.TierMonthlySubscription), doc)
	require.NoError(t, err)
	require.Equal(t, "Imported College", r.Org.Name)
	require.Equal(t, doc.Roles, r.Roles)

	doc.Organization.OrgType = ""
	_, err = f.realignments.Import(ctx, owner, string(domain.TierMonthlySubscription), doc)
	require.ErrorIs(t, err, ErrInvalidInput)
	require.ErrorIs(t, err, domain.ErrMissingOrgType)
}

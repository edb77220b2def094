package realign_test

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/northpath/realign/pkg/realignsdk"
	"github.com/stretchr/testify/require"
)

// TestConsultantViews exercises the admin listing, summary, CSV export,
// comments and benchmarking.
func TestConsultantViews(t *testing.T) {
	baseURL, cleanup := setupRealignContainer(t)
	defer cleanup()

	client := realignsdk.NewClient(baseURL)
	owner := ownerSession(t, client)
	other := newSession(t, client, "user-provost", "provost@university.test",
		realignsdk.ScopeRead, realignsdk.ScopeWrite)
	consultant := consultantSession(t, client)
	ctx := t.Context()

	first, err := owner.Submit(ctx, sampleSubmission("monthly-subscription"))
	require.NoError(t, err)

	second := sampleSubmission("monthly-subscription")
	second.Organization = realignsdk.Organization{Name: "Hillcrest University", OrgType: "university"}
	second.Answers = mustAnswers(`[{"id": "gov-1", "value": 5}, {"id": "fin-2", "value": "unsure"}]`)
	_, err = other.Submit(ctx, second)
	require.NoError(t, err)

	t.Run("customers are refused", func(t *testing.T) {
		_, err := owner.AdminList(ctx, realignsdk.AdminQuery{})
		require.ErrorIs(t, err, realignsdk.ErrInsufficientScope)
	})

	t.Run("consultant reads any realignment", func(t *testing.T) {
		got, err := consultant.GetRealignment(ctx, first.ID)
		require.NoError(t, err)
		require.Equal(t, first.ID, got.ID)
	})

	t.Run("list and filter", func(t *testing.T) {
		page, err := consultant.AdminList(ctx, realignsdk.AdminQuery{SortBy: "redundancy"})
		require.NoError(t, err)
		require.Equal(t, 2, page.Total)
		require.Equal(t, "Hillcrest University", page.Realignments[0].Organization.Name)

		page, err = consultant.AdminList(ctx, realignsdk.AdminQuery{Query: "college.test"})
		require.NoError(t, err)
		require.Equal(t, 1, page.Total)
		require.Equal(t, first.ID, page.Realignments[0].ID)

		page, err = consultant.AdminList(ctx, realignsdk.AdminQuery{Status: "incomplete"})
		require.NoError(t, err)
		require.Equal(t, 1, page.Total)
	})

	t.Run("summary", func(t *testing.T) {
		sum, err := consultant.AdminSummary(ctx, realignsdk.AdminQuery{})
		require.NoError(t, err)
		require.Equal(t, 2, sum.Count)
		require.Equal(t, int64(67500), sum.TotalSavings)
		require.Equal(t, 80, sum.AvgRedundancy)
	})

	t.Run("comment and export", func(t *testing.T) {
		require.NoError(t, consultant.AdminSetComment(ctx, first.ID, "Follow up on registrar overlap"))

		data, err := consultant.AdminExportCSV(ctx, realignsdk.AdminQuery{Query: "Riverbend"})
		require.NoError(t, err)

		rows, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
		require.NoError(t, err)
		require.Len(t, rows, 2)
		require.Equal(t, "Name", rows[0][0])
		require.Equal(t, "Riverbend Community College", rows[1][0])
		require.Equal(t, "Follow up on registrar overlap", rows[1][7])

		// The owner sees the consultant comment on their own realignment
		got, err := owner.GetRealignment(ctx, first.ID)
		require.NoError(t, err)
		require.Equal(t, "Follow up on registrar overlap", got.ConsultantComment)
	})

	t.Run("benchmark", func(t *testing.T) {
		b, err := consultant.AdminBenchmark(ctx, first.ID)
		require.NoError(t, err)
		require.Equal(t, 2, b.Count)
		require.Equal(t, 25.0, b.Percentiles.Redundancy)
		require.Equal(t, 75.0, b.Percentiles.AIReadiness)
		require.Len(t, b.Gaps, 2)
	})
}

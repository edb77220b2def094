package service

import (
	"context"
	"testing"
	"time"

	"github.com/northpath/realign/internal/realign/domain"
	"github.com/northpath/realign/internal/realign/store/drivers/sqlite"
	"github.com/northpath/realign/pkg/scoring"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

// clock is a settable time source shared by the services under test.
type clock struct{ now time.Time }

func (c *clock) Now() time.Time          { return c.now }
func (c *clock) Advance(d time.Duration) { c.now = c.now.Add(d) }

type fixture struct {
	store        *sqlite.Store
	clock        *clock
	realignments *RealignmentService
	versions     *VersionService
	scenarios    *ScenarioService
	shares       *ShareLinkService
	admin        *AdminService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	c := &clock{now: t0}
	return &fixture{
		store:        st,
		clock:        c,
		realignments: &RealignmentService{Store: st, Now: c.Now},
		versions:     &VersionService{Store: st, Now: c.Now},
		scenarios:    &ScenarioService{Store: st, Now: c.Now},
		shares:       &ShareLinkService{Store: st, Now: c.Now},
		admin:        &AdminService{Store: st, Now: c.Now},
	}
}

var (
	owner      = domain.Caller{UserID: "u-owner", Email: "dean@acme.edu"}
	stranger   = domain.Caller{UserID: "u-other", Email: "someone@else.edu"}
	consultant = domain.Caller{UserID: "u-np", Email: "lead@northpathstrategies.org", Consultant: true}
)

func submitInput(tier domain.TierID) SubmitInput {
	return SubmitInput{
		Org:  domain.OrgData{Name: "Acme College", OrgType: "community_college"},
		Tier: string(tier),
		Roles: []domain.Role{
			{ID: "r1", Name: "Registrar", Tag: domain.TagCritical},
			{ID: "r2", Name: "Advisor", Tag: domain.TagRedundant},
		},
		Answers: []scoring.Answer{
			{ID: "gov-1", Value: scoring.Number(4)},
			{ID: "it-1", Value: scoring.Number(3)},
			{ID: "acad-4", Value: scoring.Number(2)},
			{ID: "inst-5", Value: scoring.Number(1)},
		},
		Budget: 1_000_000,
	}
}

func (f *fixture) submit(t *testing.T, caller domain.Caller, tier domain.TierID) domain.Realignment {
	t.Helper()
	r, err := f.realignments.Submit(context.Background(), caller, submitInput(tier))
	require.NoError(t, err)
	f.clock.Advance(time.Minute)
	return r
}

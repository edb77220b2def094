package http

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/northpath/realign/internal/realign/service"
	"github.com/northpath/realign/internal/realign/store/drivers/sqlite"
	"github.com/northpath/realign/pkg/jwtx"
	"github.com/northpath/realign/pkg/realignsdk"
	"github.com/northpath/realign/pkg/scoring"
	"github.com/northpath/realign/pkg/slogx"
	"github.com/stretchr/testify/require"
)

const (
	testIssuer     = "https://id.northpath.test"
	testAudience   = "realign"
	testConsultant = "northpathstrategies.org"
)

type testEnv struct {
	srv    *httptest.Server
	client *realignsdk.Client
	signer *jwtx.EdDSASigner
	keys   *jwtx.KeySet
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	signer, err := jwtx.GenerateEdDSASigner("test-key")
	require.NoError(t, err)
	keys := jwtx.NewKeySet()
	require.NoError(t, keys.AddJWK(signer.PublicJWK()))

	verifier := jwtx.NewVerifier(keys, jwtx.VerifyOptions{
		Issuer:   testIssuer,
		Audience: []string{testAudience},
	})

	router := NewRouter(keys, verifier, testConsultant, "test", st, slogx.Discard())
	router.RealignmentService = &service.RealignmentService{Store: st}
	router.VersionService = &service.VersionService{Store: st}
	router.ScenarioService = &service.ScenarioService{Store: st}
	router.ShareLinkService = &service.ShareLinkService{Store: st}
	router.AdminService = &service.AdminService{Store: st}
	router.ApplyRoutes()

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return &testEnv{
		srv:    srv,
		client: realignsdk.NewClient(srv.URL),
		signer: signer,
		keys:   keys,
	}
}

// session returns a session for a user with the given scopes.
func (e *testEnv) session(t *testing.T, userID, email string, scopes ...string) *realignsdk.Session {
	t.Helper()

	claims := jwtx.NewAccessClaims(
		userID, email, email, scopes,
		testIssuer, []string{testAudience},
		5*time.Minute, time.Now(),
	)
	token, err := e.signer.Sign(claims)
	require.NoError(t, err)
	return e.client.NewSession(token, strings.Join(scopes, " "))
}

func (e *testEnv) owner(t *testing.T) *realignsdk.Session {
	return e.session(t, "u-owner", "dean@acme.edu", realignsdk.ScopeRead, realignsdk.ScopeWrite)
}

func (e *testEnv) consultant(t *testing.T) *realignsdk.Session {
	return e.session(t, "u-np", "lead@northpathstrategies.org", realignsdk.ScopeRead, realignsdk.ScopeWrite)
}

func submitRequest(tier string) realignsdk.SubmitRequest {
	return realignsdk.SubmitRequest{
		Organization: realignsdk.Organization{Name: "Acme College", OrgType: "community_college"},
		Tier:         tier,
		Roles: []realignsdk.Role{
			{ID: "r1", Name: "Registrar", Tag: "critical"},
			{ID: "r2", Name: "advisor", Tag: "redundant"},
			{ID: "r3", Name: "Bursar"},
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

func TestHealth(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	live, err := env.client.GetLiveness(ctx)
	require.NoError(t, err)
	require.Equal(t, "ok", live.Status)
	require.Equal(t, "test", live.Version)

	ready, err := env.client.GetReadiness(ctx)
	require.NoError(t, err)
	require.Equal(t, "ok", ready.Status)
	require.Equal(t, "ok", ready.Checks.Keys)
	require.Equal(t, "ok", ready.Checks.Database)
}

func TestReadyzWithoutKeys(t *testing.T) {
	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	h := ReadyzHandler(time.Now(), "test", st, jwtx.NewKeySet())
	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	require.Contains(t, rec.Body.String(), `"degraded"`)
	require.Contains(t, rec.Body.String(), "no keys loaded")
}

func TestCatalog(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	tiers, err := env.client.GetTiers(ctx)
	require.NoError(t, err)
	require.Len(t, tiers.Tiers, 5)
	require.Equal(t, "express-diagnostic", tiers.Tiers[0].ID)

	all, err := env.client.GetQuestions(ctx, "")
	require.NoError(t, err)
	express, err := env.client.GetQuestions(ctx, "express-diagnostic")
	require.NoError(t, err)
	require.NotEmpty(t, express.Questions)
	require.Less(t, len(express.Questions), len(all.Questions))
	for _, q := range express.Questions {
		require.Contains(t, []string{"general", "governance", "academic", "finance"}, q.Area, q.ID)
	}

	_, err = env.client.GetQuestions(ctx, "platinum")
	require.ErrorIs(t, err, realignsdk.ErrInvalidRequest)
}

func TestScore(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	out, err := env.client.Score(ctx, realignsdk.ScoreRequest{
		Answers: []scoring.Answer{
			{ID: "gov-1", Value: scoring.Number(5)},
			{ID: "gov-2", Value: scoring.String("5")},
			{ID: "fin-1", Value: scoring.String("unsure")},
			{ID: "acad-4", Value: scoring.Number(2)},
			{ID: "inst-5", Value: scoring.Number(1)},
		},
		Budget: 1_000_000,
	})
	require.NoError(t, err)
	// acad-4 is also a redundancy answer: (5+5+2)/15
	require.Equal(t, 80, out.Redundancy)
	require.Zero(t, out.AIReadiness)
	require.Equal(t, int64(67500), out.EstimatedSavings)
	require.Equal(t, []string{"fin-1"}, out.Skipped)

	_, err = env.client.Score(ctx, realignsdk.ScoreRequest{Budget: -1})
	require.ErrorIs(t, err, realignsdk.ErrInvalidRequest)
}

func TestScoreRejectsUnknownFields(t *testing.T) {
	env := newTestEnv(t)

	resp, err := http.Post(env.srv.URL+"/v1/score", "application/json",
		strings.NewReader(`{"answers":[],"budget":1,"extra":true}`))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestRealignmentLifecycle(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	owner := env.owner(t)

	created, err := owner.Submit(ctx, submitRequest("monthly-subscription"))
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	require.Equal(t, "u-owner", created.OwnerID)
	require.Equal(t, 60, created.Scores.Redundancy)
	require.Equal(t, 60, created.Scores.AIReadiness)
	require.Equal(t, int64(67500), created.Scores.EstimatedSavings)
	require.Equal(t, realignsdk.TagSummary{Critical: 1, Redundant: 1}, created.TagSummary)

	list, err := owner.ListRealignments(ctx)
	require.NoError(t, err)
	require.Len(t, list.Realignments, 1)

	got, err := owner.GetRealignment(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, created.ID, got.ID)
	require.Len(t, got.Roles, 3)

	upd := realignsdk.UpdateRequest{
		Organization: realignsdk.Organization{Name: "Acme University", OrgType: "university"},
		Roles:        []realignsdk.Role{{ID: "r1", Name: "Registrar", Tag: "critical"}},
		Answers:      []scoring.Answer{{ID: "gov-1", Value: scoring.Number(5)}},
		Budget:       500_000,
		Note:         "renamed",
	}
	updated, err := owner.UpdateRealignment(ctx, created.ID, upd)
	require.NoError(t, err)
	require.Equal(t, "Acme University", updated.Organization.Name)
	require.Equal(t, 100, updated.Scores.Redundancy)
	require.Zero(t, updated.Scores.EstimatedSavings)

	versions, err := owner.ListVersions(ctx, created.ID)
	require.NoError(t, err)
	require.Len(t, versions.Versions, 2)
	require.Equal(t, "renamed", versions.Versions[0].Note)
	require.ElementsMatch(t, []string{"name", "org_type", "roles"}, versions.Versions[0].Changed)
	require.Empty(t, versions.Versions[1].Changed)

	restored, err := owner.RestoreVersion(ctx, versions.Versions[1].ID, "back to the original")
	require.NoError(t, err)
	require.Equal(t, "Acme College (Restored)", restored.Organization.Name)
	require.Equal(t, "restored", restored.Tag)
	require.Len(t, restored.Roles, 3)

	versions, err = owner.ListVersions(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, "back to the original", versions.Versions[1].Note)

	require.NoError(t, owner.SetFavorite(ctx, created.ID, true))
	got, err = owner.GetRealignment(ctx, created.ID)
	require.NoError(t, err)
	require.True(t, got.Favorited)

	require.NoError(t, owner.DeleteRealignment(ctx, created.ID))
	_, err = owner.GetRealignment(ctx, created.ID)
	require.ErrorIs(t, err, realignsdk.ErrNotFound)
}

func TestGetFiltersAndSortsRoles(t *testing.T) {
	env := newTestEnv(t)
	owner := env.owner(t)

	created, err := owner.Submit(context.Background(), submitRequest("monthly-subscription"))
	require.NoError(t, err)

	token, err := env.signer.Sign(jwtx.NewAccessClaims("u-owner", "dean@acme.edu", "dean@acme.edu",
		[]string{realignsdk.ScopeRead}, testIssuer, []string{testAudience}, time.Minute, time.Now()))
	require.NoError(t, err)

	get := func(t *testing.T, query string) (int, realignsdk.Realignment) {
		t.Helper()
		req, err := http.NewRequest(http.MethodGet, env.srv.URL+"/v1/realignments/"+created.ID+query, nil)
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+token)

		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		var out realignsdk.Realignment
		if resp.StatusCode == http.StatusOK {
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
		}
		return resp.StatusCode, out
	}

	names := func(roles []realignsdk.Role) []string {
		out := make([]string, len(roles))
		for i, r := range roles {
			out[i] = r.Name
		}
		return out
	}

	code, sorted := get(t, "?role_sort=name-asc")
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, []string{"advisor", "Bursar", "Registrar"}, names(sorted.Roles))

	code, filtered := get(t, "?role_tag=redundant")
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, []string{"advisor"}, names(filtered.Roles))
	require.Equal(t, 1, filtered.TagSummary.Critical)

	code, _ = get(t, "?role_sort=random")
	require.Equal(t, http.StatusBadRequest, code)

	code, _ = get(t, "?role_tag=vital")
	require.Equal(t, http.StatusBadRequest, code)
}

func TestImport(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	owner := env.owner(t)

	out, err := owner.Import(ctx, realignsdk.ImportRequest{
		Tier:         "enterprise-transformation",
		Organization: realignsdk.ImportOrganization{Name: "Imported U", OrgType: "university"},
		Roles:        []realignsdk.Role{{ID: "a", Name: "Provost", Tag: "critical"}},
	})
	require.NoError(t, err)
	require.Equal(t, "Imported U", out.Organization.Name)
	require.Equal(t, "enterprise-transformation", out.Tier)

	_, err = owner.Import(ctx, realignsdk.ImportRequest{
		Tier:         "enterprise-transformation",
		Organization: realignsdk.ImportOrganization{Name: "No Type"},
	})
	require.ErrorIs(t, err, realignsdk.ErrInvalidRequest)

	_, err = owner.Import(ctx, realignsdk.ImportRequest{
		Tier:         "enterprise-transformation",
		Organization: realignsdk.ImportOrganization{Name: "Bad Tag", OrgType: "college"},
		Roles:        []realignsdk.Role{{ID: "a", Name: "Provost", Tag: "vital"}},
	})
	require.ErrorIs(t, err, realignsdk.ErrInvalidRequest)
}

func TestAuthAndOwnership(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	owner := env.owner(t)

	created, err := owner.Submit(ctx, submitRequest("monthly-subscription"))
	require.NoError(t, err)

	t.Run("missing token", func(t *testing.T) {
		resp, err := http.Get(env.srv.URL + "/v1/realignments")
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		require.Contains(t, resp.Header.Get("WWW-Authenticate"), "invalid_token")
	})

	t.Run("token from another key", func(t *testing.T) {
		other, err := jwtx.GenerateEdDSASigner("test-key")
		require.NoError(t, err)
		token, err := other.Sign(jwtx.NewAccessClaims("u-owner", "", "", []string{realignsdk.ScopeRead},
			testIssuer, []string{testAudience}, time.Minute, time.Now()))
		require.NoError(t, err)

		_, err = env.client.NewSession(token, realignsdk.ScopeRead).ListRealignments(ctx)
		require.ErrorIs(t, err, realignsdk.ErrInvalidToken)
	})

	t.Run("missing scope", func(t *testing.T) {
		env.client.CheckScopes = false
		t.Cleanup(func() { env.client.CheckScopes = true })

		reader := env.session(t, "u-owner", "dean@acme.edu", realignsdk.ScopeRead)
		_, err := reader.Submit(ctx, submitRequest("monthly-subscription"))
		require.ErrorIs(t, err, realignsdk.ErrInsufficientScope)
	})

	t.Run("other owner", func(t *testing.T) {
		stranger := env.session(t, "u-other", "someone@else.edu", realignsdk.ScopeRead, realignsdk.ScopeWrite)
		_, err := stranger.GetRealignment(ctx, created.ID)
		require.ErrorIs(t, err, realignsdk.ErrForbidden)

		err = stranger.DeleteRealignment(ctx, created.ID)
		require.ErrorIs(t, err, realignsdk.ErrForbidden)
	})

	t.Run("consultant reads any", func(t *testing.T) {
		got, err := env.consultant(t).GetRealignment(ctx, created.ID)
		require.NoError(t, err)
		require.Equal(t, created.ID, got.ID)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := owner.GetRealignment(ctx, "01J00000000000000000000000")
		require.ErrorIs(t, err, realignsdk.ErrNotFound)
	})
}

func TestTierLimits(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	owner := env.owner(t)

	express, err := owner.Submit(ctx, submitRequest("express-diagnostic"))
	require.NoError(t, err)

	_, err = owner.Submit(ctx, submitRequest("express-diagnostic"))
	require.ErrorIs(t, err, realignsdk.ErrTierLimit)

	versions, err := owner.ListVersions(ctx, express.ID)
	require.NoError(t, err)
	_, err = owner.RestoreVersion(ctx, versions.Versions[0].ID, "")
	require.ErrorIs(t, err, realignsdk.ErrTierLimit)

	_, err = owner.CreateScenario(ctx, express.ID, realignsdk.CreateScenarioRequest{Title: "Merge offices"})
	require.ErrorIs(t, err, realignsdk.ErrFeatureNotInTier)

	comprehensive, err := owner.Submit(ctx, submitRequest("comprehensive-package"))
	require.NoError(t, err)

	for i := range 5 {
		_, err := owner.CreateScenario(ctx, comprehensive.ID, realignsdk.CreateScenarioRequest{
			Title: "Scenario " + string(rune('A'+i)),
		})
		require.NoError(t, err)
	}
	_, err = owner.CreateScenario(ctx, comprehensive.ID, realignsdk.CreateScenarioRequest{Title: "One too many"})
	require.ErrorIs(t, err, realignsdk.ErrTierLimit)

	scenarios, err := owner.ListScenarios(ctx, comprehensive.ID)
	require.NoError(t, err)
	require.Len(t, scenarios.Scenarios, 5)
	require.Equal(t, "Scenario A", scenarios.Scenarios[0].Title)

	require.NoError(t, owner.DeleteScenario(ctx, scenarios.Scenarios[0].ID))
	_, err = owner.CreateScenario(ctx, comprehensive.ID, realignsdk.CreateScenarioRequest{Title: "Replacement"})
	require.NoError(t, err)

	_, err = owner.CreateScenario(ctx, comprehensive.ID, realignsdk.CreateScenarioRequest{Title: "  "})
	require.ErrorIs(t, err, realignsdk.ErrInvalidRequest)
}

func TestShareLinks(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	owner := env.owner(t)

	created, err := owner.Submit(ctx, submitRequest("monthly-subscription"))
	require.NoError(t, err)

	link, err := owner.Share(ctx, created.ID, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, link.Token)
	require.Equal(t, "/v1/shared/"+link.Token, link.Path)
	require.WithinDuration(t, time.Now().Add(time.Hour), link.ExpiresAt, time.Minute)

	shared, err := env.client.GetShared(ctx, link.Token)
	require.NoError(t, err)
	require.Equal(t, created.ID, shared.ID)
	require.Empty(t, shared.OwnerEmail)
	require.Empty(t, shared.OwnerID)

	_, err = env.client.GetShared(ctx, link.Token+"x")
	require.ErrorIs(t, err, realignsdk.ErrNotFound)

	stranger := env.session(t, "u-other", "someone@else.edu", realignsdk.ScopeWrite)
	_, err = stranger.Share(ctx, created.ID, 0)
	require.ErrorIs(t, err, realignsdk.ErrForbidden)
}

func TestAdmin(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	owner := env.owner(t)

	first, err := owner.Submit(ctx, submitRequest("monthly-subscription"))
	require.NoError(t, err)

	partial := submitRequest("monthly-subscription")
	partial.Organization.Name = "Partial Institute"
	partial.Answers = []scoring.Answer{{ID: "gov-1", Value: scoring.Number(2)}}
	_, err = owner.Submit(ctx, partial)
	require.NoError(t, err)

	t.Run("requires consultant", func(t *testing.T) {
		_, err := owner.AdminList(ctx, realignsdk.AdminQuery{})
		require.ErrorIs(t, err, realignsdk.ErrInsufficientScope)
	})

	t.Run("admin scope grants access", func(t *testing.T) {
		s := env.session(t, "u-ops", "ops@partner.org", realignsdk.ScopeAdmin)
		page, err := s.AdminList(ctx, realignsdk.AdminQuery{})
		require.NoError(t, err)
		require.Equal(t, 2, page.Total)
	})

	consultant := env.consultant(t)

	t.Run("list", func(t *testing.T) {
		page, err := consultant.AdminList(ctx, realignsdk.AdminQuery{Status: "complete"})
		require.NoError(t, err)
		require.Equal(t, 1, page.Total)
		require.Equal(t, first.ID, page.Realignments[0].ID)
		require.Equal(t, service.DefaultAdminLimit, page.Limit)

		page, err = consultant.AdminList(ctx, realignsdk.AdminQuery{Query: "partial", Limit: 1})
		require.NoError(t, err)
		require.Equal(t, 1, page.Total)
		require.Equal(t, "Partial Institute", page.Realignments[0].Organization.Name)

		_, err = consultant.AdminList(ctx, realignsdk.AdminQuery{SortBy: "name"})
		require.ErrorIs(t, err, realignsdk.ErrInvalidRequest)
	})

	t.Run("summary", func(t *testing.T) {
		sum, err := consultant.AdminSummary(ctx, realignsdk.AdminQuery{})
		require.NoError(t, err)
		require.Equal(t, 2, sum.Count)
		require.Equal(t, int64(67500), sum.TotalSavings)
		// (60 + 40) / 2
		require.Equal(t, 50, sum.AvgRedundancy)
	})

	t.Run("comment and csv", func(t *testing.T) {
		require.NoError(t, consultant.AdminSetComment(ctx, first.ID, "Consolidate advising, call next week"))

		data, err := consultant.AdminExportCSV(ctx, realignsdk.AdminQuery{Status: "complete"})
		require.NoError(t, err)

		rows, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
		require.NoError(t, err)
		require.Len(t, rows, 2)
		require.Equal(t, service.CSVHeader, rows[0])
		require.Equal(t, "Acme College", rows[1][0])
		require.Equal(t, "dean@acme.edu", rows[1][6])
		require.Equal(t, "Consolidate advising, call next week", rows[1][7])

		err = consultant.AdminSetComment(ctx, "01J00000000000000000000000", "x")
		require.ErrorIs(t, err, realignsdk.ErrNotFound)
	})

	t.Run("benchmark", func(t *testing.T) {
		b, err := consultant.AdminBenchmark(ctx, first.ID)
		require.NoError(t, err)
		require.Equal(t, 2, b.Count)
		require.Equal(t, 75.0, b.Percentiles.Redundancy)
		require.InDelta(t, 0.6*0.6+0.4*0.4, b.Readiness, 1e-9)
		require.NotEmpty(t, b.Gaps)
	})
}

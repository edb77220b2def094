package realign_test

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"testing"
	"time"

	"github.com/northpath/realign/pkg/jwtx"
	"github.com/northpath/realign/pkg/realignsdk"
	"github.com/northpath/realign/pkg/scoring"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

/*
 * Common constants and helper functions for realignment service end-to-end
 * tests. Tokens are minted locally and the matching public key is handed to
 * the container as an inline JWKS, standing in for the identity provider.
 */

const (
	testImageName = "northpath-realign-test:latest"

	testIssuer       = "https://id.northpath.test"
	testAudience     = "realign"
	consultantDomain = "northpathstrategies.org"
)

var (
	// signer issues every token used by the tests.
	signer *jwtx.EdDSASigner

	// inlineJWKS is the public half of signer, passed as REALIGN_JWKS.
	inlineJWKS string
)

// TestMain builds the Docker image and the token signing key once before all
// tests and removes the image after all tests complete.
func TestMain(m *testing.M) {
	var err error
	signer, err = jwtx.GenerateEdDSASigner("e2e-key-001")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to generate signing key: %v\n", err)
		os.Exit(1)
	}
	doc, err := json.Marshal(jwtx.JWKS{Keys: []jwtx.JWK{signer.PublicJWK()}})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to encode jwks: %v\n", err)
		os.Exit(1)
	}
	inlineJWKS = string(doc)

	fmt.Fprintf(os.Stdout, "Building Realign Service Docker image...")
	if err := buildDockerImage(); err != nil {
		fmt.Fprintf(os.Stderr, "\nFailed to build Docker image: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stdout, " done\n")

	exitCode := m.Run()

	fmt.Fprintf(os.Stdout, "Cleaning up Realign Service Docker image...")
	cleanupDockerImage()
	fmt.Fprintf(os.Stdout, " done\n")

	os.Exit(exitCode)
}

// buildDockerImage builds the test Docker image from the repository root.
func buildDockerImage() error {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "build",
		"-t", testImageName,
		"-f", "../../../cmd/realign/Dockerfile",
		"../../../")
	cmd.Dir = "."
	cmd.Stdout = os.Stdout
	cmd.Stderr = nil

	return cmd.Run()
}

// cleanupDockerImage removes the test Docker image.
func cleanupDockerImage() {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "rmi", "-f", testImageName)
	_ = cmd.Run() // Ignore errors - image might not exist
}

// baseEnv is the container environment shared by every test.
func baseEnv() map[string]string {
	return map[string]string{
		"REALIGN_ISSUER":            testIssuer,
		"REALIGN_AUDIENCE":          testAudience,
		"REALIGN_JWKS":              inlineJWKS,
		"REALIGN_CONSULTANT_DOMAIN": consultantDomain,
		"REALIGN_DATABASE_FILE":     "/data/realign.db",
		"ENV":                       "test",
		"LOG_LEVEL":                 "info",
		"LOG_FORMAT":                "json",
	}
}

// setupRealignContainer starts the service with relaxed rate limits and
// returns the base URL.
func setupRealignContainer(t *testing.T) (string, func()) {
	t.Helper()

	env := baseEnv()
	// Tests make many rapid requests which would otherwise hit the production limits
	env["RATELIMIT_STRICT_REQUESTS"] = "1000"
	env["RATELIMIT_STRICT_BURST"] = "1000"
	env["RATELIMIT_MODERATE_REQUESTS"] = "1000"
	env["RATELIMIT_MODERATE_BURST"] = "1000"

	return startContainer(t, env)
}

// setupRealignContainerWithDefaultRateLimits starts the service with the
// production rate limits, for tests that check limiting itself.
func setupRealignContainerWithDefaultRateLimits(t *testing.T) (string, func()) {
	t.Helper()
	return startContainer(t, baseEnv())
}

func startContainer(t *testing.T, env map[string]string) (string, func()) {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        testImageName,
		ExposedPorts: []string{"8080/tcp"},
		Env:          env,
		WaitingFor: wait.ForHTTP("/livez").
			WithPort("8080/tcp").
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	mappedPort, err := container.MappedPort(ctx, "8080")
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)

	baseURL := fmt.Sprintf("http://%s:%s", host, mappedPort.Port())

	cleanup := func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	}

	return baseURL, cleanup
}

// mintToken signs an access token for userID with the given scopes.
func mintToken(t *testing.T, userID, email string, ttl time.Duration, scopes ...string) string {
	t.Helper()

	claims := jwtx.NewAccessClaims(
		userID, email, email, scopes,
		testIssuer, []string{testAudience},
		ttl, time.Now(),
	)
	token, err := signer.Sign(claims)
	require.NoError(t, err)
	return token
}

// newSession returns an SDK session for a user holding scopes.
func newSession(t *testing.T, client *realignsdk.Client, userID, email string, scopes ...string) *realignsdk.Session {
	t.Helper()
	token := mintToken(t, userID, email, 10*time.Minute, scopes...)
	return client.NewSession(token, strings.Join(scopes, " "))
}

// ownerSession is a customer with read and write access.
func ownerSession(t *testing.T, client *realignsdk.Client) *realignsdk.Session {
	return newSession(t, client, "user-dean", "dean@college.test",
		realignsdk.ScopeRead, realignsdk.ScopeWrite)
}

// consultantSession is a NorthPath consultant.
func consultantSession(t *testing.T, client *realignsdk.Client) *realignsdk.Session {
	return newSession(t, client, "user-consultant", "analyst@"+consultantDomain,
		realignsdk.ScopeRead, realignsdk.ScopeWrite)
}

// sampleSubmission is a complete realignment on tier.
func sampleSubmission(tier string) realignsdk.SubmitRequest {
	return realignsdk.SubmitRequest{
		Organization: realignsdk.Organization{Name: "Riverbend Community College", OrgType: "community_college"},
		Tier:         tier,
		Roles: []realignsdk.Role{
			{ID: "r1", Name: "Registrar", Tag: "critical"},
			{ID: "r2", Name: "Assistant Registrar", Tag: "redundant"},
			{ID: "r3", Name: "Data Analyst", Tag: "open"},
		},
		Answers: mustAnswers(`[
			{"id": "gov-1", "value": 4},
			{"id": "acad-4", "value": "2"},
			{"id": "it-1", "value": 3},
			{"id": "inst-5", "value": 1}
		]`),
		Budget: 1_000_000,
		Note:   "initial submission",
	}
}

// assertHealthy verifies a health check response is OK.
func assertHealthy(t *testing.T, health *realignsdk.HealthResponse, err error) {
	t.Helper()
	require.NoError(t, err)
	require.NotNil(t, health)
	require.Equal(t, "ok", health.Status)
}

// mustAnswers decodes answers the way a survey form posts them, with a mix
// of numbers and numeric strings.
func mustAnswers(doc string) []scoring.Answer {
	var out []scoring.Answer
	if err := json.Unmarshal([]byte(doc), &out); err != nil {
		panic(err)
	}
	return out
}

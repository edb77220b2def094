package realignsdk

import (
	"time"

	"github.com/northpath/realign/pkg/scoring"
)

// Scopes understood by the realignment service.
const (
	ScopeRead  = "realign:read"
	ScopeWrite = "realign:write"
	ScopeAdmin = "realign:admin"
)

// ============================================================================
// Error Types
// ============================================================================

// ErrorResponse is the body of every JSON error returned by the service.
type ErrorResponse struct {
	// Error is a short machine-readable code (e.g., "invalid_request")
	Error string `json:"error"`

	// ErrorDescription is a human-readable description of the error
	ErrorDescription string `json:"error_description"`
}

// ============================================================================
// Health Types
// ============================================================================

// HealthResponse is returned by /livez and /readyz.
type HealthResponse struct {
	// Status is "ok" or, on /readyz, "degraded"
	Status string `json:"status"`

	// Uptime is the service uptime as a duration string (e.g., "1h23m45s")
	Uptime string `json:"uptime,omitempty"`

	// Version is the service build version
	Version string `json:"version,omitempty"`

	// Checks is only set by /readyz
	Checks *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks reports the state of each dependency checked by /readyz.
type HealthChecks struct {
	// Database is "ok" when the database answers a ping
	Database string `json:"database"`

	// Keys is "ok" when at least one token verification key is loaded
	Keys string `json:"keys"`
}

// ============================================================================
// Questions and Scoring
// ============================================================================

// Question is one entry of the survey question bank.
type Question struct {
	ID      string   `json:"id"`
	Text    string   `json:"text"`
	Area    string   `json:"area"`
	Section string   `json:"section"`
	Type    string   `json:"type"`
	Options []string `json:"options,omitempty"`
}

// Tier describes what a pricing tier unlocks. Zero limits mean unlimited
// and zero retention means permanent.
type Tier struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	MaxAssessments  int      `json:"max_assessments"`
	ScenarioBuilder bool     `json:"scenario_builder"`
	MaxScenarios    int      `json:"max_scenarios"`
	RetentionMonths int      `json:"retention_months"`
	Areas           []string `json:"areas"`
}

// TiersResponse lists every tier, cheapest first.
type TiersResponse struct {
	Tiers []Tier `json:"tiers"`
}

// QuestionsResponse lists the questions unlocked by a tier, or all questions
// when no tier was requested.
type QuestionsResponse struct {
	Tier      string     `json:"tier,omitempty"`
	Questions []Question `json:"questions"`
}

// ScoreRequest is the body of POST /v1/score.
type ScoreRequest struct {
	Answers []scoring.Answer `json:"answers"`
	Budget  float64          `json:"budget"`
}

// ScoreResponse carries the metrics computed for a ScoreRequest.
type ScoreResponse struct {
	scoring.Result
}

// ============================================================================
// Realignments
// ============================================================================

// Organization identifies the institution a realignment describes.
type Organization struct {
	Name    string `json:"name"`
	OrgType string `json:"org_type"`
}

// Role is one position on the organization chart. Tag is one of "critical",
// "open", "redundant" or empty.
type Role struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Tag  string `json:"tag,omitempty"`
}

// TagSummary counts tagged roles.
type TagSummary struct {
	Critical  int `json:"critical"`
	Open      int `json:"open"`
	Redundant int `json:"redundant"`
}

// SubmitRequest is the body of POST /v1/realignments.
type SubmitRequest struct {
	Organization Organization     `json:"organization"`
	Tier         string           `json:"tier"`
	Roles        []Role           `json:"roles"`
	Answers      []scoring.Answer `json:"answers"`
	Budget       float64          `json:"budget"`

	// Note is stored on the first version
	Note string `json:"note,omitempty"`
}

// UpdateRequest is the body of PUT /v1/realignments/{id}. It replaces every
// editable field and appends a version.
type UpdateRequest struct {
	Organization Organization     `json:"organization"`
	Roles        []Role           `json:"roles"`
	Answers      []scoring.Answer `json:"answers"`
	Budget       float64          `json:"budget"`
	Note         string           `json:"note,omitempty"`
}

// ImportOrganization mirrors the organization block of an exported org chart.
type ImportOrganization struct {
	Name    string `json:"name"`
	OrgType string `json:"orgType"`
}

// ImportRequest is the body of POST /v1/realignments/import: an exported
// org chart plus the tier to file it under.
type ImportRequest struct {
	Tier         string             `json:"tier"`
	Organization ImportOrganization `json:"organization"`
	Roles        []Role             `json:"roles"`
}

// FavoriteRequest is the body of PUT /v1/realignments/{id}/favorite.
type FavoriteRequest struct {
	Favorited bool `json:"favorited"`
}

// Realignment is a stored realignment. OwnerEmail and ConsultantComment are
// omitted from shared views.
type Realignment struct {
	ID                string           `json:"id"`
	OwnerID           string           `json:"owner_id,omitempty"`
	OwnerEmail        string           `json:"owner_email,omitempty"`
	Organization      Organization     `json:"organization"`
	Tier              string           `json:"tier"`
	Roles             []Role           `json:"roles"`
	Answers           []scoring.Answer `json:"answers"`
	Budget            float64          `json:"budget"`
	Scores            scoring.Result   `json:"scores"`
	TagSummary        TagSummary       `json:"tag_summary"`
	ConsultantComment string           `json:"consultant_comment,omitempty"`
	Tag               string           `json:"tag,omitempty"`
	Favorited         bool             `json:"favorited"`
	CreatedAt         time.Time        `json:"created_at"`
	UpdatedAt         time.Time        `json:"updated_at"`
}

// ListRealignmentsResponse lists the caller's realignments, newest first.
type ListRealignmentsResponse struct {
	Realignments []Realignment `json:"realignments"`
}

// ============================================================================
// Versions
// ============================================================================

// Version is a snapshot taken whenever a realignment is saved.
type Version struct {
	ID            string       `json:"id"`
	RealignmentID string       `json:"realignment_id"`
	Organization  Organization `json:"organization"`
	Roles         []Role       `json:"roles"`
	AccessedBy    string       `json:"accessed_by"`
	AccessedAt    time.Time    `json:"accessed_at"`
	Note          string       `json:"note,omitempty"`

	// Changed lists the fields ("name", "org_type", "roles") that differ
	// from the previous version
	Changed []string `json:"changed"`
}

// ListVersionsResponse lists versions newest first.
type ListVersionsResponse struct {
	Versions []Version `json:"versions"`
}

// RestoreRequest is the body of POST /v1/versions/{id}/restore.
type RestoreRequest struct {
	Note string `json:"note,omitempty"`
}

// ============================================================================
// Scenarios
// ============================================================================

// Scenario is a what-if variant attached to a realignment.
type Scenario struct {
	ID            string    `json:"id"`
	RealignmentID string    `json:"realignment_id"`
	Title         string    `json:"title"`
	Description   string    `json:"description,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// CreateScenarioRequest is the body of POST /v1/realignments/{id}/scenarios.
type CreateScenarioRequest struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

// ListScenariosResponse lists scenarios oldest first.
type ListScenariosResponse struct {
	Scenarios []Scenario `json:"scenarios"`
}

// ============================================================================
// Share Links
// ============================================================================

// ShareRequest is the body of POST /v1/realignments/{id}/share. Zero uses
// the server default lifetime.
type ShareRequest struct {
	TTLSeconds int `json:"ttl_seconds,omitempty"`
}

// ShareResponse carries a share token. The token is only ever returned here.
type ShareResponse struct {
	Token     string    `json:"token"`
	Path      string    `json:"path"`
	ExpiresAt time.Time `json:"expires_at"`
}

// ============================================================================
// Consultant Administration
// ============================================================================

// AdminListResponse is one page of the consultant listing.
type AdminListResponse struct {
	Realignments []Realignment `json:"realignments"`
	Total        int           `json:"total"`
	Limit        int           `json:"limit"`
	Offset       int           `json:"offset"`
}

// AdminQuery filters the consultant listing and summary.
type AdminQuery struct {
	Query  string
	Status string // all, complete or incomplete
	SortBy string // created_at, redundancy or savings
	Limit  int
	Offset int
}

// SummaryResponse aggregates every realignment matching an AdminQuery.
type SummaryResponse struct {
	Count          int   `json:"count"`
	AvgRedundancy  int   `json:"avg_redundancy"`
	AvgAIReadiness int   `json:"avg_ai_readiness"`
	TotalSavings   int64 `json:"total_savings"`
}

// CommentRequest is the body of PUT /v1/admin/realignments/{id}/comment.
type CommentRequest struct {
	Comment string `json:"comment"`
}

// Percentiles places a realignment's scores among all stored realignments.
type Percentiles struct {
	Redundancy  float64 `json:"redundancy"`
	AIReadiness float64 `json:"ai_readiness"`
	Savings     float64 `json:"savings"`
}

// BenchmarkResponse compares one realignment with the stored population.
type BenchmarkResponse struct {
	RealignmentID string        `json:"realignment_id"`
	Count         int           `json:"count"`
	Percentiles   Percentiles   `json:"percentiles"`
	Readiness     float64       `json:"readiness"`
	Gaps          []scoring.Gap `json:"gaps"`
	Insights      []string      `json:"insights"`
}

package domain

import (
	"time"

	"github.com/northpath/realign/pkg/scoring"
)

// RoleTag classifies a role on the org chart.
type RoleTag string

const (
	TagNone      RoleTag = ""
	TagCritical  RoleTag = "critical"
	TagOpen      RoleTag = "open"
	TagRedundant RoleTag = "redundant"
)

// Valid reports whether t is one of the known tags (including untagged).
func (t RoleTag) Valid() bool {
	switch t {
	case TagNone, TagCritical, TagOpen, TagRedundant:
		return true
	}
	return false
}

// RealignmentTagRestored marks realignments copied from a past version.
const RealignmentTagRestored = "restored"

type Role struct {
	ID   string  `json:"id"`
	Name string  `json:"name"`
	Tag  RoleTag `json:"tag,omitempty"`
}

type OrgData struct {
	Name    string `json:"name"`
	OrgType string `json:"org_type"`
}

type Realignment struct {
	ID                string
	OwnerID           string
	OwnerEmail        string
	Org               OrgData
	Tier              TierID
	Roles             []Role
	Answers           []scoring.Answer
	Budget            float64
	Scores            scoring.Result
	ConsultantComment string
	Tag               string // "restored" for copies made from a version
	Favorited         bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// Restored reports whether the realignment was created from a past version.
func (r Realignment) Restored() bool { return r.Tag == RealignmentTagRestored }

type Version struct {
	ID            string
	RealignmentID string
	Org           OrgData
	Roles         []Role
	AccessedBy    string
	AccessedAt    time.Time
	Note          string
}

type Scenario struct {
	ID            string
	RealignmentID string
	Title         string
	Description   string
	CreatedAt     time.Time
}

type ShareLink struct {
	ID            string
	RealignmentID string
	Fingerprint   string // SHA-256 of the opaque token, base64url
	CreatedBy     string
	ExpiresAt     time.Time
	CreatedAt     time.Time
}

// Expired reports whether the link is no longer usable at now.
func (l ShareLink) Expired(now time.Time) bool { return !now.Before(l.ExpiresAt) }

// Caller identifies who is acting on a realignment.
type Caller struct {
	UserID     string
	Email      string
	Consultant bool
}

// CanAccess reports whether c may read or change r.
func (c Caller) CanAccess(r Realignment) bool {
	return c.Consultant || (c.UserID != "" && c.UserID == r.OwnerID)
}

// AdminStatus filters realignments by score completeness.
type AdminStatus string

const (
	StatusAll        AdminStatus = "all"
	StatusComplete   AdminStatus = "complete"
	StatusIncomplete AdminStatus = "incomplete"
)

// AdminSort orders the consultant listing.
type AdminSort string

const (
	SortCreatedAt  AdminSort = "created_at"
	SortRedundancy AdminSort = "redundancy"
	SortSavings    AdminSort = "savings"
)

type AdminFilter struct {
	Query  string // matched against org name, org type and owner email
	Status AdminStatus
	SortBy AdminSort
	Limit  int
	Offset int
}

// Summary aggregates a set of realignments for the consultant dashboard.
type Summary struct {
	Count          int   `json:"count"`
	AvgRedundancy  int   `json:"avg_redundancy"`
	AvgAIReadiness int   `json:"avg_ai_readiness"`
	TotalSavings   int64 `json:"total_savings"`
}

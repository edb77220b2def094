package store

import (
	"context"
	"errors"
	"time"

	"github.com/northpath/realign/internal/realign/domain"
	"github.com/northpath/realign/pkg/scoring"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers implement it and
// expose one sub-repository per table so transactions stay explicit.
type Store interface {
	Realignments() Realignments
	Versions() Versions
	Scenarios() Scenarios
	ShareLinks() ShareLinks

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx runs fn in a transaction, rolling back when fn returns an error
	// and committing otherwise.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Realignments interface {
	CreateRealignment(ctx context.Context, r domain.Realignment) error
	GetRealignmentByID(ctx context.Context, id string) (domain.Realignment, error)

	// ListRealignmentsByOwner returns the owner's realignments, newest first.
	ListRealignmentsByOwner(ctx context.Context, ownerID string) ([]domain.Realignment, error)

	// CountRealignmentsByOwnerTier counts the owner's realignments on tier,
	// restored copies included.
	CountRealignmentsByOwnerTier(ctx context.Context, ownerID string, tier domain.TierID) (int, error)

	// ListRealignments applies an admin filter. A non-positive Limit returns
	// every match.
	ListRealignments(ctx context.Context, f domain.AdminFilter) ([]domain.Realignment, error)
	CountRealignments(ctx context.Context, f domain.AdminFilter) (int, error)

	// ListScores returns the scores of every stored realignment.
	ListScores(ctx context.Context) ([]scoring.Result, error)

	// UpdateRealignment replaces org, roles, answers, budget and scores.
	UpdateRealignment(ctx context.Context, r domain.Realignment) error
	SetFavorite(ctx context.Context, id string, favorited bool, now time.Time) error
	SetConsultantComment(ctx context.Context, id, comment string, now time.Time) error

	// DeleteRealignment cascades to versions, scenarios and share links.
	DeleteRealignment(ctx context.Context, id string) error

	// DeleteRealignmentsCreatedBefore removes realignments on tier created
	// before cutoff.
	DeleteRealignmentsCreatedBefore(ctx context.Context, tier domain.TierID, cutoff time.Time) (int64, error)
}

type Versions interface {
	CreateVersion(ctx context.Context, v domain.Version) error
	GetVersionByID(ctx context.Context, id string) (domain.Version, error)

	// ListVersionsByRealignment returns versions newest first.
	ListVersionsByRealignment(ctx context.Context, realignmentID string) ([]domain.Version, error)
	SetVersionNote(ctx context.Context, id, note string) error

	// TrimVersions keeps the newest keep versions of every realignment.
	TrimVersions(ctx context.Context, keep int) (int64, error)
}

type Scenarios interface {
	CreateScenario(ctx context.Context, s domain.Scenario) error
	GetScenarioByID(ctx context.Context, id string) (domain.Scenario, error)

	// ListScenariosByRealignment returns scenarios oldest first.
	ListScenariosByRealignment(ctx context.Context, realignmentID string) ([]domain.Scenario, error)
	CountScenariosByRealignment(ctx context.Context, realignmentID string) (int, error)
	DeleteScenario(ctx context.Context, id string) error
}

type ShareLinks interface {
	CreateShareLink(ctx context.Context, l domain.ShareLink) error

	// GetShareLinkByFingerprint returns the link regardless of expiry.
	GetShareLinkByFingerprint(ctx context.Context, fingerprint string) (domain.ShareLink, error)
	DeleteExpiredShareLinks(ctx context.Context, now time.Time) (int64, error)
}

package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/northpath/realign/internal/realign/domain"
	"github.com/northpath/realign/internal/realign/store"
	"github.com/northpath/realign/internal/realign/store/drivers/sqlite/gen"
	"github.com/northpath/realign/pkg/scoring"
	msqlite "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

type Store struct {
	db  *sql.DB
	q   *gen.Queries
	dsn string
}

// DSN builds a modernc connection string for a database file with the
// pragmas the service relies on. Transactions take the write lock on BEGIN so
// a count followed by an insert waits on busy_timeout instead of failing.
func DSN(file string) string {
	return "file:" + file + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)&_txlock=immediate"
}

func NewStore(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	// Every connection to :memory: is a fresh database.
	if strings.Contains(dsn, ":memory:") {
		db.SetMaxOpenConns(1)
	}

	// Enforce FKs
	if _, err := db.ExecContext(context.Background(), `PRAGMA foreign_keys = ON;`); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Store{
		db:  db,
		q:   gen.New(db),
		dsn: dsn,
	}, nil
}

func (s *Store) Close() error { return s.db.Close() }

// Ping verifies the database connection is still alive.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Tx starts a read/write transaction and returns a Tx-scoped Store.
func (s *Store) Tx(ctx context.Context) (store.Tx, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return newTx(tx), nil
}

// WithTx executes fn within a transaction, automatically handling commit/rollback.
func (s *Store) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	tx, err := s.Tx(ctx)
	if err != nil {
		return err
	}

	defer func() {
		_ = tx.Rollback() // safe to call even after commit
	}()

	if err := fn(tx); err != nil {
		return err
	}

	return tx.Commit()
}

func (s *Store) Realignments() store.Realignments { return &realignmentsRepo{q: s.q} }
func (s *Store) Versions() store.Versions         { return &versionsRepo{q: s.q} }
func (s *Store) Scenarios() store.Scenarios       { return &scenariosRepo{q: s.q} }
func (s *Store) ShareLinks() store.ShareLinks     { return &shareLinksRepo{q: s.q} }

func mapNotFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return store.ErrNotFound
	}
	return err
}

// mapConstraint turns primary key and unique violations into ErrAlreadyExists.
func mapConstraint(err error) error {
	var se *msqlite.Error
	if errors.As(err, &se) {
		switch se.Code() {
		case sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3.SQLITE_CONSTRAINT_UNIQUE:
			return store.ErrAlreadyExists
		}
		if strings.Contains(se.Error(), "UNIQUE constraint failed") {
			return store.ErrAlreadyExists
		}
	}
	return err
}

// mapAffected reports ErrNotFound when a write touched no rows.
func mapAffected(n int64, err error) error {
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func utc(t time.Time) time.Time { return t.UTC() }

func encodeJSON(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func decodeJSON[T any](s string) (T, error) {
	var v T
	if s == "" {
		return v, nil
	}
	err := json.Unmarshal([]byte(s), &v)
	return v, err
}

func mapRealignment(row gen.Realignment) (domain.Realignment, error) {
	roles, err := decodeJSON[[]domain.Role](row.Roles)
	if err != nil {
		return domain.Realignment{}, err
	}
	answers, err := decodeJSON[[]scoring.Answer](row.Answers)
	if err != nil {
		return domain.Realignment{}, err
	}
	skipped, err := decodeJSON[[]string](row.Skipped)
	if err != nil {
		return domain.Realignment{}, err
	}

	return domain.Realignment{
		ID:         row.ID,
		OwnerID:    row.OwnerID,
		OwnerEmail: row.OwnerEmail,
		Org:        domain.OrgData{Name: row.OrgName, OrgType: row.OrgType},
		Tier:       domain.TierID(row.Tier),
		Roles:      roles,
		Answers:    answers,
		Budget:     row.Budget,
		Scores: scoring.Result{
			Redundancy:       int(row.Redundancy),
			AIReadiness:      int(row.AiReadiness),
			EstimatedSavings: row.EstimatedSavings,
			Skipped:          skipped,
		},
		ConsultantComment: row.ConsultantComment,
		Tag:               row.Tag,
		Favorited:         row.Favorited,
		CreatedAt:         row.CreatedAt,
		UpdatedAt:         row.UpdatedAt,
	}, nil
}

func mapRealignments(rows []gen.Realignment) ([]domain.Realignment, error) {
	out := make([]domain.Realignment, len(rows))
	for i, row := range rows {
		r, err := mapRealignment(row)
		if err != nil {
			return nil, err
		}
		out[i] = r
	}
	return out, nil
}

func mapVersion(row gen.RealignmentVersion) (domain.Version, error) {
	roles, err := decodeJSON[[]domain.Role](row.Roles)
	if err != nil {
		return domain.Version{}, err
	}
	return domain.Version{
		ID:            row.ID,
		RealignmentID: row.RealignmentID,
		Org:           domain.OrgData{Name: row.OrgName, OrgType: row.OrgType},
		Roles:         roles,
		AccessedBy:    row.AccessedBy,
		AccessedAt:    row.AccessedAt,
		Note:          row.Note,
	}, nil
}

func mapScenario(row gen.Scenario) domain.Scenario {
	return domain.Scenario{
		ID:            row.ID,
		RealignmentID: row.RealignmentID,
		Title:         row.Title,
		Description:   row.Description,
		CreatedAt:     row.CreatedAt,
	}
}

func mapShareLink(row gen.ShareLink) domain.ShareLink {
	return domain.ShareLink{
		ID:            row.ID,
		RealignmentID: row.RealignmentID,
		Fingerprint:   row.Fingerprint,
		CreatedBy:     row.CreatedBy,
		ExpiresAt:     row.ExpiresAt,
		CreatedAt:     row.CreatedAt,
	}
}

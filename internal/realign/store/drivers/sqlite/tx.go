package sqlite

import (
	"context"
	"database/sql"

	"github.com/northpath/realign/internal/realign/store"
	"github.com/northpath/realign/internal/realign/store/drivers/sqlite/gen"
)

type txStore struct {
	tx *sql.Tx
	q  *gen.Queries
}

func newTx(tx *sql.Tx) *txStore {
	return &txStore{
		tx: tx,
		q:  gen.New(tx),
	}
}

func (t *txStore) Commit() error   { return t.tx.Commit() }
func (t *txStore) Rollback() error { return t.tx.Rollback() }

func (t *txStore) Close() error { return nil } // the outer DB stays open

// Ping is a no-op: the connection is held by the transaction.
func (t *txStore) Ping(ctx context.Context) error {
	return nil
}

func (t *txStore) Tx(ctx context.Context) (store.Tx, error) {
	// Nested tx not supported; could emulate with SAVEPOINT if needed
	return nil, sql.ErrTxDone
}

func (t *txStore) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	return sql.ErrTxDone
}

func (t *txStore) Realignments() store.Realignments { return &realignmentsRepo{q: t.q} }
func (t *txStore) Versions() store.Versions         { return &versionsRepo{q: t.q} }
func (t *txStore) Scenarios() store.Scenarios       { return &scenariosRepo{q: t.q} }
func (t *txStore) ShareLinks() store.ShareLinks     { return &shareLinksRepo{q: t.q} }

func (t *txStore) ApplyMigrations() error { return nil } // migrations run before any tx

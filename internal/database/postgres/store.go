package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/scrapworld/internal/database/generated"
	"github.com/osse101/scrapworld/internal/repository"
)

// Store implements every ledger repository on PostgreSQL
type Store struct {
	db *pgxpool.Pool
	q  *generated.Queries
}

// NewStore creates a new Store
func NewStore(db *pgxpool.Pool) *Store {
	return &Store{
		db: db,
		q:  generated.New(db),
	}
}

// LedgerTx implements repository.LedgerTx
type LedgerTx struct {
	tx *txHelper
}

// BeginTx starts a new transaction
func (s *Store) BeginTx(ctx context.Context) (repository.LedgerTx, error) {
	h, err := beginTx(ctx, s.db, s.q)
	if err != nil {
		return nil, err
	}
	return &LedgerTx{tx: h}, nil
}

// Commit commits the transaction
func (t *LedgerTx) Commit(ctx context.Context) error {
	return t.tx.tx.Commit(ctx)
}

// Rollback rolls back the transaction
func (t *LedgerTx) Rollback(ctx context.Context) error {
	return t.tx.tx.Rollback(ctx)
}

var (
	_ repository.User    = (*Store)(nil)
	_ repository.Item    = (*Store)(nil)
	_ repository.Booster = (*Store)(nil)
	_ repository.Quest   = (*Store)(nil)
	_ repository.Token   = (*Store)(nil)
	_ repository.Fusion  = (*Store)(nil)
	_ repository.Staking = (*Store)(nil)
)

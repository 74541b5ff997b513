package repository

import (
	"context"

	"github.com/osse101/scrapworld/internal/domain"
)

// Tx defines the interface for transactional operations
type Tx interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// LedgerTx is a store transaction over the ledger tables.
// Reads suffixed ForUpdate lock the row until Commit or Rollback.
// Lookups return (nil, nil) when the row does not exist.
type LedgerTx interface {
	Tx

	GetUserForUpdate(ctx context.Context, userID string) (*domain.User, error)
	UpdateUserProgress(ctx context.Context, user *domain.User) error

	GetUserItemForUpdate(ctx context.Context, userID, itemID string) (*domain.UserItem, error)
	AddUserItem(ctx context.Context, userID, itemID string, quantity int) error
	SetUserItemQuantity(ctx context.Context, userID, itemID string, quantity int) error

	// GetUnopenedBoosterForUpdate picks boosterID when set, otherwise the oldest unopened booster
	GetUnopenedBoosterForUpdate(ctx context.Context, userID, boosterID string) (*domain.Booster, error)
	MarkBoosterOpened(ctx context.Context, boosterID string) error
	InsertBooster(ctx context.Context, userID, tier string) (*domain.Booster, error)

	GetTokenForUpdate(ctx context.Context, tokenID string) (*domain.Token, error)
	UpdateTokenAttributes(ctx context.Context, tokenID string, attrs domain.TokenAttributes) error
	InsertToken(ctx context.Context, token *domain.Token) error
	InsertFusionLog(ctx context.Context, entry *domain.FusionLog) error

	GetUserQuest(ctx context.Context, userID, questID string) (*domain.UserQuest, error)
	InsertUserQuest(ctx context.Context, uq *domain.UserQuest) error

	InsertStaking(ctx context.Context, s *domain.Staking) error
}

// Ledger opens ledger transactions
type Ledger interface {
	BeginTx(ctx context.Context) (LedgerTx, error)
}

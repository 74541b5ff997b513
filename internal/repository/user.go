package repository

import (
	"context"

	"github.com/osse101/scrapworld/internal/domain"
)

// UserReader looks users up outside a transaction
type UserReader interface {
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
}

// User defines the interface for user persistence
type User interface {
	UserReader
	GetUserByWallet(ctx context.Context, wallet string) (*domain.User, error)
	UpsertUserByWallet(ctx context.Context, wallet string) (*domain.User, error)
	GetUserItems(ctx context.Context, userID string) ([]domain.InventoryItem, error)
}

package repository

import (
	"context"

	"github.com/osse101/scrapworld/internal/domain"
)

// Staking defines the interface for stake persistence
type Staking interface {
	Ledger
	UserReader
	// GetStakingsByUser returns the user's stakes, newest first
	GetStakingsByUser(ctx context.Context, userID string) ([]domain.Staking, error)
}

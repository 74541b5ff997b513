package repository

import (
	"context"

	"github.com/osse101/scrapworld/internal/domain"
)

// Booster defines the persistence needed to open boosters
type Booster interface {
	Ledger
	UserReader
	GetBoostersByUser(ctx context.Context, userID string) ([]domain.Booster, error)
}

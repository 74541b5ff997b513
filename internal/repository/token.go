package repository

import (
	"context"

	"github.com/osse101/scrapworld/internal/domain"
)

// Token defines the interface for NFT metadata persistence
type Token interface {
	Ledger
	UserReader
	GetTokenByID(ctx context.Context, tokenID string) (*domain.Token, error)
}

// Fusion defines the persistence needed by the fusion engine
type Fusion interface {
	Ledger
}

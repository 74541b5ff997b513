package repository

import (
	"context"

	"github.com/osse101/scrapworld/internal/domain"
)

// Item defines read access to the item catalog
type Item interface {
	GetAllItems(ctx context.Context) ([]domain.Item, error)
	GetItemByID(ctx context.Context, itemID string) (*domain.Item, error)
}

package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/osse101/scrapworld/internal/domain"
)

// GetAllItems returns the whole catalog ordered by name
func (s *Store) GetAllItems(ctx context.Context) ([]domain.Item, error) {
	rows, err := s.q.GetAllItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get items: %w", err)
	}
	items := make([]domain.Item, 0, len(rows))
	for _, row := range rows {
		items = append(items, mapItem(row))
	}
	return items, nil
}

// GetItemByID returns nil if the item does not exist
func (s *Store) GetItemByID(ctx context.Context, itemID string) (*domain.Item, error) {
	id, ok := parseID(itemID)
	if !ok {
		return nil, nil
	}
	row, err := s.q.GetItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get item by id: %w", err)
	}
	item := mapItem(row)
	return &item, nil
}

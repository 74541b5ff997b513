package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/scrapworld/internal/domain"
	"github.com/osse101/scrapworld/internal/repository"
)

const allItemsKey = "__all__"

// Catalog is a read-through cache over the immutable item catalog.
// Entries expire after the TTL so catalog edits made directly in the database eventually show up.
type Catalog struct {
	repo  repository.Item
	all   *expirable.LRU[string, []domain.Item]
	items *expirable.LRU[string, domain.Item]
}

// New creates a catalog holding at most size items for ttl
func New(repo repository.Item, size int, ttl time.Duration) *Catalog {
	if size <= 0 {
		size = DefaultSize
	}
	return &Catalog{
		repo:  repo,
		all:   expirable.NewLRU[string, []domain.Item](1, nil, ttl),
		items: expirable.NewLRU[string, domain.Item](size, nil, ttl),
	}
}

// All returns every catalog item. The returned slice is the caller's to keep.
func (c *Catalog) All(ctx context.Context) ([]domain.Item, error) {
	if cached, ok := c.all.Get(allItemsKey); ok {
		return append([]domain.Item(nil), cached...), nil
	}

	items, err := c.repo.GetAllItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load item catalog: %w", err)
	}
	c.all.Add(allItemsKey, items)
	for _, it := range items {
		c.items.Add(it.ID, it)
	}
	return append([]domain.Item(nil), items...), nil
}

// Get returns one item, or nil when it is not in the catalog
func (c *Catalog) Get(ctx context.Context, itemID string) (*domain.Item, error) {
	if it, ok := c.items.Get(itemID); ok {
		return &it, nil
	}

	it, err := c.repo.GetItemByID(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("failed to load item %s: %w", itemID, err)
	}
	if it == nil {
		return nil, nil
	}
	c.items.Add(it.ID, *it)
	return it, nil
}

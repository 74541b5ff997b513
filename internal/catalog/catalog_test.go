package catalog

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/scrapworld/internal/domain"
)

type countingRepo struct {
	items    []domain.Item
	allCalls int
	getCalls int
	err      error
}

func (r *countingRepo) GetAllItems(_ context.Context) ([]domain.Item, error) {
	r.allCalls++
	if r.err != nil {
		return nil, r.err
	}
	return r.items, nil
}

func (r *countingRepo) GetItemByID(_ context.Context, id string) (*domain.Item, error) {
	r.getCalls++
	if r.err != nil {
		return nil, r.err
	}
	for _, it := range r.items {
		if it.ID == id {
			it := it
			return &it, nil
		}
	}
	return nil, nil
}

func testItems() []domain.Item {
	return []domain.Item{
		{ID: "a", Name: "Bolt", Type: domain.ItemTypeCommon},
		{ID: "b", Name: "Core", Type: domain.ItemTypeRare},
	}
}

func TestCatalog_AllIsCached(t *testing.T) {
	repo := &countingRepo{items: testItems()}
	c := New(repo, 10, time.Minute)

	first, err := c.All(context.Background())
	require.NoError(t, err)
	second, err := c.All(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, repo.allCalls)

	// caller mutations do not leak into the cache
	first[0].Name = "changed"
	third, _ := c.All(context.Background())
	assert.Equal(t, "Bolt", third[0].Name)
}

func TestCatalog_GetWarmedByAll(t *testing.T) {
	repo := &countingRepo{items: testItems()}
	c := New(repo, 10, time.Minute)

	_, err := c.All(context.Background())
	require.NoError(t, err)

	it, err := c.Get(context.Background(), "b")
	require.NoError(t, err)
	require.NotNil(t, it)
	assert.True(t, it.IsRare())
	assert.Equal(t, 0, repo.getCalls)
}

func TestCatalog_GetMissing(t *testing.T) {
	repo := &countingRepo{items: testItems()}
	c := New(repo, 10, time.Minute)

	it, err := c.Get(context.Background(), "zzz")
	require.NoError(t, err)
	assert.Nil(t, it)

	_, _ = c.Get(context.Background(), "zzz")
	assert.Equal(t, 2, repo.getCalls, "misses are not cached")
}

func TestCatalog_Expiry(t *testing.T) {
	repo := &countingRepo{items: testItems()}
	c := New(repo, 10, 20*time.Millisecond)

	_, err := c.All(context.Background())
	require.NoError(t, err)
	time.Sleep(60 * time.Millisecond)
	_, err = c.All(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, repo.allCalls)
}

func TestCatalog_LoadErrors(t *testing.T) {
	repo := &countingRepo{items: testItems(), err: errors.New("db down")}
	c := New(repo, 0, time.Minute)

	_, err := c.All(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db down")

	_, err = c.Get(context.Background(), "a")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db down")
}

package user

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/scrapworld/internal/database/memory"
	"github.com/osse101/scrapworld/internal/domain"
)

var testCacheConfig = CacheConfig{Size: 10, TTL: time.Minute}

func TestRegister_IsIdempotentPerWallet(t *testing.T) {
	ctx := context.Background()
	store := memory.NewSeededStore()
	svc := NewService(store, testCacheConfig)

	first, err := svc.Register(ctx, "  0xfeed  ")
	require.NoError(t, err)
	assert.Equal(t, "0xfeed", first.WalletAddress)
	assert.Equal(t, int64(0), first.XP)
	assert.Equal(t, 1, first.Level)
	assert.Equal(t, 0.0, first.Scrap)

	second, err := svc.Register(ctx, "0xfeed")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
}

func TestRegister_RequiresWallet(t *testing.T) {
	_, err := NewService(memory.NewStore(), testCacheConfig).Register(context.Background(), "   ")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestGet(t *testing.T) {
	ctx := context.Background()
	store := memory.NewSeededStore()
	seeded := store.SeedUser(domain.User{XP: 4200, Scrap: 12.5})
	svc := NewService(store, testCacheConfig)

	user, err := svc.Get(ctx, seeded.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, user.Level)
	assert.Equal(t, 12.5, user.Scrap)

	_, err = svc.Get(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestGetItemsByWallet(t *testing.T) {
	ctx := context.Background()
	store := memory.NewSeededStore()
	seeded := store.SeedUser(domain.User{WalletAddress: "0xcafe"})
	bolt, decal := memory.DefaultItems[0], memory.DefaultItems[3]
	store.SeedUserItem(seeded.ID, bolt.ID, 4)
	store.SeedUserItem(seeded.ID, decal.ID, 0)
	svc := NewService(store, testCacheConfig)

	items, err := svc.GetItemsByWallet(ctx, "0xcafe")
	require.NoError(t, err)
	require.Len(t, items, 2)

	byID := map[string]domain.InventoryItem{}
	for _, it := range items {
		byID[it.ID] = it
	}
	assert.Equal(t, 4, byID[bolt.ID].Quantity)
	assert.Equal(t, bolt.Name, byID[bolt.ID].Name)
	assert.Equal(t, 0, byID[decal.ID].Quantity, "zero rows are still listed")

	// second lookup is served from the wallet cache
	_, err = svc.GetItemsByWallet(ctx, "0xcafe")
	require.NoError(t, err)
	assert.Equal(t, int64(1), svc.GetCacheStats().Hits)

	_, err = svc.GetItemsByWallet(ctx, "0xunknown")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

// MockRepository is a mock implementation of repository.User
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockRepository) GetUserByWallet(ctx context.Context, wallet string) (*domain.User, error) {
	args := m.Called(ctx, wallet)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockRepository) UpsertUserByWallet(ctx context.Context, wallet string) (*domain.User, error) {
	args := m.Called(ctx, wallet)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockRepository) GetUserItems(ctx context.Context, userID string) ([]domain.InventoryItem, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InventoryItem), args.Error(1)
}

func TestRegister_StoreError(t *testing.T) {
	repo := new(MockRepository)
	dbErr := errors.New("connection refused")
	repo.On("GetUserByWallet", mock.Anything, "0xdead").Return(nil, nil)
	repo.On("UpsertUserByWallet", mock.Anything, "0xdead").Return(nil, dbErr)

	_, err := NewService(repo, testCacheConfig).Register(context.Background(), "0xdead")
	assert.ErrorIs(t, err, dbErr)
	repo.AssertExpectations(t)
}

func TestGetItemsByWallet_EmptyInventory(t *testing.T) {
	repo := new(MockRepository)
	repo.On("GetUserByWallet", mock.Anything, "0xbeef").Return(&domain.User{ID: "u-1"}, nil)
	repo.On("GetUserItems", mock.Anything, "u-1").Return(nil, nil)

	items, err := NewService(repo, testCacheConfig).GetItemsByWallet(context.Background(), "0xbeef")
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
	repo.AssertExpectations(t)
}

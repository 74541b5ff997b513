package booster

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/scrapworld/internal/catalog"
	"github.com/osse101/scrapworld/internal/database/memory"
	"github.com/osse101/scrapworld/internal/domain"
)

type staticCatalog []domain.Item

func (c staticCatalog) All(context.Context) ([]domain.Item, error) { return c, nil }

func newTestService(store *memory.Store) *service {
	svc := NewService(store, catalog.New(store, 16, time.Minute)).(*service)
	svc.rng = lowest
	return svc
}

func TestOpenBooster_AppliesRewards(t *testing.T) {
	ctx := context.Background()
	store := memory.NewSeededStore()
	user := store.SeedUser(domain.User{XP: 990})
	b := store.SeedBooster(user.ID, domain.BoosterTierCommon)

	res, err := newTestService(store).OpenBooster(ctx, user.ID, b.ID)
	require.NoError(t, err)

	assert.Equal(t, "Common booster opened successfully", res.Message)
	assert.Equal(t, b.ID, res.BoosterID)
	assert.Equal(t, int64(10), res.Rewards.XP)
	assert.Equal(t, 5.0, res.Rewards.Scrap)
	require.Len(t, res.Rewards.Items, 1)

	stored, err := store.GetUserByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1000), stored.XP)
	assert.Equal(t, 2, stored.Level)
	assert.Equal(t, 5.0, stored.Scrap)

	qty, ok := store.UserItemQuantity(user.ID, res.Rewards.Items[0].ID)
	require.True(t, ok)
	assert.Equal(t, 1, qty)

	boosters, err := store.GetBoostersByUser(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, boosters, 1)
	assert.True(t, boosters[0].Opened)
}

func TestOpenBooster_DefaultsToOldestUnopened(t *testing.T) {
	store := memory.NewSeededStore()
	user := store.SeedUser(domain.User{})
	first := store.SeedBooster(user.ID, domain.BoosterTierRare)
	store.SeedBooster(user.ID, domain.BoosterTierLegendary)

	res, err := newTestService(store).OpenBooster(context.Background(), user.ID, "")
	require.NoError(t, err)
	assert.Equal(t, first.ID, res.BoosterID)
	assert.Equal(t, "Rare booster opened successfully", res.Message)
}

func TestOpenBooster_AlreadyOpenedWritesNothing(t *testing.T) {
	ctx := context.Background()
	store := memory.NewSeededStore()
	user := store.SeedUser(domain.User{})
	b := store.SeedBooster(user.ID, domain.BoosterTierCommon)
	svc := newTestService(store)

	_, err := svc.OpenBooster(ctx, user.ID, b.ID)
	require.NoError(t, err)
	after, err := store.GetUserByID(ctx, user.ID)
	require.NoError(t, err)

	_, err = svc.OpenBooster(ctx, user.ID, b.ID)
	assert.ErrorIs(t, err, domain.ErrBoosterNotFound)

	again, err := store.GetUserByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, after.XP, again.XP)
	assert.Equal(t, after.Scrap, again.Scrap)
}

func TestOpenBooster_NotFound(t *testing.T) {
	ctx := context.Background()
	store := memory.NewSeededStore()
	user := store.SeedUser(domain.User{})
	other := store.SeedUser(domain.User{})
	foreign := store.SeedBooster(other.ID, domain.BoosterTierCommon)
	svc := newTestService(store)

	t.Run("no boosters at all", func(t *testing.T) {
		_, err := svc.OpenBooster(ctx, user.ID, "")
		assert.ErrorIs(t, err, domain.ErrBoosterNotFound)
	})

	t.Run("booster owned by someone else", func(t *testing.T) {
		_, err := svc.OpenBooster(ctx, user.ID, foreign.ID)
		assert.ErrorIs(t, err, domain.ErrBoosterNotFound)

		boosters, err := store.GetBoostersByUser(ctx, other.ID)
		require.NoError(t, err)
		assert.False(t, boosters[0].Opened)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := svc.OpenBooster(ctx, "missing", "")
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})
}

func TestOpenBooster_FailedRewardKeepsBoosterUnopened(t *testing.T) {
	ctx := context.Background()
	store := memory.NewSeededStore()
	user := store.SeedUser(domain.User{})
	b := store.SeedBooster(user.ID, domain.BoosterTierCommon)

	svc := NewService(store, staticCatalog{{ID: "ghost", Type: domain.ItemTypeCommon}}).(*service)
	svc.rng = lowest

	_, err := svc.OpenBooster(ctx, user.ID, b.ID)
	assert.ErrorIs(t, err, domain.ErrItemNotFound)

	boosters, err := store.GetBoostersByUser(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, boosters, 1)
	assert.False(t, boosters[0].Opened)

	stored, err := store.GetUserByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), stored.XP)
}

func TestListBoosters(t *testing.T) {
	ctx := context.Background()
	store := memory.NewSeededStore()
	user := store.SeedUser(domain.User{})
	svc := newTestService(store)

	list, err := svc.ListBoosters(ctx, user.ID)
	require.NoError(t, err)
	assert.Empty(t, list)
	assert.NotNil(t, list)

	store.SeedBooster(user.ID, domain.BoosterTierRare)
	list, err = svc.ListBoosters(ctx, user.ID)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	_, err = svc.ListBoosters(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

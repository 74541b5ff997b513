package staking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/scrapworld/internal/database/memory"
	"github.com/osse101/scrapworld/internal/domain"
)

func newTestService(store *memory.Store, clock *time.Time) Service {
	svc := NewService(store).(*service)
	svc.now = func() time.Time { return *clock }
	return svc
}

func TestStake_WholeBalance(t *testing.T) {
	ctx := context.Background()
	store := memory.NewSeededStore()
	user := store.SeedUser(domain.User{Scrap: 100})
	clock := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	svc := newTestService(store, &clock)

	res, err := svc.Stake(ctx, user.ID, 100)
	require.NoError(t, err)
	assert.Equal(t, 0.0, res.NewBalance)
	require.NotNil(t, res.Staking)
	assert.NotEmpty(t, res.Staking.ID)
	assert.Equal(t, 100.0, res.Staking.Amount)
	assert.Equal(t, clock, res.Staking.StartDate)

	stored, err := store.GetUserByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, 0.0, stored.Scrap)

	stakes, err := store.GetStakingsByUser(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, stakes, 1)
	assert.Equal(t, 100.0, stakes[0].Amount)
}

func TestStake_InsufficientFunds(t *testing.T) {
	ctx := context.Background()
	store := memory.NewSeededStore()
	user := store.SeedUser(domain.User{Scrap: 50})
	clock := time.Now().UTC()

	_, err := newTestService(store, &clock).Stake(ctx, user.ID, 100)
	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)

	stored, err := store.GetUserByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, 50.0, stored.Scrap)

	stakes, err := store.GetStakingsByUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Empty(t, stakes)
}

func TestStake_Validation(t *testing.T) {
	ctx := context.Background()
	store := memory.NewSeededStore()
	user := store.SeedUser(domain.User{Scrap: 50})
	clock := time.Now().UTC()
	svc := newTestService(store, &clock)

	for _, amount := range []float64{0, -5} {
		_, err := svc.Stake(ctx, user.ID, amount)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}

	_, err := svc.Stake(ctx, "missing", 10)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestStake_Precision(t *testing.T) {
	ctx := context.Background()
	store := memory.NewSeededStore()
	user := store.SeedUser(domain.User{Scrap: 50})
	clock := time.Now().UTC()
	svc := newTestService(store, &clock)

	// Amounts finer than the stored NUMERIC scale would round to a different stake
	for _, amount := range []float64{0.00001, 0.00004, 1.23456} {
		_, err := svc.Stake(ctx, user.ID, amount)
		require.ErrorIs(t, err, domain.ErrInvalidInput, "amount %v", amount)
		assert.Contains(t, err.Error(), "decimal places")
	}

	stakes, err := store.GetStakingsByUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Empty(t, stakes)

	res, err := svc.Stake(ctx, user.ID, 0.0001)
	require.NoError(t, err)
	assert.Equal(t, 0.0001, res.Staking.Amount)

	res, err = svc.Stake(ctx, user.ID, 12.3456)
	require.NoError(t, err)
	assert.Equal(t, 12.3456, res.Staking.Amount)
}

func TestListStakes_ProjectsYield(t *testing.T) {
	ctx := context.Background()
	store := memory.NewSeededStore()
	user := store.SeedUser(domain.User{Scrap: 1500})
	clock := time.Date(2026, 2, 1, 9, 30, 0, 0, time.UTC)
	svc := newTestService(store, &clock)

	_, err := svc.Stake(ctx, user.ID, 1000)
	require.NoError(t, err)

	clock = clock.Add(36 * time.Hour)
	_, err = svc.Stake(ctx, user.ID, 200.5)
	require.NoError(t, err)

	clock = time.Date(2026, 2, 11, 9, 30, 0, 0, time.UTC)
	summary, err := svc.ListStakes(ctx, user.ID)
	require.NoError(t, err)

	assert.Equal(t, user.ID, summary.UserID)
	assert.Equal(t, 1200.5, summary.TotalStaked)
	require.Len(t, summary.Staking, 2)

	newest, oldest := summary.Staking[0], summary.Staking[1]
	assert.Equal(t, 200.5, newest.Amount)
	assert.Equal(t, 8.5, newest.DurationDays)
	assert.Equal(t, 8.52, newest.PotentialReward)

	assert.Equal(t, 1000.0, oldest.Amount)
	assert.Equal(t, 10.0, oldest.DurationDays)
	assert.Equal(t, 50.0, oldest.PotentialReward)

	again, err := svc.ListStakes(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, summary, again, "listing is a pure read")
}

func TestListStakes_EmptyAndMissingUser(t *testing.T) {
	ctx := context.Background()
	store := memory.NewSeededStore()
	user := store.SeedUser(domain.User{})
	clock := time.Now().UTC()
	svc := newTestService(store, &clock)

	summary, err := svc.ListStakes(ctx, user.ID)
	require.NoError(t, err)
	assert.Empty(t, summary.Staking)
	assert.Equal(t, 0.0, summary.TotalStaked)

	_, err = svc.ListStakes(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestProjectedYield(t *testing.T) {
	start := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)

	days, yield := ProjectedYield(1000, start, start.Add(10*24*time.Hour))
	assert.Equal(t, 10.0, days)
	assert.InDelta(t, 50.0, yield, 1e-9)

	days, yield = ProjectedYield(1000, start, start.Add(-time.Hour))
	assert.Equal(t, 0.0, days)
	assert.Equal(t, 0.0, yield)
}

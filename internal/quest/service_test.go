package quest

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/scrapworld/internal/database/memory"
	"github.com/osse101/scrapworld/internal/domain"
)

var (
	firstSalvage = memory.DefaultQuests[0]
	scrapBaron   = memory.DefaultQuests[2]
	completedAt  = time.Date(2026, 7, 4, 18, 0, 0, 0, time.UTC)
)

func newTestService(store *memory.Store) Service {
	svc := NewService(store).(*service)
	svc.now = func() time.Time { return completedAt }
	return svc
}

func TestListQuests(t *testing.T) {
	quests, err := newTestService(memory.NewSeededStore()).ListQuests(context.Background())
	require.NoError(t, err)
	assert.Len(t, quests, len(memory.DefaultQuests))

	empty, err := newTestService(memory.NewStore()).ListQuests(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestCompleteQuest_GrantsReward(t *testing.T) {
	ctx := context.Background()
	store := memory.NewSeededStore()
	user := store.SeedUser(domain.User{XP: 950})

	res, err := newTestService(store).CompleteQuest(ctx, user.ID, firstSalvage.ID)
	require.NoError(t, err)

	assert.Equal(t, `Quest "First Salvage" completed successfully`, res.Message)
	assert.Equal(t, firstSalvage.Reward, res.Rewards)
	assert.Equal(t, int64(1050), res.User.XP)
	assert.Equal(t, 2, res.User.Level)
	assert.Equal(t, 10.0, res.User.Scrap)

	itemID := firstSalvage.Reward.Items[0].ID
	qty, ok := store.UserItemQuantity(user.ID, itemID)
	require.True(t, ok)
	assert.Equal(t, 2, qty)
}

func TestCompleteQuest_BoosterReward(t *testing.T) {
	ctx := context.Background()
	store := memory.NewSeededStore()
	user := store.SeedUser(domain.User{})

	_, err := newTestService(store).CompleteQuest(ctx, user.ID, scrapBaron.ID)
	require.NoError(t, err)

	boosters, err := store.GetBoostersByUser(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, boosters, 1)
	assert.Equal(t, domain.BoosterTierRare, boosters[0].Type)
	assert.False(t, boosters[0].Opened)
}

func TestCompleteQuest_SecondAttemptGrantsNothing(t *testing.T) {
	ctx := context.Background()
	store := memory.NewSeededStore()
	user := store.SeedUser(domain.User{})
	svc := newTestService(store)

	_, err := svc.CompleteQuest(ctx, user.ID, firstSalvage.ID)
	require.NoError(t, err)

	_, err = svc.CompleteQuest(ctx, user.ID, firstSalvage.ID)
	assert.ErrorIs(t, err, domain.ErrQuestAlreadyCompleted)

	stored, err := store.GetUserByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, firstSalvage.Reward.XP, stored.XP)
	assert.Equal(t, firstSalvage.Reward.Scrap, stored.Scrap)

	qty, _ := store.UserItemQuantity(user.ID, firstSalvage.Reward.Items[0].ID)
	assert.Equal(t, 2, qty)
}

func TestCompleteQuest_NotFound(t *testing.T) {
	ctx := context.Background()
	store := memory.NewSeededStore()
	user := store.SeedUser(domain.User{})
	svc := newTestService(store)

	_, err := svc.CompleteQuest(ctx, user.ID, "missing")
	assert.ErrorIs(t, err, domain.ErrQuestNotFound)

	_, err = svc.CompleteQuest(ctx, "missing", firstSalvage.ID)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestCompleteQuest_FailedRewardLeavesQuestOpen(t *testing.T) {
	ctx := context.Background()
	store := memory.NewSeededStore()
	broken := store.SeedQuest(domain.Quest{
		Name: "Broken",
		Reward: domain.RewardBundle{
			XP:    10,
			Items: []domain.RewardItem{{ID: "not-in-catalog", Quantity: 1}},
		},
	})
	user := store.SeedUser(domain.User{})

	_, err := newTestService(store).CompleteQuest(ctx, user.ID, broken.ID)
	assert.ErrorIs(t, err, domain.ErrItemNotFound)

	done, err := store.GetCompletedQuests(ctx, user.ID)
	require.NoError(t, err)
	assert.Empty(t, done)
}

func TestGetUserQuests(t *testing.T) {
	ctx := context.Background()
	store := memory.NewSeededStore()
	user := store.SeedUser(domain.User{})
	svc := newTestService(store)

	_, err := svc.CompleteQuest(ctx, user.ID, firstSalvage.ID)
	require.NoError(t, err)

	board, err := svc.GetUserQuests(ctx, user.ID)
	require.NoError(t, err)

	assert.Equal(t, user.ID, board.UserID)
	assert.Equal(t, len(memory.DefaultQuests), board.TotalQuests)
	assert.Equal(t, 1, board.CompletedCount)
	require.Len(t, board.Completed, 1)
	assert.Equal(t, firstSalvage.ID, board.Completed[0].ID)
	assert.Equal(t, domain.QuestStatusCompleted, board.Completed[0].Status)
	require.NotNil(t, board.Completed[0].CompletedAt)
	assert.Equal(t, completedAt, *board.Completed[0].CompletedAt)

	assert.Len(t, board.Available, len(memory.DefaultQuests)-1)
	for _, q := range board.Available {
		assert.Equal(t, domain.QuestStatusNotStarted, q.Status)
		assert.Nil(t, q.CompletedAt)
	}

	_, err = svc.GetUserQuests(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

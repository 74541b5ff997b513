package postgres

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/scrapworld/internal/domain"
	"github.com/osse101/scrapworld/internal/repository"
)

func newWallet() string {
	return "0x" + uuid.NewString()
}

func TestStore_UserLifecycle(t *testing.T) {
	store := requireStore(t)
	ctx := context.Background()

	wallet := newWallet()
	user, err := store.UpsertUserByWallet(ctx, wallet)
	require.NoError(t, err)
	assert.Equal(t, int64(0), user.XP)
	assert.Equal(t, 1, user.Level)
	assert.Equal(t, 0.0, user.Scrap)

	again, err := store.UpsertUserByWallet(ctx, wallet)
	require.NoError(t, err)
	assert.Equal(t, user.ID, again.ID, "registering the same wallet twice must return the same user")

	byWallet, err := store.GetUserByWallet(ctx, wallet)
	require.NoError(t, err)
	assert.Equal(t, user.ID, byWallet.ID)

	missing, err := store.GetUserByID(ctx, uuid.NewString())
	require.NoError(t, err)
	assert.Nil(t, missing)

	malformed, err := store.GetUserByID(ctx, "not-a-uuid")
	require.NoError(t, err)
	assert.Nil(t, malformed)
}

func TestStore_ProgressAndInventory(t *testing.T) {
	store := requireStore(t)
	ctx := context.Background()

	user, err := store.UpsertUserByWallet(ctx, newWallet())
	require.NoError(t, err)

	tx, err := store.BeginTx(ctx)
	require.NoError(t, err)
	defer repository.SafeRollback(ctx, tx)

	locked, err := tx.GetUserForUpdate(ctx, user.ID)
	require.NoError(t, err)
	locked.AddXP(1500)
	locked.Scrap += 12.5
	require.NoError(t, tx.UpdateUserProgress(ctx, locked))
	require.NoError(t, tx.AddUserItem(ctx, user.ID, seedCommonItemID, 2))
	require.NoError(t, tx.AddUserItem(ctx, user.ID, seedCommonItemID, 3))
	require.NoError(t, tx.Commit(ctx))

	reloaded, err := store.GetUserByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1500), reloaded.XP)
	assert.Equal(t, 2, reloaded.Level)
	assert.InDelta(t, 12.5, reloaded.Scrap, 0.0001)

	items, err := store.GetUserItems(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 5, items[0].Quantity)
	assert.Equal(t, "Rusty Bolt", items[0].Name)
}

func TestStore_AddUnknownItem(t *testing.T) {
	store := requireStore(t)
	ctx := context.Background()

	user, err := store.UpsertUserByWallet(ctx, newWallet())
	require.NoError(t, err)

	tx, err := store.BeginTx(ctx)
	require.NoError(t, err)
	defer repository.SafeRollback(ctx, tx)

	err = tx.AddUserItem(ctx, user.ID, uuid.NewString(), 1)
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
}

func TestStore_RollbackDiscardsWrites(t *testing.T) {
	store := requireStore(t)
	ctx := context.Background()

	user, err := store.UpsertUserByWallet(ctx, newWallet())
	require.NoError(t, err)

	tx, err := store.BeginTx(ctx)
	require.NoError(t, err)
	_, err = tx.InsertBooster(ctx, user.ID, domain.BoosterTierRare)
	require.NoError(t, err)
	require.NoError(t, tx.Rollback(ctx))

	boosters, err := store.GetBoostersByUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Empty(t, boosters)

	// second rollback is a no-op for SafeRollback
	repository.SafeRollback(ctx, tx)
}

func TestStore_BoosterSelection(t *testing.T) {
	store := requireStore(t)
	ctx := context.Background()

	user, err := store.UpsertUserByWallet(ctx, newWallet())
	require.NoError(t, err)

	tx, err := store.BeginTx(ctx)
	require.NoError(t, err)
	first, err := tx.InsertBooster(ctx, user.ID, domain.BoosterTierCommon)
	require.NoError(t, err)
	require.NoError(t, tx.Commit(ctx))

	time.Sleep(5 * time.Millisecond)
	tx, err = store.BeginTx(ctx)
	require.NoError(t, err)
	second, err := tx.InsertBooster(ctx, user.ID, domain.BoosterTierLegendary)
	require.NoError(t, err)
	require.NoError(t, tx.Commit(ctx))

	tx, err = store.BeginTx(ctx)
	require.NoError(t, err)
	defer repository.SafeRollback(ctx, tx)

	oldest, err := tx.GetUnopenedBoosterForUpdate(ctx, user.ID, "")
	require.NoError(t, err)
	require.NotNil(t, oldest)
	assert.Equal(t, first.ID, oldest.ID)

	specific, err := tx.GetUnopenedBoosterForUpdate(ctx, user.ID, second.ID)
	require.NoError(t, err)
	require.NotNil(t, specific)
	assert.Equal(t, domain.BoosterTierLegendary, specific.Type)

	require.NoError(t, tx.MarkBoosterOpened(ctx, second.ID))
	assert.ErrorIs(t, tx.MarkBoosterOpened(ctx, second.ID), domain.ErrBoosterNotFound)

	gone, err := tx.GetUnopenedBoosterForUpdate(ctx, user.ID, second.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)
}

func TestStore_TokenAndFusionLog(t *testing.T) {
	store := requireStore(t)
	ctx := context.Background()

	user, err := store.UpsertUserByWallet(ctx, newWallet())
	require.NoError(t, err)

	tx, err := store.BeginTx(ctx)
	require.NoError(t, err)
	defer repository.SafeRollback(ctx, tx)

	token := &domain.Token{
		Name:     "Scrapper",
		ImageURL: "https://img.example/scrapper.png",
		OwnerID:  user.ID,
		Attributes: domain.TokenAttributes{
			Traits: map[string]any{"color": "red", "power": float64(7)},
		},
	}
	require.NoError(t, tx.InsertToken(ctx, token))
	require.NotEmpty(t, token.ID)

	require.NoError(t, tx.UpdateTokenAttributes(ctx, token.ID, token.Attributes.WithSticker(seedStickerItemID)))

	entry := &domain.FusionLog{
		Kind:      domain.FusionKindSticker,
		UserID:    user.ID,
		TokenID:   token.ID,
		StickerID: seedStickerItemID,
		Date:      time.Now().UTC(),
	}
	require.NoError(t, tx.InsertFusionLog(ctx, entry))
	assert.NotEmpty(t, entry.ID)
	require.NoError(t, tx.Commit(ctx))

	stored, err := store.GetTokenByID(ctx, token.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, []string{seedStickerItemID}, stored.Attributes.Stickers)
	assert.Equal(t, "red", stored.Attributes.Traits["color"])
	assert.Equal(t, float64(7), stored.Attributes.Traits["power"])
}

func TestStore_QuestCompletionUnique(t *testing.T) {
	store := requireStore(t)
	ctx := context.Background()

	user, err := store.UpsertUserByWallet(ctx, newWallet())
	require.NoError(t, err)

	quest, err := store.GetQuestByID(ctx, seedQuestID)
	require.NoError(t, err)
	require.NotNil(t, quest)
	assert.Equal(t, int64(100), quest.Reward.XP)

	tx, err := store.BeginTx(ctx)
	require.NoError(t, err)
	require.NoError(t, tx.InsertUserQuest(ctx, &domain.UserQuest{UserID: user.ID, QuestID: seedQuestID, CompletedAt: time.Now()}))
	require.NoError(t, tx.Commit(ctx))

	tx, err = store.BeginTx(ctx)
	require.NoError(t, err)
	defer repository.SafeRollback(ctx, tx)
	err = tx.InsertUserQuest(ctx, &domain.UserQuest{UserID: user.ID, QuestID: seedQuestID, CompletedAt: time.Now()})
	assert.ErrorIs(t, err, domain.ErrQuestAlreadyCompleted)

	completed, err := store.GetCompletedQuests(ctx, user.ID)
	require.NoError(t, err)
	assert.Len(t, completed, 1)
}

func TestStore_StakingOrder(t *testing.T) {
	store := requireStore(t)
	ctx := context.Background()

	user, err := store.UpsertUserByWallet(ctx, newWallet())
	require.NoError(t, err)

	base := time.Now().UTC().Add(-48 * time.Hour)
	tx, err := store.BeginTx(ctx)
	require.NoError(t, err)
	require.NoError(t, tx.InsertStaking(ctx, &domain.Staking{UserID: user.ID, Amount: 10.25, StartDate: base}))
	require.NoError(t, tx.InsertStaking(ctx, &domain.Staking{UserID: user.ID, Amount: 3, StartDate: base.Add(time.Hour)}))
	require.NoError(t, tx.Commit(ctx))

	stakes, err := store.GetStakingsByUser(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, stakes, 2)
	assert.InDelta(t, 3.0, stakes[0].Amount, 0.0001, "newest first")
	assert.InDelta(t, 10.25, stakes[1].Amount, 0.0001)
}

func TestStore_ConcurrentScrapUpdatesSerialize(t *testing.T) {
	store := requireStore(t)
	ctx := context.Background()

	user, err := store.UpsertUserByWallet(ctx, newWallet())
	require.NoError(t, err)

	const workers = 10
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tx, err := store.BeginTx(ctx)
			if err != nil {
				t.Errorf("begin: %v", err)
				return
			}
			defer repository.SafeRollback(ctx, tx)
			u, err := tx.GetUserForUpdate(ctx, user.ID)
			if err != nil || u == nil {
				t.Errorf("lock: %v", err)
				return
			}
			u.Scrap++
			if err := tx.UpdateUserProgress(ctx, u); err != nil {
				t.Errorf("update: %v", err)
				return
			}
			if err := tx.Commit(ctx); err != nil {
				t.Errorf("commit: %v", err)
			}
		}()
	}
	wg.Wait()

	final, err := store.GetUserByID(ctx, user.ID)
	require.NoError(t, err)
	assert.InDelta(t, float64(workers), final.Scrap, 0.0001, "row locks must prevent lost updates")
}

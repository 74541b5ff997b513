package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/osse101/scrapworld/internal/domain"
)

// ---- reads ----

// GetUserByID returns nil when the user does not exist
func (s *Store) GetUserByID(_ context.Context, userID string) (*domain.User, error) {
	var out *domain.User
	s.read(func(st *state) {
		if u, ok := st.users[userID]; ok {
			out = &u
		}
	})
	return out, nil
}

// GetUserByWallet returns nil when no user owns the wallet
func (s *Store) GetUserByWallet(_ context.Context, wallet string) (*domain.User, error) {
	var out *domain.User
	s.read(func(st *state) {
		if id, ok := st.wallets[wallet]; ok {
			u := st.users[id]
			out = &u
		}
	})
	return out, nil
}

// UpsertUserByWallet creates the user on first sight of a wallet
func (s *Store) UpsertUserByWallet(ctx context.Context, wallet string) (*domain.User, error) {
	var out domain.User
	err := s.write(ctx, func(st *state) error {
		if id, ok := st.wallets[wallet]; ok {
			out = st.users[id]
			return nil
		}
		now := s.now()
		out = domain.User{
			ID:            uuid.NewString(),
			WalletAddress: wallet,
			Level:         1,
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		st.users[out.ID] = out
		st.wallets[wallet] = out.ID
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// GetUserItems lists the user's inventory ordered by item name
func (s *Store) GetUserItems(_ context.Context, userID string) ([]domain.InventoryItem, error) {
	out := []domain.InventoryItem{}
	s.read(func(st *state) {
		for k, qty := range st.userItems {
			if k.a != userID {
				continue
			}
			out = append(out, domain.InventoryItem{Item: st.items[k.b], Quantity: qty})
		}
	})
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// GetAllItems returns the catalog ordered by name
func (s *Store) GetAllItems(_ context.Context) ([]domain.Item, error) {
	var out []domain.Item
	s.read(func(st *state) {
		out = make([]domain.Item, 0, len(st.items))
		for _, it := range st.items {
			out = append(out, it)
		}
	})
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// GetItemByID returns nil if the item does not exist
func (s *Store) GetItemByID(_ context.Context, itemID string) (*domain.Item, error) {
	var out *domain.Item
	s.read(func(st *state) {
		if it, ok := st.items[itemID]; ok {
			out = &it
		}
	})
	return out, nil
}

// GetBoostersByUser lists the user's boosters, newest first
func (s *Store) GetBoostersByUser(_ context.Context, userID string) ([]domain.Booster, error) {
	out := []domain.Booster{}
	s.read(func(st *state) {
		for i := len(st.boosters) - 1; i >= 0; i-- {
			if st.boosters[i].UserID == userID {
				out = append(out, st.boosters[i])
			}
		}
	})
	return out, nil
}

// GetQuests returns the quest catalog ordered by name
func (s *Store) GetQuests(_ context.Context) ([]domain.Quest, error) {
	var out []domain.Quest
	s.read(func(st *state) {
		out = make([]domain.Quest, 0, len(st.quests))
		for _, q := range st.quests {
			out = append(out, q)
		}
	})
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// GetQuestByID returns nil if the quest does not exist
func (s *Store) GetQuestByID(_ context.Context, questID string) (*domain.Quest, error) {
	var out *domain.Quest
	s.read(func(st *state) {
		if q, ok := st.quests[questID]; ok {
			out = &q
		}
	})
	return out, nil
}

// GetCompletedQuests lists the user's completion records, newest first
func (s *Store) GetCompletedQuests(_ context.Context, userID string) ([]domain.UserQuest, error) {
	out := []domain.UserQuest{}
	s.read(func(st *state) {
		for k, uq := range st.userQuests {
			if k.a == userID {
				out = append(out, uq)
			}
		}
	})
	sort.Slice(out, func(i, j int) bool { return out[i].CompletedAt.After(out[j].CompletedAt) })
	return out, nil
}

// GetTokenByID returns nil if the token does not exist
func (s *Store) GetTokenByID(_ context.Context, tokenID string) (*domain.Token, error) {
	var out *domain.Token
	s.read(func(st *state) {
		if t, ok := st.tokens[tokenID]; ok {
			t.Attributes = t.Attributes.Clone()
			out = &t
		}
	})
	return out, nil
}

// GetStakingsByUser returns the user's stakes, newest first
func (s *Store) GetStakingsByUser(_ context.Context, userID string) ([]domain.Staking, error) {
	out := []domain.Staking{}
	s.read(func(st *state) {
		for _, stake := range st.stakings {
			if stake.UserID == userID {
				out = append(out, stake)
			}
		}
	})
	sort.SliceStable(out, func(i, j int) bool { return out[i].StartDate.After(out[j].StartDate) })
	return out, nil
}

// ---- transactional operations ----

// GetUserForUpdate returns the user inside the transaction
func (t *LedgerTx) GetUserForUpdate(_ context.Context, userID string) (*domain.User, error) {
	if err := t.check(); err != nil {
		return nil, err
	}
	u, ok := t.st.users[userID]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

// UpdateUserProgress writes xp, level and scrap
func (t *LedgerTx) UpdateUserProgress(_ context.Context, user *domain.User) error {
	if err := t.check(); err != nil {
		return err
	}
	u, ok := t.st.users[user.ID]
	if !ok {
		return domain.ErrUserNotFound
	}
	if user.XP < 0 || user.Scrap < 0 {
		return fmt.Errorf("%w: balance would go negative", domain.ErrInsufficientFunds)
	}
	u.XP = user.XP
	u.Level = user.Level
	u.Scrap = user.Scrap
	u.UpdatedAt = t.store.now()
	t.st.users[user.ID] = u
	return nil
}

// GetUserItemForUpdate returns nil when the user never held the item
func (t *LedgerTx) GetUserItemForUpdate(_ context.Context, userID, itemID string) (*domain.UserItem, error) {
	if err := t.check(); err != nil {
		return nil, err
	}
	qty, ok := t.st.userItems[pairKey{userID, itemID}]
	if !ok {
		return nil, nil
	}
	return &domain.UserItem{UserID: userID, ItemID: itemID, Quantity: qty}, nil
}

// AddUserItem inserts the row at quantity or increments an existing one
func (t *LedgerTx) AddUserItem(_ context.Context, userID, itemID string, quantity int) error {
	if err := t.check(); err != nil {
		return err
	}
	if _, ok := t.st.items[itemID]; !ok {
		return fmt.Errorf("%w: %s", domain.ErrItemNotFound, itemID)
	}
	if _, ok := t.st.users[userID]; !ok {
		return domain.ErrUserNotFound
	}
	t.st.userItems[pairKey{userID, itemID}] += quantity
	return nil
}

// SetUserItemQuantity overwrites the quantity of an existing row
func (t *LedgerTx) SetUserItemQuantity(_ context.Context, userID, itemID string, quantity int) error {
	if err := t.check(); err != nil {
		return err
	}
	key := pairKey{userID, itemID}
	if _, ok := t.st.userItems[key]; !ok {
		return nil
	}
	if quantity < 0 {
		return fmt.Errorf("%w: quantity cannot be negative", domain.ErrInsufficientQuantity)
	}
	t.st.userItems[key] = quantity
	return nil
}

// GetUnopenedBoosterForUpdate picks boosterID when set, otherwise the oldest unopened booster
func (t *LedgerTx) GetUnopenedBoosterForUpdate(_ context.Context, userID, boosterID string) (*domain.Booster, error) {
	if err := t.check(); err != nil {
		return nil, err
	}
	for _, b := range t.st.boosters {
		if b.UserID != userID || b.Opened {
			continue
		}
		if boosterID != "" && b.ID != boosterID {
			continue
		}
		found := b
		return &found, nil
	}
	return nil, nil
}

// MarkBoosterOpened flips the opened flag
func (t *LedgerTx) MarkBoosterOpened(_ context.Context, boosterID string) error {
	if err := t.check(); err != nil {
		return err
	}
	for i := range t.st.boosters {
		if t.st.boosters[i].ID == boosterID && !t.st.boosters[i].Opened {
			t.st.boosters[i].Opened = true
			return nil
		}
	}
	return domain.ErrBoosterNotFound
}

// InsertBooster grants an unopened booster of the given tier
func (t *LedgerTx) InsertBooster(_ context.Context, userID, tier string) (*domain.Booster, error) {
	if err := t.check(); err != nil {
		return nil, err
	}
	if _, ok := t.st.users[userID]; !ok {
		return nil, domain.ErrUserNotFound
	}
	b := domain.Booster{
		ID:        uuid.NewString(),
		UserID:    userID,
		Type:      tier,
		CreatedAt: t.store.now(),
	}
	t.st.boosters = append(t.st.boosters, b)
	return &b, nil
}

// GetTokenForUpdate returns the token inside the transaction
func (t *LedgerTx) GetTokenForUpdate(_ context.Context, tokenID string) (*domain.Token, error) {
	if err := t.check(); err != nil {
		return nil, err
	}
	tok, ok := t.st.tokens[tokenID]
	if !ok {
		return nil, nil
	}
	tok.Attributes = tok.Attributes.Clone()
	return &tok, nil
}

// UpdateTokenAttributes replaces the attribute document
func (t *LedgerTx) UpdateTokenAttributes(_ context.Context, tokenID string, attrs domain.TokenAttributes) error {
	if err := t.check(); err != nil {
		return err
	}
	tok, ok := t.st.tokens[tokenID]
	if !ok {
		return domain.ErrTokenNotFound
	}
	tok.Attributes = attrs.Clone()
	t.st.tokens[tokenID] = tok
	return nil
}

// InsertToken stores a new token and fills in its id and creation time
func (t *LedgerTx) InsertToken(_ context.Context, token *domain.Token) error {
	if err := t.check(); err != nil {
		return err
	}
	if _, ok := t.st.users[token.OwnerID]; !ok {
		return domain.ErrUserNotFound
	}
	token.ID = uuid.NewString()
	token.CreatedAt = t.store.now()
	stored := *token
	stored.Attributes = token.Attributes.Clone()
	t.st.tokens[token.ID] = stored
	return nil
}

// InsertFusionLog appends an audit record
func (t *LedgerTx) InsertFusionLog(_ context.Context, entry *domain.FusionLog) error {
	if err := t.check(); err != nil {
		return err
	}
	entry.ID = uuid.NewString()
	t.st.fusionLogs = append(t.st.fusionLogs, *entry)
	return nil
}

// GetUserQuest returns nil when the user has not completed the quest
func (t *LedgerTx) GetUserQuest(_ context.Context, userID, questID string) (*domain.UserQuest, error) {
	if err := t.check(); err != nil {
		return nil, err
	}
	uq, ok := t.st.userQuests[pairKey{userID, questID}]
	if !ok {
		return nil, nil
	}
	return &uq, nil
}

// InsertUserQuest records a completion; a second one for the same pair is rejected
func (t *LedgerTx) InsertUserQuest(_ context.Context, uq *domain.UserQuest) error {
	if err := t.check(); err != nil {
		return err
	}
	key := pairKey{uq.UserID, uq.QuestID}
	if _, exists := t.st.userQuests[key]; exists {
		return domain.ErrQuestAlreadyCompleted
	}
	if _, ok := t.st.quests[uq.QuestID]; !ok {
		return domain.ErrQuestNotFound
	}
	t.st.userQuests[key] = *uq
	return nil
}

// InsertStaking records a stake and fills in its id
func (t *LedgerTx) InsertStaking(_ context.Context, s *domain.Staking) error {
	if err := t.check(); err != nil {
		return err
	}
	if s.Amount <= 0 {
		return fmt.Errorf("%w: stake amount must be positive", domain.ErrInvalidInput)
	}
	s.ID = uuid.NewString()
	t.st.stakings = append(t.st.stakings, *s)
	return nil
}

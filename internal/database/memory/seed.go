package memory

import (
	"context"

	"github.com/google/uuid"

	"github.com/osse101/scrapworld/internal/domain"
)

// DefaultItems mirrors the catalog seeded by the SQL migrations
var DefaultItems = []domain.Item{
	{ID: "6f1b7c1e-0001-4a8e-9b1a-000000000001", Name: "Rusty Bolt", Type: domain.ItemTypeCommon, ImageURL: "https://assets.scrapworld.gg/items/rusty-bolt.png"},
	{ID: "6f1b7c1e-0001-4a8e-9b1a-000000000002", Name: "Copper Coil", Type: domain.ItemTypeCommon, ImageURL: "https://assets.scrapworld.gg/items/copper-coil.png"},
	{ID: "6f1b7c1e-0001-4a8e-9b1a-000000000003", Name: "Cracked Lens", Type: domain.ItemTypeCommon, ImageURL: "https://assets.scrapworld.gg/items/cracked-lens.png"},
	{ID: "6f1b7c1e-0001-4a8e-9b1a-000000000004", Name: "Flame Decal", Type: domain.ItemTypeSticker, ImageURL: "https://assets.scrapworld.gg/items/flame-decal.png"},
	{ID: "6f1b7c1e-0001-4a8e-9b1a-000000000005", Name: "Skull Decal", Type: domain.ItemTypeSticker, ImageURL: "https://assets.scrapworld.gg/items/skull-decal.png"},
	{ID: "6f1b7c1e-0001-4a8e-9b1a-000000000006", Name: "Plasma Core", Type: domain.ItemTypeRare, ImageURL: "https://assets.scrapworld.gg/items/plasma-core.png"},
	{ID: "6f1b7c1e-0001-4a8e-9b1a-000000000007", Name: "Quantum Gear", Type: domain.ItemTypeRare, ImageURL: "https://assets.scrapworld.gg/items/quantum-gear.png"},
}

// DefaultQuests mirrors the quests seeded by the SQL migrations
var DefaultQuests = []domain.Quest{
	{
		ID:          "9c2d4e10-0002-4b7f-8c2e-000000000001",
		Name:        "First Salvage",
		Description: "Open your first booster",
		Reward: domain.RewardBundle{
			XP: 100, Scrap: 10,
			Items: []domain.RewardItem{{ID: "6f1b7c1e-0001-4a8e-9b1a-000000000001", Quantity: 2}},
		},
	},
	{
		ID:          "9c2d4e10-0002-4b7f-8c2e-000000000002",
		Name:        "Decorator",
		Description: "Apply a sticker to a token",
		Reward: domain.RewardBundle{
			XP: 250, Scrap: 25,
			Items: []domain.RewardItem{{ID: "6f1b7c1e-0001-4a8e-9b1a-000000000004", Quantity: 1}},
		},
	},
	{
		ID:          "9c2d4e10-0002-4b7f-8c2e-000000000003",
		Name:        "Scrap Baron",
		Description: "Stake scrap for the first time",
		Reward: domain.RewardBundle{
			XP:       500,
			Items:    []domain.RewardItem{},
			Boosters: []domain.RewardBooster{{Type: domain.BoosterTierRare}},
		},
	},
}

// NewSeededStore returns a store holding the default catalog
func NewSeededStore() *Store {
	s := NewStore()
	for _, it := range DefaultItems {
		s.SeedItem(it)
	}
	for _, q := range DefaultQuests {
		s.SeedQuest(q)
	}
	return s
}

// The Seed helpers write committed state directly and assign ids when missing.

// SeedItem adds a catalog item
func (s *Store) SeedItem(item domain.Item) domain.Item {
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	_ = s.write(context.Background(), func(st *state) error {
		items := make(map[string]domain.Item, len(st.items)+1)
		for k, v := range st.items {
			items[k] = v
		}
		items[item.ID] = item
		st.items = items
		return nil
	})
	return item
}

// SeedQuest adds a quest
func (s *Store) SeedQuest(q domain.Quest) domain.Quest {
	if q.ID == "" {
		q.ID = uuid.NewString()
	}
	_ = s.write(context.Background(), func(st *state) error {
		quests := make(map[string]domain.Quest, len(st.quests)+1)
		for k, v := range st.quests {
			quests[k] = v
		}
		quests[q.ID] = q
		st.quests = quests
		return nil
	})
	return q
}

// SeedUser adds a user with the given balances; level is derived from xp
func (s *Store) SeedUser(u domain.User) domain.User {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	if u.WalletAddress == "" {
		u.WalletAddress = "0x" + u.ID
	}
	if lvl := domain.LevelForXP(u.XP); u.Level < lvl {
		u.Level = lvl
	}
	now := s.now()
	u.CreatedAt, u.UpdatedAt = now, now
	_ = s.write(context.Background(), func(st *state) error {
		st.users[u.ID] = u
		st.wallets[u.WalletAddress] = u.ID
		return nil
	})
	return u
}

// SeedUserItem sets the quantity a user holds of an item
func (s *Store) SeedUserItem(userID, itemID string, quantity int) {
	_ = s.write(context.Background(), func(st *state) error {
		st.userItems[pairKey{userID, itemID}] = quantity
		return nil
	})
}

// SeedBooster grants an unopened booster
func (s *Store) SeedBooster(userID, tier string) domain.Booster {
	b := domain.Booster{ID: uuid.NewString(), UserID: userID, Type: tier, CreatedAt: s.now()}
	_ = s.write(context.Background(), func(st *state) error {
		st.boosters = append(st.boosters, b)
		return nil
	})
	return b
}

// SeedToken adds a token
func (s *Store) SeedToken(t domain.Token) domain.Token {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	t.CreatedAt = s.now()
	_ = s.write(context.Background(), func(st *state) error {
		stored := t
		stored.Attributes = t.Attributes.Clone()
		st.tokens[t.ID] = stored
		return nil
	})
	return t
}

// UserItemQuantity reports the committed quantity and whether the row exists
func (s *Store) UserItemQuantity(userID, itemID string) (int, bool) {
	var qty int
	var ok bool
	s.read(func(st *state) {
		qty, ok = st.userItems[pairKey{userID, itemID}]
	})
	return qty, ok
}

// FusionLogs returns the committed fusion audit trail
func (s *Store) FusionLogs() []domain.FusionLog {
	var out []domain.FusionLog
	s.read(func(st *state) {
		out = append(out, st.fusionLogs...)
	})
	return out
}

// TokenCount returns the number of committed tokens
func (s *Store) TokenCount() int {
	var n int
	s.read(func(st *state) { n = len(st.tokens) })
	return n
}

package domain

import "time"

// Booster tiers with a dedicated reward policy. Any other tier falls back to the basic policy.
const (
	BoosterTierCommon    = "common"
	BoosterTierRare      = "rare"
	BoosterTierLegendary = "legendary"
)

// Booster is a loot box owned by a user. Once opened it never yields rewards again.
type Booster struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Type      string    `json:"type"`
	Opened    bool      `json:"opened"`
	CreatedAt time.Time `json:"created_at"`
}

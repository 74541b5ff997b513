package domain

// RewardItem is one reward line granting a quantity of a catalog item
type RewardItem struct {
	ID       string `json:"id"`
	Quantity int    `json:"quantity"`
}

// RewardBooster grants one unopened booster of the given tier
type RewardBooster struct {
	Type string `json:"type"`
}

// RewardBundle is merged into a user's state by the reward applier.
// Quests store it as their reward; boosters generate it when opened.
type RewardBundle struct {
	XP       int64           `json:"xp"`
	Scrap    float64         `json:"scrap"`
	Items    []RewardItem    `json:"items"`
	Boosters []RewardBooster `json:"boosters,omitempty"`
}

package domain

import "time"

// XPPerLevel is the amount of experience needed to gain one level
const XPPerLevel = 1000

// User represents a player and the balances owned by them
type User struct {
	ID            string    `json:"id"`
	WalletAddress string    `json:"wallet_address"`
	XP            int64     `json:"xp"`
	Level         int       `json:"level"`
	Scrap         float64   `json:"scrap"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// LevelForXP derives the level from total experience: floor(xp/1000) + 1
func LevelForXP(xp int64) int {
	if xp < 0 {
		return 1
	}
	return int(xp/XPPerLevel) + 1
}

// AddXP adds experience and recomputes the level. Level never decreases.
func (u *User) AddXP(amount int64) {
	u.XP += amount
	if level := LevelForXP(u.XP); level > u.Level {
		u.Level = level
	}
}

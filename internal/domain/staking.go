package domain

import "time"

// Staking is a scrap position locked by a user. Records are never mutated.
type Staking struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Amount    float64   `json:"amount"`
	StartDate time.Time `json:"start_date"`
}

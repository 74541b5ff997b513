package repository

// Store is everything the application needs from a backing store
type Store interface {
	User
	Item
	Booster
	Token
	Fusion
	Quest
	Staking
}

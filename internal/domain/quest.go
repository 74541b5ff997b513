package domain

import "time"

// Quest status values reported on the user quest board
const (
	QuestStatusCompleted  = "completed"
	QuestStatusNotStarted = "not_started"
)

// Quest is an immutable catalog entry with a reward bundle
type Quest struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Reward      RewardBundle `json:"reward"`
}

// UserQuest records that a user completed a quest. Completion is permanent.
type UserQuest struct {
	UserID      string    `json:"user_id"`
	QuestID     string    `json:"quest_id"`
	CompletedAt time.Time `json:"completed_at"`
}

// QuestWithStatus is a quest annotated with the user's completion state
type QuestWithStatus struct {
	Quest
	Status      string     `json:"status"`
	CompletedAt *time.Time `json:"completed_at"`
}

package repository

import (
	"context"

	"github.com/osse101/scrapworld/internal/domain"
)

// Quest defines the interface for quest persistence
type Quest interface {
	Ledger
	UserReader
	GetQuests(ctx context.Context) ([]domain.Quest, error)
	GetQuestByID(ctx context.Context, questID string) (*domain.Quest, error)
	GetCompletedQuests(ctx context.Context, userID string) ([]domain.UserQuest, error)
}

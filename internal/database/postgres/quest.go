package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/osse101/scrapworld/internal/database/generated"
	"github.com/osse101/scrapworld/internal/domain"
)

func mapQuest(row generated.Quest) (domain.Quest, error) {
	q := domain.Quest{
		ID:          row.QuestID.String(),
		Name:        row.QuestName,
		Description: row.Description,
	}
	if len(row.Reward) > 0 {
		if err := json.Unmarshal(row.Reward, &q.Reward); err != nil {
			return q, fmt.Errorf("failed to decode reward for quest %s: %w", q.ID, err)
		}
	}
	return q, nil
}

func mapUserQuest(row generated.UserQuest) domain.UserQuest {
	return domain.UserQuest{
		UserID:      row.UserID.String(),
		QuestID:     row.QuestID.String(),
		CompletedAt: row.CompletedAt.Time,
	}
}

// GetQuests returns the quest catalog
func (s *Store) GetQuests(ctx context.Context) ([]domain.Quest, error) {
	rows, err := s.q.GetQuests(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get quests: %w", err)
	}
	quests := make([]domain.Quest, 0, len(rows))
	for _, row := range rows {
		q, err := mapQuest(row)
		if err != nil {
			return nil, err
		}
		quests = append(quests, q)
	}
	return quests, nil
}

// GetQuestByID returns nil if the quest does not exist
func (s *Store) GetQuestByID(ctx context.Context, questID string) (*domain.Quest, error) {
	id, ok := parseID(questID)
	if !ok {
		return nil, nil
	}
	row, err := s.q.GetQuestByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get quest: %w", err)
	}
	q, err := mapQuest(row)
	if err != nil {
		return nil, err
	}
	return &q, nil
}

// GetCompletedQuests lists the user's completion records
func (s *Store) GetCompletedQuests(ctx context.Context, userID string) ([]domain.UserQuest, error) {
	id, ok := parseID(userID)
	if !ok {
		return []domain.UserQuest{}, nil
	}
	rows, err := s.q.GetCompletedQuestsByUser(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get completed quests: %w", err)
	}
	out := make([]domain.UserQuest, 0, len(rows))
	for _, row := range rows {
		out = append(out, mapUserQuest(row))
	}
	return out, nil
}

// GetUserQuest returns nil when the user has not completed the quest
func (t *LedgerTx) GetUserQuest(ctx context.Context, userID, questID string) (*domain.UserQuest, error) {
	uid, ok := parseID(userID)
	if !ok {
		return nil, nil
	}
	qid, ok := parseID(questID)
	if !ok {
		return nil, nil
	}
	row, err := t.tx.q.GetUserQuest(ctx, generated.GetUserQuestParams{UserID: uid, QuestID: qid})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user quest: %w", err)
	}
	uq := mapUserQuest(row)
	return &uq, nil
}

// InsertUserQuest records a completion; the primary key rejects a second one
func (t *LedgerTx) InsertUserQuest(ctx context.Context, uq *domain.UserQuest) error {
	uid, err := mustParseID("user", uq.UserID)
	if err != nil {
		return err
	}
	qid, err := mustParseID("quest", uq.QuestID)
	if err != nil {
		return err
	}
	err = t.tx.q.InsertUserQuest(ctx, generated.InsertUserQuestParams{
		UserID:      uid,
		QuestID:     qid,
		CompletedAt: timestamptz(uq.CompletedAt),
	})
	if err != nil {
		if isPgError(err, pgUniqueViolation) {
			return domain.ErrQuestAlreadyCompleted
		}
		return fmt.Errorf("failed to insert user quest: %w", err)
	}
	return nil
}

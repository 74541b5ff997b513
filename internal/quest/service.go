package quest

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/scrapworld/internal/domain"
	"github.com/osse101/scrapworld/internal/logger"
	"github.com/osse101/scrapworld/internal/metrics"
	"github.com/osse101/scrapworld/internal/repository"
	"github.com/osse101/scrapworld/internal/reward"
)

// Board is the per-user quest overview
type Board struct {
	UserID         string                   `json:"user_id"`
	Completed      []domain.QuestWithStatus `json:"completed"`
	Available      []domain.QuestWithStatus `json:"available"`
	TotalQuests    int                      `json:"total_quests"`
	CompletedCount int                      `json:"completed_count"`
}

// CompletionResult is returned after a quest has been completed
type CompletionResult struct {
	Message string              `json:"message"`
	User    *domain.User        `json:"user"`
	Rewards domain.RewardBundle `json:"rewards"`
}

// Service defines the quest operations
type Service interface {
	ListQuests(ctx context.Context) ([]domain.Quest, error)
	GetUserQuests(ctx context.Context, userID string) (*Board, error)
	CompleteQuest(ctx context.Context, userID, questID string) (*CompletionResult, error)
}

type service struct {
	repo repository.Quest
	now  func() time.Time
}

// NewService creates a new quest service
func NewService(repo repository.Quest) Service {
	return &service{
		repo: repo,
		now:  func() time.Time { return time.Now().UTC() },
	}
}

func (s *service) ListQuests(ctx context.Context) ([]domain.Quest, error) {
	quests, err := s.repo.GetQuests(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list quests: %w", err)
	}
	if quests == nil {
		quests = []domain.Quest{}
	}
	return quests, nil
}

// GetUserQuests splits the quest catalog into completed and available quests for the user
func (s *service) GetUserQuests(ctx context.Context, userID string) (*Board, error) {
	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}

	quests, err := s.ListQuests(ctx)
	if err != nil {
		return nil, err
	}
	done, err := s.repo.GetCompletedQuests(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get completed quests: %w", err)
	}

	completedAt := make(map[string]time.Time, len(done))
	for _, uq := range done {
		completedAt[uq.QuestID] = uq.CompletedAt
	}

	board := &Board{
		UserID:      userID,
		Completed:   []domain.QuestWithStatus{},
		Available:   []domain.QuestWithStatus{},
		TotalQuests: len(quests),
	}
	for _, q := range quests {
		if at, ok := completedAt[q.ID]; ok {
			at := at
			board.Completed = append(board.Completed, domain.QuestWithStatus{
				Quest:       q,
				Status:      domain.QuestStatusCompleted,
				CompletedAt: &at,
			})
			continue
		}
		board.Available = append(board.Available, domain.QuestWithStatus{
			Quest:  q,
			Status: domain.QuestStatusNotStarted,
		})
	}
	board.CompletedCount = len(board.Completed)

	return board, nil
}

// CompleteQuest records the completion and grants the quest reward in one transaction.
// A quest can be completed once per user.
func (s *service) CompleteQuest(ctx context.Context, userID, questID string) (*CompletionResult, error) {
	log := logger.FromContext(ctx)
	log.Info("CompleteQuest called", "user_id", userID, "quest_id", questID)

	q, err := s.repo.GetQuestByID(ctx, questID)
	if err != nil {
		return nil, fmt.Errorf("failed to get quest: %w", err)
	}
	if q == nil {
		return nil, domain.ErrQuestNotFound
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	// Locking the user first serializes concurrent completions by the same user
	user, err := tx.GetUserForUpdate(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to lock user: %w", err)
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}

	prior, err := tx.GetUserQuest(ctx, userID, questID)
	if err != nil {
		return nil, fmt.Errorf("failed to check quest completion: %w", err)
	}
	if prior != nil {
		return nil, domain.ErrQuestAlreadyCompleted
	}

	if err := tx.InsertUserQuest(ctx, &domain.UserQuest{
		UserID:      userID,
		QuestID:     questID,
		CompletedAt: s.now(),
	}); err != nil {
		return nil, fmt.Errorf("failed to record quest completion: %w", err)
	}

	updated, err := reward.Apply(ctx, tx, userID, q.Reward)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	metrics.QuestsCompleted.Inc()
	metrics.RecordRewards(metrics.SourceQuest, q.Reward)
	log.Info("Quest completed", "user_id", userID, "quest_id", questID, "level", updated.Level)

	return &CompletionResult{
		Message: fmt.Sprintf("Quest %q completed successfully", q.Name),
		User:    updated,
		Rewards: q.Reward,
	}, nil
}

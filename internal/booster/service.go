package booster

import (
	"context"
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/osse101/scrapworld/internal/domain"
	"github.com/osse101/scrapworld/internal/logger"
	"github.com/osse101/scrapworld/internal/metrics"
	"github.com/osse101/scrapworld/internal/repository"
	"github.com/osse101/scrapworld/internal/reward"
)

const tierOther = "other"

// ItemCatalog lists the reward candidates
type ItemCatalog interface {
	All(ctx context.Context) ([]domain.Item, error)
}

// OpenResult is returned after a booster has been opened
type OpenResult struct {
	Message   string              `json:"message"`
	BoosterID string              `json:"booster_id"`
	Rewards   domain.RewardBundle `json:"rewards"`
}

// Service defines the booster operations
type Service interface {
	OpenBooster(ctx context.Context, userID, boosterID string) (*OpenResult, error)
	ListBoosters(ctx context.Context, userID string) ([]domain.Booster, error)
}

type service struct {
	repo    repository.Booster
	catalog ItemCatalog
	rng     Rand
}

// NewService creates a new booster service
func NewService(repo repository.Booster, catalog ItemCatalog) Service {
	return &service{
		repo:    repo,
		catalog: catalog,
	}
}

// OpenBooster consumes one unopened booster and applies its rewards in the same transaction.
// With an empty boosterID the user's oldest unopened booster is used.
func (s *service) OpenBooster(ctx context.Context, userID, boosterID string) (*OpenResult, error) {
	log := logger.FromContext(ctx)
	log.Info("OpenBooster called", "user_id", userID, "booster_id", boosterID)

	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}

	items, err := s.catalog.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load item catalog: %w", err)
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	b, err := tx.GetUnopenedBoosterForUpdate(ctx, userID, boosterID)
	if err != nil {
		return nil, fmt.Errorf("failed to get booster: %w", err)
	}
	if b == nil {
		return nil, domain.ErrBoosterNotFound
	}

	if err := tx.MarkBoosterOpened(ctx, b.ID); err != nil {
		return nil, fmt.Errorf("failed to mark booster opened: %w", err)
	}

	bundle := PolicyFor(b.Type).Generate(items, s.rng)
	if _, err := reward.Apply(ctx, tx, userID, bundle); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	tier := b.Type
	if !IsKnownTier(tier) {
		tier = tierOther
	}
	metrics.BoostersOpened.WithLabelValues(tier).Inc()
	metrics.RecordRewards(metrics.SourceBooster, bundle)

	log.Info("Booster opened",
		"user_id", userID,
		"booster_id", b.ID,
		"tier", b.Type,
		"xp", bundle.XP,
		"scrap", bundle.Scrap,
		"items", len(bundle.Items))

	return &OpenResult{
		Message:   fmt.Sprintf("%s booster opened successfully", cases.Title(language.English).String(b.Type)),
		BoosterID: b.ID,
		Rewards:   bundle,
	}, nil
}

// ListBoosters returns every booster granted to the user
func (s *service) ListBoosters(ctx context.Context, userID string) ([]domain.Booster, error) {
	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}

	boosters, err := s.repo.GetBoostersByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list boosters: %w", err)
	}
	if boosters == nil {
		boosters = []domain.Booster{}
	}
	return boosters, nil
}

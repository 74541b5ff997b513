package staking

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/scrapworld/internal/domain"
	"github.com/osse101/scrapworld/internal/logger"
	"github.com/osse101/scrapworld/internal/metrics"
	"github.com/osse101/scrapworld/internal/repository"
	"github.com/osse101/scrapworld/internal/utils"
)

// DailyYieldRate is the fraction of a stake earned per day held
const DailyYieldRate = 0.005

// AmountPrecision is the number of decimal places a stake amount may carry
const AmountPrecision = 4

const displayPrecision = 2

// StakeResult is returned after a successful deposit
type StakeResult struct {
	Message    string          `json:"message"`
	Staking    *domain.Staking `json:"staking"`
	NewBalance float64         `json:"new_balance"`
}

// StakeView is a stake with its projected yield
type StakeView struct {
	domain.Staking
	DurationDays    float64 `json:"duration_days"`
	PotentialReward float64 `json:"potential_reward"`
}

// StakeSummary lists a user's stakes, newest first
type StakeSummary struct {
	UserID      string      `json:"user_id"`
	Staking     []StakeView `json:"staking"`
	TotalStaked float64     `json:"total_staked"`
}

// Service defines the staking operations
type Service interface {
	Stake(ctx context.Context, userID string, amount float64) (*StakeResult, error)
	ListStakes(ctx context.Context, userID string) (*StakeSummary, error)
}

type service struct {
	repo repository.Staking
	now  func() time.Time
}

// NewService creates a new staking service
func NewService(repo repository.Staking) Service {
	return &service{
		repo: repo,
		now:  func() time.Time { return time.Now().UTC() },
	}
}

// ProjectedYield returns amount * rate * days held. Stakes dated in the future yield nothing.
func ProjectedYield(amount float64, start, now time.Time) (days, yield float64) {
	days = now.Sub(start).Hours() / 24
	if days < 0 {
		days = 0
	}
	return days, amount * DailyYieldRate * days
}

// Stake moves amount from the user's scrap balance into a new staking position
func (s *service) Stake(ctx context.Context, userID string, amount float64) (*StakeResult, error) {
	log := logger.FromContext(ctx)
	log.Info("Stake called", "user_id", userID, "amount", amount)

	if amount <= 0 {
		return nil, fmt.Errorf("%w: stake amount must be positive", domain.ErrInvalidInput)
	}
	if utils.RoundTo(amount, AmountPrecision) != amount {
		return nil, fmt.Errorf("%w: stake amount allows at most %d decimal places", domain.ErrInvalidInput, AmountPrecision)
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	user, err := tx.GetUserForUpdate(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to lock user: %w", err)
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if user.Scrap < amount {
		return nil, fmt.Errorf("%w: have %.2f, need %.2f", domain.ErrInsufficientFunds, user.Scrap, amount)
	}

	user.Scrap -= amount
	if err := tx.UpdateUserProgress(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update balance: %w", err)
	}

	stake := &domain.Staking{
		UserID:    userID,
		Amount:    amount,
		StartDate: s.now(),
	}
	if err := tx.InsertStaking(ctx, stake); err != nil {
		return nil, fmt.Errorf("failed to record stake: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	metrics.RecordStake(amount)
	log.Info("Scrap staked", "user_id", userID, "staking_id", stake.ID, "amount", amount, "new_balance", user.Scrap)

	return &StakeResult{
		Message:    "Scrap staked successfully",
		Staking:    stake,
		NewBalance: user.Scrap,
	}, nil
}

// ListStakes reports every stake of the user with the yield accrued so far. It never writes.
func (s *service) ListStakes(ctx context.Context, userID string) (*StakeSummary, error) {
	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}

	stakes, err := s.repo.GetStakingsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list stakes: %w", err)
	}

	now := s.now()
	summary := &StakeSummary{UserID: userID, Staking: make([]StakeView, 0, len(stakes))}
	total := 0.0
	for _, st := range stakes {
		days, yield := ProjectedYield(st.Amount, st.StartDate, now)
		summary.Staking = append(summary.Staking, StakeView{
			Staking:         st,
			DurationDays:    utils.RoundTo(days, displayPrecision),
			PotentialReward: utils.RoundTo(yield, displayPrecision),
		})
		total += st.Amount
	}
	summary.TotalStaked = utils.RoundTo(total, displayPrecision)

	return summary, nil
}

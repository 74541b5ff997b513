package reward

import (
	"context"
	"fmt"

	"github.com/osse101/scrapworld/internal/domain"
	"github.com/osse101/scrapworld/internal/logger"
)

// Store is the part of a ledger transaction the applier writes through
type Store interface {
	GetUserForUpdate(ctx context.Context, userID string) (*domain.User, error)
	UpdateUserProgress(ctx context.Context, user *domain.User) error
	AddUserItem(ctx context.Context, userID, itemID string, quantity int) error
	InsertBooster(ctx context.Context, userID, tier string) (*domain.Booster, error)
}

// Validate rejects bundles that would take anything away from a user
func Validate(bundle domain.RewardBundle) error {
	if bundle.XP < 0 {
		return fmt.Errorf("%w: xp reward cannot be negative", domain.ErrInvalidInput)
	}
	if bundle.Scrap < 0 {
		return fmt.Errorf("%w: scrap reward cannot be negative", domain.ErrInvalidInput)
	}
	for _, it := range bundle.Items {
		if it.ID == "" {
			return fmt.Errorf("%w: reward item is missing an id", domain.ErrInvalidInput)
		}
		if it.Quantity < 0 {
			return fmt.Errorf("%w: quantity for item %s cannot be negative", domain.ErrInvalidInput, it.ID)
		}
		if it.Quantity > domain.MaxItemQuantity {
			return fmt.Errorf("%w: quantity for item %s exceeds %d", domain.ErrInvalidInput, it.ID, domain.MaxItemQuantity)
		}
	}
	for _, b := range bundle.Boosters {
		if b.Type == "" {
			return fmt.Errorf("%w: reward booster is missing a type", domain.ErrInvalidInput)
		}
	}
	return nil
}

// Quantity returns the number of units a reward line grants. Missing or zero counts as one.
func Quantity(it domain.RewardItem) int {
	if it.Quantity <= 0 {
		return 1
	}
	return it.Quantity
}

// Apply merges bundle into the user's state inside the caller's transaction.
// It locks the user row, adds xp and scrap, upserts inventory rows and grants boosters.
// Nothing is committed here; re-applying the same bundle grants it again.
func Apply(ctx context.Context, tx Store, userID string, bundle domain.RewardBundle) (*domain.User, error) {
	log := logger.FromContext(ctx)

	if err := Validate(bundle); err != nil {
		return nil, err
	}

	user, err := tx.GetUserForUpdate(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to lock user: %w", err)
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}

	user.AddXP(bundle.XP)
	user.Scrap += bundle.Scrap
	if err := tx.UpdateUserProgress(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update user progress: %w", err)
	}

	for _, it := range bundle.Items {
		if err := tx.AddUserItem(ctx, userID, it.ID, Quantity(it)); err != nil {
			return nil, fmt.Errorf("failed to grant item %s: %w", it.ID, err)
		}
	}

	for _, b := range bundle.Boosters {
		if _, err := tx.InsertBooster(ctx, userID, b.Type); err != nil {
			return nil, fmt.Errorf("failed to grant %s booster: %w", b.Type, err)
		}
	}

	log.Debug("Rewards applied",
		"user_id", userID,
		"xp", bundle.XP,
		"scrap", bundle.Scrap,
		"items", len(bundle.Items),
		"boosters", len(bundle.Boosters),
		"level", user.Level)

	return user, nil
}

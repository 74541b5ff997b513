package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/osse101/scrapworld/internal/database/generated"
	"github.com/osse101/scrapworld/internal/domain"
)

// GetUserByID returns nil when the user does not exist
func (s *Store) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	id, ok := parseID(userID)
	if !ok {
		return nil, nil
	}
	row, err := s.q.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return mapUser(row)
}

// GetUserByWallet returns nil when no user owns the wallet
func (s *Store) GetUserByWallet(ctx context.Context, wallet string) (*domain.User, error) {
	row, err := s.q.GetUserByWallet(ctx, wallet)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by wallet: %w", err)
	}
	return mapUser(row)
}

// UpsertUserByWallet creates the user on first sight of a wallet and returns the stored row
func (s *Store) UpsertUserByWallet(ctx context.Context, wallet string) (*domain.User, error) {
	row, err := s.q.UpsertUserByWallet(ctx, wallet)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert user: %w", err)
	}
	return mapUser(row)
}

// GetUserItems lists the user's inventory joined with the catalog
func (s *Store) GetUserItems(ctx context.Context, userID string) ([]domain.InventoryItem, error) {
	id, ok := parseID(userID)
	if !ok {
		return []domain.InventoryItem{}, nil
	}
	rows, err := s.q.GetUserItems(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get user items: %w", err)
	}

	items := make([]domain.InventoryItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, domain.InventoryItem{
			Item: domain.Item{
				ID:       row.ItemID.String(),
				Name:     row.ItemName,
				Type:     row.ItemType,
				ImageURL: row.ImageUrl,
			},
			Quantity: int(row.Quantity),
		})
	}
	return items, nil
}

// GetUserForUpdate locks the user row
func (t *LedgerTx) GetUserForUpdate(ctx context.Context, userID string) (*domain.User, error) {
	id, ok := parseID(userID)
	if !ok {
		return nil, nil
	}
	row, err := t.tx.q.GetUserByIDForUpdate(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to lock user: %w", err)
	}
	return mapUser(row)
}

// UpdateUserProgress writes xp, level and scrap
func (t *LedgerTx) UpdateUserProgress(ctx context.Context, user *domain.User) error {
	id, err := mustParseID("user", user.ID)
	if err != nil {
		return err
	}
	scrap, err := floatToNumeric(user.Scrap)
	if err != nil {
		return err
	}
	err = t.tx.q.UpdateUserProgress(ctx, generated.UpdateUserProgressParams{
		UserID: id,
		Xp:     user.XP,
		Level:  int32(user.Level),
		Scrap:  scrap,
	})
	if err != nil {
		if isPgError(err, pgCheckViolation) {
			return fmt.Errorf("%w: balance would go negative", domain.ErrInsufficientFunds)
		}
		return fmt.Errorf("failed to update user progress: %w", err)
	}
	return nil
}

// GetUserItemForUpdate locks the inventory row, nil when the user never held the item
func (t *LedgerTx) GetUserItemForUpdate(ctx context.Context, userID, itemID string) (*domain.UserItem, error) {
	uid, ok := parseID(userID)
	if !ok {
		return nil, nil
	}
	iid, ok := parseID(itemID)
	if !ok {
		return nil, nil
	}
	row, err := t.tx.q.GetUserItemForUpdate(ctx, generated.GetUserItemForUpdateParams{UserID: uid, ItemID: iid})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to lock user item: %w", err)
	}
	return &domain.UserItem{
		UserID:   row.UserID.String(),
		ItemID:   row.ItemID.String(),
		Quantity: int(row.Quantity),
	}, nil
}

// AddUserItem inserts the row at quantity or increments an existing one
func (t *LedgerTx) AddUserItem(ctx context.Context, userID, itemID string, quantity int) error {
	uid, err := mustParseID("user", userID)
	if err != nil {
		return err
	}
	iid, ok := parseID(itemID)
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrItemNotFound, itemID)
	}
	qty, err := quantityParam(quantity)
	if err != nil {
		return err
	}
	err = t.tx.q.AddUserItem(ctx, generated.AddUserItemParams{
		UserID:   uid,
		ItemID:   iid,
		Quantity: qty,
	})
	if err != nil {
		if isPgError(err, pgForeignKeyViolation) {
			return fmt.Errorf("%w: %s", domain.ErrItemNotFound, itemID)
		}
		return fmt.Errorf("failed to add user item: %w", err)
	}
	return nil
}

// SetUserItemQuantity overwrites the quantity of an existing row
func (t *LedgerTx) SetUserItemQuantity(ctx context.Context, userID, itemID string, quantity int) error {
	uid, err := mustParseID("user", userID)
	if err != nil {
		return err
	}
	iid, err := mustParseID("item", itemID)
	if err != nil {
		return err
	}
	qty, err := quantityParam(quantity)
	if err != nil {
		return err
	}
	err = t.tx.q.SetUserItemQuantity(ctx, generated.SetUserItemQuantityParams{
		UserID:   uid,
		ItemID:   iid,
		Quantity: qty,
	})
	if err != nil {
		return fmt.Errorf("failed to set user item quantity: %w", err)
	}
	return nil
}

package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/osse101/scrapworld/internal/database/generated"
	"github.com/osse101/scrapworld/internal/domain"
)

// GetBoostersByUser lists every booster the user holds, newest first
func (s *Store) GetBoostersByUser(ctx context.Context, userID string) ([]domain.Booster, error) {
	id, ok := parseID(userID)
	if !ok {
		return []domain.Booster{}, nil
	}
	rows, err := s.q.GetBoostersByUser(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get boosters: %w", err)
	}
	boosters := make([]domain.Booster, 0, len(rows))
	for _, row := range rows {
		boosters = append(boosters, *mapBooster(row))
	}
	return boosters, nil
}

// GetUnopenedBoosterForUpdate locks one unopened booster owned by the user
func (t *LedgerTx) GetUnopenedBoosterForUpdate(ctx context.Context, userID, boosterID string) (*domain.Booster, error) {
	uid, ok := parseID(userID)
	if !ok {
		return nil, nil
	}
	params := generated.GetUnopenedBoosterForUpdateParams{UserID: uid}
	if boosterID != "" {
		bid, ok := parseID(boosterID)
		if !ok {
			return nil, nil
		}
		params.BoosterID.UUID = bid
		params.BoosterID.Valid = true
	}

	row, err := t.tx.q.GetUnopenedBoosterForUpdate(ctx, params)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to lock booster: %w", err)
	}
	return mapBooster(row), nil
}

// MarkBoosterOpened flips the opened flag; a booster that is already open is reported as not found
func (t *LedgerTx) MarkBoosterOpened(ctx context.Context, boosterID string) error {
	id, ok := parseID(boosterID)
	if !ok {
		return domain.ErrBoosterNotFound
	}
	n, err := t.tx.q.MarkBoosterOpened(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to mark booster opened: %w", err)
	}
	if n == 0 {
		return domain.ErrBoosterNotFound
	}
	return nil
}

// InsertBooster grants an unopened booster of the given tier
func (t *LedgerTx) InsertBooster(ctx context.Context, userID, tier string) (*domain.Booster, error) {
	uid, err := mustParseID("user", userID)
	if err != nil {
		return nil, err
	}
	row, err := t.tx.q.InsertBooster(ctx, generated.InsertBoosterParams{UserID: uid, BoosterType: tier})
	if err != nil {
		return nil, fmt.Errorf("failed to insert booster: %w", err)
	}
	return mapBooster(row), nil
}

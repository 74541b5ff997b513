package postgres

import (
	"context"
	"fmt"

	"github.com/osse101/scrapworld/internal/database/generated"
	"github.com/osse101/scrapworld/internal/domain"
)

// GetStakingsByUser returns the user's stakes, newest first
func (s *Store) GetStakingsByUser(ctx context.Context, userID string) ([]domain.Staking, error) {
	id, ok := parseID(userID)
	if !ok {
		return []domain.Staking{}, nil
	}
	rows, err := s.q.GetStakingsByUser(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get stakes: %w", err)
	}
	stakes := make([]domain.Staking, 0, len(rows))
	for _, row := range rows {
		amount, err := numericToFloat64(row.Amount)
		if err != nil {
			return nil, err
		}
		stakes = append(stakes, domain.Staking{
			ID:        row.StakingID.String(),
			UserID:    row.UserID.String(),
			Amount:    amount,
			StartDate: row.StartDate.Time,
		})
	}
	return stakes, nil
}

// InsertStaking records a stake and fills in its id
func (t *LedgerTx) InsertStaking(ctx context.Context, s *domain.Staking) error {
	uid, err := mustParseID("user", s.UserID)
	if err != nil {
		return err
	}
	amount, err := floatToNumeric(s.Amount)
	if err != nil {
		return err
	}
	id, err := t.tx.q.InsertStaking(ctx, generated.InsertStakingParams{
		UserID:    uid,
		Amount:    amount,
		StartDate: timestamptz(s.StartDate),
	})
	if err != nil {
		return fmt.Errorf("failed to insert staking: %w", err)
	}
	s.ID = id.String()
	return nil
}

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

func mapToken(row generated.Token) (*domain.Token, error) {
	t := &domain.Token{
		ID:        row.TokenID.String(),
		Name:      row.TokenName,
		ImageURL:  row.ImageUrl,
		OwnerID:   row.OwnerID.String(),
		CreatedAt: row.CreatedAt.Time,
	}
	if len(row.Attributes) > 0 {
		if err := json.Unmarshal(row.Attributes, &t.Attributes); err != nil {
			return nil, fmt.Errorf("failed to decode attributes for token %s: %w", t.ID, err)
		}
	}
	return t, nil
}

// GetTokenByID returns nil if the token does not exist
func (s *Store) GetTokenByID(ctx context.Context, tokenID string) (*domain.Token, error) {
	id, ok := parseID(tokenID)
	if !ok {
		return nil, nil
	}
	row, err := s.q.GetTokenByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get token: %w", err)
	}
	return mapToken(row)
}

// GetTokenForUpdate locks the token row
func (t *LedgerTx) GetTokenForUpdate(ctx context.Context, tokenID string) (*domain.Token, error) {
	id, ok := parseID(tokenID)
	if !ok {
		return nil, nil
	}
	row, err := t.tx.q.GetTokenByIDForUpdate(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to lock token: %w", err)
	}
	return mapToken(row)
}

// UpdateTokenAttributes replaces the attribute document
func (t *LedgerTx) UpdateTokenAttributes(ctx context.Context, tokenID string, attrs domain.TokenAttributes) error {
	id, err := mustParseID("token", tokenID)
	if err != nil {
		return err
	}
	raw, err := json.Marshal(attrs)
	if err != nil {
		return fmt.Errorf("failed to encode attributes: %w", err)
	}
	if err := t.tx.q.UpdateTokenAttributes(ctx, generated.UpdateTokenAttributesParams{TokenID: id, Attributes: raw}); err != nil {
		return fmt.Errorf("failed to update token attributes: %w", err)
	}
	return nil
}

// InsertToken stores a new token and fills in its id and creation time
func (t *LedgerTx) InsertToken(ctx context.Context, token *domain.Token) error {
	owner, err := mustParseID("owner", token.OwnerID)
	if err != nil {
		return err
	}
	raw, err := json.Marshal(token.Attributes)
	if err != nil {
		return fmt.Errorf("failed to encode attributes: %w", err)
	}
	row, err := t.tx.q.InsertToken(ctx, generated.InsertTokenParams{
		TokenName:  token.Name,
		ImageUrl:   token.ImageURL,
		OwnerID:    owner,
		Attributes: raw,
	})
	if err != nil {
		if isPgError(err, pgForeignKeyViolation) {
			return domain.ErrUserNotFound
		}
		return fmt.Errorf("failed to insert token: %w", err)
	}
	token.ID = row.TokenID.String()
	token.CreatedAt = row.CreatedAt.Time
	return nil
}

// InsertFusionLog appends an audit record and fills in its id
func (t *LedgerTx) InsertFusionLog(ctx context.Context, entry *domain.FusionLog) error {
	uid, err := mustParseID("user", entry.UserID)
	if err != nil {
		return err
	}
	tid, err := mustParseID("token", entry.TokenID)
	if err != nil {
		return err
	}
	id, err := t.tx.q.InsertFusionLog(ctx, generated.InsertFusionLogParams{
		FusionKind:    entry.Kind,
		UserID:        uid,
		TokenID:       tid,
		StickerID:     nullID(entry.StickerID),
		SecondTokenID: nullID(entry.SecondTokenID),
		ResultTokenID: nullID(entry.ResultTokenID),
		FusedAt:       timestamptz(entry.Date),
	})
	if err != nil {
		return fmt.Errorf("failed to insert fusion log: %w", err)
	}
	entry.ID = id.String()
	return nil
}

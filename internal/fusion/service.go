package fusion

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/scrapworld/internal/domain"
	"github.com/osse101/scrapworld/internal/logger"
	"github.com/osse101/scrapworld/internal/metrics"
	"github.com/osse101/scrapworld/internal/repository"
)

// Service defines the fusion operations
type Service interface {
	FuseSticker(ctx context.Context, userID, tokenID, stickerID string) (*domain.Token, error)
	FuseTokens(ctx context.Context, userID, firstTokenID, secondTokenID string) (*domain.Token, error)
}

type service struct {
	repo repository.Fusion
	now  func() time.Time
}

// NewService creates a new fusion service
func NewService(repo repository.Fusion) Service {
	return &service{
		repo: repo,
		now:  func() time.Time { return time.Now().UTC() },
	}
}

// lockOwnedToken locks a token and checks the owner. Foreign tokens look missing.
func lockOwnedToken(ctx context.Context, tx repository.LedgerTx, userID, tokenID string) (*domain.Token, error) {
	tok, err := tx.GetTokenForUpdate(ctx, tokenID)
	if err != nil {
		return nil, fmt.Errorf("failed to get token: %w", err)
	}
	if tok == nil || tok.OwnerID != userID {
		return nil, fmt.Errorf("%w: %s", domain.ErrTokenNotFound, tokenID)
	}
	return tok, nil
}

// FuseSticker consumes one sticker from the user's inventory and appends it to the token
func (s *service) FuseSticker(ctx context.Context, userID, tokenID, stickerID string) (*domain.Token, error) {
	log := logger.FromContext(ctx)
	log.Info("FuseSticker called", "user_id", userID, "token_id", tokenID, "sticker_id", stickerID)

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	tok, err := lockOwnedToken(ctx, tx, userID, tokenID)
	if err != nil {
		return nil, err
	}

	held, err := tx.GetUserItemForUpdate(ctx, userID, stickerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get sticker inventory: %w", err)
	}
	if held == nil || held.Quantity < 1 {
		return nil, fmt.Errorf("%w: sticker %s", domain.ErrInsufficientQuantity, stickerID)
	}

	if err := tx.SetUserItemQuantity(ctx, userID, stickerID, held.Quantity-1); err != nil {
		return nil, fmt.Errorf("failed to consume sticker: %w", err)
	}

	tok.Attributes = tok.Attributes.WithSticker(stickerID)
	if err := tx.UpdateTokenAttributes(ctx, tok.ID, tok.Attributes); err != nil {
		return nil, fmt.Errorf("failed to update token attributes: %w", err)
	}

	if err := tx.InsertFusionLog(ctx, &domain.FusionLog{
		Kind:      domain.FusionKindSticker,
		UserID:    userID,
		TokenID:   tok.ID,
		StickerID: stickerID,
		Date:      s.now(),
	}); err != nil {
		return nil, fmt.Errorf("failed to log fusion: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	metrics.Fusions.WithLabelValues(domain.FusionKindSticker).Inc()
	log.Info("Sticker fused", "user_id", userID, "token_id", tok.ID, "sticker_id", stickerID,
		"stickers", len(tok.Attributes.Stickers))

	return tok, nil
}

// FuseTokens mints a child token from two parents owned by the user. Parents are left untouched.
func (s *service) FuseTokens(ctx context.Context, userID, firstTokenID, secondTokenID string) (*domain.Token, error) {
	log := logger.FromContext(ctx)
	log.Info("FuseTokens called", "user_id", userID, "nft1_id", firstTokenID, "nft2_id", secondTokenID)

	if firstTokenID == secondTokenID {
		return nil, fmt.Errorf("%w: cannot fuse a token with itself", domain.ErrInvalidInput)
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	first, err := lockOwnedToken(ctx, tx, userID, firstTokenID)
	if err != nil {
		return nil, err
	}
	second, err := lockOwnedToken(ctx, tx, userID, secondTokenID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	attrs := domain.MergeAttributes(first.Attributes, second.Attributes)
	attrs.Fusion = &domain.FusionProvenance{
		Parents: []string{first.ID, second.ID},
		Date:    now,
	}

	child := &domain.Token{
		Name:       fmt.Sprintf("%s + %s", first.Name, second.Name),
		ImageURL:   first.ImageURL,
		OwnerID:    userID,
		Attributes: attrs,
	}
	if err := tx.InsertToken(ctx, child); err != nil {
		return nil, fmt.Errorf("failed to insert fused token: %w", err)
	}

	if err := tx.InsertFusionLog(ctx, &domain.FusionLog{
		Kind:          domain.FusionKindToken,
		UserID:        userID,
		TokenID:       first.ID,
		SecondTokenID: second.ID,
		ResultTokenID: child.ID,
		Date:          now,
	}); err != nil {
		return nil, fmt.Errorf("failed to log fusion: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	metrics.Fusions.WithLabelValues(domain.FusionKindToken).Inc()
	log.Info("Tokens fused", "user_id", userID, "result_token_id", child.ID)

	return child, nil
}

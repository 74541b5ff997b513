package token

import (
	"context"
	"fmt"
	"strings"

	"github.com/osse101/scrapworld/internal/domain"
	"github.com/osse101/scrapworld/internal/logger"
	"github.com/osse101/scrapworld/internal/metrics"
	"github.com/osse101/scrapworld/internal/repository"
)

// MintRequest describes a new token
type MintRequest struct {
	Name       string
	ImageURL   string
	OwnerID    string
	Attributes domain.TokenAttributes
}

// Service defines the token metadata operations
type Service interface {
	Mint(ctx context.Context, req MintRequest) (*domain.Token, error)
	Get(ctx context.Context, tokenID string) (*domain.Token, error)
	AttachSticker(ctx context.Context, tokenID, stickerID string) (*domain.Token, error)
}

// ItemLookup resolves catalog items by id, returning nil when unknown
type ItemLookup interface {
	Get(ctx context.Context, itemID string) (*domain.Item, error)
}

type service struct {
	repo  repository.Token
	items ItemLookup
}

// NewService creates a new token service
func NewService(repo repository.Token, items ItemLookup) Service {
	return &service{repo: repo, items: items}
}

// Mint stores a new token for an existing owner.
// Fusion provenance cannot be supplied here; only token fusion records it.
func (s *service) Mint(ctx context.Context, req MintRequest) (*domain.Token, error) {
	log := logger.FromContext(ctx)
	log.Info("Mint called", "owner_id", req.OwnerID, "name", req.Name)

	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return nil, fmt.Errorf("%w: token name is required", domain.ErrInvalidInput)
	}
	if req.Attributes.Fusion != nil {
		return nil, fmt.Errorf("%w: fusion provenance is reserved for fused tokens", domain.ErrInvalidInput)
	}
	if err := req.Attributes.ValidateTraits(); err != nil {
		return nil, err
	}

	owner, err := s.repo.GetUserByID(ctx, req.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get owner: %w", err)
	}
	if owner == nil {
		return nil, domain.ErrUserNotFound
	}

	tok := &domain.Token{
		Name:       req.Name,
		ImageURL:   req.ImageURL,
		OwnerID:    owner.ID,
		Attributes: req.Attributes.Clone(),
	}
	if tok.Attributes.Stickers == nil {
		tok.Attributes.Stickers = []string{}
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	if err := tx.InsertToken(ctx, tok); err != nil {
		return nil, fmt.Errorf("failed to insert token: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	metrics.TokensMinted.Inc()
	log.Info("Token minted", "token_id", tok.ID, "owner_id", tok.OwnerID)
	return tok, nil
}

func (s *service) Get(ctx context.Context, tokenID string) (*domain.Token, error) {
	tok, err := s.repo.GetTokenByID(ctx, tokenID)
	if err != nil {
		return nil, fmt.Errorf("failed to get token: %w", err)
	}
	if tok == nil {
		return nil, domain.ErrTokenNotFound
	}
	return tok, nil
}

// AttachSticker appends a sticker to the token metadata without touching any inventory
func (s *service) AttachSticker(ctx context.Context, tokenID, stickerID string) (*domain.Token, error) {
	log := logger.FromContext(ctx)
	log.Info("AttachSticker called", "token_id", tokenID, "sticker_id", stickerID)

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	tok, err := tx.GetTokenForUpdate(ctx, tokenID)
	if err != nil {
		return nil, fmt.Errorf("failed to get token: %w", err)
	}
	if tok == nil {
		return nil, domain.ErrTokenNotFound
	}

	item, err := s.items.Get(ctx, stickerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get sticker: %w", err)
	}
	if item == nil || item.Type != domain.ItemTypeSticker {
		return nil, fmt.Errorf("%w: %s", domain.ErrStickerNotFound, stickerID)
	}

	tok.Attributes = tok.Attributes.WithSticker(item.ID)
	if err := tx.UpdateTokenAttributes(ctx, tok.ID, tok.Attributes); err != nil {
		return nil, fmt.Errorf("failed to update token attributes: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	log.Info("Sticker attached", "token_id", tok.ID, "sticker_id", item.ID)
	return tok, nil
}

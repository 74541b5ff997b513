package user

import (
	"context"
	"fmt"
	"strings"

	"github.com/osse101/scrapworld/internal/domain"
	"github.com/osse101/scrapworld/internal/logger"
	"github.com/osse101/scrapworld/internal/metrics"
	"github.com/osse101/scrapworld/internal/repository"
)

// Service defines the interface for user operations
type Service interface {
	Register(ctx context.Context, wallet string) (*domain.User, error)
	Get(ctx context.Context, userID string) (*domain.User, error)
	GetItemsByWallet(ctx context.Context, wallet string) ([]domain.InventoryItem, error)
	GetCacheStats() CacheStats
}

type service struct {
	repo    repository.User
	wallets *walletCache
}

// NewService creates a new user service
func NewService(repo repository.User, config CacheConfig) Service {
	return &service{
		repo:    repo,
		wallets: newWalletCache(config),
	}
}

func normalizeWallet(wallet string) (string, error) {
	wallet = strings.TrimSpace(wallet)
	if wallet == "" {
		return "", fmt.Errorf("%w: wallet address is required", domain.ErrInvalidInput)
	}
	return wallet, nil
}

// Register creates the user for a wallet, or returns the existing one
func (s *service) Register(ctx context.Context, wallet string) (*domain.User, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgRegisterUserCalled, "wallet", wallet)

	wallet, err := normalizeWallet(wallet)
	if err != nil {
		return nil, err
	}

	existing, err := s.repo.GetUserByWallet(ctx, wallet)
	if err != nil {
		return nil, fmt.Errorf("failed to look up wallet: %w", err)
	}
	if existing != nil {
		s.wallets.Set(wallet, existing.ID)
		return existing, nil
	}

	user, err := s.repo.UpsertUserByWallet(ctx, wallet)
	if err != nil {
		log.Error(LogErrFailedToUpsertUser, "error", err, "wallet", wallet)
		return nil, fmt.Errorf("failed to register user: %w", err)
	}
	s.wallets.Set(wallet, user.ID)
	metrics.UsersRegistered.Inc()

	log.Info(LogMsgUserRegistered, "user_id", user.ID, "wallet", wallet)
	return user, nil
}

func (s *service) Get(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}

// GetItemsByWallet lists the inventory of the wallet's owner, including zero-quantity rows
func (s *service) GetItemsByWallet(ctx context.Context, wallet string) ([]domain.InventoryItem, error) {
	wallet, err := normalizeWallet(wallet)
	if err != nil {
		return nil, err
	}

	userID, ok := s.wallets.Get(wallet)
	if !ok {
		user, err := s.repo.GetUserByWallet(ctx, wallet)
		if err != nil {
			return nil, fmt.Errorf("failed to look up wallet: %w", err)
		}
		if user == nil {
			return nil, domain.ErrUserNotFound
		}
		userID = user.ID
		s.wallets.Set(wallet, userID)
	}

	items, err := s.repo.GetUserItems(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user items: %w", err)
	}
	if items == nil {
		items = []domain.InventoryItem{}
	}
	return items, nil
}

func (s *service) GetCacheStats() CacheStats {
	return s.wallets.GetStats()
}

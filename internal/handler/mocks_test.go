package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/scrapworld/internal/booster"
	"github.com/osse101/scrapworld/internal/domain"
	"github.com/osse101/scrapworld/internal/quest"
	"github.com/osse101/scrapworld/internal/staking"
	"github.com/osse101/scrapworld/internal/token"
	"github.com/osse101/scrapworld/internal/user"
)

// serve routes a single request through a chi router so URL params resolve
func serve(method, pattern, target, body string, h http.HandlerFunc) *httptest.ResponseRecorder {
	r := chi.NewRouter()
	r.Method(method, pattern, h)

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// decodeEnvelope parses the response envelope, leaving data raw
func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) (APIResponse, json.RawMessage) {
	t.Helper()
	var env struct {
		APIResponse
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env.APIResponse, env.Data
}

// ---- user ----

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Register(ctx context.Context, wallet string) (*domain.User, error) {
	args := m.Called(ctx, wallet)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) Get(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) GetItemsByWallet(ctx context.Context, wallet string) ([]domain.InventoryItem, error) {
	args := m.Called(ctx, wallet)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InventoryItem), args.Error(1)
}

func (m *MockUserService) GetCacheStats() user.CacheStats {
	return m.Called().Get(0).(user.CacheStats)
}

// ---- booster ----

type MockBoosterService struct {
	mock.Mock
}

func (m *MockBoosterService) OpenBooster(ctx context.Context, userID, boosterID string) (*booster.OpenResult, error) {
	args := m.Called(ctx, userID, boosterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*booster.OpenResult), args.Error(1)
}

func (m *MockBoosterService) ListBoosters(ctx context.Context, userID string) ([]domain.Booster, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booster), args.Error(1)
}

// ---- fusion ----

type MockFusionService struct {
	mock.Mock
}

func (m *MockFusionService) FuseSticker(ctx context.Context, userID, tokenID, stickerID string) (*domain.Token, error) {
	args := m.Called(ctx, userID, tokenID, stickerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Token), args.Error(1)
}

func (m *MockFusionService) FuseTokens(ctx context.Context, userID, firstTokenID, secondTokenID string) (*domain.Token, error) {
	args := m.Called(ctx, userID, firstTokenID, secondTokenID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Token), args.Error(1)
}

// ---- quest ----

type MockQuestService struct {
	mock.Mock
}

func (m *MockQuestService) ListQuests(ctx context.Context) ([]domain.Quest, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Quest), args.Error(1)
}

func (m *MockQuestService) GetUserQuests(ctx context.Context, userID string) (*quest.Board, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*quest.Board), args.Error(1)
}

func (m *MockQuestService) CompleteQuest(ctx context.Context, userID, questID string) (*quest.CompletionResult, error) {
	args := m.Called(ctx, userID, questID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*quest.CompletionResult), args.Error(1)
}

// ---- staking ----

type MockStakingService struct {
	mock.Mock
}

func (m *MockStakingService) Stake(ctx context.Context, userID string, amount float64) (*staking.StakeResult, error) {
	args := m.Called(ctx, userID, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*staking.StakeResult), args.Error(1)
}

func (m *MockStakingService) ListStakes(ctx context.Context, userID string) (*staking.StakeSummary, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*staking.StakeSummary), args.Error(1)
}

// ---- token ----

type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) Mint(ctx context.Context, req token.MintRequest) (*domain.Token, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Token), args.Error(1)
}

func (m *MockTokenService) Get(ctx context.Context, tokenID string) (*domain.Token, error) {
	args := m.Called(ctx, tokenID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Token), args.Error(1)
}

func (m *MockTokenService) AttachSticker(ctx context.Context, tokenID, stickerID string) (*domain.Token, error) {
	args := m.Called(ctx, tokenID, stickerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Token), args.Error(1)
}

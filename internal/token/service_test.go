package token

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/scrapworld/internal/catalog"
	"github.com/osse101/scrapworld/internal/database/memory"
	"github.com/osse101/scrapworld/internal/domain"
)

var (
	boltID  = memory.DefaultItems[0].ID
	flameID = memory.DefaultItems[3].ID
)

func newTestService(store *memory.Store) Service {
	return NewService(store, catalog.New(store, 16, time.Minute))
}

// stubItems is an ItemLookup that counts lookups
type stubItems struct {
	items map[string]domain.Item
	err   error
	calls int
}

func (s *stubItems) Get(_ context.Context, itemID string) (*domain.Item, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	it, ok := s.items[itemID]
	if !ok {
		return nil, nil
	}
	return &it, nil
}

func TestMint(t *testing.T) {
	ctx := context.Background()
	store := memory.NewSeededStore()
	owner := store.SeedUser(domain.User{})
	svc := newTestService(store)

	tok, err := svc.Mint(ctx, MintRequest{
		Name:     "  Scrap Rover ",
		ImageURL: "https://img.example/rover.png",
		OwnerID:  owner.ID,
		Attributes: domain.TokenAttributes{
			Traits: map[string]any{"color": "rust", "wheels": 6.0, "shiny": false},
		},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, tok.ID)
	assert.Equal(t, "Scrap Rover", tok.Name)
	assert.Equal(t, owner.ID, tok.OwnerID)
	assert.NotNil(t, tok.Attributes.Stickers)
	assert.Empty(t, tok.Attributes.Stickers)

	stored, err := svc.Get(ctx, tok.ID)
	require.NoError(t, err)
	assert.Equal(t, "rust", stored.Attributes.Traits["color"])
	assert.Equal(t, 1, store.TokenCount())
}

func TestMint_Validation(t *testing.T) {
	ctx := context.Background()
	store := memory.NewSeededStore()
	owner := store.SeedUser(domain.User{})
	svc := newTestService(store)

	tests := []struct {
		name    string
		req     MintRequest
		wantErr error
	}{
		{"blank name", MintRequest{Name: " ", OwnerID: owner.ID}, domain.ErrInvalidInput},
		{"nested trait", MintRequest{Name: "X", OwnerID: owner.ID, Attributes: domain.TokenAttributes{
			Traits: map[string]any{"nested": map[string]any{"a": 1.0}},
		}}, domain.ErrInvalidInput},
		{"fusion supplied by caller", MintRequest{Name: "X", OwnerID: owner.ID, Attributes: domain.TokenAttributes{
			Fusion: &domain.FusionProvenance{Parents: []string{"a", "b"}, Date: time.Now()},
		}}, domain.ErrInvalidInput},
		{"unknown owner", MintRequest{Name: "X", OwnerID: "missing"}, domain.ErrUserNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Mint(ctx, tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
	assert.Equal(t, 0, store.TokenCount())
}

func TestGet_NotFound(t *testing.T) {
	_, err := newTestService(memory.NewSeededStore()).Get(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrTokenNotFound)
}

func TestAttachSticker_DoesNotConsumeInventory(t *testing.T) {
	ctx := context.Background()
	store := memory.NewSeededStore()
	owner := store.SeedUser(domain.User{})
	store.SeedUserItem(owner.ID, flameID, 1)
	tok := store.SeedToken(domain.Token{Name: "Rover", OwnerID: owner.ID})
	svc := newTestService(store)

	updated, err := svc.AttachSticker(ctx, tok.ID, flameID)
	require.NoError(t, err)
	assert.Equal(t, []string{flameID}, updated.Attributes.Stickers)

	updated, err = svc.AttachSticker(ctx, tok.ID, flameID)
	require.NoError(t, err)
	assert.Equal(t, []string{flameID, flameID}, updated.Attributes.Stickers)

	qty, _ := store.UserItemQuantity(owner.ID, flameID)
	assert.Equal(t, 1, qty)
	assert.Empty(t, store.FusionLogs())
}

func TestAttachSticker_Errors(t *testing.T) {
	ctx := context.Background()
	store := memory.NewSeededStore()
	owner := store.SeedUser(domain.User{})
	tok := store.SeedToken(domain.Token{Name: "Rover", OwnerID: owner.ID})
	svc := newTestService(store)

	_, err := svc.AttachSticker(ctx, "missing", flameID)
	assert.ErrorIs(t, err, domain.ErrTokenNotFound)

	_, err = svc.AttachSticker(ctx, tok.ID, boltID)
	assert.ErrorIs(t, err, domain.ErrStickerNotFound, "common items are not stickers")

	_, err = svc.AttachSticker(ctx, tok.ID, "no-such-item")
	assert.ErrorIs(t, err, domain.ErrStickerNotFound)

	stored, err := store.GetTokenByID(ctx, tok.ID)
	require.NoError(t, err)
	assert.Empty(t, stored.Attributes.Stickers)
}

func TestAttachSticker_ResolvesThroughItemLookup(t *testing.T) {
	ctx := context.Background()
	store := memory.NewSeededStore()
	owner := store.SeedUser(domain.User{})
	tok := store.SeedToken(domain.Token{Name: "Rover", OwnerID: owner.ID})

	items := &stubItems{items: map[string]domain.Item{
		"holo-1": {ID: "holo-1", Name: "Holo Gear", Type: domain.ItemTypeSticker},
	}}
	svc := NewService(store, items)

	updated, err := svc.AttachSticker(ctx, tok.ID, "holo-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"holo-1"}, updated.Attributes.Stickers)
	assert.Equal(t, 1, items.calls)

	items.err = errors.New("catalog unavailable")
	_, err = svc.AttachSticker(ctx, tok.ID, "holo-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "catalog unavailable")

	stored, err := store.GetTokenByID(ctx, tok.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"holo-1"}, stored.Attributes.Stickers)
}

package user

import (
	"sync/atomic"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// CacheConfig holds the wallet cache settings
type CacheConfig struct {
	Size int
	TTL  time.Duration
}

// CacheStats reports cache effectiveness
type CacheStats struct {
	Hits   int64 `json:"hits"`
	Misses int64 `json:"misses"`
	Size   int   `json:"size"`
}

// cachedWalletEntry wraps a user id with version metadata for cache invalidation
type cachedWalletEntry struct {
	Version  string
	UserID   string
	CachedAt time.Time
}

// walletCache maps wallet addresses to user ids.
// The mapping never changes once a user exists, so only ids are cached, never balances.
type walletCache struct {
	lru    *expirable.LRU[string, *cachedWalletEntry]
	hits   atomic.Int64
	misses atomic.Int64
}

func newWalletCache(config CacheConfig) *walletCache {
	if config.Size <= 0 {
		config.Size = DefaultCacheSize
	}
	if config.TTL <= 0 {
		config.TTL = DefaultCacheTTL
	}
	return &walletCache{
		lru: expirable.NewLRU[string, *cachedWalletEntry](config.Size, nil, config.TTL),
	}
}

// Get returns the cached user id for a wallet.
// Entries written under another schema version are dropped.
func (c *walletCache) Get(wallet string) (string, bool) {
	entry, found := c.lru.Get(wallet)
	if !found {
		c.misses.Add(1)
		return "", false
	}

	if entry.Version != CacheSchemaVersion {
		c.lru.Remove(wallet)
		c.misses.Add(1)
		return "", false
	}

	c.hits.Add(1)
	return entry.UserID, true
}

// Set stores the wallet's user id
func (c *walletCache) Set(wallet, userID string) {
	c.lru.Add(wallet, &cachedWalletEntry{
		Version:  CacheSchemaVersion,
		UserID:   userID,
		CachedAt: time.Now(),
	})
}

// Invalidate removes a wallet from the cache
func (c *walletCache) Invalidate(wallet string) {
	c.lru.Remove(wallet)
}

// GetStats returns hit, miss and size counters
func (c *walletCache) GetStats() CacheStats {
	return CacheStats{
		Hits:   c.hits.Load(),
		Misses: c.misses.Load(),
		Size:   c.lru.Len(),
	}
}

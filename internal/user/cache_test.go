package user

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCacheInvalidation(t *testing.T) {
	cache := newWalletCache(CacheConfig{Size: 10, TTL: time.Minute})

	// 1. Set wallet in cache
	cache.Set("0xabc", "user-1")

	// 2. Verify retrieval
	id, found := cache.Get("0xabc")
	assert.True(t, found)
	assert.Equal(t, "user-1", id)

	// 3. Invalidate
	cache.Invalidate("0xabc")

	// 4. Verify miss
	id, found = cache.Get("0xabc")
	assert.False(t, found)
	assert.Empty(t, id)
}

func TestCacheStats(t *testing.T) {
	cache := newWalletCache(CacheConfig{Size: 10, TTL: time.Minute})

	stats := cache.GetStats()
	assert.Equal(t, int64(0), stats.Hits)
	assert.Equal(t, int64(0), stats.Misses)
	assert.Equal(t, 0, stats.Size)

	cache.Get("0xmissing")
	cache.Set("0xabc", "user-1")
	cache.Get("0xabc")

	stats = cache.GetStats()
	assert.Equal(t, int64(1), stats.Hits)
	assert.Equal(t, int64(1), stats.Misses)
	assert.Equal(t, 1, stats.Size)
}

func TestCacheVersionMismatch(t *testing.T) {
	cache := newWalletCache(CacheConfig{Size: 10, TTL: time.Minute})
	cache.lru.Add("0xabc", &cachedWalletEntry{Version: "0.9", UserID: "user-1"})

	_, found := cache.Get("0xabc")
	assert.False(t, found)
	assert.Equal(t, 0, cache.GetStats().Size, "stale entry is evicted")
}

func TestCacheDefaults(t *testing.T) {
	cache := newWalletCache(CacheConfig{})
	for i := 0; i < DefaultCacheSize+5; i++ {
		cache.Set(fmt.Sprintf("0x%04d", i), "u")
	}
	assert.Equal(t, DefaultCacheSize, cache.GetStats().Size)
}

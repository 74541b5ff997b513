package config

// Store drivers
const (
	StoreDriverPostgres = "postgres"
	StoreDriverMemory   = "memory"
)

// Defaults
const (
	DefaultPort               = 8080
	DefaultDBMaxConns         = 20
	DefaultDBMaxConnIdle      = "5m"
	DefaultDBMaxConnLifetime  = "1h"
	DefaultCatalogCacheTTL    = "5m"
	DefaultCatalogCacheSize   = 512
	DefaultRateLimitPerWindow = 1000
)

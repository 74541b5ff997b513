package bootstrap

import (
	"github.com/osse101/scrapworld/internal/booster"
	"github.com/osse101/scrapworld/internal/catalog"
	"github.com/osse101/scrapworld/internal/config"
	"github.com/osse101/scrapworld/internal/fusion"
	"github.com/osse101/scrapworld/internal/quest"
	"github.com/osse101/scrapworld/internal/repository"
	"github.com/osse101/scrapworld/internal/server"
	"github.com/osse101/scrapworld/internal/staking"
	"github.com/osse101/scrapworld/internal/token"
	"github.com/osse101/scrapworld/internal/user"
)

// InitializeServices wires every domain service to the store
func InitializeServices(cfg *config.Config, store repository.Store) server.Services {
	items := catalog.New(store, cfg.CatalogCacheSize, cfg.CatalogCacheTTL)

	return server.Services{
		User:    user.NewService(store, user.CacheConfig{Size: user.DefaultCacheSize, TTL: user.DefaultCacheTTL}),
		Booster: booster.NewService(store, items),
		Fusion:  fusion.NewService(store),
		Quest:   quest.NewService(store),
		Staking: staking.NewService(store),
		Token:   token.NewService(store, items),
	}
}

// ServerOptions maps the configuration onto the HTTP server options
func ServerOptions(cfg *config.Config) server.Options {
	return server.Options{
		Port:               cfg.Port,
		APIKey:             cfg.APIKey,
		ServiceName:        cfg.ServiceName,
		TrustedProxies:     cfg.TrustedProxies,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		MaxRequests:        cfg.RateLimitPerWindow,
	}
}

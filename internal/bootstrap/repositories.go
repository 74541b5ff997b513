package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/scrapworld/internal/config"
	"github.com/osse101/scrapworld/internal/database"
	"github.com/osse101/scrapworld/internal/database/memory"
	"github.com/osse101/scrapworld/internal/database/postgres"
	"github.com/osse101/scrapworld/internal/repository"
)

// Storage is the selected backing store. Pool is nil for the in-memory driver.
type Storage struct {
	Store repository.Store
	Pool  *pgxpool.Pool
}

// InitializeStorage opens the store selected by STORE_DRIVER.
// For PostgreSQL it connects the pool and applies migrations when RUN_MIGRATIONS is set.
func InitializeStorage(ctx context.Context, cfg *config.Config) (*Storage, error) {
	if cfg.StoreDriver == config.StoreDriverMemory {
		slog.Warn(LogMsgUsingMemoryStore)
		return &Storage{Store: memory.NewSeededStore()}, nil
	}

	pool, err := database.NewPool(ctx, cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdle, cfg.DBMaxConnLifetime)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedConnectDatabase, err)
	}

	if cfg.RunMigrations {
		if err := database.Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedRunMigrations, err)
		}
	} else {
		slog.Info(LogMsgMigrationsSkipped)
	}

	slog.Info(LogMsgUsingPostgresStore, "host", cfg.DBHost, "database", cfg.DBName)
	return &Storage{Store: postgres.NewStore(pool), Pool: pool}, nil
}

// Pinger returns the readiness check for the store, or nil for the in-memory store
func (s *Storage) Pinger() database.Pool {
	if s.Pool == nil {
		return nil
	}
	return s.Pool
}

// Close releases the database pool, if any
func (s *Storage) Close() {
	if s.Pool != nil {
		slog.Info(LogMsgClosingDatabasePool)
		s.Pool.Close()
	}
}

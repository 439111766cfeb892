// Package repository selects the record store backend.
package repository

import (
	"context"
	"fmt"

	"gstinvoice/internal/config"
	"gstinvoice/internal/port"
	"gstinvoice/internal/repository/memory"
	"gstinvoice/internal/repository/postgres"
	redisstore "gstinvoice/internal/repository/redis"
)

// Open connects the record store named by cfg.Store.Driver.
func Open(ctx context.Context, cfg *config.Config) (port.KVStore, error) {
	switch cfg.Store.Driver {
	case config.StorePostgres:
		db, err := postgres.NewDB(&cfg.DB)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		return postgres.NewKVStore(db), nil
	case config.StoreRedis:
		client, err := redisstore.NewClient(ctx, &cfg.Redis)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		return redisstore.NewKVStore(client, cfg.Redis.Prefix, cfg.Redis.LockTTL), nil
	case config.StoreMemory:
		return memory.NewKVStore(), nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}
}

// Package repository selects and opens the configured document store.
package repository

import (
	"context"
	"fmt"

	"github.com/vncsmyrnk/ballotbox/internal/adapters/repository/memory"
	"github.com/vncsmyrnk/ballotbox/internal/adapters/repository/mongo"
	"github.com/vncsmyrnk/ballotbox/internal/adapters/repository/postgres"
	"github.com/vncsmyrnk/ballotbox/internal/adapters/repository/redis"
	"github.com/vncsmyrnk/ballotbox/internal/config"
	"github.com/vncsmyrnk/ballotbox/internal/core/ports"
)

// Open connects to the document store named by cfg.Driver. Postgres
// migrations are applied on open so the collections exist before first use.
func Open(ctx context.Context, cfg config.StoreConfig) (ports.DocumentStore, error) {
	switch cfg.Driver {
	case config.DriverMemory:
		return memory.NewStore(), nil
	case config.DriverPostgres:
		store, err := postgres.Connect(ctx, cfg.Postgres.ConnectionString())
		if err != nil {
			return nil, err
		}
		if err := postgres.Migrate(ctx, store.DB()); err != nil {
			store.Close()
			return nil, err
		}
		return store, nil
	case config.DriverMongo:
		store, err := mongo.Connect(ctx, cfg.MongoURI, cfg.Database)
		if err != nil {
			return nil, err
		}
		return store, nil
	case config.DriverRedis:
		store, err := redis.NewStore(ctx, cfg.RedisURL, cfg.Database)
		if err != nil {
			return nil, err
		}
		return store, nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Driver)
	}
}

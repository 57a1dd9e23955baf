package store

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/stemsi/school-records/internal/config"
	"github.com/stemsi/school-records/internal/database"
)

// Open builds the store selected by cfg.StoreDriver. The returned closer
// releases any connection the store holds.
func Open(ctx context.Context, cfg *config.Config, log zerolog.Logger) (Store, func(), error) {
	switch cfg.StoreDriver {
	case config.DriverJSON, "":
		return NewJSONStore(cfg.DataDir, log), func() {}, nil
	case config.DriverRedis:
		rdb, err := database.NewRedisClient(ctx, cfg, log)
		if err != nil {
			return nil, nil, err
		}
		return NewRedisStore(rdb, cfg.RedisKeyPrefix, log), func() { _ = rdb.Close() }, nil
	case config.DriverPostgres:
		pool, err := database.NewPostgresPool(ctx, cfg, log)
		if err != nil {
			return nil, nil, err
		}
		return NewPostgresStore(pool, log), pool.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
}

package store

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stemsi/school-records/internal/config"
)

// RedisStore keeps each collection under its own string key.
type RedisStore struct {
	rdb    *redis.Client
	prefix string
	log    zerolog.Logger
}

// NewRedisStore creates a RedisStore using keys under prefix.
func NewRedisStore(rdb *redis.Client, prefix string, log zerolog.Logger) *RedisStore {
	return &RedisStore{
		rdb:    rdb,
		prefix: prefix,
		log:    log.With().Str("component", "redis_store").Str("prefix", prefix).Logger(),
	}
}

func (s *RedisStore) keys() []string {
	keys := make([]string, len(Names))
	for i, name := range Names {
		keys[i] = config.CacheKey.CollectionKey(s.prefix, name)
	}
	return keys
}

// Load fetches every collection in one MGET. Absent keys are empty collections.
func (s *RedisStore) Load(ctx context.Context) (*Snapshot, error) {
	vals, err := s.rdb.MGet(ctx, s.keys()...).Result()
	if err != nil {
		return nil, fmt.Errorf("mget collections: %w", err)
	}

	raw := make(map[string][]byte, len(Names))
	for i, v := range vals {
		str, ok := v.(string)
		if !ok {
			continue
		}
		raw[Names[i]] = []byte(str)
	}
	return DecodeAll(raw)
}

// Save writes all collections in a single MULTI/EXEC.
func (s *RedisStore) Save(ctx context.Context, snap *Snapshot) error {
	encoded, err := snap.EncodeAll()
	if err != nil {
		return err
	}

	_, err = s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, name := range Names {
			pipe.Set(ctx, config.CacheKey.CollectionKey(s.prefix, name), encoded[name], 0)
		}
		pipe.Set(ctx, config.CacheKey.SavedAtKey(s.prefix), time.Now().UTC().Format(time.RFC3339), 0)
		return nil
	})
	if err != nil {
		return fmt.Errorf("save collections: %w", err)
	}

	s.log.Debug().Msg("snapshot saved")
	return nil
}

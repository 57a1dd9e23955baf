package store

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/rs/zerolog"
	"github.com/stemsi/school-records/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen(t *testing.T) {
	ctx := context.Background()
	log := zerolog.Nop()

	t.Run("json", func(t *testing.T) {
		s, closeFn, err := Open(ctx, &config.Config{StoreDriver: config.DriverJSON, DataDir: t.TempDir()}, log)
		require.NoError(t, err)
		defer closeFn()
		assert.IsType(t, &JSONStore{}, s)
	})

	t.Run("redis", func(t *testing.T) {
		mr := miniredis.RunT(t)
		s, closeFn, err := Open(ctx, &config.Config{
			StoreDriver:    config.DriverRedis,
			RedisURL:       "redis://" + mr.Addr() + "/0",
			RedisKeyPrefix: "school",
		}, log)
		require.NoError(t, err)
		defer closeFn()
		assert.IsType(t, &RedisStore{}, s)
	})

	t.Run("unknown driver", func(t *testing.T) {
		_, _, err := Open(ctx, &config.Config{StoreDriver: "sqlite"}, log)
		assert.ErrorContains(t, err, `unknown store driver "sqlite"`)
	})
}

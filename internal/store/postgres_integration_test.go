//go:build integration

package store

import (
	"context"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Run with: DATABASE_URL=... go test -tags integration ./internal/store/
// The school_collections table must exist (cmd/migrate up).
func TestPostgresStore_SaveThenLoad(t *testing.T) {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		t.Skip("DATABASE_URL not set")
	}
	ctx := context.Background()

	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	_, err = pool.Exec(ctx, `DELETE FROM school_collections`)
	require.NoError(t, err)

	s := NewPostgresStore(pool, zerolog.Nop())

	empty, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Zero(t, empty.Students.Len())

	require.NoError(t, s.Save(ctx, sampleSnapshot()))
	// Second save exercises the upsert path.
	require.NoError(t, s.Save(ctx, sampleSnapshot()))

	got, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"5001", "42"}, got.Students.IDs())
	assert.Equal(t, []string{"10", "9"}, got.Grades.IDs())
}

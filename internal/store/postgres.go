package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// PostgresStore keeps each collection as one row of school_collections.
// The payload column is JSON rather than JSONB so key order survives.
type PostgresStore struct {
	pool *pgxpool.Pool
	log  zerolog.Logger
}

// NewPostgresStore creates a PostgresStore.
func NewPostgresStore(pool *pgxpool.Pool, log zerolog.Logger) *PostgresStore {
	return &PostgresStore{
		pool: pool,
		log:  log.With().Str("component", "postgres_store").Logger(),
	}
}

// Load reads every collection row. Missing rows are empty collections.
func (s *PostgresStore) Load(ctx context.Context) (*Snapshot, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT name, payload::text FROM school_collections WHERE name = ANY($1)`, Names)
	if err != nil {
		return nil, fmt.Errorf("query collections: %w", err)
	}
	defer rows.Close()

	raw := make(map[string][]byte, len(Names))
	for rows.Next() {
		var name, payload string
		if err := rows.Scan(&name, &payload); err != nil {
			return nil, fmt.Errorf("scan collection: %w", err)
		}
		raw[name] = []byte(payload)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate collections: %w", err)
	}
	return DecodeAll(raw)
}

// Save upserts all collections with one UNNEST statement, so either every
// row is written or none is.
func (s *PostgresStore) Save(ctx context.Context, snap *Snapshot) error {
	encoded, err := snap.EncodeAll()
	if err != nil {
		return err
	}

	payloads := make([]string, 0, len(Names))
	for _, name := range Names {
		payloads = append(payloads, string(encoded[name]))
	}

	query := `
		INSERT INTO school_collections (name, payload, updated_at)
		SELECT u.name, u.payload::json, NOW()
		FROM UNNEST(
			$1::text[],
			$2::text[]
		) AS u (name, payload)
		ON CONFLICT (name) DO UPDATE
		SET payload = EXCLUDED.payload,
		    updated_at = EXCLUDED.updated_at
	`
	if _, err := s.pool.Exec(ctx, query, Names, payloads); err != nil {
		return fmt.Errorf("upsert collections: %w", err)
	}

	s.log.Debug().Int("collections", len(payloads)).Msg("snapshot saved")
	return nil
}

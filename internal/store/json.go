package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// JSONStore keeps each collection in <dir>/<name>.json.
type JSONStore struct {
	dir string
	log zerolog.Logger
}

// NewJSONStore creates a JSONStore rooted at dir.
func NewJSONStore(dir string, log zerolog.Logger) *JSONStore {
	return &JSONStore{
		dir: dir,
		log: log.With().Str("component", "json_store").Str("dir", dir).Logger(),
	}
}

// Path returns the file backing the named collection.
func (s *JSONStore) Path(name string) string {
	return filepath.Join(s.dir, name+".json")
}

// Load reads every collection file. Missing files are empty collections.
func (s *JSONStore) Load(ctx context.Context) (*Snapshot, error) {
	raw := make(map[string][]byte, len(Names))
	for _, name := range Names {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		data, err := os.ReadFile(s.Path(name))
		if errors.Is(err, fs.ErrNotExist) {
			s.log.Debug().Str("collection", name).Msg("file missing, starting empty")
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
		raw[name] = data
	}
	return DecodeAll(raw)
}

// Save writes every collection through a temp file and rename. A failing
// collection does not stop the others; all failures are returned joined.
func (s *JSONStore) Save(ctx context.Context, snap *Snapshot) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	var errs []error
	for _, name := range Names {
		if err := ctx.Err(); err != nil {
			return err
		}
		data, err := snap.Encode(name)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if err := s.writeFile(name, data); err != nil {
			s.log.Error().Err(err).Str("collection", name).Msg("write failed")
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (s *JSONStore) writeFile(name string, data []byte) error {
	tmp := filepath.Join(s.dir, fmt.Sprintf(".%s.%s.tmp", name, uuid.NewString()))
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	if err := os.Rename(tmp, s.Path(name)); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("replace %s: %w", name, err)
	}
	return nil
}

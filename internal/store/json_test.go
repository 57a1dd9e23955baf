package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONStore_MissingFilesLoadEmpty(t *testing.T) {
	s := NewJSONStore(t.TempDir(), zerolog.Nop())

	snap, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.Zero(t, snap.Students.Len())
	assert.Zero(t, snap.Scores.Len())
}

func TestJSONStore_SaveThenLoad(t *testing.T) {
	dir := t.TempDir()
	s := NewJSONStore(dir, zerolog.Nop())
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, sampleSnapshot()))

	for _, name := range Names {
		assert.FileExists(t, filepath.Join(dir, name+".json"))
	}
	leftovers, err := filepath.Glob(filepath.Join(dir, ".*.tmp"))
	require.NoError(t, err)
	assert.Empty(t, leftovers)

	got, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"5001", "42"}, got.Students.IDs())
	assert.Equal(t, []string{"10", "9"}, got.Grades.IDs())
}

func TestJSONStore_ReadsFilesWrittenByHand(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "subjects.json"), []byte(`{
    "3": {"id": "3", "name": "Physics"},
    "1": {"id": "1", "name": "Math"}
}`), 0o644))

	got, err := NewJSONStore(dir, zerolog.Nop()).Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"3", "1"}, got.Subjects.IDs())
}

func TestJSONStore_MalformedFileFailsLoad(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "grades.json"), []byte(`{"10": `), 0o644))

	_, err := NewJSONStore(dir, zerolog.Nop()).Load(context.Background())
	assert.Error(t, err)
}

func TestJSONStore_SaveCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	require.NoError(t, NewJSONStore(dir, zerolog.Nop()).Save(context.Background(), NewSnapshot()))

	data, err := os.ReadFile(filepath.Join(dir, "students.json"))
	require.NoError(t, err)
	assert.Equal(t, "{}", string(data))
}

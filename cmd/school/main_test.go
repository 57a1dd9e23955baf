package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stemsi/school-records/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()
	return &config.Config{
		LogLevel:            "info",
		LogFormat:           "json",
		LogFile:             filepath.Join(dir, "school.log"),
		StoreDriver:         config.DriverJSON,
		DataDir:             filepath.Join(dir, "data"),
		SubjectDeletePolicy: "permissive",
		ExportDir:           dir,
		PlaceholderSeed:     1,
	}
}

func TestRun_SavesAndExitsCleanly(t *testing.T) {
	cfg := testConfig(t)
	require.NoError(t, os.MkdirAll(cfg.DataDir, 0o755))

	var out bytes.Buffer
	code := run(cfg, strings.NewReader("3\n1\n10\nGrade 10\n10\n7\n"), &out)
	assert.Equal(t, 0, code)
	assert.Contains(t, out.String(), "Data saved successfully.")

	grades, err := os.ReadFile(filepath.Join(cfg.DataDir, "grades.json"))
	require.NoError(t, err)
	assert.Contains(t, string(grades), `"Grade 10"`)

	logs, err := os.ReadFile(cfg.LogFile)
	require.NoError(t, err)
	assert.Contains(t, string(logs), "Session ended")
}

func TestRun_FailedSaveFlushesLogFile(t *testing.T) {
	cfg := testConfig(t)
	// A regular file where the data directory should be makes every save fail.
	require.NoError(t, os.WriteFile(cfg.DataDir, []byte("not a dir"), 0o644))

	var out bytes.Buffer
	code := run(cfg, strings.NewReader("7\n"), &out)
	assert.Equal(t, 1, code)
	assert.Contains(t, out.String(), "Error saving data")

	logs, err := os.ReadFile(cfg.LogFile)
	require.NoError(t, err)
	assert.Contains(t, string(logs), "Exited with unsaved changes")
}

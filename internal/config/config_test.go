package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks the overrides so the host environment cannot leak in
func clearEnv(t *testing.T) {
	for _, k := range []string{"TASKLIST_BACKEND", "TASKLIST_DSN", "LOG_LEVEL", "LOG_FORMAT", "TASKLIST_SEED_DEMO"} {
		t.Setenv(k, "")
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFileThenEnv(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), FileName)
	err := os.WriteFile(path, []byte(`
backend = "memory"
log_level = "debug"
seed_demo = false
default_priority = "high"
`), 0644)
	require.NoError(t, err)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, BackendMemory, cfg.Backend)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.False(t, cfg.SeedDemo)
	assert.Equal(t, "high", cfg.DefaultPriority)
	assert.Equal(t, "text", cfg.LogFormat)

	// Environment beats the file
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("TASKLIST_BACKEND", "FILE")
	cfg, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.LogLevel)
	assert.Equal(t, BackendFile, cfg.Backend)
}

func TestLoadRejectsUnknownBackend(t *testing.T) {
	clearEnv(t)
	t.Setenv("TASKLIST_BACKEND", "postgres")
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.ErrorIs(t, err, ErrInvalidBackend)
}

func TestLoadRejectsBadSeedFlag(t *testing.T) {
	clearEnv(t)
	t.Setenv("TASKLIST_SEED_DEMO", "maybe")
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte("backend = "), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestWriteThenLoad(t *testing.T) {
	clearEnv(t)
	path := DefaultPath(t.TempDir())
	want := Default()
	want.Backend = BackendMemory
	want.DefaultFilter = "active"

	require.NoError(t, Write(path, want))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

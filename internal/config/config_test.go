package config_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mkessler/hobby-tracker/internal/config"
)

// clearEnv blanks every variable Load reads so tests see only what they set.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"PORT", "STORAGE", "DB_PATH", "SEED", "LOG_LEVEL", "CORS_ORIGINS"} {
		t.Setenv(key, "")
	}
}

// TestLoad_defaults verifies that every variable falls back to its default
// when nothing is set.
func TestLoad_defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := config.Load()

	require.NoError(t, err)
	require.Equal(t, "3000", cfg.Port)
	require.Equal(t, config.StorageMemory, cfg.Storage)
	require.Equal(t, "hobbies.db", cfg.DBPath)
	require.False(t, cfg.Seed)
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, []string{"*"}, cfg.CORSOrigins)
}

// TestLoad_overrides verifies that all values can be overridden via env vars.
func TestLoad_overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "8080")
	t.Setenv("STORAGE", "sqlite")
	t.Setenv("DB_PATH", "/data/hobbies.db")
	t.Setenv("SEED", "true")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("CORS_ORIGINS", "http://localhost:19006, https://app.example.com")

	cfg, err := config.Load()

	require.NoError(t, err)
	require.Equal(t, "8080", cfg.Port)
	require.Equal(t, config.StorageSQLite, cfg.Storage)
	require.Equal(t, "/data/hobbies.db", cfg.DBPath)
	require.True(t, cfg.Seed)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, []string{"http://localhost:19006", "https://app.example.com"}, cfg.CORSOrigins)
}

// TestLoad_invalidStorage verifies that an unknown STORAGE value is rejected
// and the error names the variable.
func TestLoad_invalidStorage(t *testing.T) {
	clearEnv(t)
	t.Setenv("STORAGE", "redis")

	_, err := config.Load()

	require.Error(t, err)
	require.ErrorContains(t, err, "STORAGE")
}

// TestLoad_invalidSeed verifies that a non-boolean SEED value is rejected.
func TestLoad_invalidSeed(t *testing.T) {
	clearEnv(t)
	t.Setenv("SEED", "maybe")

	_, err := config.Load()

	require.Error(t, err)
	require.ErrorContains(t, err, "SEED")
}

// Package config loads and validates application configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Storage backend names accepted in the STORAGE variable.
const (
	StorageMemory = "memory"
	StorageSQLite = "sqlite"
)

// Config holds all configuration values for the API server.
// Values are populated by Load from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "3000",
	// the port the load-test scripts point at.
	Port string

	// Storage selects the backing store: "memory" (the load-test mock's
	// in-process collection) or "sqlite" (the durable key-value store).
	// Defaults to "memory".
	Storage string

	// DBPath is the SQLite database file path, used only when Storage is
	// "sqlite". Defaults to "hobbies.db".
	DBPath string

	// Seed, when true, populates an empty repository with the sample
	// catalog at startup. Defaults to false.
	Seed bool

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Defaults to ["*"], the open policy of the original mock server.
	// Set CORS_ORIGINS to a comma-separated list to override.
	CORSOrigins []string
}

// Load reads configuration from environment variables and returns a Config.
// Returns an error naming any variable with an invalid value.
func Load() (Config, error) {
	cfg := Config{
		Port:        getEnv("PORT", "3000"),
		Storage:     getEnv("STORAGE", StorageMemory),
		DBPath:      getEnv("DB_PATH", "hobbies.db"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		CORSOrigins: splitCSV(getEnv("CORS_ORIGINS", "*")),
	}

	if cfg.Storage != StorageMemory && cfg.Storage != StorageSQLite {
		return Config{}, fmt.Errorf("STORAGE must be %q or %q, got %q", StorageMemory, StorageSQLite, cfg.Storage)
	}

	seed, err := strconv.ParseBool(getEnv("SEED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("SEED must be a boolean: %w", err)
	}
	cfg.Seed = seed

	return cfg, nil
}

// getEnv returns the value of the environment variable named by key,
// or fallback if the variable is not set or is empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// splitCSV splits a comma-separated string into a trimmed slice, ignoring empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}

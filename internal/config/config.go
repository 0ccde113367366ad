// Package config provides application configuration management.
// It loads configuration from environment variables with sensible defaults.
//
// Everything here is read ONCE at startup and never mutated afterwards. The
// JWT secret in particular is process-wide state with an
// initialization-once lifecycle: it's injected into the TokenService at
// construction and nothing else ever sees it — it is never logged.
package config

import (
	"errors"
	"os"
	"strconv"
)

// Config holds all application configuration.
type Config struct {
	Port      int
	DBPath    string // path to the SQLite database file (":memory:" for tests)
	JWTSecret string // HMAC signing secret — required, never logged
	LogLevel  string // debug | info | warn | error
}

// Load reads configuration from environment variables.
//
// JWT_SECRET has no default: a guessable fallback secret would let anyone
// mint valid tokens, so a missing secret is a startup failure, not a
// warning. Generate one with: openssl rand -hex 32
func Load() (*Config, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, errors.New("config: JWT_SECRET must be set")
	}

	return &Config{
		Port:      getEnvAsInt("PORT", 8080),
		DBPath:    getEnv("DB_PATH", "data/dishdelight.db"),
		JWTSecret: secret,
		LogLevel:  getEnv("LOG_LEVEL", "info"),
	}, nil
}

// getEnv returns the value of the environment variable or the default.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt returns the environment variable parsed as int, or the default
// when unset or unparsable.
func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

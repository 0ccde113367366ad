// Package main is the entry point for the DishDelight API server.
//
// The main package is kept minimal — its job is to:
// 1. Read configuration (env vars, optionally a .env file)
// 2. Create dependencies (logger, config)
// 3. Start the application
//
// All actual logic lives in imported packages (internal/server,
// internal/handler, etc.). This separation keeps the app testable and its
// components reusable.
package main

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/dishdelight/backend/internal/config"
	"github.com/dishdelight/backend/internal/server"
)

func main() {
	// === 1. LOAD .env (OPTIONAL) ===
	// godotenv.Load reads a .env file in the working directory into the
	// process environment. Convenient for local dev; in production the
	// environment comes from the deployment and no .env file exists, so a
	// load error is not fatal.
	if err := godotenv.Load(); err != nil {
		// No .env file — real env vars still apply.
		_ = err
	}

	// === 2. READ CONFIGURATION ===
	// config.Load fails if JWT_SECRET is unset — the server must never
	// start with a missing or guessable signing secret.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("configuration error", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// === 3. SET UP LOGGING ===
	// slog.New creates a structured logger; the text handler writes
	// human-readable lines to stdout. Note the secret is NOT logged.
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel(cfg.LogLevel),
	}))

	// === 4. ENSURE THE DATA DIRECTORY EXISTS ===
	// os.MkdirAll creates all parent directories if needed (like `mkdir -p`).
	// Skipped for ":memory:" which has no backing file.
	if cfg.DBPath != ":memory:" {
		dbDir := filepath.Dir(cfg.DBPath)
		if err := os.MkdirAll(dbDir, 0755); err != nil {
			logger.Error("failed to create database directory",
				slog.String("dir", dbDir),
				slog.String("error", err.Error()),
			)
			os.Exit(1)
		}
	}

	// === 5. CREATE AND START THE SERVER ===
	srv, err := server.New(cfg, logger)
	if err != nil {
		logger.Error("failed to create server", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Start() blocks until the server is shut down (via Ctrl+C or SIGTERM)
	if err := srv.Start(); err != nil {
		logger.Error("server error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// logLevel maps the config string to a slog level, defaulting to Info.
func logLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

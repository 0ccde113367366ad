// Package sqlite implements the repository interfaces using SQLite as the storage backend.
//
// WHY SQLITE?
// SQLite is an embedded database — it lives inside your Go binary as a single file.
// No separate database server to install, configure, or manage. Perfect for:
// - Single-server deployments (which is most apps, honestly)
// - Development and testing (use ":memory:" for an in-memory DB)
//
// WHY modernc.org/sqlite INSTEAD OF github.com/mattn/go-sqlite3?
// mattn/go-sqlite3 uses CGo (calls C code from Go), which means you need a C compiler
// installed and cross-compilation becomes painful. modernc.org/sqlite is a pure Go
// translation of the SQLite C code — no C compiler needed, works everywhere Go works.
//
// DATABASE/SQL OVERVIEW:
// Go's standard library provides "database/sql" — a generic interface for SQL databases.
// It works with any database through "drivers" (SQLite, Postgres, MySQL, etc.).
// Key types:
//   - sql.DB      — a connection pool (NOT a single connection!)
//   - sql.Row     — a single result row
//   - sql.Rows    — multiple result rows (must be closed!)
//
// The pool is the only shared mutable resource in this application: each
// query checks a connection out for its own duration and returns it
// immediately. Nothing here holds a connection across a bcrypt call or
// across two statements.
package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	sqlite3 "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"
)

// DB wraps a sql.DB connection pool and provides the repository methods.
//
// WHY WRAP sql.DB IN A STRUCT?
// 1. We can attach methods to it (CreateUser, ListFavorites, etc.)
// 2. We can add more fields later (logger, prepared statements)
// 3. It implements the repository interfaces from repository.go
// 4. We control the lifecycle (New creates it, Close destroys it)
type DB struct {
	conn *sql.DB
}

// New creates a new SQLite database connection pool and runs migrations.
//
// dbPath examples:
//   - "data/dishdelight.db"  → file-based database (persistent)
//   - ":memory:"             → in-memory database (great for tests, lost on close)
func New(dbPath string) (*DB, error) {
	// sql.Open does NOT actually open a connection — it just creates a pool
	// manager. "sqlite" is the driver name registered by the modernc import.
	conn, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("sqlite: opening database: %w", err)
	}

	// Ping verifies the connection actually works. Without this, a bad path
	// or permissions issue would only surface on the first query.
	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sqlite: pinging database: %w", err)
	}

	// SQLite permits one writer at a time, and a ":memory:" database exists
	// per connection — with more than one pooled connection the schema would
	// live on one and queries could land on another.
	conn.SetMaxOpenConns(1)

	// WAL (Write-Ahead Logging) mode:
	// Default SQLite locks the entire database during writes. WAL allows
	// concurrent reads WHILE a write is happening — important for a web
	// server where requests hit the DB concurrently.
	if _, err := conn.Exec("PRAGMA journal_mode=WAL"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sqlite: setting WAL mode: %w", err)
	}

	// Foreign keys are OFF by default in SQLite (backwards compatibility).
	// We turn them on for referential integrity (favorite_meals → users).
	if _, err := conn.Exec("PRAGMA foreign_keys=ON"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sqlite: enabling foreign keys: %w", err)
	}

	db := &DB{conn: conn}

	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sqlite: running migrations: %w", err)
	}

	return db, nil
}

// Close closes the database connection pool.
// Wherever you call New(), defer Close() — it flushes the WAL and releases
// the file lock.
func (db *DB) Close() error {
	return db.conn.Close()
}

// migrate creates the schema.
//
// users.email is UNIQUE — one account per address.
// favorite_meals has UNIQUE(user_id, meal_id) — adding the same meal twice
// for the same user is a constraint violation, never a silent overwrite.
//
// CREATE TABLE IF NOT EXISTS is idempotent, so running this on every start
// is safe. For a schema that evolves, reach for a real migration tool.
func (db *DB) migrate() error {
	_, err := db.conn.Exec(`
		CREATE TABLE IF NOT EXISTS users (
			id            TEXT PRIMARY KEY,
			username      TEXT NOT NULL,
			email         TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			created_at    DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		);
	`)
	if err != nil {
		return fmt.Errorf("creating users table: %w", err)
	}

	_, err = db.conn.Exec(`
		CREATE TABLE IF NOT EXISTS favorite_meals (
			user_id   TEXT NOT NULL REFERENCES users(id),
			meal_id   INTEGER NOT NULL,
			meal_name TEXT NOT NULL,
			image_url TEXT NOT NULL,
			added_at  DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
			UNIQUE (user_id, meal_id)
		);
		CREATE INDEX IF NOT EXISTS idx_favorite_meals_user_id ON favorite_meals(user_id);
	`)
	if err != nil {
		return fmt.Errorf("creating favorite_meals table: %w", err)
	}

	return nil
}

// isUniqueViolation reports whether err is a SQLite UNIQUE-constraint failure.
//
// DRIVER ERROR CODES:
// modernc.org/sqlite surfaces SQLite's extended result codes on its typed
// *sqlite.Error. SQLITE_CONSTRAINT_UNIQUE covers UNIQUE columns and
// constraints; SQLITE_CONSTRAINT_PRIMARYKEY covers PRIMARY KEY collisions.
// Recognizing the code (rather than substring-matching the message) is what
// lets the layers above translate this one failure into 409 Conflict while
// every other store error stays a 500.
func isUniqueViolation(err error) bool {
	var se *sqlite3.Error
	if !errors.As(err, &se) {
		return false
	}
	return se.Code() == sqlite3lib.SQLITE_CONSTRAINT_UNIQUE ||
		se.Code() == sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY
}

package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rs/xid"

	"github.com/dishdelight/backend/internal/apperror"
	"github.com/dishdelight/backend/internal/model"
	"github.com/dishdelight/backend/internal/repository"
)

// COMPILE-TIME INTERFACE CHECK:
// `var _ X = (*Y)(nil)` verifies at compile time that *DB implements the
// repository.UserRepository interface. Without it, a missing method would
// only surface where *DB is passed as the interface — much later.
var _ repository.UserRepository = (*DB)(nil)

// CreateUser inserts a new user record.
//
// ID GENERATION WITH xid:
// xid generates globally unique IDs that are 20 chars, URL-safe, and
// sortable by creation time (e.g. "cv37rs3pp9olc6atsptg"). The ID and
// CreatedAt are written back into the caller's struct (pointer receiver).
//
// A UNIQUE violation on email is translated to apperror.ErrConflict with a
// message safe to show the caller. Any other failure is a real database
// problem and is wrapped and propagated as-is.
func (db *DB) CreateUser(ctx context.Context, user *model.User) error {
	user.ID = xid.New().String()
	user.CreatedAt = time.Now()

	// The ? placeholders are filled by the driver with proper escaping —
	// never build SQL with string concatenation.
	_, err := db.conn.ExecContext(ctx,
		`INSERT INTO users (id, username, email, password_hash, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		user.ID,
		user.Username,
		user.Email,
		user.PasswordHash,
		user.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperror.Conflict("email already registered")
		}
		return fmt.Errorf("sqlite: inserting user: %w", err)
	}

	return nil
}

// GetUserByEmail retrieves a user by email, matched exactly as stored.
// Returns apperror.ErrNotFound (wrapped) when no account exists — the login
// flow deliberately collapses that with "wrong password" before anything
// reaches the client.
func (db *DB) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	var u model.User

	err := db.conn.QueryRowContext(ctx,
		`SELECT id, username, email, password_hash, created_at
		 FROM users WHERE email = ?`,
		email,
	).Scan(
		&u.ID,
		&u.Username,
		&u.Email,
		&u.PasswordHash,
		&u.CreatedAt,
	)
	if err != nil {
		// sql.ErrNoRows is not really an error — it means "no matching row".
		// database/sql doesn't wrap it, so == is the idiomatic check.
		if err == sql.ErrNoRows {
			return nil, apperror.NotFound("user")
		}
		return nil, fmt.Errorf("sqlite: getting user by email: %w", err)
	}

	return &u, nil
}

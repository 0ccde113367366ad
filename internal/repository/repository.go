// Package repository defines the persistence interfaces the rest of the
// application programs against. The concrete SQLite implementation lives in
// the sqlite subpackage; tests substitute in-memory fakes.
package repository

import (
	"context"

	"github.com/dishdelight/backend/internal/model"
)

// UserRepository is the credential-store boundary for user records.
//
// CreateUser returns apperror.ErrConflict (wrapped) when the email is
// already registered. GetUserByEmail returns apperror.ErrNotFound when no
// account exists for the email — callers decide how much of that to reveal.
type UserRepository interface {
	CreateUser(ctx context.Context, user *model.User) error
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
}

// FavoriteRepository stores per-user favorite meals.
//
// CreateFavorite returns apperror.ErrConflict when the (user, meal) pair
// already exists. DeleteFavorite returns apperror.ErrNotFound when nothing
// matched. ListFavorites returns all rows for the user — no pagination.
type FavoriteRepository interface {
	CreateFavorite(ctx context.Context, fav *model.FavoriteMeal) error
	ListFavorites(ctx context.Context, userID string) ([]model.FavoriteMeal, error)
	DeleteFavorite(ctx context.Context, userID string, mealID int64) error
}

package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/dishdelight/backend/internal/apperror"
	"github.com/dishdelight/backend/internal/model"
	"github.com/dishdelight/backend/internal/repository"
)

var _ repository.FavoriteRepository = (*DB)(nil)

// CreateFavorite inserts a favorite meal for a user.
// A UNIQUE violation on (user_id, meal_id) becomes apperror.ErrConflict —
// the same meal can't be favorited twice.
func (db *DB) CreateFavorite(ctx context.Context, fav *model.FavoriteMeal) error {
	fav.AddedAt = time.Now()

	_, err := db.conn.ExecContext(ctx,
		`INSERT INTO favorite_meals (user_id, meal_id, meal_name, image_url, added_at)
		 VALUES (?, ?, ?, ?, ?)`,
		fav.UserID,
		fav.MealID,
		fav.MealName,
		fav.ImageURL,
		fav.AddedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperror.Conflict("meal already added to favorites")
		}
		return fmt.Errorf("sqlite: inserting favorite (user=%s meal=%d): %w", fav.UserID, fav.MealID, err)
	}

	return nil
}

// ListFavorites returns every favorite meal belonging to the given user,
// oldest first. No pagination — a user's favorites list stays small.
//
// defer rows.Close() IS CRITICAL:
// sql.Rows holds a connection from the pool. Forget to Close() and that
// connection never comes back; leak enough of them and the app hangs.
func (db *DB) ListFavorites(ctx context.Context, userID string) ([]model.FavoriteMeal, error) {
	rows, err := db.conn.QueryContext(ctx,
		`SELECT user_id, meal_id, meal_name, image_url, added_at
		 FROM favorite_meals
		 WHERE user_id = ?
		 ORDER BY added_at`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("sqlite: listing favorites for user %s: %w", userID, err)
	}
	defer rows.Close()

	favorites := []model.FavoriteMeal{}
	for rows.Next() {
		var f model.FavoriteMeal
		if err := rows.Scan(&f.UserID, &f.MealID, &f.MealName, &f.ImageURL, &f.AddedAt); err != nil {
			return nil, fmt.Errorf("sqlite: scanning favorite row: %w", err)
		}
		favorites = append(favorites, f)
	}

	// rows.Err() catches errors that happened DURING iteration, e.g. the
	// connection dropping mid-query.
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: iterating favorites: %w", err)
	}

	return favorites, nil
}

// DeleteFavorite removes the favorite matching (userID, mealID).
// Zero rows affected means there was nothing to delete → ErrNotFound. The
// userID in the WHERE clause is the ownership check: a user can only ever
// delete their own rows, whatever mealID they send.
func (db *DB) DeleteFavorite(ctx context.Context, userID string, mealID int64) error {
	result, err := db.conn.ExecContext(ctx,
		`DELETE FROM favorite_meals WHERE user_id = ? AND meal_id = ?`,
		userID,
		mealID,
	)
	if err != nil {
		return fmt.Errorf("sqlite: deleting favorite (user=%s meal=%d): %w", userID, mealID, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("sqlite: checking rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return apperror.NotFound("favorite meal")
	}

	return nil
}

package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dishdelight/backend/internal/apperror"
	"github.com/dishdelight/backend/internal/model"
	"github.com/dishdelight/backend/internal/repository"
)

// FavoriteService handles business logic for favorite meals.
//
// Every method takes the authenticated userID as an explicit parameter —
// the service never reaches into a request context. Ownership scoping is
// therefore visible in every signature: there is no way to call Add, List,
// or Remove without saying whose favorites you mean.
type FavoriteService struct {
	favorites repository.FavoriteRepository
	logger    *slog.Logger
}

// NewFavoriteService creates a FavoriteService.
func NewFavoriteService(favorites repository.FavoriteRepository, logger *slog.Logger) *FavoriteService {
	return &FavoriteService{
		favorites: favorites,
		logger:    logger,
	}
}

// Add saves a meal to the user's favorites.
// All three meal fields are required; a duplicate (user, meal) pair comes
// back from the store as ErrConflict and is passed through untouched.
func (s *FavoriteService) Add(ctx context.Context, userID string, mealID int64, mealName, imageURL string) (*model.FavoriteMeal, error) {
	if mealID == 0 || mealName == "" || imageURL == "" {
		return nil, apperror.ValidationFailed("", "meal ID, name, and image URL are required")
	}

	fav := &model.FavoriteMeal{
		UserID:   userID,
		MealID:   mealID,
		MealName: mealName,
		ImageURL: imageURL,
	}

	if err := s.favorites.CreateFavorite(ctx, fav); err != nil {
		if errors.Is(err, apperror.ErrConflict) {
			return nil, err
		}
		return nil, apperror.Internal(fmt.Errorf("service/favorite: adding favorite: %w", err))
	}

	s.logger.Info("favorite added",
		slog.String("userID", userID),
		slog.Int64("mealID", mealID),
	)

	return fav, nil
}

// List returns all of the user's favorite meals.
func (s *FavoriteService) List(ctx context.Context, userID string) ([]model.FavoriteMeal, error) {
	favorites, err := s.favorites.ListFavorites(ctx, userID)
	if err != nil {
		return nil, apperror.Internal(fmt.Errorf("service/favorite: listing favorites: %w", err))
	}
	return favorites, nil
}

// Remove deletes one favorite by meal ID, scoped to the user.
// ErrNotFound from the store passes through — deleting something that was
// never added (or belongs to someone else) looks identical.
func (s *FavoriteService) Remove(ctx context.Context, userID string, mealID int64) error {
	err := s.favorites.DeleteFavorite(ctx, userID, mealID)
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return err
		}
		return apperror.Internal(fmt.Errorf("service/favorite: removing favorite: %w", err))
	}

	s.logger.Info("favorite removed",
		slog.String("userID", userID),
		slog.Int64("mealID", mealID),
	)

	return nil
}

package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/dishdelight/backend/internal/auth"
	"github.com/dishdelight/backend/internal/service"
)

// FavoriteHandler manages the favorite-meal endpoints.
//
// Every route here sits behind auth.RequireAuth, so each handler starts by
// reading the userID the middleware bound into the context. The handlers
// pass that ID explicitly into the service — ownership scoping happens in
// the signature, not by convention.
type FavoriteHandler struct {
	favorites *service.FavoriteService
	logger    *slog.Logger
}

// NewFavoriteHandler creates a FavoriteHandler.
func NewFavoriteHandler(favorites *service.FavoriteService, logger *slog.Logger) *FavoriteHandler {
	return &FavoriteHandler{
		favorites: favorites,
		logger:    logger,
	}
}

type addFavoriteRequest struct {
	MealID   int64  `json:"meal_id"`
	MealName string `json:"meal_name"`
	ImageURL string `json:"image_url"`
}

// HandleAdd saves a meal to the logged-in user's favorites.
//
// HTTP: POST /api/favorites
// REQUEST BODY: {"meal_id": 1, "meal_name": "Pizza", "image_url": "http://x/p.jpg"}
//
// Responses: 201 with the stored favorite, 400 on missing fields, 409 when
// the meal is already favorited.
func (h *FavoriteHandler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		// Unreachable behind RequireAuth, but fail closed.
		writeJSON(w, http.StatusForbidden, ErrorResponse{
			Error:   "forbidden",
			Message: "user not authenticated",
		})
		return
	}

	var req addFavoriteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("invalid favorite JSON", slog.String("error", err.Error()))
		writeJSON(w, http.StatusBadRequest, ErrorResponse{
			Error:   "validation_error",
			Message: "invalid JSON body",
		})
		return
	}

	fav, err := h.favorites.Add(r.Context(), userID, req.MealID, req.MealName, req.ImageURL)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, fav)
}

// HandleList returns all of the logged-in user's favorite meals.
//
// HTTP: GET /api/favorites
//
// Always a JSON array — an empty list is `[]`, not `null` (the service
// returns a non-nil empty slice).
func (h *FavoriteHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusForbidden, ErrorResponse{
			Error:   "forbidden",
			Message: "user not authenticated",
		})
		return
	}

	favorites, err := h.favorites.List(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, favorites)
}

// HandleDelete removes one favorite by meal ID.
//
// HTTP: DELETE /api/favorites/{meal_id}
//
// URL PARAMETERS:
// r.PathValue("meal_id") extracts the path segment chi matched. A non-numeric
// value is a 400; a meal that was never favorited (or belongs to another
// user) is a 404.
func (h *FavoriteHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusForbidden, ErrorResponse{
			Error:   "forbidden",
			Message: "user not authenticated",
		})
		return
	}

	mealID, err := strconv.ParseInt(r.PathValue("meal_id"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{
			Error:   "validation_error",
			Message: "meal_id must be an integer",
		})
		return
	}

	if err := h.favorites.Remove(r.Context(), userID, mealID); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "favorite meal deleted"})
}

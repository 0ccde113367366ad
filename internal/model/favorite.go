package model

import "time"

// FavoriteMeal is one meal saved by one user.
//
// The pair (UserID, MealID) is UNIQUE in the database — adding the same meal
// twice is a conflict, not an overwrite. MealID comes from the external meal
// catalogue the frontend browses, so it's caller-supplied rather than
// generated here.
//
// JSON tags are snake_case because the API contract predates this server —
// the frontend already sends {"meal_id": ..., "meal_name": ..., "image_url": ...}.
type FavoriteMeal struct {
	UserID   string    `json:"-"`
	MealID   int64     `json:"meal_id"`
	MealName string    `json:"meal_name"`
	ImageURL string    `json:"image_url"`
	AddedAt  time.Time `json:"added_at"`
}

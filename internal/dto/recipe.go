package dto

import (
	"time"

	"recipehub/internal/model"
	"recipehub/internal/optional"
)

// RecipeRequest represents a new recipe.
type RecipeRequest struct {
	Title   string `json:"title" validate:"notblank"`
	Content string `json:"content" validate:"notblank"`
}

// RecipePatchRequest represents a partial recipe update.
type RecipePatchRequest struct {
	Title   optional.Value[string] `json:"title" validate:"omitempty,notblank"`
	Content optional.Value[string] `json:"content" validate:"omitempty,notblank"`
}

// RecipeResponse is the public view of a recipe.
type RecipeResponse struct {
	ID         uint      `json:"id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	UserID     string    `json:"user_id"`
	LikeCount  int64     `json:"like_count"`
	CreatedAt  time.Time `json:"created_at"`
	ModifiedAt time.Time `json:"modified_at"`
}

// NewRecipeResponse maps a recipe with its owner loaded.
func NewRecipeResponse(r *model.Recipe) RecipeResponse {
	return RecipeResponse{
		ID:         r.ID,
		Title:      r.Title,
		Content:    r.Content,
		UserID:     r.User.LoginID,
		LikeCount:  r.LikeCount,
		CreatedAt:  r.CreatedAt,
		ModifiedAt: r.UpdatedAt,
	}
}

// LikeResponse reports a like counter after a change.
type LikeResponse struct {
	ID        uint  `json:"id"`
	LikeCount int64 `json:"like_count"`
}

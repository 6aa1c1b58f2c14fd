package dto

import (
	"time"

	"greenkitchen/internal/http-api/models"
)

// CreateReviewDTO for POST /api/reviews. user_id may be omitted when the
// request carries a token.
type CreateReviewDTO struct {
	RecipeID int64   `json:"recipe_id" binding:"required,gt=0"`
	UserID   int64   `json:"user_id" binding:"gte=0"`
	Rating   int     `json:"rating" binding:"required,min=1,max=5"`
	Comment  *string `json:"comment"`
}

// UpdateReviewDTO for PUT /api/reviews/:id
type UpdateReviewDTO struct {
	Rating  int     `json:"rating" binding:"required,min=1,max=5"`
	Comment *string `json:"comment"`
}

type ReviewResponse struct {
	ID          int64     `json:"id"`
	RecipeID    int64     `json:"recipe_id"`
	UserID      int64     `json:"user_id"`
	Rating      int       `json:"rating"`
	Comment     *string   `json:"comment"`
	CreatedAt   time.Time `json:"created_at"`
	Username    *string   `json:"username,omitempty"`
	RecipeTitle *string   `json:"recipe_title,omitempty"`
}

func FromModelToReviewResponse(r *models.Review) ReviewResponse {
	return ReviewResponse{
		ID:        r.ID,
		RecipeID:  r.RecipeID,
		UserID:    r.UserID,
		Rating:    r.Rating,
		Comment:   r.Comment,
		CreatedAt: r.CreatedAt,
	}
}

func FromDetailToReviewResponse(r models.ReviewDetail) ReviewResponse {
	return ReviewResponse{
		ID:          r.ID,
		RecipeID:    r.RecipeID,
		UserID:      r.UserID,
		Rating:      r.Rating,
		Comment:     r.Comment,
		CreatedAt:   r.CreatedAt,
		Username:    r.Username,
		RecipeTitle: r.RecipeTitle,
	}
}

func FromDetailsToReviewResponses(list []models.ReviewDetail) []ReviewResponse {
	out := make([]ReviewResponse, 0, len(list))
	for _, r := range list {
		out = append(out, FromDetailToReviewResponse(r))
	}
	return out
}

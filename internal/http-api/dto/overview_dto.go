package dto

import "greenkitchen/internal/http-api/models"

type RecipeSummaryResponse struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Author      *string `json:"author"`
	Category    *string `json:"category"`
	Cuisine     *string `json:"cuisine"`
	ReviewCount int64   `json:"review_count"`
	AvgRating   float64 `json:"avg_rating"`
	Tags        *string `json:"tags"`
}

type ActiveUserResponse struct {
	ID             int64  `json:"id"`
	Username       string `json:"username"`
	Email          string `json:"email"`
	RecipesCreated int64  `json:"recipes_created"`
	ReviewsWritten int64  `json:"reviews_written"`
}

type OverviewResponse struct {
	RecipeSummaries []RecipeSummaryResponse `json:"recipeSummaries"`
	RecentReviews   []ReviewResponse        `json:"recentReviews"`
	ActiveUsers     []ActiveUserResponse    `json:"activeUsers"`
}

func FromModelToOverviewResponse(o *models.Overview) OverviewResponse {
	resp := OverviewResponse{
		RecipeSummaries: make([]RecipeSummaryResponse, 0, len(o.RecipeSummaries)),
		RecentReviews:   FromDetailsToReviewResponses(o.RecentReviews),
		ActiveUsers:     make([]ActiveUserResponse, 0, len(o.ActiveUsers)),
	}
	for _, s := range o.RecipeSummaries {
		resp.RecipeSummaries = append(resp.RecipeSummaries, RecipeSummaryResponse(s))
	}
	for _, u := range o.ActiveUsers {
		resp.ActiveUsers = append(resp.ActiveUsers, ActiveUserResponse{
			ID:             u.ID,
			Username:       u.Username,
			Email:          u.Email,
			RecipesCreated: u.RecipesCreated,
			ReviewsWritten: u.ReviewsWritten,
		})
	}
	return resp
}

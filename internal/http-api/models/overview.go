package models

import "time"

type RecipeSummary struct {
	ID          int64
	Title       string
	Author      *string
	Category    *string
	Cuisine     *string
	ReviewCount int64
	AvgRating   float64
	Tags        *string
}

type ActiveUser struct {
	ID             int64
	Username       string
	Email          string
	RecipesCreated int64
	ReviewsWritten int64
	CreatedAt      time.Time
}

type Overview struct {
	RecipeSummaries []RecipeSummary
	RecentReviews   []ReviewDetail
	ActiveUsers     []ActiveUser
}

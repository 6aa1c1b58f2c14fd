package repository

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"greenkitchen/internal/http-api/models"
)

type OverviewRepository interface {
	RecipeSummaries(ctx context.Context, limit int) ([]models.RecipeSummary, error)
	ActiveUsers(ctx context.Context, limit int) ([]models.ActiveUser, error)
}

type overviewRepository struct {
	db *gorm.DB
}

func NewOverviewRepository(db *gorm.DB) OverviewRepository {
	return &overviewRepository{db: db}
}

// RecipeSummaries returns the newest recipes with review figures and their
// tag names sorted and joined with ", ".
func (r *overviewRepository) RecipeSummaries(ctx context.Context, limit int) ([]models.RecipeSummary, error) {
	db := r.db.WithContext(ctx)

	var list []models.RecipeSummary
	if err := db.Table("recipes AS r").
		Select(`r.id, r.title, u.username AS author, c.name AS category, cu.name AS cuisine,
			COUNT(rev.id) AS review_count, COALESCE(ROUND(AVG(rev.rating), 1), 0) AS avg_rating`).
		Joins("LEFT JOIN users u ON r.author_id = u.id").
		Joins("LEFT JOIN categories c ON r.category_id = c.id").
		Joins("LEFT JOIN cuisines cu ON r.cuisine_id = cu.id").
		Joins("LEFT JOIN reviews rev ON rev.recipe_id = r.id").
		Group("r.id, r.title, u.username, c.name, cu.name, r.created_at").
		Order("r.created_at DESC, r.id DESC").
		Limit(limit).
		Scan(&list).Error; err != nil {
		return nil, fmt.Errorf("recipe summaries: %w", err)
	}
	if len(list) == 0 {
		return list, nil
	}

	ids := make([]int64, len(list))
	for i := range list {
		ids[i] = list[i].ID
	}
	tags, err := tagNamesByRecipe(db, ids)
	if err != nil {
		return nil, err
	}
	for i := range list {
		if names := tags[list[i].ID]; len(names) > 0 {
			joined := strings.Join(names, ", ")
			list[i].Tags = &joined
		}
	}
	return list, nil
}

// ActiveUsers ranks users by recipes authored plus reviews written.
func (r *overviewRepository) ActiveUsers(ctx context.Context, limit int) ([]models.ActiveUser, error) {
	var list []models.ActiveUser
	if err := r.db.WithContext(ctx).Table("users AS u").
		Select(`u.id, u.username, u.email, u.created_at,
			COUNT(DISTINCT r.id) AS recipes_created, COUNT(DISTINCT rev.id) AS reviews_written`).
		Joins("LEFT JOIN recipes r ON r.author_id = u.id").
		Joins("LEFT JOIN reviews rev ON rev.user_id = u.id").
		Group("u.id, u.username, u.email, u.created_at").
		Order("COUNT(DISTINCT r.id) + COUNT(DISTINCT rev.id) DESC, u.created_at DESC, u.id DESC").
		Limit(limit).
		Scan(&list).Error; err != nil {
		return nil, fmt.Errorf("active users: %w", err)
	}
	return list, nil
}

package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"greenkitchen/internal/http-api/models"
)

type ReviewRepository interface {
	Create(ctx context.Context, review *models.Review) error
	GetByID(ctx context.Context, id int64) (*models.Review, error)
	Update(ctx context.Context, review *models.Review) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, limit int) ([]models.ReviewDetail, error)
	ListByRecipe(ctx context.Context, recipeID int64) ([]models.ReviewDetail, error)
}

type reviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) Create(ctx context.Context, review *models.Review) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(review).Error; err != nil {
		return fmt.Errorf("create review: %w", err)
	}
	return nil
}

func (r *reviewRepository) GetByID(ctx context.Context, id int64) (*models.Review, error) {
	var review models.Review
	if err := r.db.WithContext(ctx).First(&review, id).Error; err != nil {
		return nil, fmt.Errorf("get review %d: %w", id, err)
	}
	return &review, nil
}

// Update writes rating and comment only.
func (r *reviewRepository) Update(ctx context.Context, review *models.Review) error {
	res := r.db.WithContext(ctx).Model(review).Select("rating", "comment", "updated_at").Updates(review)
	if res.Error != nil {
		return fmt.Errorf("update review %d: %w", review.ID, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("update review %d: %w", review.ID, gorm.ErrRecordNotFound)
	}
	return nil
}

func (r *reviewRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&models.Review{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete review %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("delete review %d: %w", id, gorm.ErrRecordNotFound)
	}
	return nil
}

// List returns reviews newest first. A limit of zero means no limit.
func (r *reviewRepository) List(ctx context.Context, limit int) ([]models.ReviewDetail, error) {
	q := r.detailQuery(ctx)
	if limit > 0 {
		q = q.Limit(limit)
	}
	var list []models.ReviewDetail
	if err := q.Scan(&list).Error; err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	return list, nil
}

func (r *reviewRepository) ListByRecipe(ctx context.Context, recipeID int64) ([]models.ReviewDetail, error) {
	var list []models.ReviewDetail
	if err := r.detailQuery(ctx).Where("rev.recipe_id = ?", recipeID).Scan(&list).Error; err != nil {
		return nil, fmt.Errorf("list reviews of recipe %d: %w", recipeID, err)
	}
	return list, nil
}

func (r *reviewRepository) detailQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("reviews AS rev").
		Select("rev.id, rev.recipe_id, rev.user_id, rev.rating, rev.comment, rev.created_at, u.username, rec.title AS recipe_title").
		Joins("LEFT JOIN users u ON rev.user_id = u.id").
		Joins("LEFT JOIN recipes rec ON rev.recipe_id = rec.id").
		Order("rev.created_at DESC, rev.id DESC")
}

package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"greenkitchen/internal/http-api/models"
)

type IngredientRepository interface {
	NamedRepository[models.Ingredient]
	ListUsage(ctx context.Context) ([]models.NameUsage, error)
	CountUsage(ctx context.Context, id int64) (int64, error)
}

type ingredientRepository struct {
	*namedRepository[models.Ingredient]
}

func NewIngredientRepository(db *gorm.DB) IngredientRepository {
	return &ingredientRepository{&namedRepository[models.Ingredient]{db: db, label: "ingredient", newRow: func(name string) *models.Ingredient {
		return &models.Ingredient{Name: name}
	}}}
}

func (r *ingredientRepository) ListUsage(ctx context.Context) ([]models.NameUsage, error) {
	return listUsage(r.db.WithContext(ctx), "ingredients", "recipe_ingredients", "ingredient_id")
}

// CountUsage reports how many recipe lines reference the ingredient.
func (r *ingredientRepository) CountUsage(ctx context.Context, id int64) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&models.RecipeIngredient{}).Where("ingredient_id = ?", id).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count ingredient usage: %w", err)
	}
	return n, nil
}

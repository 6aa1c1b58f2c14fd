package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"greenkitchen/internal/http-api/models"
)

type RecipeRepository interface {
	Create(ctx context.Context, agg *models.RecipeAggregate) (int64, error)
	Replace(ctx context.Context, id int64, agg *models.RecipeAggregate) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]models.RecipeDetail, error)
	GetByID(ctx context.Context, id int64) (*models.RecipeDetail, error)
	GetAuthorID(ctx context.Context, id int64) (*int64, error)
}

type recipeRepository struct {
	db *gorm.DB
}

func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

// Create inserts the recipe and all of its children in one transaction.
func (r *recipeRepository) Create(ctx context.Context, agg *models.RecipeAggregate) (int64, error) {
	var id int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		rec := agg.Recipe
		rec.ID = 0
		if err := tx.Omit(clause.Associations).Create(&rec).Error; err != nil {
			return fmt.Errorf("insert recipe: %w", err)
		}
		id = rec.ID
		return writeChildren(tx, id, agg)
	})
	if err != nil {
		return 0, fmt.Errorf("create recipe: %w", err)
	}
	return id, nil
}

// Replace overwrites the scalar fields and rewrites every child row.
// The author is never changed.
func (r *recipeRepository) Replace(ctx context.Context, id int64, agg *models.RecipeAggregate) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		rec := agg.Recipe
		res := tx.Model(&models.Recipe{}).Where("id = ?", id).Updates(map[string]interface{}{
			"title":             rec.Title,
			"description":       rec.Description,
			"servings":          rec.Servings,
			"prep_time_minutes": rec.PrepTimeMinutes,
			"cook_time_minutes": rec.CookTimeMinutes,
			"category_id":       rec.CategoryID,
			"cuisine_id":        rec.CuisineID,
		})
		if res.Error != nil {
			return fmt.Errorf("update recipe: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		for _, child := range []interface{}{&models.RecipeIngredient{}, &models.Instruction{}, &models.RecipeTag{}} {
			if err := tx.Where("recipe_id = ?", id).Delete(child).Error; err != nil {
				return fmt.Errorf("clear children: %w", err)
			}
		}
		return writeChildren(tx, id, agg)
	})
	if err != nil {
		return fmt.Errorf("replace recipe %d: %w", id, err)
	}
	return nil
}

// Delete removes the recipe row; children and reviews follow by cascade.
func (r *recipeRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&models.Recipe{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete recipe %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("delete recipe %d: %w", id, gorm.ErrRecordNotFound)
	}
	return nil
}

func (r *recipeRepository) GetAuthorID(ctx context.Context, id int64) (*int64, error) {
	var rec models.Recipe
	if err := r.db.WithContext(ctx).Select("id", "author_id").First(&rec, id).Error; err != nil {
		return nil, fmt.Errorf("get recipe %d: %w", id, err)
	}
	return rec.AuthorID, nil
}

func writeChildren(tx *gorm.DB, recipeID int64, agg *models.RecipeAggregate) error {
	for _, line := range agg.Ingredients {
		ingredientID, err := ResolveOrCreate(tx, KindIngredient, line.Name)
		if err != nil {
			return err
		}
		ri := models.RecipeIngredient{
			RecipeID:     recipeID,
			IngredientID: ingredientID,
			Quantity:     line.Quantity,
			Unit:         line.Unit,
		}
		if err := tx.Omit(clause.Associations).Create(&ri).Error; err != nil {
			return fmt.Errorf("insert recipe ingredient: %w", err)
		}
	}

	if len(agg.Instructions) > 0 {
		steps := make([]models.Instruction, 0, len(agg.Instructions))
		for i, text := range agg.Instructions {
			steps = append(steps, models.Instruction{
				RecipeID:    recipeID,
				StepNumber:  i + 1,
				Description: text,
			})
		}
		if err := tx.Omit(clause.Associations).Create(&steps).Error; err != nil {
			return fmt.Errorf("insert instructions: %w", err)
		}
	}

	for _, name := range agg.Tags {
		tagID, err := ResolveOrCreate(tx, KindTag, name)
		if err != nil {
			return err
		}
		link := models.RecipeTag{RecipeID: recipeID, TagID: tagID}
		if err := tx.Omit(clause.Associations).Clauses(clause.OnConflict{DoNothing: true}).Create(&link).Error; err != nil {
			return fmt.Errorf("link tag: %w", err)
		}
	}
	return nil
}

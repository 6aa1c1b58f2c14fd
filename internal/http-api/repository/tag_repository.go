package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"greenkitchen/internal/http-api/models"
)

type TagRepository interface {
	NamedRepository[models.Tag]
	ListUsage(ctx context.Context) ([]models.NameUsage, error)
	ReplaceRecipes(ctx context.Context, tagID int64, recipeIDs []int64) error
	CopyRecipeTags(ctx context.Context, fromRecipeID, toRecipeID int64) (int, error)
}

type tagRepository struct {
	*namedRepository[models.Tag]
}

func NewTagRepository(db *gorm.DB) TagRepository {
	return &tagRepository{&namedRepository[models.Tag]{db: db, label: "tag", newRow: func(name string) *models.Tag {
		return &models.Tag{Name: name}
	}}}
}

func (r *tagRepository) ListUsage(ctx context.Context) ([]models.NameUsage, error) {
	return listUsage(r.db.WithContext(ctx), "tags", "recipe_tags", "tag_id")
}

// ReplaceRecipes makes recipeIDs the exact set of recipes carrying the tag.
// Unknown tag or recipe ids report gorm.ErrRecordNotFound.
func (r *tagRepository) ReplaceRecipes(ctx context.Context, tagID int64, recipeIDs []int64) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Select("id").First(&models.Tag{}, tagID).Error; err != nil {
			return fmt.Errorf("tag %d: %w", tagID, err)
		}
		if err := requireRecipes(tx, recipeIDs); err != nil {
			return err
		}
		if err := tx.Where("tag_id = ?", tagID).Delete(&models.RecipeTag{}).Error; err != nil {
			return fmt.Errorf("clear tag links: %w", err)
		}
		for _, id := range recipeIDs {
			link := models.RecipeTag{RecipeID: id, TagID: tagID}
			if err := tx.Omit(clause.Associations).Clauses(clause.OnConflict{DoNothing: true}).Create(&link).Error; err != nil {
				return fmt.Errorf("link recipe %d: %w", id, err)
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("replace recipes of tag %d: %w", tagID, err)
	}
	return nil
}

// CopyRecipeTags adds every tag of the source recipe to the target and
// returns how many tags the source has. Nothing is written when it is zero.
func (r *tagRepository) CopyRecipeTags(ctx context.Context, fromRecipeID, toRecipeID int64) (int, error) {
	var copied int
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireRecipes(tx, []int64{fromRecipeID, toRecipeID}); err != nil {
			return err
		}
		var tagIDs []int64
		if err := tx.Model(&models.RecipeTag{}).Where("recipe_id = ?", fromRecipeID).Pluck("tag_id", &tagIDs).Error; err != nil {
			return fmt.Errorf("source tags: %w", err)
		}
		copied = len(tagIDs)
		for _, tagID := range tagIDs {
			link := models.RecipeTag{RecipeID: toRecipeID, TagID: tagID}
			if err := tx.Omit(clause.Associations).Clauses(clause.OnConflict{DoNothing: true}).Create(&link).Error; err != nil {
				return fmt.Errorf("link tag %d: %w", tagID, err)
			}
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("copy tags %d -> %d: %w", fromRecipeID, toRecipeID, err)
	}
	return copied, nil
}

func requireRecipes(tx *gorm.DB, ids []int64) error {
	uniq := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		uniq[id] = struct{}{}
	}
	if len(uniq) == 0 {
		return nil
	}
	var n int64
	if err := tx.Model(&models.Recipe{}).Where("id IN ?", ids).Count(&n).Error; err != nil {
		return fmt.Errorf("check recipes: %w", err)
	}
	if n != int64(len(uniq)) {
		return fmt.Errorf("recipe: %w", gorm.ErrRecordNotFound)
	}
	return nil
}

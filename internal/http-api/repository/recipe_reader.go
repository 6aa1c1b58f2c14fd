package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"greenkitchen/internal/http-api/models"
)

const recipeColumns = `r.id, r.title, r.description, r.servings, r.prep_time_minutes, r.cook_time_minutes,
	r.author_id, r.category_id, r.cuisine_id, r.created_at,
	u.username AS author_name, c.name AS category_name, cu.name AS cuisine_name`

type recipeRow struct {
	ID              int64
	Title           string
	Description     *string
	Servings        *int
	PrepTimeMinutes *int
	CookTimeMinutes *int
	AuthorID        *int64
	CategoryID      *int64
	CuisineID       *int64
	CreatedAt       time.Time
	AuthorName      *string
	CategoryName    *string
	CuisineName     *string
}

func (r *recipeRepository) baseQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("recipes AS r").
		Select(recipeColumns).
		Joins("LEFT JOIN users u ON r.author_id = u.id").
		Joins("LEFT JOIN categories c ON r.category_id = c.id").
		Joins("LEFT JOIN cuisines cu ON r.cuisine_id = cu.id")
}

// List returns every recipe, newest first, with children and rating figures.
func (r *recipeRepository) List(ctx context.Context) ([]models.RecipeDetail, error) {
	var rows []recipeRow
	if err := r.baseQuery(ctx).Order("r.created_at DESC, r.id DESC").Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("list recipes: %w", err)
	}
	return r.assemble(ctx, rows)
}

func (r *recipeRepository) GetByID(ctx context.Context, id int64) (*models.RecipeDetail, error) {
	var rows []recipeRow
	if err := r.baseQuery(ctx).Where("r.id = ?", id).Limit(1).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("get recipe %d: %w", id, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("get recipe %d: %w", id, gorm.ErrRecordNotFound)
	}
	details, err := r.assemble(ctx, rows)
	if err != nil {
		return nil, err
	}
	return &details[0], nil
}

// assemble loads the children of every row with one query per child table.
func (r *recipeRepository) assemble(ctx context.Context, rows []recipeRow) ([]models.RecipeDetail, error) {
	details := make([]models.RecipeDetail, len(rows))
	if len(rows) == 0 {
		return details, nil
	}

	ids := make([]int64, len(rows))
	index := make(map[int64]*models.RecipeDetail, len(rows))
	for i, row := range rows {
		ids[i] = row.ID
		details[i] = models.RecipeDetail{
			Recipe: models.Recipe{
				ID:              row.ID,
				Title:           row.Title,
				Description:     row.Description,
				Servings:        row.Servings,
				PrepTimeMinutes: row.PrepTimeMinutes,
				CookTimeMinutes: row.CookTimeMinutes,
				AuthorID:        row.AuthorID,
				CategoryID:      row.CategoryID,
				CuisineID:       row.CuisineID,
				CreatedAt:       row.CreatedAt,
			},
			AuthorName:   row.AuthorName,
			CategoryName: row.CategoryName,
			CuisineName:  row.CuisineName,
			Ingredients:  []models.IngredientDetail{},
			Instructions: []models.InstructionDetail{},
			Tags:         []string{},
		}
		index[row.ID] = &details[i]
	}

	db := r.db.WithContext(ctx)

	var ingredients []struct {
		RecipeID int64
		models.IngredientDetail
	}
	if err := db.Table("recipe_ingredients AS ri").
		Select("ri.recipe_id, i.id AS ingredient_id, i.name, ri.quantity, ri.unit").
		Joins("JOIN ingredients i ON ri.ingredient_id = i.id").
		Where("ri.recipe_id IN ?", ids).
		Order("ri.id").
		Scan(&ingredients).Error; err != nil {
		return nil, fmt.Errorf("load recipe ingredients: %w", err)
	}
	for _, ing := range ingredients {
		d := index[ing.RecipeID]
		d.Ingredients = append(d.Ingredients, ing.IngredientDetail)
	}

	var steps []struct {
		RecipeID int64
		models.InstructionDetail
	}
	if err := db.Table("instructions").
		Select("recipe_id, step_number, description").
		Where("recipe_id IN ?", ids).
		Order("recipe_id, step_number").
		Scan(&steps).Error; err != nil {
		return nil, fmt.Errorf("load instructions: %w", err)
	}
	for _, st := range steps {
		d := index[st.RecipeID]
		d.Instructions = append(d.Instructions, st.InstructionDetail)
	}

	tags, err := tagNamesByRecipe(db, ids)
	if err != nil {
		return nil, err
	}
	for recipeID, names := range tags {
		index[recipeID].Tags = names
	}

	var ratings []struct {
		RecipeID      int64
		ReviewCount   int64
		AverageRating float64
	}
	if err := db.Table("reviews").
		Select("recipe_id, COUNT(*) AS review_count, ROUND(AVG(rating), 1) AS average_rating").
		Where("recipe_id IN ?", ids).
		Group("recipe_id").
		Scan(&ratings).Error; err != nil {
		return nil, fmt.Errorf("load ratings: %w", err)
	}
	for _, rt := range ratings {
		d := index[rt.RecipeID]
		d.ReviewCount = rt.ReviewCount
		d.AverageRating = rt.AverageRating
	}

	return details, nil
}

// tagNamesByRecipe returns the alphabetical tag names of each recipe.
func tagNamesByRecipe(db *gorm.DB, recipeIDs []int64) (map[int64][]string, error) {
	var links []struct {
		RecipeID int64
		Name     string
	}
	if err := db.Table("recipe_tags AS rt").
		Select("rt.recipe_id, t.name").
		Joins("JOIN tags t ON rt.tag_id = t.id").
		Where("rt.recipe_id IN ?", recipeIDs).
		Order("t.name").
		Scan(&links).Error; err != nil {
		return nil, fmt.Errorf("load recipe tags: %w", err)
	}
	out := make(map[int64][]string)
	for _, l := range links {
		out[l.RecipeID] = append(out[l.RecipeID], l.Name)
	}
	return out, nil
}

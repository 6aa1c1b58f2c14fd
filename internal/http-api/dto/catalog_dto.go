package dto

import "greenkitchen/internal/http-api/models"

// NameDTO for creating or renaming a category, cuisine, ingredient or tag
type NameDTO struct {
	Name string `json:"name" binding:"required,notblank,max=100"`
}

type NamedResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func CategoryFromModel(c models.Category) NamedResponse {
	return NamedResponse{ID: c.ID, Name: c.Name}
}

func CuisineFromModel(c models.Cuisine) NamedResponse {
	return NamedResponse{ID: c.ID, Name: c.Name}
}

func IngredientFromModel(i models.Ingredient) NamedResponse {
	return NamedResponse{ID: i.ID, Name: i.Name}
}

func TagFromModel(t models.Tag) NamedResponse {
	return NamedResponse{ID: t.ID, Name: t.Name}
}

// UsageResponse lists a named row with the recipes that use it.
type UsageResponse struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	RecipeIDs []int64 `json:"recipe_ids"`
}

func FromUsages(list []models.NameUsage) []UsageResponse {
	out := make([]UsageResponse, 0, len(list))
	for _, u := range list {
		ids := u.RecipeIDs
		if ids == nil {
			ids = []int64{}
		}
		out = append(out, UsageResponse{ID: u.ID, Name: u.Name, RecipeIDs: ids})
	}
	return out
}

// TagRecipesDTO for PUT /api/tags/:id/recipes
type TagRecipesDTO struct {
	RecipeIDs []int64 `json:"recipe_ids" binding:"required"`
}

// CopyTagsDTO for POST /api/tags/copy-recipe-tags
type CopyTagsDTO struct {
	FromRecipeID int64 `json:"from_recipe_id"`
	ToRecipeID   int64 `json:"to_recipe_id"`
}

type CopyTagsResponse struct {
	Message string `json:"message"`
	Copied  int    `json:"copied"`
}

package dto

import (
	"bytes"
	"encoding/json"
	"sort"
	"strings"
	"time"

	"greenkitchen/internal/http-api/models"
)

// Quantity accepts a JSON string, number or null. Empty strings read as null.
type Quantity struct {
	Value *string `json:"quantity" binding:"omitempty,max=50"`
}

func (q *Quantity) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		q.Value = nil
		return nil
	}
	var s string
	if len(data) > 0 && data[0] == '"' {
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
	} else {
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return err
		}
		s = n.String()
	}
	q.Value = optionalString(&s)
	return nil
}

type IngredientInput struct {
	Name     string   `json:"name" binding:"max=255"`
	Quantity Quantity `json:"quantity"`
	Unit     *string  `json:"unit" binding:"omitempty,max=50"`
}

type InstructionInput struct {
	StepNumber  int    `json:"step_number"`
	Description string `json:"description"`
}

// RecipeRequest for POST /api/recipes and PUT /api/recipes/:id
type RecipeRequest struct {
	Title           string             `json:"title" binding:"required,notblank,max=255"`
	Description     *string            `json:"description"`
	Servings        *int               `json:"servings" binding:"omitempty,gte=0"`
	PrepTimeMinutes *int               `json:"prep_time_minutes" binding:"omitempty,gte=0"`
	CookTimeMinutes *int               `json:"cook_time_minutes" binding:"omitempty,gte=0"`
	AuthorID        *int64             `json:"author_id"`
	CategoryID      *int64             `json:"category_id"`
	CuisineID       *int64             `json:"cuisine_id"`
	Ingredients     []IngredientInput  `json:"ingredients" binding:"dive"`
	Instructions    []InstructionInput `json:"instructions"`
	Tags            []string           `json:"tags" binding:"dive,max=100"`
}

// ToAggregate maps the payload onto the write model. Blank ingredients,
// steps and tags are dropped, tags are de-duplicated, and steps follow
// their step_number when every step has a positive one.
func (r *RecipeRequest) ToAggregate() *models.RecipeAggregate {
	agg := &models.RecipeAggregate{
		Recipe: models.Recipe{
			Title:           strings.TrimSpace(r.Title),
			Description:     r.Description,
			Servings:        r.Servings,
			PrepTimeMinutes: r.PrepTimeMinutes,
			CookTimeMinutes: r.CookTimeMinutes,
			AuthorID:        positive(r.AuthorID),
			CategoryID:      positive(r.CategoryID),
			CuisineID:       positive(r.CuisineID),
		},
	}

	for _, ing := range r.Ingredients {
		name := strings.TrimSpace(ing.Name)
		if name == "" {
			continue
		}
		agg.Ingredients = append(agg.Ingredients, models.IngredientLine{
			Name:     name,
			Quantity: ing.Quantity.Value,
			Unit:     optionalString(ing.Unit),
		})
	}

	steps := make([]InstructionInput, 0, len(r.Instructions))
	numbered := true
	for _, st := range r.Instructions {
		if strings.TrimSpace(st.Description) == "" {
			continue
		}
		if st.StepNumber <= 0 {
			numbered = false
		}
		steps = append(steps, st)
	}
	if numbered {
		sort.SliceStable(steps, func(i, j int) bool { return steps[i].StepNumber < steps[j].StepNumber })
	}
	for _, st := range steps {
		agg.Instructions = append(agg.Instructions, strings.TrimSpace(st.Description))
	}

	seen := make(map[string]bool, len(r.Tags))
	for _, tag := range r.Tags {
		tag = strings.TrimSpace(tag)
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		agg.Tags = append(agg.Tags, tag)
	}
	return agg
}

func optionalString(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

func positive(id *int64) *int64 {
	if id == nil || *id <= 0 {
		return nil
	}
	return id
}

type IngredientResponse struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Quantity *string `json:"quantity"`
	Unit     *string `json:"unit"`
}

type InstructionResponse struct {
	StepNumber  int    `json:"step_number"`
	Description string `json:"description"`
}

type RecipeResponse struct {
	ID              int64                 `json:"id"`
	Title           string                `json:"title"`
	Description     *string               `json:"description"`
	Servings        *int                  `json:"servings"`
	PrepTimeMinutes *int                  `json:"prep_time_minutes"`
	CookTimeMinutes *int                  `json:"cook_time_minutes"`
	AuthorID        *int64                `json:"author_id"`
	CategoryID      *int64                `json:"category_id"`
	CuisineID       *int64                `json:"cuisine_id"`
	CreatedAt       time.Time             `json:"created_at"`
	AuthorName      *string               `json:"author_name"`
	CategoryName    *string               `json:"category_name"`
	CuisineName     *string               `json:"cuisine_name"`
	Ingredients     []IngredientResponse  `json:"ingredients"`
	Instructions    []InstructionResponse `json:"instructions"`
	Tags            []string              `json:"tags"`
	ReviewCount     int64                 `json:"review_count"`
	AverageRating   float64               `json:"average_rating"`
}

// FromModelToRecipeResponse converts a RecipeDetail to RecipeResponse DTO
func FromModelToRecipeResponse(d *models.RecipeDetail) RecipeResponse {
	resp := RecipeResponse{
		ID:              d.ID,
		Title:           d.Title,
		Description:     d.Description,
		Servings:        d.Servings,
		PrepTimeMinutes: d.PrepTimeMinutes,
		CookTimeMinutes: d.CookTimeMinutes,
		AuthorID:        d.AuthorID,
		CategoryID:      d.CategoryID,
		CuisineID:       d.CuisineID,
		CreatedAt:       d.CreatedAt,
		AuthorName:      d.AuthorName,
		CategoryName:    d.CategoryName,
		CuisineName:     d.CuisineName,
		Ingredients:     make([]IngredientResponse, 0, len(d.Ingredients)),
		Instructions:    make([]InstructionResponse, 0, len(d.Instructions)),
		Tags:            d.Tags,
		ReviewCount:     d.ReviewCount,
		AverageRating:   d.AverageRating,
	}
	if resp.Tags == nil {
		resp.Tags = []string{}
	}
	for _, ing := range d.Ingredients {
		resp.Ingredients = append(resp.Ingredients, IngredientResponse{
			ID:       ing.IngredientID,
			Name:     ing.Name,
			Quantity: ing.Quantity,
			Unit:     ing.Unit,
		})
	}
	for _, st := range d.Instructions {
		resp.Instructions = append(resp.Instructions, InstructionResponse{StepNumber: st.StepNumber, Description: st.Description})
	}
	return resp
}

type CreatedResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

package models

import "time"

type Recipe struct {
	ID              int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Title           string    `json:"title" gorm:"size:255;not null"`
	Description     *string   `json:"description" gorm:"type:text"`
	Servings        *int      `json:"servings"`
	PrepTimeMinutes *int      `json:"prep_time_minutes"`
	CookTimeMinutes *int      `json:"cook_time_minutes"`
	AuthorID        *int64    `json:"author_id" gorm:"index"`
	CategoryID      *int64    `json:"category_id" gorm:"index"`
	CuisineID       *int64    `json:"cuisine_id" gorm:"index"`
	CreatedAt       time.Time `json:"created_at" gorm:"autoCreateTime"`

	// Associations
	Author   *User     `json:"-" gorm:"foreignKey:AuthorID;constraint:OnDelete:SET NULL;"`
	Category *Category `json:"-" gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL;"`
	Cuisine  *Cuisine  `json:"-" gorm:"foreignKey:CuisineID;constraint:OnDelete:SET NULL;"`
}

func (Recipe) TableName() string {
	return "recipes"
}

type RecipeIngredient struct {
	ID           int64   `json:"id" gorm:"primaryKey;autoIncrement"`
	RecipeID     int64   `json:"recipe_id" gorm:"not null;index"`
	IngredientID int64   `json:"ingredient_id" gorm:"not null;index"`
	Quantity     *string `json:"quantity" gorm:"size:50"`
	Unit         *string `json:"unit" gorm:"size:50"`

	// Associations
	Recipe     *Recipe     `json:"-" gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE;"`
	Ingredient *Ingredient `json:"-" gorm:"foreignKey:IngredientID;constraint:OnDelete:RESTRICT;"`
}

func (RecipeIngredient) TableName() string {
	return "recipe_ingredients"
}

type Instruction struct {
	ID          int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	RecipeID    int64  `json:"recipe_id" gorm:"not null;uniqueIndex:idx_instruction_step"`
	StepNumber  int    `json:"step_number" gorm:"not null;uniqueIndex:idx_instruction_step"`
	Description string `json:"description" gorm:"type:text;not null"`

	// Associations
	Recipe *Recipe `json:"-" gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE;"`
}

func (Instruction) TableName() string {
	return "instructions"
}

// IngredientLine is one ingredient of a recipe as written by a client:
// the ingredient is referenced by name and resolved on save.
type IngredientLine struct {
	Name     string
	Quantity *string
	Unit     *string
}

// RecipeAggregate is a recipe together with the child rows that are
// always written as a unit. Instructions are stored in slice order.
type RecipeAggregate struct {
	Recipe       Recipe
	Ingredients  []IngredientLine
	Instructions []string
	Tags         []string
}

// RecipeDetail is the read shape of a recipe with joined names,
// children and rating figures.
type RecipeDetail struct {
	Recipe
	AuthorName    *string
	CategoryName  *string
	CuisineName   *string
	Ingredients   []IngredientDetail
	Instructions  []InstructionDetail
	Tags          []string
	ReviewCount   int64
	AverageRating float64
}

type IngredientDetail struct {
	IngredientID int64
	Name         string
	Quantity     *string
	Unit         *string
}

type InstructionDetail struct {
	StepNumber  int
	Description string
}

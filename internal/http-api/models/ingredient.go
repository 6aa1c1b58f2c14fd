package models

type Ingredient struct {
	ID   int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	Name string `json:"name" gorm:"uniqueIndex;size:255;not null"`
}

func (Ingredient) TableName() string {
	return "ingredients"
}

func (i *Ingredient) PrimaryID() int64 { return i.ID }

// NameUsage is a named lookup row together with the recipes referencing it.
type NameUsage struct {
	ID        int64
	Name      string
	RecipeIDs []int64
}

package models

// Category and Cuisine are optional classifications on a recipe.
type Category struct {
	ID   int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	Name string `json:"name" gorm:"uniqueIndex;size:100;not null"`
}

func (Category) TableName() string {
	return "categories"
}

type Cuisine struct {
	ID   int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	Name string `json:"name" gorm:"uniqueIndex;size:100;not null"`
}

func (Cuisine) TableName() string {
	return "cuisines"
}

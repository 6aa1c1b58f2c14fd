package models

type Tag struct {
	ID   int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	Name string `json:"name" gorm:"uniqueIndex;size:100;not null"`
}

func (Tag) TableName() string {
	return "tags"
}

func (t *Tag) PrimaryID() int64 { return t.ID }

// RecipeTag links a recipe to a tag. The pair is the primary key.
type RecipeTag struct {
	RecipeID int64 `json:"recipe_id" gorm:"primaryKey;autoIncrement:false"`
	TagID    int64 `json:"tag_id" gorm:"primaryKey;autoIncrement:false;index"`

	// Associations
	Recipe *Recipe `json:"-" gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE;"`
	Tag    *Tag    `json:"-" gorm:"foreignKey:TagID;constraint:OnDelete:CASCADE;"`
}

func (RecipeTag) TableName() string {
	return "recipe_tags"
}

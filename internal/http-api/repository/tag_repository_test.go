package repository

import (
	"errors"

	"gorm.io/gorm"

	"greenkitchen/internal/http-api/models"
)

func (s *RepositorySuite) tagID(name string) int64 {
	var tag models.Tag
	s.Require().NoError(s.db.Where("name = ?", name).First(&tag).Error)
	return tag.ID
}

func (s *RepositorySuite) TestReplaceRecipesIsFullReplace() {
	a := s.createRecipe("A", nil, "Vegan")
	b := s.createRecipe("B", nil)
	c := s.createRecipe("C", nil)
	vegan := s.tagID("Vegan")

	s.Require().NoError(s.tags.ReplaceRecipes(s.ctx, vegan, []int64{b, c, c}))

	var linked []int64
	s.Require().NoError(s.db.Model(&models.RecipeTag{}).Where("tag_id = ?", vegan).Order("recipe_id").Pluck("recipe_id", &linked).Error)
	s.Equal([]int64{b, c}, linked)
	s.NotContains(linked, a)

	s.Require().NoError(s.tags.ReplaceRecipes(s.ctx, vegan, []int64{}))
	s.Zero(s.count(&models.RecipeTag{}, "tag_id = ?", vegan))
}

func (s *RepositorySuite) TestReplaceRecipesUnknownIDs() {
	a := s.createRecipe("A", nil, "Vegan")
	vegan := s.tagID("Vegan")

	err := s.tags.ReplaceRecipes(s.ctx, 999, []int64{a})
	s.True(errors.Is(err, gorm.ErrRecordNotFound))

	err = s.tags.ReplaceRecipes(s.ctx, vegan, []int64{a, 999})
	s.True(errors.Is(err, gorm.ErrRecordNotFound))
	// the failed call left the original link alone
	s.EqualValues(1, s.count(&models.RecipeTag{}, "tag_id = ? AND recipe_id = ?", vegan, a))
}

func (s *RepositorySuite) TestCopyRecipeTagsIsUnion() {
	from := s.createRecipe("From", nil, "Quick", "Vegan")
	to := s.createRecipe("To", nil, "Vegan", "Dinner")

	n, err := s.tags.CopyRecipeTags(s.ctx, from, to)
	s.Require().NoError(err)
	s.Equal(2, n)

	got, err := s.recipes.GetByID(s.ctx, to)
	s.Require().NoError(err)
	s.Equal([]string{"Dinner", "Quick", "Vegan"}, got.Tags)
}

func (s *RepositorySuite) TestCopyRecipeTagsEmptySource() {
	from := s.createRecipe("From", nil)
	to := s.createRecipe("To", nil, "Dinner")

	n, err := s.tags.CopyRecipeTags(s.ctx, from, to)
	s.Require().NoError(err)
	s.Zero(n)

	_, err = s.tags.CopyRecipeTags(s.ctx, from, 999)
	s.True(errors.Is(err, gorm.ErrRecordNotFound))
}

func (s *RepositorySuite) TestListUsage() {
	a := s.createRecipe("A", nil, "Quick")
	b := s.createRecipe("B", nil, "Quick")
	_, err := s.tags.Create(s.ctx, "Unused")
	s.Require().NoError(err)

	list, err := s.tags.ListUsage(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(list, 2)
	s.Equal("Quick", list[0].Name)
	s.Equal([]int64{a, b}, list[0].RecipeIDs)
	s.Equal("Unused", list[1].Name)
	s.Empty(list[1].RecipeIDs)
}

func (s *RepositorySuite) TestNamedRepository() {
	categories := NewCategoryRepository(s.db)

	dessert, err := categories.Create(s.ctx, "Dessert")
	s.Require().NoError(err)
	_, err = categories.Create(s.ctx, "Dessert")
	s.True(errors.Is(err, gorm.ErrDuplicatedKey))

	renamed, err := categories.Rename(s.ctx, dessert.ID, "Sweets")
	s.Require().NoError(err)
	s.Equal("Sweets", renamed.Name)

	_, err = categories.Rename(s.ctx, 999, "Nope")
	s.True(errors.Is(err, gorm.ErrRecordNotFound))

	id, err := s.recipes.Create(s.ctx, &models.RecipeAggregate{Recipe: models.Recipe{Title: "Cake", CategoryID: &dessert.ID}})
	s.Require().NoError(err)

	s.Require().NoError(categories.Delete(s.ctx, dessert.ID))
	got, err := s.recipes.GetByID(s.ctx, id)
	s.Require().NoError(err)
	s.Nil(got.CategoryID)
}

func (s *RepositorySuite) TestIngredientUsage() {
	ingredients := NewIngredientRepository(s.db)
	_, err := s.recipes.Create(s.ctx, pancakes(nil))
	s.Require().NoError(err)

	list, err := ingredients.ListUsage(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(list, 3)
	s.Equal("Egg", list[0].Name)

	n, err := ingredients.CountUsage(s.ctx, list[0].ID)
	s.Require().NoError(err)
	s.EqualValues(1, n)
}

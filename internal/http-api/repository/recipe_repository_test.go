package repository

import (
	"errors"

	"gorm.io/gorm"

	"greenkitchen/internal/http-api/models"
)

func pancakes(authorID *int64) *models.RecipeAggregate {
	return &models.RecipeAggregate{
		Recipe: models.Recipe{Title: "Pancakes", Description: strPtr("Fluffy"), AuthorID: authorID},
		Ingredients: []models.IngredientLine{
			{Name: "Flour", Quantity: strPtr("200"), Unit: strPtr("g")},
			{Name: "Egg", Quantity: strPtr("2")},
			{Name: "Salt"},
		},
		Instructions: []string{"Mix", "Rest", "Fry"},
		Tags:         []string{"Quick", "Breakfast"},
	}
}

func (s *RepositorySuite) TestCreateThenGet() {
	author := s.createUser("ana")
	id, err := s.recipes.Create(s.ctx, pancakes(&author.ID))
	s.Require().NoError(err)

	got, err := s.recipes.GetByID(s.ctx, id)
	s.Require().NoError(err)

	s.Equal("Pancakes", got.Title)
	s.Equal("ana", *got.AuthorName)
	s.Nil(got.CategoryName)

	s.Require().Len(got.Ingredients, 3)
	s.Equal("Flour", got.Ingredients[0].Name)
	s.Equal("200", *got.Ingredients[0].Quantity)
	s.Equal("g", *got.Ingredients[0].Unit)
	s.Equal("Egg", got.Ingredients[1].Name)
	s.Nil(got.Ingredients[1].Unit)
	s.Equal("Salt", got.Ingredients[2].Name)
	s.Nil(got.Ingredients[2].Quantity)

	s.Require().Len(got.Instructions, 3)
	for i, step := range got.Instructions {
		s.Equal(i+1, step.StepNumber)
	}
	s.Equal("Fry", got.Instructions[2].Description)

	s.Equal([]string{"Breakfast", "Quick"}, got.Tags)
	s.Zero(got.ReviewCount)
	s.Zero(got.AverageRating)
}

func (s *RepositorySuite) TestGetMissing() {
	_, err := s.recipes.GetByID(s.ctx, 404)
	s.True(errors.Is(err, gorm.ErrRecordNotFound))
}

func (s *RepositorySuite) TestResolverReusesRowsAcrossRecipes() {
	s.createRecipe("A", nil, "Quick")
	s.createRecipe("B", nil, "Quick", "quick")

	_, err := s.recipes.Create(s.ctx, &models.RecipeAggregate{
		Recipe:      models.Recipe{Title: "C"},
		Ingredients: []models.IngredientLine{{Name: "Salt"}, {Name: "Salt"}, {Name: "salt"}},
	})
	s.Require().NoError(err)

	s.EqualValues(1, s.count(&models.Tag{}, "name = ?", "Quick"))
	s.EqualValues(2, s.count(&models.Tag{}))
	s.EqualValues(2, s.count(&models.Ingredient{}))
	s.EqualValues(3, s.count(&models.RecipeIngredient{}))
}

func (s *RepositorySuite) TestResolveOrCreate() {
	var first, second int64
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var err error
		if first, err = ResolveOrCreate(tx, KindIngredient, "Basil"); err != nil {
			return err
		}
		second, err = ResolveOrCreate(tx, KindIngredient, "Basil")
		return err
	})
	s.Require().NoError(err)
	s.NotZero(first)
	s.Equal(first, second)

	err = s.db.Transaction(func(tx *gorm.DB) error {
		_, err := ResolveOrCreate(tx, KindTag, "")
		return err
	})
	s.ErrorIs(err, ErrBlankName)
}

func (s *RepositorySuite) TestReplaceIsIdempotent() {
	id, err := s.recipes.Create(s.ctx, pancakes(nil))
	s.Require().NoError(err)

	next := pancakes(nil)
	next.Recipe.Title = "Crepes"
	next.Instructions = []string{"Whisk", "Fry"}
	next.Tags = []string{"French"}

	s.Require().NoError(s.recipes.Replace(s.ctx, id, next))
	once, err := s.recipes.GetByID(s.ctx, id)
	s.Require().NoError(err)

	s.Require().NoError(s.recipes.Replace(s.ctx, id, next))
	twice, err := s.recipes.GetByID(s.ctx, id)
	s.Require().NoError(err)

	s.Equal("Crepes", twice.Title)
	s.Equal(once.Ingredients, twice.Ingredients)
	s.Equal(once.Instructions, twice.Instructions)
	s.Equal([]string{"French"}, twice.Tags)
	s.EqualValues(3, s.count(&models.RecipeIngredient{}, "recipe_id = ?", id))
	s.EqualValues(2, s.count(&models.Instruction{}, "recipe_id = ?", id))
	s.EqualValues(1, s.count(&models.RecipeTag{}, "recipe_id = ?", id))
}

func (s *RepositorySuite) TestReplaceKeepsAuthor() {
	author := s.createUser("ana")
	id := s.createRecipe("Soup", &author.ID)

	other := s.createUser("ben")
	next := pancakes(&other.ID)
	s.Require().NoError(s.recipes.Replace(s.ctx, id, next))

	authorID, err := s.recipes.GetAuthorID(s.ctx, id)
	s.Require().NoError(err)
	s.Equal(author.ID, *authorID)
}

func (s *RepositorySuite) TestReplaceMissingWritesNothing() {
	err := s.recipes.Replace(s.ctx, 99, pancakes(nil))
	s.True(errors.Is(err, gorm.ErrRecordNotFound))
	s.Zero(s.count(&models.Ingredient{}))
	s.Zero(s.count(&models.Instruction{}))
	s.Zero(s.count(&models.Tag{}))
}

func (s *RepositorySuite) TestCreateRollsBackOnFailure() {
	// the blank tag fails after the recipe, its ingredients, steps and
	// first tag are already written inside the transaction
	agg := pancakes(nil)
	agg.Tags = []string{"Quick", ""}

	_, err := s.recipes.Create(s.ctx, agg)
	s.Require().ErrorIs(err, ErrBlankName)

	s.Zero(s.count(&models.Recipe{}))
	s.Zero(s.count(&models.Ingredient{}))
	s.Zero(s.count(&models.RecipeIngredient{}))
	s.Zero(s.count(&models.Instruction{}))
	s.Zero(s.count(&models.Tag{}))
	s.Zero(s.count(&models.RecipeTag{}))
}

func (s *RepositorySuite) TestCreateRejectsUnknownCategory() {
	bad := int64(999)
	agg := pancakes(nil)
	agg.Recipe.CategoryID = &bad

	_, err := s.recipes.Create(s.ctx, agg)
	s.Require().Error(err)
	s.Zero(s.count(&models.Recipe{}))
}

func (s *RepositorySuite) TestDeleteCascades() {
	author := s.createUser("ana")
	reviewer := s.createUser("ben")
	id, err := s.recipes.Create(s.ctx, pancakes(&author.ID))
	s.Require().NoError(err)
	s.addReview(id, reviewer.ID, 4)

	s.Require().NoError(s.recipes.Delete(s.ctx, id))

	s.Zero(s.count(&models.RecipeIngredient{}))
	s.Zero(s.count(&models.Instruction{}))
	s.Zero(s.count(&models.RecipeTag{}))
	s.Zero(s.count(&models.Review{}))
	// lookup rows outlive the recipe
	s.EqualValues(3, s.count(&models.Ingredient{}))

	s.True(errors.Is(s.recipes.Delete(s.ctx, id), gorm.ErrRecordNotFound))
}

func (s *RepositorySuite) TestListNewestFirstWithRatings() {
	a := s.createUser("ana")
	b := s.createUser("ben")
	c := s.createUser("cy")
	first := s.createRecipe("First", &a.ID)
	second := s.createRecipe("Second", &a.ID, "Quick")
	s.addReview(first, b.ID, 5)
	s.addReview(first, c.ID, 4)

	list, err := s.recipes.List(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(list, 2)

	s.Equal(second, list[0].ID)
	s.Equal([]string{"Quick"}, list[0].Tags)
	s.NotNil(list[0].Ingredients)
	s.Equal(first, list[1].ID)
	s.EqualValues(2, list[1].ReviewCount)
	s.InDelta(4.5, list[1].AverageRating, 0.001)
}

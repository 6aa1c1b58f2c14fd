package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"greenkitchen/internal/http-api/models"
)

type MockRecipeRepository struct {
	mock.Mock
}

func (m *MockRecipeRepository) Create(ctx context.Context, agg *models.RecipeAggregate) (int64, error) {
	args := m.Called(ctx, agg)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRecipeRepository) Replace(ctx context.Context, id int64, agg *models.RecipeAggregate) error {
	return m.Called(ctx, id, agg).Error(0)
}

func (m *MockRecipeRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockRecipeRepository) List(ctx context.Context) ([]models.RecipeDetail, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.RecipeDetail), args.Error(1)
}

func (m *MockRecipeRepository) GetByID(ctx context.Context, id int64) (*models.RecipeDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.RecipeDetail), args.Error(1)
}

func (m *MockRecipeRepository) GetAuthorID(ctx context.Context, id int64) (*int64, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*int64), args.Error(1)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	if args.Error(0) == nil {
		user.ID = 1
	}
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) ExistsByUsernameOrEmail(ctx context.Context, username, email string, excludeID int64) (bool, error) {
	args := m.Called(ctx, username, email, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, id int64, fields map[string]interface{}) error {
	return m.Called(ctx, id, fields).Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockReviewRepository struct {
	mock.Mock
}

func (m *MockReviewRepository) Create(ctx context.Context, review *models.Review) error {
	args := m.Called(ctx, review)
	if args.Error(0) == nil {
		review.ID = 10
	}
	return args.Error(0)
}

func (m *MockReviewRepository) GetByID(ctx context.Context, id int64) (*models.Review, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Review), args.Error(1)
}

func (m *MockReviewRepository) Update(ctx context.Context, review *models.Review) error {
	return m.Called(ctx, review).Error(0)
}

func (m *MockReviewRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockReviewRepository) List(ctx context.Context, limit int) ([]models.ReviewDetail, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ReviewDetail), args.Error(1)
}

func (m *MockReviewRepository) ListByRecipe(ctx context.Context, recipeID int64) ([]models.ReviewDetail, error) {
	args := m.Called(ctx, recipeID)
	return args.Get(0).([]models.ReviewDetail), args.Error(1)
}

type MockTagRepository struct {
	mock.Mock
}

func (m *MockTagRepository) List(ctx context.Context) ([]models.Tag, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Tag), args.Error(1)
}

func (m *MockTagRepository) GetByID(ctx context.Context, id int64) (*models.Tag, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Tag), args.Error(1)
}

func (m *MockTagRepository) Create(ctx context.Context, name string) (*models.Tag, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Tag), args.Error(1)
}

func (m *MockTagRepository) Rename(ctx context.Context, id int64, name string) (*models.Tag, error) {
	args := m.Called(ctx, id, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Tag), args.Error(1)
}

func (m *MockTagRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockTagRepository) ListUsage(ctx context.Context) ([]models.NameUsage, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.NameUsage), args.Error(1)
}

func (m *MockTagRepository) ReplaceRecipes(ctx context.Context, tagID int64, recipeIDs []int64) error {
	return m.Called(ctx, tagID, recipeIDs).Error(0)
}

func (m *MockTagRepository) CopyRecipeTags(ctx context.Context, fromRecipeID, toRecipeID int64) (int, error) {
	args := m.Called(ctx, fromRecipeID, toRecipeID)
	return args.Int(0), args.Error(1)
}

type MockOverviewRepository struct {
	mock.Mock
}

func (m *MockOverviewRepository) RecipeSummaries(ctx context.Context, limit int) ([]models.RecipeSummary, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.RecipeSummary), args.Error(1)
}

func (m *MockOverviewRepository) ActiveUsers(ctx context.Context, limit int) ([]models.ActiveUser, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ActiveUser), args.Error(1)
}

func id64(v int64) *int64 { return &v }

type MockIngredientRepository struct {
	mock.Mock
}

func (m *MockIngredientRepository) List(ctx context.Context) ([]models.Ingredient, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Ingredient), args.Error(1)
}

func (m *MockIngredientRepository) GetByID(ctx context.Context, id int64) (*models.Ingredient, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Ingredient), args.Error(1)
}

func (m *MockIngredientRepository) Create(ctx context.Context, name string) (*models.Ingredient, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Ingredient), args.Error(1)
}

func (m *MockIngredientRepository) Rename(ctx context.Context, id int64, name string) (*models.Ingredient, error) {
	args := m.Called(ctx, id, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Ingredient), args.Error(1)
}

func (m *MockIngredientRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockIngredientRepository) ListUsage(ctx context.Context) ([]models.NameUsage, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.NameUsage), args.Error(1)
}

func (m *MockIngredientRepository) CountUsage(ctx context.Context, id int64) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

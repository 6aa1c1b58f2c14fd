package service

import (
	"context"
	"strings"

	"greenkitchen/internal/http-api/models"
	"greenkitchen/internal/http-api/repository"
)

type RecipeService interface {
	List(ctx context.Context) ([]models.RecipeDetail, error)
	Get(ctx context.Context, id int64) (*models.RecipeDetail, error)
	Create(ctx context.Context, caller *int64, agg *models.RecipeAggregate) (int64, error)
	Replace(ctx context.Context, caller *int64, id int64, agg *models.RecipeAggregate) error
	Delete(ctx context.Context, caller *int64, id int64) error
}

type recipeService struct {
	recipes repository.RecipeRepository
	users   repository.UserRepository
	owners  Ownership
}

func NewRecipeService(recipes repository.RecipeRepository, users repository.UserRepository, owners Ownership) RecipeService {
	return &recipeService{recipes: recipes, users: users, owners: owners}
}

func (s *recipeService) List(ctx context.Context) ([]models.RecipeDetail, error) {
	return s.recipes.List(ctx)
}

func (s *recipeService) Get(ctx context.Context, id int64) (*models.RecipeDetail, error) {
	d, err := s.recipes.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, ErrRecipeNotFound)
	}
	return d, nil
}

func (s *recipeService) Create(ctx context.Context, caller *int64, agg *models.RecipeAggregate) (int64, error) {
	if err := checkTitle(agg); err != nil {
		return 0, err
	}

	var claimed int64
	if agg.Recipe.AuthorID != nil {
		claimed = *agg.Recipe.AuthorID
	}
	authorID, err := s.owners.actingAs(caller, claimed)
	if err != nil {
		return 0, err
	}
	agg.Recipe.AuthorID = nil
	if authorID != 0 {
		if _, err := s.users.GetByID(ctx, authorID); err != nil {
			return 0, notFound(err, ErrUserNotFound)
		}
		agg.Recipe.AuthorID = &authorID
	}

	return s.recipes.Create(ctx, agg)
}

func (s *recipeService) Replace(ctx context.Context, caller *int64, id int64, agg *models.RecipeAggregate) error {
	if err := checkTitle(agg); err != nil {
		return err
	}
	if err := s.authorize(ctx, caller, id); err != nil {
		return err
	}
	// The author is set at creation; a body may only repeat the caller.
	if agg.Recipe.AuthorID != nil {
		if _, err := s.owners.actingAs(caller, *agg.Recipe.AuthorID); err != nil {
			return err
		}
	}
	if err := s.recipes.Replace(ctx, id, agg); err != nil {
		return notFound(err, ErrRecipeNotFound)
	}
	return nil
}

func (s *recipeService) Delete(ctx context.Context, caller *int64, id int64) error {
	if err := s.authorize(ctx, caller, id); err != nil {
		return err
	}
	if err := s.recipes.Delete(ctx, id); err != nil {
		return notFound(err, ErrRecipeNotFound)
	}
	return nil
}

// authorize checks the caller is the recipe's author when ownership is enforced.
func (s *recipeService) authorize(ctx context.Context, caller *int64, id int64) error {
	if !s.owners.Enforce {
		return nil
	}
	if caller == nil {
		return ErrUnauthenticated
	}
	authorID, err := s.recipes.GetAuthorID(ctx, id)
	if err != nil {
		return notFound(err, ErrRecipeNotFound)
	}
	return s.owners.mayModify(caller, authorID)
}

func checkTitle(agg *models.RecipeAggregate) error {
	agg.Recipe.Title = strings.TrimSpace(agg.Recipe.Title)
	if agg.Recipe.Title == "" {
		return ErrTitleRequired
	}
	return nil
}

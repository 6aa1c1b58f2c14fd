package service

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"greenkitchen/internal/http-api/models"
	"greenkitchen/internal/http-api/repository"
)

// NamedService manages a table of unique names: categories, cuisines,
// ingredients and tags.
type NamedService[T any] interface {
	List(ctx context.Context) ([]T, error)
	Get(ctx context.Context, id int64) (*T, error)
	Create(ctx context.Context, name string) (*T, error)
	Rename(ctx context.Context, id int64, name string) (*T, error)
	Delete(ctx context.Context, id int64) error
}

type namedService[T any] struct {
	repo        repository.NamedRepository[T]
	errNotFound error
}

func NewCategoryService(repo repository.NamedRepository[models.Category]) NamedService[models.Category] {
	return &namedService[models.Category]{repo: repo, errNotFound: ErrCategoryNotFound}
}

func NewCuisineService(repo repository.NamedRepository[models.Cuisine]) NamedService[models.Cuisine] {
	return &namedService[models.Cuisine]{repo: repo, errNotFound: ErrCuisineNotFound}
}

func (s *namedService[T]) List(ctx context.Context) ([]T, error) {
	return s.repo.List(ctx)
}

func (s *namedService[T]) Get(ctx context.Context, id int64) (*T, error) {
	row, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, s.errNotFound)
	}
	return row, nil
}

func (s *namedService[T]) Create(ctx context.Context, name string) (*T, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}
	row, err := s.repo.Create(ctx, name)
	if err != nil {
		return nil, duplicate(err)
	}
	return row, nil
}

func (s *namedService[T]) Rename(ctx context.Context, id int64, name string) (*T, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}
	row, err := s.repo.Rename(ctx, id, name)
	if err != nil {
		return nil, notFound(duplicate(err), s.errNotFound)
	}
	return row, nil
}

func (s *namedService[T]) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return notFound(err, s.errNotFound)
	}
	return nil
}

func duplicate(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrNameInUse
	}
	return err
}

type IngredientService interface {
	NamedService[models.Ingredient]
	ListUsage(ctx context.Context) ([]models.NameUsage, error)
}

type ingredientService struct {
	*namedService[models.Ingredient]
	repo repository.IngredientRepository
}

func NewIngredientService(repo repository.IngredientRepository) IngredientService {
	return &ingredientService{
		namedService: &namedService[models.Ingredient]{repo: repo, errNotFound: ErrIngredientNotFound},
		repo:         repo,
	}
}

func (s *ingredientService) ListUsage(ctx context.Context) ([]models.NameUsage, error) {
	return s.repo.ListUsage(ctx)
}

// Delete refuses to remove an ingredient that a recipe still lists.
func (s *ingredientService) Delete(ctx context.Context, id int64) error {
	n, err := s.repo.CountUsage(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return ErrIngredientInUse
	}
	return s.namedService.Delete(ctx, id)
}

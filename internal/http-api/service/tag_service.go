package service

import (
	"context"

	"greenkitchen/internal/http-api/models"
	"greenkitchen/internal/http-api/repository"
)

type TagService interface {
	NamedService[models.Tag]
	ListUsage(ctx context.Context) ([]models.NameUsage, error)
	ReplaceRecipes(ctx context.Context, tagID int64, recipeIDs []int64) error
	CopyRecipeTags(ctx context.Context, fromRecipeID, toRecipeID int64) (int, error)
}

type tagService struct {
	*namedService[models.Tag]
	repo repository.TagRepository
}

func NewTagService(repo repository.TagRepository) TagService {
	return &tagService{
		namedService: &namedService[models.Tag]{repo: repo, errNotFound: ErrTagNotFound},
		repo:         repo,
	}
}

func (s *tagService) ListUsage(ctx context.Context) ([]models.NameUsage, error) {
	return s.repo.ListUsage(ctx)
}

// ReplaceRecipes sets exactly which recipes carry the tag. Zero ids are
// skipped and repeats collapse.
func (s *tagService) ReplaceRecipes(ctx context.Context, tagID int64, recipeIDs []int64) error {
	if _, err := s.Get(ctx, tagID); err != nil {
		return err
	}

	seen := make(map[int64]bool, len(recipeIDs))
	ids := make([]int64, 0, len(recipeIDs))
	for _, id := range recipeIDs {
		if id > 0 && !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}
	if err := s.repo.ReplaceRecipes(ctx, tagID, ids); err != nil {
		return notFound(err, ErrRecipeNotFound)
	}
	return nil
}

// CopyRecipeTags adds the source recipe's tags to the target.
func (s *tagService) CopyRecipeTags(ctx context.Context, fromRecipeID, toRecipeID int64) (int, error) {
	if fromRecipeID <= 0 || toRecipeID <= 0 {
		return 0, ErrMissingRecipeIDs
	}
	n, err := s.repo.CopyRecipeTags(ctx, fromRecipeID, toRecipeID)
	if err != nil {
		return 0, notFound(err, ErrRecipeNotFound)
	}
	if n == 0 {
		return 0, ErrNoTagsToCopy
	}
	return n, nil
}

package service

import (
	"context"

	"greenkitchen/internal/http-api/models"
	"greenkitchen/internal/http-api/repository"
)

type ReviewService interface {
	List(ctx context.Context) ([]models.ReviewDetail, error)
	ListByRecipe(ctx context.Context, recipeID int64) ([]models.ReviewDetail, error)
	Create(ctx context.Context, caller *int64, review *models.Review) (*models.Review, error)
	Update(ctx context.Context, caller *int64, id int64, rating int, comment *string) (*models.Review, error)
	Delete(ctx context.Context, caller *int64, id int64) error
}

type reviewService struct {
	reviews repository.ReviewRepository
	recipes repository.RecipeRepository
	users   repository.UserRepository
	owners  Ownership
}

func NewReviewService(reviews repository.ReviewRepository, recipes repository.RecipeRepository, users repository.UserRepository, owners Ownership) ReviewService {
	return &reviewService{reviews: reviews, recipes: recipes, users: users, owners: owners}
}

func (s *reviewService) List(ctx context.Context) ([]models.ReviewDetail, error) {
	return s.reviews.List(ctx, 0)
}

func (s *reviewService) ListByRecipe(ctx context.Context, recipeID int64) ([]models.ReviewDetail, error) {
	return s.reviews.ListByRecipe(ctx, recipeID)
}

// Create stores a review unless the reviewer wrote the recipe.
func (s *reviewService) Create(ctx context.Context, caller *int64, review *models.Review) (*models.Review, error) {
	if !validRating(review.Rating) {
		return nil, ErrInvalidRating
	}
	userID, err := s.owners.actingAs(caller, review.UserID)
	if err != nil {
		return nil, err
	}
	if userID == 0 {
		return nil, ErrReviewUserRequired
	}

	authorID, err := s.recipes.GetAuthorID(ctx, review.RecipeID)
	if err != nil {
		return nil, notFound(err, ErrRecipeNotFound)
	}
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return nil, notFound(err, ErrUserNotFound)
	}
	if authorID != nil && *authorID == userID {
		return nil, ErrSelfReview
	}

	review.ID = 0
	review.UserID = userID
	if err := s.reviews.Create(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}

func (s *reviewService) Update(ctx context.Context, caller *int64, id int64, rating int, comment *string) (*models.Review, error) {
	if !validRating(rating) {
		return nil, ErrInvalidRating
	}
	review, err := s.reviews.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, ErrReviewNotFound)
	}
	if err := s.owners.mayModify(caller, &review.UserID); err != nil {
		return nil, err
	}

	review.Rating = rating
	review.Comment = comment
	if err := s.reviews.Update(ctx, review); err != nil {
		return nil, notFound(err, ErrReviewNotFound)
	}
	return review, nil
}

func (s *reviewService) Delete(ctx context.Context, caller *int64, id int64) error {
	review, err := s.reviews.GetByID(ctx, id)
	if err != nil {
		return notFound(err, ErrReviewNotFound)
	}
	if err := s.owners.mayModify(caller, &review.UserID); err != nil {
		return err
	}
	if err := s.reviews.Delete(ctx, id); err != nil {
		return notFound(err, ErrReviewNotFound)
	}
	return nil
}

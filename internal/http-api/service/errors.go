package service

import (
	"errors"

	"gorm.io/gorm"
)

var (
	ErrTitleRequired      = errors.New("title is required")
	ErrNameRequired       = errors.New("name is required")
	ErrMissingFields      = errors.New("username, email and password are required")
	ErrMissingCredentials = errors.New("email and password are required")
	ErrReviewUserRequired = errors.New("user_id is required")
	ErrMissingRecipeIDs   = errors.New("from_recipe_id and to_recipe_id are required")
	ErrInvalidRating      = errors.New("rating must be an integer between 1 and 5")
	ErrPasswordTooLong    = errors.New("password must be at most 72 bytes")
	ErrSelfReview         = errors.New("you cannot review your own recipe")
	ErrNoTagsToCopy       = errors.New("source recipe has no tags to copy")

	ErrRecipeNotFound     = errors.New("recipe not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrReviewNotFound     = errors.New("review not found")
	ErrCategoryNotFound   = errors.New("category not found")
	ErrCuisineNotFound    = errors.New("cuisine not found")
	ErrIngredientNotFound = errors.New("ingredient not found")
	ErrTagNotFound        = errors.New("tag not found")

	ErrNameInUse       = errors.New("name already in use")
	ErrUserExists      = errors.New("user already exists with that email or username")
	ErrIngredientInUse = errors.New("ingredient is used by recipes")

	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrUnauthenticated    = errors.New("authentication required")
	ErrForbidden          = errors.New("not allowed to modify this resource")
)

// notFound swaps gorm's not-found for the caller's domain error.
func notFound(err, domain error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain
	}
	return err
}

// maxPasswordBytes is bcrypt's input limit.
const maxPasswordBytes = 72

func checkPassword(password string) error {
	if len(password) > maxPasswordBytes {
		return ErrPasswordTooLong
	}
	return nil
}

func validRating(rating int) bool {
	return rating >= 1 && rating <= 5
}

package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"greenkitchen/internal/http-api/middleware"
	"greenkitchen/internal/http-api/service"
)

var errorStatuses = []struct {
	err    error
	status int
}{
	{service.ErrTitleRequired, http.StatusBadRequest},
	{service.ErrNameRequired, http.StatusBadRequest},
	{service.ErrMissingFields, http.StatusBadRequest},
	{service.ErrMissingCredentials, http.StatusBadRequest},
	{service.ErrReviewUserRequired, http.StatusBadRequest},
	{service.ErrMissingRecipeIDs, http.StatusBadRequest},
	{service.ErrInvalidRating, http.StatusBadRequest},
	{service.ErrPasswordTooLong, http.StatusBadRequest},
	{service.ErrSelfReview, http.StatusBadRequest},
	{service.ErrNoTagsToCopy, http.StatusBadRequest},

	{service.ErrInvalidCredentials, http.StatusUnauthorized},
	{service.ErrInvalidToken, http.StatusUnauthorized},
	{service.ErrUnauthenticated, http.StatusUnauthorized},
	{service.ErrForbidden, http.StatusForbidden},

	{service.ErrRecipeNotFound, http.StatusNotFound},
	{service.ErrUserNotFound, http.StatusNotFound},
	{service.ErrReviewNotFound, http.StatusNotFound},
	{service.ErrCategoryNotFound, http.StatusNotFound},
	{service.ErrCuisineNotFound, http.StatusNotFound},
	{service.ErrIngredientNotFound, http.StatusNotFound},
	{service.ErrTagNotFound, http.StatusNotFound},

	{service.ErrNameInUse, http.StatusConflict},
	{service.ErrUserExists, http.StatusConflict},
	{service.ErrIngredientInUse, http.StatusConflict},
}

// respondError writes the status mapped to a known domain error. Anything
// else is logged and answered with a 500 carrying only fallback.
func respondError(c *gin.Context, log *zap.Logger, err error, fallback string) {
	for _, m := range errorStatuses {
		if errors.Is(err, m.err) {
			c.JSON(m.status, gin.H{"error": m.err.Error()})
			return
		}
	}
	log.Error(fallback,
		zap.Error(err),
		zap.String("request_id", c.GetString(middleware.RequestIDKey)),
		zap.String("path", c.FullPath()),
	)
	c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
}

func respondBindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": bindingMessage(err)})
}

// paramID parses a positive integer path parameter, answering 400 if it is not one.
func paramID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}

// callerID is the authenticated user, or nil for anonymous requests.
func callerID(c *gin.Context) *int64 {
	v, ok := c.Get(middleware.UserIDKey)
	if !ok {
		return nil
	}
	id, ok := v.(int64)
	if !ok {
		return nil
	}
	return &id
}

package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"greenkitchen/internal/http-api/dto"
	"greenkitchen/internal/http-api/models"
	"greenkitchen/internal/http-api/service"
)

type ReviewHandler struct {
	svc service.ReviewService
	log *zap.Logger
}

func NewReviewHandler(svc service.ReviewService, log *zap.Logger) *ReviewHandler {
	return &ReviewHandler{svc: svc, log: log}
}

func (h *ReviewHandler) RegisterRoutes(rg *gin.RouterGroup, guard gin.HandlerFunc) {
	rg.GET("", h.List)
	rg.GET("/recipe/:recipeId", h.ListByRecipe)
	rg.POST("", guard, h.Create)
	rg.PUT("/:id", guard, h.Update)
	rg.DELETE("/:id", guard, h.Delete)
}

func (h *ReviewHandler) List(c *gin.Context) {
	list, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err, "failed to fetch reviews")
		return
	}
	c.JSON(http.StatusOK, dto.FromDetailsToReviewResponses(list))
}

// ListByRecipe handles GET /api/reviews/recipe/:recipeId
func (h *ReviewHandler) ListByRecipe(c *gin.Context) {
	recipeID, ok := paramID(c, "recipeId")
	if !ok {
		return
	}
	list, err := h.svc.ListByRecipe(c.Request.Context(), recipeID)
	if err != nil {
		respondError(c, h.log, err, "failed to fetch reviews")
		return
	}
	c.JSON(http.StatusOK, dto.FromDetailsToReviewResponses(list))
}

func (h *ReviewHandler) Create(c *gin.Context) {
	var in dto.CreateReviewDTO
	if err := c.ShouldBindJSON(&in); err != nil {
		respondBindError(c, err)
		return
	}
	review := &models.Review{
		RecipeID: in.RecipeID,
		UserID:   in.UserID,
		Rating:   in.Rating,
		Comment:  in.Comment,
	}
	created, err := h.svc.Create(c.Request.Context(), callerID(c), review)
	if err != nil {
		respondError(c, h.log, err, "failed to create review")
		return
	}
	c.JSON(http.StatusCreated, dto.FromModelToReviewResponse(created))
}

func (h *ReviewHandler) Update(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var in dto.UpdateReviewDTO
	if err := c.ShouldBindJSON(&in); err != nil {
		respondBindError(c, err)
		return
	}
	updated, err := h.svc.Update(c.Request.Context(), callerID(c), id, in.Rating, in.Comment)
	if err != nil {
		respondError(c, h.log, err, "failed to update review")
		return
	}
	c.JSON(http.StatusOK, dto.FromModelToReviewResponse(updated))
}

func (h *ReviewHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), callerID(c), id); err != nil {
		respondError(c, h.log, err, "failed to delete review")
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Review deleted successfully"})
}

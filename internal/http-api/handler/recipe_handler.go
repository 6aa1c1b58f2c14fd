package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"greenkitchen/internal/http-api/dto"
	"greenkitchen/internal/http-api/service"
)

type RecipeHandler struct {
	svc service.RecipeService
	log *zap.Logger
}

func NewRecipeHandler(svc service.RecipeService, log *zap.Logger) *RecipeHandler {
	return &RecipeHandler{svc: svc, log: log}
}

// RegisterRoutes mounts /recipes. guard runs before every mutation.
func (h *RecipeHandler) RegisterRoutes(rg *gin.RouterGroup, guard gin.HandlerFunc) {
	rg.GET("", h.List)
	rg.GET("/:id", h.Get)
	rg.POST("", guard, h.Create)
	rg.PUT("/:id", guard, h.Replace)
	rg.DELETE("/:id", guard, h.Delete)
}

func (h *RecipeHandler) List(c *gin.Context) {
	list, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err, "failed to fetch recipes")
		return
	}
	resp := make([]dto.RecipeResponse, 0, len(list))
	for i := range list {
		resp = append(resp, dto.FromModelToRecipeResponse(&list[i]))
	}
	c.JSON(http.StatusOK, resp)
}

func (h *RecipeHandler) Get(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	d, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, err, "failed to fetch recipe")
		return
	}
	c.JSON(http.StatusOK, dto.FromModelToRecipeResponse(d))
}

func (h *RecipeHandler) Create(c *gin.Context) {
	var in dto.RecipeRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		respondBindError(c, err)
		return
	}
	id, err := h.svc.Create(c.Request.Context(), callerID(c), in.ToAggregate())
	if err != nil {
		respondError(c, h.log, err, "failed to create recipe")
		return
	}
	c.JSON(http.StatusCreated, dto.CreatedResponse{Message: "Recipe created successfully", ID: id})
}

// Replace handles PUT /api/recipes/:id. Every child row is rewritten.
func (h *RecipeHandler) Replace(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var in dto.RecipeRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		respondBindError(c, err)
		return
	}
	if err := h.svc.Replace(c.Request.Context(), callerID(c), id, in.ToAggregate()); err != nil {
		respondError(c, h.log, err, "failed to update recipe")
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Recipe updated successfully"})
}

func (h *RecipeHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), callerID(c), id); err != nil {
		respondError(c, h.log, err, "failed to delete recipe")
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Recipe deleted successfully"})
}

package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"greenkitchen/internal/http-api/dto"
	"greenkitchen/internal/http-api/models"
	"greenkitchen/internal/http-api/service"
)

// NamedHandler serves CRUD for a table of unique names.
type NamedHandler[T any] struct {
	svc    service.NamedService[T]
	toResp func(T) dto.NamedResponse
	label  string
	log    *zap.Logger

	// listUsage, when set, makes List include recipe_ids.
	listUsage func(ctx context.Context) ([]models.NameUsage, error)
}

func NewCategoryHandler(svc service.NamedService[models.Category], log *zap.Logger) *NamedHandler[models.Category] {
	return &NamedHandler[models.Category]{svc: svc, toResp: dto.CategoryFromModel, label: "category", log: log}
}

func NewCuisineHandler(svc service.NamedService[models.Cuisine], log *zap.Logger) *NamedHandler[models.Cuisine] {
	return &NamedHandler[models.Cuisine]{svc: svc, toResp: dto.CuisineFromModel, label: "cuisine", log: log}
}

func NewIngredientHandler(svc service.IngredientService, log *zap.Logger) *NamedHandler[models.Ingredient] {
	return &NamedHandler[models.Ingredient]{
		svc:       svc,
		toResp:    dto.IngredientFromModel,
		label:     "ingredient",
		log:       log,
		listUsage: svc.ListUsage,
	}
}

func (h *NamedHandler[T]) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.GET("/:id", h.Get)
	rg.POST("", h.Create)
	rg.PUT("/:id", h.Rename)
	rg.DELETE("/:id", h.Delete)
}

func (h *NamedHandler[T]) List(c *gin.Context) {
	if h.listUsage != nil {
		list, err := h.listUsage(c.Request.Context())
		if err != nil {
			respondError(c, h.log, err, "failed to fetch "+h.label+" list")
			return
		}
		c.JSON(http.StatusOK, dto.FromUsages(list))
		return
	}

	list, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err, "failed to fetch "+h.label+" list")
		return
	}
	resp := make([]dto.NamedResponse, 0, len(list))
	for _, row := range list {
		resp = append(resp, h.toResp(row))
	}
	c.JSON(http.StatusOK, resp)
}

func (h *NamedHandler[T]) Get(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	row, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, err, "failed to fetch "+h.label)
		return
	}
	c.JSON(http.StatusOK, h.toResp(*row))
}

func (h *NamedHandler[T]) Create(c *gin.Context) {
	var in dto.NameDTO
	if err := c.ShouldBindJSON(&in); err != nil {
		respondBindError(c, err)
		return
	}
	row, err := h.svc.Create(c.Request.Context(), in.Name)
	if err != nil {
		respondError(c, h.log, err, "failed to create "+h.label)
		return
	}
	c.JSON(http.StatusCreated, h.toResp(*row))
}

func (h *NamedHandler[T]) Rename(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var in dto.NameDTO
	if err := c.ShouldBindJSON(&in); err != nil {
		respondBindError(c, err)
		return
	}
	row, err := h.svc.Rename(c.Request.Context(), id, in.Name)
	if err != nil {
		respondError(c, h.log, err, "failed to update "+h.label)
		return
	}
	c.JSON(http.StatusOK, h.toResp(*row))
}

func (h *NamedHandler[T]) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		respondError(c, h.log, err, "failed to delete "+h.label)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Deleted successfully"})
}

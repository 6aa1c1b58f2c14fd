package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"greenkitchen/internal/http-api/dto"
	"greenkitchen/internal/http-api/models"
	"greenkitchen/internal/http-api/service"
)

type TagHandler struct {
	*NamedHandler[models.Tag]
	tags service.TagService
}

func NewTagHandler(svc service.TagService, log *zap.Logger) *TagHandler {
	return &TagHandler{
		NamedHandler: &NamedHandler[models.Tag]{
			svc:       svc,
			toResp:    dto.TagFromModel,
			label:     "tag",
			log:       log,
			listUsage: svc.ListUsage,
		},
		tags: svc,
	}
}

func (h *TagHandler) RegisterRoutes(rg *gin.RouterGroup) {
	h.NamedHandler.RegisterRoutes(rg)
	rg.PUT("/:id/recipes", h.ReplaceRecipes)
	rg.POST("/copy-recipe-tags", h.CopyRecipeTags)
}

// ReplaceRecipes handles PUT /api/tags/:id/recipes
func (h *TagHandler) ReplaceRecipes(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var in dto.TagRecipesDTO
	if err := c.ShouldBindJSON(&in); err != nil {
		respondBindError(c, err)
		return
	}
	if err := h.tags.ReplaceRecipes(c.Request.Context(), id, in.RecipeIDs); err != nil {
		respondError(c, h.log, err, "failed to update tag recipes")
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Tag recipes updated successfully"})
}

// CopyRecipeTags handles POST /api/tags/copy-recipe-tags
func (h *TagHandler) CopyRecipeTags(c *gin.Context) {
	var in dto.CopyTagsDTO
	if err := c.ShouldBindJSON(&in); err != nil {
		respondBindError(c, err)
		return
	}
	n, err := h.tags.CopyRecipeTags(c.Request.Context(), in.FromRecipeID, in.ToRecipeID)
	if err != nil {
		respondError(c, h.log, err, "failed to copy tags")
		return
	}
	c.JSON(http.StatusOK, dto.CopyTagsResponse{
		Message: fmt.Sprintf("Copied %d tag(s) to recipe %d", n, in.ToRecipeID),
		Copied:  n,
	})
}

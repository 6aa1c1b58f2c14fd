package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"greenkitchen/internal/http-api/dto"
	"greenkitchen/internal/http-api/service"
)

type OverviewHandler struct {
	svc service.OverviewService
	log *zap.Logger
}

func NewOverviewHandler(svc service.OverviewService, log *zap.Logger) *OverviewHandler {
	return &OverviewHandler{svc: svc, log: log}
}

// Get handles GET /api/overview
func (h *OverviewHandler) Get(c *gin.Context) {
	o, err := h.svc.Get(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err, "failed to load overview")
		return
	}
	c.JSON(http.StatusOK, dto.FromModelToOverviewResponse(o))
}

// Health handles GET /api/health
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "OK", "message": "Server is running"})
}

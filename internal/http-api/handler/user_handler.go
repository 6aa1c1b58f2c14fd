package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"greenkitchen/internal/http-api/dto"
	"greenkitchen/internal/http-api/service"
)

type UserHandler struct {
	svc service.UserService
	log *zap.Logger
}

func NewUserHandler(svc service.UserService, log *zap.Logger) *UserHandler {
	return &UserHandler{svc: svc, log: log}
}

func (h *UserHandler) RegisterRoutes(rg *gin.RouterGroup, guard gin.HandlerFunc) {
	rg.GET("", h.List)
	rg.GET("/:id", h.Get)
	rg.POST("", h.Create)
	rg.PUT("/:id", guard, h.Update)
	rg.DELETE("/:id", guard, h.Delete)
}

func (h *UserHandler) List(c *gin.Context) {
	list, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err, "failed to fetch users")
		return
	}
	resp := make([]dto.UserResponse, 0, len(list))
	for i := range list {
		resp = append(resp, dto.FromModelToUserResponse(&list[i]))
	}
	c.JSON(http.StatusOK, resp)
}

func (h *UserHandler) Get(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	u, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, err, "failed to fetch user")
		return
	}
	c.JSON(http.StatusOK, dto.FromModelToUserResponse(u))
}

func (h *UserHandler) Create(c *gin.Context) {
	var in dto.CreateUserRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		respondBindError(c, err)
		return
	}
	u, err := h.svc.Create(c.Request.Context(), in.Username, in.Email, in.Password)
	if err != nil {
		respondError(c, h.log, err, "failed to create user")
		return
	}
	c.JSON(http.StatusCreated, dto.FromModelToUserResponse(u))
}

func (h *UserHandler) Update(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var in dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		respondBindError(c, err)
		return
	}
	u, err := h.svc.Update(c.Request.Context(), callerID(c), id, service.UserUpdate{
		Username: in.Username,
		Email:    in.Email,
		Password: in.Password,
	})
	if err != nil {
		respondError(c, h.log, err, "failed to update user")
		return
	}
	c.JSON(http.StatusOK, dto.FromModelToUserResponse(u))
}

func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), callerID(c), id); err != nil {
		respondError(c, h.log, err, "failed to delete user")
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "User deleted successfully"})
}

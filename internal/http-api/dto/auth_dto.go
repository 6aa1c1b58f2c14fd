package dto

import (
	"time"

	"greenkitchen/internal/http-api/models"
)

// RegisterRequest for POST /api/auth/register
type RegisterRequest struct {
	Username string `json:"username" binding:"required,notblank,max=50"`
	Email    string `json:"email" binding:"required,email,max=255"`
	Password string `json:"password" binding:"required,min=6"`
}

// LoginRequest for POST /api/auth/login
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type UserSummary struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type AuthResponse struct {
	User  UserSummary `json:"user"`
	Token string      `json:"token"`
}

func NewAuthResponse(u *models.User, token string) AuthResponse {
	return AuthResponse{
		User:  UserSummary{ID: u.ID, Username: u.Username, Email: u.Email},
		Token: token,
	}
}

// CreateUserRequest for POST /api/users
type CreateUserRequest struct {
	Username string `json:"username" binding:"required,notblank,max=50"`
	Email    string `json:"email" binding:"required,email,max=255"`
	Password string `json:"password" binding:"required,min=6"`
}

// UpdateUserRequest for PUT /api/users/:id; absent fields are left alone.
type UpdateUserRequest struct {
	Username *string `json:"username" binding:"omitempty,notblank,max=50"`
	Email    *string `json:"email" binding:"omitempty,email,max=255"`
	Password *string `json:"password" binding:"omitempty,min=6"`
}

type UserResponse struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

func FromModelToUserResponse(u *models.User) UserResponse {
	return UserResponse{ID: u.ID, Username: u.Username, Email: u.Email, CreatedAt: u.CreatedAt}
}

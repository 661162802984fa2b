package dto

import (
	"time"

	"github.com/hredostate/upss-webly/internal/models"
)

// RegisterRequest - запрос регистрации кандидата
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	FullName string `json:"full_name" validate:"required,min=2,max=150"`
}

// LoginRequest - запрос входа
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RefreshTokenRequest - запрос обновления токена
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// AuthResponse - ответ на вход/регистрацию/refresh
type AuthResponse struct {
	AccessToken  string          `json:"access_token"`
	RefreshToken string          `json:"refresh_token"`
	ExpiresAt    time.Time       `json:"expires_at"`
	User         *models.User    `json:"user"`
	Role         models.UserRole `json:"role"`
}

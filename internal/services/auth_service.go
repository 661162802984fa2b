package services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/hredostate/upss-webly/internal/auth"
	"github.com/hredostate/upss-webly/internal/config"
	"github.com/hredostate/upss-webly/internal/logger"
	"github.com/hredostate/upss-webly/internal/models"
	"github.com/hredostate/upss-webly/internal/repositories"
	"github.com/hredostate/upss-webly/internal/services/dto"
	"github.com/hredostate/upss-webly/pkg/apperrors"
)

type AuthService struct {
	users  *repositories.UserRepository
	tokens *repositories.RefreshTokenRepository
}

func NewAuthService(users *repositories.UserRepository, tokens *repositories.RefreshTokenRepository) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

// Register регистрирует кандидата. Админы создаются только сидом,
// публичной регистрации с ролью admin нет.
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.NewBadRequestError(err.Error())
	}

	if _, err := s.users.FindByEmail(ctx, req.Email); err == nil {
		return nil, apperrors.ErrEmailAlreadyExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.StorageError(err)
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Email:        req.Email,
		PasswordHash: hash,
		FullName:     req.FullName,
		Role:         models.UserRoleApplicant,
		Status:       models.UserStatusActive,
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.StorageError(err)
	}

	logger.CtxInfo(ctx, "user registered", "user_id", user.ID)

	return s.issueTokens(ctx, user)
}

// Login проверяет пароль и выдает пару токенов.
// Несуществующий email и неверный пароль дают один и тот же ответ.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.StorageError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	if user.Status != models.UserStatusActive {
		return nil, apperrors.NewForbiddenError("Account is suspended")
	}

	return s.issueTokens(ctx, user)
}

// Refresh меняет refresh-токен на новую пару.
// Токен одноразовый: старый удаляется до выпуска нового.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*dto.AuthResponse, error) {
	stored, err := s.tokens.FindByToken(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidToken
		}
		return nil, apperrors.StorageError(err)
	}

	if time.Now().After(stored.ExpiresAt) {
		_ = s.tokens.Delete(ctx, refreshToken)
		return nil, apperrors.ErrInvalidToken
	}

	user, err := s.users.FindByID(ctx, stored.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidToken
		}
		return nil, apperrors.StorageError(err)
	}

	if err := s.tokens.Delete(ctx, refreshToken); err != nil {
		return nil, apperrors.StorageError(err)
	}

	return s.issueTokens(ctx, user)
}

// Logout отзывает refresh-токен
func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	if err := s.tokens.Delete(ctx, refreshToken); err != nil {
		return apperrors.StorageError(err)
	}
	return nil
}

func (s *AuthService) issueTokens(ctx context.Context, user *models.User) (*dto.AuthResponse, error) {
	accessToken, err := auth.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	cfg := config.GetConfig()
	expiresAt := time.Now().Add(time.Duration(cfg.JWT.RefreshTTL) * time.Hour)

	refresh := &models.RefreshToken{
		UserID:    user.ID,
		Token:     generateRefreshToken(),
		ExpiresAt: expiresAt,
	}
	if err := s.tokens.Create(ctx, refresh); err != nil {
		return nil, apperrors.StorageError(err)
	}

	return &dto.AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refresh.Token,
		ExpiresAt:    time.Now().Add(time.Duration(cfg.JWT.TTL) * time.Minute),
		User:         user,
		Role:         user.Role,
	}, nil
}

func generateRefreshToken() string {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		panic(err) // crypto/rand не возвращает ошибок на поддерживаемых платформах
	}
	return hex.EncodeToString(b)
}

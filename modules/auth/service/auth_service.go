package service

import (
	"context"
	"strings"
	"time"

	"interview-scheduler/core/cache"
	"interview-scheduler/core/config"
	"interview-scheduler/core/constants"
	"interview-scheduler/core/errors"
	"interview-scheduler/core/logger"
	"interview-scheduler/core/utils"
	"interview-scheduler/modules/auth/dto"
	"interview-scheduler/modules/auth/entity"
	"interview-scheduler/modules/auth/repository"

	"github.com/google/uuid"
)

type AuthService struct {
	repo  *repository.AuthRepository
	cache *cache.Cache
}

func NewAuthService(repo *repository.AuthRepository, c *cache.Cache) *AuthService {
	return &AuthService{repo: repo, cache: c}
}

func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, *errors.AppError) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	existing, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to check existing user", err)
	}
	if existing != nil {
		return nil, errors.NewAppError(errors.ErrAlreadyExists, "Email is already registered", nil)
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		logger.Error("AuthService:Register:HashPassword", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to hash password", err)
	}

	user, err := s.repo.CreateUser(ctx, &entity.User{
		Name:     req.Name,
		Email:    email,
		Password: hashed,
		IsActive: true,
	})
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCreateFailed, "Failed to create user", err)
	}

	logger.Info("AuthService:Register:Success", "user_id", user.ID, "email", user.Email)

	return &dto.RegisterResponse{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
	}, nil
}

func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, *errors.AppError) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	blocked, err := s.cache.IsLoginBlocked(ctx, email)
	if err != nil {
		logger.Error("AuthService:Login:IsLoginBlocked", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to check login attempts", err)
	}
	if blocked {
		return nil, errors.NewAppError(errors.ErrUnauthorized, "Too many failed attempts, try again later", nil)
	}

	user, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to look up user", err)
	}
	if user == nil || !user.IsActive {
		s.recordFailedAttempt(ctx, email)
		return nil, errors.NewAppError(errors.ErrUnauthorized, "Invalid email or password", nil)
	}

	if !utils.ComparePassword(user.Password, req.Password) {
		s.recordFailedAttempt(ctx, email)
		return nil, errors.NewAppError(errors.ErrUnauthorized, "Invalid email or password", nil)
	}

	cfg := config.Get()

	accessToken, err := utils.GenerateToken(user.ID, user.Email, constants.ScopeTokenAccess,
		cfg.JWT.Secret, time.Duration(cfg.JWT.AccessTokenTTL)*time.Minute)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to generate access token", err)
	}

	refreshToken, err := utils.GenerateToken(user.ID, user.Email, constants.ScopeTokenRefresh,
		cfg.JWT.Secret, time.Duration(cfg.JWT.RefreshTokenTTL)*time.Minute)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to generate refresh token", err)
	}

	if err := s.cache.ClearLoginAttempts(ctx, email); err != nil {
		logger.Warn("AuthService:Login:ClearAttemptsFailed", "error", err)
	}

	logger.Info("AuthService:Login:Success", "user_id", user.ID)

	return &dto.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

func (s *AuthService) recordFailedAttempt(ctx context.Context, email string) {
	if err := s.cache.IncrementLoginAttempt(ctx, email); err != nil {
		logger.Error("AuthService:Login:IncrementAttempt", err)
	}
}

// Logout revokes the current access token until its natural expiry
func (s *AuthService) Logout(ctx context.Context, claims *utils.TokenClaims) *errors.AppError {
	if claims.ID == "" || claims.ExpiresAt == nil {
		return errors.NewAppError(errors.ErrInvalidTokenFormat, "Token cannot be revoked", nil)
	}

	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl <= 0 {
		return nil
	}

	if err := s.cache.AddToTokenBlacklist(ctx, claims.ID, ttl); err != nil {
		logger.Error("AuthService:Logout:Blacklist", err)
		return errors.NewAppError(errors.ErrInternalServer, "Failed to revoke token", err)
	}
	return nil
}

func (s *AuthService) RefreshToken(ctx context.Context, refreshToken string) (*dto.RefreshTokenResponse, *errors.AppError) {
	cfg := config.Get()

	claims, appErr := utils.ParseTokenWithScope(refreshToken, cfg.JWT.Secret, constants.ScopeTokenRefresh)
	if appErr != nil {
		return nil, appErr
	}

	user, err := s.repo.GetUserByID(ctx, claims.UserID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to look up user", err)
	}
	if user == nil || !user.IsActive {
		return nil, errors.NewAppError(errors.ErrUnauthorized, "User is not active", nil)
	}

	accessToken, err := utils.GenerateToken(user.ID, user.Email, constants.ScopeTokenAccess,
		cfg.JWT.Secret, time.Duration(cfg.JWT.AccessTokenTTL)*time.Minute)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to generate access token", err)
	}

	return &dto.RefreshTokenResponse{AccessToken: accessToken}, nil
}

func (s *AuthService) GetMe(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, *errors.AppError) {
	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to look up user", err)
	}
	if user == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "User not found", nil)
	}

	return &dto.UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		IsActive:  user.IsActive,
		CreatedAt: user.CreatedAt,
	}, nil
}

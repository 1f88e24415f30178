package services

import (
	"context"
	"time"

	"github.com/agms/agms-backend/internal/app/models"
	"github.com/agms/agms-backend/internal/app/repositories"
	"github.com/agms/agms-backend/internal/pkg/apperrors"
	"github.com/agms/agms-backend/internal/pkg/auth"
	"github.com/agms/agms-backend/internal/pkg/logger"
	"github.com/agms/agms-backend/internal/pkg/metrics"
)

// AuthService handles authentication operations
type AuthService struct {
	userRepo   *repositories.UserRepository
	jwtService *auth.JWTService
}

// NewAuthService creates a new authentication service
func NewAuthService(userRepo *repositories.UserRepository, jwtService *auth.JWTService) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

// Login verifies credentials and issues an access token. Unknown email and
// wrong password produce the same error so accounts cannot be enumerated.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.User, string, int, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrUserNotFound) {
			metrics.LoginAttempts.WithLabelValues("failure").Inc()
			return nil, "", 0, apperrors.ErrInvalidCredentials
		}
		return nil, "", 0, err
	}

	if !auth.CheckPassword(user.Password, password) {
		metrics.LoginAttempts.WithLabelValues("failure").Inc()
		logger.Warn().Str("email", email).Msg("Login failed: wrong password")
		return nil, "", 0, apperrors.ErrInvalidCredentials
	}

	if !user.IsActive {
		metrics.LoginAttempts.WithLabelValues("failure").Inc()
		return nil, "", 0, apperrors.ErrAccountDisabled
	}

	token, expiresIn, err := s.jwtService.GenerateAccessToken(user)
	if err != nil {
		return nil, "", 0, err
	}

	if err := s.userRepo.UpdateLastLogin(ctx, user.ID, time.Now()); err != nil {
		// A failed timestamp write must not fail the login
		logger.Warn().Err(err).Int64("userId", user.ID).Msg("Failed to update last login")
	}

	metrics.LoginAttempts.WithLabelValues("success").Inc()
	logger.Info().Int64("userId", user.ID).Str("role", string(user.RoleType)).Msg("User logged in")

	return user, token, expiresIn, nil
}

// GetProfile retrieves the authenticated user's account
func (s *AuthService) GetProfile(ctx context.Context, userID int64) (*models.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}

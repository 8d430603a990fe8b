package services

import (
	"context"
	"errors"
	"time"

	"instacash-backend/internal/adapters/persistence/models"
	"instacash-backend/internal/adapters/persistence/repositories"
	"instacash-backend/internal/config"
	"instacash-backend/internal/core/domain"
	"instacash-backend/internal/pkg/logger"
	"instacash-backend/internal/pkg/password"
	"instacash-backend/internal/pkg/validate"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AuthService handles authentication business logic
type AuthService struct {
	userRepo  repositories.UserRepository
	resetRepo repositories.PasswordResetRepository
	cfg       *config.Config
}

// NewAuthService creates a new auth service
func NewAuthService(
	userRepo repositories.UserRepository,
	resetRepo repositories.PasswordResetRepository,
	cfg *config.Config,
) *AuthService {
	return &AuthService{
		userRepo:  userRepo,
		resetRepo: resetRepo,
		cfg:       cfg,
	}
}

// RegisterInput represents user registration input
type RegisterInput struct {
	Username  string `json:"username" validate:"required"`
	Email     string `json:"email" validate:"required"`
	Password  string `json:"password" validate:"required"`
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
}

// Register registers a new user
func (s *AuthService) Register(ctx context.Context, input *RegisterInput) (*models.User, error) {
	if !validate.Email(input.Email) {
		return nil, domain.ErrInvalidEmail
	}
	if !password.Validate(input.Password) {
		return nil, domain.ErrWeakPassword
	}

	exists, err := s.userRepo.ExistsByUsername(ctx, input.Username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrUserAlreadyExists
	}

	exists, err = s.userRepo.ExistsByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrUserAlreadyExists
	}

	hash, err := password.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hash,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Role:         "customer",
		IsActive:     true,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	logger.Get().Info().Str("username", user.Username).Msg("user registered")

	return user, nil
}

// Login verifies a username/password pair. Lookup failures and password
// mismatches both map to ErrInvalidCredentials so the response never
// reveals whether the username exists.
func (s *AuthService) Login(ctx context.Context, username, plainPassword string) (*models.User, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !user.IsActive {
		return nil, domain.ErrInvalidCredentials
	}

	if !password.Verify(plainPassword, user.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}

	logger.Get().Info().Str("username", user.Username).Msg("user logged in")

	return user, nil
}

// ForgotPassword generates a single-use reset token for the user with
// the given email. The token is random (uuid v4); only its SHA256 hash
// is stored, together with an explicit expiry.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) (string, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", domain.ErrUserNotFound
		}
		return "", err
	}

	token := uuid.NewString()

	reset := &models.PasswordReset{
		UserID:    user.ID,
		TokenHash: password.HashToken(token),
		ExpiresAt: time.Now().Add(time.Duration(s.cfg.Reset.TokenTTLMins) * time.Minute),
	}

	if err := s.resetRepo.Create(ctx, reset); err != nil {
		return "", err
	}

	logger.Get().Info().Uint("user_id", user.ID).Msg("password reset token issued")

	return token, nil
}

// ResetPassword consumes a reset token and sets the user's new
// password. Unknown, used and expired tokens all fail the same way.
func (s *AuthService) ResetPassword(ctx context.Context, token, newPassword string) error {
	if !password.Validate(newPassword) {
		return domain.ErrWeakPassword
	}

	reset, err := s.resetRepo.GetUnusedByTokenHash(ctx, password.HashToken(token))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrInvalidResetToken
		}
		return err
	}

	if reset.IsExpired() {
		return domain.ErrInvalidResetToken
	}

	hash, err := password.Hash(newPassword)
	if err != nil {
		return err
	}

	if err := s.resetRepo.Consume(ctx, reset, hash); err != nil {
		return err
	}

	logger.Get().Info().Uint("user_id", reset.UserID).Msg("password reset completed")

	return nil
}

// GetUserByID gets a user by ID
func (s *AuthService) GetUserByID(ctx context.Context, userID uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

package handlers

import (
	"errors"
	"strings"

	"instacash-backend/internal/core/domain"
	"instacash-backend/internal/core/services"
	"instacash-backend/internal/pkg/logger"
	"instacash-backend/internal/pkg/response"
	"instacash-backend/internal/pkg/validate"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

const weakPasswordMessage = "Password must be at least 8 characters long and contain uppercase, lowercase, number, and special character"

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	authService *services.AuthService
	store       *session.Store
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *services.AuthService, store *session.Store) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		store:       store,
	}
}

// LoginRequest represents login request body
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// ForgotPasswordRequest represents forgot password request body
type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

// ResetPasswordRequest represents reset password request body
type ResetPasswordRequest struct {
	ResetToken  string `json:"reset_token"`
	NewPassword string `json:"new_password"`
}

// Register handles user registration
// @Summary Register new user
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body services.RegisterInput true "Registration data"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var input services.RegisterInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	input.Username = strings.TrimSpace(input.Username)
	input.Email = strings.TrimSpace(input.Email)

	if err := validate.Struct(&input); err != nil {
		return response.BadRequest(c, "Missing "+validate.MissingField(err))
	}

	user, err := h.authService.Register(c.Context(), &input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidEmail):
			return response.BadRequest(c, "Invalid email format")
		case errors.Is(err, domain.ErrWeakPassword):
			return response.BadRequest(c, weakPasswordMessage)
		case errors.Is(err, domain.ErrUserAlreadyExists):
			return response.BadRequest(c, "Username or email already exists")
		default:
			logger.Get().Error().Err(err).Msg("user registration failed")
			return response.InternalServerError(c, "Failed to register user")
		}
	}

	return response.Created(c, fiber.Map{
		"message": "User registered successfully",
		"user_id": user.ID,
	})
}

// Login handles user login
// @Summary Login user
// @Description Verify credentials and establish a server-side session
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body LoginRequest true "Login credentials"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Router /login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if req.Username == "" || req.Password == "" {
		return response.BadRequest(c, "Missing username or password")
	}

	user, err := h.authService.Login(c.Context(), strings.TrimSpace(req.Username), req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return response.Unauthorized(c, "Invalid username or password")
		}
		logger.Get().Error().Err(err).Msg("login failed")
		return response.InternalServerError(c, "Failed to login")
	}

	sess, err := h.store.Get(c)
	if err != nil {
		logger.Get().Error().Err(err).Msg("session retrieval failed")
		return response.InternalServerError(c, "Failed to login")
	}

	sess.Set("user_id", user.ID)
	sess.Set("username", user.Username)
	sess.Set("role", user.Role)
	if err := sess.Save(); err != nil {
		logger.Get().Error().Err(err).Msg("session save failed")
		return response.InternalServerError(c, "Failed to login")
	}

	return response.OK(c, fiber.Map{
		"message": "Login successful",
		"user":    user.ToResponse(),
	})
}

// Logout handles user logout
// @Summary Logout user
// @Description Destroy the server-side session
// @Tags Auth
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	sess, err := h.store.Get(c)
	if err == nil {
		_ = sess.Destroy()
	}

	return response.OK(c, fiber.Map{
		"message": "Logged out successfully",
	})
}

// ForgotPassword handles reset token generation
// @Summary Request password reset
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body ForgotPasswordRequest true "Account email"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /forgot-password [post]
func (h *AuthHandler) ForgotPassword(c *fiber.Ctx) error {
	var req ForgotPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if req.Email == "" {
		return response.BadRequest(c, "Email is required")
	}

	token, err := h.authService.ForgotPassword(c.Context(), strings.TrimSpace(req.Email))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return response.NotFound(c, "No user found with this email")
		}
		logger.Get().Error().Err(err).Msg("forgot password failed")
		return response.InternalServerError(c, "Failed to generate reset token")
	}

	// TODO: deliver the token by email once an SMTP sender is configured.
	return response.OK(c, fiber.Map{
		"message":     "Password reset link generated",
		"reset_token": token,
	})
}

// ResetPassword handles password reset with a token
// @Summary Reset password
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body ResetPasswordRequest true "Reset token and new password"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /reset-password [post]
func (h *AuthHandler) ResetPassword(c *fiber.Ctx) error {
	var req ResetPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if req.ResetToken == "" || req.NewPassword == "" {
		return response.BadRequest(c, "Missing reset token or new password")
	}

	err := h.authService.ResetPassword(c.Context(), req.ResetToken, req.NewPassword)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrWeakPassword):
			return response.BadRequest(c, weakPasswordMessage)
		case errors.Is(err, domain.ErrInvalidResetToken):
			return response.BadRequest(c, "Invalid or expired reset token")
		default:
			logger.Get().Error().Err(err).Msg("password reset failed")
			return response.InternalServerError(c, "Failed to reset password")
		}
	}

	return response.OK(c, fiber.Map{
		"message": "Password reset successfully",
	})
}

// Me returns the current session's user
// @Summary Get current user
// @Tags Auth
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Router /me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Authentication required")
	}

	user, err := h.authService.GetUserByID(c.Context(), userID)
	if err != nil {
		return response.NotFound(c, "User not found")
	}

	return response.OK(c, fiber.Map{
		"user": user.ToResponse(),
	})
}

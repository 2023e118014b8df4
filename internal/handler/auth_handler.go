package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/localflow/localflow-backend/internal/domain"
	"github.com/localflow/localflow-backend/internal/service"
	"github.com/rs/zerolog/log"
)

// AuthHandler handles registration and login HTTP requests
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// CredentialsRequest represents the register/login request body
type CredentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AuthResponse represents a successful register/login response
type AuthResponse struct {
	Username string `json:"username"`
}

// Register handles POST /register
func (h *AuthHandler) Register(c echo.Context) error {
	var req CredentialsRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	user, err := h.authService.Register(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrUsernameTaken) {
			return NewConflictError(c, "Username already exists")
		}
		if errors.Is(err, domain.ErrUsernameInvalid) {
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "username", Message: "Username must be 3 to 50 characters"},
			})
		}
		if errors.Is(err, domain.ErrPasswordTooShort) {
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "password", Message: "Password must be at least 4 characters"},
			})
		}
		log.Error().Err(err).Msg("Failed to register user")
		return NewInternalError(c, "Failed to register user")
	}

	log.Info().Str("username", user.Username).Msg("User registered")
	return c.JSON(http.StatusCreated, AuthResponse{Username: user.Username})
}

// Login handles POST /login
func (h *AuthHandler) Login(c echo.Context) error {
	var req CredentialsRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	user, err := h.authService.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return NewUnauthorizedError(c, "Invalid username or password")
		}
		log.Error().Err(err).Msg("Failed to log in user")
		return NewInternalError(c, "Failed to log in")
	}

	log.Info().Str("username", user.Username).Msg("User logged in")
	return c.JSON(http.StatusOK, AuthResponse{Username: user.Username})
}

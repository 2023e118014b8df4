package service

import (
	"strings"

	"github.com/localflow/localflow-backend/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

// AuthService handles registration and login. The authentication model is a
// bare username echoed back to the client and later carried in a request
// header; passwords gate registration and login only.
type AuthService struct {
	userRepo domain.UserRepository
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo domain.UserRepository) *AuthService {
	return &AuthService{userRepo: userRepo}
}

// Register creates a new user account.
func (s *AuthService) Register(username, password string) (*domain.User, error) {
	username = strings.TrimSpace(username)
	if len(username) < domain.MinUsernameLength || len(username) > domain.MaxUsernameLength {
		return nil, domain.ErrUsernameInvalid
	}
	if len(password) < domain.MinPasswordLength {
		return nil, domain.ErrPasswordTooShort
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	return s.userRepo.Create(&domain.User{
		Username:     username,
		PasswordHash: string(hash),
	})
}

// Login verifies credentials and returns the account. A missing user and a
// wrong password both map to ErrInvalidCredentials so the response does not
// leak which usernames exist.
func (s *AuthService) Login(username, password string) (*domain.User, error) {
	user, err := s.userRepo.GetByUsername(strings.TrimSpace(username))
	if err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}
	return user, nil
}

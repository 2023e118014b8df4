package domain

import "errors"

// Domain errors
var (
	ErrNotFound            = errors.New("resource not found")
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrUserNotFound        = errors.New("user not found")
	ErrUsernameTaken       = errors.New("username already exists")
	ErrInvalidCredentials  = errors.New("invalid username or password")
	ErrInvalidAmount       = errors.New("amount must be positive")
	ErrInvalidDate         = errors.New("date must be a valid YYYY-MM-DD calendar date")
	ErrInvalidType         = errors.New("type must be income or expense")
	ErrCategoryRequired    = errors.New("category is required")
	ErrCategoryTooLong     = errors.New("category exceeds maximum length")
	ErrNoteTooLong         = errors.New("note exceeds maximum length")
	ErrUsernameInvalid     = errors.New("username length out of range")
	ErrPasswordTooShort    = errors.New("password too short")
	ErrUnavailable         = errors.New("collaborator unavailable")
)

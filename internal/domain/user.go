package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is a registered account. Authentication is a bare username carried in
// a request header; this is a placeholder convention, not a security boundary.
type User struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

const (
	MinUsernameLength = 3
	MaxUsernameLength = 50
	MinPasswordLength = 4
)

// UserRepository is the persistence contract for users.
type UserRepository interface {
	Create(user *User) (*User, error)
	GetByUsername(username string) (*User, error)
}

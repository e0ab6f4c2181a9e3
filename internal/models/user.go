package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered student account.
type User struct {
	// ID is the unique identifier for the user (UUID format).
	ID string `json:"uid"`

	// Name is the display name of the user.
	Name string `json:"name"`

	// Username is the unique login handle.
	Username string `json:"username"`

	// Email is derived from the username at registration time
	// (<username>@campuscompass.app) and is unique.
	Email string `json:"email"`

	// PasswordHash is the bcrypt hash of the user's password.
	// Never serialized in API responses.
	PasswordHash string `json:"-"`

	// CreatedAt is the Unix timestamp when the account was created.
	CreatedAt int64 `json:"created_at"`
}

// NewUser builds a User with a fresh ID and creation timestamp.
func NewUser(name, username, email, passwordHash string) *User {
	return &User{
		ID:           uuid.New().String(),
		Name:         name,
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().Unix(),
	}
}

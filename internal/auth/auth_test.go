package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/campuscompass/compass/internal/models"
)

// memUserStorage is a minimal in-memory UserStorage for authenticator tests.
type memUserStorage struct {
	byUsername map[string]*models.User
}

func newMemUserStorage() *memUserStorage {
	return &memUserStorage{byUsername: make(map[string]*models.User)}
}

func (m *memUserStorage) CreateUser(_ context.Context, user *models.User) error {
	m.byUsername[user.Username] = user
	return nil
}

func (m *memUserStorage) GetUserByUsername(_ context.Context, username string) (*models.User, error) {
	return m.byUsername[username], nil
}

func (m *memUserStorage) GetUserByID(_ context.Context, id string) (*models.User, error) {
	for _, u := range m.byUsername {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func TestPasswordAuthenticator(t *testing.T) {
	ctx := context.Background()
	authenticator := NewPasswordAuthenticator(newMemUserStorage())

	user, err := authenticator.Register(ctx, "Alice Example", "Alice", "correct-horse")
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if user.Email != "alice@campuscompass.app" {
		t.Errorf("email = %q, want derived from lowercased username", user.Email)
	}
	if user.PasswordHash == "correct-horse" {
		t.Error("password stored in plaintext")
	}

	t.Run("duplicate username rejected", func(t *testing.T) {
		if _, err := authenticator.Register(ctx, "Impostor", "Alice", "password123"); !errors.Is(err, ErrUsernameExists) {
			t.Errorf("error = %v, want ErrUsernameExists", err)
		}
	})

	t.Run("weak password rejected", func(t *testing.T) {
		if _, err := authenticator.Register(ctx, "Bob", "bob", "short"); !errors.Is(err, ErrWeakPassword) {
			t.Errorf("error = %v, want ErrWeakPassword", err)
		}
	})

	t.Run("authenticate round-trip", func(t *testing.T) {
		got, err := authenticator.Authenticate(ctx, "Alice", "correct-horse")
		if err != nil {
			t.Fatalf("Authenticate failed: %v", err)
		}
		if got.ID != user.ID {
			t.Errorf("authenticated id = %s, want %s", got.ID, user.ID)
		}
	})

	t.Run("wrong password and unknown user fail alike", func(t *testing.T) {
		if _, err := authenticator.Authenticate(ctx, "Alice", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("wrong password: error = %v, want ErrInvalidCredentials", err)
		}
		if _, err := authenticator.Authenticate(ctx, "nobody", "whatever"); !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("unknown user: error = %v, want ErrInvalidCredentials", err)
		}
	})
}

func TestJWTManager(t *testing.T) {
	manager := NewJWTManager("test-secret-key-32-bytes-long!!!", time.Hour)
	user := &models.User{ID: "u-1", Username: "alice"}

	token, err := manager.Generate(user)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	claims, err := manager.Validate(token)
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if claims.UserID != "u-1" || claims.Username != "alice" {
		t.Errorf("claims = %+v, want u-1/alice", claims)
	}

	t.Run("tampered token rejected", func(t *testing.T) {
		if _, err := manager.Validate(token + "x"); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("error = %v, want ErrInvalidToken", err)
		}
	})

	t.Run("foreign secret rejected", func(t *testing.T) {
		other := NewJWTManager("a-completely-different-secret-key", time.Hour)
		if _, err := other.Validate(token); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("error = %v, want ErrInvalidToken", err)
		}
	})

	t.Run("expired token rejected", func(t *testing.T) {
		expired := NewJWTManager("test-secret-key-32-bytes-long!!!", -time.Minute)
		tok, err := expired.Generate(user)
		if err != nil {
			t.Fatalf("Generate failed: %v", err)
		}
		if _, err := manager.Validate(tok); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("error = %v, want ErrInvalidToken", err)
		}
	})
}

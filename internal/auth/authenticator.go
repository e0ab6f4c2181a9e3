package auth

import (
	"context"

	"github.com/campuscompass/compass/internal/models"
)

// Authenticator defines the interface for authentication implementations.
// This abstraction allows swapping between different auth methods (password,
// passkeys, OAuth, etc.) without changing the handler layer.
type Authenticator interface {
	// Register creates a new account from a display name, a unique username
	// and a credential. The credential format depends on the implementation.
	Register(ctx context.Context, name, username, credential string) (*models.User, error)

	// Authenticate verifies the user's credentials and returns the user if
	// successful.
	Authenticate(ctx context.Context, username, credential string) (*models.User, error)

	// ValidateCredential checks if the credential meets the implementation's
	// requirements (for passwords: minimum length).
	ValidateCredential(credential string) error
}

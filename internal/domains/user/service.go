package user

import (
	"context"

	"github.com/google/uuid"
)

// Service defines the business logic contract for accounts.
type Service interface {
	// Register creates an account and returns a signed access token.
	// Returns ErrEmailAlreadyExists when the email is taken.
	Register(ctx context.Context, req RegisterRequest) (*TokenResponse, error)

	// Login verifies credentials and returns a signed access token.
	// Returns ErrInvalidCredentials on unknown email or wrong password.
	Login(ctx context.Context, req LoginRequest) (*TokenResponse, error)

	// GetProfile returns the public projection of an account.
	GetProfile(ctx context.Context, userID uuid.UUID) (*UserOut, error)
}

package user

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the data access contract for accounts. An interface
// here keeps the Postgres implementation swappable and lets services be
// tested against in-memory fakes.
type Repository interface {
	// Create inserts a new user.
	// Returns ErrEmailAlreadyExists when the email is taken.
	Create(ctx context.Context, u *User) error

	// FindByID looks a user up by primary key.
	// Returns ErrUserNotFound when no row matches.
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)

	// FindByEmail looks a user up by email (login path).
	// Returns ErrUserNotFound when no row matches.
	FindByEmail(ctx context.Context, email string) (*User, error)
}

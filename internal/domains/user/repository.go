package user

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the data access contract for users.
// Interface lives in the domain root so the service layer depends on
// the contract, not the Postgres implementation.
type Repository interface {
	// Create inserts a new user.
	// Returns ErrEmailAlreadyExists when the email is taken.
	Create(ctx context.Context, user *User) error

	// FindByID returns the user or ErrUserNotFound.
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)

	// FindByEmail is used for login.
	FindByEmail(ctx context.Context, email string) (*User, error)

	// UpdateLastLogin stamps last_login_at.
	UpdateLastLogin(ctx context.Context, userID uuid.UUID) error
}

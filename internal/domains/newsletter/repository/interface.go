package repository

import (
	"context"

	"github.com/google/uuid"

	"newsletter-backend/internal/domains/newsletter/model"
)

// Repository persists generated newsletters. Every read and delete is
// scoped to the owning user; there is no cross-user access path.
type Repository interface {
	// Create inserts the newsletter and fills in its generated ID.
	Create(ctx context.Context, n *model.Newsletter) error

	// ListByUser returns the user's newsletters, newest first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Newsletter, error)

	// GetByID returns the newsletter only when it belongs to userID.
	// A row owned by someone else reads the same as a missing row.
	GetByID(ctx context.Context, id int64, userID uuid.UUID) (*model.Newsletter, error)

	// Delete removes the newsletter when it belongs to userID. Returns
	// true when a row was deleted, false when it was missing or owned
	// by someone else.
	Delete(ctx context.Context, id int64, userID uuid.UUID) (bool, error)
}

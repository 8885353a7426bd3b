package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/user"
)

// UserRepository defines the persistence contract for user aggregates,
// customer and delivery-person profiles included.
type UserRepository interface {
	// Add persists a new user aggregate to storage.
	// Fails when the email is already taken.
	Add(ctx context.Context, aggregate *user.User) error

	// Update persists changes to an existing user aggregate.
	Update(ctx context.Context, aggregate *user.User) error

	// Get retrieves a user aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*user.User, error)

	// GetByEmail retrieves a user aggregate by its account email.
	// Used by sign-in.
	GetByEmail(ctx context.Context, email kernel.Email) (*user.User, error)
}

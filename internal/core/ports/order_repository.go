package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier,
	// including its items, delivery, and payment.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetFirstPendingUnassigned retrieves the oldest order that has a
	// delivery waiting for assignment. Used by the assignment job.
	GetFirstPendingUnassigned(ctx context.Context) (*order.Order, error)

	// GetAllUndelivered retrieves every order in a non-terminal status.
	GetAllUndelivered(ctx context.Context) ([]*order.Order, error)
}

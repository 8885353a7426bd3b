package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/user"
)

// DeliveryPersonRepository defines the persistence contract for the
// delivery-person projection of the user aggregate. It exists so delivery
// assignment can load and update courier state without dragging the whole
// user aggregate through the hot path.
type DeliveryPersonRepository interface {
	// Get retrieves a delivery person by the owning user's identifier.
	Get(ctx context.Context, id kernel.UUID) (*user.DeliveryPerson, error)

	// GetAllAvailable retrieves every delivery person whose availability
	// flag is set. Further filtering (radius, working windows) is domain
	// logic and happens in the selector.
	GetAllAvailable(ctx context.Context) ([]*user.DeliveryPerson, error)

	// Update persists changes to a delivery person with an optimistic
	// concurrency check: the row is written only when its stored version
	// still equals the aggregate's loaded version, and the version is
	// advanced in the same statement. A lost race yields an error
	// unwrapping to errs.ErrVersionIsInvalid.
	Update(ctx context.Context, aggregate *user.DeliveryPerson) error
}

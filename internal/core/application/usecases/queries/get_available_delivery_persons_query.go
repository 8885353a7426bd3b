package queries

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/user"
	"fooddelivery/internal/pkg/guard"
)

var ErrGetAvailableDeliveryPersonsQueryIsNotConstructed = errors.New(
	"GetAvailableDeliveryPersonsQuery must be created via NewGetAvailableDeliveryPersonsQuery constructor",
)

// GetAvailableDeliveryPersonsQuery retrieves every delivery person whose
// availability flag is set, for dispatch monitoring.
type GetAvailableDeliveryPersonsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAvailableDeliveryPersonsQuery creates a query for available
// delivery persons. This is a parameterless query.
func NewGetAvailableDeliveryPersonsQuery() GetAvailableDeliveryPersonsQuery {
	return GetAvailableDeliveryPersonsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAvailableDeliveryPersonsQuery) Validate() error {
	return q.guard.Validate(ErrGetAvailableDeliveryPersonsQueryIsNotConstructed)
}

// GetAvailableDeliveryPersonsQueryResponse is the read model for one
// available delivery person. Location is nil when the person never
// reported a position.
type GetAvailableDeliveryPersonsQueryResponse struct {
	ID              kernel.UUID
	VehicleType     user.VehicleType
	Location        *kernel.GeoLocation
	ServiceRadiusKm float64
}

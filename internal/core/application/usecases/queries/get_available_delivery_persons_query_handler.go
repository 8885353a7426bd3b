package queries

import (
	"context"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/user"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAvailableDeliveryPersonsQueryHandler reads the available delivery
// persons straight from the database.
type GetAvailableDeliveryPersonsQueryHandler struct {
	db *gorm.DB
}

// NewGetAvailableDeliveryPersonsQueryHandler creates a handler for
// available delivery person queries.
func NewGetAvailableDeliveryPersonsQueryHandler(db *gorm.DB) GetAvailableDeliveryPersonsQueryHandler {
	return GetAvailableDeliveryPersonsQueryHandler{db: db}
}

// Handle executes the query. Results are sorted by id for consistent
// output.
func (h GetAvailableDeliveryPersonsQueryHandler) Handle(
	ctx context.Context,
	query GetAvailableDeliveryPersonsQuery,
) ([]GetAvailableDeliveryPersonsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	persons := make([]GetAvailableDeliveryPersonsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			vehicle_type,
			latitude,
			longitude,
			service_radius_km
		FROM delivery_persons
		WHERE is_available
		ORDER BY id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetAvailableDeliveryPersonsQueryResponse
		var id uuid.UUID
		var vehicleType int
		var latitude, longitude *float64

		err = rows.Scan(&id, &vehicleType, &latitude, &longitude, &resp.ServiceRadiusKm)
		if err != nil {
			return nil, err
		}

		personID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = personID
		resp.VehicleType = user.VehicleType(vehicleType)

		if latitude != nil && longitude != nil {
			location, locErr := kernel.NewGeoLocation(*latitude, *longitude)
			if locErr != nil {
				return nil, locErr
			}
			resp.Location = &location
		}

		persons = append(persons, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return persons, nil
}

// Package deliverypersonrepo persists the delivery-person projection of
// the user aggregate. Delivery assignment works against these tables
// directly so it never drags the whole user aggregate through the hot
// path; writes go through a version-checked conditional update.
package deliverypersonrepo

import (
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/user"

	"github.com/google/uuid"
)

// DeliveryPersonDTO represents the database structure for persisting
// delivery-person profiles. The primary key equals the owning user's id.
// Version backs the optimistic concurrency check in Update.
type DeliveryPersonDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	VehicleType     int       `gorm:"type:int;not null"`
	LicensePlate    string    `gorm:"type:varchar(32)"`
	Latitude        *float64
	Longitude       *float64
	IsAvailable     bool    `gorm:"not null;index"`
	ServiceRadiusKm float64 `gorm:"not null"`
	Version         int     `gorm:"type:int;not null"`

	Availabilities []AvailabilityDTO `gorm:"foreignKey:DeliveryPersonID;constraint:OnDelete:CASCADE"`
}

// TableName overrides GORM's default naming convention to use "delivery_persons".
func (DeliveryPersonDTO) TableName() string {
	return "delivery_persons"
}

// AvailabilityDTO represents a single working window.
type AvailabilityDTO struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	DeliveryPersonID uuid.UUID `gorm:"type:uuid;not null;index"`
	StartsAt         time.Time `gorm:"not null"`
	EndsAt           time.Time `gorm:"not null"`
}

// TableName overrides GORM's default naming convention to use
// "delivery_person_availabilities".
func (AvailabilityDTO) TableName() string {
	return "delivery_person_availabilities"
}

// FromDomain converts a delivery-person profile to its database
// representation. Exported because userrepo maps the same tables when it
// persists a freshly attached profile.
func FromDomain(p *user.DeliveryPerson) DeliveryPersonDTO {
	personID := p.ID().Bytes()

	windows := make([]AvailabilityDTO, 0, len(p.Availabilities()))
	for _, window := range p.Availabilities() {
		windows = append(windows, AvailabilityDTO{
			ID:               window.ID().Bytes(),
			DeliveryPersonID: personID,
			StartsAt:         window.Start(),
			EndsAt:           window.End(),
		})
	}

	dto := DeliveryPersonDTO{
		ID:              personID,
		VehicleType:     int(p.Vehicle().Type()),
		LicensePlate:    p.Vehicle().LicensePlate(),
		IsAvailable:     p.IsAvailable(),
		ServiceRadiusKm: p.ServiceRadiusKm(),
		Version:         p.Version(),
		Availabilities:  windows,
	}

	if location := p.CurrentLocation(); location != nil {
		lat := location.Latitude()
		lon := location.Longitude()
		dto.Latitude = &lat
		dto.Longitude = &lon
	}

	return dto
}

// ToDomain converts a database DTO to a delivery-person profile using
// RestoreDeliveryPerson.
func ToDomain(dto DeliveryPersonDTO) (*user.DeliveryPerson, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	vehicle, err := user.NewVehicle(user.VehicleType(dto.VehicleType), dto.LicensePlate)
	if err != nil {
		return nil, err
	}

	var location *kernel.GeoLocation
	if dto.Latitude != nil && dto.Longitude != nil {
		loc, locErr := kernel.NewGeoLocation(*dto.Latitude, *dto.Longitude)
		if locErr != nil {
			return nil, locErr
		}
		location = &loc
	}

	windows := make([]*user.Availability, 0, len(dto.Availabilities))
	for _, windowDTO := range dto.Availabilities {
		window, windowErr := availabilityToDomain(windowDTO)
		if windowErr != nil {
			return nil, windowErr
		}
		windows = append(windows, window)
	}

	return user.RestoreDeliveryPerson(
		id,
		vehicle,
		location,
		dto.IsAvailable,
		dto.ServiceRadiusKm,
		windows,
		dto.Version,
	)
}

func availabilityToDomain(dto AvailabilityDTO) (*user.Availability, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return user.RestoreAvailability(id, dto.StartsAt, dto.EndsAt)
}

package user

import (
	"errors"
	"fmt"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

// ErrDeliveryPersonIsNotConstructed is returned when a DeliveryPerson was
// not created through User.AddDeliveryPersonDetails.
var ErrDeliveryPersonIsNotConstructed = errors.New("DeliveryPerson must be created via User.AddDeliveryPersonDetails")

// DefaultServiceRadiusKm is the service radius assigned to a fresh
// delivery-person profile.
const DefaultServiceRadiusKm = 10.0

// DeliveryPerson is the optional courier profile of a user. It shares the
// user's identifier and carries everything delivery assignment needs: the
// vehicle, the last reported location, the availability flag and windows,
// the service radius, and the optimistic-lock version.
//
// The version reflects the persisted row and is only advanced by the
// repository on a successful conditional update; domain mutations leave
// it untouched.
type DeliveryPerson struct {
	id              kernel.UUID
	vehicle         Vehicle
	currentLocation *kernel.GeoLocation
	isAvailable     bool
	serviceRadiusKm float64
	availabilities  []*Availability
	version         int
	guard           guard.ConstructorGuard
}

func newDeliveryPerson(id kernel.UUID, vehicle Vehicle) (*DeliveryPerson, error) {
	if err := errors.Join(id.Validate(), vehicle.Validate()); err != nil {
		return nil, err
	}

	return &DeliveryPerson{
		id:              id,
		vehicle:         vehicle,
		isAvailable:     true,
		serviceRadiusKm: DefaultServiceRadiusKm,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

// RestoreDeliveryPerson reconstructs a courier profile from persistent
// storage, including its availability windows.
func RestoreDeliveryPerson(
	id kernel.UUID,
	vehicle Vehicle,
	currentLocation *kernel.GeoLocation,
	isAvailable bool,
	serviceRadiusKm float64,
	availabilities []*Availability,
	version int,
) (*DeliveryPerson, error) {
	p, err := newDeliveryPerson(id, vehicle)
	if err != nil {
		return nil, err
	}

	if currentLocation != nil {
		if err = currentLocation.Validate(); err != nil {
			return nil, err
		}
	}

	if serviceRadiusKm <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("service radius",
			fmt.Errorf("%v is not greater than 0", serviceRadiusKm))
	}

	if version < 0 {
		return nil, errs.NewVersionIsInvalidError("delivery person version",
			fmt.Errorf("%d is negative", version))
	}

	for _, window := range availabilities {
		if err = window.Validate(); err != nil {
			return nil, err
		}
	}

	p.currentLocation = currentLocation
	p.isAvailable = isAvailable
	p.serviceRadiusKm = serviceRadiusKm
	p.availabilities = make([]*Availability, len(availabilities))
	copy(p.availabilities, availabilities)
	p.version = version
	return p, nil
}

// Validate checks that the DeliveryPerson was created through the
// aggregate.
func (p *DeliveryPerson) Validate() error {
	if p == nil {
		return ErrDeliveryPersonIsNotConstructed
	}
	return p.guard.Validate(ErrDeliveryPersonIsNotConstructed)
}

// ID returns the owning user's identifier.
func (p *DeliveryPerson) ID() kernel.UUID {
	return p.id
}

// Vehicle returns the registered vehicle.
func (p *DeliveryPerson) Vehicle() Vehicle {
	return p.vehicle
}

// CurrentLocation returns the last reported location, or nil if the
// person never reported one.
func (p *DeliveryPerson) CurrentLocation() *kernel.GeoLocation {
	return p.currentLocation
}

// IsAvailable reports the availability flag.
func (p *DeliveryPerson) IsAvailable() bool {
	return p.isAvailable
}

// ServiceRadiusKm returns the service radius in kilometres.
func (p *DeliveryPerson) ServiceRadiusKm() float64 {
	return p.serviceRadiusKm
}

// Availabilities returns the working windows in insertion order.
// The returned slice is a copy; the windows themselves are shared.
func (p *DeliveryPerson) Availabilities() []*Availability {
	out := make([]*Availability, len(p.availabilities))
	copy(out, p.availabilities)
	return out
}

// Version returns the optimistic-lock version loaded from storage.
func (p *DeliveryPerson) Version() int {
	return p.version
}

// AddAvailability registers a working window. The window must not overlap
// any window already on the profile.
func (p *DeliveryPerson) AddAvailability(start, end time.Time) (*Availability, error) {
	window, err := newAvailability(kernel.NewUUID(), start, end)
	if err != nil {
		return nil, err
	}

	for _, existing := range p.availabilities {
		if existing.Overlaps(window) {
			return nil, errs.NewObjectAlreadyExistsError("overlapping availability window")
		}
	}

	p.availabilities = append(p.availabilities, window)
	return window, nil
}

// DeleteAvailability removes the working window with the given identifier.
func (p *DeliveryPerson) DeleteAvailability(id kernel.UUID) error {
	for i, window := range p.availabilities {
		if window.ID().IsEqual(id) {
			p.availabilities = append(p.availabilities[:i], p.availabilities[i+1:]...)
			return nil
		}
	}
	return errs.NewObjectNotFoundError("availability window", id.String())
}

// IsAvailableForDelivery reports whether the person can serve a drop-off
// at the given location: the availability flag must be set, a current
// location must be known, and the drop-off must be within the service
// radius. It never returns an error; missing data means no.
func (p *DeliveryPerson) IsAvailableForDelivery(location kernel.GeoLocation) bool {
	if !p.isAvailable || p.currentLocation == nil {
		return false
	}

	if location.Validate() != nil {
		return false
	}

	distance, err := p.currentLocation.DistanceTo(location)
	if err != nil {
		return false
	}

	return distance <= p.serviceRadiusKm
}

// IsAvailableAt reports whether any working window contains the instant.
// A profile without windows is never available.
func (p *DeliveryPerson) IsAvailableAt(now time.Time) bool {
	for _, window := range p.availabilities {
		if window.Contains(now) {
			return true
		}
	}
	return false
}

// DistanceTo returns the distance in kilometres from the current location
// to the given point, or false when no location was reported.
func (p *DeliveryPerson) DistanceTo(location kernel.GeoLocation) (float64, bool) {
	if p.currentLocation == nil || location.Validate() != nil {
		return 0, false
	}

	distance, err := p.currentLocation.DistanceTo(location)
	if err != nil {
		return 0, false
	}
	return distance, true
}

// MarkBusy clears the availability flag.
func (p *DeliveryPerson) MarkBusy() {
	p.isAvailable = false
}

// MarkAvailable sets the availability flag.
func (p *DeliveryPerson) MarkAvailable() {
	p.isAvailable = true
}

// MoveTo records a new current location.
func (p *DeliveryPerson) MoveTo(location kernel.GeoLocation) error {
	if err := location.Validate(); err != nil {
		return err
	}
	p.currentLocation = &location
	return nil
}

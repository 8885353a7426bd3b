package services

import (
	"errors"
	"time"

	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/model/user"
)

// ErrNoAvailableDeliveryPerson is returned when no candidate can take the
// order: nobody is available, in range, inside a working window, or the
// drop-off address carries no coordinates.
var ErrNoAvailableDeliveryPerson = errors.New("no available delivery person")

// DeliveryPersonSelector is a domain service that picks the delivery
// person for an order. Selection is a pure function of the order, the
// candidate list, and the clock:
//
//  1. keep candidates whose availability flag is set and whose service
//     radius covers the drop-off location;
//  2. keep candidates with a working window containing the instant;
//  3. of those, take the one closest to the drop-off, ties broken by
//     candidate order.
//
// The selector never mutates candidates; flipping the chosen person to
// busy is the caller's job, inside its unit of work.
type DeliveryPersonSelector struct{}

// NewDeliveryPersonSelector creates a new DeliveryPersonSelector instance.
func NewDeliveryPersonSelector() *DeliveryPersonSelector {
	return &DeliveryPersonSelector{}
}

// SelectBest returns the best candidate for the order at the given
// instant, or ErrNoAvailableDeliveryPerson. Orders whose delivery address
// has no coordinates match nobody.
func (s *DeliveryPersonSelector) SelectBest(
	o *order.Order,
	candidates []*user.DeliveryPerson,
	now time.Time,
) (*user.DeliveryPerson, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	dropOff, ok := o.DeliveryAddress().Location()
	if !ok {
		return nil, ErrNoAvailableDeliveryPerson
	}

	var best *user.DeliveryPerson
	var bestDistance float64

	for _, candidate := range candidates {
		if candidate == nil || candidate.Validate() != nil {
			continue
		}
		if !candidate.IsAvailableForDelivery(dropOff) || !candidate.IsAvailableAt(now) {
			continue
		}

		distance, ok := candidate.DistanceTo(dropOff)
		if !ok {
			continue
		}

		if best == nil || distance < bestDistance {
			best = candidate
			bestDistance = distance
		}
	}

	if best == nil {
		return nil, ErrNoAvailableDeliveryPerson
	}
	return best, nil
}

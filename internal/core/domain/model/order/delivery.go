package order

import (
	"errors"
	"fmt"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

// ErrDeliveryIsNotConstructed is returned when a Delivery was not created
// through Order.CreateDelivery.
var ErrDeliveryIsNotConstructed = errors.New("Delivery must be created via Order.CreateDelivery")

// DeliveryStatus represents the state of the delivery attached to an order.
type DeliveryStatus int

const (
	// DeliveryStatusUnknown catches uninitialized values.
	DeliveryStatusUnknown DeliveryStatus = iota

	// DeliveryPending: the delivery exists but no delivery person has been
	// assigned yet.
	DeliveryPending

	// DeliveryAssigned: a delivery person has accepted the delivery.
	DeliveryAssigned

	// DeliveryPickedUp: the delivery person collected the order from the
	// restaurant.
	DeliveryPickedUp

	// DeliveryDelivered is a final state: the order was handed over.
	DeliveryDelivered

	// DeliveryFailed is a final state for cancelled or undeliverable orders.
	DeliveryFailed
)

// String returns the human-readable name of the delivery status.
func (s DeliveryStatus) String() string {
	switch s {
	case DeliveryPending:
		return "Pending"
	case DeliveryAssigned:
		return "Assigned"
	case DeliveryPickedUp:
		return "PickedUp"
	case DeliveryDelivered:
		return "Delivered"
	case DeliveryFailed:
		return "Failed"
	default:
		return "Unknown"
	}
}

// Validate checks that the DeliveryStatus is one of the defined states.
func (s DeliveryStatus) Validate() error {
	if s <= DeliveryStatusUnknown || s > DeliveryFailed {
		return errs.NewValueIsInvalidError("delivery status")
	}
	return nil
}

// Delivery is the one-to-one child entity tracking the physical hand-off of
// an order. It is created at most once per order and transitions
// Pending -> Assigned -> PickedUp -> Delivered, with Failed as the abort
// state. All transitions are driven by the owning Order.
type Delivery struct {
	id                    kernel.UUID
	deliveryPersonID      *kernel.UUID
	status                DeliveryStatus
	estimatedDeliveryTime time.Duration
	pickUpTime            *time.Time
	actualDeliveryTime    *time.Time
	guard                 guard.ConstructorGuard
}

func newDelivery(id kernel.UUID) (*Delivery, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	return &Delivery{
		id:     id,
		status: DeliveryPending,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// RestoreDelivery reconstructs a delivery from persistent storage.
func RestoreDelivery(
	id kernel.UUID,
	deliveryPersonID *kernel.UUID,
	status DeliveryStatus,
	estimatedDeliveryTime time.Duration,
	pickUpTime *time.Time,
	actualDeliveryTime *time.Time,
) (*Delivery, error) {
	if err := errors.Join(id.Validate(), status.Validate()); err != nil {
		return nil, err
	}

	if deliveryPersonID != nil {
		if err := deliveryPersonID.Validate(); err != nil {
			return nil, err
		}
	}

	return &Delivery{
		id:                    id,
		deliveryPersonID:      deliveryPersonID,
		status:                status,
		estimatedDeliveryTime: estimatedDeliveryTime,
		pickUpTime:            pickUpTime,
		actualDeliveryTime:    actualDeliveryTime,
		guard:                 guard.NewConstructorGuard(),
	}, nil
}

// Validate checks that the Delivery was created through the aggregate.
func (d *Delivery) Validate() error {
	if d == nil {
		return ErrDeliveryIsNotConstructed
	}
	return d.guard.Validate(ErrDeliveryIsNotConstructed)
}

// ID returns the delivery identifier.
func (d *Delivery) ID() kernel.UUID {
	return d.id
}

// DeliveryPersonID returns the assigned delivery person, or nil before
// assignment.
func (d *Delivery) DeliveryPersonID() *kernel.UUID {
	return d.deliveryPersonID
}

// Status returns the current delivery status.
func (d *Delivery) Status() DeliveryStatus {
	return d.status
}

// EstimatedDeliveryTime returns the estimate recorded at assignment.
func (d *Delivery) EstimatedDeliveryTime() time.Duration {
	return d.estimatedDeliveryTime
}

// PickUpTime returns when the order was collected, or nil.
func (d *Delivery) PickUpTime() *time.Time {
	return d.pickUpTime
}

// ActualDeliveryTime returns when the order was handed over, or nil.
func (d *Delivery) ActualDeliveryTime() *time.Time {
	return d.actualDeliveryTime
}

// assign records the delivery person and the delivery estimate.
// Only a pending delivery can be assigned.
func (d *Delivery) assign(deliveryPersonID kernel.UUID, estimate time.Duration) error {
	if err := deliveryPersonID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("delivery person id", err)
	}

	if estimate <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("estimated delivery time",
			fmt.Errorf("%s is not greater than 0", estimate))
	}

	if d.status != DeliveryPending {
		return errs.NewInvalidTransitionError("delivery", d.status.String(), DeliveryAssigned.String())
	}

	d.deliveryPersonID = &deliveryPersonID
	d.estimatedDeliveryTime = estimate
	d.status = DeliveryAssigned
	return nil
}

// pickUp marks the order as collected from the restaurant.
func (d *Delivery) pickUp(at time.Time) error {
	if d.status != DeliveryAssigned {
		return errs.NewInvalidTransitionError("delivery", d.status.String(), DeliveryPickedUp.String())
	}

	at = at.UTC()
	d.pickUpTime = &at
	d.status = DeliveryPickedUp
	return nil
}

// complete marks the order as handed over to the customer.
// Valid from Assigned or PickedUp; completing twice fails.
func (d *Delivery) complete(at time.Time) error {
	if d.status != DeliveryAssigned && d.status != DeliveryPickedUp {
		return errs.NewInvalidTransitionError("delivery", d.status.String(), DeliveryDelivered.String())
	}

	at = at.UTC()
	d.actualDeliveryTime = &at
	d.status = DeliveryDelivered
	return nil
}

// fail aborts the delivery. Terminal states are left untouched.
func (d *Delivery) fail() {
	if d.status == DeliveryDelivered || d.status == DeliveryFailed {
		return
	}
	d.status = DeliveryFailed
}

package order

import (
	"fooddelivery/internal/pkg/errs"
)

// Status represents the lifecycle state of an order. It implements a state
// machine with defined transitions so orders follow the business workflow:
//
//	Pending ──> Confirmed ──> Preparing ──> OnTheWay ──> Delivered
//	   │            │             │             │
//	   └────────────┴─────────────┴─────────────┴──> Cancelled
//
// Delivered is additionally reachable from every non-terminal state because
// delivery completion is driven by the delivery person and must not depend
// on the restaurant having reported intermediate progress.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusPending is the initial status: the order exists, items may still
	// be edited, and payment has not completed.
	StatusPending

	// StatusConfirmed indicates payment has completed and the restaurant has
	// been notified.
	StatusConfirmed

	// StatusPreparing indicates the restaurant has accepted the order and is
	// preparing it.
	StatusPreparing

	// StatusOnTheWay indicates the delivery person has picked the order up.
	StatusOnTheWay

	// StatusDelivered is a final state: the order reached the customer.
	StatusDelivered

	// StatusCancelled is a final state reachable from any non-terminal state.
	StatusCancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:   "Unknown",
		StatusPending:   "Pending",
		StatusConfirmed: "Confirmed",
		StatusPreparing: "Preparing",
		StatusOnTheWay:  "OnTheWay",
		StatusDelivered: "Delivered",
		StatusCancelled: "Cancelled",
	}
}

// Validate checks that the Status value is one of the defined states.
// StatusUnknown (0) and out-of-range values are invalid.
func (s Status) Validate() error {
	if s <= StatusUnknown || s > StatusCancelled {
		return errs.NewValueIsInvalidError("order status")
	}
	return nil
}

// String returns the human-readable name of the status.
// It implements fmt.Stringer and is safe on any value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the status permits no further transitions.
func (s Status) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// Confirm transitions Pending to Confirmed.
func (s Status) Confirm() (Status, error) {
	if s != StatusPending {
		return 0, errs.NewInvalidTransitionError("order", s.String(), StatusConfirmed.String())
	}
	return StatusConfirmed, nil
}

// StartPreparing transitions Confirmed to Preparing.
func (s Status) StartPreparing() (Status, error) {
	if s != StatusConfirmed {
		return 0, errs.NewInvalidTransitionError("order", s.String(), StatusPreparing.String())
	}
	return StatusPreparing, nil
}

// StartDelivery transitions any active non-terminal state to OnTheWay.
func (s Status) StartDelivery() (Status, error) {
	if s.IsTerminal() || s == StatusOnTheWay || s.Validate() != nil {
		return 0, errs.NewInvalidTransitionError("order", s.String(), StatusOnTheWay.String())
	}
	return StatusOnTheWay, nil
}

// Deliver transitions any non-terminal state to Delivered.
func (s Status) Deliver() (Status, error) {
	if s.IsTerminal() || s.Validate() != nil {
		return 0, errs.NewInvalidTransitionError("order", s.String(), StatusDelivered.String())
	}
	return StatusDelivered, nil
}

// Cancel transitions any non-terminal state to Cancelled.
func (s Status) Cancel() (Status, error) {
	if s.IsTerminal() || s.Validate() != nil {
		return 0, errs.NewInvalidTransitionError("order", s.String(), StatusCancelled.String())
	}
	return StatusCancelled, nil
}

package user

import (
	"errors"
	"fmt"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

// ErrAvailabilityIsNotConstructed is returned when an Availability was not
// created through DeliveryPerson.AddAvailability.
var ErrAvailabilityIsNotConstructed = errors.New("Availability must be created via DeliveryPerson.AddAvailability")

// Availability is a single working window of a delivery person. Windows
// are owned by the DeliveryPerson child and may not overlap each other.
type Availability struct {
	id    kernel.UUID
	start time.Time
	end   time.Time
	guard guard.ConstructorGuard
}

func newAvailability(id kernel.UUID, start, end time.Time) (*Availability, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	start = start.UTC()
	end = end.UTC()
	if !start.Before(end) {
		return nil, errs.NewValueIsInvalidErrorWithCause("availability window",
			fmt.Errorf("start %s is not before end %s", start.Format(time.RFC3339), end.Format(time.RFC3339)))
	}

	return &Availability{
		id:    id,
		start: start,
		end:   end,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// RestoreAvailability reconstructs a window from persistent storage.
func RestoreAvailability(id kernel.UUID, start, end time.Time) (*Availability, error) {
	return newAvailability(id, start, end)
}

// Validate checks that the Availability was created through the aggregate.
func (a *Availability) Validate() error {
	if a == nil {
		return ErrAvailabilityIsNotConstructed
	}
	return a.guard.Validate(ErrAvailabilityIsNotConstructed)
}

// ID returns the window identifier.
func (a *Availability) ID() kernel.UUID {
	return a.id
}

// Start returns the window start, in UTC.
func (a *Availability) Start() time.Time {
	return a.start
}

// End returns the window end, in UTC.
func (a *Availability) End() time.Time {
	return a.end
}

// Contains reports whether the instant falls inside the window.
// Both bounds are inclusive.
func (a *Availability) Contains(t time.Time) bool {
	return !t.Before(a.start) && !t.After(a.end)
}

// Overlaps reports whether two windows share any instant.
func (a *Availability) Overlaps(other *Availability) bool {
	return a.start.Before(other.end) && other.start.Before(a.end)
}

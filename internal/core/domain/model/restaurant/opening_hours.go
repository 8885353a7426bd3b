package restaurant

import (
	"errors"
	"fmt"
	"time"

	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

// ErrOpeningHoursAreNotConstructed is returned when OpeningHours were not
// created through NewOpeningHours.
var ErrOpeningHoursAreNotConstructed = errors.New("OpeningHours must be created via NewOpeningHours constructor")

// OpeningHours is a daily time-of-day window. Windows where the closing
// time is earlier than the opening time wrap past midnight, so a venue
// open 18:00-02:00 is open at 01:30.
type OpeningHours struct {
	opensAt  int // minutes since midnight
	closesAt int
	guard    guard.ConstructorGuard
}

// NewOpeningHours creates a daily window from opening and closing clock
// times. Hours are 0-23 and minutes 0-59; the window must not be empty.
func NewOpeningHours(openHour, openMinute, closeHour, closeMinute int) (OpeningHours, error) {
	if err := errors.Join(
		validateClock("opening time", openHour, openMinute),
		validateClock("closing time", closeHour, closeMinute),
	); err != nil {
		return OpeningHours{}, err
	}

	opensAt := openHour*60 + openMinute
	closesAt := closeHour*60 + closeMinute
	if opensAt == closesAt {
		return OpeningHours{}, errs.NewValueIsInvalidErrorWithCause("opening hours",
			fmt.Errorf("window %02d:%02d-%02d:%02d is empty", openHour, openMinute, closeHour, closeMinute))
	}

	return OpeningHours{
		opensAt:  opensAt,
		closesAt: closesAt,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func validateClock(paramName string, hour, minute int) error {
	if hour < 0 || hour > 23 {
		return errs.NewValueIsOutOfRangeError(paramName, hour, 0, 23)
	}
	if minute < 0 || minute > 59 {
		return errs.NewValueIsOutOfRangeError(paramName, minute, 0, 59)
	}
	return nil
}

// Validate ensures the OpeningHours were created through the constructor.
func (h OpeningHours) Validate() error {
	return h.guard.Validate(ErrOpeningHoursAreNotConstructed)
}

// OpensAt returns the opening time as minutes since midnight.
func (h OpeningHours) OpensAt() int {
	return h.opensAt
}

// ClosesAt returns the closing time as minutes since midnight.
func (h OpeningHours) ClosesAt() int {
	return h.closesAt
}

// IsEqual compares two windows by opening and closing times.
func (h OpeningHours) IsEqual(other OpeningHours) bool {
	return h.opensAt == other.opensAt && h.closesAt == other.closesAt
}

// Contains reports whether the given instant falls inside the window.
// Only the time of day matters; the opening minute is inclusive and the
// closing minute exclusive.
func (h OpeningHours) Contains(t time.Time) bool {
	minute := t.Hour()*60 + t.Minute()

	if h.opensAt < h.closesAt {
		return minute >= h.opensAt && minute < h.closesAt
	}
	// Overnight window: wraps past midnight.
	return minute >= h.opensAt || minute < h.closesAt
}

// String renders the window as "HH:MM-HH:MM".
func (h OpeningHours) String() string {
	return fmt.Sprintf("%02d:%02d-%02d:%02d",
		h.opensAt/60, h.opensAt%60, h.closesAt/60, h.closesAt%60)
}

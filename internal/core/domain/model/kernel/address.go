package kernel

import (
	"errors"
	"fmt"
	"strings"

	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

// ErrAddressIsNotConstructed is returned when validating an Address that was
// not created through NewAddress.
var ErrAddressIsNotConstructed = errs.NewValueIsRequiredError(
	"address must be created via NewAddress constructor")

// Address is an immutable postal address value object. Street, city, state,
// and postal code are required; geographic coordinates are optional because
// not every address can be geocoded. Components that depend on coordinates
// (distance ranking in particular) must check HasLocation first.
type Address struct { //nolint:recvcheck //pointer receivers on private setters for construction-time validation
	street     string
	city       string
	state      string
	postalCode string
	location   *GeoLocation
	guard      guard.ConstructorGuard
}

// NewAddress creates an Address without coordinates.
// All four textual components are required and trimmed of whitespace.
func NewAddress(street, city, state, postalCode string) (Address, error) {
	address := Address{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		address.setStreet(street),
		address.setCity(city),
		address.setState(state),
		address.setPostalCode(postalCode),
	); err != nil {
		return Address{}, err
	}

	return address, nil
}

// NewAddressWithLocation creates an Address carrying geocoded coordinates.
func NewAddressWithLocation(street, city, state, postalCode string, location GeoLocation) (Address, error) {
	address, err := NewAddress(street, city, state, postalCode)
	if err != nil {
		return Address{}, err
	}

	if err = location.Validate(); err != nil {
		return Address{}, err
	}

	address.location = &location
	return address, nil
}

// Validate checks that the Address was created through a constructor.
func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

// Street returns the street line.
func (a Address) Street() string {
	return a.street
}

// City returns the city.
func (a Address) City() string {
	return a.city
}

// State returns the state or region.
func (a Address) State() string {
	return a.state
}

// PostalCode returns the postal code.
func (a Address) PostalCode() string {
	return a.postalCode
}

// HasLocation reports whether the address carries geocoded coordinates.
func (a Address) HasLocation() bool {
	return a.location != nil
}

// Location returns the geocoded coordinates.
// The boolean is false when the address has none.
func (a Address) Location() (GeoLocation, bool) {
	if a.location == nil {
		return GeoLocation{}, false
	}
	return *a.location, true
}

// String implements fmt.Stringer.
func (a Address) String() string {
	return fmt.Sprintf("%s, %s, %s %s", a.street, a.city, a.state, a.postalCode)
}

func (a *Address) setStreet(street string) error {
	street = strings.TrimSpace(street)
	if street == "" {
		return errs.NewValueIsRequiredError("street")
	}

	a.street = street
	return nil
}

func (a *Address) setCity(city string) error {
	city = strings.TrimSpace(city)
	if city == "" {
		return errs.NewValueIsRequiredError("city")
	}

	a.city = city
	return nil
}

func (a *Address) setState(state string) error {
	state = strings.TrimSpace(state)
	if state == "" {
		return errs.NewValueIsRequiredError("state")
	}

	a.state = state
	return nil
}

func (a *Address) setPostalCode(postalCode string) error {
	postalCode = strings.TrimSpace(postalCode)
	if postalCode == "" {
		return errs.NewValueIsRequiredError("postal code")
	}

	a.postalCode = postalCode
	return nil
}

package kernel

import (
	"net/mail"
	"strings"

	"fooddelivery/internal/pkg/errs"
)

// ErrEmailIsNotConstructed is returned when validating an Email that was not
// created through NewEmail.
var ErrEmailIsNotConstructed = errs.NewValueIsRequiredError(
	"email must be created via NewEmail constructor")

// Email is an immutable, format-validated email address.
// Addresses are lowercased on construction so equality and uniqueness
// comparisons are case-insensitive.
type Email struct {
	address string
}

// NewEmail validates and normalizes an email address.
func NewEmail(address string) (Email, error) {
	address = strings.ToLower(strings.TrimSpace(address))
	if address == "" {
		return Email{}, errs.NewValueIsRequiredError("email")
	}

	parsed, err := mail.ParseAddress(address)
	if err != nil || parsed.Address != address {
		return Email{}, errs.NewValueIsInvalidErrorWithCause("email", err)
	}

	return Email{address: address}, nil
}

// Validate checks that the Email was created through NewEmail.
func (e Email) Validate() error {
	if e.address == "" {
		return ErrEmailIsNotConstructed
	}
	return nil
}

// String returns the normalized address.
func (e Email) String() string {
	return e.address
}

// IsEqual compares two emails by normalized value.
func (e Email) IsEqual(other Email) bool {
	return e.address == other.address
}

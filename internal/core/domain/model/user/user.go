package user

import (
	"errors"
	"strings"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

// ErrUserIsNotConstructed is returned when a User instance was not created
// through the NewUser factory.
var ErrUserIsNotConstructed = errors.New("User must be created via NewUser constructor")

// User is the aggregate root for an account. Credentials and the name are
// always present; the customer and delivery-person profiles are optional
// children attached at most once each, so one account can act in both
// roles.
type User struct {
	id             kernel.UUID
	email          kernel.Email
	passwordHash   string
	firstName      string
	lastName       string
	customer       *Customer
	deliveryPerson *DeliveryPerson
	createdAt      time.Time
	modifiedAt     time.Time
	guard          guard.ConstructorGuard
}

// NewUser creates a user without customer or delivery-person profiles.
// The password hash must already be computed; the domain never sees raw
// passwords.
func NewUser(id kernel.UUID, email kernel.Email, passwordHash, firstName, lastName string) (*User, error) {
	now := time.Now().UTC()
	u := &User{
		createdAt:  now,
		modifiedAt: now,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		u.setID(id),
		u.setEmail(email),
		u.setPasswordHash(passwordHash),
		u.setFirstName(firstName),
		u.setLastName(lastName),
	); err != nil {
		return nil, err
	}

	return u, nil
}

// RestoreUser reconstructs a user aggregate from persistent storage,
// including the optional profiles.
func RestoreUser(
	id kernel.UUID,
	email kernel.Email,
	passwordHash, firstName, lastName string,
	customer *Customer,
	deliveryPerson *DeliveryPerson,
	createdAt, modifiedAt time.Time,
) (*User, error) {
	u, err := NewUser(id, email, passwordHash, firstName, lastName)
	if err != nil {
		return nil, err
	}

	if customer != nil {
		if err = customer.Validate(); err != nil {
			return nil, err
		}
	}

	if deliveryPerson != nil {
		if err = deliveryPerson.Validate(); err != nil {
			return nil, err
		}
	}

	u.customer = customer
	u.deliveryPerson = deliveryPerson
	u.createdAt = createdAt
	u.modifiedAt = modifiedAt
	return u, nil
}

// Validate ensures the User was created through a constructor.
func (u *User) Validate() error {
	if u == nil {
		return ErrUserIsNotConstructed
	}
	return u.guard.Validate(ErrUserIsNotConstructed)
}

// IsEqual compares two users by identifier.
func (u *User) IsEqual(other *User) bool {
	return other != nil && u.id.IsEqual(other.id)
}

// ID returns the user identifier.
func (u *User) ID() kernel.UUID {
	return u.id
}

// Email returns the account email.
func (u *User) Email() kernel.Email {
	return u.email
}

// PasswordHash returns the stored password hash.
func (u *User) PasswordHash() string {
	return u.passwordHash
}

// FirstName returns the given name.
func (u *User) FirstName() string {
	return u.firstName
}

// LastName returns the family name.
func (u *User) LastName() string {
	return u.lastName
}

// FullName returns "First Last".
func (u *User) FullName() string {
	return u.firstName + " " + u.lastName
}

// Customer returns the customer profile, or nil.
func (u *User) Customer() *Customer {
	return u.customer
}

// DeliveryPerson returns the courier profile, or nil.
func (u *User) DeliveryPerson() *DeliveryPerson {
	return u.deliveryPerson
}

// CreatedAt returns the creation timestamp, in UTC.
func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

// ModifiedAt returns the last modification timestamp, in UTC.
func (u *User) ModifiedAt() time.Time {
	return u.modifiedAt
}

// AddCustomerDetails attaches the customer profile. A second call is a
// conflict and leaves the first profile untouched.
func (u *User) AddCustomerDetails(defaultAddress kernel.Address) error {
	if u.customer != nil {
		return errs.NewObjectAlreadyExistsError("customer details")
	}

	customer, err := newCustomer(defaultAddress)
	if err != nil {
		return err
	}

	u.customer = customer
	u.touch()
	return nil
}

// AddDeliveryPersonDetails attaches the courier profile. A second call is
// a conflict and leaves the first profile untouched.
func (u *User) AddDeliveryPersonDetails(vehicle Vehicle) error {
	if u.deliveryPerson != nil {
		return errs.NewObjectAlreadyExistsError("delivery person details")
	}

	deliveryPerson, err := newDeliveryPerson(u.id, vehicle)
	if err != nil {
		return err
	}

	u.deliveryPerson = deliveryPerson
	u.touch()
	return nil
}

// SetDefaultAddress replaces the customer's default delivery address.
func (u *User) SetDefaultAddress(address kernel.Address) error {
	if u.customer == nil {
		return errs.NewObjectNotFoundError("customer details", u.id.String())
	}

	if err := u.customer.setDefaultAddress(address); err != nil {
		return err
	}

	u.touch()
	return nil
}

// AddFavoriteRestaurant marks a restaurant as the customer's favourite.
// Adding an existing favourite is a no-op.
func (u *User) AddFavoriteRestaurant(restaurantID kernel.UUID) error {
	if u.customer == nil {
		return errs.NewObjectNotFoundError("customer details", u.id.String())
	}

	if err := u.customer.addFavoriteRestaurant(restaurantID); err != nil {
		return err
	}

	u.touch()
	return nil
}

// RemoveFavoriteRestaurant unmarks a favourite restaurant.
func (u *User) RemoveFavoriteRestaurant(restaurantID kernel.UUID) error {
	if u.customer == nil {
		return errs.NewObjectNotFoundError("customer details", u.id.String())
	}

	if err := u.customer.removeFavoriteRestaurant(restaurantID); err != nil {
		return err
	}

	u.touch()
	return nil
}

func (u *User) touch() {
	u.modifiedAt = time.Now().UTC()
}

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setEmail(email kernel.Email) error {
	if err := email.Validate(); err != nil {
		return err
	}
	u.email = email
	return nil
}

func (u *User) setPasswordHash(passwordHash string) error {
	if strings.TrimSpace(passwordHash) == "" {
		return errs.NewValueIsRequiredError("password hash")
	}
	u.passwordHash = passwordHash
	return nil
}

func (u *User) setFirstName(firstName string) error {
	firstName = strings.TrimSpace(firstName)
	if firstName == "" {
		return errs.NewValueIsRequiredError("first name")
	}
	u.firstName = firstName
	return nil
}

func (u *User) setLastName(lastName string) error {
	lastName = strings.TrimSpace(lastName)
	if lastName == "" {
		return errs.NewValueIsRequiredError("last name")
	}
	u.lastName = lastName
	return nil
}

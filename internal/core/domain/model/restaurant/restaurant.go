package restaurant

import (
	"errors"
	"strings"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

// ErrRestaurantIsNotConstructed is returned when a Restaurant instance was
// not created through the NewRestaurant factory.
var ErrRestaurantIsNotConstructed = errors.New("Restaurant must be created via NewRestaurant constructor")

// Restaurant is the aggregate root for a venue and its menu. New
// restaurants start active; Activate and Deactivate are idempotent.
type Restaurant struct {
	id           kernel.UUID
	ownerID      kernel.UUID
	name         string
	description  string
	email        kernel.Email
	phone        string
	address      kernel.Address
	openingHours OpeningHours
	isActive     bool
	menuItems    []*MenuItem
	createdAt    time.Time
	modifiedAt   time.Time
	guard        guard.ConstructorGuard
}

// NewRestaurant creates an active restaurant with an empty menu.
func NewRestaurant(
	id, ownerID kernel.UUID,
	name, description string,
	email kernel.Email,
	phone string,
	address kernel.Address,
	openingHours OpeningHours,
) (*Restaurant, error) {
	now := time.Now().UTC()
	r := &Restaurant{
		isActive:   true,
		createdAt:  now,
		modifiedAt: now,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setID(id),
		r.setOwnerID(ownerID),
		r.setName(name),
		r.setDescription(description),
		r.setEmail(email),
		r.setPhone(phone),
		r.setAddress(address),
		r.setOpeningHours(openingHours),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// RestoreRestaurant reconstructs a restaurant aggregate from persistent
// storage, including its menu items.
func RestoreRestaurant(
	id, ownerID kernel.UUID,
	name, description string,
	email kernel.Email,
	phone string,
	address kernel.Address,
	openingHours OpeningHours,
	isActive bool,
	menuItems []*MenuItem,
	createdAt, modifiedAt time.Time,
) (*Restaurant, error) {
	r, err := NewRestaurant(id, ownerID, name, description, email, phone, address, openingHours)
	if err != nil {
		return nil, err
	}

	for _, item := range menuItems {
		if err = item.Validate(); err != nil {
			return nil, err
		}
	}

	r.isActive = isActive
	r.menuItems = make([]*MenuItem, len(menuItems))
	copy(r.menuItems, menuItems)
	r.createdAt = createdAt
	r.modifiedAt = modifiedAt
	return r, nil
}

// Validate ensures the Restaurant was created through a constructor.
func (r *Restaurant) Validate() error {
	if r == nil {
		return ErrRestaurantIsNotConstructed
	}
	return r.guard.Validate(ErrRestaurantIsNotConstructed)
}

// IsEqual compares two restaurants by identifier.
func (r *Restaurant) IsEqual(other *Restaurant) bool {
	return other != nil && r.id.IsEqual(other.id)
}

// ID returns the restaurant identifier.
func (r *Restaurant) ID() kernel.UUID {
	return r.id
}

// OwnerID returns the owning user.
func (r *Restaurant) OwnerID() kernel.UUID {
	return r.ownerID
}

// Name returns the venue name.
func (r *Restaurant) Name() string {
	return r.name
}

// Description returns the free-form description, possibly empty.
func (r *Restaurant) Description() string {
	return r.description
}

// Email returns the contact email.
func (r *Restaurant) Email() kernel.Email {
	return r.email
}

// Phone returns the contact phone number.
func (r *Restaurant) Phone() string {
	return r.phone
}

// Address returns the venue address.
func (r *Restaurant) Address() kernel.Address {
	return r.address
}

// OpeningHours returns the daily opening window.
func (r *Restaurant) OpeningHours() OpeningHours {
	return r.openingHours
}

// IsActive reports whether the restaurant accepts orders.
func (r *Restaurant) IsActive() bool {
	return r.isActive
}

// MenuItems returns the menu in insertion order.
// The returned slice is a copy; the items themselves are shared.
func (r *Restaurant) MenuItems() []*MenuItem {
	out := make([]*MenuItem, len(r.menuItems))
	copy(out, r.menuItems)
	return out
}

// CreatedAt returns the creation timestamp, in UTC.
func (r *Restaurant) CreatedAt() time.Time {
	return r.createdAt
}

// ModifiedAt returns the last modification timestamp, in UTC.
func (r *Restaurant) ModifiedAt() time.Time {
	return r.modifiedAt
}

// GetMenuItem returns the menu item with the given identifier.
func (r *Restaurant) GetMenuItem(id kernel.UUID) (*MenuItem, error) {
	for _, item := range r.menuItems {
		if item.ID().IsEqual(id) {
			return item, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("menu item", id.String())
}

// AddMenuItem appends a dish to the menu. Names must be unique within the
// restaurant ignoring letter case, so "Burger" conflicts with "burger".
// New items are available by default.
func (r *Restaurant) AddMenuItem(name, description string, price float64, category Category) (*MenuItem, error) {
	if r.findByName(name, kernel.UUID{}) != nil {
		return nil, errs.NewObjectAlreadyExistsError("menu item " + strings.TrimSpace(name))
	}

	item, err := newMenuItem(kernel.NewUUID(), name, description, price, category)
	if err != nil {
		return nil, err
	}

	r.menuItems = append(r.menuItems, item)
	r.touch()
	return item, nil
}

// UpdateMenuItem rewrites an existing dish. The name uniqueness check
// excludes the item itself, so renaming only the letter case succeeds.
func (r *Restaurant) UpdateMenuItem(
	id kernel.UUID,
	name, description string,
	price float64,
	category Category,
	isAvailable bool,
) error {
	item, err := r.GetMenuItem(id)
	if err != nil {
		return err
	}

	if r.findByName(name, id) != nil {
		return errs.NewObjectAlreadyExistsError("menu item " + strings.TrimSpace(name))
	}

	if err = item.update(name, description, price, category, isAvailable); err != nil {
		return err
	}

	r.touch()
	return nil
}

// RemoveMenuItem removes the dish with the given identifier.
func (r *Restaurant) RemoveMenuItem(id kernel.UUID) error {
	for i, item := range r.menuItems {
		if item.ID().IsEqual(id) {
			r.menuItems = append(r.menuItems[:i], r.menuItems[i+1:]...)
			r.touch()
			return nil
		}
	}
	return errs.NewObjectNotFoundError("menu item", id.String())
}

// Activate enables ordering. Activating an active restaurant is a no-op.
func (r *Restaurant) Activate() {
	if r.isActive {
		return
	}
	r.isActive = true
	r.touch()
}

// Deactivate disables ordering. Deactivating an inactive restaurant is a
// no-op.
func (r *Restaurant) Deactivate() {
	if !r.isActive {
		return
	}
	r.isActive = false
	r.touch()
}

// IsOpenAt reports whether the restaurant accepts orders at the given
// instant: it must be active and the time of day must fall inside the
// opening window.
func (r *Restaurant) IsOpenAt(t time.Time) bool {
	return r.isActive && r.openingHours.Contains(t)
}

// findByName returns the menu item carrying the name ignoring case, or nil.
// An item with the excluded identifier never matches.
func (r *Restaurant) findByName(name string, exclude kernel.UUID) *MenuItem {
	for _, item := range r.menuItems {
		if item.hasName(name) && !item.ID().IsEqual(exclude) {
			return item
		}
	}
	return nil
}

func (r *Restaurant) touch() {
	r.modifiedAt = time.Now().UTC()
}

func (r *Restaurant) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Restaurant) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("owner id", err)
	}
	r.ownerID = ownerID
	return nil
}

func (r *Restaurant) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("restaurant name")
	}
	r.name = name
	return nil
}

func (r *Restaurant) setDescription(description string) error {
	r.description = strings.TrimSpace(description)
	return nil
}

func (r *Restaurant) setEmail(email kernel.Email) error {
	if err := email.Validate(); err != nil {
		return err
	}
	r.email = email
	return nil
}

func (r *Restaurant) setPhone(phone string) error {
	if strings.TrimSpace(phone) == "" {
		return errs.NewValueIsRequiredError("phone")
	}
	r.phone = strings.TrimSpace(phone)
	return nil
}

func (r *Restaurant) setAddress(address kernel.Address) error {
	if err := address.Validate(); err != nil {
		return err
	}
	r.address = address
	return nil
}

func (r *Restaurant) setOpeningHours(openingHours OpeningHours) error {
	if err := openingHours.Validate(); err != nil {
		return err
	}
	r.openingHours = openingHours
	return nil
}

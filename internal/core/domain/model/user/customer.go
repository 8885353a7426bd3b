package user

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

// ErrCustomerIsNotConstructed is returned when a Customer was not created
// through User.AddCustomerDetails.
var ErrCustomerIsNotConstructed = errors.New("Customer must be created via User.AddCustomerDetails")

// Customer is the optional customer profile of a user: the default
// delivery address plus the set of favourite restaurants.
type Customer struct {
	defaultAddress      kernel.Address
	favoriteRestaurants []kernel.UUID
	guard               guard.ConstructorGuard
}

func newCustomer(defaultAddress kernel.Address) (*Customer, error) {
	if err := defaultAddress.Validate(); err != nil {
		return nil, err
	}

	return &Customer{
		defaultAddress: defaultAddress,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// RestoreCustomer reconstructs a customer profile from persistent storage.
func RestoreCustomer(defaultAddress kernel.Address, favoriteRestaurants []kernel.UUID) (*Customer, error) {
	c, err := newCustomer(defaultAddress)
	if err != nil {
		return nil, err
	}

	for _, id := range favoriteRestaurants {
		if err = id.Validate(); err != nil {
			return nil, err
		}
	}

	c.favoriteRestaurants = make([]kernel.UUID, len(favoriteRestaurants))
	copy(c.favoriteRestaurants, favoriteRestaurants)
	return c, nil
}

// Validate checks that the Customer was created through the aggregate.
func (c *Customer) Validate() error {
	if c == nil {
		return ErrCustomerIsNotConstructed
	}
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

// DefaultAddress returns the default delivery address.
func (c *Customer) DefaultAddress() kernel.Address {
	return c.defaultAddress
}

// FavoriteRestaurants returns the favourite restaurant ids in the order
// they were added. The returned slice is a copy.
func (c *Customer) FavoriteRestaurants() []kernel.UUID {
	out := make([]kernel.UUID, len(c.favoriteRestaurants))
	copy(out, c.favoriteRestaurants)
	return out
}

// IsFavoriteRestaurant reports whether the restaurant is marked favourite.
func (c *Customer) IsFavoriteRestaurant(restaurantID kernel.UUID) bool {
	for _, id := range c.favoriteRestaurants {
		if id.IsEqual(restaurantID) {
			return true
		}
	}
	return false
}

// addFavoriteRestaurant marks a restaurant as favourite. Adding an existing
// favourite is a no-op, so the collection behaves as a set.
func (c *Customer) addFavoriteRestaurant(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("restaurant id", err)
	}

	if c.IsFavoriteRestaurant(restaurantID) {
		return nil
	}

	c.favoriteRestaurants = append(c.favoriteRestaurants, restaurantID)
	return nil
}

// removeFavoriteRestaurant unmarks a favourite restaurant.
func (c *Customer) removeFavoriteRestaurant(restaurantID kernel.UUID) error {
	for i, id := range c.favoriteRestaurants {
		if id.IsEqual(restaurantID) {
			c.favoriteRestaurants = append(c.favoriteRestaurants[:i], c.favoriteRestaurants[i+1:]...)
			return nil
		}
	}
	return errs.NewObjectNotFoundError("favorite restaurant", restaurantID.String())
}

// setDefaultAddress replaces the default delivery address.
func (c *Customer) setDefaultAddress(address kernel.Address) error {
	if err := address.Validate(); err != nil {
		return err
	}
	c.defaultAddress = address
	return nil
}

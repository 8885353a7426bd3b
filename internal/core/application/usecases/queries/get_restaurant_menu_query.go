package queries

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/restaurant"
	"fooddelivery/internal/pkg/guard"
)

var ErrGetRestaurantMenuQueryIsNotConstructed = errors.New(
	"GetRestaurantMenuQuery must be created via NewGetRestaurantMenuQuery constructor",
)

// GetRestaurantMenuQuery retrieves the orderable menu of one restaurant.
type GetRestaurantMenuQuery struct { //nolint:recvcheck //using for validation
	restaurantID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetRestaurantMenuQuery creates a query for a restaurant's menu.
func NewGetRestaurantMenuQuery(restaurantID kernel.UUID) (GetRestaurantMenuQuery, error) {
	if err := restaurantID.Validate(); err != nil {
		return GetRestaurantMenuQuery{}, err
	}

	return GetRestaurantMenuQuery{
		restaurantID: restaurantID,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetRestaurantMenuQuery) Validate() error {
	return q.guard.Validate(ErrGetRestaurantMenuQueryIsNotConstructed)
}

// RestaurantID returns the restaurant whose menu is requested.
func (q GetRestaurantMenuQuery) RestaurantID() kernel.UUID {
	return q.restaurantID
}

// GetRestaurantMenuQueryResponse is the read model for one orderable
// dish.
type GetRestaurantMenuQueryResponse struct {
	ID          kernel.UUID
	Name        string
	Description string
	Price       float64
	Category    restaurant.Category
}

package http

import (
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/model/restaurant"
	"fooddelivery/internal/core/domain/model/user"
	"fooddelivery/internal/pkg/errs"
)

// addressRequest carries a postal address. Coordinates are optional but
// must come in pairs.
type addressRequest struct {
	Street     string   `json:"street" validate:"required"`
	City       string   `json:"city" validate:"required"`
	State      string   `json:"state" validate:"required"`
	PostalCode string   `json:"postal_code" validate:"required"`
	Latitude   *float64 `json:"latitude"`
	Longitude  *float64 `json:"longitude"`
}

func (r addressRequest) toDomain() (kernel.Address, error) {
	if r.Latitude != nil && r.Longitude != nil {
		location, err := kernel.NewGeoLocation(*r.Latitude, *r.Longitude)
		if err != nil {
			return kernel.Address{}, err
		}
		return kernel.NewAddressWithLocation(r.Street, r.City, r.State, r.PostalCode, location)
	}
	if r.Latitude != nil || r.Longitude != nil {
		return kernel.Address{}, errs.NewValueIsRequiredError("latitude and longitude")
	}
	return kernel.NewAddress(r.Street, r.City, r.State, r.PostalCode)
}

type registerUserRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
}

type signInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type addCustomerDetailsRequest struct {
	DefaultAddress addressRequest `json:"default_address" validate:"required"`
}

type addDeliveryPersonDetailsRequest struct {
	VehicleType  string `json:"vehicle_type" validate:"required,oneof=bicycle scooter motorcycle car"`
	LicensePlate string `json:"license_plate"`
}

type addAvailabilityRequest struct {
	Start string `json:"start" validate:"required"`
	End   string `json:"end" validate:"required"`
}

type createRestaurantRequest struct {
	Name        string         `json:"name" validate:"required"`
	Description string         `json:"description"`
	Email       string         `json:"email" validate:"required,email"`
	Phone       string         `json:"phone" validate:"required"`
	Address     addressRequest `json:"address" validate:"required"`
	OpensAt     openingTime    `json:"opens_at" validate:"required"`
	ClosesAt    openingTime    `json:"closes_at" validate:"required"`
}

type openingTime struct {
	Hour   int `json:"hour" validate:"min=0,max=23"`
	Minute int `json:"minute" validate:"min=0,max=59"`
}

type menuItemRequest struct {
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	Category    string  `json:"category" validate:"required,oneof=appetizer main_course dessert beverage side"`
	IsAvailable *bool   `json:"is_available"`
}

type createOrderRequest struct {
	RestaurantID    string         `json:"restaurant_id" validate:"required,uuid"`
	DeliveryAddress addressRequest `json:"delivery_address" validate:"required"`
}

type addOrderItemRequest struct {
	MenuItemID string `json:"menu_item_id" validate:"required,uuid"`
	Quantity   int    `json:"quantity" validate:"required,gt=0"`
}

type setPaymentRequest struct {
	Method        string `json:"method" validate:"required,oneof=card cash wallet"`
	TransactionID string `json:"transaction_id" validate:"required"`
}

func parseVehicleType(s string) (user.VehicleType, error) {
	switch s {
	case "bicycle":
		return user.VehicleTypeBicycle, nil
	case "scooter":
		return user.VehicleTypeScooter, nil
	case "motorcycle":
		return user.VehicleTypeMotorcycle, nil
	case "car":
		return user.VehicleTypeCar, nil
	default:
		return user.VehicleTypeUnknown, errs.NewValueIsInvalidError("vehicle type")
	}
}

func parseCategory(s string) (restaurant.Category, error) {
	switch s {
	case "appetizer":
		return restaurant.CategoryAppetizer, nil
	case "main_course":
		return restaurant.CategoryMainCourse, nil
	case "dessert":
		return restaurant.CategoryDessert, nil
	case "beverage":
		return restaurant.CategoryBeverage, nil
	case "side":
		return restaurant.CategorySide, nil
	default:
		return restaurant.CategoryUnknown, errs.NewValueIsInvalidError("category")
	}
}

func parsePaymentMethod(s string) (order.PaymentMethod, error) {
	switch s {
	case "card":
		return order.PaymentMethodCard, nil
	case "cash":
		return order.PaymentMethodCash, nil
	case "wallet":
		return order.PaymentMethodWallet, nil
	default:
		return order.PaymentMethodUnknown, errs.NewValueIsInvalidError("payment method")
	}
}

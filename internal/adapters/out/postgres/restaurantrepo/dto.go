// Package restaurantrepo persists the restaurant aggregate with GORM,
// menu items included.
package restaurantrepo

import (
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/restaurant"

	"github.com/google/uuid"
)

// RestaurantDTO represents the database structure for persisting
// restaurant aggregates. Opening hours are stored as minutes since
// midnight, matching the domain representation.
type RestaurantDTO struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OwnerID         uuid.UUID  `gorm:"type:uuid;not null;index"`
	Name            string     `gorm:"type:varchar(255);not null"`
	Description     string     `gorm:"type:text"`
	Email           string     `gorm:"type:varchar(255);not null"`
	Phone           string     `gorm:"type:varchar(32);not null"`
	Address         AddressDTO `gorm:"embedded;embeddedPrefix:address_"`
	OpensAtMinutes  int        `gorm:"type:int;not null"`
	ClosesAtMinutes int        `gorm:"type:int;not null"`
	IsActive        bool       `gorm:"not null;index"`
	CreatedAt       time.Time
	ModifiedAt      time.Time

	MenuItems []MenuItemDTO `gorm:"foreignKey:RestaurantID;constraint:OnDelete:CASCADE"`
}

// TableName overrides GORM's default naming convention to use "restaurants".
func (RestaurantDTO) TableName() string {
	return "restaurants"
}

// AddressDTO is the embedded venue address.
type AddressDTO struct {
	Street     string `gorm:"type:varchar(255);not null"`
	City       string `gorm:"type:varchar(255);not null"`
	State      string `gorm:"type:varchar(255);not null"`
	PostalCode string `gorm:"type:varchar(32);not null"`
	Latitude   *float64
	Longitude  *float64
}

// MenuItemDTO represents a dish on the menu. The composite unique index
// backs up the aggregate's name-uniqueness rule; case-insensitive
// collisions are caught by the aggregate before they reach the database.
type MenuItemDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	RestaurantID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_restaurant_menu_name"`
	Name         string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_restaurant_menu_name"`
	Description  string    `gorm:"type:text"`
	Price        float64   `gorm:"not null"`
	Category     int       `gorm:"type:int;not null"`
	IsAvailable  bool      `gorm:"not null"`
}

// TableName overrides GORM's default naming convention to use "menu_items".
func (MenuItemDTO) TableName() string {
	return "menu_items"
}

// fromDomain converts a restaurant domain aggregate to its database
// representation, menu included.
func fromDomain(aggregate *restaurant.Restaurant) RestaurantDTO {
	restaurantID := aggregate.ID().Bytes()

	menuItems := make([]MenuItemDTO, 0, len(aggregate.MenuItems()))
	for _, item := range aggregate.MenuItems() {
		menuItems = append(menuItems, MenuItemDTO{
			ID:           item.ID().Bytes(),
			RestaurantID: restaurantID,
			Name:         item.Name(),
			Description:  item.Description(),
			Price:        item.Price(),
			Category:     int(item.Category()),
			IsAvailable:  item.IsAvailable(),
		})
	}

	dto := RestaurantDTO{
		ID:              restaurantID,
		OwnerID:         aggregate.OwnerID().Bytes(),
		Name:            aggregate.Name(),
		Description:     aggregate.Description(),
		Email:           aggregate.Email().String(),
		Phone:           aggregate.Phone(),
		OpensAtMinutes:  aggregate.OpeningHours().OpensAt(),
		ClosesAtMinutes: aggregate.OpeningHours().ClosesAt(),
		IsActive:        aggregate.IsActive(),
		CreatedAt:       aggregate.CreatedAt(),
		ModifiedAt:      aggregate.ModifiedAt(),
		MenuItems:       menuItems,
	}

	address := aggregate.Address()
	dto.Address = AddressDTO{
		Street:     address.Street(),
		City:       address.City(),
		State:      address.State(),
		PostalCode: address.PostalCode(),
	}
	if location, ok := address.Location(); ok {
		lat := location.Latitude()
		lon := location.Longitude()
		dto.Address.Latitude = &lat
		dto.Address.Longitude = &lon
	}

	return dto
}

// toDomain converts a database DTO to a restaurant domain aggregate using
// RestoreRestaurant.
func toDomain(dto RestaurantDTO) (*restaurant.Restaurant, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	ownerID, err := kernel.UUIDFromBytes(dto.OwnerID[:])
	if err != nil {
		return nil, err
	}

	email, err := kernel.NewEmail(dto.Email)
	if err != nil {
		return nil, err
	}

	address, err := addressToDomain(dto.Address)
	if err != nil {
		return nil, err
	}

	openingHours, err := restaurant.NewOpeningHours(
		dto.OpensAtMinutes/60, dto.OpensAtMinutes%60,
		dto.ClosesAtMinutes/60, dto.ClosesAtMinutes%60,
	)
	if err != nil {
		return nil, err
	}

	menuItems := make([]*restaurant.MenuItem, 0, len(dto.MenuItems))
	for _, itemDTO := range dto.MenuItems {
		item, itemErr := menuItemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		menuItems = append(menuItems, item)
	}

	return restaurant.RestoreRestaurant(
		id, ownerID,
		dto.Name, dto.Description,
		email,
		dto.Phone,
		address,
		openingHours,
		dto.IsActive,
		menuItems,
		dto.CreatedAt,
		dto.ModifiedAt,
	)
}

func addressToDomain(dto AddressDTO) (kernel.Address, error) {
	if dto.Latitude == nil || dto.Longitude == nil {
		return kernel.NewAddress(dto.Street, dto.City, dto.State, dto.PostalCode)
	}

	location, err := kernel.NewGeoLocation(*dto.Latitude, *dto.Longitude)
	if err != nil {
		return kernel.Address{}, err
	}

	return kernel.NewAddressWithLocation(dto.Street, dto.City, dto.State, dto.PostalCode, location)
}

func menuItemToDomain(dto MenuItemDTO) (*restaurant.MenuItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return restaurant.RestoreMenuItem(
		id,
		dto.Name, dto.Description,
		dto.Price,
		restaurant.Category(dto.Category),
		dto.IsAvailable,
	)
}

// Package userrepo persists the user aggregate with GORM: the account
// row, the optional customer profile with its favourite restaurants, and
// the optional delivery-person profile. The delivery-person tables belong
// to deliverypersonrepo; this package only maps them when loading or
// attaching a profile.
package userrepo

import (
	"sort"
	"time"

	"fooddelivery/internal/adapters/out/postgres/deliverypersonrepo"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/user"

	"github.com/google/uuid"
)

// UserDTO represents the database structure for persisting user aggregates.
type UserDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email        string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	FirstName    string    `gorm:"type:varchar(255);not null"`
	LastName     string    `gorm:"type:varchar(255);not null"`
	CreatedAt    time.Time
	ModifiedAt   time.Time

	Customer *CustomerDTO `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`

	// The delivery-person profile shares the user's primary key.
	DeliveryPerson *deliverypersonrepo.DeliveryPersonDTO `gorm:"foreignKey:ID;references:ID"`
}

// TableName overrides GORM's default naming convention to use "users".
func (UserDTO) TableName() string {
	return "users"
}

// CustomerDTO represents the optional customer profile.
type CustomerDTO struct {
	UserID    uuid.UUID               `gorm:"type:uuid;primaryKey"`
	Address   AddressDTO              `gorm:"embedded;embeddedPrefix:address_"`
	Favorites []FavoriteRestaurantDTO `gorm:"foreignKey:UserID;references:UserID;constraint:OnDelete:CASCADE"`
}

// TableName overrides GORM's default naming convention to use "customers".
func (CustomerDTO) TableName() string {
	return "customers"
}

// AddressDTO is the embedded default delivery address.
type AddressDTO struct {
	Street     string `gorm:"type:varchar(255);not null"`
	City       string `gorm:"type:varchar(255);not null"`
	State      string `gorm:"type:varchar(255);not null"`
	PostalCode string `gorm:"type:varchar(32);not null"`
	Latitude   *float64
	Longitude  *float64
}

// FavoriteRestaurantDTO marks a restaurant as a customer's favourite.
// Position preserves insertion order across round trips.
type FavoriteRestaurantDTO struct {
	UserID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	RestaurantID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Position     int       `gorm:"type:int;not null"`
}

// TableName overrides GORM's default naming convention to use
// "customer_favorite_restaurants".
func (FavoriteRestaurantDTO) TableName() string {
	return "customer_favorite_restaurants"
}

// fromDomain converts a user domain aggregate to its database
// representation, profiles included.
func fromDomain(aggregate *user.User) UserDTO {
	userID := aggregate.ID().Bytes()

	dto := UserDTO{
		ID:           userID,
		Email:        aggregate.Email().String(),
		PasswordHash: aggregate.PasswordHash(),
		FirstName:    aggregate.FirstName(),
		LastName:     aggregate.LastName(),
		CreatedAt:    aggregate.CreatedAt(),
		ModifiedAt:   aggregate.ModifiedAt(),
	}

	if customer := aggregate.Customer(); customer != nil {
		customerDTO := customerFromDomain(userID, customer)
		dto.Customer = &customerDTO
	}

	if person := aggregate.DeliveryPerson(); person != nil {
		personDTO := deliverypersonrepo.FromDomain(person)
		dto.DeliveryPerson = &personDTO
	}

	return dto
}

func customerFromDomain(userID uuid.UUID, customer *user.Customer) CustomerDTO {
	favorites := make([]FavoriteRestaurantDTO, 0, len(customer.FavoriteRestaurants()))
	for i, restaurantID := range customer.FavoriteRestaurants() {
		favorites = append(favorites, FavoriteRestaurantDTO{
			UserID:       userID,
			RestaurantID: restaurantID.Bytes(),
			Position:     i,
		})
	}

	dto := CustomerDTO{
		UserID:    userID,
		Favorites: favorites,
	}

	address := customer.DefaultAddress()
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

// toDomain converts a database DTO to a user domain aggregate using
// RestoreUser.
func toDomain(dto UserDTO) (*user.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	email, err := kernel.NewEmail(dto.Email)
	if err != nil {
		return nil, err
	}

	var customer *user.Customer
	if dto.Customer != nil {
		customer, err = customerToDomain(*dto.Customer)
		if err != nil {
			return nil, err
		}
	}

	var person *user.DeliveryPerson
	if dto.DeliveryPerson != nil {
		person, err = deliverypersonrepo.ToDomain(*dto.DeliveryPerson)
		if err != nil {
			return nil, err
		}
	}

	return user.RestoreUser(
		id,
		email,
		dto.PasswordHash,
		dto.FirstName,
		dto.LastName,
		customer,
		person,
		dto.CreatedAt,
		dto.ModifiedAt,
	)
}

func customerToDomain(dto CustomerDTO) (*user.Customer, error) {
	address, err := addressToDomain(dto.Address)
	if err != nil {
		return nil, err
	}

	sort.Slice(dto.Favorites, func(i, j int) bool {
		return dto.Favorites[i].Position < dto.Favorites[j].Position
	})

	favorites := make([]kernel.UUID, 0, len(dto.Favorites))
	for _, favorite := range dto.Favorites {
		restaurantID, idErr := kernel.UUIDFromBytes(favorite.RestaurantID[:])
		if idErr != nil {
			return nil, idErr
		}
		favorites = append(favorites, restaurantID)
	}

	return user.RestoreCustomer(address, favorites)
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

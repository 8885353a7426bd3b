// Package orderrepo persists the order aggregate with GORM. The aggregate
// spans four tables: the order row plus its line items and the optional
// delivery and payment children.
package orderrepo

import (
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
type OrderDTO struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CustomerID   uuid.UUID  `gorm:"type:uuid;not null;index"`
	RestaurantID uuid.UUID  `gorm:"type:uuid;not null;index"`
	Address      AddressDTO `gorm:"embedded;embeddedPrefix:address_"`
	Status       int        `gorm:"type:int;not null;index"`
	IsLocked     bool       `gorm:"not null"`
	PlacedAt     time.Time  `gorm:"not null"`
	DeliveredAt  *time.Time
	CreatedAt    time.Time
	ModifiedAt   time.Time

	Items    []ItemDTO    `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Delivery *DeliveryDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Payment  *PaymentDTO  `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// AddressDTO is the embedded delivery address. Coordinates are nullable
// because not every address can be geocoded.
type AddressDTO struct {
	Street     string `gorm:"type:varchar(255);not null"`
	City       string `gorm:"type:varchar(255);not null"`
	State      string `gorm:"type:varchar(255);not null"`
	PostalCode string `gorm:"type:varchar(32);not null"`
	Latitude   *float64
	Longitude  *float64
}

// ItemDTO represents a single order line. Position preserves insertion
// order across round trips.
type ItemDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID    uuid.UUID `gorm:"type:uuid;not null;index"`
	MenuItemID uuid.UUID `gorm:"type:uuid;not null"`
	Quantity   int       `gorm:"type:int;not null"`
	Price      float64   `gorm:"not null"`
	Position   int       `gorm:"type:int;not null"`
	CreatedAt  time.Time
}

// TableName overrides GORM's default naming convention to use "order_items".
func (ItemDTO) TableName() string {
	return "order_items"
}

// DeliveryDTO represents the one-to-one delivery child of an order.
type DeliveryDTO struct {
	ID                    uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderID               uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex"`
	DeliveryPersonID      *uuid.UUID `gorm:"type:uuid;index"`
	Status                int        `gorm:"type:int;not null;index"`
	EstimatedDeliveryTime time.Duration
	PickUpTime            *time.Time
	ActualDeliveryTime    *time.Time
}

// TableName overrides GORM's default naming convention to use "order_deliveries".
func (DeliveryDTO) TableName() string {
	return "order_deliveries"
}

// PaymentDTO represents the one-to-one payment child of an order.
type PaymentDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	Amount        float64   `gorm:"not null"`
	Method        int       `gorm:"type:int;not null"`
	TransactionID string    `gorm:"type:varchar(255);not null"`
	Status        int       `gorm:"type:int;not null"`
}

// TableName overrides GORM's default naming convention to use "order_payments".
func (PaymentDTO) TableName() string {
	return "order_payments"
}

// fromDomain converts an order domain aggregate to its database
// representation, children included.
func fromDomain(aggregate *order.Order) OrderDTO {
	orderID := aggregate.ID().Bytes()

	items := make([]ItemDTO, 0, len(aggregate.Items()))
	for i, item := range aggregate.Items() {
		items = append(items, ItemDTO{
			ID:         item.ID().Bytes(),
			OrderID:    orderID,
			MenuItemID: item.MenuItemID().Bytes(),
			Quantity:   item.Quantity(),
			Price:      item.Price(),
			Position:   i,
			CreatedAt:  item.CreatedAt(),
		})
	}

	var deliveryDTO *DeliveryDTO
	if d := aggregate.Delivery(); d != nil {
		var personID *uuid.UUID
		if id := d.DeliveryPersonID(); id != nil {
			raw := id.Bytes()
			personID = &raw
		}

		deliveryDTO = &DeliveryDTO{
			ID:                    d.ID().Bytes(),
			OrderID:               orderID,
			DeliveryPersonID:      personID,
			Status:                int(d.Status()),
			EstimatedDeliveryTime: d.EstimatedDeliveryTime(),
			PickUpTime:            d.PickUpTime(),
			ActualDeliveryTime:    d.ActualDeliveryTime(),
		}
	}

	var paymentDTO *PaymentDTO
	if p := aggregate.Payment(); p != nil {
		paymentDTO = &PaymentDTO{
			ID:            p.ID().Bytes(),
			OrderID:       orderID,
			Amount:        p.Amount(),
			Method:        int(p.Method()),
			TransactionID: p.TransactionID(),
			Status:        int(p.Status()),
		}
	}

	return OrderDTO{
		ID:           orderID,
		CustomerID:   aggregate.CustomerID().Bytes(),
		RestaurantID: aggregate.RestaurantID().Bytes(),
		Address:      addressFromDomain(aggregate.DeliveryAddress()),
		Status:       int(aggregate.Status()),
		IsLocked:     aggregate.IsLocked(),
		PlacedAt:     aggregate.PlacedAt(),
		DeliveredAt:  aggregate.DeliveredAt(),
		CreatedAt:    aggregate.CreatedAt(),
		ModifiedAt:   aggregate.ModifiedAt(),
		Items:        items,
		Delivery:     deliveryDTO,
		Payment:      paymentDTO,
	}
}

// toDomain converts a database DTO to an order domain aggregate using
// RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return nil, err
	}

	address, err := addressToDomain(dto.Address)
	if err != nil {
		return nil, err
	}

	items := make([]*order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	var delivery *order.Delivery
	if dto.Delivery != nil {
		delivery, err = deliveryToDomain(*dto.Delivery)
		if err != nil {
			return nil, err
		}
	}

	var payment *order.Payment
	if dto.Payment != nil {
		payment, err = paymentToDomain(*dto.Payment)
		if err != nil {
			return nil, err
		}
	}

	return order.RestoreOrder(
		id, customerID, restaurantID,
		address,
		order.Status(dto.Status),
		dto.IsLocked,
		items,
		delivery,
		payment,
		dto.PlacedAt,
		dto.DeliveredAt,
		dto.CreatedAt,
		dto.ModifiedAt,
	)
}

func addressFromDomain(address kernel.Address) AddressDTO {
	dto := AddressDTO{
		Street:     address.Street(),
		City:       address.City(),
		State:      address.State(),
		PostalCode: address.PostalCode(),
	}

	if location, ok := address.Location(); ok {
		lat := location.Latitude()
		lon := location.Longitude()
		dto.Latitude = &lat
		dto.Longitude = &lon
	}

	return dto
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

func itemToDomain(dto ItemDTO) (*order.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	menuItemID, err := kernel.UUIDFromBytes(dto.MenuItemID[:])
	if err != nil {
		return nil, err
	}

	return order.RestoreItem(id, menuItemID, dto.Quantity, dto.Price, dto.CreatedAt)
}

func deliveryToDomain(dto DeliveryDTO) (*order.Delivery, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var personID *kernel.UUID
	if dto.DeliveryPersonID != nil {
		pID, personErr := kernel.UUIDFromBytes((*dto.DeliveryPersonID)[:])
		if personErr != nil {
			return nil, personErr
		}
		personID = &pID
	}

	return order.RestoreDelivery(
		id,
		personID,
		order.DeliveryStatus(dto.Status),
		dto.EstimatedDeliveryTime,
		dto.PickUpTime,
		dto.ActualDeliveryTime,
	)
}

func paymentToDomain(dto PaymentDTO) (*order.Payment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return order.RestorePayment(
		id,
		dto.Amount,
		order.PaymentMethod(dto.Method),
		dto.TransactionID,
		order.PaymentStatus(dto.Status),
	)
}

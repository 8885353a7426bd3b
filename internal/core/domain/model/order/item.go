package order

import (
	"errors"
	"fmt"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

// ErrItemIsNotConstructed is returned when an Item was not created through
// the newItem factory.
var ErrItemIsNotConstructed = errors.New("Item must be created via Order.AddItem")

// Item is a single order line: a menu item reference, a quantity, and the
// unit price captured at the moment the line was added. Repeated additions
// of the same menu item produce separate lines; lines are never merged.
// Items are owned by Order and created and removed only through it.
type Item struct {
	id         kernel.UUID
	menuItemID kernel.UUID
	quantity   int
	price      float64
	createdAt  time.Time
	guard      guard.ConstructorGuard
}

func newItem(id, menuItemID kernel.UUID, quantity int, price float64, createdAt time.Time) (*Item, error) {
	item := &Item{
		createdAt: createdAt.UTC(),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setID(id),
		item.setMenuItemID(menuItemID),
		item.setQuantity(quantity),
		item.setPrice(price),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// RestoreItem reconstructs an order line from persistent storage.
func RestoreItem(id, menuItemID kernel.UUID, quantity int, price float64, createdAt time.Time) (*Item, error) {
	return newItem(id, menuItemID, quantity, price, createdAt)
}

// Validate checks that the Item was created through the aggregate.
func (i *Item) Validate() error {
	if i == nil {
		return ErrItemIsNotConstructed
	}
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// ID returns the line identifier.
func (i *Item) ID() kernel.UUID {
	return i.id
}

// MenuItemID returns the referenced menu item.
func (i *Item) MenuItemID() kernel.UUID {
	return i.menuItemID
}

// Quantity returns the ordered quantity, always at least 1.
func (i *Item) Quantity() int {
	return i.quantity
}

// Price returns the captured unit price, always positive.
func (i *Item) Price() float64 {
	return i.price
}

// CreatedAt returns when the line was added, in UTC.
func (i *Item) CreatedAt() time.Time {
	return i.createdAt
}

// Total returns quantity times unit price.
func (i *Item) Total() float64 {
	return float64(i.quantity) * i.price
}

func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Item) setMenuItemID(menuItemID kernel.UUID) error {
	if err := menuItemID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("menu item id", err)
	}
	i.menuItemID = menuItemID
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is less than 1", quantity))
	}
	i.quantity = quantity
	return nil
}

func (i *Item) setPrice(price float64) error {
	if price <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%v is not greater than 0", price))
	}
	i.price = price
	return nil
}

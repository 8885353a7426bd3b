package restaurant

import (
	"errors"
	"fmt"
	"strings"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

// ErrMenuItemIsNotConstructed is returned when a MenuItem was not created
// through Restaurant.AddMenuItem.
var ErrMenuItemIsNotConstructed = errors.New("MenuItem must be created via Restaurant.AddMenuItem")

// Category classifies a menu item.
type Category int

const (
	// CategoryUnknown catches uninitialized values.
	CategoryUnknown Category = iota
	// CategoryAppetizer is a starter.
	CategoryAppetizer
	// CategoryMainCourse is a main dish.
	CategoryMainCourse
	// CategoryDessert is a dessert.
	CategoryDessert
	// CategoryBeverage is a drink.
	CategoryBeverage
	// CategorySide is a side dish.
	CategorySide
)

// String returns the human-readable name of the category.
func (c Category) String() string {
	switch c {
	case CategoryAppetizer:
		return "Appetizer"
	case CategoryMainCourse:
		return "MainCourse"
	case CategoryDessert:
		return "Dessert"
	case CategoryBeverage:
		return "Beverage"
	case CategorySide:
		return "Side"
	default:
		return "Unknown"
	}
}

// Validate checks that the Category is one of the defined values.
func (c Category) Validate() error {
	if c <= CategoryUnknown || c > CategorySide {
		return errs.NewValueIsInvalidError("menu item category")
	}
	return nil
}

// MenuItem is a dish on a restaurant's menu. It is owned by Restaurant;
// all mutation goes through the aggregate root, which guarantees that
// names stay unique within the menu regardless of letter case.
type MenuItem struct {
	id          kernel.UUID
	name        string
	description string
	price       float64
	category    Category
	isAvailable bool
	guard       guard.ConstructorGuard
}

func newMenuItem(id kernel.UUID, name, description string, price float64, category Category) (*MenuItem, error) {
	item := &MenuItem{
		isAvailable: true,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setID(id),
		item.setName(name),
		item.setDescription(description),
		item.setPrice(price),
		item.setCategory(category),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// RestoreMenuItem reconstructs a menu item from persistent storage.
func RestoreMenuItem(
	id kernel.UUID,
	name, description string,
	price float64,
	category Category,
	isAvailable bool,
) (*MenuItem, error) {
	item, err := newMenuItem(id, name, description, price, category)
	if err != nil {
		return nil, err
	}

	item.isAvailable = isAvailable
	return item, nil
}

// Validate checks that the MenuItem was created through the aggregate.
func (m *MenuItem) Validate() error {
	if m == nil {
		return ErrMenuItemIsNotConstructed
	}
	return m.guard.Validate(ErrMenuItemIsNotConstructed)
}

// ID returns the menu item identifier.
func (m *MenuItem) ID() kernel.UUID {
	return m.id
}

// Name returns the dish name, trimmed.
func (m *MenuItem) Name() string {
	return m.name
}

// Description returns the free-form description, possibly empty.
func (m *MenuItem) Description() string {
	return m.description
}

// Price returns the current price, always positive.
func (m *MenuItem) Price() float64 {
	return m.price
}

// Category returns the item category.
func (m *MenuItem) Category() Category {
	return m.category
}

// IsAvailable reports whether the item can currently be ordered.
func (m *MenuItem) IsAvailable() bool {
	return m.isAvailable
}

// hasName reports whether the item carries the given name, ignoring case.
func (m *MenuItem) hasName(name string) bool {
	return strings.EqualFold(m.name, strings.TrimSpace(name))
}

// update rewrites all mutable fields at once, or none on failure.
func (m *MenuItem) update(name, description string, price float64, category Category, isAvailable bool) error {
	updated := *m
	if err := errors.Join(
		updated.setName(name),
		updated.setDescription(description),
		updated.setPrice(price),
		updated.setCategory(category),
	); err != nil {
		return err
	}

	updated.isAvailable = isAvailable
	*m = updated
	return nil
}

func (m *MenuItem) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	m.id = id
	return nil
}

func (m *MenuItem) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("menu item name")
	}
	m.name = name
	return nil
}

func (m *MenuItem) setDescription(description string) error {
	m.description = strings.TrimSpace(description)
	return nil
}

func (m *MenuItem) setPrice(price float64) error {
	if price <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%v is not greater than 0", price))
	}
	m.price = price
	return nil
}

func (m *MenuItem) setCategory(category Category) error {
	if err := category.Validate(); err != nil {
		return err
	}
	m.category = category
	return nil
}

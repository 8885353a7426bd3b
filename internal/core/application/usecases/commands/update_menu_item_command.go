package commands

import (
	"context"
	"errors"
	"strings"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/restaurant"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var ErrUpdateMenuItemCommandIsNotConstructed = errors.New(
	"UpdateMenuItemCommand must be created via NewUpdateMenuItemCommand constructor",
)

// UpdateMenuItemCommand represents a request to rewrite a dish, including
// flipping its availability.
type UpdateMenuItemCommand struct { //nolint:recvcheck //using for validation
	restaurantID kernel.UUID
	menuItemID   kernel.UUID
	name         string
	description  string
	price        float64
	category     restaurant.Category
	isAvailable  bool

	guard guard.ConstructorGuard
}

// NewUpdateMenuItemCommand creates a command to rewrite a dish.
func NewUpdateMenuItemCommand(
	restaurantID, menuItemID kernel.UUID,
	name, description string,
	price float64,
	category restaurant.Category,
	isAvailable bool,
) (UpdateMenuItemCommand, error) {
	cmd := UpdateMenuItemCommand{
		description: strings.TrimSpace(description),
		isAvailable: isAvailable,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRestaurantID(restaurantID),
		cmd.setMenuItemID(menuItemID),
		cmd.setName(name),
		cmd.setPrice(price),
		cmd.setCategory(category),
	); err != nil {
		return UpdateMenuItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrUpdateMenuItemCommandIsNotConstructed)
}

// RestaurantID returns the target restaurant.
func (c UpdateMenuItemCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

// MenuItemID returns the dish to rewrite.
func (c UpdateMenuItemCommand) MenuItemID() kernel.UUID {
	return c.menuItemID
}

// Name returns the new dish name.
func (c UpdateMenuItemCommand) Name() string {
	return c.name
}

// Description returns the new description.
func (c UpdateMenuItemCommand) Description() string {
	return c.description
}

// Price returns the new price.
func (c UpdateMenuItemCommand) Price() float64 {
	return c.price
}

// Category returns the new category.
func (c UpdateMenuItemCommand) Category() restaurant.Category {
	return c.category
}

// IsAvailable returns the new availability flag.
func (c UpdateMenuItemCommand) IsAvailable() bool {
	return c.isAvailable
}

func (c *UpdateMenuItemCommand) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}
	c.restaurantID = restaurantID
	return nil
}

func (c *UpdateMenuItemCommand) setMenuItemID(menuItemID kernel.UUID) error {
	if err := menuItemID.Validate(); err != nil {
		return err
	}
	c.menuItemID = menuItemID
	return nil
}

func (c *UpdateMenuItemCommand) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("menu item name")
	}
	c.name = name
	return nil
}

func (c *UpdateMenuItemCommand) setPrice(price float64) error {
	if price <= 0 {
		return errs.NewValueIsInvalidError("price")
	}
	c.price = price
	return nil
}

func (c *UpdateMenuItemCommand) setCategory(category restaurant.Category) error {
	if err := category.Validate(); err != nil {
		return err
	}
	c.category = category
	return nil
}

// UpdateMenuItemCommandHandler rewrites dishes.
type UpdateMenuItemCommandHandler struct {
	uowFactory RestaurantUoWFactory
}

// NewUpdateMenuItemCommandHandler creates a handler for rewriting dishes.
func NewUpdateMenuItemCommandHandler(uowFactory RestaurantUoWFactory) UpdateMenuItemCommandHandler {
	return UpdateMenuItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the rewrite command.
func (h *UpdateMenuItemCommandHandler) Handle(ctx context.Context, cmd UpdateMenuItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	restaurantRepo := uow.RestaurantRepository()
	r, err := restaurantRepo.Get(ctx, cmd.RestaurantID())
	if err != nil {
		return err
	}

	if err = r.UpdateMenuItem(
		cmd.MenuItemID(),
		cmd.Name(), cmd.Description(),
		cmd.Price(), cmd.Category(), cmd.IsAvailable(),
	); err != nil {
		return err
	}

	if err = restaurantRepo.Update(ctx, r); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

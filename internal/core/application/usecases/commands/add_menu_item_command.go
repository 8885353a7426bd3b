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

var ErrAddMenuItemCommandIsNotConstructed = errors.New(
	"AddMenuItemCommand must be created via NewAddMenuItemCommand constructor",
)

// AddMenuItemCommand represents a request to put a dish on a restaurant's
// menu.
type AddMenuItemCommand struct { //nolint:recvcheck //using for validation
	restaurantID kernel.UUID
	name         string
	description  string
	price        float64
	category     restaurant.Category

	guard guard.ConstructorGuard
}

// NewAddMenuItemCommand creates a command to add a dish.
func NewAddMenuItemCommand(
	restaurantID kernel.UUID,
	name, description string,
	price float64,
	category restaurant.Category,
) (AddMenuItemCommand, error) {
	cmd := AddMenuItemCommand{
		description: strings.TrimSpace(description),
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRestaurantID(restaurantID),
		cmd.setName(name),
		cmd.setPrice(price),
		cmd.setCategory(category),
	); err != nil {
		return AddMenuItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrAddMenuItemCommandIsNotConstructed)
}

// RestaurantID returns the target restaurant.
func (c AddMenuItemCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

// Name returns the dish name.
func (c AddMenuItemCommand) Name() string {
	return c.name
}

// Description returns the dish description.
func (c AddMenuItemCommand) Description() string {
	return c.description
}

// Price returns the dish price.
func (c AddMenuItemCommand) Price() float64 {
	return c.price
}

// Category returns the dish category.
func (c AddMenuItemCommand) Category() restaurant.Category {
	return c.category
}

func (c *AddMenuItemCommand) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}
	c.restaurantID = restaurantID
	return nil
}

func (c *AddMenuItemCommand) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("menu item name")
	}
	c.name = name
	return nil
}

func (c *AddMenuItemCommand) setPrice(price float64) error {
	if price <= 0 {
		return errs.NewValueIsInvalidError("price")
	}
	c.price = price
	return nil
}

func (c *AddMenuItemCommand) setCategory(category restaurant.Category) error {
	if err := category.Validate(); err != nil {
		return err
	}
	c.category = category
	return nil
}

// AddMenuItemCommandHandler puts dishes on menus.
type AddMenuItemCommandHandler struct {
	uowFactory RestaurantUoWFactory
}

// NewAddMenuItemCommandHandler creates a handler for adding dishes.
func NewAddMenuItemCommandHandler(uowFactory RestaurantUoWFactory) AddMenuItemCommandHandler {
	return AddMenuItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the add-dish command. The aggregate rejects names that
// collide with an existing dish ignoring case.
func (h *AddMenuItemCommandHandler) Handle(ctx context.Context, cmd AddMenuItemCommand) error {
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

	if _, err = r.AddMenuItem(cmd.Name(), cmd.Description(), cmd.Price(), cmd.Category()); err != nil {
		return err
	}

	if err = restaurantRepo.Update(ctx, r); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

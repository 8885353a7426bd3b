package commands

import (
	"context"
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrRemoveMenuItemCommandIsNotConstructed = errors.New(
	"RemoveMenuItemCommand must be created via NewRemoveMenuItemCommand constructor",
)

// RemoveMenuItemCommand represents a request to take a dish off a menu.
type RemoveMenuItemCommand struct { //nolint:recvcheck //using for validation
	restaurantID kernel.UUID
	menuItemID   kernel.UUID

	guard guard.ConstructorGuard
}

// NewRemoveMenuItemCommand creates a command to remove a dish.
func NewRemoveMenuItemCommand(restaurantID, menuItemID kernel.UUID) (RemoveMenuItemCommand, error) {
	cmd := RemoveMenuItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRestaurantID(restaurantID),
		cmd.setMenuItemID(menuItemID),
	); err != nil {
		return RemoveMenuItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrRemoveMenuItemCommandIsNotConstructed)
}

// RestaurantID returns the target restaurant.
func (c RemoveMenuItemCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

// MenuItemID returns the dish to remove.
func (c RemoveMenuItemCommand) MenuItemID() kernel.UUID {
	return c.menuItemID
}

func (c *RemoveMenuItemCommand) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}
	c.restaurantID = restaurantID
	return nil
}

func (c *RemoveMenuItemCommand) setMenuItemID(menuItemID kernel.UUID) error {
	if err := menuItemID.Validate(); err != nil {
		return err
	}
	c.menuItemID = menuItemID
	return nil
}

// RemoveMenuItemCommandHandler takes dishes off menus.
type RemoveMenuItemCommandHandler struct {
	uowFactory RestaurantUoWFactory
}

// NewRemoveMenuItemCommandHandler creates a handler for removing dishes.
func NewRemoveMenuItemCommandHandler(uowFactory RestaurantUoWFactory) RemoveMenuItemCommandHandler {
	return RemoveMenuItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the remove-dish command.
func (h *RemoveMenuItemCommandHandler) Handle(ctx context.Context, cmd RemoveMenuItemCommand) error {
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

	if err = r.RemoveMenuItem(cmd.MenuItemID()); err != nil {
		return err
	}

	if err = restaurantRepo.Update(ctx, r); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

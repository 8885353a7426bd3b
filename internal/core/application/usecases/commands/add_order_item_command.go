package commands

import (
	"context"
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var (
	ErrAddOrderItemCommandIsNotConstructed = errors.New(
		"AddOrderItemCommand must be created via NewAddOrderItemCommand constructor",
	)

	// ErrMenuItemIsUnavailable is returned when the dish is on the menu
	// but currently switched off.
	ErrMenuItemIsUnavailable = errors.New("menu item is unavailable")
)

// AddOrderItemCommand represents a request to add a dish to an order.
// The price is not part of the command: it is captured from the menu at
// handling time.
type AddOrderItemCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	menuItemID kernel.UUID
	quantity   int

	guard guard.ConstructorGuard
}

// NewAddOrderItemCommand creates a command to add an order line.
func NewAddOrderItemCommand(orderID, menuItemID kernel.UUID, quantity int) (AddOrderItemCommand, error) {
	cmd := AddOrderItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setMenuItemID(menuItemID),
		cmd.setQuantity(quantity),
	); err != nil {
		return AddOrderItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddOrderItemCommand) Validate() error {
	return c.guard.Validate(ErrAddOrderItemCommandIsNotConstructed)
}

// OrderID returns the target order.
func (c AddOrderItemCommand) OrderID() kernel.UUID {
	return c.orderID
}

// MenuItemID returns the dish to add.
func (c AddOrderItemCommand) MenuItemID() kernel.UUID {
	return c.menuItemID
}

// Quantity returns the ordered quantity.
func (c AddOrderItemCommand) Quantity() int {
	return c.quantity
}

func (c *AddOrderItemCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *AddOrderItemCommand) setMenuItemID(menuItemID kernel.UUID) error {
	if err := menuItemID.Validate(); err != nil {
		return err
	}
	c.menuItemID = menuItemID
	return nil
}

func (c *AddOrderItemCommand) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidError("quantity")
	}
	c.quantity = quantity
	return nil
}

// AddOrderItemCommandHandler adds a line to an order, capturing the price
// from the restaurant's current menu.
type AddOrderItemCommandHandler struct {
	uowFactory OrderingUoWFactory
}

// NewAddOrderItemCommandHandler creates a handler for adding order lines.
func NewAddOrderItemCommandHandler(uowFactory OrderingUoWFactory) AddOrderItemCommandHandler {
	return AddOrderItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the add-item command. The dish must be on the order's
// restaurant menu and currently available.
func (h *AddOrderItemCommandHandler) Handle(ctx context.Context, cmd AddOrderItemCommand) error {
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

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	r, err := uow.RestaurantRepository().Get(ctx, o.RestaurantID())
	if err != nil {
		return err
	}

	menuItem, err := r.GetMenuItem(cmd.MenuItemID())
	if err != nil {
		return err
	}

	if !menuItem.IsAvailable() {
		return ErrMenuItemIsUnavailable
	}

	if err = o.AddItem(menuItem.ID(), cmd.Quantity(), menuItem.Price()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

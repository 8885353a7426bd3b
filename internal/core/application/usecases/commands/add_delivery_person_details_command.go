package commands

import (
	"context"
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/user"
	"fooddelivery/internal/pkg/guard"
)

var ErrAddDeliveryPersonDetailsCommandIsNotConstructed = errors.New(
	"AddDeliveryPersonDetailsCommand must be created via NewAddDeliveryPersonDetailsCommand constructor",
)

// AddDeliveryPersonDetailsCommand represents a request to attach a courier
// profile to an account.
type AddDeliveryPersonDetailsCommand struct { //nolint:recvcheck //using for validation
	userID  kernel.UUID
	vehicle user.Vehicle

	guard guard.ConstructorGuard
}

// NewAddDeliveryPersonDetailsCommand creates a command to attach a courier
// profile.
func NewAddDeliveryPersonDetailsCommand(userID kernel.UUID, vehicle user.Vehicle) (AddDeliveryPersonDetailsCommand, error) {
	cmd := AddDeliveryPersonDetailsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUserID(userID),
		cmd.setVehicle(vehicle),
	); err != nil {
		return AddDeliveryPersonDetailsCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddDeliveryPersonDetailsCommand) Validate() error {
	return c.guard.Validate(ErrAddDeliveryPersonDetailsCommandIsNotConstructed)
}

// UserID returns the target account.
func (c AddDeliveryPersonDetailsCommand) UserID() kernel.UUID {
	return c.userID
}

// Vehicle returns the registered vehicle.
func (c AddDeliveryPersonDetailsCommand) Vehicle() user.Vehicle {
	return c.vehicle
}

func (c *AddDeliveryPersonDetailsCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	c.userID = userID
	return nil
}

func (c *AddDeliveryPersonDetailsCommand) setVehicle(vehicle user.Vehicle) error {
	if err := vehicle.Validate(); err != nil {
		return err
	}
	c.vehicle = vehicle
	return nil
}

// AddDeliveryPersonDetailsCommandHandler attaches courier profiles.
type AddDeliveryPersonDetailsCommandHandler struct {
	uowFactory UserUoWFactory
}

// NewAddDeliveryPersonDetailsCommandHandler creates a handler for
// attaching courier profiles.
func NewAddDeliveryPersonDetailsCommandHandler(uowFactory UserUoWFactory) AddDeliveryPersonDetailsCommandHandler {
	return AddDeliveryPersonDetailsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the command. A second profile on the same account is a
// conflict.
func (h *AddDeliveryPersonDetailsCommandHandler) Handle(ctx context.Context, cmd AddDeliveryPersonDetailsCommand) error {
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

	userRepo := uow.UserRepository()
	u, err := userRepo.Get(ctx, cmd.UserID())
	if err != nil {
		return err
	}

	if err = u.AddDeliveryPersonDetails(cmd.Vehicle()); err != nil {
		return err
	}

	if err = userRepo.Update(ctx, u); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

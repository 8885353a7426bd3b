package commands

import (
	"context"
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrDeleteDeliveryPersonAvailabilityCommandIsNotConstructed = errors.New(
	"DeleteDeliveryPersonAvailabilityCommand must be created via NewDeleteDeliveryPersonAvailabilityCommand constructor",
)

// DeleteDeliveryPersonAvailabilityCommand represents a courier removing a
// working window.
type DeleteDeliveryPersonAvailabilityCommand struct { //nolint:recvcheck //using for validation
	deliveryPersonID kernel.UUID
	availabilityID   kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteDeliveryPersonAvailabilityCommand creates a command to remove a
// working window.
func NewDeleteDeliveryPersonAvailabilityCommand(
	deliveryPersonID, availabilityID kernel.UUID,
) (DeleteDeliveryPersonAvailabilityCommand, error) {
	cmd := DeleteDeliveryPersonAvailabilityCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDeliveryPersonID(deliveryPersonID),
		cmd.setAvailabilityID(availabilityID),
	); err != nil {
		return DeleteDeliveryPersonAvailabilityCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteDeliveryPersonAvailabilityCommand) Validate() error {
	return c.guard.Validate(ErrDeleteDeliveryPersonAvailabilityCommandIsNotConstructed)
}

// DeliveryPersonID returns the courier removing the window.
func (c DeleteDeliveryPersonAvailabilityCommand) DeliveryPersonID() kernel.UUID {
	return c.deliveryPersonID
}

// AvailabilityID returns the window to remove.
func (c DeleteDeliveryPersonAvailabilityCommand) AvailabilityID() kernel.UUID {
	return c.availabilityID
}

func (c *DeleteDeliveryPersonAvailabilityCommand) setDeliveryPersonID(deliveryPersonID kernel.UUID) error {
	if err := deliveryPersonID.Validate(); err != nil {
		return err
	}
	c.deliveryPersonID = deliveryPersonID
	return nil
}

func (c *DeleteDeliveryPersonAvailabilityCommand) setAvailabilityID(availabilityID kernel.UUID) error {
	if err := availabilityID.Validate(); err != nil {
		return err
	}
	c.availabilityID = availabilityID
	return nil
}

// DeleteDeliveryPersonAvailabilityCommandHandler removes working windows.
type DeleteDeliveryPersonAvailabilityCommandHandler struct {
	uowFactory DeliveryPersonUoWFactory
}

// NewDeleteDeliveryPersonAvailabilityCommandHandler creates a handler for
// removing working windows.
func NewDeleteDeliveryPersonAvailabilityCommandHandler(
	uowFactory DeliveryPersonUoWFactory,
) DeleteDeliveryPersonAvailabilityCommandHandler {
	return DeleteDeliveryPersonAvailabilityCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the command.
func (h *DeleteDeliveryPersonAvailabilityCommandHandler) Handle(
	ctx context.Context,
	cmd DeleteDeliveryPersonAvailabilityCommand,
) error {
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

	personRepo := uow.DeliveryPersonRepository()
	person, err := personRepo.Get(ctx, cmd.DeliveryPersonID())
	if err != nil {
		return err
	}

	if err = person.DeleteAvailability(cmd.AvailabilityID()); err != nil {
		return err
	}

	if err = personRepo.Update(ctx, person); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

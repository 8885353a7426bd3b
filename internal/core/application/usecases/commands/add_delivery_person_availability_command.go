package commands

import (
	"context"
	"errors"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var ErrAddDeliveryPersonAvailabilityCommandIsNotConstructed = errors.New(
	"AddDeliveryPersonAvailabilityCommand must be created via NewAddDeliveryPersonAvailabilityCommand constructor",
)

// AddDeliveryPersonAvailabilityCommand represents a courier registering a
// working window.
type AddDeliveryPersonAvailabilityCommand struct { //nolint:recvcheck //using for validation
	deliveryPersonID kernel.UUID
	start            time.Time
	end              time.Time

	guard guard.ConstructorGuard
}

// NewAddDeliveryPersonAvailabilityCommand creates a command to register a
// working window.
func NewAddDeliveryPersonAvailabilityCommand(
	deliveryPersonID kernel.UUID,
	start, end time.Time,
) (AddDeliveryPersonAvailabilityCommand, error) {
	cmd := AddDeliveryPersonAvailabilityCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDeliveryPersonID(deliveryPersonID),
		cmd.setWindow(start, end),
	); err != nil {
		return AddDeliveryPersonAvailabilityCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddDeliveryPersonAvailabilityCommand) Validate() error {
	return c.guard.Validate(ErrAddDeliveryPersonAvailabilityCommandIsNotConstructed)
}

// DeliveryPersonID returns the courier registering the window.
func (c AddDeliveryPersonAvailabilityCommand) DeliveryPersonID() kernel.UUID {
	return c.deliveryPersonID
}

// Start returns the window start.
func (c AddDeliveryPersonAvailabilityCommand) Start() time.Time {
	return c.start
}

// End returns the window end.
func (c AddDeliveryPersonAvailabilityCommand) End() time.Time {
	return c.end
}

func (c *AddDeliveryPersonAvailabilityCommand) setDeliveryPersonID(deliveryPersonID kernel.UUID) error {
	if err := deliveryPersonID.Validate(); err != nil {
		return err
	}
	c.deliveryPersonID = deliveryPersonID
	return nil
}

func (c *AddDeliveryPersonAvailabilityCommand) setWindow(start, end time.Time) error {
	if !start.Before(end) {
		return errs.NewValueIsInvalidError("availability window")
	}
	c.start = start.UTC()
	c.end = end.UTC()
	return nil
}

// AddDeliveryPersonAvailabilityCommandHandler registers working windows.
type AddDeliveryPersonAvailabilityCommandHandler struct {
	uowFactory DeliveryPersonUoWFactory
}

// NewAddDeliveryPersonAvailabilityCommandHandler creates a handler for
// registering working windows.
func NewAddDeliveryPersonAvailabilityCommandHandler(
	uowFactory DeliveryPersonUoWFactory,
) AddDeliveryPersonAvailabilityCommandHandler {
	return AddDeliveryPersonAvailabilityCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the command. Overlapping an existing window is a
// conflict.
func (h *AddDeliveryPersonAvailabilityCommandHandler) Handle(
	ctx context.Context,
	cmd AddDeliveryPersonAvailabilityCommand,
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

	if _, err = person.AddAvailability(cmd.Start(), cmd.End()); err != nil {
		return err
	}

	if err = personRepo.Update(ctx, person); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

package commands

import (
	"context"
	"errors"
	"time"

	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var (
	ErrAssignDeliveryCommandIsNotConstructed = errors.New(
		"AssignDeliveryCommand must be created via NewAssignDeliveryCommand constructor",
	)

	// ErrNoOrderToAssign is returned when no order is waiting for a
	// delivery person.
	ErrNoOrderToAssign = errors.New("no order waiting for assignment")
)

const (
	// maxAssignAttempts bounds the retries after losing a version race on
	// the chosen delivery person.
	maxAssignAttempts = 3

	// averageSpeedKmh is the speed assumed for the delivery estimate.
	averageSpeedKmh = 20.0

	// pickUpBuffer covers handing the order over at the restaurant.
	pickUpBuffer = 10 * time.Minute
)

// AssignDeliveryCommand represents a request to match the oldest waiting
// order with the best available delivery person. It carries no parameters;
// the handler picks the order itself.
type AssignDeliveryCommand struct { //nolint:recvcheck //using for validation
	guard guard.ConstructorGuard
}

// NewAssignDeliveryCommand creates an assignment command.
func NewAssignDeliveryCommand() AssignDeliveryCommand {
	return AssignDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c AssignDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrAssignDeliveryCommandIsNotConstructed)
}

// AssignDeliveryCommandHandler matches orders to delivery persons. The
// selection itself is pure domain logic; the handler owns the transaction
// and the optimistic concurrency loop: marking the chosen person busy uses
// a version-checked update, and a lost race picks again from the remaining
// candidates, at most maxAssignAttempts times.
type AssignDeliveryCommandHandler struct {
	uowFactory DispatchUoWFactory
	selector   *services.DeliveryPersonSelector
}

// NewAssignDeliveryCommandHandler creates a handler for delivery
// assignment.
func NewAssignDeliveryCommandHandler(
	uowFactory DispatchUoWFactory,
	selector *services.DeliveryPersonSelector,
) AssignDeliveryCommandHandler {
	return AssignDeliveryCommandHandler{
		uowFactory: uowFactory,
		selector:   selector,
	}
}

// Handle assigns the oldest waiting order. Returns ErrNoOrderToAssign when
// nothing is waiting and services.ErrNoAvailableDeliveryPerson when no
// candidate fits or every attempt lost the version race.
func (h *AssignDeliveryCommandHandler) Handle(ctx context.Context, cmd AssignDeliveryCommand) error {
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
	personRepo := uow.DeliveryPersonRepository()

	o, err := orderRepo.GetFirstPendingUnassigned(ctx)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ErrNoOrderToAssign
		}
		return err
	}

	dropOff, hasLocation := o.DeliveryAddress().Location()

	for attempt := 0; attempt < maxAssignAttempts; attempt++ {
		candidates, err := personRepo.GetAllAvailable(ctx)
		if err != nil {
			return err
		}

		best, err := h.selector.SelectBest(o, candidates, time.Now().UTC())
		if err != nil {
			return err
		}

		best.MarkBusy()
		if err = personRepo.Update(ctx, best); err != nil {
			if errors.Is(err, errs.ErrVersionIsInvalid) {
				continue
			}
			return err
		}

		var estimate time.Duration = pickUpBuffer
		if hasLocation {
			if distance, ok := best.DistanceTo(dropOff); ok {
				estimate += time.Duration(float64(time.Hour) * distance / averageSpeedKmh)
			}
		}

		if err = o.AssignDelivery(best.ID(), estimate); err != nil {
			return err
		}

		if err = orderRepo.Update(ctx, o); err != nil {
			return err
		}

		return uow.Commit(ctx)
	}

	return services.ErrNoAvailableDeliveryPerson
}

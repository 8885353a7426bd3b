package commands

import (
	"context"
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrCompletePaymentCommandIsNotConstructed = errors.New(
	"CompletePaymentCommand must be created via NewCompletePaymentCommand constructor",
)

// CompletePaymentCommand represents a payment provider callback reporting
// that the order's payment settled.
type CompletePaymentCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCompletePaymentCommand creates a command to settle an order's
// payment.
func NewCompletePaymentCommand(orderID kernel.UUID) (CompletePaymentCommand, error) {
	cmd := CompletePaymentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return CompletePaymentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CompletePaymentCommand) Validate() error {
	return c.guard.Validate(ErrCompletePaymentCommandIsNotConstructed)
}

// OrderID returns the target order.
func (c CompletePaymentCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *CompletePaymentCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

// CompletePaymentCommandHandler settles the payment, confirms the order,
// and creates its delivery so assignment can pick it up.
type CompletePaymentCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCompletePaymentCommandHandler creates a handler for payment
// settlement callbacks.
func NewCompletePaymentCommandHandler(uowFactory OrderUoWFactory) CompletePaymentCommandHandler {
	return CompletePaymentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the payment settlement. A confirmed order immediately
// gets its pending delivery, which the assignment job will match to a
// delivery person.
func (h *CompletePaymentCommandHandler) Handle(ctx context.Context, cmd CompletePaymentCommand) error {
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

	if err = o.CompletePayment(); err != nil {
		return err
	}

	if err = o.CreateDelivery(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

package commands

import (
	"context"
	"errors"
	"strings"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var ErrSetPaymentCommandIsNotConstructed = errors.New(
	"SetPaymentCommand must be created via NewSetPaymentCommand constructor",
)

// SetPaymentCommand represents a request to attach a payment to an order.
// The amount is not part of the command; the handler charges the order
// total at handling time.
type SetPaymentCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	method        order.PaymentMethod
	transactionID string

	guard guard.ConstructorGuard
}

// NewSetPaymentCommand creates a command to attach a payment.
func NewSetPaymentCommand(
	orderID kernel.UUID,
	method order.PaymentMethod,
	transactionID string,
) (SetPaymentCommand, error) {
	cmd := SetPaymentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setMethod(method),
		cmd.setTransactionID(transactionID),
	); err != nil {
		return SetPaymentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SetPaymentCommand) Validate() error {
	return c.guard.Validate(ErrSetPaymentCommandIsNotConstructed)
}

// OrderID returns the target order.
func (c SetPaymentCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Method returns the payment instrument.
func (c SetPaymentCommand) Method() order.PaymentMethod {
	return c.method
}

// TransactionID returns the external transaction reference.
func (c SetPaymentCommand) TransactionID() string {
	return c.transactionID
}

func (c *SetPaymentCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *SetPaymentCommand) setMethod(method order.PaymentMethod) error {
	if err := method.Validate(); err != nil {
		return err
	}
	c.method = method
	return nil
}

func (c *SetPaymentCommand) setTransactionID(transactionID string) error {
	if strings.TrimSpace(transactionID) == "" {
		return errs.NewValueIsRequiredError("transaction id")
	}
	c.transactionID = transactionID
	return nil
}

// SetPaymentCommandHandler attaches a payment for the order total.
type SetPaymentCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewSetPaymentCommandHandler creates a handler for attaching payments.
func NewSetPaymentCommandHandler(uowFactory OrderUoWFactory) SetPaymentCommandHandler {
	return SetPaymentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the set-payment command. The charged amount is the
// order total, so an order without items is rejected by the aggregate.
func (h *SetPaymentCommandHandler) Handle(ctx context.Context, cmd SetPaymentCommand) error {
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

	if err = o.SetPayment(o.Total(), cmd.Method(), cmd.TransactionID()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

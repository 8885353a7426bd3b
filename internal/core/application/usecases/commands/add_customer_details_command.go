package commands

import (
	"context"
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrAddCustomerDetailsCommandIsNotConstructed = errors.New(
	"AddCustomerDetailsCommand must be created via NewAddCustomerDetailsCommand constructor",
)

// AddCustomerDetailsCommand represents a request to attach a customer
// profile to an account.
type AddCustomerDetailsCommand struct { //nolint:recvcheck //using for validation
	userID         kernel.UUID
	defaultAddress kernel.Address

	guard guard.ConstructorGuard
}

// NewAddCustomerDetailsCommand creates a command to attach a customer
// profile.
func NewAddCustomerDetailsCommand(userID kernel.UUID, defaultAddress kernel.Address) (AddCustomerDetailsCommand, error) {
	cmd := AddCustomerDetailsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUserID(userID),
		cmd.setDefaultAddress(defaultAddress),
	); err != nil {
		return AddCustomerDetailsCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddCustomerDetailsCommand) Validate() error {
	return c.guard.Validate(ErrAddCustomerDetailsCommandIsNotConstructed)
}

// UserID returns the target account.
func (c AddCustomerDetailsCommand) UserID() kernel.UUID {
	return c.userID
}

// DefaultAddress returns the default delivery address.
func (c AddCustomerDetailsCommand) DefaultAddress() kernel.Address {
	return c.defaultAddress
}

func (c *AddCustomerDetailsCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	c.userID = userID
	return nil
}

func (c *AddCustomerDetailsCommand) setDefaultAddress(defaultAddress kernel.Address) error {
	if err := defaultAddress.Validate(); err != nil {
		return err
	}
	c.defaultAddress = defaultAddress
	return nil
}

// AddCustomerDetailsCommandHandler attaches customer profiles.
type AddCustomerDetailsCommandHandler struct {
	uowFactory UserUoWFactory
}

// NewAddCustomerDetailsCommandHandler creates a handler for attaching
// customer profiles.
func NewAddCustomerDetailsCommandHandler(uowFactory UserUoWFactory) AddCustomerDetailsCommandHandler {
	return AddCustomerDetailsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the command. A second profile on the same account is a
// conflict.
func (h *AddCustomerDetailsCommandHandler) Handle(ctx context.Context, cmd AddCustomerDetailsCommand) error {
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

	if err = u.AddCustomerDetails(cmd.DefaultAddress()); err != nil {
		return err
	}

	if err = userRepo.Update(ctx, u); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

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

var ErrCreateRestaurantCommandIsNotConstructed = errors.New(
	"CreateRestaurantCommand must be created via NewCreateRestaurantCommand constructor",
)

// CreateRestaurantCommand represents a request to register a restaurant.
type CreateRestaurantCommand struct { //nolint:recvcheck //using for validation
	restaurantID kernel.UUID
	ownerID      kernel.UUID
	name         string
	description  string
	email        kernel.Email
	phone        string
	address      kernel.Address
	openingHours restaurant.OpeningHours

	guard guard.ConstructorGuard
}

// NewCreateRestaurantCommand creates a command to register a restaurant.
func NewCreateRestaurantCommand(
	restaurantID, ownerID kernel.UUID,
	name, description string,
	email kernel.Email,
	phone string,
	address kernel.Address,
	openingHours restaurant.OpeningHours,
) (CreateRestaurantCommand, error) {
	cmd := CreateRestaurantCommand{
		description: strings.TrimSpace(description),
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRestaurantID(restaurantID),
		cmd.setOwnerID(ownerID),
		cmd.setName(name),
		cmd.setEmail(email),
		cmd.setPhone(phone),
		cmd.setAddress(address),
		cmd.setOpeningHours(openingHours),
	); err != nil {
		return CreateRestaurantCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateRestaurantCommand) Validate() error {
	return c.guard.Validate(ErrCreateRestaurantCommandIsNotConstructed)
}

// RestaurantID returns the identifier for the new restaurant.
func (c CreateRestaurantCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

// OwnerID returns the owning user.
func (c CreateRestaurantCommand) OwnerID() kernel.UUID {
	return c.ownerID
}

// Name returns the venue name.
func (c CreateRestaurantCommand) Name() string {
	return c.name
}

// Description returns the free-form description.
func (c CreateRestaurantCommand) Description() string {
	return c.description
}

// Email returns the contact email.
func (c CreateRestaurantCommand) Email() kernel.Email {
	return c.email
}

// Phone returns the contact phone number.
func (c CreateRestaurantCommand) Phone() string {
	return c.phone
}

// Address returns the venue address.
func (c CreateRestaurantCommand) Address() kernel.Address {
	return c.address
}

// OpeningHours returns the daily opening window.
func (c CreateRestaurantCommand) OpeningHours() restaurant.OpeningHours {
	return c.openingHours
}

func (c *CreateRestaurantCommand) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}
	c.restaurantID = restaurantID
	return nil
}

func (c *CreateRestaurantCommand) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}
	c.ownerID = ownerID
	return nil
}

func (c *CreateRestaurantCommand) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("restaurant name")
	}
	c.name = name
	return nil
}

func (c *CreateRestaurantCommand) setEmail(email kernel.Email) error {
	if err := email.Validate(); err != nil {
		return err
	}
	c.email = email
	return nil
}

func (c *CreateRestaurantCommand) setPhone(phone string) error {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return errs.NewValueIsRequiredError("phone")
	}
	c.phone = phone
	return nil
}

func (c *CreateRestaurantCommand) setAddress(address kernel.Address) error {
	if err := address.Validate(); err != nil {
		return err
	}
	c.address = address
	return nil
}

func (c *CreateRestaurantCommand) setOpeningHours(openingHours restaurant.OpeningHours) error {
	if err := openingHours.Validate(); err != nil {
		return err
	}
	c.openingHours = openingHours
	return nil
}

// CreateRestaurantCommandHandler registers restaurants.
type CreateRestaurantCommandHandler struct {
	uowFactory RestaurantUoWFactory
}

// NewCreateRestaurantCommandHandler creates a handler for restaurant
// registration.
func NewCreateRestaurantCommandHandler(uowFactory RestaurantUoWFactory) CreateRestaurantCommandHandler {
	return CreateRestaurantCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the registration command.
func (h *CreateRestaurantCommandHandler) Handle(ctx context.Context, cmd CreateRestaurantCommand) error {
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

	r, err := restaurant.NewRestaurant(
		cmd.RestaurantID(), cmd.OwnerID(),
		cmd.Name(), cmd.Description(),
		cmd.Email(), cmd.Phone(), cmd.Address(), cmd.OpeningHours(),
	)
	if err != nil {
		return err
	}

	if err = uow.RestaurantRepository().Add(ctx, r); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

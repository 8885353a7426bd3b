package commands

import (
	"context"
	"errors"
	"strings"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/user"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var ErrRegisterUserCommandIsNotConstructed = errors.New(
	"RegisterUserCommand must be created via NewRegisterUserCommand constructor",
)

const minPasswordLength = 8

// RegisterUserCommand represents a request to create an account. The raw
// password only lives in the command; the handler stores a hash.
type RegisterUserCommand struct { //nolint:recvcheck //using for validation
	userID    kernel.UUID
	email     kernel.Email
	password  string
	firstName string
	lastName  string

	guard guard.ConstructorGuard
}

// NewRegisterUserCommand creates a command to register an account.
func NewRegisterUserCommand(
	userID kernel.UUID,
	email kernel.Email,
	password, firstName, lastName string,
) (RegisterUserCommand, error) {
	cmd := RegisterUserCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUserID(userID),
		cmd.setEmail(email),
		cmd.setPassword(password),
		cmd.setFirstName(firstName),
		cmd.setLastName(lastName),
	); err != nil {
		return RegisterUserCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterUserCommand) Validate() error {
	return c.guard.Validate(ErrRegisterUserCommandIsNotConstructed)
}

// UserID returns the identifier for the new account.
func (c RegisterUserCommand) UserID() kernel.UUID {
	return c.userID
}

// Email returns the account email.
func (c RegisterUserCommand) Email() kernel.Email {
	return c.email
}

// Password returns the raw password.
func (c RegisterUserCommand) Password() string {
	return c.password
}

// FirstName returns the given name.
func (c RegisterUserCommand) FirstName() string {
	return c.firstName
}

// LastName returns the family name.
func (c RegisterUserCommand) LastName() string {
	return c.lastName
}

func (c *RegisterUserCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	c.userID = userID
	return nil
}

func (c *RegisterUserCommand) setEmail(email kernel.Email) error {
	if err := email.Validate(); err != nil {
		return err
	}
	c.email = email
	return nil
}

func (c *RegisterUserCommand) setPassword(password string) error {
	if len(password) < minPasswordLength {
		return errs.NewValueIsOutOfRangeError("password length", len(password), minPasswordLength, 72)
	}
	c.password = password
	return nil
}

func (c *RegisterUserCommand) setFirstName(firstName string) error {
	firstName = strings.TrimSpace(firstName)
	if firstName == "" {
		return errs.NewValueIsRequiredError("first name")
	}
	c.firstName = firstName
	return nil
}

func (c *RegisterUserCommand) setLastName(lastName string) error {
	lastName = strings.TrimSpace(lastName)
	if lastName == "" {
		return errs.NewValueIsRequiredError("last name")
	}
	c.lastName = lastName
	return nil
}

// RegisterUserCommandHandler creates accounts. Emails are unique: the
// handler checks first, and the storage schema backs it with a unique
// index for concurrent registrations.
type RegisterUserCommandHandler struct {
	uowFactory UserUoWFactory
	hasher     ports.PasswordHasher
}

// NewRegisterUserCommandHandler creates a handler for account
// registration.
func NewRegisterUserCommandHandler(
	uowFactory UserUoWFactory,
	hasher ports.PasswordHasher,
) RegisterUserCommandHandler {
	return RegisterUserCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
	}
}

// Handle processes the registration command.
func (h *RegisterUserCommandHandler) Handle(ctx context.Context, cmd RegisterUserCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	passwordHash, err := h.hasher.Hash(cmd.Password())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	userRepo := uow.UserRepository()
	if _, err = userRepo.GetByEmail(ctx, cmd.Email()); err == nil {
		return errs.NewObjectAlreadyExistsError("user " + cmd.Email().String())
	} else if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	u, err := user.NewUser(cmd.UserID(), cmd.Email(), passwordHash, cmd.FirstName(), cmd.LastName())
	if err != nil {
		return err
	}

	if err = userRepo.Add(ctx, u); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

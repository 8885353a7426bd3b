package commands

import (
	"context"
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var (
	ErrSignInCommandIsNotConstructed = errors.New(
		"SignInCommand must be created via NewSignInCommand constructor",
	)

	// ErrInvalidCredentials is returned for a wrong password and for an
	// unknown email alike, so sign-in never reveals which one it was.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// SignInCommand represents a request to authenticate with email and
// password.
type SignInCommand struct { //nolint:recvcheck //using for validation
	email    kernel.Email
	password string

	guard guard.ConstructorGuard
}

// NewSignInCommand creates a sign-in command.
func NewSignInCommand(email kernel.Email, password string) (SignInCommand, error) {
	cmd := SignInCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setEmail(email),
		cmd.setPassword(password),
	); err != nil {
		return SignInCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SignInCommand) Validate() error {
	return c.guard.Validate(ErrSignInCommandIsNotConstructed)
}

// Email returns the account email.
func (c SignInCommand) Email() kernel.Email {
	return c.email
}

// Password returns the raw password.
func (c SignInCommand) Password() string {
	return c.password
}

func (c *SignInCommand) setEmail(email kernel.Email) error {
	if err := email.Validate(); err != nil {
		return err
	}
	c.email = email
	return nil
}

func (c *SignInCommand) setPassword(password string) error {
	if password == "" {
		return errs.NewValueIsRequiredError("password")
	}
	c.password = password
	return nil
}

// SignInCommandHandler authenticates accounts and issues signed tokens.
type SignInCommandHandler struct {
	uowFactory UserUoWFactory
	hasher     ports.PasswordHasher
	tokens     ports.TokenProvider
}

// NewSignInCommandHandler creates a handler for sign-in.
func NewSignInCommandHandler(
	uowFactory UserUoWFactory,
	hasher ports.PasswordHasher,
	tokens ports.TokenProvider,
) SignInCommandHandler {
	return SignInCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
		tokens:     tokens,
	}
}

// Handle processes the sign-in command and returns a signed token.
func (h *SignInCommandHandler) Handle(ctx context.Context, cmd SignInCommand) (string, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return "", err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	u, err := uow.UserRepository().GetByEmail(ctx, cmd.Email())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	if !h.hasher.Verify(u.PasswordHash(), cmd.Password()) {
		return "", ErrInvalidCredentials
	}

	token, err := h.tokens.Generate(u)
	if err != nil {
		return "", err
	}

	if err = uow.Commit(ctx); err != nil {
		return "", err
	}

	return token, nil
}

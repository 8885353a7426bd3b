package http

import (
	"net/http"
	"time"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/user"

	"github.com/labstack/echo/v4"
)

// RegisterUser handles POST /api/v1/users/register.
func (s *Server) RegisterUser(ctx echo.Context) error {
	var req registerUserRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}
	if err := ctx.Validate(&req); err != nil {
		return err
	}

	email, err := kernel.NewEmail(req.Email)
	if err != nil {
		return respondError(ctx, err)
	}

	userID := kernel.NewUUID()
	cmd, err := commands.NewRegisterUserCommand(userID, email, req.Password, req.FirstName, req.LastName)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.commands.RegisterUser.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": userID.String()})
}

// SignIn handles POST /api/v1/users/sign-in.
func (s *Server) SignIn(ctx echo.Context) error {
	var req signInRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}
	if err := ctx.Validate(&req); err != nil {
		return err
	}

	email, err := kernel.NewEmail(req.Email)
	if err != nil {
		return respondError(ctx, commands.ErrInvalidCredentials)
	}

	cmd, err := commands.NewSignInCommand(email, req.Password)
	if err != nil {
		return respondError(ctx, err)
	}

	token, err := s.commands.SignIn.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, map[string]string{"token": token})
}

// AddCustomerDetails handles POST /api/v1/users/me/customer.
func (s *Server) AddCustomerDetails(ctx echo.Context) error {
	userID, ok := authenticatedUserID(ctx)
	if !ok {
		return respondError(ctx, echo.ErrUnauthorized)
	}

	var req addCustomerDetailsRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}
	if err := ctx.Validate(&req); err != nil {
		return err
	}

	address, err := req.DefaultAddress.toDomain()
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewAddCustomerDetailsCommand(userID, address)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.commands.AddCustomerDetails.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AddDeliveryPersonDetails handles POST /api/v1/users/me/delivery-person.
func (s *Server) AddDeliveryPersonDetails(ctx echo.Context) error {
	userID, ok := authenticatedUserID(ctx)
	if !ok {
		return respondError(ctx, echo.ErrUnauthorized)
	}

	var req addDeliveryPersonDetailsRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}
	if err := ctx.Validate(&req); err != nil {
		return err
	}

	vehicleType, err := parseVehicleType(req.VehicleType)
	if err != nil {
		return respondError(ctx, err)
	}

	vehicle, err := user.NewVehicle(vehicleType, req.LicensePlate)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewAddDeliveryPersonDetailsCommand(userID, vehicle)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.commands.AddDeliveryPersonDetails.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AddAvailability handles POST /api/v1/users/me/availabilities. The
// delivery-person profile shares the account id, so the authenticated user
// id doubles as the courier id.
func (s *Server) AddAvailability(ctx echo.Context) error {
	userID, ok := authenticatedUserID(ctx)
	if !ok {
		return respondError(ctx, echo.ErrUnauthorized)
	}

	var req addAvailabilityRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}
	if err := ctx.Validate(&req); err != nil {
		return err
	}

	start, err := time.Parse(time.RFC3339, req.Start)
	if err != nil {
		return badRequest(ctx, "start must be an RFC 3339 timestamp")
	}
	end, err := time.Parse(time.RFC3339, req.End)
	if err != nil {
		return badRequest(ctx, "end must be an RFC 3339 timestamp")
	}

	cmd, err := commands.NewAddDeliveryPersonAvailabilityCommand(userID, start, end)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.commands.AddAvailability.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteAvailability handles DELETE /api/v1/users/me/availabilities/:availabilityId.
func (s *Server) DeleteAvailability(ctx echo.Context) error {
	userID, ok := authenticatedUserID(ctx)
	if !ok {
		return respondError(ctx, echo.ErrUnauthorized)
	}

	availabilityID, err := kernel.UUIDFromString(ctx.Param("availabilityId"))
	if err != nil {
		return badRequest(ctx, "invalid availability id")
	}

	cmd, err := commands.NewDeleteDeliveryPersonAvailabilityCommand(userID, availabilityID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.commands.DeleteAvailability.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

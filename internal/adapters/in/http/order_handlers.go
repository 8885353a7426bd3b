package http

import (
	"net/http"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// CreateOrder handles POST /api/v1/orders. The authenticated user is the
// customer placing the order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	customerID, ok := authenticatedUserID(ctx)
	if !ok {
		return respondError(ctx, echo.ErrUnauthorized)
	}

	var req createOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}
	if err := ctx.Validate(&req); err != nil {
		return err
	}

	restaurantID, err := kernel.UUIDFromString(req.RestaurantID)
	if err != nil {
		return badRequest(ctx, "invalid restaurant id")
	}
	address, err := req.DeliveryAddress.toDomain()
	if err != nil {
		return respondError(ctx, err)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, customerID, restaurantID, address)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.commands.CreateOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": orderID.String()})
}

// AddOrderItem handles POST /api/v1/orders/:orderId/items.
func (s *Server) AddOrderItem(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	var req addOrderItemRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}
	if err = ctx.Validate(&req); err != nil {
		return err
	}

	menuItemID, err := kernel.UUIDFromString(req.MenuItemID)
	if err != nil {
		return badRequest(ctx, "invalid menu item id")
	}

	cmd, err := commands.NewAddOrderItemCommand(orderID, menuItemID, req.Quantity)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.commands.AddOrderItem.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RemoveOrderItem handles DELETE /api/v1/orders/:orderId/items/:itemId.
func (s *Server) RemoveOrderItem(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}
	itemID, err := kernel.UUIDFromString(ctx.Param("itemId"))
	if err != nil {
		return badRequest(ctx, "invalid item id")
	}

	cmd, err := commands.NewRemoveOrderItemCommand(orderID, itemID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.commands.RemoveOrderItem.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SetPayment handles POST /api/v1/orders/:orderId/payment. Setting the
// payment confirms the order and locks its line items.
func (s *Server) SetPayment(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	var req setPaymentRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}
	if err = ctx.Validate(&req); err != nil {
		return err
	}

	method, err := parsePaymentMethod(req.Method)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewSetPaymentCommand(orderID, method, req.TransactionID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.commands.SetPayment.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CompletePayment handles POST /api/v1/orders/:orderId/payment/complete.
func (s *Server) CompletePayment(ctx echo.Context) error {
	return s.handleOrderTransition(ctx, func(orderID kernel.UUID) error {
		cmd, err := commands.NewCompletePaymentCommand(orderID)
		if err != nil {
			return err
		}
		return s.commands.CompletePayment.Handle(ctx.Request().Context(), cmd)
	})
}

// CancelOrder handles POST /api/v1/orders/:orderId/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	return s.handleOrderTransition(ctx, func(orderID kernel.UUID) error {
		cmd, err := commands.NewCancelOrderCommand(orderID)
		if err != nil {
			return err
		}
		return s.commands.CancelOrder.Handle(ctx.Request().Context(), cmd)
	})
}

// StartDelivery handles POST /api/v1/orders/:orderId/delivery/start.
func (s *Server) StartDelivery(ctx echo.Context) error {
	return s.handleOrderTransition(ctx, func(orderID kernel.UUID) error {
		cmd, err := commands.NewStartDeliveryCommand(orderID)
		if err != nil {
			return err
		}
		return s.commands.StartDelivery.Handle(ctx.Request().Context(), cmd)
	})
}

// CompleteDelivery handles POST /api/v1/orders/:orderId/delivery/complete.
func (s *Server) CompleteDelivery(ctx echo.Context) error {
	return s.handleOrderTransition(ctx, func(orderID kernel.UUID) error {
		cmd, err := commands.NewCompleteDeliveryCommand(orderID)
		if err != nil {
			return err
		}
		return s.commands.CompleteDelivery.Handle(ctx.Request().Context(), cmd)
	})
}

// handleOrderTransition factors the shared shape of the parameterless
// order lifecycle endpoints.
func (s *Server) handleOrderTransition(ctx echo.Context, run func(orderID kernel.UUID) error) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	if err = run(orderID); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

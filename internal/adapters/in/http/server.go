// Package http exposes the application use cases over a JSON REST API.
// It coordinates between HTTP handlers and application use cases.
package http

import (
	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// Commands groups every command handler the server exposes.
type Commands struct {
	RegisterUser             commands.RegisterUserCommandHandler
	SignIn                   commands.SignInCommandHandler
	AddCustomerDetails       commands.AddCustomerDetailsCommandHandler
	AddDeliveryPersonDetails commands.AddDeliveryPersonDetailsCommandHandler
	AddAvailability          commands.AddDeliveryPersonAvailabilityCommandHandler
	DeleteAvailability       commands.DeleteDeliveryPersonAvailabilityCommandHandler
	CreateRestaurant         commands.CreateRestaurantCommandHandler
	AddMenuItem              commands.AddMenuItemCommandHandler
	UpdateMenuItem           commands.UpdateMenuItemCommandHandler
	RemoveMenuItem           commands.RemoveMenuItemCommandHandler
	CreateOrder              commands.CreateOrderCommandHandler
	AddOrderItem             commands.AddOrderItemCommandHandler
	RemoveOrderItem          commands.RemoveOrderItemCommandHandler
	SetPayment               commands.SetPaymentCommandHandler
	CompletePayment          commands.CompletePaymentCommandHandler
	CancelOrder              commands.CancelOrderCommandHandler
	StartDelivery            commands.StartDeliveryCommandHandler
	CompleteDelivery         commands.CompleteDeliveryCommandHandler
}

// Queries groups every query handler the server exposes.
type Queries struct {
	GetRestaurantMenu           queries.GetRestaurantMenuQueryHandler
	GetUndeliveredOrders        queries.GetUndeliveredOrdersQueryHandler
	GetAvailableDeliveryPersons queries.GetAvailableDeliveryPersonsQueryHandler
}

// Server handles HTTP requests by dispatching to command and query
// handlers.
type Server struct {
	commands Commands
	queries  Queries
	verifier TokenVerifier
}

// NewServer creates a new HTTP server with the required command and query
// handlers.
func NewServer(cmds Commands, qrs Queries, verifier TokenVerifier) *Server {
	return &Server{
		commands: cmds,
		queries:  qrs,
		verifier: verifier,
	}
}

// RegisterRoutes wires every endpoint into the echo instance. Endpoints
// other than registration, sign-in and the public menu require a bearer
// token.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.Validator = NewRequestValidator()

	api := e.Group("/api/v1")

	api.POST("/users/register", s.RegisterUser)
	api.POST("/users/sign-in", s.SignIn)
	api.GET("/restaurants/:restaurantId/menu", s.GetRestaurantMenu)

	authed := api.Group("", AuthMiddleware(s.verifier))

	authed.POST("/users/me/customer", s.AddCustomerDetails)
	authed.POST("/users/me/delivery-person", s.AddDeliveryPersonDetails)
	authed.POST("/users/me/availabilities", s.AddAvailability)
	authed.DELETE("/users/me/availabilities/:availabilityId", s.DeleteAvailability)

	authed.POST("/restaurants", s.CreateRestaurant)
	authed.POST("/restaurants/:restaurantId/menu-items", s.AddMenuItem)
	authed.PUT("/restaurants/:restaurantId/menu-items/:menuItemId", s.UpdateMenuItem)
	authed.DELETE("/restaurants/:restaurantId/menu-items/:menuItemId", s.RemoveMenuItem)

	authed.POST("/orders", s.CreateOrder)
	authed.POST("/orders/:orderId/items", s.AddOrderItem)
	authed.DELETE("/orders/:orderId/items/:itemId", s.RemoveOrderItem)
	authed.POST("/orders/:orderId/payment", s.SetPayment)
	authed.POST("/orders/:orderId/payment/complete", s.CompletePayment)
	authed.POST("/orders/:orderId/cancel", s.CancelOrder)
	authed.POST("/orders/:orderId/delivery/start", s.StartDelivery)
	authed.POST("/orders/:orderId/delivery/complete", s.CompleteDelivery)
	authed.GET("/orders/undelivered", s.GetUndeliveredOrders)

	authed.GET("/delivery-persons/available", s.GetAvailableDeliveryPersons)
}

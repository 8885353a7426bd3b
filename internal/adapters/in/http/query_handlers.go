package http

import (
	"net/http"
	"time"

	"fooddelivery/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// GetUndeliveredOrders handles GET /api/v1/orders/undelivered.
func (s *Server) GetUndeliveredOrders(ctx echo.Context) error {
	query := queries.NewGetUndeliveredOrdersQuery()

	orders, err := s.queries.GetUndeliveredOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	type orderResponse struct {
		ID       string    `json:"id"`
		Status   string    `json:"status"`
		PlacedAt time.Time `json:"placed_at"`
		Total    float64   `json:"total"`
	}

	response := make([]orderResponse, len(orders))
	for i, o := range orders {
		response[i] = orderResponse{
			ID:       o.ID.String(),
			Status:   o.Status.String(),
			PlacedAt: o.PlacedAt,
			Total:    o.Total,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetAvailableDeliveryPersons handles GET /api/v1/delivery-persons/available.
func (s *Server) GetAvailableDeliveryPersons(ctx echo.Context) error {
	query := queries.NewGetAvailableDeliveryPersonsQuery()

	persons, err := s.queries.GetAvailableDeliveryPersons.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	type personResponse struct {
		ID              string   `json:"id"`
		VehicleType     string   `json:"vehicle_type"`
		Latitude        *float64 `json:"latitude,omitempty"`
		Longitude       *float64 `json:"longitude,omitempty"`
		ServiceRadiusKm float64  `json:"service_radius_km"`
	}

	response := make([]personResponse, len(persons))
	for i, p := range persons {
		resp := personResponse{
			ID:              p.ID.String(),
			VehicleType:     p.VehicleType.String(),
			ServiceRadiusKm: p.ServiceRadiusKm,
		}
		if p.Location != nil {
			latitude := p.Location.Latitude()
			longitude := p.Location.Longitude()
			resp.Latitude = &latitude
			resp.Longitude = &longitude
		}
		response[i] = resp
	}

	return ctx.JSON(http.StatusOK, response)
}

package http

import (
	"net/http"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/restaurant"

	"github.com/labstack/echo/v4"
)

// CreateRestaurant handles POST /api/v1/restaurants. The authenticated
// user becomes the owner.
func (s *Server) CreateRestaurant(ctx echo.Context) error {
	ownerID, ok := authenticatedUserID(ctx)
	if !ok {
		return respondError(ctx, echo.ErrUnauthorized)
	}

	var req createRestaurantRequest
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
	address, err := req.Address.toDomain()
	if err != nil {
		return respondError(ctx, err)
	}
	hours, err := restaurant.NewOpeningHours(
		req.OpensAt.Hour, req.OpensAt.Minute,
		req.ClosesAt.Hour, req.ClosesAt.Minute,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	restaurantID := kernel.NewUUID()
	cmd, err := commands.NewCreateRestaurantCommand(
		restaurantID, ownerID,
		req.Name, req.Description,
		email, req.Phone, address, hours,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.commands.CreateRestaurant.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": restaurantID.String()})
}

// AddMenuItem handles POST /api/v1/restaurants/:restaurantId/menu-items.
func (s *Server) AddMenuItem(ctx echo.Context) error {
	restaurantID, err := kernel.UUIDFromString(ctx.Param("restaurantId"))
	if err != nil {
		return badRequest(ctx, "invalid restaurant id")
	}

	var req menuItemRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}
	if err = ctx.Validate(&req); err != nil {
		return err
	}

	category, err := parseCategory(req.Category)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewAddMenuItemCommand(restaurantID, req.Name, req.Description, req.Price, category)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.commands.AddMenuItem.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateMenuItem handles PUT /api/v1/restaurants/:restaurantId/menu-items/:menuItemId.
func (s *Server) UpdateMenuItem(ctx echo.Context) error {
	restaurantID, err := kernel.UUIDFromString(ctx.Param("restaurantId"))
	if err != nil {
		return badRequest(ctx, "invalid restaurant id")
	}
	menuItemID, err := kernel.UUIDFromString(ctx.Param("menuItemId"))
	if err != nil {
		return badRequest(ctx, "invalid menu item id")
	}

	var req menuItemRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}
	if err = ctx.Validate(&req); err != nil {
		return err
	}

	category, err := parseCategory(req.Category)
	if err != nil {
		return respondError(ctx, err)
	}

	isAvailable := true
	if req.IsAvailable != nil {
		isAvailable = *req.IsAvailable
	}

	cmd, err := commands.NewUpdateMenuItemCommand(
		restaurantID, menuItemID,
		req.Name, req.Description, req.Price, category, isAvailable,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.commands.UpdateMenuItem.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RemoveMenuItem handles DELETE /api/v1/restaurants/:restaurantId/menu-items/:menuItemId.
func (s *Server) RemoveMenuItem(ctx echo.Context) error {
	restaurantID, err := kernel.UUIDFromString(ctx.Param("restaurantId"))
	if err != nil {
		return badRequest(ctx, "invalid restaurant id")
	}
	menuItemID, err := kernel.UUIDFromString(ctx.Param("menuItemId"))
	if err != nil {
		return badRequest(ctx, "invalid menu item id")
	}

	cmd, err := commands.NewRemoveMenuItemCommand(restaurantID, menuItemID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.commands.RemoveMenuItem.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetRestaurantMenu handles GET /api/v1/restaurants/:restaurantId/menu.
// The menu is public so customers can browse before signing in.
func (s *Server) GetRestaurantMenu(ctx echo.Context) error {
	restaurantID, err := kernel.UUIDFromString(ctx.Param("restaurantId"))
	if err != nil {
		return badRequest(ctx, "invalid restaurant id")
	}

	query, err := queries.NewGetRestaurantMenuQuery(restaurantID)
	if err != nil {
		return respondError(ctx, err)
	}

	menu, err := s.queries.GetRestaurantMenu.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	type menuItemResponse struct {
		ID          string  `json:"id"`
		Name        string  `json:"name"`
		Description string  `json:"description"`
		Price       float64 `json:"price"`
		Category    string  `json:"category"`
	}

	response := make([]menuItemResponse, len(menu))
	for i, item := range menu {
		response[i] = menuItemResponse{
			ID:          item.ID.String(),
			Name:        item.Name,
			Description: item.Description,
			Price:       item.Price,
			Category:    item.Category.String(),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

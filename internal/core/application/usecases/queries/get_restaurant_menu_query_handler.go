package queries

import (
	"context"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/restaurant"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetRestaurantMenuQueryHandler reads a restaurant's orderable menu
// straight from the database.
type GetRestaurantMenuQueryHandler struct {
	db *gorm.DB
}

// NewGetRestaurantMenuQueryHandler creates a handler for menu queries.
func NewGetRestaurantMenuQueryHandler(db *gorm.DB) GetRestaurantMenuQueryHandler {
	return GetRestaurantMenuQueryHandler{db: db}
}

// Handle executes the query. Only available dishes are returned, sorted
// by name.
func (h GetRestaurantMenuQueryHandler) Handle(
	ctx context.Context,
	query GetRestaurantMenuQuery,
) ([]GetRestaurantMenuQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	menu := make([]GetRestaurantMenuQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			description,
			price,
			category
		FROM menu_items
		WHERE restaurant_id = ? AND is_available
		ORDER BY name
	`, query.RestaurantID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetRestaurantMenuQueryResponse
		var id uuid.UUID
		var category int

		if err = rows.Scan(&id, &resp.Name, &resp.Description, &resp.Price, &category); err != nil {
			return nil, err
		}

		itemID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = itemID
		resp.Category = restaurant.Category(category)
		menu = append(menu, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return menu, nil
}

package restaurant_test

import (
	"testing"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/restaurant"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRestaurant(t *testing.T) *restaurant.Restaurant {
	t.Helper()

	email, err := kernel.NewEmail("kitchen@trattoria.example")
	require.NoError(t, err)
	address, err := kernel.NewAddress("5 Via Roma", "Milan", "Lombardy", "20121")
	require.NoError(t, err)
	hours, err := restaurant.NewOpeningHours(11, 0, 23, 0)
	require.NoError(t, err)

	r, err := restaurant.NewRestaurant(
		kernel.NewUUID(), kernel.NewUUID(),
		"Trattoria Roma", "Family kitchen",
		email, "+39 02 1234567", address, hours,
	)
	require.NoError(t, err)
	return r
}

func TestNewRestaurant(t *testing.T) {
	t.Run("should create active restaurant with empty menu", func(t *testing.T) {
		r := testRestaurant(t)

		require.NoError(t, r.Validate())
		assert.Equal(t, "Trattoria Roma", r.Name())
		assert.True(t, r.IsActive())
		assert.Empty(t, r.MenuItems())
	})

	t.Run("should fail with blank name", func(t *testing.T) {
		email, err := kernel.NewEmail("kitchen@trattoria.example")
		require.NoError(t, err)
		address, err := kernel.NewAddress("5 Via Roma", "Milan", "Lombardy", "20121")
		require.NoError(t, err)
		hours, err := restaurant.NewOpeningHours(11, 0, 23, 0)
		require.NoError(t, err)

		r, err := restaurant.NewRestaurant(
			kernel.NewUUID(), kernel.NewUUID(), "   ", "",
			email, "+39 02 1234567", address, hours,
		)

		require.Error(t, err)
		assert.Nil(t, r)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail with unconstructed opening hours", func(t *testing.T) {
		email, err := kernel.NewEmail("kitchen@trattoria.example")
		require.NoError(t, err)
		address, err := kernel.NewAddress("5 Via Roma", "Milan", "Lombardy", "20121")
		require.NoError(t, err)
		var hours restaurant.OpeningHours

		r, err := restaurant.NewRestaurant(
			kernel.NewUUID(), kernel.NewUUID(), "Trattoria Roma", "",
			email, "+39 02 1234567", address, hours,
		)

		require.Error(t, err)
		assert.Nil(t, r)
	})
}

func TestRestaurantAddMenuItem(t *testing.T) {
	t.Run("should add available item", func(t *testing.T) {
		r := testRestaurant(t)

		item, err := r.AddMenuItem("Margherita", "Tomato and mozzarella", 8.5, restaurant.CategoryMainCourse)

		require.NoError(t, err)
		require.NoError(t, item.Validate())
		assert.Equal(t, "Margherita", item.Name())
		assert.True(t, item.IsAvailable())
		assert.Len(t, r.MenuItems(), 1)
	})

	t.Run("should reject duplicate name ignoring case", func(t *testing.T) {
		r := testRestaurant(t)
		_, err := r.AddMenuItem("Burger", "", 7, restaurant.CategoryMainCourse)
		require.NoError(t, err)

		_, err = r.AddMenuItem("burger", "", 9, restaurant.CategoryMainCourse)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrObjectAlreadyExists)
		assert.Len(t, r.MenuItems(), 1)
	})

	t.Run("should reject non-positive price", func(t *testing.T) {
		r := testRestaurant(t)

		_, err := r.AddMenuItem("Espresso", "", 0, restaurant.CategoryBeverage)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Empty(t, r.MenuItems())
	})

	t.Run("should reject unknown category", func(t *testing.T) {
		r := testRestaurant(t)

		_, err := r.AddMenuItem("Espresso", "", 2, restaurant.CategoryUnknown)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestRestaurantUpdateMenuItem(t *testing.T) {
	t.Run("should update all fields", func(t *testing.T) {
		r := testRestaurant(t)
		item, err := r.AddMenuItem("Tiramisu", "", 5, restaurant.CategoryDessert)
		require.NoError(t, err)

		err = r.UpdateMenuItem(item.ID(), "Tiramisu Classico", "With mascarpone", 6.5, restaurant.CategoryDessert, false)

		require.NoError(t, err)
		updated, err := r.GetMenuItem(item.ID())
		require.NoError(t, err)
		assert.Equal(t, "Tiramisu Classico", updated.Name())
		assert.Equal(t, "With mascarpone", updated.Description())
		assert.InDelta(t, 6.5, updated.Price(), 1e-9)
		assert.False(t, updated.IsAvailable())
	})

	t.Run("should allow changing only letter case of own name", func(t *testing.T) {
		r := testRestaurant(t)
		item, err := r.AddMenuItem("tiramisu", "", 5, restaurant.CategoryDessert)
		require.NoError(t, err)

		err = r.UpdateMenuItem(item.ID(), "Tiramisu", "", 5, restaurant.CategoryDessert, true)

		require.NoError(t, err)
	})

	t.Run("should reject name colliding with another item", func(t *testing.T) {
		r := testRestaurant(t)
		_, err := r.AddMenuItem("Burger", "", 7, restaurant.CategoryMainCourse)
		require.NoError(t, err)
		item, err := r.AddMenuItem("Fries", "", 3, restaurant.CategorySide)
		require.NoError(t, err)

		err = r.UpdateMenuItem(item.ID(), "BURGER", "", 3, restaurant.CategorySide, true)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrObjectAlreadyExists)
		kept, err := r.GetMenuItem(item.ID())
		require.NoError(t, err)
		assert.Equal(t, "Fries", kept.Name())
	})

	t.Run("should fail for unknown item", func(t *testing.T) {
		r := testRestaurant(t)

		err := r.UpdateMenuItem(kernel.NewUUID(), "Soup", "", 4, restaurant.CategoryAppetizer, true)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("should leave item untouched on invalid price", func(t *testing.T) {
		r := testRestaurant(t)
		item, err := r.AddMenuItem("Soup", "", 4, restaurant.CategoryAppetizer)
		require.NoError(t, err)

		err = r.UpdateMenuItem(item.ID(), "Soup", "", -1, restaurant.CategoryAppetizer, true)

		require.Error(t, err)
		kept, err := r.GetMenuItem(item.ID())
		require.NoError(t, err)
		assert.InDelta(t, 4.0, kept.Price(), 1e-9)
	})
}

func TestRestaurantRemoveMenuItem(t *testing.T) {
	t.Run("should remove existing item", func(t *testing.T) {
		r := testRestaurant(t)
		item, err := r.AddMenuItem("Burger", "", 7, restaurant.CategoryMainCourse)
		require.NoError(t, err)

		require.NoError(t, r.RemoveMenuItem(item.ID()))

		assert.Empty(t, r.MenuItems())
	})

	t.Run("should fail for unknown item", func(t *testing.T) {
		r := testRestaurant(t)

		err := r.RemoveMenuItem(kernel.NewUUID())

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("should free the name for reuse", func(t *testing.T) {
		r := testRestaurant(t)
		item, err := r.AddMenuItem("Burger", "", 7, restaurant.CategoryMainCourse)
		require.NoError(t, err)
		require.NoError(t, r.RemoveMenuItem(item.ID()))

		_, err = r.AddMenuItem("burger", "", 8, restaurant.CategoryMainCourse)

		require.NoError(t, err)
	})
}

func TestRestaurantActivation(t *testing.T) {
	t.Run("toggles are idempotent", func(t *testing.T) {
		r := testRestaurant(t)

		r.Deactivate()
		assert.False(t, r.IsActive())
		r.Deactivate()
		assert.False(t, r.IsActive())

		r.Activate()
		assert.True(t, r.IsActive())
		r.Activate()
		assert.True(t, r.IsActive())
	})
}

func TestRestaurantIsOpenAt(t *testing.T) {
	r := testRestaurant(t) // open 11:00-23:00
	noon := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)
	dawn := time.Date(2026, time.March, 10, 4, 0, 0, 0, time.UTC)

	assert.True(t, r.IsOpenAt(noon))
	assert.False(t, r.IsOpenAt(dawn))

	r.Deactivate()
	assert.False(t, r.IsOpenAt(noon))
}

func TestRestoreRestaurant(t *testing.T) {
	email, err := kernel.NewEmail("kitchen@trattoria.example")
	require.NoError(t, err)
	address, err := kernel.NewAddress("5 Via Roma", "Milan", "Lombardy", "20121")
	require.NoError(t, err)
	hours, err := restaurant.NewOpeningHours(11, 0, 23, 0)
	require.NoError(t, err)
	item, err := restaurant.RestoreMenuItem(
		kernel.NewUUID(), "Margherita", "", 8.5, restaurant.CategoryMainCourse, false)
	require.NoError(t, err)
	createdAt := time.Now().UTC().Add(-24 * time.Hour)

	r, err := restaurant.RestoreRestaurant(
		kernel.NewUUID(), kernel.NewUUID(),
		"Trattoria Roma", "", email, "+39 02 1234567", address, hours,
		false, []*restaurant.MenuItem{item}, createdAt, createdAt,
	)

	require.NoError(t, err)
	require.NoError(t, r.Validate())
	assert.False(t, r.IsActive())
	require.Len(t, r.MenuItems(), 1)
	assert.False(t, r.MenuItems()[0].IsAvailable())
	assert.Equal(t, createdAt, r.CreatedAt())
}

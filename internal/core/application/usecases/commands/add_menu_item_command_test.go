package commands_test

import (
	"context"
	"testing"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/restaurant"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRestaurantUoW struct{ mock.Mock }

func (m *MockRestaurantUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRestaurantUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRestaurantUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRestaurantUoW) RestaurantRepository() ports.RestaurantRepository {
	args := m.Called()
	return args.Get(0).(ports.RestaurantRepository)
}

type MockRestaurantUoWFactory struct{ mock.Mock }

func (m *MockRestaurantUoWFactory) Create() commands.RestaurantUoW {
	args := m.Called()
	return args.Get(0).(commands.RestaurantUoW)
}

func TestNewAddMenuItemCommand(t *testing.T) {
	t.Run("should create valid command", func(t *testing.T) {
		cmd, err := commands.NewAddMenuItemCommand(
			kernel.NewUUID(), "Margherita", "Tomato and mozzarella", 8.5, restaurant.CategoryMainCourse)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, "Margherita", cmd.Name())
	})

	t.Run("should reject blank name and bad price", func(t *testing.T) {
		_, err := commands.NewAddMenuItemCommand(
			kernel.NewUUID(), "  ", "", 0, restaurant.CategoryMainCourse)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestAddMenuItemCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	r := openRestaurant(t)
	cmd, err := commands.NewAddMenuItemCommand(
		r.ID(), "Margherita", "", 8.5, restaurant.CategoryMainCourse)
	require.NoError(t, err)

	restaurantRepo := new(MockRestaurantRepository)
	uow := new(MockRestaurantUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RestaurantRepository").Return(restaurantRepo).Once(),
		restaurantRepo.On("Get", ctx, r.ID()).Return(r, nil).Once(),
		restaurantRepo.On("Update", ctx, r).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRestaurantUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAddMenuItemCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Len(t, r.MenuItems(), 1)
	assert.Equal(t, "Margherita", r.MenuItems()[0].Name())
	restaurantRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAddMenuItemCommandHandler_Handle_DuplicateName(t *testing.T) {
	ctx := t.Context()
	r := openRestaurant(t)
	_, err := r.AddMenuItem("Burger", "", 7, restaurant.CategoryMainCourse)
	require.NoError(t, err)

	cmd, err := commands.NewAddMenuItemCommand(
		r.ID(), "burger", "", 9, restaurant.CategoryMainCourse)
	require.NoError(t, err)

	restaurantRepo := new(MockRestaurantRepository)
	uow := new(MockRestaurantUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RestaurantRepository").Return(restaurantRepo).Once(),
		restaurantRepo.On("Get", ctx, r.ID()).Return(r, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRestaurantUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAddMenuItemCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectAlreadyExists)
	assert.Len(t, r.MenuItems(), 1)
}

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/model/user"
	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetFirstPendingUnassigned(ctx context.Context) (*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllUndelivered(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockDeliveryPersonRepository struct{ mock.Mock }

func (m *MockDeliveryPersonRepository) Get(ctx context.Context, id kernel.UUID) (*user.DeliveryPerson, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.DeliveryPerson), args.Error(1)
}

func (m *MockDeliveryPersonRepository) GetAllAvailable(ctx context.Context) ([]*user.DeliveryPerson, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*user.DeliveryPerson), args.Error(1)
}

func (m *MockDeliveryPersonRepository) Update(ctx context.Context, p *user.DeliveryPerson) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

type MockDispatchUoW struct{ mock.Mock }

func (m *MockDispatchUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDispatchUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDispatchUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDispatchUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockDispatchUoW) DeliveryPersonRepository() ports.DeliveryPersonRepository {
	args := m.Called()
	return args.Get(0).(ports.DeliveryPersonRepository)
}

type MockDispatchUoWFactory struct{ mock.Mock }

func (m *MockDispatchUoWFactory) Create() commands.DispatchUoW {
	args := m.Called()
	return args.Get(0).(commands.DispatchUoW)
}

func waitingOrder(t *testing.T) *order.Order {
	t.Helper()
	loc, err := kernel.NewGeoLocation(48.8566, 2.3522)
	require.NoError(t, err)
	address, err := kernel.NewAddressWithLocation("1 Drop Street", "Paris", "IDF", "75001", loc)
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), address)
	require.NoError(t, err)
	require.NoError(t, o.CreateDelivery())
	return o
}

func availablePerson(t *testing.T, lat, lon float64) *user.DeliveryPerson {
	t.Helper()
	vehicle, err := user.NewVehicle(user.VehicleTypeScooter, "AB-123-CD")
	require.NoError(t, err)
	loc, err := kernel.NewGeoLocation(lat, lon)
	require.NoError(t, err)
	now := time.Now().UTC()
	window, err := user.RestoreAvailability(kernel.NewUUID(), now.Add(-time.Hour), now.Add(time.Hour))
	require.NoError(t, err)
	p, err := user.RestoreDeliveryPerson(
		kernel.NewUUID(), vehicle, &loc, true, 10, []*user.Availability{window}, 0)
	require.NoError(t, err)
	return p
}

func TestAssignDeliveryCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewAssignDeliveryCommand()

	o := waitingOrder(t)
	person := availablePerson(t, 48.858, 2.355)

	orderRepo := new(MockOrderRepository)
	personRepo := new(MockDeliveryPersonRepository)
	uow := new(MockDispatchUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("DeliveryPersonRepository").Return(personRepo).Once(),
		orderRepo.On("GetFirstPendingUnassigned", ctx).Return(o, nil).Once(),
		personRepo.On("GetAllAvailable", ctx).Return([]*user.DeliveryPerson{person}, nil).Once(),
		personRepo.On("Update", ctx, person).Return(nil).Once(),
		orderRepo.On("Update", ctx, o).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDispatchUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignDeliveryCommandHandler(factory, services.NewDeliveryPersonSelector())
	err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.False(t, person.IsAvailable())
	assert.Equal(t, order.DeliveryAssigned, o.Delivery().Status())
	require.NotNil(t, o.Delivery().DeliveryPersonID())
	assert.True(t, o.Delivery().DeliveryPersonID().IsEqual(person.ID()))
	assert.True(t, o.IsLocked())
	assert.Positive(t, o.Delivery().EstimatedDeliveryTime())
	orderRepo.AssertExpectations(t)
	personRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAssignDeliveryCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.AssignDeliveryCommand{} // not constructed properly

	factory := new(MockDispatchUoWFactory)
	handler := commands.NewAssignDeliveryCommandHandler(factory, services.NewDeliveryPersonSelector())
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrAssignDeliveryCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestAssignDeliveryCommandHandler_Handle_NoOrderWaiting(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewAssignDeliveryCommand()

	orderRepo := new(MockOrderRepository)
	personRepo := new(MockDeliveryPersonRepository)
	uow := new(MockDispatchUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("DeliveryPersonRepository").Return(personRepo).Once(),
		orderRepo.On("GetFirstPendingUnassigned", ctx).Return(nil, errs.ErrObjectNotFound).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDispatchUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignDeliveryCommandHandler(factory, services.NewDeliveryPersonSelector())
	err := handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrNoOrderToAssign)
}

func TestAssignDeliveryCommandHandler_Handle_NoEligibleCandidate(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewAssignDeliveryCommand()

	o := waitingOrder(t)
	busy := availablePerson(t, 48.858, 2.355)
	busy.MarkBusy()

	orderRepo := new(MockOrderRepository)
	personRepo := new(MockDeliveryPersonRepository)
	uow := new(MockDispatchUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("DeliveryPersonRepository").Return(personRepo).Once(),
		orderRepo.On("GetFirstPendingUnassigned", ctx).Return(o, nil).Once(),
		personRepo.On("GetAllAvailable", ctx).Return([]*user.DeliveryPerson{busy}, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDispatchUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignDeliveryCommandHandler(factory, services.NewDeliveryPersonSelector())
	err := handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, services.ErrNoAvailableDeliveryPerson)
}

func TestAssignDeliveryCommandHandler_Handle_RetriesAfterVersionConflict(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewAssignDeliveryCommand()

	o := waitingOrder(t)
	contested := availablePerson(t, 48.858, 2.355)
	fallback := availablePerson(t, 48.87, 2.37)

	versionConflict := errs.NewVersionIsInvalidError("delivery person version", errors.New("row changed"))

	orderRepo := new(MockOrderRepository)
	personRepo := new(MockDeliveryPersonRepository)
	uow := new(MockDispatchUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("DeliveryPersonRepository").Return(personRepo).Once(),
		orderRepo.On("GetFirstPendingUnassigned", ctx).Return(o, nil).Once(),
		// First attempt loses the race for the nearest candidate.
		personRepo.On("GetAllAvailable", ctx).
			Return([]*user.DeliveryPerson{contested, fallback}, nil).Once(),
		personRepo.On("Update", ctx, contested).Return(versionConflict).Once(),
		// Second attempt sees only the fallback.
		personRepo.On("GetAllAvailable", ctx).
			Return([]*user.DeliveryPerson{fallback}, nil).Once(),
		personRepo.On("Update", ctx, fallback).Return(nil).Once(),
		orderRepo.On("Update", ctx, o).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDispatchUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignDeliveryCommandHandler(factory, services.NewDeliveryPersonSelector())
	err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, o.Delivery().DeliveryPersonID())
	assert.True(t, o.Delivery().DeliveryPersonID().IsEqual(fallback.ID()))
	personRepo.AssertExpectations(t)
}

func TestAssignDeliveryCommandHandler_Handle_GivesUpAfterMaxAttempts(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewAssignDeliveryCommand()

	o := waitingOrder(t)
	versionConflict := errs.NewVersionIsInvalidError("delivery person version", errors.New("row changed"))

	orderRepo := new(MockOrderRepository)
	personRepo := new(MockDeliveryPersonRepository)
	uow := new(MockDispatchUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("DeliveryPersonRepository").Return(personRepo).Once()
	orderRepo.On("GetFirstPendingUnassigned", ctx).Return(o, nil).Once()
	// Every attempt sees a fresh candidate and loses the race for it.
	for range 3 {
		contested := availablePerson(t, 48.858, 2.355)
		personRepo.On("GetAllAvailable", ctx).
			Return([]*user.DeliveryPerson{contested}, nil).Once()
		personRepo.On("Update", ctx, contested).Return(versionConflict).Once()
	}
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockDispatchUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignDeliveryCommandHandler(factory, services.NewDeliveryPersonSelector())
	err := handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, services.ErrNoAvailableDeliveryPerson)
	personRepo.AssertExpectations(t)
}

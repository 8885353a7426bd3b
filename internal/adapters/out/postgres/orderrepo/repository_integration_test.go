package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"fooddelivery/internal/adapters/out/postgres/orderrepo"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of the aggregateTracker
// interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite verifies that the order aggregate
// survives a round trip through all four of its tables.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.ItemDTO{},
		&orderrepo.DeliveryDTO{},
		&orderrepo.PaymentDTO{},
	))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(
		suite.db.Exec("TRUNCATE TABLE order_items, order_deliveries, order_payments, orders").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAddAndGet_RoundTrip() {
	ctx := context.Background()
	o := suite.buildOrder()

	firstItem := o.Items()[0]
	suite.Require().NoError(suite.repository.Add(ctx, o))

	loaded, err := suite.repository.Get(ctx, o.ID())

	suite.Require().NoError(err)
	suite.True(loaded.IsEqual(o))
	suite.Equal(order.StatusConfirmed, loaded.Status())
	suite.True(loaded.IsLocked())
	suite.InDelta(o.Total(), loaded.Total(), 0.0001)

	suite.Require().Len(loaded.Items(), 2)
	suite.True(loaded.Items()[0].ID().IsEqual(firstItem.ID()))

	suite.Require().NotNil(loaded.Delivery())
	suite.Equal(order.DeliveryPending, loaded.Delivery().Status())

	suite.Require().NotNil(loaded.Payment())
	suite.Equal(order.PaymentCompleted, loaded.Payment().Status())

	location, ok := loaded.DeliveryAddress().Location()
	suite.Require().True(ok)
	suite.InDelta(48.8566, location.Latitude(), 0.0001)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_RemovesDroppedItems() {
	ctx := context.Background()
	o := suite.buildPendingOrder()
	suite.Require().NoError(o.AddItem(kernel.NewUUID(), 1, 4.5))
	suite.Require().NoError(o.AddItem(kernel.NewUUID(), 2, 7.0))
	suite.Require().NoError(suite.repository.Add(ctx, o))

	dropped := o.Items()[0]
	suite.Require().NoError(o.RemoveItem(dropped.ID()))
	suite.Require().NoError(suite.repository.Update(ctx, o))

	loaded, err := suite.repository.Get(ctx, o.ID())

	suite.Require().NoError(err)
	suite.Require().Len(loaded.Items(), 1)
	suite.False(loaded.Items()[0].ID().IsEqual(dropped.ID()))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_PersistsDeliveryAssignment() {
	ctx := context.Background()
	o := suite.buildOrder()
	suite.Require().NoError(suite.repository.Add(ctx, o))

	personID := kernel.NewUUID()
	suite.Require().NoError(o.AssignDelivery(personID, 25*time.Minute))
	suite.Require().NoError(suite.repository.Update(ctx, o))

	loaded, err := suite.repository.Get(ctx, o.ID())

	suite.Require().NoError(err)
	suite.Equal(order.DeliveryAssigned, loaded.Delivery().Status())
	suite.Require().NotNil(loaded.Delivery().DeliveryPersonID())
	suite.True(loaded.Delivery().DeliveryPersonID().IsEqual(personID))
	suite.Equal(25*time.Minute, loaded.Delivery().EstimatedDeliveryTime())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_NotFound() {
	o := suite.buildOrder()

	err := suite.repository.Update(context.Background(), o)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetFirstPendingUnassigned_OldestFirst() {
	ctx := context.Background()

	first := suite.buildOrder()
	suite.Require().NoError(suite.repository.Add(ctx, first))

	second := suite.buildOrder()
	suite.Require().NoError(suite.repository.Add(ctx, second))

	assigned := suite.buildOrder()
	suite.Require().NoError(assigned.AssignDelivery(kernel.NewUUID(), 20*time.Minute))
	suite.Require().NoError(suite.repository.Add(ctx, assigned))

	found, err := suite.repository.GetFirstPendingUnassigned(ctx)

	suite.Require().NoError(err)
	suite.True(found.IsEqual(first))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetFirstPendingUnassigned_Empty() {
	_, err := suite.repository.GetFirstPendingUnassigned(context.Background())

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllUndelivered_SkipsTerminalStatuses() {
	ctx := context.Background()

	active := suite.buildOrder()
	suite.Require().NoError(suite.repository.Add(ctx, active))

	cancelled := suite.buildOrder()
	suite.Require().NoError(cancelled.Cancel())
	suite.Require().NoError(suite.repository.Add(ctx, cancelled))

	result, err := suite.repository.GetAllUndelivered(ctx)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.True(result[0].IsEqual(active))
}

// buildOrder returns a confirmed order with two items, a completed
// payment, and a pending delivery, matching the state the assignment job
// picks up.
func (suite *OrderRepositoryIntegrationTestSuite) buildOrder() *order.Order {
	o := suite.buildPendingOrder()

	suite.Require().NoError(o.AddItem(kernel.NewUUID(), 2, 8.5))
	suite.Require().NoError(o.AddItem(kernel.NewUUID(), 1, 3.0))
	suite.Require().NoError(o.SetPayment(o.Total(), order.PaymentMethodCard, "txn-0001"))
	suite.Require().NoError(o.CompletePayment())
	suite.Require().NoError(o.CreateDelivery())

	return o
}

func (suite *OrderRepositoryIntegrationTestSuite) buildPendingOrder() *order.Order {
	location, err := kernel.NewGeoLocation(48.8566, 2.3522)
	suite.Require().NoError(err)

	address, err := kernel.NewAddressWithLocation(
		"12 Rue de Rivoli", "Paris", "Ile-de-France", "75001", location)
	suite.Require().NoError(err)

	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), address)
	suite.Require().NoError(err)
	return o
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}

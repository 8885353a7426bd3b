package restaurantrepo_test

import (
	"context"
	"testing"
	"time"

	"fooddelivery/internal/adapters/out/postgres/restaurantrepo"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/restaurant"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type RestaurantRepositoryTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *restaurantrepo.GormRestaurantRepository
}

func (suite *RestaurantRepositoryTestSuite) SetupSuite() {
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

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&restaurantrepo.RestaurantDTO{},
		&restaurantrepo.MenuItemDTO{},
	))

	suite.repository = restaurantrepo.NewGormRestaurantRepository(db, &noopTracker{})
}

func (suite *RestaurantRepositoryTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *RestaurantRepositoryTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE menu_items, restaurants").Error)
}

func (suite *RestaurantRepositoryTestSuite) TestAddAndGet_RoundTrip() {
	ctx := context.Background()
	r := suite.buildRestaurant()

	_, err := r.AddMenuItem("Margherita", "Tomato and mozzarella", 8.5, restaurant.CategoryMainCourse)
	suite.Require().NoError(err)

	suite.Require().NoError(suite.repository.Add(ctx, r))

	restored, err := suite.repository.Get(ctx, r.ID())
	suite.Require().NoError(err)

	suite.True(restored.ID().IsEqual(r.ID()))
	suite.Equal("Trattoria Roma", restored.Name())
	suite.Equal("kitchen@trattoria.example", restored.Email().String())
	suite.Require().Len(restored.MenuItems(), 1)
	suite.Equal("Margherita", restored.MenuItems()[0].Name())
	suite.InDelta(8.5, restored.MenuItems()[0].Price(), 0.0001)
}

func (suite *RestaurantRepositoryTestSuite) TestGet_NotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())

	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *RestaurantRepositoryTestSuite) TestUpdate_SyncsMenuItems() {
	ctx := context.Background()
	r := suite.buildRestaurant()

	kept, err := r.AddMenuItem("Minestrone", "", 7.5, restaurant.CategoryAppetizer)
	suite.Require().NoError(err)
	dropped, err := r.AddMenuItem("Tiramisu", "", 6.0, restaurant.CategoryDessert)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(ctx, r))

	suite.Require().NoError(r.RemoveMenuItem(dropped.ID()))
	_, err = r.AddMenuItem("Carbonara", "", 11.0, restaurant.CategoryMainCourse)
	suite.Require().NoError(err)

	suite.Require().NoError(suite.repository.Update(ctx, r))

	restored, err := suite.repository.Get(ctx, r.ID())
	suite.Require().NoError(err)

	menu := restored.MenuItems()
	suite.Require().Len(menu, 2)

	names := []string{menu[0].Name(), menu[1].Name()}
	suite.Contains(names, "Minestrone")
	suite.Contains(names, "Carbonara")
	suite.NotContains(names, "Tiramisu")

	keptItem, err := restored.GetMenuItem(kept.ID())
	suite.Require().NoError(err)
	suite.Equal("Minestrone", keptItem.Name())
}

func (suite *RestaurantRepositoryTestSuite) TestUpdate_NotFound() {
	err := suite.repository.Update(context.Background(), suite.buildRestaurant())

	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *RestaurantRepositoryTestSuite) buildRestaurant() *restaurant.Restaurant {
	email, err := kernel.NewEmail("kitchen@trattoria.example")
	suite.Require().NoError(err)
	address, err := kernel.NewAddress("5 Via Roma", "Milan", "Lombardy", "20121")
	suite.Require().NoError(err)
	hours, err := restaurant.NewOpeningHours(11, 0, 23, 0)
	suite.Require().NoError(err)

	r, err := restaurant.NewRestaurant(
		kernel.NewUUID(), kernel.NewUUID(),
		"Trattoria Roma", "", email, "+39 02 1234567", address, hours,
	)
	suite.Require().NoError(err)
	return r
}

func TestRestaurantRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RestaurantRepositoryTestSuite))
}

// noopTracker satisfies the repository's aggregate tracking interface for
// tests that do not inspect tracked aggregates.
type noopTracker struct{}

func (n *noopTracker) TrackAggregate(_ kernel.UUID, _ any) {}

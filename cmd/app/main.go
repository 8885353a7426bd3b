package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"time"

	"fooddelivery/cmd"
	httpadapter "fooddelivery/internal/adapters/in/http"
	"fooddelivery/internal/adapters/out/auth"
	"fooddelivery/internal/adapters/out/postgres/deliverypersonrepo"
	"fooddelivery/internal/adapters/out/postgres/orderrepo"
	"fooddelivery/internal/adapters/out/postgres/restaurantrepo"
	"fooddelivery/internal/adapters/out/postgres/userrepo"
	"fooddelivery/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := openDatabase(configs)
	migrateDatabase(gormDB)

	tokens, err := auth.NewJWTTokenProvider(configs.JWTSecret, tokenLifetime(configs))
	if err != nil {
		log.Fatalf("Invalid JWT configuration: %v", err)
	}

	app := cmd.NewCompositionRoot(configs, gormDB, tokens)

	jobManager := startJobs(&app)
	defer jobManager.StopAll()

	startWebServer(&app, configs)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:        goDotEnvVariable("HTTP_PORT"),
		DBHost:          goDotEnvVariable("DB_HOST"),
		DBPort:          goDotEnvVariable("DB_PORT"),
		DBUser:          goDotEnvVariable("DB_USER"),
		DBPassword:      goDotEnvVariable("DB_PASSWORD"),
		DBName:          goDotEnvVariable("DB_NAME"),
		DBSslMode:       goDotEnvVariable("DB_SSLMODE"),
		JWTSecret:       goDotEnvVariable("JWT_SECRET"),
		JWTLifetime:     goDotEnvVariable("JWT_LIFETIME"),
		RateLimitPerSec: goDotEnvVariable("RATE_LIMIT_PER_SEC"),
		RateLimitBurst:  goDotEnvVariable("RATE_LIMIT_BURST"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func openDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode,
	)

	// TranslateError turns driver duplicate-key failures into
	// gorm.ErrDuplicatedKey, which the user repository relies on.
	gormDB, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return gormDB
}

func migrateDatabase(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&userrepo.UserDTO{},
		&userrepo.CustomerDTO{},
		&userrepo.FavoriteRestaurantDTO{},
		&deliverypersonrepo.DeliveryPersonDTO{},
		&deliverypersonrepo.AvailabilityDTO{},
		&restaurantrepo.RestaurantDTO{},
		&restaurantrepo.MenuItemDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.ItemDTO{},
		&orderrepo.DeliveryDTO{},
		&orderrepo.PaymentDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
}

func tokenLifetime(configs cmd.Config) time.Duration {
	if configs.JWTLifetime == "" {
		return 24 * time.Hour
	}

	lifetime, err := time.ParseDuration(configs.JWTLifetime)
	if err != nil {
		log.Fatalf("Invalid JWT_LIFETIME: %v", err)
	}
	return lifetime
}

func startJobs(app *cmd.CompositionRoot) *jobs.JobManager {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	jobManager := jobs.NewJobManager(app.CreateAssignDeliveryCommandHandler(), logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	return jobManager
}

func startWebServer(app *cmd.CompositionRoot, configs cmd.Config) {
	server := httpadapter.NewServer(
		httpadapter.Commands{
			RegisterUser:             app.CreateRegisterUserCommandHandler(),
			SignIn:                   app.CreateSignInCommandHandler(),
			AddCustomerDetails:       app.CreateAddCustomerDetailsCommandHandler(),
			AddDeliveryPersonDetails: app.CreateAddDeliveryPersonDetailsCommandHandler(),
			AddAvailability:          app.CreateAddDeliveryPersonAvailabilityCommandHandler(),
			DeleteAvailability:       app.CreateDeleteDeliveryPersonAvailabilityCommandHandler(),
			CreateRestaurant:         app.CreateCreateRestaurantCommandHandler(),
			AddMenuItem:              app.CreateAddMenuItemCommandHandler(),
			UpdateMenuItem:           app.CreateUpdateMenuItemCommandHandler(),
			RemoveMenuItem:           app.CreateRemoveMenuItemCommandHandler(),
			CreateOrder:              app.CreateCreateOrderCommandHandler(),
			AddOrderItem:             app.CreateAddOrderItemCommandHandler(),
			RemoveOrderItem:          app.CreateRemoveOrderItemCommandHandler(),
			SetPayment:               app.CreateSetPaymentCommandHandler(),
			CompletePayment:          app.CreateCompletePaymentCommandHandler(),
			CancelOrder:              app.CreateCancelOrderCommandHandler(),
			StartDelivery:            app.CreateStartDeliveryCommandHandler(),
			CompleteDelivery:         app.CreateCompleteDeliveryCommandHandler(),
		},
		httpadapter.Queries{
			GetRestaurantMenu:           app.CreateGetRestaurantMenuQueryHandler(),
			GetUndeliveredOrders:        app.CreateGetUndeliveredOrdersQueryHandler(),
			GetAvailableDeliveryPersons: app.CreateGetAvailableDeliveryPersonsQueryHandler(),
		},
		app.TokenProvider(),
	)

	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(httpadapter.RateLimiterMiddleware(rateLimit(configs)))
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)))
}

func rateLimit(configs cmd.Config) (float64, int) {
	rps := 50.0
	if configs.RateLimitPerSec != "" {
		parsed, err := strconv.ParseFloat(configs.RateLimitPerSec, 64)
		if err != nil {
			log.Fatalf("Invalid RATE_LIMIT_PER_SEC: %v", err)
		}
		rps = parsed
	}

	burst := 100
	if configs.RateLimitBurst != "" {
		parsed, err := strconv.Atoi(configs.RateLimitBurst)
		if err != nil {
			log.Fatalf("Invalid RATE_LIMIT_BURST: %v", err)
		}
		burst = parsed
	}

	return rps, burst
}

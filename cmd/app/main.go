package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"time"

	"store/cmd"
	httpadapter "store/internal/adapters/in/http"
	"store/internal/adapters/out/postgres/customerrepo"
	"store/internal/adapters/out/postgres/deliveryfeerepo"
	"store/internal/adapters/out/postgres/discountrepo"
	"store/internal/adapters/out/postgres/orderrepo"
	"store/internal/adapters/out/postgres/productrepo"
	"store/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	db := connectDB(configs)

	app := cmd.NewCompositionRoot(configs, db)

	jobManager := jobs.NewJobManager(
		app.CreateCancelStaleOrdersCommandHandler(),
		app.CreatePurgeExpiredDiscountsCommandHandler(),
		durationMinutes(configs.OrderMaxAgeMinutes, 30),
		durationHours(configs.DiscountRetentionHrs, 24),
		slog.New(slog.NewJSONHandler(os.Stdout, nil)),
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:             goDotEnvVariable("HTTP_PORT"),
		DBHost:               goDotEnvVariable("DB_HOST"),
		DBPort:               goDotEnvVariable("DB_PORT"),
		DBUser:               goDotEnvVariable("DB_USER"),
		DBPassword:           goDotEnvVariable("DB_PASSWORD"),
		DBName:               goDotEnvVariable("DB_NAME"),
		DBSslMode:            goDotEnvVariable("DB_SSLMODE"),
		OrderMaxAgeMinutes:   goDotEnvVariable("ORDER_MAX_AGE_MINUTES"),
		DiscountRetentionHrs: goDotEnvVariable("DISCOUNT_RETENTION_HOURS"),
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

func connectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect database: %v", err)
	}

	err = db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.ItemDTO{},
		&customerrepo.CustomerDTO{},
		&productrepo.ProductDTO{},
		&discountrepo.DiscountDTO{},
		&deliveryfeerepo.DeliveryFeeDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	return db
}

func durationMinutes(value string, fallback int) time.Duration {
	if parsed, err := strconv.Atoi(value); err == nil && parsed > 0 {
		return time.Duration(parsed) * time.Minute
	}
	return time.Duration(fallback) * time.Minute
}

func durationHours(value string, fallback int) time.Duration {
	if parsed, err := strconv.Atoi(value); err == nil && parsed >= 0 {
		return time.Duration(parsed) * time.Hour
	}
	return time.Duration(fallback) * time.Hour
}

func startWebServer(app cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpadapter.NewServer(
		app.CreateCreateOrderCommandHandler(),
		app.CreateGetActiveProductsQueryHandler(),
		app.CreateGetPendingOrdersQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}

package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"cleaning/cmd"
	"cleaning/internal/adapters/out/postgres/cleanerrepo"
	"cleaning/internal/adapters/out/postgres/orderrepo"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustConnectDB(configs)
	mustMigrateDB(gormDB)

	app := cmd.NewCompositionRoot(configs, gormDB, logger)

	if err := app.AvailabilityIndex().Rebuild(context.Background(), app.ActiveOrdersSource()); err != nil {
		log.Fatalf("Failed to build availability index: %v", err)
	}

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:                    goDotEnvVariable("HTTP_PORT"),
		DBHost:                      goDotEnvVariable("DB_HOST"),
		DBPort:                      goDotEnvVariable("DB_PORT"),
		DBUser:                      goDotEnvVariable("DB_USER"),
		DBPassword:                  goDotEnvVariable("DB_PASSWORD"),
		DBName:                      goDotEnvVariable("DB_NAME"),
		DBSslMode:                   goDotEnvVariable("DB_SSLMODE"),
		JWTSecret:                   goDotEnvVariable("JWT_SECRET"),
		AvailabilityRefreshSchedule: goDotEnvVariable("AVAILABILITY_REFRESH_SCHEDULE"),
	}

	if config.AvailabilityRefreshSchedule == "" {
		config.AvailabilityRefreshSchedule = "*/30 * * * * *"
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

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return gormDB
}

func mustMigrateDB(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.ItemDTO{},
		&cleanerrepo.CleanerDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
}

func startWebServer(app cmd.CompositionRoot, configs cmd.Config) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	app.CreateHTTPServer().RegisterRoutes(e, []byte(configs.JWTSecret))

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)))
}

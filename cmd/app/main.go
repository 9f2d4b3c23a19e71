package main

import (
	"fmt"
	"log/slog"
	"os"

	"trackgate/cmd"
	httpadapter "trackgate/internal/adapters/in/http"
	"trackgate/internal/adapters/out/postgres/eventrepo"
	"trackgate/internal/adapters/out/postgres/merchantrepo"
	"trackgate/internal/adapters/out/postgres/shipmentrepo"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := mustConnectDB(configs)
	mustMigrateDB(gormDB)
	slog.Info("database ready", "host", configs.DBHost, "name", configs.DBName)

	app := cmd.NewCompositionRoot(configs, gormDB)
	startWebServer(app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:   goDotEnvVariable("HTTP_PORT"),
		DBHost:     goDotEnvVariable("DB_HOST"),
		DBPort:     goDotEnvVariable("DB_PORT"),
		DBUser:     goDotEnvVariable("DB_USER"),
		DBPassword: goDotEnvVariable("DB_PASSWORD"),
		DBName:     goDotEnvVariable("DB_NAME"),
		DBSslMode:  goDotEnvVariable("DB_SSLMODE"),
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
	gormDB, err := gorm.Open(postgresdriver.Open(configs.PostgresDSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	return gormDB
}

func mustMigrateDB(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&merchantrepo.MerchantDTO{},
		&shipmentrepo.ShipmentDTO{},
		&eventrepo.ShipmentEventDTO{},
	)
	if err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}
}

func startWebServer(app cmd.CompositionRoot, port string) {
	addEventHandler, err := app.CreateAddTrackingEventCommandHandler()
	if err != nil {
		log.Fatalf("Error creating add tracking event handler: %v", err)
	}

	carrierEventHandler, err := app.CreateProcessCarrierEventCommandHandler()
	if err != nil {
		log.Fatalf("Error creating carrier event handler: %v", err)
	}

	server := httpadapter.NewServer(
		app.CreateCreateMerchantCommandHandler(),
		app.CreateCreateShipmentCommandHandler(),
		app.CreateUpdateShipmentStatusCommandHandler(),
		addEventHandler,
		carrierEventHandler,
		app.CreateGetShipmentQueryHandler(),
		app.CreateListShipmentsQueryHandler(),
		app.CreateListMerchantsQueryHandler(),
		app.CreateListShipmentEventsQueryHandler(),
		app.CreateCarrierRegistry(),
	)

	e := echo.New()
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	server.RegisterRoutes(e)

	slog.Info("http server starting", "port", port)
	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}

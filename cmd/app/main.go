package main

import (
	"fmt"
	"log/slog"
	"os"

	"dinein/cmd"
	httpadapter "dinein/internal/adapters/in/http"
	"dinein/internal/adapters/out/postgres/menurepo"
	"dinein/internal/adapters/out/postgres/orderrepo"
	"dinein/internal/adapters/out/postgres/productrepo"
	"dinein/internal/adapters/out/postgres/tablerepo"
	"dinein/internal/adapters/out/rabbitmq"
	"dinein/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustConnectDB(configs)
	mustMigrateDB(gormDB)

	eventPublisher, err := rabbitmq.NewOrderEventPublisher(configs.RabbitMQURL, logger)
	if err != nil {
		log.Fatalf("Failed to connect to RabbitMQ: %v", err)
	}
	defer eventPublisher.Close()

	app := cmd.NewCompositionRoot(configs, gormDB, eventPublisher, logger)

	jobManager := jobs.NewJobManager(app.CreateGetUncompletedOrdersQueryHandler(), logger)
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:    goDotEnvVariable("HTTP_PORT"),
		DBHost:      goDotEnvVariable("DB_HOST"),
		DBPort:      goDotEnvVariable("DB_PORT"),
		DBUser:      goDotEnvVariable("DB_USER"),
		DBPassword:  goDotEnvVariable("DB_PASSWORD"),
		DBName:      goDotEnvVariable("DB_NAME"),
		DBSslMode:   goDotEnvVariable("DB_SSLMODE"),
		RabbitMQURL: goDotEnvVariable("RABBITMQ_URL"),
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
		configs.DBHost,
		configs.DBPort,
		configs.DBUser,
		configs.DBPassword,
		configs.DBName,
		configs.DBSslMode,
	)

	gormDB, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return gormDB
}

func mustMigrateDB(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&productrepo.ProductDTO{},
		&menurepo.MenuGroupDTO{},
		&menurepo.MenuDTO{},
		&menurepo.MenuProductDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderLineItemDTO{},
		&tablerepo.OrderTableDTO{},
		&tablerepo.TableGroupDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()

	server := httpadapter.NewServer(
		app.CreateCreateMenuGroupCommandHandler(),
		app.CreateCreateProductCommandHandler(),
		app.CreateCreateMenuCommandHandler(),
		app.CreateCreateOrderCommandHandler(),
		app.CreateChangeOrderStatusCommandHandler(),
		app.CreateCreateOrderTableCommandHandler(),
		app.CreateChangeTableEmptyCommandHandler(),
		app.CreateChangeNumberOfGuestsCommandHandler(),
		app.CreateCreateTableGroupCommandHandler(),
		app.CreateUngroupTableCommandHandler(),
		app.CreateGetMenuGroupsQueryHandler(),
		app.CreateGetProductsQueryHandler(),
		app.CreateGetMenusQueryHandler(),
		app.CreateGetOrdersQueryHandler(),
		app.CreateGetOrderTablesQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}

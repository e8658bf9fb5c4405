package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"storefront/cmd"
	httpadapter "storefront/internal/adapters/in/http"
	"storefront/internal/adapters/out/postgres/customerrepo"
	"storefront/internal/adapters/out/postgres/orderrepo"
	"storefront/internal/adapters/out/postgres/productrepo"
	"storefront/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const defaultStaleOrderMaxAgeMinutes = 30

func main() {
	configs := getConfigs()

	gormDB := mustConnectDB(configs)
	mustMigrateDB(gormDB)

	root := cmd.NewCompositionRoot(configs, gormDB)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	jobManager := jobs.NewJobManager(
		root.CreateCancelStaleOrdersCommandHandler(),
		configs.StaleOrderMaxAge,
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&root, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:         goDotEnvVariable("HTTP_PORT"),
		DBHost:           goDotEnvVariable("DB_HOST"),
		DBPort:           goDotEnvVariable("DB_PORT"),
		DBUser:           goDotEnvVariable("DB_USER"),
		DBPassword:       goDotEnvVariable("DB_PASSWORD"),
		DBName:           goDotEnvVariable("DB_NAME"),
		DBSslMode:        goDotEnvVariable("DB_SSLMODE"),
		StaleOrderMaxAge: staleOrderMaxAge(),
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

func staleOrderMaxAge() time.Duration {
	raw := goDotEnvVariable("STALE_ORDER_MAX_AGE_MINUTES")
	if raw == "" {
		return defaultStaleOrderMaxAgeMinutes * time.Minute
	}
	minutes, err := strconv.Atoi(raw)
	if err != nil || minutes <= 0 {
		log.Fatalf("Invalid STALE_ORDER_MAX_AGE_MINUTES: %q", raw)
	}
	return time.Duration(minutes) * time.Minute
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	// TranslateError turns unique violations into gorm.ErrDuplicatedKey,
	// which the repositories rely on for conflict detection.
	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	return gormDB
}

func mustMigrateDB(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.ItemDTO{},
		&productrepo.ProductDTO{},
		&customerrepo.CustomerDTO{},
	)
	if err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}
}

func startWebServer(root *cmd.CompositionRoot, port string) {
	e := echo.New()

	server := httpadapter.NewServer(
		root.CreateCreateOrderCommandHandler(),
		root.CreateUpdateOrderCommandHandler(),
		root.CreateChangeOrderStatusCommandHandler(),
		root.CreateChangePaymentStatusCommandHandler(),
		root.CreateDeleteOrderCommandHandler(),
		root.CreateRestoreOrderCommandHandler(),
		root.CreateGetOrderQueryHandler(),
		root.CreateSearchOrdersQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}

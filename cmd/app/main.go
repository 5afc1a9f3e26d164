package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"bananex/cmd"
	"bananex/internal/adapters/out/postgres/orderrepo"
	"bananex/internal/adapters/out/postgres/recipientrepo"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := mustConnectDB(configs)

	app := cmd.NewCompositionRoot(
		configs,
		gormDB,
	)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	jobManager := app.CreateJobManager(logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

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
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword,
		configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Error connecting to the database: %v", err)
	}

	if err := gormDB.AutoMigrate(&recipientrepo.RecipientDTO{}, &orderrepo.OrderDTO{}); err != nil {
		log.Fatalf("Error migrating the database schema: %v", err)
	}
	return gormDB
}

func startWebServer(app cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	app.CreateHTTPServer().RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}

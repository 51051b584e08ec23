package main

import (
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"ordermanagement/cmd"
	_ "ordermanagement/docs"
	httpadapter "ordermanagement/internal/adapters/in/http"
	"ordermanagement/internal/adapters/out/postgres/orderrepo"
	"ordermanagement/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"github.com/lib/pq"
	echoSwagger "github.com/swaggo/echo-swagger"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

//	@title			Order Management Service API
//	@version		1.0
//	@description	RESTful API for managing e-commerce orders through their lifecycle.

func main() {
	configs := getConfigs()

	if err := ensureDatabase(configs); err != nil {
		log.Fatalf("Error preparing database: %v", err)
	}

	gormDB, err := connectDatabase(configs)
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	app := cmd.NewCompositionRoot(
		configs,
		gormDB,
	)
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

// ensureDatabase creates the service database when it does not exist yet.
// Uses database/sql with the pq driver against the maintenance database.
func ensureDatabase(configs cmd.Config) error {
	admin, err := sql.Open("postgres", configs.AdminDSN())
	if err != nil {
		return err
	}
	defer admin.Close()

	var exists bool
	err = admin.QueryRow(
		"SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = $1)",
		configs.DBName,
	).Scan(&exists)
	if err != nil {
		return err
	}

	if !exists {
		_, err = admin.Exec("CREATE DATABASE " + pq.QuoteIdentifier(configs.DBName))
	}
	return err
}

func connectDatabase(configs cmd.Config) (*gorm.DB, error) {
	gormDB, err := gorm.Open(postgresdriver.Open(configs.DSN()), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err = gormDB.AutoMigrate(&orderrepo.OrderDTO{}); err != nil {
		return nil, err
	}

	return gormDB, nil
}

func startWebServer(app cmd.CompositionRoot, port string) {
	e := echo.New()
	e.Use(httpadapter.RequestID())

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	server := httpadapter.NewServer(
		app.CreateCreateOrderCommandHandler(),
		app.CreateUpdateOrderCommandHandler(),
		app.CreateDeleteOrderCommandHandler(),
		app.CreateGetAllOrdersQueryHandler(),
		app.CreateGetOrderByIDQueryHandler(),
	)
	server.RegisterRoutes(e)

	backlogJob := jobs.NewPendingOrdersJob(app.CreateGetAllOrdersQueryHandler(), slog.Default())
	if err := backlogJob.Start(); err != nil {
		log.Fatalf("Error starting pending orders job: %v", err)
	}
	defer backlogJob.Stop()

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}

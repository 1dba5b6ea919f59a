package main

import (
	"fmt"
	"log/slog"
	"os"

	"catering/cmd"
	apihttp "catering/internal/adapters/in/http"
	"catering/internal/adapters/out/postgres/orderrepo"
	"catering/internal/adapters/out/postgres/schedulerepo"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	// .env is optional; in production the variables come from the runtime
	_ = godotenv.Load(".env")

	var config cmd.Config
	if err := env.Parse(&config); err != nil {
		log.Fatalf("failed to parse configuration: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	gormDB, err := gorm.Open(postgresdriver.Open(config.DatabaseDSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err = gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.LineItemDTO{},
		&orderrepo.PaymentDTO{},
		&schedulerepo.ScheduleDTO{},
	); err != nil {
		log.Fatalf("failed to migrate database schema: %v", err)
	}

	root := cmd.NewCompositionRoot(config, gormDB, logger)

	root.Dispatcher().Start()
	defer root.Dispatcher().Stop()

	jobManager := root.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("failed to start scheduled jobs: %v", err)
	}
	defer jobManager.StopAll()

	server := apihttp.NewServer(
		root.CreateCreateOrderCommandHandler(),
		root.CreateRecordPaymentCommandHandler(),
		root.CreateChangeOrderStatusCommandHandler(),
		root.CreateAssignScheduleCommandHandler(),
		root.CreateGetOrderQueryHandler(),
		root.CreateGetOrdersAwaitingPaymentQueryHandler(),
	)

	e := echo.New()
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", config.HTTPPort)))
}

package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"dispatch/cmd"
	httpin "dispatch/internal/adapters/in/http"
	"dispatch/internal/adapters/out/mq"
	"dispatch/internal/adapters/out/postgres/archiverepo"
	"dispatch/internal/adapters/out/postgres/availablerepo"
	"dispatch/internal/adapters/out/postgres/claimrepo"
	"dispatch/internal/adapters/out/postgres/completedrepo"
	"dispatch/internal/adapters/out/postgres/courierrepo"
	"dispatch/internal/adapters/out/postgres/payoutrepo"
	"dispatch/internal/core/ports"
	_ "dispatch/internal/docs"
	"dispatch/internal/jobs"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustConnectDB(configs)
	mustMigrate(gormDB)

	notifier := createNotifier(configs, logger)

	app := cmd.NewCompositionRoot(configs, gormDB, notifier, logger)

	jobManager := jobs.NewJobManager(app.CreateReconcileOrdersCommandHandler(), logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	go handleShutdown(jobManager, logger)

	startWebServer(&app, configs.HTTPPort, logger)
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
		RabbitMQURL:      goDotEnvVariable("RABBITMQ_URL"),
		RabbitMQExchange: goDotEnvVariable("RABBITMQ_EXCHANGE"),
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
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword, configs.DBName, configs.DBSslMode)

	// TranslateError turns unique violations into gorm.ErrDuplicatedKey,
	// which claim arbitration depends on.
	gormDB, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	return gormDB
}

func mustMigrate(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&availablerepo.OrderDTO{},
		&claimrepo.ClaimedDeliveryDTO{},
		&completedrepo.CompletedOrderDTO{},
		&courierrepo.CourierDTO{},
		&payoutrepo.PendingPayoutDTO{},
		&archiverepo.ArchivedOrderDTO{},
	)
	if err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}
}

func createNotifier(configs cmd.Config, logger *slog.Logger) ports.Notifier {
	if configs.RabbitMQURL == "" {
		return mq.NewLogNotifier(logger)
	}

	notifier, err := mq.NewRabbitNotifier(configs.RabbitMQURL, configs.RabbitMQExchange)
	if err != nil {
		log.Fatalf("Error connecting to RabbitMQ: %v", err)
	}
	return notifier
}

func handleShutdown(jobManager *jobs.JobManager, logger *slog.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down")
	jobManager.StopAll()
	os.Exit(0)
}

func startWebServer(app *cmd.CompositionRoot, port string, logger *slog.Logger) {
	e := echo.New()
	e.Use(middleware.Recover())

	server := httpin.NewServer(
		app.CreateAddAvailableOrderCommandHandler(),
		app.CreateClaimOrderCommandHandler(),
		app.CreateRejectOrderCommandHandler(),
		app.CreateMarkPickedUpCommandHandler(),
		app.CreateCompleteDeliveryCommandHandler(),
		app.CreateSetCourierStatusCommandHandler(),
		app.CreateSaveNotifyTokenCommandHandler(),
		app.CreateGetAvailableOrdersQueryHandler(),
		app.CreateGetActiveDeliveriesQueryHandler(),
		app.CreateGetCompletedOrdersQueryHandler(),
		app.CreateGetPendingPayoutQueryHandler(),
		logger,
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}

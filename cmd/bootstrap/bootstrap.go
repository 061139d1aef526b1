package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-vaccination-clinic/config"
	deliveryHttp "go-vaccination-clinic/internal/delivery/http"
	"go-vaccination-clinic/internal/delivery/http/handler"
	"go-vaccination-clinic/internal/delivery/http/middleware"
	"go-vaccination-clinic/internal/infrastructure/cache"
	"go-vaccination-clinic/internal/infrastructure/database"
	"go-vaccination-clinic/internal/repository"
	"go-vaccination-clinic/internal/service"
	"go-vaccination-clinic/internal/usecase"
	"go-vaccination-clinic/pkg/jwt"
	"go-vaccination-clinic/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Setup logger
	setupLogger()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db
	logrus.Info("Database connected successfully")

	// Apply pending schema migrations
	if err := database.RunMigrations(db, cfg.DB); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient
	logrus.Info("Redis connected successfully")

	// Initialize all layers
	server, err := initializeServer(cfg, db, redisClient)
	if err != nil {
		return nil, err
	}
	app.Server = server

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) (*http.Server, error) {
	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWT)

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize file services
	uploadService, err := service.NewUploadService(cfg.Storage.UploadsDir)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize upload service: %w", err)
	}
	certService, err := service.NewCertificateService(cfg.Storage.CertificatesDir)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize certificate service: %w", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository()
	patientRepo := repository.NewPatientRepository()
	vaccineRepo := repository.NewVaccineRepository()
	centerRepo := repository.NewCenterRepository()
	inventoryRepo := repository.NewInventoryRepository()
	appointmentRepo := repository.NewAppointmentRepository()
	recordRepo := repository.NewVaccinationRecordRepository()
	feedbackRepo := repository.NewFeedbackRepository()
	notificationRepo := repository.NewNotificationRepository()

	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize usecases
	tokenStore := cache.NewRedisTokenStore(redisClient, jwtService.GetAccessExpiry(), jwtService.GetRefreshExpiry())
	authUsecase := usecase.NewAuthUsecase(db, log, userRepo, patientRepo, jwtService, tokenStore)
	patientUsecase := usecase.NewPatientUsecase(db, log, patientRepo)
	vaccineUsecase := usecase.NewVaccineUsecase(db, log, vaccineRepo)
	centerUsecase := usecase.NewCenterUsecase(db, log, centerRepo)
	inventoryUsecase := usecase.NewInventoryUsecase(db, log, inventoryRepo, vaccineRepo)
	appointmentUsecase := usecase.NewAppointmentUsecase(db, log, appointmentRepo, patientRepo, inventoryRepo, recordRepo, userRepo)
	recordUsecase := usecase.NewVaccinationRecordUsecase(db, log, recordRepo, patientRepo, certService)
	feedbackUsecase := usecase.NewFeedbackUsecase(db, log, feedbackRepo)
	notificationUsecase := usecase.NewNotificationUsecase(db, log, notificationRepo, userRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUsecase, customValidator, jwtService)
	patientHandler := handler.NewPatientHandler(patientUsecase, uploadService, customValidator)
	vaccineHandler := handler.NewVaccineHandler(vaccineUsecase, customValidator)
	centerHandler := handler.NewCenterHandler(centerUsecase, customValidator)
	inventoryHandler := handler.NewInventoryHandler(inventoryUsecase, customValidator)
	appointmentHandler := handler.NewAppointmentHandler(appointmentUsecase, customValidator)
	recordHandler := handler.NewVaccinationRecordHandler(recordUsecase, customValidator)
	feedbackHandler := handler.NewFeedbackHandler(feedbackUsecase, uploadService, customValidator)
	notificationHandler := handler.NewNotificationHandler(notificationUsecase, customValidator)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, redisClient)
	corsMiddleware := middleware.NewCORSMiddleware()

	// Initialize router
	router := deliveryHttp.NewRouter(
		authHandler,
		patientHandler,
		vaccineHandler,
		centerHandler,
		inventoryHandler,
		appointmentHandler,
		recordHandler,
		feedbackHandler,
		notificationHandler,
		authMiddleware,
		corsMiddleware,
	)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:    serverAddr,
		Handler: httpRouter,
	}, nil
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	// Close database connection
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	// Close Redis connection
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}

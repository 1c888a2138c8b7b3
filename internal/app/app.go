package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"intervue_backend/database"
	"intervue_backend/internal/ai"
	"intervue_backend/internal/config"
	"intervue_backend/internal/email"
	"intervue_backend/internal/handlers"
	"intervue_backend/internal/logger"
	"intervue_backend/internal/middleware"
	"intervue_backend/internal/repositories"
	"intervue_backend/internal/routes"
	"intervue_backend/internal/services"
	"intervue_backend/internal/validator"
	"intervue_backend/internal/workers"
	"intervue_backend/ws"
)

func Run() {
	_ = godotenv.Load()

	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	gormDB, err := database.ConnectGorm()
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := database.AutoMigrate(); err != nil {
		logger.Fatal("Migration failed", "error", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	hub := ws.NewHub()
	go hub.Run(ctx)

	serviceContainer := InitializeServices(cfg, gormDB, hub)
	ginRouter := SetupRouter(serviceContainer, hub)

	startWorkers(ctx, cfg, gormDB, serviceContainer)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// InitializeServices builds the repository and service graph. Exported so
// integration tests can assemble the same stack against a test database.
func InitializeServices(cfg *config.Config, gormDB *gorm.DB, notifier services.RefreshNotifier) *services.ServiceContainer {
	userRepo := repositories.NewUserRepository(gormDB)
	interviewRepo := repositories.NewInterviewRepository(gormDB)
	ratingRepo := repositories.NewRatingRepository(gormDB)
	reminderRepo := repositories.NewReminderRepository(gormDB)

	emailProvider := buildEmailProvider(cfg)
	generator := buildGenerator(cfg)

	reminderCfg := services.ReminderConfig{
		DayTolerance:  time.Duration(cfg.Workers.DayToleranceMinutes) * time.Minute,
		HourTolerance: time.Duration(cfg.Workers.HourToleranceMinutes) * time.Minute,
		PurgeAfter:    time.Duration(cfg.Workers.PurgeAfterHours) * time.Hour,
	}

	return &services.ServiceContainer{
		AuthService:      services.NewAuthService(userRepo),
		InterviewService: services.NewInterviewService(interviewRepo, ratingRepo, notifier),
		RatingService:    services.NewRatingService(ratingRepo, interviewRepo),
		ReminderService:  services.NewReminderService(interviewRepo, reminderRepo, emailProvider, reminderCfg),
		QuestionService:  services.NewQuestionService(generator),
		AnalyticsService: services.NewAnalyticsService(interviewRepo, ratingRepo),
		ListingService:   services.NewListingService(),
	}
}

// SetupRouter assembles the gin engine with middleware and all routes.
func SetupRouter(serviceContainer *services.ServiceContainer, hub *ws.Hub) *gin.Engine {
	appHandlers := initializeHandlers(serviceContainer)
	wsHandler := ws.NewHandler(hub)

	ginRouter := initializeGinRouter()
	routes.RegisterRoutes(ginRouter, appHandlers, wsHandler)

	return ginRouter
}

func initializeHandlers(serviceContainer *services.ServiceContainer) *handlers.AppHandlers {
	base := handlers.NewBaseHandler(validator.New())

	return &handlers.AppHandlers{
		AuthHandler:      handlers.NewAuthHandler(base, serviceContainer.AuthService),
		InterviewHandler: handlers.NewInterviewHandler(base, serviceContainer.InterviewService),
		RatingHandler:    handlers.NewRatingHandler(base, serviceContainer.RatingService),
		QuestionHandler:  handlers.NewQuestionHandler(base, serviceContainer.QuestionService),
		AnalyticsHandler: handlers.NewAnalyticsHandler(base, serviceContainer.AnalyticsService),
		ListingHandler:   handlers.NewListingHandler(base, serviceContainer.ListingService),
		InternalHandler:  handlers.NewInternalHandler(base, serviceContainer.ReminderService),
	}
}

func initializeGinRouter() *gin.Engine {
	if config.GetConfig().Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ginRouter := gin.New()
	ginRouter.Use(gin.Recovery())
	ginRouter.Use(middleware.RequestIDMiddleware())
	ginRouter.Use(middleware.LoggingMiddleware())
	ginRouter.Use(middleware.CORSMiddleware())

	ginRouter.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	return ginRouter
}

func startWorkers(ctx context.Context, cfg *config.Config, gormDB *gorm.DB, serviceContainer *services.ServiceContainer) {
	interviewRepo := repositories.NewInterviewRepository(gormDB)

	sweep := workers.NewSweepWorker(interviewRepo, time.Duration(cfg.Workers.SweepIntervalMinutes)*time.Minute)
	sweep.Start(ctx)

	reminder := workers.NewReminderWorker(serviceContainer.ReminderService, time.Duration(cfg.Workers.ReminderIntervalMinutes)*time.Minute)
	reminder.Start(ctx)

	logger.Info("Background workers started",
		"sweep_interval_min", cfg.Workers.SweepIntervalMinutes,
		"reminder_interval_min", cfg.Workers.ReminderIntervalMinutes,
	)
}

func buildEmailProvider(cfg *config.Config) email.Provider {
	templates, err := email.NewTemplateManager()
	if err != nil {
		logger.Fatal("Failed to load email templates", "error", err)
	}

	smtpCfg := email.DefaultConfig()
	smtpCfg.Host = cfg.Email.SMTPHost
	smtpCfg.Port = cfg.Email.SMTPPort
	smtpCfg.Username = cfg.Email.SMTPUsername
	smtpCfg.Password = cfg.Email.SMTPPassword
	smtpCfg.FromEmail = cfg.Email.FromEmail
	smtpCfg.FromName = cfg.Email.FromName

	return email.NewSMTPProvider(smtpCfg, templates)
}

// buildGenerator returns nil when no API key is configured; question
// generation then serves the fallback set only.
func buildGenerator(cfg *config.Config) ai.Generator {
	if cfg.AI.GeminiAPIKey == "" {
		logger.Warn("GEMINI_API_KEY not set, question generation uses fallback only")
		return nil
	}

	client, err := ai.NewClient(context.Background(), cfg.AI.GeminiAPIKey, cfg.AI.Model)
	if err != nil {
		logger.WithError(err).Warn("Gemini client init failed, question generation uses fallback only")
		return nil
	}

	logger.Info("Gemini client initialized", "model", cfg.AI.Model)
	return client
}

package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"

	discoveryAdapter "github.com/stackhunt/stackhunt/adapters/discovery"
	"github.com/stackhunt/stackhunt/adapters/event"
	httpAdapter "github.com/stackhunt/stackhunt/adapters/http"
	"github.com/stackhunt/stackhunt/adapters/persistence"
	dashboardUC "github.com/stackhunt/stackhunt/internal/application/usecase/dashboard"
	prefsUC "github.com/stackhunt/stackhunt/internal/application/usecase/preferences"
	techUC "github.com/stackhunt/stackhunt/internal/application/usecase/technology"
	"github.com/stackhunt/stackhunt/internal/config"
	"github.com/stackhunt/stackhunt/pkg/auth"
	"github.com/stackhunt/stackhunt/pkg/logger"
	"github.com/stackhunt/stackhunt/pkg/tracing"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)
	appLogger.Info("Start StackHunt API Server...")

	// Tracing is optional; only wired when a collector endpoint is set.
	if cfg.Tracing.OTLPEndpoint != "" {
		tp, err := tracing.NewTracerProvider(cfg, appLogger, "stackhunt-api")
		if err != nil {
			appLogger.Fatal("cannot init tracing", err)
		}
		defer tp.Shutdown(context.Background())
	}

	// Initialize dependencies
	dbPool, err := persistence.NewPostgresPool(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("cannot connect Postgres", err)
	}
	defer dbPool.Close()

	redisClient, err := persistence.NewRedisClient(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("cannot connect Redis", err)
	}
	defer redisClient.Close()

	// Selection events are best-effort; the server still runs without a
	// broker.
	var selectionEvents techUC.SelectionEventPublisher
	var kafkaClient *event.KafkaProducerClient
	if len(cfg.Kafka.Brokers) > 0 {
		kafkaClient, err = event.NewKafkaProducerClient(cfg, appLogger)
		if err != nil {
			appLogger.Fatal("cannot init Kafka", err)
		}
		defer kafkaClient.Close()
		selectionEvents = kafkaClient
	} else {
		appLogger.Warn("Kafka brokers not configured, selection events disabled")
	}

	// Repositories
	techRepo := persistence.NewPostgresTechnologyRepo(dbPool, appLogger)
	userTechRepo := persistence.NewPostgresUserTechnologyRepo(dbPool, appLogger)
	prefsRepo := persistence.NewPostgresPreferencesRepo(dbPool, appLogger)

	// External collaborators
	discoveryProvider := discoveryAdapter.NewStubProvider(redisClient, appLogger)

	// Services
	jwtSvc := auth.NewJWTService(cfg.Auth.JWTSecret, cfg.Auth.TokenLifespan)

	// Use Cases
	getDashboardUseCase := dashboardUC.NewGetDashboardUseCase(prefsRepo, userTechRepo, discoveryProvider, appLogger)
	listTechnologiesUseCase := techUC.NewListTechnologiesUseCase(techRepo, userTechRepo, appLogger)
	listUserTechnologiesUseCase := techUC.NewListUserTechnologiesUseCase(userTechRepo)
	selectTechnologiesUseCase := techUC.NewSelectTechnologiesUseCase(
		techRepo, userTechRepo, selectionEvents, cfg.Selection.MaxSelections, appLogger)
	completeOnboardingUseCase := prefsUC.NewCompleteOnboardingUseCase(prefsRepo)

	// HTTP Handlers
	dashboardHandler := httpAdapter.NewDashboardHandler(getDashboardUseCase, appLogger)
	technologyHandler := httpAdapter.NewTechnologyHandler(listTechnologiesUseCase, appLogger)
	userTechnologyHandler := httpAdapter.NewUserTechnologyHandler(
		listUserTechnologiesUseCase, selectTechnologiesUseCase, appLogger)
	discoveryHandler := httpAdapter.NewDiscoveryHandler(discoveryProvider, appLogger)
	preferencesHandler := httpAdapter.NewPreferencesHandler(completeOnboardingUseCase, appLogger)

	// Middleware
	authMiddleware := httpAdapter.AuthMiddleware(jwtSvc)
	errorMiddleware := httpAdapter.ErrorMiddleware(appLogger)

	// Setup Gin router
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	router.Use(errorMiddleware)

	api := router.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "UP"}) })

		private := api.Group("/")
		private.Use(authMiddleware)
		{
			private.GET("/dashboard", dashboardHandler.GetDashboard)
			private.GET("/dashboard/layout", dashboardHandler.GetDashboardLayout)
			private.GET("/technologies", technologyHandler.ListTechnologies)
			private.GET("/user-technologies", userTechnologyHandler.ListUserTechnologies)
			private.POST("/user-technologies", userTechnologyHandler.UpdateUserTechnologies)
			private.POST("/discovery/trigger", discoveryHandler.TriggerDiscovery)
			private.POST("/preferences/complete-onboarding", preferencesHandler.CompleteOnboarding)
		}
	}

	appLogger.Info("Server running on port " + cfg.App.Port)
	if err := router.Run(":" + cfg.App.Port); err != nil {
		appLogger.Fatal("Cannot run server", err)
	}
}

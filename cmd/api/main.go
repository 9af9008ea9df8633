package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/y2-world/future-budget-simulator/internal/calendar"
	"github.com/y2-world/future-budget-simulator/internal/config"
	"github.com/y2-world/future-budget-simulator/internal/database"
	"github.com/y2-world/future-budget-simulator/internal/handlers"
	"github.com/y2-world/future-budget-simulator/internal/logger"
	"github.com/y2-world/future-budget-simulator/internal/middleware"
	"github.com/y2-world/future-budget-simulator/internal/services"
	"github.com/y2-world/future-budget-simulator/internal/validator"

	_ "github.com/y2-world/future-budget-simulator/internal/docs" // Import swagger docs
)

// @title           Future Budget Simulator API
// @version         1.0
// @description     Household cashflow projection: monthly plans, credit-card billing rules, and a business-day-aware transaction ledger.

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize database configuration
	dbConfig, err := database.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}

	// Create database manager
	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}

	// Run migrations
	if err := dbManager.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	// Register custom request validators
	validator.Register()

	// Initialize services
	db := dbManager.DB()
	resolver := calendar.NewResolver(calendar.JapaneseHolidays{})
	configService := services.NewConfigService(db)
	planService := services.NewPlanService(db, configService)
	cardService := services.NewCardService(db)
	estimateService := services.NewEstimateService(db, cardService)
	chargeService := services.NewChargeService(db)
	simulationService := services.NewSimulationService(db, configService, estimateService, chargeService, resolver)
	eventService := services.NewEventService(db)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler()
	configHandler := handlers.NewConfigHandler(configService)
	planHandler := handlers.NewPlanHandler(planService)
	cardHandler := handlers.NewCardHandler(cardService)
	estimateHandler := handlers.NewEstimateHandler(estimateService)
	chargeHandler := handlers.NewChargeHandler(chargeService)
	simulationHandler := handlers.NewSimulationHandler(simulationService)
	eventHandler := handlers.NewEventHandler(eventService)

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 group
	v1 := router.Group("/api/v1")

	// Public routes
	auth := v1.Group("/auth")
	auth.POST("/login", authHandler.Login)

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware())

	// Configuration routes
	configs := protected.Group("/configs")
	configs.POST("", configHandler.CreateConfig)
	configs.GET("", configHandler.GetConfigs)
	configs.GET("/active", configHandler.GetActiveConfig)
	configs.PUT("/active/balance", configHandler.UpdateBalance)
	configs.PUT("/:id", configHandler.UpdateConfig)
	configs.POST("/:id/activate", configHandler.ActivateConfig)

	// Monthly plan routes
	plans := protected.Group("/plans")
	plans.POST("", planHandler.CreatePlan)
	plans.GET("", planHandler.GetPlans)
	plans.GET("/:id", planHandler.GetPlan)
	plans.GET("/month/:month", planHandler.GetPlanByMonth)
	plans.PUT("/:id", planHandler.UpdatePlan)
	plans.DELETE("/:id", planHandler.DeletePlan)
	plans.GET("/:id/summary", planHandler.GetPlanSummary)

	// Card routes
	cards := protected.Group("/cards")
	cards.POST("", cardHandler.CreateCard)
	cards.GET("", cardHandler.GetCards)
	cards.GET("/:id", cardHandler.GetCard)
	cards.PUT("/:id", cardHandler.UpdateCard)
	cards.DELETE("/:id", cardHandler.DeleteCard)

	// Credit estimate routes
	estimates := protected.Group("/estimates")
	estimates.POST("", estimateHandler.CreateEstimate)
	estimates.GET("", estimateHandler.GetEstimates)
	estimates.PUT("/:id", estimateHandler.UpdateEstimate)
	estimates.DELETE("/:id", estimateHandler.DeleteEstimate)
	estimates.GET("/summary/:month", estimateHandler.GetMonthlySummary)

	// Recurring charge routes
	charges := protected.Group("/charges")
	charges.POST("", chargeHandler.CreateCharge)
	charges.GET("", chargeHandler.GetCharges)
	charges.PUT("/:id", chargeHandler.UpdateCharge)
	charges.DELETE("/:id", chargeHandler.DeleteCharge)
	charges.POST("/:id/overrides", chargeHandler.CreateOverride)
	charges.DELETE("/:id/overrides/:month", chargeHandler.DeleteOverride)

	// Simulation and event routes
	protected.POST("/simulation/run", simulationHandler.RunSimulation)
	events := protected.Group("/events")
	events.GET("", eventHandler.GetEvents)
	events.GET("/export", eventHandler.ExportEvents)

	log.Infof("Starting budget simulator server on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}

package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"sobi/internal/config"
	"sobi/internal/database"
	"sobi/internal/handlers"
	"sobi/internal/logger"
	"sobi/internal/middleware"
	"sobi/internal/ml"
	"sobi/internal/services"
	"sobi/internal/validator"

	_ "sobi/internal/docs" // Import swagger docs
)

// @title           Sobi API
// @version         1.0
// @description     Sobi aggregates personal spending records into budgets, trends, and AI insights.

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

	// Create database manager
	dbManager, err := database.NewManager(appConfig)
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
	mlClient := ml.NewClient(appConfig.MLServiceURL, &http.Client{Timeout: appConfig.MLTimeout})
	transactionService := services.NewTransactionService(db)
	budgetService := services.NewBudgetService(db)
	analyticsService := services.NewAnalyticsService(db)
	insightService := services.NewInsightService(db, mlClient)

	// Initialize handlers
	transactionHandler := handlers.NewTransactionHandler(transactionService)
	budgetHandler := handlers.NewBudgetHandler(budgetService)
	dashboardHandler := handlers.NewDashboardHandler(analyticsService)
	insightHandler := handlers.NewInsightHandler(insightService)

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint. The insight service being down degrades the
	// report but does not fail it; the API itself still serves.
	router.GET("/api/health", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		insightStatus := "ok"
		if err := mlClient.Health(ctx); err != nil {
			insightStatus = "unreachable"
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "insight_service": insightStatus})
	})

	// API v1 group, everything requires an externally issued token
	v1 := router.Group("/api/v1")
	v1.Use(middleware.AuthMiddleware())

	// Transaction routes
	transactions := v1.Group("/transactions")
	transactions.POST("", transactionHandler.CreateTransaction)
	transactions.GET("", transactionHandler.GetTransactions)
	transactions.GET("/search", transactionHandler.SearchTransactions)
	transactions.GET("/:id", transactionHandler.GetTransaction)
	transactions.PUT("/:id", transactionHandler.UpdateTransaction)
	transactions.DELETE("/:id", transactionHandler.DeleteTransaction)

	// Budget routes
	budgets := v1.Group("/budgets")
	budgets.PUT("", budgetHandler.SetBudget)
	budgets.GET("", budgetHandler.GetBudgets)
	budgets.DELETE("/:id", budgetHandler.DeleteBudget)

	// Dashboard routes
	dashboard := v1.Group("/dashboard")
	dashboard.GET("/trend", dashboardHandler.GetSpendingTrend)
	dashboard.GET("/categories", dashboardHandler.GetCategoryBreakdown)
	dashboard.GET("/budgets", dashboardHandler.GetBudgetOverview)
	dashboard.GET("/summary", dashboardHandler.GetMonthlySummary)

	// Insight routes
	insights := v1.Group("/insights")
	insights.POST("/generate", insightHandler.GenerateInsights)
	insights.GET("", insightHandler.GetInsights)

	log.Infof("Starting Sobi backend server on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}

package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"moneta/internal/config"
	"moneta/internal/database"
	"moneta/internal/handlers"
	"moneta/internal/logger"
	"moneta/internal/middleware"
	"moneta/internal/oracle"
	"moneta/internal/recurrence"
	"moneta/internal/services"
	"moneta/internal/validator"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "moneta/internal/docs" // Import swagger docs
)

// @title           Moneta API
// @version         1.0
// @description     Moneta is a personal finance tracker with recurring transaction automation, savings goals, budgets, and AI-powered insights.
// @termsOfService  http://swagger.io/terms/

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

	// Register custom request validators
	validator.Register()

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

	// The Gemini oracle is optional: without an API key the AI endpoints
	// return a clean error and everything else works.
	var aiOracle oracle.Oracle
	if appConfig.GeminiAPIKey != "" {
		gemini, err := oracle.NewGemini(context.Background(), appConfig.GeminiAPIKey, appConfig.GeminiModel)
		if err != nil {
			return fmt.Errorf("failed to create Gemini client: %w", err)
		}
		aiOracle = gemini
		log.Infof("Gemini oracle enabled with model %s", appConfig.GeminiModel)
	} else {
		log.Warn("GEMINI_API_KEY not set, AI features disabled")
	}

	// Initialize services
	db := dbManager.DB()
	userService := services.NewUserService(db)
	categoryService := services.NewCategoryService(db)
	gamificationService := services.NewGamificationService(db)
	transactionService := services.NewTransactionService(db, categoryService, gamificationService)
	recurringService := services.NewRecurringService(db, categoryService)
	materializerService := services.NewMaterializerService(db, recurrence.SystemClock{})
	goalService := services.NewGoalService(db, transactionService, categoryService, gamificationService, aiOracle, recurrence.SystemClock{})
	budgetService := services.NewBudgetService(db, categoryService)
	reportService := services.NewReportService(db)
	insightService := services.NewInsightService(db, aiOracle)
	auditService := services.NewAuditService(db)

	// One engine run per login session
	guard := recurrence.NewSessionGuard()

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userService, materializerService, guard)
	transactionHandler := handlers.NewTransactionHandler(transactionService, auditService)
	categoryHandler := handlers.NewCategoryHandler(categoryService, auditService)
	recurringHandler := handlers.NewRecurringHandler(recurringService, auditService)
	goalHandler := handlers.NewGoalHandler(goalService, auditService)
	budgetHandler := handlers.NewBudgetHandler(budgetService, auditService)
	reportHandler := handlers.NewReportHandler(reportService)
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

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 group
	v1 := router.Group("/api/v1")

	// Public routes
	auth := v1.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/refresh", authHandler.Refresh)

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware())

	protected.POST("/auth/logout", authHandler.Logout)

	// User profile
	protected.GET("/profile", authHandler.GetProfile)
	protected.POST("/profile/premium", authHandler.UpgradePremium)

	// Transaction routes
	transactions := protected.Group("/transactions")
	transactions.POST("", transactionHandler.CreateTransaction)
	transactions.GET("", transactionHandler.GetUserTransactions)
	transactions.GET("/balance", transactionHandler.GetBalance)
	transactions.GET("/:id", transactionHandler.GetTransactionByID)
	transactions.PUT("/:id", transactionHandler.UpdateTransaction)
	transactions.DELETE("/:id", transactionHandler.DeleteTransaction)

	// Category routes
	categories := protected.Group("/categories")
	categories.POST("", categoryHandler.CreateCategory)
	categories.GET("", categoryHandler.GetUserCategories)
	categories.GET("/:id", categoryHandler.GetCategoryByID)
	categories.PUT("/:id", categoryHandler.RenameCategory)
	categories.DELETE("/:id", categoryHandler.DeleteCategory)

	// Recurring schedule routes
	recurring := protected.Group("/recurring")
	recurring.POST("", recurringHandler.CreateSchedule)
	recurring.GET("", recurringHandler.GetUserSchedules)
	recurring.GET("/:id", recurringHandler.GetScheduleByID)
	recurring.PUT("/:id", recurringHandler.UpdateSchedule)
	recurring.POST("/:id/activate", recurringHandler.ActivateSchedule)
	recurring.POST("/:id/deactivate", recurringHandler.DeactivateSchedule)
	recurring.DELETE("/:id", recurringHandler.DeleteSchedule)

	// Goal routes
	goals := protected.Group("/goals")
	goals.POST("", goalHandler.CreateGoal)
	goals.GET("", goalHandler.GetUserGoals)
	goals.GET("/suggest", goalHandler.SuggestGoals)
	goals.GET("/:id", goalHandler.GetGoalByID)
	goals.POST("/:id/fund", goalHandler.FundGoal)
	goals.POST("/:id/plan", goalHandler.GenerateBudgetPlan)
	goals.DELETE("/:id", goalHandler.DeleteGoal)

	// Budget routes
	budgets := protected.Group("/budgets")
	budgets.POST("", budgetHandler.CreateBudget)
	budgets.GET("", budgetHandler.GetUserBudgets)
	budgets.GET("/:id", budgetHandler.GetBudgetByID)
	budgets.PUT("/:id", budgetHandler.UpdateBudget)
	budgets.DELETE("/:id", budgetHandler.DeleteBudget)
	budgets.GET("/:id/progress", budgetHandler.GetBudgetProgress)

	// Report routes
	reports := protected.Group("/reports")
	reports.GET("/summary", reportHandler.GetSummary)
	reports.GET("/breakdown", reportHandler.GetCategoryBreakdown)

	// Insight routes
	insights := protected.Group("/insights")
	insights.POST("/categorize", insightHandler.CategorizeTransaction)
	insights.POST("/receipt", insightHandler.ScanReceipt)

	log.Infof("Starting Moneta backend server on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}

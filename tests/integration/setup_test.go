package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"moneta/internal/handlers"
	"moneta/internal/logger"
	"moneta/internal/middleware"
	"moneta/internal/models"
	"moneta/internal/recurrence"
	"moneta/internal/services"
	"moneta/internal/validator"
)

// testApp holds the full application stack for integration tests.
type testApp struct {
	DB     *gorm.DB
	Router *gin.Engine
}

// dbCounter ensures each test gets a unique in-memory database.
var dbCounter atomic.Int64

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
}

// setupIsolatedDB creates an isolated in-memory SQLite database for a single test.
func setupIsolatedDB(t *testing.T) *gorm.DB {
	t.Helper()

	n := dbCounter.Add(1)
	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", n)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	allModels := []interface{}{
		&models.User{},
		&models.Category{},
		&models.Transaction{},
		&models.RecurringTransaction{},
		&models.RecurrenceCheckpoint{},
		&models.Goal{},
		&models.Budget{},
		&models.AuditLog{},
	}
	if err := db.AutoMigrate(allModels...); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

// setupApp creates a full application stack backed by an isolated in-memory SQLite.
func setupApp(t *testing.T) *testApp {
	t.Helper()

	db := setupIsolatedDB(t)

	// Services
	userService := services.NewUserService(db)
	categoryService := services.NewCategoryService(db)
	gamificationService := services.NewGamificationService(db)
	transactionService := services.NewTransactionService(db, categoryService, gamificationService)
	recurringService := services.NewRecurringService(db, categoryService)
	materializerService := services.NewMaterializerService(db, recurrence.SystemClock{})
	goalService := services.NewGoalService(db, transactionService, categoryService, gamificationService, nil, recurrence.SystemClock{})
	budgetService := services.NewBudgetService(db, categoryService)
	reportService := services.NewReportService(db)
	insightService := services.NewInsightService(db, nil)
	auditService := services.NewAuditService(db)

	guard := recurrence.NewSessionGuard()

	// Handlers
	authHandler := handlers.NewAuthHandler(userService, materializerService, guard)
	transactionHandler := handlers.NewTransactionHandler(transactionService, auditService)
	categoryHandler := handlers.NewCategoryHandler(categoryService, auditService)
	recurringHandler := handlers.NewRecurringHandler(recurringService, auditService)
	goalHandler := handlers.NewGoalHandler(goalService, auditService)
	budgetHandler := handlers.NewBudgetHandler(budgetService, auditService)
	reportHandler := handlers.NewReportHandler(reportService)
	insightHandler := handlers.NewInsightHandler(insightService)

	// Router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.ErrorHandler())

	v1 := router.Group("/api/v1")

	// Public auth routes
	auth := v1.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/refresh", authHandler.Refresh)

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware())

	protected.POST("/auth/logout", authHandler.Logout)
	protected.GET("/profile", authHandler.GetProfile)
	protected.POST("/profile/premium", authHandler.UpgradePremium)

	transactions := protected.Group("/transactions")
	transactions.POST("", transactionHandler.CreateTransaction)
	transactions.GET("", transactionHandler.GetUserTransactions)
	transactions.GET("/balance", transactionHandler.GetBalance)
	transactions.GET("/:id", transactionHandler.GetTransactionByID)
	transactions.PUT("/:id", transactionHandler.UpdateTransaction)
	transactions.DELETE("/:id", transactionHandler.DeleteTransaction)

	categories := protected.Group("/categories")
	categories.POST("", categoryHandler.CreateCategory)
	categories.GET("", categoryHandler.GetUserCategories)
	categories.GET("/:id", categoryHandler.GetCategoryByID)
	categories.PUT("/:id", categoryHandler.RenameCategory)
	categories.DELETE("/:id", categoryHandler.DeleteCategory)

	recurring := protected.Group("/recurring")
	recurring.POST("", recurringHandler.CreateSchedule)
	recurring.GET("", recurringHandler.GetUserSchedules)
	recurring.GET("/:id", recurringHandler.GetScheduleByID)
	recurring.PUT("/:id", recurringHandler.UpdateSchedule)
	recurring.POST("/:id/activate", recurringHandler.ActivateSchedule)
	recurring.POST("/:id/deactivate", recurringHandler.DeactivateSchedule)
	recurring.DELETE("/:id", recurringHandler.DeleteSchedule)

	goals := protected.Group("/goals")
	goals.POST("", goalHandler.CreateGoal)
	goals.GET("", goalHandler.GetUserGoals)
	goals.GET("/suggest", goalHandler.SuggestGoals)
	goals.GET("/:id", goalHandler.GetGoalByID)
	goals.POST("/:id/fund", goalHandler.FundGoal)
	goals.POST("/:id/plan", goalHandler.GenerateBudgetPlan)
	goals.DELETE("/:id", goalHandler.DeleteGoal)

	budgets := protected.Group("/budgets")
	budgets.POST("", budgetHandler.CreateBudget)
	budgets.GET("", budgetHandler.GetUserBudgets)
	budgets.GET("/:id", budgetHandler.GetBudgetByID)
	budgets.PUT("/:id", budgetHandler.UpdateBudget)
	budgets.DELETE("/:id", budgetHandler.DeleteBudget)
	budgets.GET("/:id/progress", budgetHandler.GetBudgetProgress)

	reports := protected.Group("/reports")
	reports.GET("/summary", reportHandler.GetSummary)
	reports.GET("/breakdown", reportHandler.GetCategoryBreakdown)

	insights := protected.Group("/insights")
	insights.POST("/categorize", insightHandler.CategorizeTransaction)
	insights.POST("/receipt", insightHandler.ScanReceipt)

	return &testApp{DB: db, Router: router}
}

// request makes an HTTP request to the test router and returns the recorder.
func (app *testApp) request(method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

// parseJSON parses the response body into a map.
func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

// registerUser registers a new user and returns the access token, refresh token, and user ID.
func (app *testApp) registerUser(t *testing.T, email, password string) (accessToken, refreshToken, userID string) {
	t.Helper()
	body := fmt.Sprintf(`{"email":%q,"password":%q,"first_name":"Test","last_name":"User"}`, email, password)
	rec := app.request("POST", "/api/v1/auth/register", body, "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("register failed: %d %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	user := result["user"].(map[string]interface{})
	return result["access_token"].(string), result["refresh_token"].(string), user["id"].(string)
}

// loginUser logs in and returns the access and refresh tokens.
func (app *testApp) loginUser(t *testing.T, email, password string) (accessToken, refreshToken string) {
	t.Helper()
	body := fmt.Sprintf(`{"email":%q,"password":%q}`, email, password)
	rec := app.request("POST", "/api/v1/auth/login", body, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("login failed: %d %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	return result["access_token"].(string), result["refresh_token"].(string)
}

// categoryID looks up one of the user's categories by name.
func (app *testApp) categoryID(t *testing.T, token, name string) string {
	t.Helper()
	rec := app.request("GET", "/api/v1/categories?page_size=100", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("listing categories failed: %d %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	for _, item := range result["data"].([]interface{}) {
		category := item.(map[string]interface{})
		if category["name"] == name {
			return category["id"].(string)
		}
	}
	t.Fatalf("category %q not found", name)
	return ""
}

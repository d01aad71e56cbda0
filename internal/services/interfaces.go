package services

import (
	"context"
	"time"

	"gorm.io/gorm"

	"moneta/internal/models"
	"moneta/internal/oracle"
	"moneta/internal/pagination"
)

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	CreateUser(email, password, firstName, lastName string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id string) (*models.User, error)
	VerifyPassword(user *models.User, password string) bool
	AttemptLogin(email, password string) (*models.User, error)
	StoreRefreshTokenHash(userID, tokenHash string) error
	GetRefreshTokenHash(userID string) (string, error)
	UpgradeToPremium(userID string) (*models.User, error)
}

// CategoryServicer defines the contract for category-related business logic.
type CategoryServicer interface {
	CreateCategory(userID, name string, categoryType models.CategoryType) (*models.Category, error)
	GetUserCategories(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.Category], error)
	GetUserCategoriesByType(userID string, categoryType models.CategoryType, page pagination.PageRequest) (*pagination.PageResponse[models.Category], error)
	GetCategoryByID(userID, categoryID string) (*models.Category, error)
	GetCategoryByName(userID, name string) (*models.Category, error)
	RenameCategory(userID, categoryID, name string) (*models.Category, error)
	DeleteCategory(userID, categoryID string) error
}

// TransactionFilter holds optional filter parameters for listing transactions.
type TransactionFilter struct {
	FromDate   *time.Time
	ToDate     *time.Time
	Type       *models.TransactionType
	CategoryID *string
	MinAmount  *int64
	MaxAmount  *int64
	Recurring  *bool
}

// TransactionServicer defines the contract for transaction-related business logic.
type TransactionServicer interface {
	CreateTransaction(userID, categoryID string, transactionType models.TransactionType, amount int64, description string, date time.Time) (*models.Transaction, error)
	GetUserTransactions(userID string, page pagination.PageRequest, filter TransactionFilter) (*pagination.PageResponse[models.Transaction], error)
	GetTransactionByID(userID, transactionID string) (*models.Transaction, error)
	UpdateTransaction(userID, transactionID string, categoryID *string, transactionType *models.TransactionType, amount *int64, description *string, date *time.Time) (*models.Transaction, error)
	DeleteTransaction(userID, transactionID string) error
	GetBalance(userID string) (int64, error)
	HasIncome(userID string) (bool, error)
}

// RecurringServicer defines the contract for recurring transaction schedules.
type RecurringServicer interface {
	CreateSchedule(userID, categoryID string, transactionType models.TransactionType, amount int64, description string, frequency models.Frequency, startDate time.Time, endDate *time.Time) (*models.RecurringTransaction, error)
	GetUserSchedules(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.RecurringTransaction], error)
	GetScheduleByID(userID, scheduleID string) (*models.RecurringTransaction, error)
	UpdateSchedule(userID, scheduleID string, amount *int64, description *string, endDate *time.Time) (*models.RecurringTransaction, error)
	SetScheduleActive(userID, scheduleID string, active bool) (*models.RecurringTransaction, error)
	DeleteSchedule(userID, scheduleID string) error
}

// MaterializerServicer runs the recurrence engine for one user: it computes
// the occurrences due since the user's checkpoint and commits them, together
// with the checkpoint advance, in a single database transaction.
type MaterializerServicer interface {
	Materialize(userID string) (int, error)
}

// GoalServicer defines the contract for savings goals.
type GoalServicer interface {
	CreateGoal(userID, name string, targetAmount int64) (*models.Goal, error)
	GetUserGoals(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.Goal], error)
	GetGoalByID(userID, goalID string) (*models.Goal, error)
	DeleteGoal(userID, goalID string) error
	FundGoal(userID, goalID string, amount int64) (*models.Goal, error)
	SuggestGoals(ctx context.Context, userID string) ([]oracle.GoalSuggestion, error)
	GenerateBudgetPlan(ctx context.Context, userID, goalID string) (*models.Goal, error)
}

// BudgetProgress contains spending vs budget data for the current month.
type BudgetProgress struct {
	BudgetID   string  `json:"budget_id"`
	Budgeted   int64   `json:"budgeted"`
	Spent      int64   `json:"spent"`
	Remaining  int64   `json:"remaining"`
	Percentage float64 `json:"percentage"`
}

// BudgetServicer defines the contract for budget-related business logic.
type BudgetServicer interface {
	CreateBudget(userID, categoryID string, amount int64) (*models.Budget, error)
	GetUserBudgets(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.Budget], error)
	GetBudgetByID(userID, budgetID string) (*models.Budget, error)
	UpdateBudget(userID, budgetID string, amount int64) (*models.Budget, error)
	DeleteBudget(userID, budgetID string) error
	GetBudgetProgress(userID, budgetID string) (*BudgetProgress, error)
}

// GamificationServicer awards points for user milestones. Award takes the
// caller's database handle so the credit can join an enclosing transaction.
type GamificationServicer interface {
	Award(tx *gorm.DB, userID string, action GamifiedAction) error
	GetPoints(userID string) (int64, error)
}

// ReportSummary aggregates a user's ledger over a date range.
type ReportSummary struct {
	TotalIncome   int64 `json:"total_income"`
	TotalExpenses int64 `json:"total_expenses"`
	Net           int64 `json:"net"`
}

// CategoryBreakdownEntry is one category's share of spending in a range.
type CategoryBreakdownEntry struct {
	CategoryID   string `json:"category_id"`
	CategoryName string `json:"category_name"`
	Total        int64  `json:"total"`
}

// ReportServicer defines the contract for reporting queries.
type ReportServicer interface {
	GetSummary(userID string, from, to time.Time) (*ReportSummary, error)
	GetCategoryBreakdown(userID string, from, to time.Time) ([]CategoryBreakdownEntry, error)
}

// InsightServicer exposes model-backed insights over a user's data.
type InsightServicer interface {
	CategorizeTransaction(ctx context.Context, userID, description string) (oracle.CategorySuggestion, error)
	ScanReceipt(ctx context.Context, userID string, image []byte, mimeType string) (oracle.ReceiptScan, error)
}

// AuditServicer defines the contract for audit logging.
type AuditServicer interface {
	Log(userID, action, resourceType, resourceID, ipAddress string, changes map[string]interface{})
}

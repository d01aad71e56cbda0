package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"moneta/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestUser creates a user with a hashed password and unique email.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	email := fmt.Sprintf("user%d@test.com", nextID())
	return CreateTestUserWithEmail(t, db, email)
}

// CreateTestUserWithEmail creates a user with the given email.
func CreateTestUserWithEmail(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Email:    email,
		Password: string(hash),
		IsActive: true,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestCategory creates a category of the given type.
func CreateTestCategory(t *testing.T, db *gorm.DB, userID string, categoryType models.CategoryType) *models.Category {
	t.Helper()
	return CreateTestCategoryWithName(t, db, userID, fmt.Sprintf("Test Category %d", nextID()), categoryType)
}

// CreateTestCategoryWithName creates a category with the given name and type.
func CreateTestCategoryWithName(t *testing.T, db *gorm.DB, userID, name string, categoryType models.CategoryType) *models.Category {
	t.Helper()

	category := &models.Category{
		UserID:     userID,
		Name:       name,
		Type:       categoryType,
		IsReserved: name == models.CategorySavings || name == models.CategoryOther,
	}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("failed to create test category: %v", err)
	}
	return category
}

// SeedDefaultCategories creates the full default category set for a user and
// returns them keyed by name.
func SeedDefaultCategories(t *testing.T, db *gorm.DB, userID string) map[string]*models.Category {
	t.Helper()

	byName := make(map[string]*models.Category, len(models.DefaultCategories))
	for _, dc := range models.DefaultCategories {
		byName[dc.Name] = CreateTestCategoryWithName(t, db, userID, dc.Name, dc.Type)
	}
	return byName
}

// CreateTestTransaction creates a transaction of the given type and amount (in cents).
func CreateTestTransaction(t *testing.T, db *gorm.DB, userID, categoryID string, txType models.TransactionType, amount int64) *models.Transaction {
	t.Helper()

	tx := &models.Transaction{
		UserID:     userID,
		CategoryID: categoryID,
		Type:       txType,
		Amount:     amount,
		Date:       time.Now().UTC().Truncate(24 * time.Hour),
	}
	if err := db.Create(tx).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}
	return tx
}

// CreateTestSchedule creates an active recurring transaction with the given
// cadence and start date.
func CreateTestSchedule(t *testing.T, db *gorm.DB, userID, categoryID string, freq models.Frequency, start time.Time) *models.RecurringTransaction {
	t.Helper()

	sched := &models.RecurringTransaction{
		UserID:      userID,
		CategoryID:  categoryID,
		Type:        models.TransactionTypeExpense,
		Amount:      2500, // $25.00
		Description: fmt.Sprintf("Test Schedule %d", nextID()),
		Frequency:   freq,
		StartDate:   start,
		IsActive:    true,
	}
	if err := db.Create(sched).Error; err != nil {
		t.Fatalf("failed to create test schedule: %v", err)
	}
	return sched
}

// CreateTestGoal creates an incomplete goal with the given target (in cents).
func CreateTestGoal(t *testing.T, db *gorm.DB, userID string, target int64) *models.Goal {
	t.Helper()

	goal := &models.Goal{
		UserID:       userID,
		Name:         fmt.Sprintf("Test Goal %d", nextID()),
		TargetAmount: target,
	}
	if err := db.Create(goal).Error; err != nil {
		t.Fatalf("failed to create test goal: %v", err)
	}
	return goal
}

// CreateTestBudget creates a monthly budget for the given category (amount in cents).
func CreateTestBudget(t *testing.T, db *gorm.DB, userID, categoryID string, amount int64) *models.Budget {
	t.Helper()

	budget := &models.Budget{
		UserID:     userID,
		CategoryID: categoryID,
		Amount:     amount,
	}
	if err := db.Create(budget).Error; err != nil {
		t.Fatalf("failed to create test budget: %v", err)
	}
	return budget
}

package services

import (
	"testing"

	"moneta/internal/models"
	"moneta/internal/testutil"
)

func TestCreateBudget(t *testing.T) {
	t.Run("one_budget_per_category", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db, NewCategoryService(db))
		user := testutil.CreateTestUser(t, db)
		cat := testutil.CreateTestCategory(t, db, user.ID, models.CategoryTypeExpense)

		_, err := svc.CreateBudget(user.ID, cat.ID, 50000)
		testutil.AssertNoError(t, err)

		_, err = svc.CreateBudget(user.ID, cat.ID, 30000)
		testutil.AssertAppError(t, err, "DUPLICATE_BUDGET")
	})

	t.Run("income_category_rejected", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db, NewCategoryService(db))
		user := testutil.CreateTestUser(t, db)
		cat := testutil.CreateTestCategory(t, db, user.ID, models.CategoryTypeIncome)

		_, err := svc.CreateBudget(user.ID, cat.ID, 50000)
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("zero_amount", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db, NewCategoryService(db))
		user := testutil.CreateTestUser(t, db)
		cat := testutil.CreateTestCategory(t, db, user.ID, models.CategoryTypeExpense)

		_, err := svc.CreateBudget(user.ID, cat.ID, 0)
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestGetBudgetProgress(t *testing.T) {
	t.Run("sums_current_month_spending", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db, NewCategoryService(db))
		user := testutil.CreateTestUser(t, db)
		cat := testutil.CreateTestCategory(t, db, user.ID, models.CategoryTypeExpense)
		budget := testutil.CreateTestBudget(t, db, user.ID, cat.ID, 50000)

		// Two expenses this month, one in another category.
		testutil.CreateTestTransaction(t, db, user.ID, cat.ID, models.TransactionTypeExpense, 10000)
		testutil.CreateTestTransaction(t, db, user.ID, cat.ID, models.TransactionTypeExpense, 15000)
		otherCat := testutil.CreateTestCategory(t, db, user.ID, models.CategoryTypeExpense)
		testutil.CreateTestTransaction(t, db, user.ID, otherCat.ID, models.TransactionTypeExpense, 99999)

		progress, err := svc.GetBudgetProgress(user.ID, budget.ID)
		testutil.AssertNoError(t, err)
		if progress.Spent != 25000 {
			t.Errorf("expected spent 25000, got %d", progress.Spent)
		}
		if progress.Remaining != 25000 {
			t.Errorf("expected remaining 25000, got %d", progress.Remaining)
		}
		if progress.Percentage != 50 {
			t.Errorf("expected 50%%, got %f", progress.Percentage)
		}
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db, NewCategoryService(db))
		user := testutil.CreateTestUser(t, db)

		_, err := svc.GetBudgetProgress(user.ID, "no-such-budget")
		testutil.AssertAppError(t, err, "BUDGET_NOT_FOUND")
	})
}

package services

import (
	"testing"

	"moneta/internal/models"
	"moneta/internal/pagination"
	"moneta/internal/testutil"
)

func TestCreateCategory(t *testing.T) {
	t.Run("creates_category", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)
		user := testutil.CreateTestUser(t, db)

		cat, err := svc.CreateCategory(user.ID, "Books", models.CategoryTypeExpense)
		testutil.AssertNoError(t, err)
		if cat.Name != "Books" || cat.IsReserved {
			t.Errorf("unexpected category: %+v", cat)
		}
	})

	t.Run("duplicate_name", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)
		user := testutil.CreateTestUser(t, db)

		_, err := svc.CreateCategory(user.ID, "Books", models.CategoryTypeExpense)
		testutil.AssertNoError(t, err)

		_, err = svc.CreateCategory(user.ID, "Books", models.CategoryTypeExpense)
		testutil.AssertAppError(t, err, "DUPLICATE_CATEGORY")
	})

	t.Run("same_name_different_users", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)
		user := testutil.CreateTestUser(t, db)
		other := testutil.CreateTestUser(t, db)

		_, err := svc.CreateCategory(user.ID, "Books", models.CategoryTypeExpense)
		testutil.AssertNoError(t, err)

		_, err = svc.CreateCategory(other.ID, "Books", models.CategoryTypeExpense)
		testutil.AssertNoError(t, err)
	})
}

func TestRenameCategory(t *testing.T) {
	t.Run("rename_leaves_references_intact", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)
		user := testutil.CreateTestUser(t, db)
		cat := testutil.CreateTestCategory(t, db, user.ID, models.CategoryTypeExpense)
		tx := testutil.CreateTestTransaction(t, db, user.ID, cat.ID, models.TransactionTypeExpense, 1000)

		renamed, err := svc.RenameCategory(user.ID, cat.ID, "Renamed")
		testutil.AssertNoError(t, err)
		if renamed.Name != "Renamed" {
			t.Errorf("expected name Renamed, got %s", renamed.Name)
		}

		// Transactions reference the category by ID, so they follow the
		// rename automatically.
		var reloaded models.Transaction
		if err := db.First(&reloaded, "id = ?", tx.ID).Error; err != nil {
			t.Fatalf("failed to reload transaction: %v", err)
		}
		if reloaded.CategoryID != cat.ID {
			t.Errorf("expected category reference to be unchanged, got %s", reloaded.CategoryID)
		}
	})

	t.Run("reserved_category_rejected", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)
		user := testutil.CreateTestUser(t, db)
		categories := testutil.SeedDefaultCategories(t, db, user.ID)

		_, err := svc.RenameCategory(user.ID, categories[models.CategorySavings].ID, "Stash")
		testutil.AssertAppError(t, err, "RESERVED_CATEGORY")
	})

	t.Run("duplicate_target_name", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)
		user := testutil.CreateTestUser(t, db)
		a := testutil.CreateTestCategoryWithName(t, db, user.ID, "A", models.CategoryTypeExpense)
		testutil.CreateTestCategoryWithName(t, db, user.ID, "B", models.CategoryTypeExpense)

		_, err := svc.RenameCategory(user.ID, a.ID, "B")
		testutil.AssertAppError(t, err, "DUPLICATE_CATEGORY")
	})
}

func TestDeleteCategory(t *testing.T) {
	t.Run("reassigns_to_other_and_drops_budgets", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)
		user := testutil.CreateTestUser(t, db)
		categories := testutil.SeedDefaultCategories(t, db, user.ID)
		doomed := testutil.CreateTestCategoryWithName(t, db, user.ID, "Doomed", models.CategoryTypeExpense)

		tx := testutil.CreateTestTransaction(t, db, user.ID, doomed.ID, models.TransactionTypeExpense, 1000)
		sched := testutil.CreateTestSchedule(t, db, user.ID, doomed.ID, models.FrequencyMonthly, tx.Date)
		budget := testutil.CreateTestBudget(t, db, user.ID, doomed.ID, 50000)

		testutil.AssertNoError(t, svc.DeleteCategory(user.ID, doomed.ID))

		other := categories[models.CategoryOther]

		var reloadedTx models.Transaction
		if err := db.First(&reloadedTx, "id = ?", tx.ID).Error; err != nil {
			t.Fatalf("failed to reload transaction: %v", err)
		}
		if reloadedTx.CategoryID != other.ID {
			t.Errorf("expected transaction reassigned to Other, got %s", reloadedTx.CategoryID)
		}

		var reloadedSched models.RecurringTransaction
		if err := db.First(&reloadedSched, "id = ?", sched.ID).Error; err != nil {
			t.Fatalf("failed to reload schedule: %v", err)
		}
		if reloadedSched.CategoryID != other.ID {
			t.Errorf("expected schedule reassigned to Other, got %s", reloadedSched.CategoryID)
		}

		var budgetCount int64
		db.Model(&models.Budget{}).Where("id = ?", budget.ID).Count(&budgetCount)
		if budgetCount != 0 {
			t.Error("expected budget to be dropped with its category")
		}
	})

	t.Run("reserved_category_rejected", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)
		user := testutil.CreateTestUser(t, db)
		categories := testutil.SeedDefaultCategories(t, db, user.ID)

		err := svc.DeleteCategory(user.ID, categories[models.CategoryOther].ID)
		testutil.AssertAppError(t, err, "RESERVED_CATEGORY")
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)
		user := testutil.CreateTestUser(t, db)

		err := svc.DeleteCategory(user.ID, "no-such-category")
		testutil.AssertAppError(t, err, "CATEGORY_NOT_FOUND")
	})
}

func TestGetUserCategories(t *testing.T) {
	t.Run("filters_by_type", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)
		user := testutil.CreateTestUser(t, db)
		testutil.SeedDefaultCategories(t, db, user.ID)

		page, err := svc.GetUserCategoriesByType(user.ID, models.CategoryTypeIncome, pagination.PageRequest{})
		testutil.AssertNoError(t, err)
		for _, c := range page.Data {
			if c.Type != models.CategoryTypeIncome {
				t.Errorf("expected only income categories, got %s", c.Type)
			}
		}
		if page.TotalItems != 2 {
			t.Errorf("expected 2 income categories, got %d", page.TotalItems)
		}
	})
}

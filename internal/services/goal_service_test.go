package services

import (
	"context"
	"testing"
	"time"

	"moneta/internal/models"
	"moneta/internal/oracle"
	"moneta/internal/recurrence"
	"moneta/internal/testutil"
)

// stubOracle returns canned answers for the premium feature tests.
type stubOracle struct {
	suggestions []oracle.GoalSuggestion
	plan        string
	planRequest oracle.BudgetPlanRequest
}

func (s *stubOracle) Categorize(ctx context.Context, description string, categories []string) (oracle.CategorySuggestion, error) {
	return oracle.CategorySuggestion{Category: models.CategoryOther}, nil
}

func (s *stubOracle) ScanReceipt(ctx context.Context, image []byte, mimeType string) (oracle.ReceiptScan, error) {
	return oracle.ReceiptScan{}, nil
}

func (s *stubOracle) SuggestGoals(ctx context.Context, summary oracle.FinancialSummary) ([]oracle.GoalSuggestion, error) {
	return s.suggestions, nil
}

func (s *stubOracle) GenerateBudgetPlan(ctx context.Context, req oracle.BudgetPlanRequest) (string, error) {
	s.planRequest = req
	return s.plan, nil
}

func TestCreateGoal(t *testing.T) {
	t.Run("awards_creation_points", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		gamification := NewGamificationService(db)
		catSvc := NewCategoryService(db)
		txSvc := NewTransactionService(db, catSvc, gamification)
		svc := NewGoalService(db, txSvc, catSvc, gamification, nil, nil)
		user := testutil.CreateTestUser(t, db)

		goal, err := svc.CreateGoal(user.ID, "Emergency Fund", 300000)
		testutil.AssertNoError(t, err)
		if goal.SavedAmount != 0 || goal.IsCompleted {
			t.Errorf("expected fresh goal, got %+v", goal)
		}

		points, err := gamification.GetPoints(user.ID)
		testutil.AssertNoError(t, err)
		if points != 25 {
			t.Errorf("expected 25 points, got %d", points)
		}
	})

	t.Run("invalid_target", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		gamification := NewGamificationService(db)
		catSvc := NewCategoryService(db)
		txSvc := NewTransactionService(db, catSvc, gamification)
		svc := NewGoalService(db, txSvc, catSvc, gamification, nil, nil)
		user := testutil.CreateTestUser(t, db)

		_, err := svc.CreateGoal(user.ID, "Bad", 0)
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestFundGoal(t *testing.T) {
	t.Run("books_contribution_expense", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		gamification := NewGamificationService(db)
		catSvc := NewCategoryService(db)
		txSvc := NewTransactionService(db, catSvc, gamification)
		svc := NewGoalService(db, txSvc, catSvc, gamification, nil, nil)
		user := testutil.CreateTestUser(t, db)
		categories := testutil.SeedDefaultCategories(t, db, user.ID)
		testutil.CreateTestTransaction(t, db, user.ID, categories["Salary"].ID, models.TransactionTypeIncome, 100000)

		goal, err := svc.CreateGoal(user.ID, "Vacation", 50000)
		testutil.AssertNoError(t, err)

		funded, err := svc.FundGoal(user.ID, goal.ID, 20000)
		testutil.AssertNoError(t, err)
		if funded.SavedAmount != 20000 {
			t.Errorf("expected saved 20000, got %d", funded.SavedAmount)
		}
		if funded.IsCompleted {
			t.Error("goal should not be completed yet")
		}

		var contribution models.Transaction
		if err := db.Where("user_id = ? AND category_id = ?", user.ID, categories[models.CategorySavings].ID).
			First(&contribution).Error; err != nil {
			t.Fatalf("expected contribution expense: %v", err)
		}
		if contribution.Type != models.TransactionTypeExpense {
			t.Errorf("expected expense, got %s", contribution.Type)
		}
		if contribution.Description != "Contribution to goal: Vacation" {
			t.Errorf("unexpected description %q", contribution.Description)
		}

		balance, err := txSvc.GetBalance(user.ID)
		testutil.AssertNoError(t, err)
		if balance != 80000 {
			t.Errorf("expected balance 80000, got %d", balance)
		}
	})

	t.Run("completion_flips_once_and_awards_points", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		gamification := NewGamificationService(db)
		catSvc := NewCategoryService(db)
		txSvc := NewTransactionService(db, catSvc, gamification)
		clock := recurrence.FixedClock{Instant: time.Date(2024, time.July, 1, 9, 0, 0, 0, time.UTC)}
		svc := NewGoalService(db, txSvc, catSvc, gamification, nil, clock)
		user := testutil.CreateTestUser(t, db)
		categories := testutil.SeedDefaultCategories(t, db, user.ID)
		testutil.CreateTestTransaction(t, db, user.ID, categories["Salary"].ID, models.TransactionTypeIncome, 100000)

		goal, err := svc.CreateGoal(user.ID, "Laptop", 30000)
		testutil.AssertNoError(t, err)

		funded, err := svc.FundGoal(user.ID, goal.ID, 30000)
		testutil.AssertNoError(t, err)
		if !funded.IsCompleted {
			t.Fatal("expected goal to be completed")
		}
		if funded.CompletedAt == nil {
			t.Fatal("expected completion timestamp")
		}

		// 25 create + 10 contribution transaction + 100 completion.
		points, err := gamification.GetPoints(user.ID)
		testutil.AssertNoError(t, err)
		if points != 135 {
			t.Errorf("expected 135 points, got %d", points)
		}

		firstCompletedAt := *funded.CompletedAt

		// Funding past the target keeps accumulating. A later clock makes a
		// re-stamped completion visible.
		laterClock := recurrence.FixedClock{Instant: time.Date(2024, time.August, 1, 9, 0, 0, 0, time.UTC)}
		laterSvc := NewGoalService(db, txSvc, catSvc, gamification, nil, laterClock)
		refunded, err := laterSvc.FundGoal(user.ID, goal.ID, 500)
		testutil.AssertNoError(t, err)
		if refunded.SavedAmount != 30500 {
			t.Errorf("expected saved 30500, got %d", refunded.SavedAmount)
		}
		if refunded.CompletedAt == nil || !refunded.CompletedAt.Equal(firstCompletedAt) {
			t.Errorf("expected completion timestamp %v to survive, got %v", firstCompletedAt, refunded.CompletedAt)
		}

		// The extra contribution earns transaction points but never a second
		// completion bonus.
		points, err = gamification.GetPoints(user.ID)
		testutil.AssertNoError(t, err)
		if points != 145 {
			t.Errorf("expected 145 points, got %d", points)
		}
	})

	t.Run("funding_over_balance_rejected", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		gamification := NewGamificationService(db)
		catSvc := NewCategoryService(db)
		txSvc := NewTransactionService(db, catSvc, gamification)
		svc := NewGoalService(db, txSvc, catSvc, gamification, nil, nil)
		user := testutil.CreateTestUser(t, db)
		categories := testutil.SeedDefaultCategories(t, db, user.ID)
		testutil.CreateTestTransaction(t, db, user.ID, categories["Salary"].ID, models.TransactionTypeIncome, 1000)

		goal, err := svc.CreateGoal(user.ID, "Car", 500000)
		testutil.AssertNoError(t, err)

		_, err = svc.FundGoal(user.ID, goal.ID, 2000)
		testutil.AssertAppError(t, err, "INSUFFICIENT_BALANCE")

		reloaded, err := svc.GetGoalByID(user.ID, goal.ID)
		testutil.AssertNoError(t, err)
		if reloaded.SavedAmount != 0 {
			t.Errorf("expected saved amount unchanged, got %d", reloaded.SavedAmount)
		}
	})

	t.Run("funding_without_income_rejected", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		gamification := NewGamificationService(db)
		catSvc := NewCategoryService(db)
		txSvc := NewTransactionService(db, catSvc, gamification)
		svc := NewGoalService(db, txSvc, catSvc, gamification, nil, nil)
		user := testutil.CreateTestUser(t, db)
		testutil.SeedDefaultCategories(t, db, user.ID)

		goal, err := svc.CreateGoal(user.ID, "Car", 500000)
		testutil.AssertNoError(t, err)

		_, err = svc.FundGoal(user.ID, goal.ID, 2000)
		testutil.AssertAppError(t, err, "NO_INCOME_RECORDED")
	})
}

func TestSuggestGoals(t *testing.T) {
	t.Run("premium_required", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		gamification := NewGamificationService(db)
		catSvc := NewCategoryService(db)
		txSvc := NewTransactionService(db, catSvc, gamification)
		svc := NewGoalService(db, txSvc, catSvc, gamification, &stubOracle{}, nil)
		user := testutil.CreateTestUser(t, db)

		_, err := svc.SuggestGoals(context.Background(), user.ID)
		testutil.AssertAppError(t, err, "PREMIUM_REQUIRED")
	})

	t.Run("returns_model_suggestions", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		gamification := NewGamificationService(db)
		catSvc := NewCategoryService(db)
		txSvc := NewTransactionService(db, catSvc, gamification)
		stub := &stubOracle{suggestions: []oracle.GoalSuggestion{{Name: "Emergency Fund", TargetAmount: 300000}}}
		svc := NewGoalService(db, txSvc, catSvc, gamification, stub, nil)
		user := testutil.CreateTestUser(t, db)
		if err := db.Model(user).Update("is_premium", true).Error; err != nil {
			t.Fatalf("failed to set premium: %v", err)
		}

		suggestions, err := svc.SuggestGoals(context.Background(), user.ID)
		testutil.AssertNoError(t, err)
		if len(suggestions) != 1 || suggestions[0].Name != "Emergency Fund" {
			t.Errorf("unexpected suggestions: %+v", suggestions)
		}
	})
}

func TestGenerateBudgetPlan(t *testing.T) {
	t.Run("stores_plan_and_sends_previous", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		gamification := NewGamificationService(db)
		catSvc := NewCategoryService(db)
		txSvc := NewTransactionService(db, catSvc, gamification)
		stub := &stubOracle{plan: "**Summary**\n* Save steadily."}
		svc := NewGoalService(db, txSvc, catSvc, gamification, stub, nil)
		user := testutil.CreateTestUser(t, db)
		if err := db.Model(user).Update("is_premium", true).Error; err != nil {
			t.Fatalf("failed to set premium: %v", err)
		}

		goal := testutil.CreateTestGoal(t, db, user.ID, 100000)

		updated, err := svc.GenerateBudgetPlan(context.Background(), user.ID, goal.ID)
		testutil.AssertNoError(t, err)
		if updated.Plan != stub.plan {
			t.Errorf("expected stored plan, got %q", updated.Plan)
		}

		// Regenerating passes the stored plan back for a progress update.
		stub.plan = "**Summary**\n* Almost there."
		_, err = svc.GenerateBudgetPlan(context.Background(), user.ID, goal.ID)
		testutil.AssertNoError(t, err)
		if stub.planRequest.PreviousPlan != "**Summary**\n* Save steadily." {
			t.Errorf("expected previous plan in request, got %q", stub.planRequest.PreviousPlan)
		}
	})
}

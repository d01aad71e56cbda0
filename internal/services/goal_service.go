package services

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	apperrors "moneta/internal/errors"
	"moneta/internal/models"
	"moneta/internal/oracle"
	"moneta/internal/pagination"
	"moneta/internal/recurrence"
)

// goalService handles savings goals, including funding and the premium
// model-backed features.
type goalService struct {
	db              *gorm.DB
	transactions    TransactionServicer
	categoryService CategoryServicer
	gamification    GamificationServicer
	oracle          oracle.Oracle
	clock           recurrence.Clock
}

// NewGoalService creates a new GoalServicer. The oracle may be nil when no
// API key is configured; the premium endpoints then fail cleanly.
func NewGoalService(db *gorm.DB, transactions TransactionServicer, categoryService CategoryServicer, gamification GamificationServicer, o oracle.Oracle, clock recurrence.Clock) GoalServicer {
	if clock == nil {
		clock = recurrence.SystemClock{}
	}
	return &goalService{
		db:              db,
		transactions:    transactions,
		categoryService: categoryService,
		gamification:    gamification,
		oracle:          o,
		clock:           clock,
	}
}

// CreateGoal creates a new savings goal and awards milestone points.
func (s *goalService) CreateGoal(userID, name string, targetAmount int64) (*models.Goal, error) {
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "goal name is required")
	}
	if targetAmount <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "target amount must be greater than zero")
	}

	goal := &models.Goal{
		UserID:       userID,
		Name:         name,
		TargetAmount: targetAmount,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(goal).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return s.gamification.Award(tx, userID, ActionCreateGoal)
	})
	if err != nil {
		return nil, err
	}

	return goal, nil
}

// GetUserGoals retrieves a paginated list of goals for a user.
func (s *goalService) GetUserGoals(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.Goal], error) {
	page.Defaults()

	base := s.db.Model(&models.Goal{}).Where("user_id = ?", userID)

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var goals []models.Goal
	if err := base.Scopes(pagination.Paginate(page)).
		Order("created_at DESC").
		Find(&goals).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(goals, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetGoalByID retrieves a goal by ID for a specific user
func (s *goalService) GetGoalByID(userID, goalID string) (*models.Goal, error) {
	var goal models.Goal
	if err := s.db.Where("id = ? AND user_id = ?", goalID, userID).First(&goal).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrGoalNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &goal, nil
}

// DeleteGoal removes a goal. Contribution transactions already booked stay
// in the ledger, and points earned from the goal are kept.
func (s *goalService) DeleteGoal(userID, goalID string) error {
	goal, err := s.GetGoalByID(userID, goalID)
	if err != nil {
		return err
	}

	if err := s.db.Delete(goal).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// FundGoal moves money into a goal: it books an expense against the reserved
// "Savings" category and raises the goal's saved amount in one database
// transaction. The expense runs through the normal spending gate, so funding
// beyond the current balance is rejected. Contributions past the target keep
// accumulating; completion flips exactly once, at the first crossing, and
// only that crossing earns the completion award.
func (s *goalService) FundGoal(userID, goalID string, amount int64) (*models.Goal, error) {
	if amount <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be greater than zero")
	}

	goal, err := s.GetGoalByID(userID, goalID)
	if err != nil {
		return nil, err
	}

	savings, err := s.categoryService.GetCategoryByName(userID, models.CategorySavings)
	if err != nil {
		return nil, err
	}

	// Spending gate, same as a manual expense.
	hasIncome, err := s.transactions.HasIncome(userID)
	if err != nil {
		return nil, err
	}
	if !hasIncome {
		return nil, apperrors.ErrNoIncomeRecorded
	}
	balance, err := s.transactions.GetBalance(userID)
	if err != nil {
		return nil, err
	}
	if amount > balance {
		return nil, apperrors.ErrInsufficientBalance
	}

	now := s.clock.Now().UTC()
	err = s.db.Transaction(func(tx *gorm.DB) error {
		contribution := &models.Transaction{
			UserID:      userID,
			CategoryID:  savings.ID,
			Type:        models.TransactionTypeExpense,
			Amount:      amount,
			Description: fmt.Sprintf("Contribution to goal: %s", goal.Name),
			Date:        recurrence.DayOf(now),
		}
		if err := tx.Create(contribution).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if err := s.gamification.Award(tx, userID, ActionAddTransaction); err != nil {
			return err
		}

		goal.SavedAmount += amount
		if goal.SavedAmount >= goal.TargetAmount && !goal.IsCompleted {
			goal.IsCompleted = true
			goal.CompletedAt = &now
			if err := s.gamification.Award(tx, userID, ActionCompleteGoal); err != nil {
				return err
			}
		}

		if err := tx.Save(goal).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return goal, nil
}

// SuggestGoals asks the model for savings goals sized to the user's
// finances. Premium only.
func (s *goalService) SuggestGoals(ctx context.Context, userID string) ([]oracle.GoalSuggestion, error) {
	if err := s.requirePremium(userID); err != nil {
		return nil, err
	}

	summary, err := s.financialSummary(userID)
	if err != nil {
		return nil, err
	}

	suggestions, err := s.oracle.SuggestGoals(ctx, summary)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return suggestions, nil
}

// GenerateBudgetPlan asks the model for a budget plan toward a goal and
// stores it on the goal. A stored previous plan is sent along so the model
// comments on progress instead of starting over. Premium only.
func (s *goalService) GenerateBudgetPlan(ctx context.Context, userID, goalID string) (*models.Goal, error) {
	if err := s.requirePremium(userID); err != nil {
		return nil, err
	}

	goal, err := s.GetGoalByID(userID, goalID)
	if err != nil {
		return nil, err
	}

	balance, err := s.transactions.GetBalance(userID)
	if err != nil {
		return nil, err
	}

	expenses, err := s.recentExpenses(userID, 20)
	if err != nil {
		return nil, err
	}

	plan, err := s.oracle.GenerateBudgetPlan(ctx, oracle.BudgetPlanRequest{
		GoalName:       goal.Name,
		TargetAmount:   goal.TargetAmount,
		SavedAmount:    goal.SavedAmount,
		Balance:        balance,
		RecentExpenses: expenses,
		PreviousPlan:   goal.Plan,
	})
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if err := s.db.Model(goal).Update("plan", plan).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	goal.Plan = plan
	return goal, nil
}

func (s *goalService) requirePremium(userID string) error {
	var user models.User
	if err := s.db.Select("is_premium").Where("id = ?", userID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrUserNotFound
		}
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if !user.IsPremium {
		return apperrors.ErrPremiumRequired
	}

	if s.oracle == nil {
		return apperrors.WithMessage(apperrors.ErrInternalServer, "AI features are not configured")
	}
	return nil
}

func (s *goalService) financialSummary(userID string) (oracle.FinancialSummary, error) {
	var summary oracle.FinancialSummary

	err := s.db.Model(&models.Transaction{}).
		Where("user_id = ? AND type = ?", userID, models.TransactionTypeIncome).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&summary.Income).Error
	if err != nil {
		return summary, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	err = s.db.Model(&models.Transaction{}).
		Where("user_id = ? AND type = ?", userID, models.TransactionTypeExpense).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&summary.Expenses).Error
	if err != nil {
		return summary, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	summary.Balance = summary.Income - summary.Expenses
	return summary, nil
}

func (s *goalService) recentExpenses(userID string, limit int) ([]oracle.ExpenseLine, error) {
	var transactions []models.Transaction
	err := s.db.Preload("Category").
		Where("user_id = ? AND type = ?", userID, models.TransactionTypeExpense).
		Order("date DESC").
		Limit(limit).
		Find(&transactions).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	lines := make([]oracle.ExpenseLine, 0, len(transactions))
	for _, tx := range transactions {
		lines = append(lines, oracle.ExpenseLine{
			Description: tx.Description,
			Amount:      tx.Amount,
			Category:    tx.Category.Name,
		})
	}
	return lines, nil
}

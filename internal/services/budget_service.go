package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "moneta/internal/errors"
	"moneta/internal/models"
	"moneta/internal/pagination"
)

// budgetService handles monthly category budgets.
type budgetService struct {
	db              *gorm.DB
	categoryService CategoryServicer
}

// NewBudgetService creates a new BudgetServicer.
func NewBudgetService(db *gorm.DB, categoryService CategoryServicer) BudgetServicer {
	return &budgetService{
		db:              db,
		categoryService: categoryService,
	}
}

// CreateBudget creates a monthly spending limit for a category. A user may
// hold at most one budget per category.
func (s *budgetService) CreateBudget(userID, categoryID string, amount int64) (*models.Budget, error) {
	if amount <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be greater than zero")
	}

	category, err := s.categoryService.GetCategoryByID(userID, categoryID)
	if err != nil {
		return nil, err
	}
	if category.Type != models.CategoryTypeExpense {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "budgets only apply to expense categories")
	}

	var count int64
	if err := s.db.Model(&models.Budget{}).
		Where("user_id = ? AND category_id = ?", userID, categoryID).
		Count(&count).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count > 0 {
		return nil, apperrors.ErrDuplicateBudget
	}

	budget := &models.Budget{
		UserID:     userID,
		CategoryID: categoryID,
		Amount:     amount,
	}

	if err := s.db.Create(budget).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return budget, nil
}

// GetUserBudgets retrieves a paginated list of budgets for a user.
func (s *budgetService) GetUserBudgets(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.Budget], error) {
	page.Defaults()

	base := s.db.Model(&models.Budget{}).Where("user_id = ?", userID)

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var budgets []models.Budget
	if err := base.Preload("Category").
		Scopes(pagination.Paginate(page)).
		Order("created_at DESC").
		Find(&budgets).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(budgets, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetBudgetByID retrieves a budget by ID for a specific user
func (s *budgetService) GetBudgetByID(userID, budgetID string) (*models.Budget, error) {
	var budget models.Budget
	if err := s.db.Preload("Category").
		Where("id = ? AND user_id = ?", budgetID, userID).
		First(&budget).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBudgetNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &budget, nil
}

// UpdateBudget changes the monthly limit.
func (s *budgetService) UpdateBudget(userID, budgetID string, amount int64) (*models.Budget, error) {
	if amount <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be greater than zero")
	}

	budget, err := s.GetBudgetByID(userID, budgetID)
	if err != nil {
		return nil, err
	}

	if err := s.db.Model(budget).Update("amount", amount).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	budget.Amount = amount
	return budget, nil
}

// DeleteBudget removes a budget.
func (s *budgetService) DeleteBudget(userID, budgetID string) error {
	budget, err := s.GetBudgetByID(userID, budgetID)
	if err != nil {
		return err
	}

	if err := s.db.Delete(budget).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// GetBudgetProgress compares the current calendar month's spending in the
// budget's category against its limit.
func (s *budgetService) GetBudgetProgress(userID, budgetID string) (*BudgetProgress, error) {
	budget, err := s.GetBudgetByID(userID, budgetID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, 0)

	var spent int64
	err = s.db.Model(&models.Transaction{}).
		Where("user_id = ? AND category_id = ? AND type = ? AND date >= ? AND date < ?",
			userID, budget.CategoryID, models.TransactionTypeExpense, monthStart, monthEnd).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&spent).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	progress := &BudgetProgress{
		BudgetID:  budget.ID,
		Budgeted:  budget.Amount,
		Spent:     spent,
		Remaining: budget.Amount - spent,
	}
	if budget.Amount > 0 {
		progress.Percentage = float64(spent) / float64(budget.Amount) * 100
	}
	return progress, nil
}

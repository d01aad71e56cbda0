package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "moneta/internal/errors"
	"moneta/internal/models"
	"moneta/internal/pagination"
	"moneta/internal/recurrence"
)

// transactionService handles transaction-related business logic.
type transactionService struct {
	db              *gorm.DB
	categoryService CategoryServicer
	gamification    GamificationServicer
}

// NewTransactionService creates a new TransactionServicer.
func NewTransactionService(db *gorm.DB, categoryService CategoryServicer, gamification GamificationServicer) TransactionServicer {
	return &transactionService{
		db:              db,
		categoryService: categoryService,
		gamification:    gamification,
	}
}

// CreateTransaction records a new ledger entry and awards activity points.
// Expenses are gated: the user must have recorded at least one income ever,
// and the amount must not exceed the current balance. Income is never gated.
func (s *transactionService) CreateTransaction(
	userID string,
	categoryID string,
	transactionType models.TransactionType,
	amount int64,
	description string,
	date time.Time,
) (*models.Transaction, error) {
	// Validate input
	if amount <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be greater than zero")
	}
	if transactionType != models.TransactionTypeIncome && transactionType != models.TransactionTypeExpense {
		return nil, apperrors.ErrInvalidTransactionType
	}

	// Ensure the category exists and belongs to the user
	if _, err := s.categoryService.GetCategoryByID(userID, categoryID); err != nil {
		return nil, err
	}

	// Default date to today if not provided; the ledger stores calendar days.
	if date.IsZero() {
		date = time.Now()
	}
	date = recurrence.DayOf(date)

	if transactionType == models.TransactionTypeExpense {
		if err := s.checkExpenseAllowed(userID, amount); err != nil {
			return nil, err
		}
	}

	transaction := &models.Transaction{
		UserID:      userID,
		CategoryID:  categoryID,
		Type:        transactionType,
		Amount:      amount,
		Description: description,
		Date:        date,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(transaction).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return s.gamification.Award(tx, userID, ActionAddTransaction)
	})
	if err != nil {
		return nil, err
	}

	return transaction, nil
}

// checkExpenseAllowed enforces the spending gate against the current ledger.
func (s *transactionService) checkExpenseAllowed(userID string, amount int64) error {
	hasIncome, err := s.HasIncome(userID)
	if err != nil {
		return err
	}
	if !hasIncome {
		return apperrors.ErrNoIncomeRecorded
	}

	balance, err := s.GetBalance(userID)
	if err != nil {
		return err
	}
	if amount > balance {
		return apperrors.ErrInsufficientBalance
	}
	return nil
}

// GetUserTransactions retrieves a paginated, filtered list of transactions for a user.
func (s *transactionService) GetUserTransactions(userID string, page pagination.PageRequest, filter TransactionFilter) (*pagination.PageResponse[models.Transaction], error) {
	page.Defaults()

	base := s.db.Model(&models.Transaction{}).Where("user_id = ?", userID)
	base = applyTransactionFilters(base, filter)

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var transactions []models.Transaction
	if err := base.Scopes(pagination.Paginate(page)).
		Order("date DESC, created_at DESC").
		Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(transactions, page.Page, page.PageSize, totalItems)
	return &result, nil
}

func applyTransactionFilters(q *gorm.DB, f TransactionFilter) *gorm.DB {
	if f.FromDate != nil {
		q = q.Where("date >= ?", recurrence.DayOf(*f.FromDate))
	}
	if f.ToDate != nil {
		q = q.Where("date <= ?", recurrence.EndOfDay(*f.ToDate))
	}
	if f.Type != nil {
		q = q.Where("type = ?", *f.Type)
	}
	if f.CategoryID != nil {
		q = q.Where("category_id = ?", *f.CategoryID)
	}
	if f.MinAmount != nil {
		q = q.Where("amount >= ?", *f.MinAmount)
	}
	if f.MaxAmount != nil {
		q = q.Where("amount <= ?", *f.MaxAmount)
	}
	if f.Recurring != nil {
		if *f.Recurring {
			q = q.Where("recurring_id IS NOT NULL")
		} else {
			q = q.Where("recurring_id IS NULL")
		}
	}
	return q
}

// GetTransactionByID retrieves a transaction by ID for a specific user
func (s *transactionService) GetTransactionByID(userID, transactionID string) (*models.Transaction, error) {
	var transaction models.Transaction
	if err := s.db.Where("id = ? AND user_id = ?", transactionID, userID).First(&transaction).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTransactionNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &transaction, nil
}

// UpdateTransaction edits a transaction in place. Only the id and the
// recurring back-reference are immutable, and edits do not re-run the
// spending gate: the gate protects entry into the ledger, not its later
// shape.
func (s *transactionService) UpdateTransaction(
	userID string,
	transactionID string,
	categoryID *string,
	transactionType *models.TransactionType,
	amount *int64,
	description *string,
	date *time.Time,
) (*models.Transaction, error) {
	transaction, err := s.GetTransactionByID(userID, transactionID)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if categoryID != nil {
		if _, err := s.categoryService.GetCategoryByID(userID, *categoryID); err != nil {
			return nil, err
		}
		updates["category_id"] = *categoryID
	}
	if transactionType != nil {
		if *transactionType != models.TransactionTypeIncome && *transactionType != models.TransactionTypeExpense {
			return nil, apperrors.ErrInvalidTransactionType
		}
		updates["type"] = *transactionType
	}
	if amount != nil {
		if *amount <= 0 {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be greater than zero")
		}
		updates["amount"] = *amount
	}
	if description != nil {
		updates["description"] = *description
	}
	if date != nil {
		updates["date"] = recurrence.DayOf(*date)
	}

	if len(updates) == 0 {
		return transaction, nil
	}

	if err := s.db.Model(transaction).Updates(updates).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return transaction, nil
}

// DeleteTransaction removes a transaction. Deletion is unconditional: it may
// drive the balance negative retroactively, and points earned on creation
// are not clawed back.
func (s *transactionService) DeleteTransaction(userID, transactionID string) error {
	transaction, err := s.GetTransactionByID(userID, transactionID)
	if err != nil {
		return err
	}

	if err := s.db.Delete(transaction).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// GetBalance computes the user's balance as total income minus total
// expenses, straight from the ledger.
func (s *transactionService) GetBalance(userID string) (int64, error) {
	var balance int64
	err := s.db.Model(&models.Transaction{}).
		Where("user_id = ?", userID).
		Select("COALESCE(SUM(CASE WHEN type = ? THEN amount ELSE -amount END), 0)", models.TransactionTypeIncome).
		Scan(&balance).Error
	if err != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return balance, nil
}

// HasIncome reports whether the user has ever recorded an income transaction.
func (s *transactionService) HasIncome(userID string) (bool, error) {
	var count int64
	err := s.db.Model(&models.Transaction{}).
		Where("user_id = ? AND type = ?", userID, models.TransactionTypeIncome).
		Count(&count).Error
	if err != nil {
		return false, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return count > 0, nil
}

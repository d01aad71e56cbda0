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

// recurringService handles recurring transaction schedules. It only manages
// the schedule records; materialization into the ledger is the
// materializer's job.
type recurringService struct {
	db              *gorm.DB
	categoryService CategoryServicer
}

// NewRecurringService creates a new RecurringServicer.
func NewRecurringService(db *gorm.DB, categoryService CategoryServicer) RecurringServicer {
	return &recurringService{
		db:              db,
		categoryService: categoryService,
	}
}

// CreateSchedule creates a new recurring transaction schedule.
func (s *recurringService) CreateSchedule(
	userID string,
	categoryID string,
	transactionType models.TransactionType,
	amount int64,
	description string,
	frequency models.Frequency,
	startDate time.Time,
	endDate *time.Time,
) (*models.RecurringTransaction, error) {
	// Validate input
	if amount <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be greater than zero")
	}
	if transactionType != models.TransactionTypeIncome && transactionType != models.TransactionTypeExpense {
		return nil, apperrors.ErrInvalidTransactionType
	}
	if startDate.IsZero() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "start date is required")
	}

	startDate = recurrence.DayOf(startDate)
	if endDate != nil {
		normalized := recurrence.DayOf(*endDate)
		if normalized.Before(startDate) {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "end date must not be before start date")
		}
		endDate = &normalized
	}

	// Ensure the category exists and belongs to the user
	if _, err := s.categoryService.GetCategoryByID(userID, categoryID); err != nil {
		return nil, err
	}

	schedule := &models.RecurringTransaction{
		UserID:      userID,
		CategoryID:  categoryID,
		Type:        transactionType,
		Amount:      amount,
		Description: description,
		Frequency:   frequency,
		StartDate:   startDate,
		EndDate:     endDate,
		IsActive:    true,
	}

	if err := s.db.Create(schedule).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return schedule, nil
}

// GetUserSchedules retrieves a paginated list of schedules for a user.
func (s *recurringService) GetUserSchedules(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.RecurringTransaction], error) {
	page.Defaults()

	base := s.db.Model(&models.RecurringTransaction{}).Where("user_id = ?", userID)

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var schedules []models.RecurringTransaction
	if err := base.Scopes(pagination.Paginate(page)).
		Order("created_at DESC").
		Find(&schedules).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(schedules, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetScheduleByID retrieves a schedule by ID for a specific user
func (s *recurringService) GetScheduleByID(userID, scheduleID string) (*models.RecurringTransaction, error) {
	var schedule models.RecurringTransaction
	if err := s.db.Where("id = ? AND user_id = ?", scheduleID, userID).First(&schedule).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrScheduleNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &schedule, nil
}

// UpdateSchedule edits a schedule's amount, description, or end date. The
// cadence, start date, and type are fixed at creation: changing them would
// redefine which past occurrences were due. Edits only affect occurrences
// materialized after the change.
func (s *recurringService) UpdateSchedule(
	userID string,
	scheduleID string,
	amount *int64,
	description *string,
	endDate *time.Time,
) (*models.RecurringTransaction, error) {
	schedule, err := s.GetScheduleByID(userID, scheduleID)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if amount != nil {
		if *amount <= 0 {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be greater than zero")
		}
		updates["amount"] = *amount
	}
	if description != nil {
		updates["description"] = *description
	}
	if endDate != nil {
		normalized := recurrence.DayOf(*endDate)
		if normalized.Before(recurrence.DayOf(schedule.StartDate)) {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "end date must not be before start date")
		}
		updates["end_date"] = normalized
	}

	if len(updates) == 0 {
		return schedule, nil
	}

	if err := s.db.Model(schedule).Updates(updates).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return schedule, nil
}

// SetScheduleActive pauses or resumes a schedule. Pausing does not touch
// already-materialized transactions, and resuming does not backfill the
// paused stretch: the engine resumes from the user's checkpoint.
func (s *recurringService) SetScheduleActive(userID, scheduleID string, active bool) (*models.RecurringTransaction, error) {
	schedule, err := s.GetScheduleByID(userID, scheduleID)
	if err != nil {
		return nil, err
	}

	if schedule.IsActive == active {
		return schedule, nil
	}

	if err := s.db.Model(schedule).Update("is_active", active).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	schedule.IsActive = active
	return schedule, nil
}

// DeleteSchedule removes a schedule. Transactions already materialized from
// it stay in the ledger; their recurring back-reference simply points at a
// deleted schedule.
func (s *recurringService) DeleteSchedule(userID, scheduleID string) error {
	schedule, err := s.GetScheduleByID(userID, scheduleID)
	if err != nil {
		return err
	}

	if err := s.db.Delete(schedule).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "moneta/internal/errors"
	"moneta/internal/logger"
	"moneta/internal/models"
	"moneta/internal/recurrence"
)

// materializerService turns due schedule occurrences into ledger rows. Rows
// it creates bypass the spending gate and award no points: materialization
// must be unconditional and idempotent, so it cannot depend on the balance
// at the moment the user happens to log in.
type materializerService struct {
	db    *gorm.DB
	clock recurrence.Clock
}

// NewMaterializerService creates a new MaterializerServicer driven by the
// given clock.
func NewMaterializerService(db *gorm.DB, clock recurrence.Clock) MaterializerServicer {
	if clock == nil {
		clock = recurrence.SystemClock{}
	}
	return &materializerService{db: db, clock: clock}
}

// Materialize runs the engine for one user and returns how many transactions
// were created. The staged batch and the checkpoint advance commit in a
// single database transaction; on failure the checkpoint stays put and the
// next run re-derives exactly the missing occurrences.
func (s *materializerService) Materialize(userID string) (int, error) {
	now := s.clock.Now().UTC()

	var schedules []models.RecurringTransaction
	if err := s.db.Where("user_id = ?", userID).Find(&schedules).Error; err != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var ledger []models.Transaction
	if err := s.db.Where("user_id = ? AND recurring_id IS NOT NULL", userID).
		Find(&ledger).Error; err != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	checkpoint, err := s.loadCheckpoint(userID)
	if err != nil {
		return 0, err
	}

	staged := recurrence.Plan(schedules, ledger, checkpoint.LastCheckedAt, now)

	err = s.db.Transaction(func(tx *gorm.DB) error {
		for _, occ := range staged {
			scheduleID := occ.ScheduleID
			transaction := &models.Transaction{
				UserID:      userID,
				CategoryID:  occ.CategoryID,
				Type:        occ.Type,
				Amount:      occ.Amount,
				Description: occ.Description,
				Date:        occ.Date,
				RecurringID: &scheduleID,
			}
			if err := tx.Create(transaction).Error; err != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
		}

		// The checkpoint advances even when nothing was staged, so the next
		// run fast-forwards past the stretch just examined.
		checkpoint.LastCheckedAt = now
		if err := tx.Save(checkpoint).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	if len(staged) > 0 {
		logger.Get().Infow("materialized recurring transactions",
			"user_id", userID,
			"count", len(staged),
		)
	}

	return len(staged), nil
}

func (s *materializerService) loadCheckpoint(userID string) (*models.RecurrenceCheckpoint, error) {
	var checkpoint models.RecurrenceCheckpoint
	err := s.db.Where("user_id = ?", userID).First(&checkpoint).Error
	if err == nil {
		return &checkpoint, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	// First run for this user: a zero checkpoint makes the planner walk each
	// schedule from its start date.
	return &models.RecurrenceCheckpoint{UserID: userID}, nil
}

package services

import (
	"time"

	"gorm.io/gorm"

	apperrors "moneta/internal/errors"
	"moneta/internal/models"
	"moneta/internal/recurrence"
)

// reportService answers aggregate queries over the ledger.
type reportService struct {
	db *gorm.DB
}

// NewReportService creates a new ReportServicer.
func NewReportService(db *gorm.DB) ReportServicer {
	return &reportService{db: db}
}

// GetSummary totals income and expenses over a date range, inclusive on both
// ends.
func (s *reportService) GetSummary(userID string, from, to time.Time) (*ReportSummary, error) {
	base := s.db.Model(&models.Transaction{}).Where("user_id = ?", userID)
	if !from.IsZero() {
		base = base.Where("date >= ?", recurrence.DayOf(from))
	}
	if !to.IsZero() {
		base = base.Where("date <= ?", recurrence.EndOfDay(to))
	}

	var summary ReportSummary
	err := base.Session(&gorm.Session{}).
		Where("type = ?", models.TransactionTypeIncome).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&summary.TotalIncome).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	err = base.Session(&gorm.Session{}).
		Where("type = ?", models.TransactionTypeExpense).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&summary.TotalExpenses).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	summary.Net = summary.TotalIncome - summary.TotalExpenses
	return &summary, nil
}

// GetCategoryBreakdown sums expense spending per category over a date range,
// largest first.
func (s *reportService) GetCategoryBreakdown(userID string, from, to time.Time) ([]CategoryBreakdownEntry, error) {
	q := s.db.Model(&models.Transaction{}).
		Select("transactions.category_id, categories.name AS category_name, COALESCE(SUM(transactions.amount), 0) AS total").
		Joins("JOIN categories ON categories.id = transactions.category_id").
		Where("transactions.user_id = ? AND transactions.type = ?", userID, models.TransactionTypeExpense)
	if !from.IsZero() {
		q = q.Where("transactions.date >= ?", recurrence.DayOf(from))
	}
	if !to.IsZero() {
		q = q.Where("transactions.date <= ?", recurrence.EndOfDay(to))
	}

	var entries []CategoryBreakdownEntry
	if err := q.Group("transactions.category_id, categories.name").
		Order("total DESC").
		Scan(&entries).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return entries, nil
}

package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	apperrors "moneta/internal/errors"
	"moneta/internal/models"
	"moneta/internal/oracle"
)

// insightService exposes the model-backed insight features over a user's own
// category set.
type insightService struct {
	db     *gorm.DB
	oracle oracle.Oracle
}

// NewInsightService creates a new InsightServicer. The oracle may be nil when
// no API key is configured; the endpoints then fail cleanly.
func NewInsightService(db *gorm.DB, o oracle.Oracle) InsightServicer {
	return &insightService{db: db, oracle: o}
}

// CategorizeTransaction asks the model to pick one of the user's expense
// categories for a description. Available to all users.
func (s *insightService) CategorizeTransaction(ctx context.Context, userID, description string) (oracle.CategorySuggestion, error) {
	if description == "" {
		return oracle.CategorySuggestion{}, apperrors.WithMessage(apperrors.ErrInvalidInput, "description is required")
	}
	if s.oracle == nil {
		return oracle.CategorySuggestion{}, apperrors.WithMessage(apperrors.ErrInternalServer, "AI features are not configured")
	}

	names, err := s.categoryNames(userID, models.CategoryTypeExpense)
	if err != nil {
		return oracle.CategorySuggestion{}, err
	}

	suggestion, err := s.oracle.Categorize(ctx, description, names)
	if err != nil {
		return oracle.CategorySuggestion{}, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return suggestion, nil
}

// ScanReceipt extracts merchant, total, and date from a receipt image.
// Premium only.
func (s *insightService) ScanReceipt(ctx context.Context, userID string, image []byte, mimeType string) (oracle.ReceiptScan, error) {
	if len(image) == 0 {
		return oracle.ReceiptScan{}, apperrors.WithMessage(apperrors.ErrInvalidInput, "image is required")
	}

	var user models.User
	if err := s.db.Select("is_premium").Where("id = ?", userID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return oracle.ReceiptScan{}, apperrors.ErrUserNotFound
		}
		return oracle.ReceiptScan{}, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if !user.IsPremium {
		return oracle.ReceiptScan{}, apperrors.ErrPremiumRequired
	}

	if s.oracle == nil {
		return oracle.ReceiptScan{}, apperrors.WithMessage(apperrors.ErrInternalServer, "AI features are not configured")
	}

	scan, err := s.oracle.ScanReceipt(ctx, image, mimeType)
	if err != nil {
		return oracle.ReceiptScan{}, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return scan, nil
}

func (s *insightService) categoryNames(userID string, categoryType models.CategoryType) ([]string, error) {
	var names []string
	err := s.db.Model(&models.Category{}).
		Where("user_id = ? AND type = ?", userID, categoryType).
		Order("name ASC").
		Pluck("name", &names).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return names, nil
}

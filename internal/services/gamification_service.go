package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "moneta/internal/errors"
	"moneta/internal/models"
)

// GamifiedAction is a user milestone that earns points.
type GamifiedAction string

const (
	ActionAddTransaction GamifiedAction = "add_transaction"
	ActionCreateGoal     GamifiedAction = "create_goal"
	ActionCompleteGoal   GamifiedAction = "complete_goal"
)

// actionPoints maps each milestone to its award. Points accumulate and never
// decay; deleting the underlying record does not claw them back.
var actionPoints = map[GamifiedAction]int64{
	ActionAddTransaction: 10,
	ActionCreateGoal:     25,
	ActionCompleteGoal:   100,
}

// gamificationService handles point awards.
type gamificationService struct {
	db *gorm.DB
}

// NewGamificationService creates a new GamificationServicer.
func NewGamificationService(db *gorm.DB) GamificationServicer {
	return &gamificationService{db: db}
}

// Award credits the points for an action to the user's balance. Unknown
// actions award nothing. Pass the enclosing transaction handle so the credit
// commits or rolls back with the operation that earned it.
func (s *gamificationService) Award(tx *gorm.DB, userID string, action GamifiedAction) error {
	points, ok := actionPoints[action]
	if !ok {
		return nil
	}
	if tx == nil {
		tx = s.db
	}

	result := tx.Model(&models.User{}).
		Where("id = ?", userID).
		Update("points", gorm.Expr("points + ?", points))
	if result.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}

// GetPoints returns the user's current point balance.
func (s *gamificationService) GetPoints(userID string) (int64, error) {
	var user models.User
	if err := s.db.Select("points").Where("id = ?", userID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, apperrors.ErrUserNotFound
		}
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return user.Points, nil
}

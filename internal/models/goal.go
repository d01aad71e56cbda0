package models

import "time"

// Goal represents a savings goal. IsCompleted flips exactly when SavedAmount
// reaches TargetAmount; CompletedAt is set at the first crossing and never
// overwritten. Plan holds AI-generated budget plan text.
type Goal struct {
	Base
	UserID       string     `gorm:"type:uuid;not null;index" json:"user_id"`
	Name         string     `gorm:"not null" json:"name"`
	TargetAmount int64      `gorm:"type:bigint;not null" json:"target_amount"`
	SavedAmount  int64      `gorm:"type:bigint;default:0" json:"saved_amount"`
	IsCompleted  bool       `gorm:"default:false" json:"is_completed"`
	CompletedAt  *time.Time `json:"completed_at,omitempty"`
	Plan         string     `json:"plan,omitempty"`
}

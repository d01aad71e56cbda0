package models

// Budget is a monthly spending limit for one category. A user may hold at
// most one budget per category.
type Budget struct {
	Base
	UserID     string `gorm:"type:uuid;not null;index" json:"user_id"`
	CategoryID string `gorm:"type:uuid;not null" json:"category_id"`
	Amount     int64  `gorm:"type:bigint;not null" json:"amount"`

	// Relationships
	Category Category `gorm:"foreignKey:CategoryID" json:"category"`
}

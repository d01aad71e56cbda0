package models

import "time"

// Frequency is the cadence of a recurring transaction.
type Frequency string

const (
	FrequencyDaily   Frequency = "daily"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
	FrequencyYearly  Frequency = "yearly"
)

// RecurringTransaction is a schedule template. The recurrence engine reads
// schedules and materializes concrete transactions from them; only explicit
// user actions (create, toggle, delete) ever mutate a schedule. EndDate is
// inclusive: an occurrence due exactly on EndDate still counts.
type RecurringTransaction struct {
	Base
	UserID      string          `gorm:"type:uuid;not null;index" json:"user_id"`
	CategoryID  string          `gorm:"type:uuid;not null" json:"category_id"`
	Type        TransactionType `gorm:"not null" json:"type"`
	Amount      int64           `gorm:"type:bigint;not null" json:"amount"`
	Description string          `json:"description"`
	Frequency   Frequency       `gorm:"not null" json:"frequency"`
	StartDate   time.Time       `gorm:"not null" json:"start_date"`
	EndDate     *time.Time      `json:"end_date,omitempty"`
	IsActive    bool            `gorm:"default:true" json:"is_active"`

	// Relationships
	Category Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}

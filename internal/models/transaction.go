package models

import "time"

// TransactionType represents the type of transaction
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// Transaction represents a single ledger entry. Date carries only a calendar
// day (UTC midnight). RecurringID back-references the schedule that
// materialized this entry and is the dedup key for the recurrence engine;
// it is never changed after creation.
type Transaction struct {
	Base
	UserID      string          `gorm:"type:uuid;not null;index" json:"user_id"`
	CategoryID  string          `gorm:"type:uuid;not null" json:"category_id"`
	Type        TransactionType `gorm:"not null" json:"type"`
	Amount      int64           `gorm:"type:bigint;not null" json:"amount"`
	Description string          `json:"description"`
	Date        time.Time       `gorm:"not null" json:"date"`
	RecurringID *string         `gorm:"type:uuid;index" json:"recurring_id,omitempty"`

	// Relationships
	Category Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}

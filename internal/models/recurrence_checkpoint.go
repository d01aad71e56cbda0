package models

import "time"

// RecurrenceCheckpoint marks how far the recurrence engine has processed a
// user's schedules. It advances monotonically to "now" at the end of every
// successful run, and only bounds the engine's iteration: the authoritative
// duplicate guard is the ledger itself.
type RecurrenceCheckpoint struct {
	Base
	UserID        string    `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	LastCheckedAt time.Time `gorm:"not null" json:"last_checked_at"`
}

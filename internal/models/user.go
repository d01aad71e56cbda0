package models

import "time"

// User represents the user model in the database.
// IsPremium and Points make up the user's wallet state; points are
// awarded additively by the gamification service and never decay.
type User struct {
	Base
	Email            string     `gorm:"uniqueIndex;not null" json:"email"`
	Password         string     `gorm:"not null" json:"-"`
	FirstName        string     `json:"first_name"`
	LastName         string     `json:"last_name"`
	IsActive         bool       `gorm:"default:true" json:"is_active"`
	IsPremium        bool       `gorm:"default:false" json:"is_premium"`
	Points           int64      `gorm:"default:0" json:"points"`
	RefreshTokenHash string     `gorm:"size:64" json:"-"`
	LastLoginAt      *time.Time `json:"last_login_at,omitempty"`

	Categories   []Category             `gorm:"foreignKey:UserID" json:"categories,omitempty"`
	Transactions []Transaction          `gorm:"foreignKey:UserID" json:"transactions,omitempty"`
	Schedules    []RecurringTransaction `gorm:"foreignKey:UserID" json:"schedules,omitempty"`
	Goals        []Goal                 `gorm:"foreignKey:UserID" json:"goals,omitempty"`
	Budgets      []Budget               `gorm:"foreignKey:UserID" json:"budgets,omitempty"`
}

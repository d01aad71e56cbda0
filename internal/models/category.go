package models

// CategoryType represents the type of category
type CategoryType string

const (
	CategoryTypeIncome  CategoryType = "income"
	CategoryTypeExpense CategoryType = "expense"
)

// Reserved category names. "Savings" receives goal-funding expenses and
// "Other" absorbs transactions whose category is deleted; neither may be
// renamed or removed.
const (
	CategorySavings = "Savings"
	CategoryOther   = "Other"
)

// DefaultCategories is the set seeded for every new user.
var DefaultCategories = []struct {
	Name string
	Type CategoryType
}{
	{"Groceries", CategoryTypeExpense},
	{"Utilities", CategoryTypeExpense},
	{"Rent/Mortgage", CategoryTypeExpense},
	{"Transportation", CategoryTypeExpense},
	{"Entertainment", CategoryTypeExpense},
	{"Dining Out", CategoryTypeExpense},
	{"Shopping", CategoryTypeExpense},
	{"Healthcare", CategoryTypeExpense},
	{"Salary", CategoryTypeIncome},
	{"Investment", CategoryTypeIncome},
	{CategorySavings, CategoryTypeExpense},
	{CategoryOther, CategoryTypeExpense},
}

// Category represents a transaction category. Transactions, schedules, and
// budgets reference categories by ID; the name is purely presentational, so
// renames need no cascade.
type Category struct {
	Base
	UserID     string       `gorm:"type:uuid;not null;index" json:"user_id"`
	Name       string       `gorm:"not null" json:"name"`
	Type       CategoryType `gorm:"not null" json:"type"`
	IsReserved bool         `gorm:"default:false" json:"is_reserved"`

	// Relationships
	Transactions []Transaction `gorm:"foreignKey:CategoryID" json:"transactions,omitempty"`
	Budgets      []Budget      `gorm:"foreignKey:CategoryID" json:"budgets,omitempty"`
}

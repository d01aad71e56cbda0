// Package oracle provides AI-assisted insights: transaction categorization,
// receipt scanning, savings goal suggestions, and budget plan generation.
// Implementations talk to a model; callers depend only on the interface so
// tests can substitute a stub.
package oracle

import (
	"context"
	"time"
)

// CategorySuggestion is the model's pick for a transaction description, with
// a confidence in [0, 1]. Category falls back to "Other" with zero confidence
// when the model's answer is unusable.
type CategorySuggestion struct {
	Category   string  `json:"category"`
	Confidence float64 `json:"confidence"`
}

// ReceiptScan holds the fields extracted from a receipt image. Total is in
// cents.
type ReceiptScan struct {
	Merchant string    `json:"merchant"`
	Total    int64     `json:"total"`
	Date     time.Time `json:"date"`
}

// GoalSuggestion is one proposed savings goal. TargetAmount is in cents.
type GoalSuggestion struct {
	Name         string `json:"name"`
	TargetAmount int64  `json:"target_amount"`
}

// FinancialSummary condenses a user's position for goal suggestions. Amounts
// are in cents.
type FinancialSummary struct {
	Income   int64
	Expenses int64
	Balance  int64
}

// ExpenseLine is one recent expense fed into budget plan generation.
type ExpenseLine struct {
	Description string
	Amount      int64
	Category    string
}

// BudgetPlanRequest carries everything the model needs to draft a plan for a
// goal. PreviousPlan, when set, asks the model to comment on progress and
// adjust rather than start over.
type BudgetPlanRequest struct {
	GoalName       string
	TargetAmount   int64
	SavedAmount    int64
	Balance        int64
	RecentExpenses []ExpenseLine
	PreviousPlan   string
}

// Oracle is the model-backed insight provider.
type Oracle interface {
	Categorize(ctx context.Context, description string, categories []string) (CategorySuggestion, error)
	ScanReceipt(ctx context.Context, image []byte, mimeType string) (ReceiptScan, error)
	SuggestGoals(ctx context.Context, summary FinancialSummary) ([]GoalSuggestion, error)
	GenerateBudgetPlan(ctx context.Context, req BudgetPlanRequest) (string, error)
}

package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type ExpenseDriver struct {
	Name   string          `json:"name"`
	Vendor string          `json:"vendor"`
	Amount decimal.Decimal `json:"amount"`
	Note   string          `json:"note"`
}

// ExpenseAlert is one category's budget-variance situation for the current
// period. ActualAmount is constructed from the budget and variance percent;
// the two amounts are never derived back from each other.
type ExpenseAlert struct {
	ID              string          `json:"id"`
	CategoryId      string          `json:"category_id"`
	Category        string          `json:"category"`
	Severity        Severity        `json:"severity"`
	BudgetAmount    decimal.Decimal `json:"budget_amount"`
	ActualAmount    decimal.Decimal `json:"actual_amount"`
	VariancePercent int             `json:"variance_percent"`
	Period          string          `json:"period"`
	Drivers         []ExpenseDriver `json:"drivers"`
	Notes           string          `json:"notes"`
	CreatedAt       time.Time       `json:"created_at"`

	HandledAt     *time.Time `json:"handled_at"`
	SnoozedUntil  *time.Time `json:"snoozed_until"`
	DismissedAt   *time.Time `json:"dismissed_at"`
	DismissReason string     `json:"dismiss_reason,omitempty"`
}

type ExpenseCategory struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	BudgetAmount decimal.Decimal `json:"budget_amount"`
}

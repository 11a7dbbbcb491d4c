package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice belongs to exactly one AR alert and is immutable once generated.
type Invoice struct {
	ID          string          `json:"id"`
	Number      string          `json:"number"`
	Date        time.Time       `json:"date"`
	DueDate     time.Time       `json:"due_date"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	PaymentUrl  string          `json:"payment_url"`
}

package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ARAlert is one client's outstanding-receivable situation at generation time.
// Lifecycle fields (HandledAt/SnoozedUntil/DismissedAt) stay nil until the
// action log is projected onto the alert.
type ARAlert struct {
	ID            string          `json:"id"`
	ClientId      string          `json:"client_id"`
	ClientName    string          `json:"client_name"`
	Severity      Severity        `json:"severity"`
	OverdueAmount decimal.Decimal `json:"overdue_amount"`
	DaysOverdue   int             `json:"days_overdue"`
	AgingBucket   int             `json:"aging_bucket"`
	ClientStatus  ClientStatus    `json:"client_status"`
	Contacts      ClientContacts  `json:"contacts"`
	Invoices      []Invoice       `json:"invoices"`
	Notes         string          `json:"notes"`
	CreatedAt     time.Time       `json:"created_at"`

	HandledAt     *time.Time `json:"handled_at"`
	SnoozedUntil  *time.Time `json:"snoozed_until"`
	DismissedAt   *time.Time `json:"dismissed_at"`
	DismissReason string     `json:"dismiss_reason,omitempty"`

	ScheduledReminders []Reminder `json:"scheduled_reminders"`
	SentReminders      []Reminder `json:"sent_reminders"`

	PartnerName string `json:"partner_name"`
	ClientUrl   string `json:"client_url"`
}

package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Reminder is an automated follow-up derived from an AR alert's aging and the
// client's automation status. Subject/body are empty until preview/send time.
type Reminder struct {
	ID               string         `json:"id"`
	AlertId          string         `json:"alert_id"`
	ClientId         string         `json:"client_id"`
	Status           ReminderStatus `json:"status"`
	ScheduledDate    time.Time      `json:"scheduled_date"`
	TriggerDays      int            `json:"trigger_days"`
	Tone             ReminderTone   `json:"tone"`
	RecipientEmail   string         `json:"recipient_email"`
	RecipientName    string         `json:"recipient_name"`
	CcEscalation     bool           `json:"cc_escalation"`
	RequiresApproval bool           `json:"requires_approval"`
	ApprovedBy       string         `json:"approved_by,omitempty"`
	ApprovedAt       *time.Time     `json:"approved_at"`
	SentAt           *time.Time     `json:"sent_at"`
	Subject          string         `json:"subject"`
	Body             string         `json:"body"`
}

// PendingApproval is a reminder enriched with the alert fields the approval
// queue displays.
type PendingApproval struct {
	Reminder
	ClientName    string          `json:"client_name"`
	OverdueAmount decimal.Decimal `json:"overdue_amount"`
	DaysOverdue   int             `json:"days_overdue"`
	ClientStatus  ClientStatus    `json:"client_status"`
	PartnerName   string          `json:"partner_name"`
}

type ReminderApproval struct {
	ApprovedBy string    `json:"approved_by"`
	ApprovedAt time.Time `json:"approved_at"`
}

type ReminderSent struct {
	SentAt time.Time `json:"sent_at"`
}

package models

import "errors"

type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityWarning  Severity = "warning"
	SeverityInfo     Severity = "info"
)

type AlertType string

const (
	AlertTypeAR      AlertType = "ar"
	AlertTypeExpense AlertType = "expense"
)

// ClientStatus controls whether/how aggressively automated reminders fire.
type ClientStatus string

const (
	ClientStatusNormal ClientStatus = "normal"
	// ClientStatusSlowPayer gets an extended timeline before escalation.
	ClientStatusSlowPayer ClientStatus = "slow_payer"
	// ClientStatusPaymentArrangement is handled manually, no automation.
	ClientStatusPaymentArrangement ClientStatus = "payment_arrangement"
	// ClientStatusSensitive requires partner approval for all communications.
	ClientStatusSensitive ClientStatus = "sensitive"
	// ClientStatusDisputed holds all automation.
	ClientStatusDisputed ClientStatus = "disputed"
)

func ParseClientStatus(s string) (ClientStatus, error) {
	switch ClientStatus(s) {
	case ClientStatusNormal, ClientStatusSlowPayer, ClientStatusPaymentArrangement,
		ClientStatusSensitive, ClientStatusDisputed:
		return ClientStatus(s), nil
	}
	return "", errors.New("invalid client status")
}

// AutomationSuppressed reports whether no reminders may be generated for
// clients in this status, regardless of aging.
func (s ClientStatus) AutomationSuppressed() bool {
	return s == ClientStatusPaymentArrangement || s == ClientStatusDisputed
}

type ReminderStatus string

const (
	ReminderStatusPending          ReminderStatus = "pending"
	ReminderStatusAwaitingApproval ReminderStatus = "awaiting_approval"
	ReminderStatusApproved         ReminderStatus = "approved"
	ReminderStatusSent             ReminderStatus = "sent"
	ReminderStatusCancelled        ReminderStatus = "cancelled"
)

type ReminderTone string

const (
	ReminderToneFriendly     ReminderTone = "friendly"
	ReminderToneProfessional ReminderTone = "professional"
	ReminderToneFirm         ReminderTone = "firm"
)

type ActionKind string

const (
	ActionHandled   ActionKind = "handled"
	ActionSnoozed   ActionKind = "snoozed"
	ActionDismissed ActionKind = "dismissed"
)

// Reminder trigger points (days overdue) for normal automation.
const (
	TriggerInitial      = 60
	TriggerEscalation   = 90
	TriggerPartnerAlert = 120
)

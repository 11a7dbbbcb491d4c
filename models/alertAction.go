package models

import "time"

// AlertAction is an append-only fact. Entries are never edited or removed
// individually; only the most recent entry per (AlertId, AlertType) governs
// the alert's effective state.
type AlertAction struct {
	AlertId       string     `json:"alert_id"`
	AlertType     AlertType  `json:"alert_type"`
	Action        ActionKind `json:"action"`
	Note          string     `json:"note,omitempty"`
	SnoozeDays    int        `json:"snooze_days,omitempty"`
	DismissReason string     `json:"dismiss_reason,omitempty"`
	Timestamp     time.Time  `json:"timestamp"`
}

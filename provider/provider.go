// Package provider exposes the data-provider capability the UI layer talks
// to. One concrete implementation exists (LocalProvider, over the key-value
// store and the deterministic generators); a future ERP-backed provider would
// implement the same interface.
package provider

import (
	"context"
	"time"

	"bitbucket.org/mmdatafocus/alerts_backend/models"
)

// RuleChanges is a partial update. Enabled toggles any rule; the content
// fields apply to custom rules only.
type RuleChanges struct {
	Enabled     *bool
	Name        string
	Description string
}

// DraftOptions tune reminder preview rendering.
type DraftOptions struct {
	FromBillingCommittee bool
}

// Provider is the capability surface consumed by the HTTP layer. Every
// operation takes now explicitly so reads are reproducible and testable.
type Provider interface {
	GetARAlerts(ctx context.Context, now time.Time) ([]models.ARAlert, error)
	GetARAlertDetail(ctx context.Context, id string, now time.Time) (models.ARAlert, error)
	GetExpenseAlerts(ctx context.Context, now time.Time) ([]models.ExpenseAlert, error)
	GetExpenseAlertDetail(ctx context.Context, id string, now time.Time) (models.ExpenseAlert, error)

	MarkAlertHandled(ctx context.Context, id string, alertType models.AlertType, note string, now time.Time) error
	SnoozeAlert(ctx context.Context, id string, alertType models.AlertType, days int, now time.Time) error
	DismissAlert(ctx context.Context, id string, alertType models.AlertType, reason string, now time.Time) error

	GetAlertRules(ctx context.Context, now time.Time) ([]models.AlertRule, error)
	CreateAlertRule(ctx context.Context, rule models.AlertRule, now time.Time) (models.AlertRule, error)
	UpdateAlertRule(ctx context.Context, id string, changes RuleChanges) error
	DeleteAlertRule(ctx context.Context, id string) error

	GetPendingApprovals(ctx context.Context, now time.Time) ([]models.PendingApproval, error)
	ApproveReminder(ctx context.Context, reminderId, approvedBy string, now time.Time) error
	CancelReminder(ctx context.Context, reminderId string, now time.Time) error
	MarkReminderSent(ctx context.Context, reminderId string, now time.Time) error
	GetReminderDraft(ctx context.Context, reminderId string, opts DraftOptions, now time.Time) (subject, body string, err error)

	GetClientStatuses(ctx context.Context) (map[string]models.ClientStatus, error)
	UpdateClientStatus(ctx context.Context, clientId string, status models.ClientStatus) error

	GetARAgingSummary(ctx context.Context, now time.Time) (models.AgingSummary, error)

	ResetAllData(ctx context.Context) error
}

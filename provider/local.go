package provider

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"bitbucket.org/mmdatafocus/alerts_backend/config"
	"bitbucket.org/mmdatafocus/alerts_backend/drafts"
	"bitbucket.org/mmdatafocus/alerts_backend/models"
	"bitbucket.org/mmdatafocus/alerts_backend/store"
	"bitbucket.org/mmdatafocus/alerts_backend/utils"
	"bitbucket.org/mmdatafocus/alerts_backend/workflow"
)

// LocalProvider serves alerts by regenerating the fact set on every read and
// reconciling it against the persisted logs. It owns no alert state of its
// own; everything durable lives in the Store.
type LocalProvider struct {
	store    store.Store
	renderer drafts.Renderer
	logger   *logrus.Logger
	firmName string
}

func NewLocalProvider(s store.Store, renderer drafts.Renderer, logger *logrus.Logger) *LocalProvider {
	return &LocalProvider{
		store:    s,
		renderer: renderer,
		logger:   logger,
		firmName: config.FirmName(),
	}
}

// ---- store reads ----

func (p *LocalProvider) loadActions(ctx context.Context) ([]models.AlertAction, error) {
	return store.GetObject[[]models.AlertAction](ctx, p.store, store.KeyAlertActions)
}

func (p *LocalProvider) loadStatusOverrides(ctx context.Context) (map[string]models.ClientStatus, error) {
	return store.GetObject[map[string]models.ClientStatus](ctx, p.store, store.KeyClientStatuses)
}

func (p *LocalProvider) loadApprovals(ctx context.Context) (map[string]models.ReminderApproval, error) {
	return store.GetObject[map[string]models.ReminderApproval](ctx, p.store, store.KeyReminderApprovals)
}

func (p *LocalProvider) loadCancellations(ctx context.Context) ([]string, error) {
	return store.GetObject[[]string](ctx, p.store, store.KeyReminderCancellations)
}

func (p *LocalProvider) loadSent(ctx context.Context) (map[string]models.ReminderSent, error) {
	return store.GetObject[map[string]models.ReminderSent](ctx, p.store, store.KeySentReminders)
}

// reminderLogs bundles the three reminder reconciliation namespaces.
type reminderLogs struct {
	approvals     map[string]models.ReminderApproval
	cancellations map[string]bool
	sent          map[string]models.ReminderSent
}

func (p *LocalProvider) loadReminderLogs(ctx context.Context) (reminderLogs, error) {
	approvals, err := p.loadApprovals(ctx)
	if err != nil {
		return reminderLogs{}, err
	}
	cancelled, err := p.loadCancellations(ctx)
	if err != nil {
		return reminderLogs{}, err
	}
	sent, err := p.loadSent(ctx)
	if err != nil {
		return reminderLogs{}, err
	}
	cancelledSet := make(map[string]bool, len(cancelled))
	for _, id := range cancelled {
		cancelledSet[id] = true
	}
	return reminderLogs{approvals: approvals, cancellations: cancelledSet, sent: sent}, nil
}

// overlayReminder applies the persisted approval/cancellation/sent logs onto
// a generated reminder. Sent wins over cancelled wins over approved.
func overlayReminder(rem models.Reminder, logs reminderLogs) models.Reminder {
	if record, ok := logs.sent[rem.ID]; ok {
		rem.Status = models.ReminderStatusSent
		sentAt := record.SentAt
		rem.SentAt = &sentAt
		return rem
	}
	if logs.cancellations[rem.ID] {
		rem.Status = models.ReminderStatusCancelled
		return rem
	}
	if approval, ok := logs.approvals[rem.ID]; ok {
		rem.Status = models.ReminderStatusApproved
		rem.ApprovedBy = approval.ApprovedBy
		approvedAt := approval.ApprovedAt
		rem.ApprovedAt = &approvedAt
	}
	return rem
}

// generateAR produces the reconciled (but unfiltered) AR alert set.
func (p *LocalProvider) generateAR(ctx context.Context, now time.Time) ([]models.ARAlert, error) {
	overrides, err := p.loadStatusOverrides(ctx)
	if err != nil {
		return nil, err
	}
	actions, err := p.loadActions(ctx)
	if err != nil {
		return nil, err
	}
	logs, err := p.loadReminderLogs(ctx)
	if err != nil {
		return nil, err
	}

	facts := workflow.GenerateARAlerts(now, overrides)
	for i := range facts {
		for j, rem := range facts[i].ScheduledReminders {
			facts[i].ScheduledReminders[j] = overlayReminder(rem, logs)
		}
	}
	return workflow.ProjectARAlerts(facts, actions, now), nil
}

func (p *LocalProvider) generateExpense(ctx context.Context, now time.Time) ([]models.ExpenseAlert, error) {
	actions, err := p.loadActions(ctx)
	if err != nil {
		return nil, err
	}
	facts := workflow.GenerateExpenseAlerts(now)
	return workflow.ProjectExpenseAlerts(facts, actions, now), nil
}

// ---- alerts ----

func (p *LocalProvider) GetARAlerts(ctx context.Context, now time.Time) ([]models.ARAlert, error) {
	alerts, err := p.generateAR(ctx, now)
	if err != nil {
		return nil, err
	}
	return workflow.FilterActiveAR(alerts), nil
}

func (p *LocalProvider) GetARAlertDetail(ctx context.Context, id string, now time.Time) (models.ARAlert, error) {
	alerts, err := p.generateAR(ctx, now)
	if err != nil {
		return models.ARAlert{}, err
	}
	for _, alert := range alerts {
		if alert.ID == id {
			return alert, nil
		}
	}
	return models.ARAlert{}, utils.ErrorRecordNotFound
}

func (p *LocalProvider) GetExpenseAlerts(ctx context.Context, now time.Time) ([]models.ExpenseAlert, error) {
	alerts, err := p.generateExpense(ctx, now)
	if err != nil {
		return nil, err
	}
	return workflow.FilterActiveExpense(alerts), nil
}

func (p *LocalProvider) GetExpenseAlertDetail(ctx context.Context, id string, now time.Time) (models.ExpenseAlert, error) {
	alerts, err := p.generateExpense(ctx, now)
	if err != nil {
		return models.ExpenseAlert{}, err
	}
	for _, alert := range alerts {
		if alert.ID == id {
			return alert, nil
		}
	}
	return models.ExpenseAlert{}, utils.ErrorRecordNotFound
}

// ---- alert actions ----

// appendAction does not validate the alert id against the current fact set;
// entries for unknown ids are simply never matched by the projector.
func (p *LocalProvider) appendAction(ctx context.Context, entry models.AlertAction) error {
	return store.AppendToList(ctx, p.store, store.KeyAlertActions, entry)
}

func (p *LocalProvider) MarkAlertHandled(ctx context.Context, id string, alertType models.AlertType, note string, now time.Time) error {
	return p.appendAction(ctx, models.AlertAction{
		AlertId: id, AlertType: alertType, Action: models.ActionHandled,
		Note: note, Timestamp: now,
	})
}

func (p *LocalProvider) SnoozeAlert(ctx context.Context, id string, alertType models.AlertType, days int, now time.Time) error {
	return p.appendAction(ctx, models.AlertAction{
		AlertId: id, AlertType: alertType, Action: models.ActionSnoozed,
		SnoozeDays: days, Timestamp: now,
	})
}

func (p *LocalProvider) DismissAlert(ctx context.Context, id string, alertType models.AlertType, reason string, now time.Time) error {
	return p.appendAction(ctx, models.AlertAction{
		AlertId: id, AlertType: alertType, Action: models.ActionDismissed,
		DismissReason: reason, Timestamp: now,
	})
}

// ---- rules ----

func (p *LocalProvider) loadCustomRules(ctx context.Context) ([]models.AlertRule, error) {
	return store.GetObject[[]models.AlertRule](ctx, p.store, store.KeyCustomRules)
}

func (p *LocalProvider) GetAlertRules(ctx context.Context, now time.Time) ([]models.AlertRule, error) {
	custom, err := p.loadCustomRules(ctx)
	if err != nil {
		return nil, err
	}
	toggles, err := store.GetObject[map[string]bool](ctx, p.store, store.KeyRuleToggles)
	if err != nil {
		return nil, err
	}
	return workflow.MergeRules(workflow.BuiltinRules(now), custom, toggles), nil
}

func (p *LocalProvider) CreateAlertRule(ctx context.Context, rule models.AlertRule, now time.Time) (models.AlertRule, error) {
	rule.ID = workflow.CustomRuleId(uuid.NewString())
	rule.CreatedAt = now
	rule.Enabled = true
	if err := store.AppendToList(ctx, p.store, store.KeyCustomRules, rule); err != nil {
		return models.AlertRule{}, err
	}
	return rule, nil
}

func (p *LocalProvider) UpdateAlertRule(ctx context.Context, id string, changes RuleChanges) error {
	if changes.Enabled != nil {
		err := p.store.Update(ctx, store.KeyRuleToggles, func(current []byte) ([]byte, error) {
			toggles := map[string]bool{}
			if len(current) > 0 {
				if err := utils.UnmarshalFromJSON(current, &toggles); err != nil {
					return nil, err
				}
			}
			toggles[id] = *changes.Enabled
			return utils.MarshalToJSON(toggles)
		})
		if err != nil {
			return err
		}
	}

	if changes.Name == "" && changes.Description == "" {
		return nil
	}
	// Content updates apply to custom rules only; built-in content is fixed.
	return p.store.Update(ctx, store.KeyCustomRules, func(current []byte) ([]byte, error) {
		var custom []models.AlertRule
		if len(current) > 0 {
			if err := utils.UnmarshalFromJSON(current, &custom); err != nil {
				return nil, err
			}
		}
		for i := range custom {
			if custom[i].ID != id {
				continue
			}
			if changes.Name != "" {
				custom[i].Name = changes.Name
			}
			if changes.Description != "" {
				custom[i].Description = changes.Description
			}
		}
		return utils.MarshalToJSON(custom)
	})
}

func (p *LocalProvider) DeleteAlertRule(ctx context.Context, id string) error {
	if workflow.IsBuiltinRuleId(id) {
		return utils.ErrorNotDeletable
	}

	found := false
	err := p.store.Update(ctx, store.KeyCustomRules, func(current []byte) ([]byte, error) {
		var custom []models.AlertRule
		if len(current) > 0 {
			if err := utils.UnmarshalFromJSON(current, &custom); err != nil {
				return nil, err
			}
		}
		kept := custom[:0]
		for _, rule := range custom {
			if rule.ID == id {
				found = true
				continue
			}
			kept = append(kept, rule)
		}
		return utils.MarshalToJSON(kept)
	})
	if err != nil {
		return err
	}
	if !found {
		return utils.ErrorRecordNotFound
	}
	return nil
}

// ---- reminders ----

func (p *LocalProvider) findReminder(ctx context.Context, reminderId string, now time.Time) (models.Reminder, models.ARAlert, error) {
	alerts, err := p.generateAR(ctx, now)
	if err != nil {
		return models.Reminder{}, models.ARAlert{}, err
	}
	for _, alert := range alerts {
		for _, rem := range alert.ScheduledReminders {
			if rem.ID == reminderId {
				return rem, alert, nil
			}
		}
	}
	return models.Reminder{}, models.ARAlert{}, utils.ErrorRecordNotFound
}

func (p *LocalProvider) GetPendingApprovals(ctx context.Context, now time.Time) ([]models.PendingApproval, error) {
	alerts, err := p.generateAR(ctx, now)
	if err != nil {
		return nil, err
	}

	var pending []models.PendingApproval
	for _, alert := range alerts {
		for _, rem := range alert.ScheduledReminders {
			if !rem.RequiresApproval || rem.Status != models.ReminderStatusAwaitingApproval {
				continue
			}
			pending = append(pending, models.PendingApproval{
				Reminder:      rem,
				ClientName:    alert.ClientName,
				OverdueAmount: alert.OverdueAmount,
				DaysOverdue:   alert.DaysOverdue,
				ClientStatus:  alert.ClientStatus,
				PartnerName:   alert.PartnerName,
			})
		}
	}
	return pending, nil
}

func (p *LocalProvider) ApproveReminder(ctx context.Context, reminderId, approvedBy string, now time.Time) error {
	rem, _, err := p.findReminder(ctx, reminderId, now)
	if err != nil {
		return err
	}
	switch rem.Status {
	case models.ReminderStatusSent:
		return utils.ErrorAlreadySent
	case models.ReminderStatusCancelled:
		return utils.ErrorAlreadyHandled
	}

	return p.store.Update(ctx, store.KeyReminderApprovals, func(current []byte) ([]byte, error) {
		approvals := map[string]models.ReminderApproval{}
		if len(current) > 0 {
			if err := utils.UnmarshalFromJSON(current, &approvals); err != nil {
				return nil, err
			}
		}
		approvals[reminderId] = models.ReminderApproval{ApprovedBy: approvedBy, ApprovedAt: now}
		return utils.MarshalToJSON(approvals)
	})
}

func (p *LocalProvider) CancelReminder(ctx context.Context, reminderId string, now time.Time) error {
	rem, _, err := p.findReminder(ctx, reminderId, now)
	if err != nil {
		return err
	}
	if rem.Status == models.ReminderStatusSent {
		return utils.ErrorAlreadySent
	}

	return p.store.Update(ctx, store.KeyReminderCancellations, func(current []byte) ([]byte, error) {
		var cancelled []string
		if len(current) > 0 {
			if err := utils.UnmarshalFromJSON(current, &cancelled); err != nil {
				return nil, err
			}
		}
		for _, id := range cancelled {
			if id == reminderId {
				return utils.MarshalToJSON(cancelled)
			}
		}
		cancelled = append(cancelled, reminderId)
		return utils.MarshalToJSON(cancelled)
	})
}

func (p *LocalProvider) MarkReminderSent(ctx context.Context, reminderId string, now time.Time) error {
	rem, _, err := p.findReminder(ctx, reminderId, now)
	if err != nil {
		return err
	}
	switch {
	case rem.Status == models.ReminderStatusSent:
		return utils.ErrorAlreadySent
	case rem.Status == models.ReminderStatusCancelled:
		return utils.ErrorAlreadyHandled
	case rem.RequiresApproval && rem.Status != models.ReminderStatusApproved:
		return utils.ErrorInvalidStatus
	}

	return p.store.Update(ctx, store.KeySentReminders, func(current []byte) ([]byte, error) {
		sent := map[string]models.ReminderSent{}
		if len(current) > 0 {
			if err := utils.UnmarshalFromJSON(current, &sent); err != nil {
				return nil, err
			}
		}
		sent[reminderId] = models.ReminderSent{SentAt: now}
		return utils.MarshalToJSON(sent)
	})
}

func (p *LocalProvider) GetReminderDraft(ctx context.Context, reminderId string, opts DraftOptions, now time.Time) (string, string, error) {
	rem, alert, err := p.findReminder(ctx, reminderId, now)
	if err != nil {
		return "", "", err
	}

	escalationName := ""
	if alert.Contacts.Escalation != nil {
		escalationName = alert.Contacts.Escalation.Name
	}
	return p.renderer.Render(ctx, drafts.Request{
		Tone:                 rem.Tone,
		TriggerDays:          rem.TriggerDays,
		ClientName:           alert.ClientName,
		ContactName:          rem.RecipientName,
		OverdueAmount:        alert.OverdueAmount,
		DaysOverdue:          alert.DaysOverdue,
		Invoices:             alert.Invoices,
		PaymentUrl:           alert.ClientUrl,
		FirmName:             p.firmName,
		FromBillingCommittee: opts.FromBillingCommittee,
		CcEscalation:         rem.CcEscalation,
		EscalationName:       escalationName,
	})
}

// ---- clients ----

func (p *LocalProvider) GetClientStatuses(ctx context.Context) (map[string]models.ClientStatus, error) {
	overrides, err := p.loadStatusOverrides(ctx)
	if err != nil {
		return nil, err
	}
	if overrides == nil {
		overrides = map[string]models.ClientStatus{}
	}
	return overrides, nil
}

func (p *LocalProvider) UpdateClientStatus(ctx context.Context, clientId string, status models.ClientStatus) error {
	known := false
	for _, client := range models.Clients {
		if client.ID == clientId {
			known = true
			break
		}
	}
	if !known {
		return utils.ErrorRecordNotFound
	}

	return p.store.Update(ctx, store.KeyClientStatuses, func(current []byte) ([]byte, error) {
		statuses := map[string]models.ClientStatus{}
		if len(current) > 0 {
			if err := utils.UnmarshalFromJSON(current, &statuses); err != nil {
				return nil, err
			}
		}
		statuses[clientId] = status
		return utils.MarshalToJSON(statuses)
	})
}

// ---- aging ----

func (p *LocalProvider) GetARAgingSummary(ctx context.Context, now time.Time) (models.AgingSummary, error) {
	alerts, err := p.GetARAlerts(ctx, now)
	if err != nil {
		return models.AgingSummary{}, err
	}
	return workflow.SummarizeAging(alerts), nil
}

// ---- reset ----

// ResetAllData irreversibly clears every persisted namespace. Demo/test only.
func (p *LocalProvider) ResetAllData(ctx context.Context) error {
	p.logger.Warn("resetting all persisted alert data")
	return p.store.ResetAll(ctx)
}

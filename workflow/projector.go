package workflow

import (
	"time"

	"bitbucket.org/mmdatafocus/alerts_backend/models"
)

// The projector reconciles freshly generated alert facts with the action log.
// The log is never rewritten: an expired snooze simply stops applying, and a
// later entry always wins over an earlier one regardless of action kind.

type lifecycleOutcome struct {
	handledAt     *time.Time
	dismissedAt   *time.Time
	dismissReason string
	snoozedUntil  *time.Time
}

// latestAction picks the governing entry: maximum timestamp, ties broken by
// insertion order (last wins).
func latestAction(entries []models.AlertAction) *models.AlertAction {
	var latest *models.AlertAction
	for i := range entries {
		if latest == nil || !entries[i].Timestamp.Before(latest.Timestamp) {
			latest = &entries[i]
		}
	}
	return latest
}

func resolveLifecycle(entries []models.AlertAction, now time.Time) lifecycleOutcome {
	entry := latestAction(entries)
	if entry == nil {
		return lifecycleOutcome{}
	}
	switch entry.Action {
	case models.ActionHandled:
		t := entry.Timestamp
		return lifecycleOutcome{handledAt: &t}
	case models.ActionDismissed:
		t := entry.Timestamp
		return lifecycleOutcome{dismissedAt: &t, dismissReason: entry.DismissReason}
	case models.ActionSnoozed:
		snoozeEnd := entry.Timestamp.AddDate(0, 0, entry.SnoozeDays)
		if !snoozeEnd.After(now) {
			// Snooze expired: the alert is fully active again, no flags.
			return lifecycleOutcome{}
		}
		return lifecycleOutcome{snoozedUntil: &snoozeEnd}
	}
	return lifecycleOutcome{}
}

func actionsFor(log []models.AlertAction, alertId string, alertType models.AlertType) []models.AlertAction {
	var matched []models.AlertAction
	for _, entry := range log {
		if entry.AlertId == alertId && entry.AlertType == alertType {
			matched = append(matched, entry)
		}
	}
	return matched
}

// ProjectARAlerts applies the action log to generated AR facts. Entries for
// alert ids not in the fact set are ignored. Pure: same facts, log and now
// always produce the same projection.
func ProjectARAlerts(facts []models.ARAlert, log []models.AlertAction, now time.Time) []models.ARAlert {
	projected := make([]models.ARAlert, len(facts))
	for i, alert := range facts {
		outcome := resolveLifecycle(actionsFor(log, alert.ID, models.AlertTypeAR), now)
		alert.HandledAt = outcome.handledAt
		alert.DismissedAt = outcome.dismissedAt
		alert.DismissReason = outcome.dismissReason
		alert.SnoozedUntil = outcome.snoozedUntil
		projected[i] = alert
	}
	return projected
}

func ProjectExpenseAlerts(facts []models.ExpenseAlert, log []models.AlertAction, now time.Time) []models.ExpenseAlert {
	projected := make([]models.ExpenseAlert, len(facts))
	for i, alert := range facts {
		outcome := resolveLifecycle(actionsFor(log, alert.ID, models.AlertTypeExpense), now)
		alert.HandledAt = outcome.handledAt
		alert.DismissedAt = outcome.dismissedAt
		alert.DismissReason = outcome.dismissReason
		alert.SnoozedUntil = outcome.snoozedUntil
		projected[i] = alert
	}
	return projected
}

// FilterActiveAR drops handled and dismissed alerts. Snoozed alerts stay
// visible so the UI can gray them out.
func FilterActiveAR(alerts []models.ARAlert) []models.ARAlert {
	active := make([]models.ARAlert, 0, len(alerts))
	for _, alert := range alerts {
		if alert.HandledAt == nil && alert.DismissedAt == nil {
			active = append(active, alert)
		}
	}
	return active
}

func FilterActiveExpense(alerts []models.ExpenseAlert) []models.ExpenseAlert {
	active := make([]models.ExpenseAlert, 0, len(alerts))
	for _, alert := range alerts {
		if alert.HandledAt == nil && alert.DismissedAt == nil {
			active = append(active, alert)
		}
	}
	return active
}

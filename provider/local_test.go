package provider

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"

	"bitbucket.org/mmdatafocus/alerts_backend/drafts"
	"bitbucket.org/mmdatafocus/alerts_backend/models"
	"bitbucket.org/mmdatafocus/alerts_backend/store"
	"bitbucket.org/mmdatafocus/alerts_backend/utils"
	"bitbucket.org/mmdatafocus/alerts_backend/workflow"
)

var testNow = time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)

func newTestProvider() *LocalProvider {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return NewLocalProvider(store.NewMemoryStore(), drafts.NewTemplateRenderer(), logger)
}

func TestGetARAlerts_InitialSet(t *testing.T) {
	ctx := context.Background()
	p := newTestProvider()

	alerts, err := p.GetARAlerts(ctx, testNow)
	if err != nil {
		t.Fatalf("GetARAlerts error: %v", err)
	}
	if len(alerts) != 16 {
		t.Fatalf("expected 16 active AR alerts, got %d", len(alerts))
	}
}

func TestMarkAlertHandled_HidesFromListKeepsDetail(t *testing.T) {
	ctx := context.Background()
	p := newTestProvider()

	if err := p.MarkAlertHandled(ctx, "ar-1", models.AlertTypeAR, "payment received", testNow); err != nil {
		t.Fatalf("MarkAlertHandled error: %v", err)
	}

	alerts, err := p.GetARAlerts(ctx, testNow)
	if err != nil {
		t.Fatalf("GetARAlerts error: %v", err)
	}
	if len(alerts) != 15 {
		t.Fatalf("expected 15 active alerts after handling, got %d", len(alerts))
	}
	for _, alert := range alerts {
		if alert.ID == "ar-1" {
			t.Fatalf("handled alert must not be listed")
		}
	}

	// The detail endpoint still serves it, flagged.
	detail, err := p.GetARAlertDetail(ctx, "ar-1", testNow)
	if err != nil {
		t.Fatalf("GetARAlertDetail error: %v", err)
	}
	if detail.HandledAt == nil || !detail.HandledAt.Equal(testNow) {
		t.Fatalf("detail should carry the handled timestamp, got %v", detail.HandledAt)
	}
}

func TestSnoozeAlert_ExpiresSilently(t *testing.T) {
	ctx := context.Background()
	p := newTestProvider()

	if err := p.SnoozeAlert(ctx, "ar-2", models.AlertTypeAR, 7, testNow); err != nil {
		t.Fatalf("SnoozeAlert error: %v", err)
	}

	// Still listed while snoozed, with the flag set.
	alerts, _ := p.GetARAlerts(ctx, testNow.AddDate(0, 0, 3))
	found := false
	for _, alert := range alerts {
		if alert.ID == "ar-2" {
			found = true
			if alert.SnoozedUntil == nil {
				t.Fatalf("snoozed alert should carry snoozedUntil")
			}
		}
	}
	if !found {
		t.Fatalf("snoozed alerts stay visible")
	}

	// After expiry the flag is gone and nothing was rewritten.
	alerts, _ = p.GetARAlerts(ctx, testNow.AddDate(0, 0, 8))
	for _, alert := range alerts {
		if alert.ID == "ar-2" && alert.SnoozedUntil != nil {
			t.Fatalf("expired snooze must not surface")
		}
	}
}

func TestDismissAlert_UnknownIdIsNoOp(t *testing.T) {
	ctx := context.Background()
	p := newTestProvider()

	// Appending an action for a nonexistent alert succeeds and affects nothing.
	if err := p.DismissAlert(ctx, "ar-999", models.AlertTypeAR, "stale", testNow); err != nil {
		t.Fatalf("DismissAlert error: %v", err)
	}
	alerts, _ := p.GetARAlerts(ctx, testNow)
	if len(alerts) != 16 {
		t.Fatalf("unknown-id action must not change the visible set, got %d", len(alerts))
	}
}

func TestAlertRules_CrudAndToggles(t *testing.T) {
	ctx := context.Background()
	p := newTestProvider()

	rules, err := p.GetAlertRules(ctx, testNow)
	if err != nil {
		t.Fatalf("GetAlertRules error: %v", err)
	}
	if len(rules) != 6 {
		t.Fatalf("expected the 6 built-in rules, got %d", len(rules))
	}

	created, err := p.CreateAlertRule(ctx, models.AlertRule{
		Name:        "VIP Client Watch",
		Description: "Any invoice overdue for a VIP client",
		AlertType:   models.AlertTypeAR,
		Severity:    models.SeverityWarning,
		Condition:   models.RuleCondition{Field: "daysOverdue", Operator: models.RuleOperatorGreaterThan, Value: 7},
	}, testNow)
	if err != nil {
		t.Fatalf("CreateAlertRule error: %v", err)
	}
	if !workflow.IsCustomRuleId(created.ID) {
		t.Fatalf("created rule id %s should carry the custom prefix", created.ID)
	}
	if !created.Enabled {
		t.Fatalf("created rules start enabled")
	}

	// Toggle a built-in rule off.
	disabled := false
	if err := p.UpdateAlertRule(ctx, "rule-1", RuleChanges{Enabled: &disabled}); err != nil {
		t.Fatalf("UpdateAlertRule error: %v", err)
	}
	rules, _ = p.GetAlertRules(ctx, testNow)
	if len(rules) != 7 {
		t.Fatalf("expected 7 rules, got %d", len(rules))
	}
	for _, rule := range rules {
		if rule.ID == "rule-1" && rule.Enabled {
			t.Fatalf("toggle should disable rule-1")
		}
	}

	// Content update on the custom rule.
	if err := p.UpdateAlertRule(ctx, created.ID, RuleChanges{Name: "VIP Watch"}); err != nil {
		t.Fatalf("UpdateAlertRule content error: %v", err)
	}
	rules, _ = p.GetAlertRules(ctx, testNow)
	for _, rule := range rules {
		if rule.ID == created.ID && rule.Name != "VIP Watch" {
			t.Fatalf("custom rule rename lost, got %q", rule.Name)
		}
	}

	// Built-ins cannot be deleted; the custom one can, exactly once.
	if err := p.DeleteAlertRule(ctx, "rule-1"); !errors.Is(err, utils.ErrorNotDeletable) {
		t.Fatalf("deleting a built-in expected ErrorNotDeletable, got %v", err)
	}
	if err := p.DeleteAlertRule(ctx, created.ID); err != nil {
		t.Fatalf("DeleteAlertRule error: %v", err)
	}
	if err := p.DeleteAlertRule(ctx, created.ID); !errors.Is(err, utils.ErrorRecordNotFound) {
		t.Fatalf("second delete expected ErrorRecordNotFound, got %v", err)
	}
}

func TestGetPendingApprovals(t *testing.T) {
	ctx := context.Background()
	p := newTestProvider()

	pending, err := p.GetPendingApprovals(ctx, testNow)
	if err != nil {
		t.Fatalf("GetPendingApprovals error: %v", err)
	}
	// 5 partner alerts, 2 escalations, 1 sensitive-client initial reminder.
	if len(pending) != 8 {
		t.Fatalf("expected 8 pending approvals, got %d", len(pending))
	}
	for _, item := range pending {
		if !item.RequiresApproval || item.Status != models.ReminderStatusAwaitingApproval {
			t.Fatalf("%s should require approval and be awaiting it", item.ID)
		}
		if item.ClientName == "" || item.PartnerName == "" {
			t.Fatalf("%s missing queue display fields", item.ID)
		}
	}

	// Approving one removes it from the queue.
	if err := p.ApproveReminder(ctx, pending[0].ID, "Robert Johnson", testNow); err != nil {
		t.Fatalf("ApproveReminder error: %v", err)
	}
	after, _ := p.GetPendingApprovals(ctx, testNow)
	if len(after) != 7 {
		t.Fatalf("expected 7 pending approvals after one approval, got %d", len(after))
	}
}

func TestReminderLifecycle_ApproveThenSend(t *testing.T) {
	ctx := context.Background()
	p := newTestProvider()
	reminderId := "reminder-ar-1-120"

	// Sending before approval is rejected.
	if err := p.MarkReminderSent(ctx, reminderId, testNow); !errors.Is(err, utils.ErrorInvalidStatus) {
		t.Fatalf("send before approval expected ErrorInvalidStatus, got %v", err)
	}

	if err := p.ApproveReminder(ctx, reminderId, "Robert Johnson", testNow); err != nil {
		t.Fatalf("ApproveReminder error: %v", err)
	}
	if err := p.MarkReminderSent(ctx, reminderId, testNow); err != nil {
		t.Fatalf("MarkReminderSent error: %v", err)
	}

	// Terminal state: every further transition is rejected.
	if err := p.MarkReminderSent(ctx, reminderId, testNow); !errors.Is(err, utils.ErrorAlreadySent) {
		t.Fatalf("second send expected ErrorAlreadySent, got %v", err)
	}
	if err := p.ApproveReminder(ctx, reminderId, "Lisa Martinez", testNow); !errors.Is(err, utils.ErrorAlreadySent) {
		t.Fatalf("approve after send expected ErrorAlreadySent, got %v", err)
	}
	if err := p.CancelReminder(ctx, reminderId, testNow); !errors.Is(err, utils.ErrorAlreadySent) {
		t.Fatalf("cancel after send expected ErrorAlreadySent, got %v", err)
	}

	// The reminder surfaces as sent on the owning alert.
	detail, err := p.GetARAlertDetail(ctx, "ar-1", testNow)
	if err != nil {
		t.Fatalf("GetARAlertDetail error: %v", err)
	}
	for _, rem := range detail.ScheduledReminders {
		if rem.ID != reminderId {
			continue
		}
		if rem.Status != models.ReminderStatusSent || rem.SentAt == nil {
			t.Fatalf("reminder should read back as sent, got %s", rem.Status)
		}
	}
}

func TestReminderLifecycle_CancelBlocksApproval(t *testing.T) {
	ctx := context.Background()
	p := newTestProvider()
	reminderId := "reminder-ar-7-90"

	if err := p.CancelReminder(ctx, reminderId, testNow); err != nil {
		t.Fatalf("CancelReminder error: %v", err)
	}
	// Cancel is idempotent.
	if err := p.CancelReminder(ctx, reminderId, testNow); err != nil {
		t.Fatalf("repeat cancel should succeed, got %v", err)
	}
	if err := p.ApproveReminder(ctx, reminderId, "Lisa Martinez", testNow); !errors.Is(err, utils.ErrorAlreadyHandled) {
		t.Fatalf("approve after cancel expected ErrorAlreadyHandled, got %v", err)
	}
	if err := p.MarkReminderSent(ctx, reminderId, testNow); !errors.Is(err, utils.ErrorAlreadyHandled) {
		t.Fatalf("send after cancel expected ErrorAlreadyHandled, got %v", err)
	}
}

func TestMarkReminderSent_NoApprovalNeededPath(t *testing.T) {
	ctx := context.Background()
	p := newTestProvider()

	// ar-6 belongs to a slow payer: its initial reminder is plain pending.
	if err := p.MarkReminderSent(ctx, "reminder-ar-6-60", testNow); err != nil {
		t.Fatalf("pending reminder without approval requirement should send, got %v", err)
	}
}

func TestReminderOps_UnknownId(t *testing.T) {
	ctx := context.Background()
	p := newTestProvider()

	if err := p.ApproveReminder(ctx, "reminder-ar-999-60", "x", testNow); !errors.Is(err, utils.ErrorRecordNotFound) {
		t.Fatalf("expected ErrorRecordNotFound, got %v", err)
	}
	if _, _, err := p.GetReminderDraft(ctx, "nope", DraftOptions{}, testNow); !errors.Is(err, utils.ErrorRecordNotFound) {
		t.Fatalf("expected ErrorRecordNotFound, got %v", err)
	}
}

func TestGetReminderDraft(t *testing.T) {
	ctx := context.Background()
	p := newTestProvider()

	subject, body, err := p.GetReminderDraft(ctx, "reminder-ar-1-120", DraftOptions{}, testNow)
	if err != nil {
		t.Fatalf("GetReminderDraft error: %v", err)
	}
	if subject != "Final Notice: Account Seriously Past Due" {
		t.Fatalf("unexpected partner-alert subject %q", subject)
	}
	if !strings.Contains(body, "Total Outstanding: $847,250.00") {
		t.Fatalf("body missing the outstanding total:\n%s", body)
	}
	if !strings.Contains(body, "Robert Chen has been copied on this notice.") {
		t.Fatalf("partner alert should name the cc'd escalation contact:\n%s", body)
	}
}

func TestUpdateClientStatus_ReshapesAutomation(t *testing.T) {
	ctx := context.Background()
	p := newTestProvider()

	if err := p.UpdateClientStatus(ctx, "client-999", models.ClientStatusNormal); !errors.Is(err, utils.ErrorRecordNotFound) {
		t.Fatalf("unknown client expected ErrorRecordNotFound, got %v", err)
	}

	if err := p.UpdateClientStatus(ctx, "client-001", models.ClientStatusPaymentArrangement); err != nil {
		t.Fatalf("UpdateClientStatus error: %v", err)
	}
	statuses, err := p.GetClientStatuses(ctx)
	if err != nil {
		t.Fatalf("GetClientStatuses error: %v", err)
	}
	if statuses["client-001"] != models.ClientStatusPaymentArrangement {
		t.Fatalf("override not persisted: %v", statuses)
	}

	// The next read reflects the new status: no reminders for that client.
	alerts, _ := p.GetARAlerts(ctx, testNow)
	for _, alert := range alerts {
		if alert.ClientId != "client-001" {
			continue
		}
		if alert.ClientStatus != models.ClientStatusPaymentArrangement {
			t.Fatalf("%s: status override not applied on read", alert.ID)
		}
		if len(alert.ScheduledReminders) != 0 {
			t.Fatalf("%s: payment arrangement must suppress reminders", alert.ID)
		}
	}
}

func TestGetARAgingSummary_ExcludesHandled(t *testing.T) {
	ctx := context.Background()
	p := newTestProvider()

	before, err := p.GetARAgingSummary(ctx, testNow)
	if err != nil {
		t.Fatalf("GetARAgingSummary error: %v", err)
	}
	if before.Total.Count != 16 {
		t.Fatalf("expected 16 alerts in the summary, got %d", before.Total.Count)
	}

	// Handle the largest 120+ alert and the summary shrinks accordingly.
	if err := p.MarkAlertHandled(ctx, "ar-2", models.AlertTypeAR, "", testNow); err != nil {
		t.Fatalf("MarkAlertHandled error: %v", err)
	}
	after, _ := p.GetARAgingSummary(ctx, testNow)
	if after.Total.Count != 15 {
		t.Fatalf("expected 15 alerts after handling, got %d", after.Total.Count)
	}
	if after.OneTwentyPlus.Count != before.OneTwentyPlus.Count-1 {
		t.Fatalf("handled alert should leave its bucket")
	}
	if after.NinetyPlus.Count != after.Ninety.Count+after.OneTwentyPlus.Count {
		t.Fatalf("90+ invariant broken after projection")
	}
}

func TestResetAllData(t *testing.T) {
	ctx := context.Background()
	p := newTestProvider()

	if err := p.MarkAlertHandled(ctx, "ar-1", models.AlertTypeAR, "", testNow); err != nil {
		t.Fatalf("MarkAlertHandled error: %v", err)
	}
	if err := p.UpdateClientStatus(ctx, "client-001", models.ClientStatusDisputed); err != nil {
		t.Fatalf("UpdateClientStatus error: %v", err)
	}

	if err := p.ResetAllData(ctx); err != nil {
		t.Fatalf("ResetAllData error: %v", err)
	}

	alerts, _ := p.GetARAlerts(ctx, testNow)
	if len(alerts) != 16 {
		t.Fatalf("reset should restore the full alert set, got %d", len(alerts))
	}
	statuses, _ := p.GetClientStatuses(ctx)
	if len(statuses) != 0 {
		t.Fatalf("reset should clear status overrides, got %v", statuses)
	}
}

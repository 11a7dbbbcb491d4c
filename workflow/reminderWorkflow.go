package workflow

import (
	"fmt"
	"time"

	"bitbucket.org/mmdatafocus/alerts_backend/models"
)

// Reminder tiers per client automation status. A tier's reminder exists iff
// daysOverdue is inside that tier's half-open window; the terminal 120+ tier
// is open-ended. payment_arrangement and disputed clients get no automation
// at all.
//
//	normal, sensitive:  initial 60, escalation 90, partner 120
//	slow_payer:         initial 90, escalation merges into partner at 120

// ScheduleReminders derives the automated follow-ups for one AR alert.
// It never fails on a thin contact set: a missing escalation contact falls
// back to the primary.
func ScheduleReminders(alertId string, client models.Client, daysOverdue int, now time.Time) []models.Reminder {
	if client.Status.AutomationSuppressed() {
		return nil
	}

	var reminders []models.Reminder
	sensitive := client.Status == models.ClientStatusSensitive
	slowPayer := client.Status == models.ClientStatusSlowPayer
	primary := client.Contacts.Primary

	initialTrigger := models.TriggerInitial
	initialWindowEnd := models.TriggerEscalation
	if slowPayer {
		initialTrigger = models.TriggerEscalation
		initialWindowEnd = models.TriggerPartnerAlert
	}
	if daysOverdue >= initialTrigger && daysOverdue < initialWindowEnd {
		status := models.ReminderStatusPending
		if sensitive {
			status = models.ReminderStatusAwaitingApproval
		}
		reminders = append(reminders, models.Reminder{
			ID:               fmt.Sprintf("reminder-%s-60", alertId),
			AlertId:          alertId,
			ClientId:         client.ID,
			Status:           status,
			ScheduledDate:    RelativeDate(now, -1), // ready to send
			TriggerDays:      initialTrigger,
			Tone:             models.ReminderToneFriendly,
			RecipientEmail:   primary.Email,
			RecipientName:    primary.Name,
			RequiresApproval: sensitive,
		})
	}

	escalationTrigger := models.TriggerEscalation
	if slowPayer {
		escalationTrigger = models.TriggerPartnerAlert
	}
	if daysOverdue >= escalationTrigger && daysOverdue < models.TriggerPartnerAlert {
		reminders = append(reminders, models.Reminder{
			ID:               fmt.Sprintf("reminder-%s-90", alertId),
			AlertId:          alertId,
			ClientId:         client.ID,
			Status:           models.ReminderStatusAwaitingApproval,
			ScheduledDate:    DateOnly(now),
			TriggerDays:      escalationTrigger,
			Tone:             models.ReminderToneProfessional,
			RecipientEmail:   primary.Email,
			RecipientName:    primary.Name,
			CcEscalation:     client.Contacts.Escalation != nil,
			RequiresApproval: true,
		})
	}

	if daysOverdue >= models.TriggerPartnerAlert {
		recipient := client.Contacts.EscalationOrPrimary()
		reminders = append(reminders, models.Reminder{
			ID:               fmt.Sprintf("reminder-%s-120", alertId),
			AlertId:          alertId,
			ClientId:         client.ID,
			Status:           models.ReminderStatusAwaitingApproval,
			ScheduledDate:    DateOnly(now),
			TriggerDays:      models.TriggerPartnerAlert,
			Tone:             models.ReminderToneFirm,
			RecipientEmail:   recipient.Email,
			RecipientName:    recipient.Name,
			CcEscalation:     client.Contacts.Escalation != nil,
			RequiresApproval: true,
		})
	}

	return reminders
}

// SentReminderHistory synthesizes the already-sent 30-day statement for
// alerts that have aged past 60 days.
func SentReminderHistory(alertId string, client models.Client, daysOverdue int, now time.Time) []models.Reminder {
	if daysOverdue < 60 {
		return nil
	}
	sentAt := RelativeDate(now, daysOverdue-30)
	primary := client.Contacts.Primary
	return []models.Reminder{{
		ID:             fmt.Sprintf("reminder-%s-30-sent", alertId),
		AlertId:        alertId,
		ClientId:       client.ID,
		Status:         models.ReminderStatusSent,
		ScheduledDate:  sentAt,
		TriggerDays:    30,
		Tone:           models.ReminderToneFriendly,
		RecipientEmail: primary.Email,
		RecipientName:  primary.Name,
		SentAt:         &sentAt,
		Subject:        "Friendly Reminder: Outstanding Invoice",
		Body:           "Auto-sent via Aiwyn monthly statement.",
	}}
}

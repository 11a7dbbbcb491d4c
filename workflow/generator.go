package workflow

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"bitbucket.org/mmdatafocus/alerts_backend/models"
)

// Alert facts are synthesized deterministically relative to "now" so the
// projector can regenerate-and-reconcile on every read instead of keeping
// mutable alert storage. Everything in this file is pure: same day in, same
// alerts out, ids and notes included.

type arAlertConfig struct {
	ClientIndex int
	DaysOverdue int
	Amount      int64
}

// Distribution sized to show the 90+ day problem: ~$9.5M total AR with $7M+
// over 90 days, across the mix of client automation statuses.
var arAlertConfigs = []arAlertConfig{
	// 120+ days
	{ClientIndex: 0, DaysOverdue: 145, Amount: 847250},
	{ClientIndex: 6, DaysOverdue: 138, Amount: 1250000},
	{ClientIndex: 8, DaysOverdue: 132, Amount: 680000},
	{ClientIndex: 9, DaysOverdue: 128, Amount: 425000},
	{ClientIndex: 11, DaysOverdue: 122, Amount: 312000},

	// 90-120 days
	{ClientIndex: 1, DaysOverdue: 112, Amount: 1890000},
	{ClientIndex: 2, DaysOverdue: 98, Amount: 567000},
	{ClientIndex: 10, DaysOverdue: 94, Amount: 389000},
	{ClientIndex: 7, DaysOverdue: 91, Amount: 156000},

	// 60-90 days
	{ClientIndex: 3, DaysOverdue: 78, Amount: 124500},
	{ClientIndex: 5, DaysOverdue: 72, Amount: 287000},
	{ClientIndex: 4, DaysOverdue: 65, Amount: 98500},

	// 30-60 days
	{ClientIndex: 0, DaysOverdue: 45, Amount: 78900},
	{ClientIndex: 6, DaysOverdue: 38, Amount: 156000},

	// under 30 days
	{ClientIndex: 2, DaysOverdue: 22, Amount: 45600},
	{ClientIndex: 5, DaysOverdue: 14, Amount: 32500},
}

type expenseAlertConfig struct {
	CategoryIndex   int
	VariancePercent int
}

var expenseAlertConfigs = []expenseAlertConfig{
	{CategoryIndex: 0, VariancePercent: 70},
	{CategoryIndex: 1, VariancePercent: 40},
	{CategoryIndex: 2, VariancePercent: 45},
}

// DateOnly truncates to midnight UTC. All generated dates are day-resolution
// so regeneration within the same calendar day is stable.
func DateOnly(now time.Time) time.Time {
	y, m, d := now.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// RelativeDate is now minus daysAgo, day resolution. Negative daysAgo yields
// a future date.
func RelativeDate(now time.Time, daysAgo int) time.Time {
	return DateOnly(now).AddDate(0, 0, -daysAgo)
}

func SeverityFromDays(daysOverdue int) models.Severity {
	if daysOverdue >= 60 {
		return models.SeverityCritical
	}
	if daysOverdue >= 30 {
		return models.SeverityWarning
	}
	return models.SeverityInfo
}

func SeverityFromVariance(variancePercent int) models.Severity {
	if variancePercent >= 50 {
		return models.SeverityCritical
	}
	if variancePercent >= 25 {
		return models.SeverityWarning
	}
	return models.SeverityInfo
}

// AgingBucket is a non-decreasing step function of daysOverdue.
func AgingBucket(daysOverdue int) int {
	switch {
	case daysOverdue <= 0:
		return 0
	case daysOverdue <= 30:
		return 30
	case daysOverdue <= 60:
		return 60
	case daysOverdue <= 90:
		return 90
	default:
		return 120
	}
}

func invoiceNumber(now time.Time, sequence int) string {
	return fmt.Sprintf("INV-%d-%04d", now.UTC().Year(), sequence)
}

func paymentUrl(clientId, invoiceId string) string {
	if invoiceId == "" {
		invoiceId = "dashboard"
	}
	return fmt.Sprintf("https://pay.aiwyn.com/firm-demo/%s/%s", clientId, invoiceId)
}

// generateInvoices splits totalAmount into at most 3 invoices that sum to it
// exactly. The anchor invoice's due date is daysOverdue before now; later
// invoices stagger 5 days closer.
func generateInvoices(now time.Time, clientIndex, daysOverdue int, totalAmount decimal.Decimal, clientId string) []models.Invoice {
	numInvoices := int(totalAmount.Div(decimal.NewFromInt(15000)).Ceil().IntPart())
	if numInvoices > 3 {
		numInvoices = 3
	}
	if numInvoices < 1 {
		numInvoices = 1
	}

	invoices := make([]models.Invoice, 0, numInvoices)
	remaining := totalAmount
	baseSequence := 800 + clientIndex*20

	for i := 0; i < numInvoices; i++ {
		amount := remaining
		if i < numInvoices-1 {
			amount = remaining.Mul(decimal.NewFromFloat(0.5)).Round(0)
		}
		remaining = remaining.Sub(amount)

		id := fmt.Sprintf("inv-%d-%d", clientIndex, i)
		invoices = append(invoices, models.Invoice{
			ID:          id,
			Number:      invoiceNumber(now, baseSequence+i),
			Date:        RelativeDate(now, daysOverdue+30+i*15),
			DueDate:     RelativeDate(now, daysOverdue-i*5),
			Amount:      amount,
			Description: models.ServiceDescriptions[i%len(models.ServiceDescriptions)],
			PaymentUrl:  paymentUrl(clientId, id),
		})
	}

	return invoices
}

var arNotesBySeverity = map[models.Severity][]string{
	models.SeverityCritical: {
		"Multiple statements sent via Aiwyn. No response. May be AP contact issue - consider reaching out to CFO.",
		"Long-standing client - unusual delay. Likely administrative issue (missed invoice, AP turnover).",
		"Extended overdue period. Partner intervention recommended.",
		"Significant aging. Check if client has cash flow issues or if invoice was lost.",
	},
	models.SeverityWarning: {
		"Approaching escalation threshold. Auto-reminder scheduled.",
		"First follow-up sent. Awaiting response.",
		"Payment typically comes end of quarter. Monitor.",
		"60-day reminder pending partner approval.",
	},
	models.SeverityInfo: {
		"Within normal payment window. Aiwyn statement sent.",
		"Standard payment terms - 30 days. Auto-reminder will trigger at 60 days.",
		"Recently invoiced. No action needed yet.",
		"New engagement. First invoice in cycle.",
	},
}

// arNotes picks the note deterministically; status-specific notes win over the
// severity-indexed choice for non-normal statuses.
func arNotes(severity models.Severity, daysOverdue int, status models.ClientStatus) string {
	switch status {
	case models.ClientStatusPaymentArrangement:
		return "Payment arrangement in place. Manual follow-up per agreement terms."
	case models.ClientStatusDisputed:
		return "Invoice disputed by client. Automation on hold pending resolution."
	case models.ClientStatusSensitive:
		return "Sensitive client relationship. All communications require partner approval."
	}

	options, ok := arNotesBySeverity[severity]
	if !ok {
		options = arNotesBySeverity[models.SeverityInfo]
	}
	return options[(daysOverdue/30)%len(options)]
}

// GenerateARAlerts synthesizes the full AR alert set for the given day.
// statusOverrides (from the client_statuses namespace) replace each client's
// static automation status before notes and reminder scheduling derive from
// it, so a status change made in the UI takes effect on the next read.
func GenerateARAlerts(now time.Time, statusOverrides map[string]models.ClientStatus) []models.ARAlert {
	if len(models.Clients) == 0 {
		return nil
	}

	alerts := make([]models.ARAlert, 0, len(arAlertConfigs))
	for index, cfg := range arAlertConfigs {
		if cfg.ClientIndex < 0 || cfg.ClientIndex >= len(models.Clients) {
			continue
		}
		client := models.Clients[cfg.ClientIndex]
		if override, ok := statusOverrides[client.ID]; ok {
			client.Status = override
		}
		partner := models.Partners[client.PartnerIndex%len(models.Partners)]
		severity := SeverityFromDays(cfg.DaysOverdue)
		amount := decimal.NewFromInt(cfg.Amount)
		alertId := fmt.Sprintf("ar-%d", index+1)

		alerts = append(alerts, models.ARAlert{
			ID:                 alertId,
			ClientId:           client.ID,
			ClientName:         client.Name,
			Severity:           severity,
			OverdueAmount:      amount,
			DaysOverdue:        cfg.DaysOverdue,
			AgingBucket:        AgingBucket(cfg.DaysOverdue),
			ClientStatus:       client.Status,
			Contacts:           client.Contacts,
			Invoices:           generateInvoices(now, cfg.ClientIndex, cfg.DaysOverdue, amount, client.ID),
			Notes:              arNotes(severity, cfg.DaysOverdue, client.Status),
			CreatedAt:          RelativeDate(now, cfg.DaysOverdue),
			ScheduledReminders: ScheduleReminders(alertId, client, cfg.DaysOverdue, now),
			SentReminders:      SentReminderHistory(alertId, client, cfg.DaysOverdue, now),
			PartnerName:        partner.Name,
			ClientUrl:          paymentUrl(client.ID, ""),
		})
	}
	return alerts
}

var expenseDriverNotes = []string{
	"Price increase from vendor",
	"Added new users/licenses",
	"Upgraded to premium tier",
	"Extended engagement",
	"Unplanned but necessary",
	"Annual renewal (front-loaded)",
}

// generateExpenseDrivers attributes the variance to 2-3 catalog drivers.
// Each driver takes 40% of what remains, the last takes the rest; the split
// is deterministic so regeneration within a day is stable.
func generateExpenseDrivers(categoryId string, varianceAmount decimal.Decimal) []models.ExpenseDriver {
	catalog := models.ExpenseDriverCatalog[categoryId]
	numDrivers := len(catalog)
	if numDrivers > 3 {
		numDrivers = 3
	}

	drivers := make([]models.ExpenseDriver, 0, numDrivers)
	remaining := varianceAmount
	for i := 0; i < numDrivers && remaining.IsPositive(); i++ {
		ref := catalog[i]
		contribution := remaining
		if i < numDrivers-1 {
			contribution = remaining.Mul(decimal.NewFromFloat(0.4)).Round(0)
		}
		remaining = remaining.Sub(contribution)

		drivers = append(drivers, models.ExpenseDriver{
			Name:   ref.Name,
			Vendor: ref.Vendor,
			Amount: decimal.NewFromInt(ref.BaseAmount).Add(contribution),
			Note:   expenseDriverNotes[i%len(expenseDriverNotes)],
		})
	}
	return drivers
}

var expenseNotesByCategory = map[string]string{
	"exp-cat-001": "Review software utilization and consider consolidating vendors.",
	"exp-cat-002": "Seasonal variance expected during tax season. Monitor through April.",
	"exp-cat-003": "Front-loaded CPE costs for the year. Should normalize by Q2.",
}

func expenseNotes(categoryId string, variancePercent int) string {
	note, ok := expenseNotesByCategory[categoryId]
	if !ok {
		return "Review spending and adjust budget if necessary."
	}
	if variancePercent >= 50 {
		return note + " Requires immediate review."
	}
	return note
}

// CurrentPeriod renders the reporting period, e.g. "January 2025".
func CurrentPeriod(now time.Time) string {
	return now.UTC().Format("January 2006")
}

// GenerateExpenseAlerts synthesizes the expense budget-variance alerts for
// the current period. ActualAmount is constructed from budget and variance
// percent (round(budget * (1 + pct/100))); the display never re-derives the
// percentage.
func GenerateExpenseAlerts(now time.Time) []models.ExpenseAlert {
	if len(models.ExpenseCategories) == 0 {
		return nil
	}

	alerts := make([]models.ExpenseAlert, 0, len(expenseAlertConfigs))
	for index, cfg := range expenseAlertConfigs {
		if cfg.CategoryIndex < 0 || cfg.CategoryIndex >= len(models.ExpenseCategories) {
			continue
		}
		category := models.ExpenseCategories[cfg.CategoryIndex]
		actual := category.BudgetAmount.
			Mul(decimal.NewFromInt(int64(100 + cfg.VariancePercent))).
			Div(decimal.NewFromInt(100)).
			Round(0)
		varianceAmount := actual.Sub(category.BudgetAmount)

		alerts = append(alerts, models.ExpenseAlert{
			ID:              fmt.Sprintf("exp-%d", index+1),
			CategoryId:      category.ID,
			Category:        category.Name,
			Severity:        SeverityFromVariance(cfg.VariancePercent),
			BudgetAmount:    category.BudgetAmount,
			ActualAmount:    actual,
			VariancePercent: cfg.VariancePercent,
			Period:          CurrentPeriod(now),
			Drivers:         generateExpenseDrivers(category.ID, varianceAmount),
			Notes:           expenseNotes(category.ID, cfg.VariancePercent),
			CreatedAt:       RelativeDate(now, index),
		})
	}
	return alerts
}

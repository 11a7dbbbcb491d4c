// Package drafts renders reminder email subject/body text. The template
// renderer is deterministic; a live LLM renderer can sit behind the same
// interface (the alert engine never depends on which one is wired).
package drafts

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"bitbucket.org/mmdatafocus/alerts_backend/models"
)

type Request struct {
	Tone                 models.ReminderTone
	TriggerDays          int
	ClientName           string
	ContactName          string
	OverdueAmount        decimal.Decimal
	DaysOverdue          int
	Invoices             []models.Invoice
	PaymentUrl           string
	FirmName             string
	FromBillingCommittee bool
	CcEscalation         bool
	EscalationName       string
}

type Renderer interface {
	Render(ctx context.Context, req Request) (subject, body string, err error)
}

// TemplateRenderer is the built-in deterministic implementation.
type TemplateRenderer struct{}

func NewTemplateRenderer() *TemplateRenderer { return &TemplateRenderer{} }

func formatCurrency(amount decimal.Decimal) string {
	// $1,234,567.89 style grouping.
	s := amount.StringFixed(2)
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")
	parts := strings.SplitN(s, ".", 2)
	intPart := parts[0]
	var grouped []string
	for len(intPart) > 3 {
		grouped = append([]string{intPart[len(intPart)-3:]}, grouped...)
		intPart = intPart[:len(intPart)-3]
	}
	grouped = append([]string{intPart}, grouped...)
	out := "$" + strings.Join(grouped, ",") + "." + parts[1]
	if neg {
		out = "-" + out
	}
	return out
}

func invoiceRef(invoices []models.Invoice) string {
	if len(invoices) == 0 {
		return "Invoice"
	}
	if len(invoices) == 1 {
		return "Invoice " + invoices[0].Number
	}
	numbers := []string{invoices[0].Number, invoices[1].Number}
	suffix := ""
	if len(invoices) > 2 {
		suffix = "..."
	}
	return "Invoices " + strings.Join(numbers, ", ") + suffix
}

func invoiceList(invoices []models.Invoice) string {
	lines := make([]string, 0, len(invoices))
	for _, inv := range invoices {
		lines = append(lines, fmt.Sprintf("  - %s: %s (Due: %s)",
			inv.Number, formatCurrency(inv.Amount), inv.DueDate.Format("2006-01-02")))
	}
	return strings.Join(lines, "\n")
}

func tier(triggerDays int) int {
	if triggerDays >= 120 {
		return 120
	}
	if triggerDays >= 90 {
		return 90
	}
	return 60
}

func (r *TemplateRenderer) subject(req Request) string {
	ref := invoiceRef(req.Invoices)
	subjects := map[models.ReminderTone]map[int]string{
		models.ReminderToneFriendly: {
			60:  fmt.Sprintf("Friendly Reminder: %s - %s", ref, req.ClientName),
			90:  fmt.Sprintf("Following Up: Outstanding Balance - %s", req.ClientName),
			120: fmt.Sprintf("Important: Account Status Review Needed - %s", req.ClientName),
		},
		models.ReminderToneProfessional: {
			60:  fmt.Sprintf("Payment Reminder: %s - %s", ref, req.ClientName),
			90:  fmt.Sprintf("Second Notice: Outstanding Balance - %s", req.ClientName),
			120: fmt.Sprintf("Urgent: Past Due Account Requires Attention - %s", req.ClientName),
		},
		models.ReminderToneFirm: {
			60:  fmt.Sprintf("Action Required: %s Past Due", ref),
			90:  "Immediate Attention Required: Outstanding Balance",
			120: "Final Notice: Account Seriously Past Due",
		},
	}
	byTier, ok := subjects[req.Tone]
	if !ok {
		byTier = subjects[models.ReminderToneProfessional]
	}
	return byTier[tier(req.TriggerDays)]
}

func (r *TemplateRenderer) signoff(req Request, closing, committeeLabel string) string {
	name := req.FirmName
	if req.FromBillingCommittee {
		name = req.FirmName + " " + committeeLabel
	}
	if closing == "" {
		return name
	}
	return closing + ",\n" + name
}

func (r *TemplateRenderer) body(req Request) string {
	greeting := fmt.Sprintf("Dear %s,", req.ContactName)
	total := formatCurrency(req.OverdueAmount)
	list := invoiceList(req.Invoices)
	escalated := req.TriggerDays >= 90

	switch req.Tone {
	case models.ReminderToneFriendly:
		if !escalated {
			return fmt.Sprintf(`%s

I hope this message finds you well. I wanted to reach out as a friendly reminder regarding your account with %s.

Our records show the following invoice(s) are currently outstanding:

%s

Total Outstanding: %s

We understand that invoices can sometimes slip through the cracks, and we're here to help if you have any questions about these charges or need to discuss payment arrangements.

For your convenience, you can view your invoices and make a payment through our secure client portal:
%s

Please don't hesitate to reach out if there's anything we can assist with.

%s`, greeting, req.FirmName, list, total, req.PaymentUrl,
				r.signoff(req, "Warm regards", "Billing Department"))
		}
		return fmt.Sprintf(`%s

I hope you're doing well. I'm following up on our previous correspondence regarding the outstanding balance on your account.

%s

Total Outstanding: %s (%d days past due)

We value our relationship with %s and want to ensure there are no issues preventing payment. If there's been an oversight, a question about the services, or if you'd like to discuss a payment arrangement, please let us know.

You can access your account and make a payment here:
%s

Thank you for your attention to this matter.

%s`, greeting, list, total, req.DaysOverdue, req.ClientName, req.PaymentUrl,
			r.signoff(req, "Best regards", "Billing Department"))

	case models.ReminderToneFirm:
		if !escalated {
			return fmt.Sprintf(`%s

This notice is to inform you that your account has an outstanding balance that requires immediate attention.

%s

Total Outstanding: %s
Days Past Due: %d

Payment is due immediately. Please submit payment through our secure portal:
%s

If you have questions about these invoices or need to arrange a payment plan, contact our office right away.

%s`, greeting, list, total, req.DaysOverdue, req.PaymentUrl,
				r.signoff(req, "", "Billing Department"))
		}
		ccLine := ""
		if req.CcEscalation && req.EscalationName != "" {
			ccLine = fmt.Sprintf("\n%s has been copied on this notice.\n", req.EscalationName)
		}
		return fmt.Sprintf(`%s

IMPORTANT: Your account with %s is now seriously past due and requires your immediate attention.

%s

Total Outstanding: %s
Days Past Due: %d

Despite our previous notices, this balance remains unpaid. We must receive payment or hear from you within the next 10 business days regarding payment arrangements.

Payment Portal: %s
%s
Failure to respond may necessitate further action, which we would prefer to avoid. Please contact us immediately to resolve this matter.

%s`, greeting, req.FirmName, list, total, req.DaysOverdue, req.PaymentUrl, ccLine,
			r.signoff(req, "", "Billing Committee"))

	default: // professional
		if !escalated {
			opening := fmt.Sprintf("This is a reminder regarding the following outstanding invoice(s) on your account with %s.", req.FirmName)
			if req.FromBillingCommittee {
				opening = "Per our firm's accounts receivable policy, we are contacting you regarding an outstanding balance on your account."
			}
			return fmt.Sprintf(`%s

%s

%s

Total Outstanding: %s
Days Past Due: %d

Please remit payment at your earliest convenience. You can view invoice details and submit payment through our secure client portal:

%s

If payment has already been sent, please disregard this notice. Should you have any questions or wish to discuss payment terms, please contact our office.

%s`, greeting, opening, list, total, req.DaysOverdue, req.PaymentUrl,
				r.signoff(req, "Sincerely", "Billing Committee"))
		}
		opening := "We are following up on our previous communication regarding the past-due balance on your account."
		if req.FromBillingCommittee {
			opening = "Per firm policy, this is our second notice regarding a significantly past-due balance on your account."
		}
		ccLine := ""
		if req.CcEscalation && req.EscalationName != "" {
			ccLine = fmt.Sprintf("\nWe have also copied %s on this correspondence for visibility.\n", req.EscalationName)
		}
		return fmt.Sprintf(`%s

%s

%s

Total Outstanding: %s
Days Past Due: %d

This balance is now significantly overdue. We kindly request that you arrange for payment or contact us immediately to discuss this matter.

Payment Portal: %s
%s
If there are circumstances affecting your ability to pay, we are open to discussing alternative arrangements. However, prompt action is required.

%s`, greeting, opening, list, total, req.DaysOverdue, req.PaymentUrl, ccLine,
			r.signoff(req, "Respectfully", "Billing Committee"))
	}
}

func (r *TemplateRenderer) Render(ctx context.Context, req Request) (string, string, error) {
	return r.subject(req), r.body(req), nil
}

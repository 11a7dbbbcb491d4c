package drafts

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"bitbucket.org/mmdatafocus/alerts_backend/models"
)

func testInvoices() []models.Invoice {
	due := time.Date(2025, 10, 21, 0, 0, 0, 0, time.UTC)
	return []models.Invoice{
		{Number: "INV-2026-0800", Amount: decimal.NewFromInt(423625), DueDate: due},
		{Number: "INV-2026-0801", Amount: decimal.NewFromInt(211813), DueDate: due},
		{Number: "INV-2026-0802", Amount: decimal.NewFromInt(211812), DueDate: due},
	}
}

func TestFormatCurrency(t *testing.T) {
	cases := []struct {
		in       int64
		expected string
	}{
		{0, "$0.00"},
		{999, "$999.00"},
		{1000, "$1,000.00"},
		{847250, "$847,250.00"},
		{1234567, "$1,234,567.00"},
	}
	for _, tc := range cases {
		if got := formatCurrency(decimal.NewFromInt(tc.in)); got != tc.expected {
			t.Fatalf("formatCurrency(%d) expected %s, got %s", tc.in, tc.expected, got)
		}
	}
	if got := formatCurrency(decimal.NewFromFloat(-1234.5)); got != "-$1,234.50" {
		t.Fatalf("negative amount expected -$1,234.50, got %s", got)
	}
}

func TestInvoiceRef(t *testing.T) {
	invoices := testInvoices()
	if got := invoiceRef(nil); got != "Invoice" {
		t.Fatalf("empty set expected bare label, got %q", got)
	}
	if got := invoiceRef(invoices[:1]); got != "Invoice INV-2026-0800" {
		t.Fatalf("single invoice ref: %q", got)
	}
	if got := invoiceRef(invoices); got != "Invoices INV-2026-0800, INV-2026-0801..." {
		t.Fatalf("multi invoice ref: %q", got)
	}
}

func TestRender_SubjectByToneAndTier(t *testing.T) {
	r := NewTemplateRenderer()
	cases := []struct {
		tone    models.ReminderTone
		trigger int
		subject string
	}{
		{models.ReminderToneFriendly, 60, "Friendly Reminder: Invoice INV-2026-0800 - Henderson & Associates LLC"},
		{models.ReminderToneProfessional, 90, "Second Notice: Outstanding Balance - Henderson & Associates LLC"},
		{models.ReminderToneFirm, 120, "Final Notice: Account Seriously Past Due"},
	}
	for _, tc := range cases {
		subject, _, err := r.Render(context.Background(), Request{
			Tone:        tc.tone,
			TriggerDays: tc.trigger,
			ClientName:  "Henderson & Associates LLC",
			ContactName: "Karen Williams",
			Invoices:    testInvoices()[:1],
			FirmName:    "Johnson & Associates CPA",
		})
		if err != nil {
			t.Fatalf("Render error: %v", err)
		}
		if subject != tc.subject {
			t.Fatalf("tone %s trigger %d: expected %q, got %q", tc.tone, tc.trigger, tc.subject, subject)
		}
	}
}

func TestRender_BodyContents(t *testing.T) {
	r := NewTemplateRenderer()
	_, body, err := r.Render(context.Background(), Request{
		Tone:          models.ReminderToneFriendly,
		TriggerDays:   60,
		ClientName:    "Henderson & Associates LLC",
		ContactName:   "Karen Williams",
		OverdueAmount: decimal.NewFromInt(847250),
		DaysOverdue:   65,
		Invoices:      testInvoices(),
		PaymentUrl:    "https://pay.aiwyn.com/firm-demo/client-001/dashboard",
		FirmName:      "Johnson & Associates CPA",
	})
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}
	for _, fragment := range []string{
		"Dear Karen Williams,",
		"Total Outstanding: $847,250.00",
		"INV-2026-0800: $423,625.00 (Due: 2025-10-21)",
		"https://pay.aiwyn.com/firm-demo/client-001/dashboard",
		"Warm regards,\nJohnson & Associates CPA",
	} {
		if !strings.Contains(body, fragment) {
			t.Fatalf("body missing %q:\n%s", fragment, body)
		}
	}
}

func TestRender_CcEscalationLine(t *testing.T) {
	r := NewTemplateRenderer()
	req := Request{
		Tone:           models.ReminderToneFirm,
		TriggerDays:    120,
		ClientName:     "Henderson & Associates LLC",
		ContactName:    "Robert Chen",
		OverdueAmount:  decimal.NewFromInt(847250),
		DaysOverdue:    145,
		Invoices:       testInvoices(),
		PaymentUrl:     "https://pay.aiwyn.com/firm-demo/client-001/dashboard",
		FirmName:       "Johnson & Associates CPA",
		CcEscalation:   true,
		EscalationName: "Robert Chen",
	}

	_, body, err := r.Render(context.Background(), req)
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}
	if !strings.Contains(body, "Robert Chen has been copied on this notice.") {
		t.Fatalf("firm escalated body should name the cc'd contact:\n%s", body)
	}

	req.CcEscalation = false
	_, body, _ = r.Render(context.Background(), req)
	if strings.Contains(body, "has been copied on this notice") {
		t.Fatalf("cc line must not appear without cc_escalation")
	}
}

func TestRender_BillingCommitteeSignoff(t *testing.T) {
	r := NewTemplateRenderer()
	req := Request{
		Tone:          models.ReminderToneProfessional,
		TriggerDays:   60,
		ClientName:    "Henderson & Associates LLC",
		ContactName:   "Karen Williams",
		OverdueAmount: decimal.NewFromInt(78900),
		DaysOverdue:   65,
		Invoices:      testInvoices()[:1],
		FirmName:      "Johnson & Associates CPA",
	}

	_, body, _ := r.Render(context.Background(), req)
	if !strings.Contains(body, "This is a reminder regarding the following outstanding invoice(s)") {
		t.Fatalf("default professional opening missing:\n%s", body)
	}

	req.FromBillingCommittee = true
	_, body, _ = r.Render(context.Background(), req)
	if !strings.Contains(body, "Per our firm's accounts receivable policy") {
		t.Fatalf("committee variant opening missing:\n%s", body)
	}
	if !strings.Contains(body, "Johnson & Associates CPA Billing Committee") {
		t.Fatalf("committee signoff missing:\n%s", body)
	}
}

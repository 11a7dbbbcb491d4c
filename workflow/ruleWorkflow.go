package workflow

import (
	"strings"
	"time"

	"bitbucket.org/mmdatafocus/alerts_backend/models"
)

const customRuleIdPrefix = "rule-custom-"

// BuiltinRules returns the fixed rule set. Content is immutable; only the
// enabled flag can be overridden through the toggle map.
func BuiltinRules(now time.Time) []models.AlertRule {
	return []models.AlertRule{
		{
			ID: "rule-1", Name: "Critical AR Alert",
			Description: "Invoice overdue by more than 60 days",
			AlertType:   models.AlertTypeAR, Severity: models.SeverityCritical,
			Condition: models.RuleCondition{Field: "daysOverdue", Operator: models.RuleOperatorGreaterThan, Value: 60},
			Enabled:   true, CreatedAt: RelativeDate(now, 90),
		},
		{
			ID: "rule-2", Name: "Warning AR Alert",
			Description: "Invoice overdue by more than 30 days",
			AlertType:   models.AlertTypeAR, Severity: models.SeverityWarning,
			Condition: models.RuleCondition{Field: "daysOverdue", Operator: models.RuleOperatorGreaterThan, Value: 30},
			Enabled:   true, CreatedAt: RelativeDate(now, 90),
		},
		{
			ID: "rule-3", Name: "Info AR Alert",
			Description: "Invoice overdue by more than 14 days",
			AlertType:   models.AlertTypeAR, Severity: models.SeverityInfo,
			Condition: models.RuleCondition{Field: "daysOverdue", Operator: models.RuleOperatorGreaterThan, Value: 14},
			Enabled:   true, CreatedAt: RelativeDate(now, 90),
		},
		{
			ID: "rule-4", Name: "Critical Expense Alert",
			Description: "Category budget exceeded by more than 50%",
			AlertType:   models.AlertTypeExpense, Severity: models.SeverityCritical,
			Condition: models.RuleCondition{Field: "variancePercent", Operator: models.RuleOperatorGreaterThan, Value: 50},
			Enabled:   true, CreatedAt: RelativeDate(now, 90),
		},
		{
			ID: "rule-5", Name: "Warning Expense Alert",
			Description: "Category budget exceeded by more than 25%",
			AlertType:   models.AlertTypeExpense, Severity: models.SeverityWarning,
			Condition: models.RuleCondition{Field: "variancePercent", Operator: models.RuleOperatorGreaterThan, Value: 25},
			Enabled:   true, CreatedAt: RelativeDate(now, 90),
		},
		{
			ID: "rule-6", Name: "Large Invoice Reminder",
			Description: "Invoices over $10,000 unpaid after 7 days",
			AlertType:   models.AlertTypeAR, Severity: models.SeverityInfo,
			Condition: models.RuleCondition{Field: "amount", Operator: models.RuleOperatorGreaterThan, Value: 10000},
			Enabled:   false, CreatedAt: RelativeDate(now, 60),
		},
	}
}

var builtinRuleIds = map[string]bool{
	"rule-1": true, "rule-2": true, "rule-3": true,
	"rule-4": true, "rule-5": true, "rule-6": true,
}

func IsBuiltinRuleId(id string) bool {
	return builtinRuleIds[id]
}

func IsCustomRuleId(id string) bool {
	return strings.HasPrefix(id, customRuleIdPrefix)
}

func CustomRuleId(suffix string) string {
	return customRuleIdPrefix + suffix
}

// MergeRules combines built-in and custom rules and applies the enabled
// overrides from the toggle map to both.
func MergeRules(builtin, custom []models.AlertRule, toggles map[string]bool) []models.AlertRule {
	merged := make([]models.AlertRule, 0, len(builtin)+len(custom))
	for _, rule := range append(append([]models.AlertRule{}, builtin...), custom...) {
		if enabled, ok := toggles[rule.ID]; ok {
			rule.Enabled = enabled
		}
		merged = append(merged, rule)
	}
	return merged
}

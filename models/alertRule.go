package models

import "time"

type RuleOperator string

const (
	RuleOperatorGreaterThan RuleOperator = "greaterThan"
	RuleOperatorLessThan    RuleOperator = "lessThan"
)

type RuleCondition struct {
	Field    string       `json:"field"`
	Operator RuleOperator `json:"operator"`
	Value    float64      `json:"value"`
}

// AlertRule is configuration only in this version; rules are not enforced
// against live alerts. Built-in rule content is immutable; the enabled flag
// of any rule can be overridden through the toggle map.
type AlertRule struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	AlertType   AlertType     `json:"alert_type"`
	Severity    Severity      `json:"severity"`
	Condition   RuleCondition `json:"condition"`
	Enabled     bool          `json:"enabled"`
	CreatedAt   time.Time     `json:"created_at"`
}

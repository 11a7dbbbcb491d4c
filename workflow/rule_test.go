package workflow

import (
	"testing"
	"time"

	"bitbucket.org/mmdatafocus/alerts_backend/models"
)

func TestBuiltinRules(t *testing.T) {
	now := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	rules := BuiltinRules(now)
	if len(rules) != 6 {
		t.Fatalf("expected 6 built-in rules, got %d", len(rules))
	}
	for _, rule := range rules {
		if !IsBuiltinRuleId(rule.ID) {
			t.Fatalf("%s not recognized as built-in", rule.ID)
		}
		if IsCustomRuleId(rule.ID) {
			t.Fatalf("%s must not look like a custom rule id", rule.ID)
		}
	}
	// The large-invoice rule ships disabled.
	if rules[5].ID != "rule-6" || rules[5].Enabled {
		t.Fatalf("rule-6 should ship disabled")
	}
}

func TestCustomRuleId(t *testing.T) {
	id := CustomRuleId("abc")
	if !IsCustomRuleId(id) {
		t.Fatalf("%s should be recognized as custom", id)
	}
	if IsBuiltinRuleId(id) {
		t.Fatalf("%s must not be built-in", id)
	}
}

func TestMergeRules_TogglesApplyToBoth(t *testing.T) {
	now := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	custom := []models.AlertRule{
		{ID: CustomRuleId("one"), Name: "Custom", Enabled: true},
	}
	toggles := map[string]bool{
		"rule-1":            false,
		"rule-6":            true,
		CustomRuleId("one"): false,
	}

	merged := MergeRules(BuiltinRules(now), custom, toggles)
	if len(merged) != 7 {
		t.Fatalf("expected 7 merged rules, got %d", len(merged))
	}
	byId := map[string]models.AlertRule{}
	for _, rule := range merged {
		byId[rule.ID] = rule
	}
	if byId["rule-1"].Enabled {
		t.Fatalf("toggle should disable rule-1")
	}
	if !byId["rule-6"].Enabled {
		t.Fatalf("toggle should enable rule-6")
	}
	if byId[CustomRuleId("one")].Enabled {
		t.Fatalf("toggle should disable the custom rule")
	}
	// Untouched rules keep their shipped state.
	if !byId["rule-2"].Enabled {
		t.Fatalf("rule-2 should stay enabled")
	}
}

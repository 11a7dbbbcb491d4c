package config

import (
	"os"
	"strings"
)

// LiveDraftsEnabled switches reminder draft rendering from the built-in
// templates to a live LLM renderer.
//
// Set via env:
// - ENABLE_LIVE_DRAFTS=true
func LiveDraftsEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("ENABLE_LIVE_DRAFTS")))
	return v == "1" || v == "true" || v == "yes" || v == "y"
}

// FirmName is used in rendered reminder emails.
//
// Set via env:
// - FIRM_NAME="Johnson & Associates CPA"
func FirmName() string {
	if v := strings.TrimSpace(os.Getenv("FIRM_NAME")); v != "" {
		return v
	}
	return "Johnson & Associates CPA"
}

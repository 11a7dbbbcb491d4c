package utils

import (
	"github.com/ttacon/libphonenumber"
)

// FormatPhoneNational renders a stored 10-digit US phone number for display,
// e.g. "5552345678" -> "(555) 234-5678". Unparseable input is returned as-is.
func FormatPhoneNational(raw string) string {
	if raw == "" {
		return ""
	}
	num, err := libphonenumber.Parse(raw, "US")
	if err != nil {
		return raw
	}
	return libphonenumber.Format(num, libphonenumber.NATIONAL)
}

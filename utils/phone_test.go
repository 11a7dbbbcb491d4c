package utils

import "testing"

func TestFormatPhoneNational(t *testing.T) {
	cases := []struct {
		in       string
		expected string
	}{
		{"5552345678", "(555) 234-5678"},
		{"+15552345678", "(555) 234-5678"},
		{"not-a-number", "not-a-number"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := FormatPhoneNational(tc.in); got != tc.expected {
			t.Fatalf("FormatPhoneNational(%q) expected %q, got %q", tc.in, tc.expected, got)
		}
	}
}

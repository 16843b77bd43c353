// Package utils contains small helpers shared across the service.
package utils

import (
	"strings"
	"unicode"
)

// maxLogValueLength caps remote-controlled values in log lines.
const maxLogValueLength = 256

// SanitizeLogString makes a remote-controlled string safe to log. Admin-API
// response bodies end up in log lines through wrapped errors, so control
// characters become spaces, non-printable runes are dropped, percent signs are
// escaped, and overlong values are truncated.
func SanitizeLogString(input string) string {
	if input == "" {
		return ""
	}

	if len(input) > maxLogValueLength {
		input = input[:maxLogValueLength] + "... (truncated)"
	}

	// Collapse CRLF first so it maps to a single space.
	input = strings.ReplaceAll(input, "\r\n", "\n")

	sanitized := strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return ' '
		}
		if !unicode.IsGraphic(r) {
			return -1
		}
		return r
	}, input)

	// Escape format specifiers so a hostile value cannot be interpreted by a
	// later printf.
	return strings.ReplaceAll(sanitized, "%", "%%")
}

package utils_test

import (
	"strings"
	"testing"

	"github.com/catalodge/roomboard/internal/utils"
	"github.com/stretchr/testify/assert"
)

func TestSanitizeLogString(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "plain admin status",
			input:    "Awaiting Payment",
			expected: "Awaiting Payment",
		},
		{
			name:     "format specifiers escaped",
			input:    "room %s occupancy %d",
			expected: "room %%s occupancy %%d",
		},
		{
			name:     "newlines collapsed",
			input:    "error line one\nline two\r\nline three",
			expected: "error line one line two line three",
		},
		{
			name:     "control characters",
			input:    "status\twith\x00control\x1Fbytes",
			expected: "status with control bytes",
		},
		{
			name:     "html passes through",
			input:    "<b>Occupied</b>",
			expected: "<b>Occupied</b>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, utils.SanitizeLogString(tt.input))
		})
	}
}

func TestSanitizeLogStringTruncates(t *testing.T) {
	long := strings.Repeat("A", 1000)
	got := utils.SanitizeLogString(long)
	assert.True(t, strings.HasSuffix(got, "... (truncated)"))
	assert.Less(t, len(got), 300)
}

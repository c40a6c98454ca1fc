package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSanitizeBookmarkName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple title", "Add login flow", "add-login-flow"},
		{"conventional prefix dropped", "feat: add login flow", "add-login-flow"},
		{"scoped conventional prefix dropped", "fix(auth): token refresh", "token-refresh"},
		{"punctuation collapses to single hyphens", "Add  login!!  (v2)", "add-login-v2"},
		{"only the first line is used", "Add login\n\nLong body here", "add-login"},
		{"trailing dots and slashes stripped", "cleanup tmp files...", "cleanup-tmp-files"},
		{"empty input", "", ""},
		{"only invalid characters", "!!!", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, SanitizeBookmarkName(tt.input))
		})
	}
}

func TestSanitizeBookmarkNameMaxLength(t *testing.T) {
	long := strings.Repeat("word ", 100)

	name := SanitizeBookmarkName(long)
	require.LessOrEqual(t, len(name), MaxBookmarkNameByteLength)
	require.False(t, strings.HasSuffix(name, "-"))
}

package version

import (
	"bytes"
	"strings"
	"testing"
)

func TestFormatFull(t *testing.T) {
	tests := []struct {
		name     string
		info     Info
		expected string
	}{
		{
			name:     "no commit",
			info:     Info{Version: "v1.2.3", Commit: unknown, Date: unknown},
			expected: "v1.2.3",
		},
		{
			name:     "short commit is ignored",
			info:     Info{Version: "v1.2.3", Commit: "abc", Date: "2026-01-01"},
			expected: "v1.2.3",
		},
		{
			name:     "commit without date",
			info:     Info{Version: "v1.2.3", Commit: "0123456789abcdef", Date: unknown},
			expected: "v1.2.3 (0123456)",
		},
		{
			name:     "commit with date",
			info:     Info{Version: "v1.2.3", Commit: "0123456789abcdef", Date: "2026-01-01T00:00:00Z"},
			expected: "v1.2.3 (0123456, built 2026-01-01T00:00:00Z)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := formatFull(tt.info); result != tt.expected {
				t.Errorf("formatFull(%+v) = %q, expected %q", tt.info, result, tt.expected)
			}
		})
	}
}

func TestLinkTimeValuesWin(t *testing.T) {
	oldVersion, oldCommit, oldDate := Version, Commit, Date
	t.Cleanup(func() { Version, Commit, Date = oldVersion, oldCommit, oldDate })

	Version, Commit, Date = "v9.9.9", "fedcba9876543210", "2026-10-18"

	if got := GetVersion(); got != "v9.9.9" {
		t.Errorf("GetVersion() = %q, expected v9.9.9", got)
	}
	if got := GetFullVersion(); got != "v9.9.9 (fedcba9, built 2026-10-18)" {
		t.Errorf("GetFullVersion() = %q", got)
	}

	var buf bytes.Buffer
	PrintVersion(&buf, "fizzbuzz")
	if !strings.HasPrefix(buf.String(), "fizzbuzz version v9.9.9") {
		t.Errorf("PrintVersion() wrote %q", buf.String())
	}
	if !strings.Contains(buf.String(), "Package: fizzbuzz\n") {
		t.Errorf("PrintVersion() missing package line: %q", buf.String())
	}
}

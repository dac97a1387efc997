// sanitize_test.go — Unit tests for model-output cleaning.
package report

import (
	"strings"
	"testing"
)

// TestSanitize verifies markdown stripping and Latin-1 substitution.
func TestSanitize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "plain text passes through",
			input: "SECTION 1: EXECUTIVE SUMMARY",
			want:  "SECTION 1: EXECUTIVE SUMMARY",
		},
		{
			name:  "bold markers stripped",
			input: "This is **very important** text",
			want:  "This is very important text",
		},
		{
			name:  "heading hashes stripped",
			input: "### Critical Gaps\n## Remediation",
			want:  "Critical Gaps\nRemediation",
		},
		{
			name:  "latin-1 characters survive",
			input: "résumé naïve façade",
			want:  "résumé naïve façade",
		},
		{
			name:  "unsupported runes become markers",
			input: "score: 85 → 90 ✓",
			want:  "score: 85 ? 90 ?",
		},
		{
			name:  "em dash becomes marker",
			input: "pass — fail",
			want:  "pass ? fail",
		},
		{
			name:  "empty input",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Sanitize(tt.input)
			if got != tt.want {
				t.Errorf("Sanitize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}

	// Whatever goes in, nothing above the Latin-1 range comes out.
	t.Run("output is always latin-1", func(t *testing.T) {
		out := Sanitize("mixed ascii, 中文, émoji 🎉, and ASCII again")
		for _, r := range out {
			if r > 255 {
				t.Errorf("Sanitize output contains rune %q above Latin-1 range: %q", r, out)
			}
		}
		if strings.ContainsRune(out, '\x1a') {
			t.Errorf("Sanitize output contains raw substitute byte: %q", out)
		}
	})
}

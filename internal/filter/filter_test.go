package filter

import "testing"

func TestMatch(t *testing.T) {
	keywords := DefaultKeywords()

	tests := []struct {
		name     string
		subject  string
		expected bool
	}{
		{
			name:     "Interview invitation",
			subject:  "Interview Invitation - Acme Corp",
			expected: true,
		},
		{
			name:     "Application received",
			subject:  "Your application has been received",
			expected: true,
		},
		{
			name:     "Uppercase keyword",
			subject:  "JOB OFFER ENCLOSED",
			expected: true,
		},
		{
			name:     "Keyword inside word",
			subject:  "Limited time offers inside",
			expected: true, // substring match, "offer" inside "offers"
		},
		{
			name:     "Rejection notice",
			subject:  "You have been rejected",
			expected: true,
		},
		{
			name:     "Newsletter",
			subject:  "Weekly digest: 10 recipes to try",
			expected: false,
		},
		{
			name:     "Empty subject",
			subject:  "",
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := keywords.Match(tt.subject); got != tt.expected {
				t.Errorf("Match(%q) = %v, want %v", tt.subject, got, tt.expected)
			}
		})
	}
}

func TestNew(t *testing.T) {
	t.Run("empty falls back to defaults", func(t *testing.T) {
		k := New(nil)
		if len(k) != len(DefaultKeywords()) {
			t.Errorf("New(nil) returned %d keywords, want %d", len(k), len(DefaultKeywords()))
		}
	})

	t.Run("configured keywords are normalized", func(t *testing.T) {
		k := New([]string{" Recruiter ", "", "OPPORTUNITY"})
		if len(k) != 2 {
			t.Fatalf("New() returned %d keywords, want 2", len(k))
		}
		if !k.Match("An exciting opportunity at Beta LLC") {
			t.Error("Match() = false for configured keyword, want true")
		}
		if k.Match("Interview Invitation") {
			t.Error("Match() = true for default keyword after override, want false")
		}
	})
}

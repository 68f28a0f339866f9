package repository

import "testing"

func TestLikePatternEscapesWildcards(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"wellness", "%wellness%"},
		{"100%", `%100\%%`},
		{"senior_care", `%senior\_care%`},
		{`back\slash`, `%back\\slash%`},
		{"", "%%"},
	}

	for _, tt := range tests {
		if got := likePattern(tt.in); got != tt.want {
			t.Errorf("likePattern(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

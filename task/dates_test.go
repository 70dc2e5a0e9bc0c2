package task

import (
	"testing"
	"time"
)

func TestParseDueDate(t *testing.T) {
	// Wednesday, 2026-03-11.
	now := time.Date(2026, time.March, 11, 14, 30, 0, 0, time.UTC)
	today := time.Date(2026, time.March, 11, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		input string
		want  *time.Time
	}{
		{"", nil},
		{"none", nil},
		{"today", &today},
		{"Today", &today},
		{"tomorrow", timePtr(today.AddDate(0, 0, 1))},
		// The next Friday strictly after today.
		{"friday", timePtr(today.AddDate(0, 0, 2))},
		// A weekday matching today means next week, not today.
		{"wednesday", timePtr(today.AddDate(0, 0, 7))},
		{"2026-04-01", timePtr(time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC))},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseDueDate(tt.input, now)
			if err != nil {
				t.Fatalf("parse %q: %v", tt.input, err)
			}
			if tt.want == nil {
				if got != nil {
					t.Errorf("expected nil, got %v", got)
				}
				return
			}
			if got == nil || !got.Equal(*tt.want) {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestParseDueDate_Invalid(t *testing.T) {
	now := time.Date(2026, time.March, 11, 14, 30, 0, 0, time.UTC)

	for _, input := range []string{"someday", "2026-13-01", "01/02/2026"} {
		if _, err := ParseDueDate(input, now); err == nil {
			t.Errorf("expected an error for %q", input)
		}
	}
}

package task

import (
	"fmt"
	"strings"
	"time"
)

// ParseDueDate interprets a user-supplied due date. Supported forms are
// "" / "none" (no due date), "today", "tomorrow", a lowercase weekday name
// (the next such weekday strictly after today), and an ISO date like
// "2026-03-14".
func ParseDueDate(value string, now time.Time) (*time.Time, error) {
	value = strings.ToLower(strings.TrimSpace(value))
	switch value {
	case "", "none":
		return nil, nil
	case "today":
		day := startOfDay(now)
		return &day, nil
	case "tomorrow":
		day := startOfDay(now).AddDate(0, 0, 1)
		return &day, nil
	}

	for weekday := time.Sunday; weekday <= time.Saturday; weekday++ {
		if value != strings.ToLower(weekday.String()) {
			continue
		}
		day := startOfDay(now).AddDate(0, 0, 1)
		for day.Weekday() != weekday {
			day = day.AddDate(0, 0, 1)
		}
		return &day, nil
	}

	parsed, err := time.ParseInLocation("2006-01-02", value, now.Location())
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: expected YYYY-MM-DD, today, tomorrow, or a weekday", value)
	}
	return &parsed, nil
}

func startOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

// sameDay reports whether two instants fall on the same calendar day.
func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// beforeDay reports whether a's calendar day is strictly before b's.
func beforeDay(a, b time.Time) bool {
	return startOfDay(a).Before(startOfDay(b))
}

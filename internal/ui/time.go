package ui

import (
	"fmt"
	"time"
)

// FormatDate renders a timestamp as a plain calendar date.
func FormatDate(t time.Time) string {
	return t.Format("2006-01-02")
}

// FormatDueDate renders a due date relative to now: "today", "tomorrow",
// "yesterday", a weekday name inside the coming week, otherwise the
// calendar date. Overdue dates older than yesterday get a day count.
func FormatDueDate(due time.Time, now time.Time) string {
	dueDay := startOfDay(due)
	today := startOfDay(now)
	days := int(dueDay.Sub(today).Hours() / 24)

	switch {
	case days == 0:
		return "today"
	case days == 1:
		return "tomorrow"
	case days == -1:
		return "yesterday"
	case days < -1:
		return fmt.Sprintf("%dd overdue", -days)
	case days < 7:
		return due.Format("Monday")
	default:
		return FormatDate(due)
	}
}

// FormatReminder renders a reminder timestamp with its clock time.
func FormatReminder(reminder time.Time, now time.Time) string {
	day := FormatDueDate(reminder, now)
	return day + " " + reminder.Format("15:04")
}

// FormatTimeAgo returns a compact age string like "2m ago".
func FormatTimeAgo(then time.Time, now time.Time) string {
	if then.IsZero() {
		return "-"
	}
	return FormatDurationShort(now.Sub(then)) + " ago"
}

// FormatDurationShort formats a duration using short units (s/m/h/d).
func FormatDurationShort(duration time.Duration) string {
	if duration < 0 {
		duration = 0
	}

	duration = duration.Truncate(time.Second)
	seconds := int64(duration.Seconds())
	if seconds < 60 {
		return fmt.Sprintf("%ds", seconds)
	}

	minutes := seconds / 60
	if minutes < 60 {
		return fmt.Sprintf("%dm", minutes)
	}

	hours := minutes / 60
	if hours < 24 {
		return fmt.Sprintf("%dh", hours)
	}

	days := hours / 24
	return fmt.Sprintf("%dd", days)
}

// FormatClock renders a preset's hour and minute as "15:04".
func FormatClock(hour, minute int) string {
	return fmt.Sprintf("%02d:%02d", hour, minute)
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// Package stats computes read-only aggregates over a task collection.
// Every function is pure: it takes a snapshot of tasks plus a reference
// time and returns derived numbers without mutating anything.
package stats

import (
	"time"

	"daybook/task"
)

// Summary holds the basic counts over a task collection.
type Summary struct {
	Total     int
	Completed int
	Active    int
	Important int
	Planned   int
}

// Summarize counts the whole collection. Important counts incomplete
// important tasks only; Planned counts tasks with a due date or reminder.
func Summarize(tasks []task.Task) Summary {
	var s Summary
	s.Total = len(tasks)
	for i := range tasks {
		t := &tasks[i]
		if t.Completed {
			s.Completed++
		} else {
			s.Active++
			if t.Important {
				s.Important++
			}
		}
		if t.DueDate != nil || t.Reminder != nil {
			s.Planned++
		}
	}
	return s
}

// DateSummary holds day- and week-scoped counts relative to a reference
// time.
type DateSummary struct {
	DueToday          int
	Overdue           int
	CompletedToday    int
	CompletedThisWeek int
}

// SummarizeDates computes date-based metrics against the entire
// collection. Overdue means incomplete with a due date on a calendar day
// strictly before now's. Completion days come from UpdatedAt. Weeks start
// on Monday.
func SummarizeDates(tasks []task.Task, now time.Time) DateSummary {
	var s DateSummary
	weekStart := startOfWeek(now)
	for i := range tasks {
		t := &tasks[i]
		if t.DueDate != nil {
			switch {
			case sameDay(*t.DueDate, now):
				s.DueToday++
			case !t.Completed && t.DueDate.Before(startOfDay(now)):
				s.Overdue++
			}
		}
		if t.Completed {
			if sameDay(t.UpdatedAt, now) {
				s.CompletedToday++
			}
			if !t.UpdatedAt.Before(weekStart) && t.UpdatedAt.Before(weekStart.AddDate(0, 0, 7)) {
				s.CompletedThisWeek++
			}
		}
	}
	return s
}

// CompletionRate returns completed as a rounded percentage of total, or 0
// when the collection is empty.
func CompletionRate(tasks []task.Task) int {
	s := Summarize(tasks)
	if s.Total == 0 {
		return 0
	}
	return int(float64(s.Completed)/float64(s.Total)*100 + 0.5)
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// startOfWeek returns midnight on the Monday of t's week.
func startOfWeek(t time.Time) time.Time {
	day := startOfDay(t)
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}

package stats

import (
	"math"
	"time"

	"daybook/task"
)

// Productivity holds derived productivity metrics.
type Productivity struct {
	// AvgCompletionHours is the mean time from creation to completion,
	// in hours, over completed tasks. 0 when nothing qualifies.
	AvgCompletionHours float64
	// CreationRate is tasks created in the trailing 7 days divided by 7,
	// rounded to one decimal.
	CreationRate float64
	// Streak is the number of consecutive days, ending today or
	// yesterday, with at least one completion.
	Streak int
	// DailyAverage is completions in the trailing 7 days divided by 7,
	// rounded to one decimal.
	DailyAverage float64
}

// Measure computes all productivity metrics against the full collection.
func Measure(tasks []task.Task, now time.Time) Productivity {
	return Productivity{
		AvgCompletionHours: averageCompletionHours(tasks),
		CreationRate:       trailingWeekRate(tasks, now, createdOn),
		Streak:             completionStreak(tasks, now),
		DailyAverage:       trailingWeekRate(tasks, now, completedOn),
	}
}

func averageCompletionHours(tasks []task.Task) float64 {
	var total float64
	var n int
	for i := range tasks {
		t := &tasks[i]
		if !t.Completed || t.CreatedAt.IsZero() || t.UpdatedAt.IsZero() {
			continue
		}
		hours := t.UpdatedAt.Sub(t.CreatedAt).Hours()
		if hours < 0 {
			hours = 0
		}
		total += hours
		n++
	}
	if n == 0 {
		return 0
	}
	return total / float64(n)
}

func createdOn(t *task.Task) time.Time { return t.CreatedAt }

func completedOn(t *task.Task) time.Time {
	if !t.Completed {
		return time.Time{}
	}
	return t.UpdatedAt
}

// trailingWeekRate counts tasks whose extracted timestamp falls in the 7
// days ending now, divides by 7, and rounds to one decimal.
func trailingWeekRate(tasks []task.Task, now time.Time, when func(*task.Task) time.Time) float64 {
	cutoff := now.AddDate(0, 0, -7)
	var n int
	for i := range tasks {
		ts := when(&tasks[i])
		if ts.IsZero() {
			continue
		}
		if ts.After(cutoff) && !ts.After(now) {
			n++
		}
	}
	return math.Round(float64(n)/7*10) / 10
}

// completionStreak walks backward from today counting consecutive days
// with at least one completion. Today is allowed to be empty without
// breaking the streak; any earlier empty day ends it.
func completionStreak(tasks []task.Task, now time.Time) int {
	days := make(map[time.Time]bool)
	for i := range tasks {
		t := &tasks[i]
		if t.Completed && !t.UpdatedAt.IsZero() {
			days[startOfDay(t.UpdatedAt.In(now.Location()))] = true
		}
	}

	streak := 0
	day := startOfDay(now)
	skippedToday := false
	for {
		if days[day] {
			streak++
		} else if !skippedToday && day.Equal(startOfDay(now)) {
			skippedToday = true
		} else {
			break
		}
		day = day.AddDate(0, 0, -1)
	}
	return streak
}

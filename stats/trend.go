package stats

import (
	"math"
	"strconv"
	"time"

	"daybook/task"
)

// Direction classifies a week-over-week movement.
type Direction string

const (
	Up      Direction = "up"
	Down    Direction = "down"
	Neutral Direction = "neutral"
)

// Trend is a directional indicator comparing a current metric to its
// previous-period value.
type Trend struct {
	Direction Direction
	// Value is the absolute percent change. 0 for "new" and "stable"
	// trends.
	Value int
	Label string
}

// CalculateTrend compares current to previous. When previous is 0 and
// current is positive the metric is brand new; when both are 0 there is
// no trend to report. Changes under 5 percent are treated as stable.
func CalculateTrend(current, previous int) (Trend, bool) {
	if previous == 0 {
		if current == 0 {
			return Trend{}, false
		}
		return Trend{Direction: Up, Label: "new"}, true
	}

	change := float64(current-previous) / float64(previous) * 100
	if math.Abs(change) < 5 {
		return Trend{Direction: Neutral, Label: "stable"}, true
	}

	percent := int(math.Round(math.Abs(change)))
	dir := Up
	if change < 0 {
		dir = Down
	}
	return Trend{Direction: dir, Value: percent, Label: strconv.Itoa(percent) + "%"}, true
}

// PreviousWeekRange returns the half-open interval [start, end) covering
// the calendar week before now's, Monday through Sunday.
func PreviousWeekRange(now time.Time) (start, end time.Time) {
	end = startOfWeek(now)
	return end.AddDate(0, 0, -7), end
}

// PreviousWeekTasks filters the collection to tasks last updated during
// the previous calendar week, for use as a trend baseline.
func PreviousWeekTasks(tasks []task.Task, now time.Time) []task.Task {
	start, end := PreviousWeekRange(now)
	var out []task.Task
	for i := range tasks {
		ts := tasks[i].UpdatedAt
		if !ts.Before(start) && ts.Before(end) {
			out = append(out, tasks[i])
		}
	}
	return out
}

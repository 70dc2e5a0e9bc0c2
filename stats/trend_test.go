package stats

import (
	"testing"
	"time"

	"daybook/task"
)

func TestCalculateTrend(t *testing.T) {
	tests := []struct {
		name     string
		current  int
		previous int
		want     Trend
		ok       bool
	}{
		{"both zero", 0, 0, Trend{}, false},
		{"new metric", 5, 0, Trend{Direction: Up, Label: "new"}, true},
		{"small change is stable", 103, 100, Trend{Direction: Neutral, Label: "stable"}, true},
		{"small drop is stable", 97, 100, Trend{Direction: Neutral, Label: "stable"}, true},
		{"twenty percent up", 120, 100, Trend{Direction: Up, Value: 20, Label: "20%"}, true},
		{"twenty percent down", 80, 100, Trend{Direction: Down, Value: 20, Label: "20%"}, true},
		{"drop to zero", 0, 4, Trend{Direction: Down, Value: 100, Label: "100%"}, true},
		{"rounded percent", 107, 100, Trend{Direction: Up, Value: 7, Label: "7%"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := CalculateTrend(tt.current, tt.previous)
			if ok != tt.ok {
				t.Fatalf("expected ok=%v, got %v", tt.ok, ok)
			}
			if got != tt.want {
				t.Errorf("expected %+v, got %+v", tt.want, got)
			}
		})
	}
}

func TestPreviousWeekRange(t *testing.T) {
	start, end := PreviousWeekRange(now)

	wantStart := time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC)
	wantEnd := time.Date(2026, time.March, 9, 0, 0, 0, 0, time.UTC)
	if !start.Equal(wantStart) || !end.Equal(wantEnd) {
		t.Errorf("expected [%v, %v), got [%v, %v)", wantStart, wantEnd, start, end)
	}
}

func TestPreviousWeekTasks(t *testing.T) {
	tasks := []task.Task{
		{Title: "this week", UpdatedAt: day(-1)},
		{Title: "last week", UpdatedAt: day(-4)},
		// The boundary is half-open: this Monday belongs to this week.
		{Title: "this monday", UpdatedAt: day(-2)},
		{Title: "last monday", UpdatedAt: day(-9)},
		{Title: "two weeks ago", UpdatedAt: day(-10)},
	}

	got := PreviousWeekTasks(tasks, now)
	if len(got) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(got))
	}
	if got[0].Title != "last week" || got[1].Title != "last monday" {
		t.Errorf("unexpected baseline tasks: %q, %q", got[0].Title, got[1].Title)
	}
}

package task

import "time"

// NextDueDate computes the next occurrence after due for a repeating task.
//
// Weekly, monthly, and yearly recurrence add exactly one unit. Daily
// recurrence adds one day, unless repeatDays restricts the allowed weekdays,
// in which case the scan walks forward day by day (at most 7 days) to the
// first allowed weekday after due.
func NextDueDate(due time.Time, repeat Repeat, repeatDays []int) time.Time {
	switch repeat {
	case RepeatWeekly:
		return due.AddDate(0, 0, 7)
	case RepeatMonthly:
		return due.AddDate(0, 1, 0)
	case RepeatYearly:
		return due.AddDate(1, 0, 0)
	case RepeatDaily:
		if len(repeatDays) == 0 {
			return due.AddDate(0, 0, 1)
		}
		allowed := make(map[int]bool, len(repeatDays))
		for _, day := range repeatDays {
			allowed[day] = true
		}
		next := due.AddDate(0, 0, 1)
		for i := 0; i < 7; i++ {
			if allowed[int(next.Weekday())] {
				return next
			}
			next = next.AddDate(0, 0, 1)
		}
		// Unreachable with a non-empty set, but keep a sane fallback.
		return due.AddDate(0, 0, 1)
	}
	return due
}

// shouldRollForward reports whether a task is a rollover candidate: completed,
// repeating, and due on a calendar day strictly before today.
func shouldRollForward(t *Task, now time.Time) bool {
	if !t.Completed || t.DueDate == nil {
		return false
	}
	if t.Repeat == "" || t.Repeat == RepeatNone {
		return false
	}
	return beforeDay(*t.DueDate, now)
}

// ProcessRepeatingTasks advances every completed, past-due repeating task to
// its next occurrence: completion is cleared, the due date moves forward, and
// the task leaves My Day since it rolled to a new date. Returns the number of
// tasks rolled. The scan also runs once when the store is opened; there is no
// timer, so a long-idle client catches up on the next load.
func (s *Store) ProcessRepeatingTasks() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	rolled := processRepeatingTasks(s.state, s.now())
	if rolled > 0 {
		s.commit(nil)
	}
	return rolled
}

func processRepeatingTasks(st *AppState, now time.Time) int {
	rolled := 0
	tasks := cloneTasks(st.Tasks)
	for i := range tasks {
		if !shouldRollForward(&tasks[i], now) {
			continue
		}
		next := NextDueDate(*tasks[i].DueDate, tasks[i].Repeat, tasks[i].RepeatDays)
		tasks[i].Completed = false
		tasks[i].DueDate = &next
		tasks[i].MyDay = false
		tasks[i].UpdatedAt = now
		rolled++
	}
	st.Tasks = tasks
	return rolled
}

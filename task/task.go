// Package task implements the daybook domain store.
//
// The Store owns the aggregate application state (tasks, lists, list groups,
// categories, time presets, and the current view selection) and is its sole
// mutator. Every command validates its input, transforms whole collections,
// snapshots the result through a Persister, and reports outcomes through a
// Notifier. Reads (the view query engine in query.go) never mutate.
//
// The public API mirrors the CLI commands:
//   - AddTask, UpdateTask, DeleteTask and the Toggle* family for tasks
//   - AddSubTask, ToggleSubTask, DeleteSubTask for checklist steps
//   - list, group, category, and time-preset CRUD
//   - FilteredTasks, TasksForCurrentView and the count queries
//   - ProcessRepeatingTasks for rolling completed repeating tasks forward
package task

import "time"

// Repeat describes how a task recurs after completion.
type Repeat string

const (
	// RepeatNone indicates the task does not recur.
	RepeatNone Repeat = "none"

	// RepeatDaily recurs every day, or on the weekdays in RepeatDays.
	RepeatDaily Repeat = "daily"

	// RepeatWeekly recurs one week after the due date.
	RepeatWeekly Repeat = "weekly"

	// RepeatMonthly recurs one month after the due date.
	RepeatMonthly Repeat = "monthly"

	// RepeatYearly recurs one year after the due date.
	RepeatYearly Repeat = "yearly"
)

// ValidRepeats returns all valid repeat values.
func ValidRepeats() []Repeat {
	return []Repeat{RepeatNone, RepeatDaily, RepeatWeekly, RepeatMonthly, RepeatYearly}
}

// IsValid returns true if the repeat is a known valid value.
func (r Repeat) IsValid() bool {
	for _, valid := range ValidRepeats() {
		if r == valid {
			return true
		}
	}
	return false
}

// MaxTitleLength is the maximum allowed length for a task title.
const MaxTitleLength = 200

// SubTask is a checklist step owned by exactly one task.
type SubTask struct {
	// ID is a unique identifier within the owning task.
	ID string `json:"id"`

	// Title is the step text.
	Title string `json:"title"`

	// Completed marks the step as checked off.
	Completed bool `json:"completed"`

	// CreatedAt is when the step was added.
	CreatedAt time.Time `json:"createdAt"`
}

// Task represents a single task.
type Task struct {
	// ID is a unique identifier (8-char alphanumeric, derived from the
	// initial title + creation timestamp).
	ID string `json:"id"`

	// Title is the short summary of the task (max 200 chars).
	Title string `json:"title"`

	// Notes holds free-form markdown attached to the task.
	Notes string `json:"notes,omitempty"`

	// Completed marks the task as done. Repeating tasks are rolled forward
	// instead of staying completed past their due date.
	Completed bool `json:"completed"`

	// Important flags the task for the important view.
	Important bool `json:"important"`

	// MyDay flags the task for today's my-day view.
	MyDay bool `json:"myDay"`

	// Pinned sorts the task to the top of its list view.
	Pinned bool `json:"pinned"`

	// PinnedGlobally sorts the task to the top of every view.
	PinnedGlobally bool `json:"pinnedGlobally"`

	// DueDate is when the task is due (nil if unscheduled).
	DueDate *time.Time `json:"dueDate,omitempty"`

	// Reminder is when the task should raise a reminder (nil if none).
	Reminder *time.Time `json:"reminder,omitempty"`

	// Repeat describes how the task recurs.
	Repeat Repeat `json:"repeat"`

	// RepeatDays restricts daily recurrence to weekday indices 0 (Sunday)
	// through 6 (Saturday). Only consulted when Repeat is daily.
	RepeatDays []int `json:"repeatDays,omitempty"`

	// Order is the task's position within its owning list.
	Order int `json:"order"`

	// ListID is the owning list.
	ListID string `json:"listId"`

	// CategoryIDs is the set of categories the task belongs to. Membership
	// is advisory: dangling ids are filtered on read, never enforced.
	CategoryIDs []string `json:"categoryIds,omitempty"`

	// Steps is the ordered checklist owned by the task.
	Steps []SubTask `json:"steps,omitempty"`

	// CreatedAt is when the task was created.
	CreatedAt time.Time `json:"createdAt"`

	// UpdatedAt is when the task was last modified.
	UpdatedAt time.Time `json:"updatedAt"`
}

// HasCategory reports whether the task carries the category id.
func (t *Task) HasCategory(categoryID string) bool {
	for _, id := range t.CategoryIDs {
		if id == categoryID {
			return true
		}
	}
	return false
}

// Step returns the index of the step with the given id, or -1.
func (t *Task) Step(stepID string) int {
	for i := range t.Steps {
		if t.Steps[i].ID == stepID {
			return i
		}
	}
	return -1
}

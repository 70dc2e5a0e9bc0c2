package task

import (
	"fmt"
	"time"
)

// TaskOptions configures a new task beyond its title and list.
type TaskOptions struct {
	Notes       string
	DueDate     *time.Time
	Reminder    *time.Time
	Important   bool
	MyDay       bool
	Pinned      bool
	Repeat      Repeat
	RepeatDays  []int
	CategoryIDs []string

	// Steps are checklist titles materialized with fresh identities.
	Steps []string
}

// AddTask creates a new task in the given list. The list must be an existing
// list id or the virtual default list "all". The task is appended at the end
// of the list's order.
func (s *Store) AddTask(title, listID string, opts TaskOptions) (*Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	created, events, err := addTask(s.state, title, listID, opts, s.now())
	if err != nil {
		return nil, s.fail(err)
	}
	s.commit(events)
	return created, nil
}

func addTask(st *AppState, title, listID string, opts TaskOptions, now time.Time) (*Task, []Event, error) {
	title = normalizeTitle(title)
	if err := ValidateTitle(title); err != nil {
		return nil, nil, err
	}
	if listID == "" {
		listID = ListAll
	}
	if listID != ListAll && st.list(listID) == nil {
		return nil, nil, fmt.Errorf("%w: %q", ErrListNotFound, listID)
	}
	if opts.Repeat == "" {
		opts.Repeat = RepeatNone
	}
	if err := ValidateRepeat(opts.Repeat, opts.RepeatDays); err != nil {
		return nil, nil, err
	}

	created := Task{
		ID:          GenerateID(title, now),
		Title:       title,
		Notes:       opts.Notes,
		Important:   opts.Important,
		MyDay:       opts.MyDay,
		Pinned:      opts.Pinned,
		DueDate:     opts.DueDate,
		Reminder:    opts.Reminder,
		Repeat:      opts.Repeat,
		RepeatDays:  append([]int(nil), opts.RepeatDays...),
		Order:       nextTaskOrder(st, listID),
		ListID:      listID,
		CategoryIDs: st.knownCategoryIDs(opts.CategoryIDs),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	for i, stepTitle := range opts.Steps {
		stepTitle = normalizeTitle(stepTitle)
		if err := ValidateTitle(stepTitle); err != nil {
			return nil, nil, err
		}
		// The index keeps ids distinct when a batch repeats a title.
		created.Steps = append(created.Steps, SubTask{
			ID:        GenerateID(fmt.Sprintf("%s#%d", stepTitle, i), now),
			Title:     stepTitle,
			CreatedAt: now,
		})
	}

	st.Tasks = append(cloneTasks(st.Tasks), created)
	return &created, []Event{successEvent("Task created", created.Title)}, nil
}

func nextTaskOrder(st *AppState, listID string) int {
	order := -1
	for i := range st.Tasks {
		if st.Tasks[i].ListID == listID && st.Tasks[i].Order > order {
			order = st.Tasks[i].Order
		}
	}
	return order + 1
}

// OptionalTime distinguishes "set to this value" from "clear" in a partial
// update. A nil *OptionalTime field means "leave unchanged"; a non-nil patch
// with a nil Value clears the timestamp.
type OptionalTime struct {
	Value *time.Time
}

// SetTime returns a patch that sets a timestamp.
func SetTime(t time.Time) *OptionalTime { return &OptionalTime{Value: &t} }

// ClearTime returns a patch that clears a timestamp.
func ClearTime() *OptionalTime { return &OptionalTime{} }

// TaskUpdate configures fields to update on a task.
// Nil pointers mean "don't update this field".
type TaskUpdate struct {
	Title          *string
	Notes          *string
	ListID         *string
	Completed      *bool
	Important      *bool
	MyDay          *bool
	Pinned         *bool
	PinnedGlobally *bool
	DueDate        *OptionalTime
	Reminder       *OptionalTime
	Repeat         *Repeat
	RepeatDays     *[]int
	CategoryIDs    *[]string
}

// UpdateTask merges the partial update into the task and refreshes its
// updatedAt timestamp. A due-date change that is a true value change emits an
// informational event; re-setting the same date does not.
func (s *Store) UpdateTask(id string, update TaskUpdate) (*Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	updated, events, err := updateTask(s.state, id, update, s.now())
	if err != nil {
		return nil, s.fail(err)
	}
	s.commit(events)
	return updated, nil
}

func updateTask(st *AppState, id string, update TaskUpdate, now time.Time) (*Task, []Event, error) {
	existing := st.task(id)
	if existing == nil {
		return nil, nil, fmt.Errorf("%w: %q", ErrTaskNotFound, id)
	}

	if update.Title != nil {
		title := normalizeTitle(*update.Title)
		if err := ValidateTitle(title); err != nil {
			return nil, nil, err
		}
		update.Title = &title
	}
	if update.ListID != nil && *update.ListID != ListAll && st.list(*update.ListID) == nil {
		return nil, nil, fmt.Errorf("%w: %q", ErrListNotFound, *update.ListID)
	}
	repeat := existing.Repeat
	if update.Repeat != nil {
		repeat = *update.Repeat
	}
	repeatDays := existing.RepeatDays
	if update.RepeatDays != nil {
		repeatDays = *update.RepeatDays
	}
	if err := ValidateRepeat(repeat, repeatDays); err != nil {
		return nil, nil, err
	}

	tasks := cloneTasks(st.Tasks)
	var events []Event
	var updated *Task
	for i := range tasks {
		if tasks[i].ID != id {
			continue
		}
		t := &tasks[i]
		if update.Title != nil {
			t.Title = *update.Title
		}
		if update.Notes != nil {
			t.Notes = *update.Notes
		}
		if update.ListID != nil && *update.ListID != t.ListID {
			t.ListID = *update.ListID
			t.Order = nextTaskOrder(st, t.ListID)
		}
		if update.Completed != nil {
			t.Completed = *update.Completed
		}
		if update.Important != nil {
			t.Important = *update.Important
		}
		if update.MyDay != nil {
			t.MyDay = *update.MyDay
		}
		if update.Pinned != nil {
			t.Pinned = *update.Pinned
		}
		if update.PinnedGlobally != nil {
			t.PinnedGlobally = *update.PinnedGlobally
		}
		if update.DueDate != nil {
			if dueDateChanged(t.DueDate, update.DueDate.Value) {
				events = append(events, dueDateEvent(update.DueDate.Value))
			}
			t.DueDate = update.DueDate.Value
		}
		if update.Reminder != nil {
			t.Reminder = update.Reminder.Value
		}
		t.Repeat = repeat
		t.RepeatDays = append([]int(nil), repeatDays...)
		if update.CategoryIDs != nil {
			t.CategoryIDs = st.knownCategoryIDs(*update.CategoryIDs)
		}
		t.UpdatedAt = now
		copied := *t
		updated = &copied
		break
	}

	st.Tasks = tasks
	return updated, events, nil
}

// dueDateChanged reports a true value change, accounting for the unset cases.
func dueDateChanged(previous, next *time.Time) bool {
	if previous == nil && next == nil {
		return false
	}
	if previous == nil || next == nil {
		return true
	}
	return !previous.Equal(*next)
}

func dueDateEvent(next *time.Time) Event {
	if next == nil {
		return infoEvent("Due date removed", "")
	}
	return infoEvent("Due date updated", next.Format("2006-01-02"))
}

// DeleteTask removes a task.
func (s *Store) DeleteTask(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing := s.state.task(id)
	if existing == nil {
		return s.fail(fmt.Errorf("%w: %q", ErrTaskNotFound, id))
	}
	title := existing.Title

	tasks := make([]Task, 0, len(s.state.Tasks)-1)
	for _, t := range s.state.Tasks {
		if t.ID != id {
			tasks = append(tasks, t)
		}
	}
	s.state.Tasks = tasks
	s.commit([]Event{infoEvent("Task deleted", title)})
	return nil
}

// ToggleTask flips a task's completion. Only the transition to completed
// emits an event, so reopening stays quiet.
func (s *Store) ToggleTask(id string) (*Task, error) {
	return s.toggle(id, func(t *Task) *Event {
		t.Completed = !t.Completed
		if t.Completed {
			event := successEvent("Task completed", t.Title)
			return &event
		}
		return nil
	})
}

// ToggleImportant flips a task's important flag.
func (s *Store) ToggleImportant(id string) (*Task, error) {
	return s.toggle(id, func(t *Task) *Event {
		t.Important = !t.Important
		if t.Important {
			event := infoEvent("Marked important", t.Title)
			return &event
		}
		return nil
	})
}

// ToggleMyDay flips a task's my-day flag.
func (s *Store) ToggleMyDay(id string) (*Task, error) {
	return s.toggle(id, func(t *Task) *Event {
		t.MyDay = !t.MyDay
		if t.MyDay {
			event := infoEvent("Added to My Day", t.Title)
			return &event
		}
		return nil
	})
}

// TogglePin flips a task's list-scoped pin.
func (s *Store) TogglePin(id string) (*Task, error) {
	return s.toggle(id, func(t *Task) *Event {
		t.Pinned = !t.Pinned
		if t.Pinned {
			event := infoEvent("Task pinned", t.Title)
			return &event
		}
		return nil
	})
}

// ToggleGlobalPin flips a task's cross-view pin.
func (s *Store) ToggleGlobalPin(id string) (*Task, error) {
	return s.toggle(id, func(t *Task) *Event {
		t.PinnedGlobally = !t.PinnedGlobally
		if t.PinnedGlobally {
			event := infoEvent("Task pinned everywhere", t.Title)
			return &event
		}
		return nil
	})
}

func (s *Store) toggle(id string, flip func(*Task) *Event) (*Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.task(id) == nil {
		return nil, s.fail(fmt.Errorf("%w: %q", ErrTaskNotFound, id))
	}

	now := s.now()
	tasks := cloneTasks(s.state.Tasks)
	var events []Event
	var updated *Task
	for i := range tasks {
		if tasks[i].ID != id {
			continue
		}
		if event := flip(&tasks[i]); event != nil {
			events = append(events, *event)
		}
		tasks[i].UpdatedAt = now
		copied := tasks[i]
		updated = &copied
		break
	}

	s.state.Tasks = tasks
	s.commit(events)
	return updated, nil
}

// AddSubTask appends a checklist step to a task.
func (s *Store) AddSubTask(taskID, title string) (*SubTask, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	title = normalizeTitle(title)
	if err := ValidateTitle(title); err != nil {
		return nil, s.fail(err)
	}
	if s.state.task(taskID) == nil {
		return nil, s.fail(fmt.Errorf("%w: %q", ErrTaskNotFound, taskID))
	}

	now := s.now()
	step := SubTask{ID: GenerateID(title, now), Title: title, CreatedAt: now}
	tasks := cloneTasks(s.state.Tasks)
	for i := range tasks {
		if tasks[i].ID != taskID {
			continue
		}
		tasks[i].Steps = append(append([]SubTask(nil), tasks[i].Steps...), step)
		tasks[i].UpdatedAt = now
		break
	}

	s.state.Tasks = tasks
	s.commit(nil)
	return &step, nil
}

// ToggleSubTask flips a checklist step's completion.
func (s *Store) ToggleSubTask(taskID, stepID string) error {
	return s.mutateStep(taskID, stepID, func(steps []SubTask, i int) []SubTask {
		steps[i].Completed = !steps[i].Completed
		return steps
	})
}

// DeleteSubTask removes a checklist step.
func (s *Store) DeleteSubTask(taskID, stepID string) error {
	return s.mutateStep(taskID, stepID, func(steps []SubTask, i int) []SubTask {
		return append(steps[:i], steps[i+1:]...)
	})
}

func (s *Store) mutateStep(taskID, stepID string, mutate func([]SubTask, int) []SubTask) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing := s.state.task(taskID)
	if existing == nil {
		return s.fail(fmt.Errorf("%w: %q", ErrTaskNotFound, taskID))
	}
	if existing.Step(stepID) < 0 {
		return s.fail(fmt.Errorf("%w: %q", ErrStepNotFound, stepID))
	}

	now := s.now()
	tasks := cloneTasks(s.state.Tasks)
	for i := range tasks {
		if tasks[i].ID != taskID {
			continue
		}
		steps := append([]SubTask(nil), tasks[i].Steps...)
		tasks[i].Steps = mutate(steps, tasks[i].Step(stepID))
		tasks[i].UpdatedAt = now
		break
	}

	s.state.Tasks = tasks
	s.commit(nil)
	return nil
}

// ReorderTasks assigns each listed task's order to its index in taskIDs.
// Only tasks owned by listID are touched; tasks absent from taskIDs keep
// their order. The whole reorder is applied and persisted atomically.
func (s *Store) ReorderTasks(taskIDs []string, listID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	position := make(map[string]int, len(taskIDs))
	for i, id := range taskIDs {
		position[id] = i
	}

	tasks := cloneTasks(s.state.Tasks)
	for i := range tasks {
		if tasks[i].ListID != listID {
			continue
		}
		if index, ok := position[tasks[i].ID]; ok {
			tasks[i].Order = index
		}
	}

	s.state.Tasks = tasks
	s.commit(nil)
	return nil
}

// AssignTaskCategories replaces a task's category membership. Unknown
// category ids are dropped.
func (s *Store) AssignTaskCategories(taskID string, categoryIDs []string) (*Task, error) {
	ids := append([]string(nil), categoryIDs...)
	return s.UpdateTask(taskID, TaskUpdate{CategoryIDs: &ids})
}

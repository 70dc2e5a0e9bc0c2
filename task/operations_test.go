package task

import (
	"errors"
	"testing"
	"time"
)

func TestStore_AddTask(t *testing.T) {
	store, _ := newTestStore(t)

	created := mustAddTask(t, store, "Buy milk", "", TaskOptions{})

	if created.Title != "Buy milk" {
		t.Errorf("expected title 'Buy milk', got %q", created.Title)
	}
	if created.ListID != ListAll {
		t.Errorf("expected default list %q, got %q", ListAll, created.ListID)
	}
	if created.Completed {
		t.Error("expected new task to be incomplete")
	}
	if created.Repeat != RepeatNone {
		t.Errorf("expected repeat 'none', got %q", created.Repeat)
	}
	if created.Order != 0 {
		t.Errorf("expected order 0, got %d", created.Order)
	}
	if len(created.ID) != 8 {
		t.Errorf("expected 8-char ID, got %q", created.ID)
	}
	if !created.CreatedAt.Equal(testEpoch) || !created.UpdatedAt.Equal(testEpoch) {
		t.Errorf("expected timestamps %v, got created=%v updated=%v", testEpoch, created.CreatedAt, created.UpdatedAt)
	}
}

func TestStore_AddTask_AppendsOrderPerList(t *testing.T) {
	store, clock := newTestStore(t)

	list := mustAddList(t, store, "Groceries", ListOptions{})
	clock.Advance(time.Second)

	first := mustAddTask(t, store, "Milk", list.ID, TaskOptions{})
	clock.Advance(time.Second)
	second := mustAddTask(t, store, "Eggs", list.ID, TaskOptions{})
	clock.Advance(time.Second)
	elsewhere := mustAddTask(t, store, "File taxes", "", TaskOptions{})

	if first.Order != 0 || second.Order != 1 {
		t.Errorf("expected orders 0 and 1 within the list, got %d and %d", first.Order, second.Order)
	}
	if elsewhere.Order != 0 {
		t.Errorf("expected order 0 in a different list, got %d", elsewhere.Order)
	}
}

func TestStore_AddTask_UnknownList(t *testing.T) {
	store, _ := newTestStore(t)

	if _, err := store.AddTask("Orphan", "nope", TaskOptions{}); !errors.Is(err, ErrListNotFound) {
		t.Errorf("expected ErrListNotFound, got %v", err)
	}
	if len(store.Tasks()) != 0 {
		t.Error("expected failed add to leave no task behind")
	}
}

func TestStore_AddTask_EmptyTitle(t *testing.T) {
	store, _ := newTestStore(t)

	if _, err := store.AddTask("   ", "", TaskOptions{}); !errors.Is(err, ErrEmptyTitle) {
		t.Errorf("expected ErrEmptyTitle, got %v", err)
	}
}

func TestStore_AddTask_NormalizesWhitespace(t *testing.T) {
	store, _ := newTestStore(t)

	created := mustAddTask(t, store, "  Buy   milk \n", "", TaskOptions{})
	if created.Title != "Buy milk" {
		t.Errorf("expected normalized title 'Buy milk', got %q", created.Title)
	}
}

func TestStore_AddTask_WithSteps(t *testing.T) {
	store, _ := newTestStore(t)

	created := mustAddTask(t, store, "Pack bags", "", TaskOptions{
		Steps: []string{"Passport", "Charger"},
	})

	if len(created.Steps) != 2 {
		t.Fatalf("expected 2 steps, got %d", len(created.Steps))
	}
	if created.Steps[0].Title != "Passport" || created.Steps[1].Title != "Charger" {
		t.Errorf("unexpected step titles: %q, %q", created.Steps[0].Title, created.Steps[1].Title)
	}
	if created.Steps[0].Completed || created.Steps[1].Completed {
		t.Error("expected new steps to be unchecked")
	}
}

func TestStore_AddTask_RepeatedStepTitlesGetDistinctIDs(t *testing.T) {
	store, _ := newTestStore(t)

	created := mustAddTask(t, store, "Pack bag", "", TaskOptions{
		Steps: []string{"Socks", "Socks", "Socks"},
	})

	if len(created.Steps) != 3 {
		t.Fatalf("expected 3 steps, got %d", len(created.Steps))
	}
	seen := make(map[string]bool)
	for _, step := range created.Steps {
		if seen[step.ID] {
			t.Fatalf("duplicate step id %q", step.ID)
		}
		seen[step.ID] = true
	}

	if err := store.ToggleSubTask(created.ID, created.Steps[1].ID); err != nil {
		t.Fatalf("ToggleSubTask: %v", err)
	}
	reloaded, err := store.Task(created.ID)
	if err != nil {
		t.Fatalf("Task: %v", err)
	}
	if reloaded.Steps[0].Completed || !reloaded.Steps[1].Completed || reloaded.Steps[2].Completed {
		t.Errorf("expected only the second step checked, got %v, %v, %v",
			reloaded.Steps[0].Completed, reloaded.Steps[1].Completed, reloaded.Steps[2].Completed)
	}
}

func TestStore_AddTask_DropsUnknownCategories(t *testing.T) {
	store, _ := newTestStore(t)

	errands := mustAddCategory(t, store, "errands", CategoryOptions{})
	created := mustAddTask(t, store, "Post office", "", TaskOptions{
		CategoryIDs: []string{errands.ID, "missing", errands.ID},
	})

	if len(created.CategoryIDs) != 1 || created.CategoryIDs[0] != errands.ID {
		t.Errorf("expected only the known category, got %v", created.CategoryIDs)
	}
}

func TestStore_UpdateTask_PartialFields(t *testing.T) {
	store, clock := newTestStore(t)

	created := mustAddTask(t, store, "Draft report", "", TaskOptions{Notes: "outline"})
	clock.Advance(time.Hour)

	title := "Draft quarterly report"
	updated, err := store.UpdateTask(created.ID, TaskUpdate{Title: &title})
	if err != nil {
		t.Fatalf("update task: %v", err)
	}

	if updated.Title != title {
		t.Errorf("expected title %q, got %q", title, updated.Title)
	}
	if updated.Notes != "outline" {
		t.Errorf("expected untouched notes, got %q", updated.Notes)
	}
	if !updated.UpdatedAt.After(created.UpdatedAt) {
		t.Error("expected updatedAt to advance")
	}
	if !updated.CreatedAt.Equal(created.CreatedAt) {
		t.Error("expected createdAt to be preserved")
	}
}

func TestStore_UpdateTask_MoveToListResetsOrder(t *testing.T) {
	store, clock := newTestStore(t)

	list := mustAddList(t, store, "Work", ListOptions{})
	clock.Advance(time.Second)
	mustAddTask(t, store, "Standup", list.ID, TaskOptions{})
	clock.Advance(time.Second)
	moved := mustAddTask(t, store, "Retro", "", TaskOptions{})

	updated, err := store.UpdateTask(moved.ID, TaskUpdate{ListID: &list.ID})
	if err != nil {
		t.Fatalf("update task: %v", err)
	}
	if updated.ListID != list.ID {
		t.Errorf("expected list %q, got %q", list.ID, updated.ListID)
	}
	if updated.Order != 1 {
		t.Errorf("expected order 1 at the end of the target list, got %d", updated.Order)
	}
}

func TestStore_UpdateTask_DueDateSetAndClear(t *testing.T) {
	store, _ := newTestStore(t)

	created := mustAddTask(t, store, "Renew passport", "", TaskOptions{})
	due := time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC)

	updated, err := store.UpdateTask(created.ID, TaskUpdate{DueDate: SetTime(due)})
	if err != nil {
		t.Fatalf("set due date: %v", err)
	}
	if updated.DueDate == nil || !updated.DueDate.Equal(due) {
		t.Fatalf("expected due date %v, got %v", due, updated.DueDate)
	}

	cleared, err := store.UpdateTask(created.ID, TaskUpdate{DueDate: ClearTime()})
	if err != nil {
		t.Fatalf("clear due date: %v", err)
	}
	if cleared.DueDate != nil {
		t.Errorf("expected cleared due date, got %v", cleared.DueDate)
	}
}

func TestStore_UpdateTask_DueDateEventOnlyOnChange(t *testing.T) {
	store, recorder, _ := newRecordedStore(t)

	created := mustAddTask(t, store, "Water plants", "", TaskOptions{})
	due := time.Date(2026, time.March, 20, 0, 0, 0, 0, time.UTC)
	recorder.reset()

	if _, err := store.UpdateTask(created.ID, TaskUpdate{DueDate: SetTime(due)}); err != nil {
		t.Fatalf("set due date: %v", err)
	}
	if len(recorder.events) != 1 || recorder.events[0].Title != "Due date updated" {
		t.Fatalf("expected one 'Due date updated' event, got %v", recorder.titles())
	}

	recorder.reset()
	if _, err := store.UpdateTask(created.ID, TaskUpdate{DueDate: SetTime(due)}); err != nil {
		t.Fatalf("re-set due date: %v", err)
	}
	if len(recorder.events) != 0 {
		t.Errorf("expected no event for an unchanged due date, got %v", recorder.titles())
	}

	recorder.reset()
	if _, err := store.UpdateTask(created.ID, TaskUpdate{DueDate: ClearTime()}); err != nil {
		t.Fatalf("clear due date: %v", err)
	}
	if len(recorder.events) != 1 || recorder.events[0].Title != "Due date removed" {
		t.Errorf("expected one 'Due date removed' event, got %v", recorder.titles())
	}
}

func TestStore_UpdateTask_InvalidRepeatDays(t *testing.T) {
	store, _ := newTestStore(t)

	created := mustAddTask(t, store, "Gym", "", TaskOptions{})
	repeat := RepeatDaily
	days := []int{1, 9}
	if _, err := store.UpdateTask(created.ID, TaskUpdate{Repeat: &repeat, RepeatDays: &days}); !errors.Is(err, ErrInvalidRepeatDays) {
		t.Errorf("expected ErrInvalidRepeatDays, got %v", err)
	}
}

func TestStore_UpdateTask_NotFound(t *testing.T) {
	store, _ := newTestStore(t)

	title := "ghost"
	if _, err := store.UpdateTask("missing", TaskUpdate{Title: &title}); !errors.Is(err, ErrTaskNotFound) {
		t.Errorf("expected ErrTaskNotFound, got %v", err)
	}
}

func TestStore_DeleteTask(t *testing.T) {
	store, clock := newTestStore(t)

	created := mustAddTask(t, store, "Temporary", "", TaskOptions{})
	clock.Advance(time.Second)
	kept := mustAddTask(t, store, "Keeper", "", TaskOptions{})

	if err := store.DeleteTask(created.ID); err != nil {
		t.Fatalf("delete task: %v", err)
	}

	remaining := store.Tasks()
	if len(remaining) != 1 || remaining[0].ID != kept.ID {
		t.Errorf("expected only the keeper to remain, got %d tasks", len(remaining))
	}
	if err := store.DeleteTask(created.ID); !errors.Is(err, ErrTaskNotFound) {
		t.Errorf("expected ErrTaskNotFound on second delete, got %v", err)
	}
}

func TestStore_ToggleTask_EventOnlyOnCompletion(t *testing.T) {
	store, recorder, _ := newRecordedStore(t)

	created := mustAddTask(t, store, "Call plumber", "", TaskOptions{})
	recorder.reset()

	done, err := store.ToggleTask(created.ID)
	if err != nil {
		t.Fatalf("toggle task: %v", err)
	}
	if !done.Completed {
		t.Error("expected task to be completed")
	}
	if len(recorder.events) != 1 || recorder.events[0].Title != "Task completed" {
		t.Fatalf("expected one 'Task completed' event, got %v", recorder.titles())
	}
	if recorder.events[0].Level != EventSuccess {
		t.Errorf("expected success level, got %q", recorder.events[0].Level)
	}

	recorder.reset()
	reopened, err := store.ToggleTask(created.ID)
	if err != nil {
		t.Fatalf("toggle task back: %v", err)
	}
	if reopened.Completed {
		t.Error("expected task to be reopened")
	}
	if len(recorder.events) != 0 {
		t.Errorf("expected no event on reopening, got %v", recorder.titles())
	}
}

func TestStore_ToggleFlags(t *testing.T) {
	store, _ := newTestStore(t)

	created := mustAddTask(t, store, "Flag me", "", TaskOptions{})

	important, err := store.ToggleImportant(created.ID)
	if err != nil {
		t.Fatalf("toggle important: %v", err)
	}
	if !important.Important {
		t.Error("expected important to be set")
	}

	myDay, err := store.ToggleMyDay(created.ID)
	if err != nil {
		t.Fatalf("toggle my day: %v", err)
	}
	if !myDay.MyDay {
		t.Error("expected my-day to be set")
	}

	pinned, err := store.TogglePin(created.ID)
	if err != nil {
		t.Fatalf("toggle pin: %v", err)
	}
	if !pinned.Pinned {
		t.Error("expected pinned to be set")
	}

	global, err := store.ToggleGlobalPin(created.ID)
	if err != nil {
		t.Fatalf("toggle global pin: %v", err)
	}
	if !global.PinnedGlobally {
		t.Error("expected global pin to be set")
	}
	if !global.Pinned || !global.MyDay || !global.Important {
		t.Error("expected earlier flags to survive later toggles")
	}
}

func TestStore_SubTasks(t *testing.T) {
	store, clock := newTestStore(t)

	created := mustAddTask(t, store, "Plan trip", "", TaskOptions{})
	clock.Advance(time.Second)

	step, err := store.AddSubTask(created.ID, "Book flights")
	if err != nil {
		t.Fatalf("add step: %v", err)
	}
	clock.Advance(time.Second)
	second, err := store.AddSubTask(created.ID, "Book hotel")
	if err != nil {
		t.Fatalf("add second step: %v", err)
	}

	if err := store.ToggleSubTask(created.ID, step.ID); err != nil {
		t.Fatalf("toggle step: %v", err)
	}

	reloaded, err := store.Task(created.ID)
	if err != nil {
		t.Fatalf("reload task: %v", err)
	}
	if len(reloaded.Steps) != 2 {
		t.Fatalf("expected 2 steps, got %d", len(reloaded.Steps))
	}
	if !reloaded.Steps[0].Completed || reloaded.Steps[1].Completed {
		t.Error("expected only the first step to be checked")
	}

	if err := store.DeleteSubTask(created.ID, step.ID); err != nil {
		t.Fatalf("delete step: %v", err)
	}
	reloaded, err = store.Task(created.ID)
	if err != nil {
		t.Fatalf("reload task: %v", err)
	}
	if len(reloaded.Steps) != 1 || reloaded.Steps[0].ID != second.ID {
		t.Errorf("expected only the second step to remain, got %d steps", len(reloaded.Steps))
	}

	if err := store.ToggleSubTask(created.ID, step.ID); !errors.Is(err, ErrStepNotFound) {
		t.Errorf("expected ErrStepNotFound, got %v", err)
	}
}

func TestStore_ReorderTasks(t *testing.T) {
	store, clock := newTestStore(t)

	list := mustAddList(t, store, "Chores", ListOptions{})
	clock.Advance(time.Second)
	a := mustAddTask(t, store, "Sweep", list.ID, TaskOptions{})
	clock.Advance(time.Second)
	b := mustAddTask(t, store, "Mop", list.ID, TaskOptions{})
	clock.Advance(time.Second)
	c := mustAddTask(t, store, "Dust", list.ID, TaskOptions{})
	clock.Advance(time.Second)
	other := mustAddTask(t, store, "Unrelated", "", TaskOptions{})

	if err := store.ReorderTasks([]string{c.ID, a.ID, b.ID, other.ID}, list.ID); err != nil {
		t.Fatalf("reorder tasks: %v", err)
	}

	ordered := store.FilteredTasks(Filter{ListID: list.ID})
	if len(ordered) != 3 {
		t.Fatalf("expected 3 tasks, got %d", len(ordered))
	}
	want := []string{c.ID, a.ID, b.ID}
	for i, id := range want {
		if ordered[i].ID != id {
			t.Errorf("position %d: expected %q, got %q", i, id, ordered[i].ID)
		}
	}

	// The reorder is scoped to the list; the outside task keeps its order.
	outside, err := store.Task(other.ID)
	if err != nil {
		t.Fatalf("reload outside task: %v", err)
	}
	if outside.Order != 0 {
		t.Errorf("expected unrelated task order to stay 0, got %d", outside.Order)
	}
}

func TestStore_AssignTaskCategories(t *testing.T) {
	store, clock := newTestStore(t)

	errands := mustAddCategory(t, store, "errands", CategoryOptions{})
	clock.Advance(time.Second)
	home := mustAddCategory(t, store, "home", CategoryOptions{})
	clock.Advance(time.Second)
	created := mustAddTask(t, store, "Fix fence", "", TaskOptions{CategoryIDs: []string{errands.ID}})

	updated, err := store.AssignTaskCategories(created.ID, []string{home.ID, "missing"})
	if err != nil {
		t.Fatalf("assign categories: %v", err)
	}
	if len(updated.CategoryIDs) != 1 || updated.CategoryIDs[0] != home.ID {
		t.Errorf("expected membership replaced with the known category, got %v", updated.CategoryIDs)
	}

	cleared, err := store.AssignTaskCategories(created.ID, nil)
	if err != nil {
		t.Fatalf("clear categories: %v", err)
	}
	if len(cleared.CategoryIDs) != 0 {
		t.Errorf("expected empty membership, got %v", cleared.CategoryIDs)
	}
}

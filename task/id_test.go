package task

import (
	"errors"
	"testing"
	"time"
)

func TestGenerateID(t *testing.T) {
	ts := time.Date(2026, time.March, 11, 10, 0, 0, 0, time.UTC)

	a := GenerateID("Buy milk", ts)
	b := GenerateID("Buy milk", ts)
	c := GenerateID("Buy milk", ts.Add(time.Nanosecond))
	d := GenerateID("Buy eggs", ts)

	if len(a) != 8 {
		t.Errorf("expected 8-char id, got %q", a)
	}
	if a != b {
		t.Errorf("expected deterministic ids, got %q and %q", a, b)
	}
	if a == c {
		t.Error("expected a different timestamp to change the id")
	}
	if a == d {
		t.Error("expected a different seed to change the id")
	}
}

func TestStore_ResolveTaskID(t *testing.T) {
	store, clock := newTestStore(t)

	created := mustAddTask(t, store, "Buy milk", "", TaskOptions{})
	clock.Advance(time.Second)
	mustAddTask(t, store, "Buy eggs", "", TaskOptions{})

	full, err := store.ResolveTaskID(created.ID)
	if err != nil {
		t.Fatalf("resolve full id: %v", err)
	}
	if full != created.ID {
		t.Errorf("expected %q, got %q", created.ID, full)
	}

	// A unique prefix resolves; the full 8 chars are unique by construction.
	prefix, err := store.ResolveTaskID(created.ID[:6])
	if err != nil {
		t.Fatalf("resolve prefix: %v", err)
	}
	if prefix != created.ID {
		t.Errorf("expected %q, got %q", created.ID, prefix)
	}

	if _, err := store.ResolveTaskID("zzzzzzzz"); !errors.Is(err, ErrTaskNotFound) {
		t.Errorf("expected ErrTaskNotFound, got %v", err)
	}
}

func TestStore_ResolveListID_ByName(t *testing.T) {
	store, _ := newTestStore(t)

	list := mustAddList(t, store, "Groceries", ListOptions{})

	byName, err := store.ResolveListID("groceries")
	if err != nil {
		t.Fatalf("resolve by name: %v", err)
	}
	if byName != list.ID {
		t.Errorf("expected %q, got %q", list.ID, byName)
	}

	// System lists resolve by their fixed ids.
	system, err := store.ResolveListID("my-day")
	if err != nil {
		t.Fatalf("resolve system list: %v", err)
	}
	if system != ListMyDay {
		t.Errorf("expected %q, got %q", ListMyDay, system)
	}

	if _, err := store.ResolveListID("nonexistent"); !errors.Is(err, ErrListNotFound) {
		t.Errorf("expected ErrListNotFound, got %v", err)
	}
}

func TestStore_ResolveCategoryID_ByName(t *testing.T) {
	store, _ := newTestStore(t)

	category := mustAddCategory(t, store, "Errands", CategoryOptions{})

	got, err := store.ResolveCategoryID("errands")
	if err != nil {
		t.Fatalf("resolve by name: %v", err)
	}
	if got != category.ID {
		t.Errorf("expected %q, got %q", category.ID, got)
	}
}

func TestStore_ResolveStepID(t *testing.T) {
	store, _ := newTestStore(t)

	created := mustAddTask(t, store, "Plan trip", "", TaskOptions{Steps: []string{"Book flights"}})

	got, err := store.ResolveStepID(created.ID, created.Steps[0].ID[:4])
	if err != nil {
		t.Fatalf("resolve step: %v", err)
	}
	if got != created.Steps[0].ID {
		t.Errorf("expected %q, got %q", created.Steps[0].ID, got)
	}

	if _, err := store.ResolveStepID(created.ID, "zzzz"); !errors.Is(err, ErrStepNotFound) {
		t.Errorf("expected ErrStepNotFound, got %v", err)
	}
	if _, err := store.ResolveStepID("missing", "zzzz"); !errors.Is(err, ErrTaskNotFound) {
		t.Errorf("expected ErrTaskNotFound, got %v", err)
	}
}

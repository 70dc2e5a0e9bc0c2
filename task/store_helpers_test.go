package task

import (
	"testing"
	"time"
)

// memoryPersister keeps snapshots in memory. Tests can prime it with an
// existing state or a failure for either direction.
type memoryPersister struct {
	state   *AppState
	loadErr error
	saveErr error
	saves   int
}

func (p *memoryPersister) Load() (*AppState, error) {
	if p.loadErr != nil {
		return nil, p.loadErr
	}
	return p.state, nil
}

func (p *memoryPersister) Save(st *AppState) error {
	if p.saveErr != nil {
		return p.saveErr
	}
	p.saves++
	p.state = st
	return nil
}

// testClock is a fixed clock tests advance by hand.
type testClock struct {
	now time.Time
}

func (c *testClock) Now() time.Time { return c.now }

func (c *testClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

// A Wednesday morning.
var testEpoch = time.Date(2026, time.March, 11, 10, 0, 0, 0, time.UTC)

func newTestStore(t *testing.T) (*Store, *testClock) {
	t.Helper()
	clock := &testClock{now: testEpoch}
	store, err := Open(OpenOptions{Persister: &memoryPersister{}, Now: clock.Now})
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	return store, clock
}

// eventRecorder collects every event the store dispatches.
type eventRecorder struct {
	events []Event
}

func (r *eventRecorder) Notify(event Event) { r.events = append(r.events, event) }

func (r *eventRecorder) reset() { r.events = nil }

func (r *eventRecorder) titles() []string {
	out := make([]string, 0, len(r.events))
	for _, event := range r.events {
		out = append(out, event.Title)
	}
	return out
}

func newRecordedStore(t *testing.T) (*Store, *eventRecorder, *testClock) {
	t.Helper()
	clock := &testClock{now: testEpoch}
	recorder := &eventRecorder{}
	store, err := Open(OpenOptions{
		Persister: &memoryPersister{},
		Notifier:  recorder,
		Now:       clock.Now,
	})
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	recorder.reset()
	return store, recorder, clock
}

func mustAddTask(t *testing.T, store *Store, title, listID string, opts TaskOptions) *Task {
	t.Helper()
	created, err := store.AddTask(title, listID, opts)
	if err != nil {
		t.Fatalf("add task %q: %v", title, err)
	}
	return created
}

func mustAddList(t *testing.T, store *Store, name string, opts ListOptions) *TaskList {
	t.Helper()
	created, err := store.AddList(name, opts)
	if err != nil {
		t.Fatalf("add list %q: %v", name, err)
	}
	return created
}

func mustAddGroup(t *testing.T, store *Store, name string, opts GroupOptions) *ListGroup {
	t.Helper()
	created, err := store.AddGroup(name, opts)
	if err != nil {
		t.Fatalf("add group %q: %v", name, err)
	}
	return created
}

func mustAddCategory(t *testing.T, store *Store, name string, opts CategoryOptions) *Category {
	t.Helper()
	created, err := store.AddCategory(name, opts)
	if err != nil {
		t.Fatalf("add category %q: %v", name, err)
	}
	return created
}

func timePtr(t time.Time) *time.Time { return &t }

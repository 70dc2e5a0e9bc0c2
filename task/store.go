package task

import (
	"errors"
	"log"
	"strconv"
	"sync"
	"time"
)

// Persister snapshots the aggregate state to an opaque blob store and
// restores it. Load returns (nil, nil) when no snapshot exists yet.
type Persister interface {
	Load() (*AppState, error)
	Save(*AppState) error
}

// OpenOptions configures how the store is opened.
type OpenOptions struct {
	// Persister snapshots state after every mutation. Required.
	Persister Persister

	// Notifier receives outcome events. If nil, events are dropped.
	Notifier Notifier

	// Now overrides the clock, for tests. Defaults to time.Now.
	Now func() time.Time
}

// Store is the sole mutator of the daybook application state. Commands are
// synchronous: each one validates, transforms whole collections, snapshots
// the state through the persister, and forwards outcome events to the
// notifier. Validation failures leave state untouched.
type Store struct {
	mu       sync.Mutex
	state    *AppState
	persist  Persister
	notifier Notifier
	now      func() time.Time
}

// Open loads the persisted state (starting fresh if none exists or the
// snapshot cannot be read), seeds the system lists, and rolls completed
// repeating tasks forward to their next occurrence.
func Open(opts OpenOptions) (*Store, error) {
	if opts.Persister == nil {
		return nil, errors.New("open store: persister is required")
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	st, err := opts.Persister.Load()
	if err != nil {
		// A snapshot that cannot be read is not fatal: the session
		// starts fresh and the next write replaces it.
		log.Printf("daybook: load state: %v", err)
		st = nil
	}
	if st == nil {
		st = NewAppState()
	} else {
		st.ensureDefaults()
	}

	s := &Store{
		state:    st,
		persist:  opts.Persister,
		notifier: opts.Notifier,
		now:      opts.Now,
	}

	s.mu.Lock()
	rolled := processRepeatingTasks(s.state, s.now())
	s.persistLocked()
	s.mu.Unlock()
	if rolled > 0 {
		s.dispatch([]Event{infoEvent("Repeating tasks rescheduled", countLabel(rolled, "task rolled forward", "tasks rolled forward"))})
	}

	return s, nil
}

// State returns a copy of the aggregate state for read-side consumers.
func (s *Store) State() AppState {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := *s.state
	st.Tasks = cloneTasks(s.state.Tasks)
	st.Lists = append([]TaskList(nil), s.state.Lists...)
	st.ListGroups = append([]ListGroup(nil), s.state.ListGroups...)
	st.Categories = append([]Category(nil), s.state.Categories...)
	st.CustomTimePresets = append([]TimePreset(nil), s.state.CustomTimePresets...)
	st.DisabledBuiltInPresets = append([]string(nil), s.state.DisabledBuiltInPresets...)
	return st
}

// persistLocked snapshots the state. Write failures are logged and never
// surfaced: the in-memory mutation already succeeded and remains
// authoritative for the session.
func (s *Store) persistLocked() {
	if err := s.persist.Save(s.state); err != nil {
		log.Printf("daybook: persist state: %v", err)
	}
}

func (s *Store) dispatch(events []Event) {
	if s.notifier == nil {
		return
	}
	for _, event := range events {
		s.notifier.Notify(event)
	}
}

// fail reports a recoverable validation failure. No mutation has happened.
func (s *Store) fail(err error) error {
	if s.notifier != nil {
		s.notifier.Notify(Event{Level: EventError, Title: "Command failed", Description: err.Error()})
	}
	return err
}

// commit persists the mutated state and forwards the events produced by the
// command. Called with the lock held.
func (s *Store) commit(events []Event) {
	s.persistLocked()
	s.dispatch(events)
}

func countLabel(n int, singular, plural string) string {
	if n == 1 {
		return "1 " + singular
	}
	return strconv.Itoa(n) + " " + plural
}

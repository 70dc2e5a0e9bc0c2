package task

import (
	"fmt"
	"strings"
	"time"

	"daybook/internal/ids"
)

// GenerateID creates a unique 8-character id from a seed string and a
// timestamp. Collision resistance comes from hashing; the id is opaque.
func GenerateID(seed string, timestamp time.Time) string {
	return ids.GenerateWithTimestamp(seed, timestamp, ids.DefaultLength)
}

func resolveID(known []string, ref string, notFound error) (string, error) {
	match, found, ambiguous := ids.MatchPrefix(ids.NormalizeUnique(known), ref)
	if ambiguous {
		return "", fmt.Errorf("%w: %q", ErrAmbiguousID, ref)
	}
	if !found {
		return "", fmt.Errorf("%w: %q", notFound, ref)
	}
	return match, nil
}

// ResolveTaskID resolves a full task id or a unique prefix.
func (s *Store) ResolveTaskID(ref string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	known := make([]string, 0, len(s.state.Tasks))
	for i := range s.state.Tasks {
		known = append(known, s.state.Tasks[i].ID)
	}
	return resolveID(known, ref, ErrTaskNotFound)
}

// ResolveListID resolves a list by id, unique id prefix, or exact name
// (case-insensitive).
func (s *Store) ResolveListID(ref string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	known := make([]string, 0, len(s.state.Lists))
	for i := range s.state.Lists {
		if strings.EqualFold(s.state.Lists[i].Name, ref) {
			return s.state.Lists[i].ID, nil
		}
		known = append(known, s.state.Lists[i].ID)
	}
	return resolveID(known, ref, ErrListNotFound)
}

// ResolveGroupID resolves a group by id, unique id prefix, or exact name.
func (s *Store) ResolveGroupID(ref string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	known := make([]string, 0, len(s.state.ListGroups))
	for i := range s.state.ListGroups {
		if strings.EqualFold(s.state.ListGroups[i].Name, ref) {
			return s.state.ListGroups[i].ID, nil
		}
		known = append(known, s.state.ListGroups[i].ID)
	}
	return resolveID(known, ref, ErrGroupNotFound)
}

// ResolveCategoryID resolves a category by id, unique id prefix, or exact
// name.
func (s *Store) ResolveCategoryID(ref string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	known := make([]string, 0, len(s.state.Categories))
	for i := range s.state.Categories {
		if strings.EqualFold(s.state.Categories[i].Name, ref) {
			return s.state.Categories[i].ID, nil
		}
		known = append(known, s.state.Categories[i].ID)
	}
	return resolveID(known, ref, ErrCategoryNotFound)
}

// ResolveStepID resolves a step within a task by id or unique prefix.
func (s *Store) ResolveStepID(taskID, ref string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := s.state.task(taskID)
	if t == nil {
		return "", fmt.Errorf("%w: %q", ErrTaskNotFound, taskID)
	}
	known := make([]string, 0, len(t.Steps))
	for i := range t.Steps {
		known = append(known, t.Steps[i].ID)
	}
	return resolveID(known, ref, ErrStepNotFound)
}

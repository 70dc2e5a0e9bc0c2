package task

import (
	"fmt"
	"strings"
)

// SetView selects the active view. ViewList requires an existing list id and
// ViewCategory an existing category id; other views ignore both arguments.
func (s *Store) SetView(view View, listID, categoryID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !view.IsValid() {
		return s.fail(fmt.Errorf("%w: %q", ErrInvalidView, view))
	}
	switch view {
	case ViewList:
		if s.state.list(listID) == nil {
			return s.fail(fmt.Errorf("%w: %q", ErrListNotFound, listID))
		}
	case ViewCategory:
		if s.state.category(categoryID) == nil {
			return s.fail(fmt.Errorf("%w: %q", ErrCategoryNotFound, categoryID))
		}
	}
	if view != ViewList {
		listID = ""
	}
	if view != ViewCategory {
		categoryID = ""
	}

	s.state.CurrentView = view
	s.state.CurrentListID = listID
	s.state.CurrentCategoryID = categoryID
	s.commit(nil)
	return nil
}

// CurrentView returns the active view selection.
func (s *Store) CurrentView() (View, string, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.CurrentView, s.state.CurrentListID, s.state.CurrentCategoryID
}

// SetSearchQuery stores the free-text search applied on top of every view.
func (s *Store) SetSearchQuery(query string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.SearchQuery = strings.TrimSpace(query)
	s.commit(nil)
}

// SearchQuery returns the active search text.
func (s *Store) SearchQuery() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.SearchQuery
}

// SetDarkMode stores the dark-mode presentation flag.
func (s *Store) SetDarkMode(enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.DarkMode = enabled
	s.commit(nil)
}

// SetSidebarCollapsed stores the sidebar presentation flag.
func (s *Store) SetSidebarCollapsed(collapsed bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.SidebarCollapsed = collapsed
	s.commit(nil)
}

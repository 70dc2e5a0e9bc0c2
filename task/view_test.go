package task

import (
	"errors"
	"testing"
)

func TestStore_SetView(t *testing.T) {
	store, _ := newTestStore(t)

	list := mustAddList(t, store, "Work", ListOptions{})

	if err := store.SetView(ViewList, list.ID, ""); err != nil {
		t.Fatalf("set list view: %v", err)
	}
	view, listID, categoryID := store.CurrentView()
	if view != ViewList || listID != list.ID || categoryID != "" {
		t.Errorf("unexpected selection: %q %q %q", view, listID, categoryID)
	}

	// Switching to a non-list view clears the list selection.
	if err := store.SetView(ViewImportant, list.ID, ""); err != nil {
		t.Fatalf("set important view: %v", err)
	}
	view, listID, _ = store.CurrentView()
	if view != ViewImportant || listID != "" {
		t.Errorf("expected cleared list selection, got %q %q", view, listID)
	}

	if err := store.SetView(ViewList, "missing", ""); !errors.Is(err, ErrListNotFound) {
		t.Errorf("expected ErrListNotFound, got %v", err)
	}
	if err := store.SetView(ViewCategory, "", "missing"); !errors.Is(err, ErrCategoryNotFound) {
		t.Errorf("expected ErrCategoryNotFound, got %v", err)
	}
	if err := store.SetView(View("bogus"), "", ""); !errors.Is(err, ErrInvalidView) {
		t.Errorf("expected ErrInvalidView, got %v", err)
	}
}

func TestStore_SetSearchQuery_Trims(t *testing.T) {
	store, _ := newTestStore(t)

	store.SetSearchQuery("  report  ")
	if got := store.SearchQuery(); got != "report" {
		t.Errorf("expected trimmed query 'report', got %q", got)
	}
}

func TestStore_Preferences(t *testing.T) {
	store, _ := newTestStore(t)

	store.SetDarkMode(true)
	store.SetSidebarCollapsed(true)

	st := store.State()
	if !st.DarkMode || !st.SidebarCollapsed {
		t.Errorf("expected both preference flags set, got dark=%v sidebar=%v", st.DarkMode, st.SidebarCollapsed)
	}
}

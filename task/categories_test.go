package task

import (
	"errors"
	"testing"
	"time"
)

func TestStore_AddCategory(t *testing.T) {
	store, _ := newTestStore(t)

	created := mustAddCategory(t, store, "errands", CategoryOptions{
		Color:       "#ff8800",
		Description: "things to run around for",
	})

	if created.Name != "errands" {
		t.Errorf("expected name 'errands', got %q", created.Name)
	}
	if created.Color != "#ff8800" {
		t.Errorf("expected color '#ff8800', got %q", created.Color)
	}
	if len(created.ID) != 8 {
		t.Errorf("expected 8-char ID, got %q", created.ID)
	}

	if _, err := store.AddCategory("bad", CategoryOptions{Color: "red"}); !errors.Is(err, ErrInvalidColor) {
		t.Errorf("expected ErrInvalidColor, got %v", err)
	}
}

func TestStore_UpdateCategory(t *testing.T) {
	store, clock := newTestStore(t)

	created := mustAddCategory(t, store, "errands", CategoryOptions{})
	clock.Advance(time.Hour)

	name := "chores"
	color := "#00cc66"
	updated, err := store.UpdateCategory(created.ID, CategoryUpdate{Name: &name, Color: &color})
	if err != nil {
		t.Fatalf("update category: %v", err)
	}
	if updated.Name != name || updated.Color != color {
		t.Errorf("unexpected category after update: %q %q", updated.Name, updated.Color)
	}
	if !updated.UpdatedAt.After(created.UpdatedAt) {
		t.Error("expected updatedAt to advance")
	}

	if _, err := store.UpdateCategory("missing", CategoryUpdate{Name: &name}); !errors.Is(err, ErrCategoryNotFound) {
		t.Errorf("expected ErrCategoryNotFound, got %v", err)
	}
}

func TestStore_DeleteCategory_StripsMembership(t *testing.T) {
	store, clock := newTestStore(t)

	errands := mustAddCategory(t, store, "errands", CategoryOptions{})
	clock.Advance(time.Second)
	home := mustAddCategory(t, store, "home", CategoryOptions{})
	clock.Advance(time.Second)
	tagged := mustAddTask(t, store, "Post office", "", TaskOptions{CategoryIDs: []string{errands.ID, home.ID}})
	clock.Advance(time.Second)
	untagged := mustAddTask(t, store, "Unrelated", "", TaskOptions{})

	if err := store.SetView(ViewCategory, "", errands.ID); err != nil {
		t.Fatalf("select category view: %v", err)
	}

	stripped, err := store.DeleteCategory(errands.ID)
	if err != nil {
		t.Fatalf("delete category: %v", err)
	}
	if stripped != 1 {
		t.Errorf("expected 1 task stripped, got %d", stripped)
	}

	// Tasks survive; only the membership is removed.
	reloaded, err := store.Task(tagged.ID)
	if err != nil {
		t.Fatalf("reload tagged task: %v", err)
	}
	if len(reloaded.CategoryIDs) != 1 || reloaded.CategoryIDs[0] != home.ID {
		t.Errorf("expected only the surviving category, got %v", reloaded.CategoryIDs)
	}
	if _, err := store.Task(untagged.ID); err != nil {
		t.Errorf("expected untagged task to survive: %v", err)
	}

	// Deleting the selected category falls back to the default view.
	view, _, categoryID := store.CurrentView()
	if view != ViewAll || categoryID != "" {
		t.Errorf("expected fallback to the all view, got %q %q", view, categoryID)
	}
}

package task

import (
	"errors"
	"testing"
	"time"
)

func TestStore_AddList(t *testing.T) {
	store, clock := newTestStore(t)

	first := mustAddList(t, store, "Groceries", ListOptions{Emoji: "🛒", Color: "#ff8800"})
	clock.Advance(time.Second)
	second := mustAddList(t, store, "Work", ListOptions{})

	if first.IsSystem {
		t.Error("expected a user list")
	}
	if first.Order != 0 || second.Order != 1 {
		t.Errorf("expected orders 0 and 1, got %d and %d", first.Order, second.Order)
	}
	if first.Emoji != "🛒" || first.Color != "#ff8800" {
		t.Errorf("unexpected emoji/color: %q %q", first.Emoji, first.Color)
	}
}

func TestStore_AddList_InvalidColor(t *testing.T) {
	store, _ := newTestStore(t)

	if _, err := store.AddList("Bad", ListOptions{Color: "orange"}); !errors.Is(err, ErrInvalidColor) {
		t.Errorf("expected ErrInvalidColor, got %v", err)
	}
}

func TestStore_UpdateList_RejectsSystemLists(t *testing.T) {
	store, _ := newTestStore(t)

	name := "Renamed"
	if _, err := store.UpdateList(ListMyDay, ListUpdate{Name: &name}); !errors.Is(err, ErrSystemList) {
		t.Errorf("expected ErrSystemList, got %v", err)
	}
	if _, err := store.DeleteList(ListAll); !errors.Is(err, ErrSystemList) {
		t.Errorf("expected ErrSystemList on delete, got %v", err)
	}
	if err := store.MoveListToGroup(ListPlanned, nil); !errors.Is(err, ErrSystemList) {
		t.Errorf("expected ErrSystemList on move, got %v", err)
	}
}

func TestStore_DeleteList_CascadesToTasks(t *testing.T) {
	store, clock := newTestStore(t)

	list := mustAddList(t, store, "Doomed", ListOptions{})
	clock.Advance(time.Second)
	mustAddTask(t, store, "Victim one", list.ID, TaskOptions{})
	clock.Advance(time.Second)
	mustAddTask(t, store, "Victim two", list.ID, TaskOptions{})
	clock.Advance(time.Second)
	survivor := mustAddTask(t, store, "Survivor", "", TaskOptions{})

	if err := store.SetView(ViewList, list.ID, ""); err != nil {
		t.Fatalf("select list view: %v", err)
	}

	removed, err := store.DeleteList(list.ID)
	if err != nil {
		t.Fatalf("delete list: %v", err)
	}
	if removed != 2 {
		t.Errorf("expected 2 tasks removed, got %d", removed)
	}

	remaining := store.Tasks()
	if len(remaining) != 1 || remaining[0].ID != survivor.ID {
		t.Errorf("expected only the survivor to remain, got %d tasks", len(remaining))
	}

	// Deleting the selected list falls back to the default view.
	view, listID, _ := store.CurrentView()
	if view != ViewAll || listID != "" {
		t.Errorf("expected fallback to the all view, got %q %q", view, listID)
	}
}

func TestStore_ReorderLists_ScopedToGroup(t *testing.T) {
	store, clock := newTestStore(t)

	group := mustAddGroup(t, store, "Projects", GroupOptions{})
	clock.Advance(time.Second)
	a := mustAddList(t, store, "Alpha", ListOptions{})
	clock.Advance(time.Second)
	b := mustAddList(t, store, "Beta", ListOptions{})
	clock.Advance(time.Second)
	inGroup := mustAddList(t, store, "Gamma", ListOptions{GroupID: &group.ID})

	if err := store.ReorderLists([]string{b.ID, a.ID, inGroup.ID}, nil); err != nil {
		t.Fatalf("reorder lists: %v", err)
	}

	ungrouped := store.ListsInGroup(nil)
	if len(ungrouped) != 2 || ungrouped[0].ID != b.ID || ungrouped[1].ID != a.ID {
		t.Errorf("expected Beta before Alpha in the ungrouped scope")
	}

	// The grouped list is outside the scope and keeps its order.
	grouped := store.ListsInGroup(&group.ID)
	if len(grouped) != 1 || grouped[0].Order != 0 {
		t.Errorf("expected the grouped list untouched")
	}
}

func TestStore_MoveListToGroup(t *testing.T) {
	store, clock := newTestStore(t)

	group := mustAddGroup(t, store, "Projects", GroupOptions{})
	clock.Advance(time.Second)
	resident := mustAddList(t, store, "Resident", ListOptions{GroupID: &group.ID})
	clock.Advance(time.Second)
	mover := mustAddList(t, store, "Mover", ListOptions{})

	if err := store.MoveListToGroup(mover.ID, &group.ID); err != nil {
		t.Fatalf("move list into group: %v", err)
	}

	grouped := store.ListsInGroup(&group.ID)
	if len(grouped) != 2 {
		t.Fatalf("expected 2 lists in the group, got %d", len(grouped))
	}
	if grouped[0].ID != resident.ID || grouped[1].ID != mover.ID {
		t.Error("expected the mover appended after the resident")
	}

	if err := store.MoveListToGroup(mover.ID, nil); err != nil {
		t.Fatalf("move list out of group: %v", err)
	}
	if got := store.ListsInGroup(nil); len(got) != 1 || got[0].ID != mover.ID {
		t.Error("expected the mover back in the ungrouped scope")
	}

	missing := "nope"
	if err := store.MoveListToGroup(mover.ID, &missing); !errors.Is(err, ErrGroupNotFound) {
		t.Errorf("expected ErrGroupNotFound, got %v", err)
	}
}

func TestStore_DeleteGroup_ReassignsLists(t *testing.T) {
	store, clock := newTestStore(t)

	doomed := mustAddGroup(t, store, "Doomed", GroupOptions{})
	clock.Advance(time.Second)
	target := mustAddGroup(t, store, "Target", GroupOptions{})
	clock.Advance(time.Second)
	a := mustAddList(t, store, "Alpha", ListOptions{GroupID: &doomed.ID})
	clock.Advance(time.Second)
	b := mustAddList(t, store, "Beta", ListOptions{GroupID: &doomed.ID})

	moved, err := store.DeleteGroup(doomed.ID, &target.ID)
	if err != nil {
		t.Fatalf("delete group: %v", err)
	}
	if moved != 2 {
		t.Errorf("expected 2 lists moved, got %d", moved)
	}

	// Lists survive a group deletion; only their group changes.
	reassigned := store.ListsInGroup(&target.ID)
	if len(reassigned) != 2 || reassigned[0].ID != a.ID || reassigned[1].ID != b.ID {
		t.Errorf("expected both lists reassigned in order, got %d", len(reassigned))
	}
	if len(store.Groups()) != 1 {
		t.Errorf("expected 1 group to remain, got %d", len(store.Groups()))
	}
}

func TestStore_DeleteGroup_ToUngrouped(t *testing.T) {
	store, clock := newTestStore(t)

	group := mustAddGroup(t, store, "Solo", GroupOptions{})
	clock.Advance(time.Second)
	member := mustAddList(t, store, "Member", ListOptions{GroupID: &group.ID})

	moved, err := store.DeleteGroup(group.ID, nil)
	if err != nil {
		t.Fatalf("delete group: %v", err)
	}
	if moved != 1 {
		t.Errorf("expected 1 list moved, got %d", moved)
	}
	if got := store.ListsInGroup(nil); len(got) != 1 || got[0].ID != member.ID {
		t.Error("expected the member in the ungrouped scope")
	}
}

func TestStore_DeleteGroup_SelfTarget(t *testing.T) {
	store, _ := newTestStore(t)

	group := mustAddGroup(t, store, "Loop", GroupOptions{})
	if _, err := store.DeleteGroup(group.ID, &group.ID); err == nil {
		t.Error("expected an error when reassigning a group to itself")
	}
	if len(store.Groups()) != 1 {
		t.Error("expected the group to survive the failed delete")
	}
}

func TestStore_UpdateGroup(t *testing.T) {
	store, _ := newTestStore(t)

	group := mustAddGroup(t, store, "Projects", GroupOptions{})

	name := "Active projects"
	override := true
	updated, err := store.UpdateGroup(group.ID, GroupUpdate{Name: &name, OverrideListIcons: &override})
	if err != nil {
		t.Fatalf("update group: %v", err)
	}
	if updated.Name != name {
		t.Errorf("expected name %q, got %q", name, updated.Name)
	}
	if !updated.OverrideListIcons {
		t.Error("expected override-list-icons to be set")
	}
}

func TestStore_ToggleGroupCollapsed(t *testing.T) {
	store, _ := newTestStore(t)

	group := mustAddGroup(t, store, "Projects", GroupOptions{})

	if err := store.ToggleGroupCollapsed(group.ID); err != nil {
		t.Fatalf("collapse group: %v", err)
	}
	reloaded, err := store.Group(group.ID)
	if err != nil {
		t.Fatalf("reload group: %v", err)
	}
	if !reloaded.Collapsed {
		t.Error("expected group to be collapsed")
	}

	if err := store.ToggleGroupCollapsed("missing"); !errors.Is(err, ErrGroupNotFound) {
		t.Errorf("expected ErrGroupNotFound, got %v", err)
	}
}

func TestStore_ReorderGroups(t *testing.T) {
	store, clock := newTestStore(t)

	a := mustAddGroup(t, store, "Alpha", GroupOptions{})
	clock.Advance(time.Second)
	b := mustAddGroup(t, store, "Beta", GroupOptions{})

	if err := store.ReorderGroups([]string{b.ID, a.ID}); err != nil {
		t.Fatalf("reorder groups: %v", err)
	}

	groups := store.Groups()
	if len(groups) != 2 || groups[0].ID != b.ID || groups[1].ID != a.ID {
		t.Error("expected Beta before Alpha")
	}
}

package task

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// DueFilter narrows a base filter by due-date mode.
type DueFilter string

const (
	// DueAny applies no due-date restriction.
	DueAny DueFilter = ""

	// DueToday keeps tasks due on today's calendar day.
	DueToday DueFilter = "today"

	// DueOverdue keeps tasks due on a calendar day strictly before today.
	DueOverdue DueFilter = "overdue"
)

// Filter is the base task filter applied by FilteredTasks. Zero values mean
// "no restriction".
type Filter struct {
	// ListID keeps tasks owned by the list.
	ListID string

	// Completed keeps tasks with the given completion state.
	Completed *bool

	// Important keeps tasks with the given importance state.
	Important *bool

	// Search is a case-insensitive substring match over title and notes.
	Search string

	// CategoryIDs keeps tasks that carry at least one of the categories.
	CategoryIDs []string

	// Due restricts by due-date mode.
	Due DueFilter
}

// SortTasks orders tasks for display: globally pinned tasks first, then
// list-pinned tasks, then ascending order. Pin flags never change the
// underlying order values.
func SortTasks(tasks []Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		if tasks[i].PinnedGlobally != tasks[j].PinnedGlobally {
			return tasks[i].PinnedGlobally
		}
		if tasks[i].Pinned != tasks[j].Pinned {
			return tasks[i].Pinned
		}
		return tasks[i].Order < tasks[j].Order
	})
}

// FilteredTasks returns the sorted tasks matching the filter.
func (s *Store) FilteredTasks(filter Filter) []Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	return filterTasks(s.state.Tasks, filter, s.now())
}

func filterTasks(tasks []Task, filter Filter, now time.Time) []Task {
	var out []Task
	for _, t := range tasks {
		if MatchesFilter(&t, filter, now) {
			out = append(out, t)
		}
	}

	SortTasks(out)
	return out
}

// MatchesFilter reports whether a single task passes every predicate in
// the filter.
func MatchesFilter(t *Task, filter Filter, now time.Time) bool {
	if filter.ListID != "" && t.ListID != filter.ListID {
		return false
	}
	if filter.Completed != nil && t.Completed != *filter.Completed {
		return false
	}
	if filter.Important != nil && t.Important != *filter.Important {
		return false
	}
	if len(filter.CategoryIDs) > 0 && !hasAnyCategory(t, filter.CategoryIDs) {
		return false
	}
	switch filter.Due {
	case DueToday:
		if t.DueDate == nil || !sameDay(*t.DueDate, now) {
			return false
		}
	case DueOverdue:
		if t.DueDate == nil || !beforeDay(*t.DueDate, now) {
			return false
		}
	}
	return matchesSearch(t, strings.ToLower(strings.TrimSpace(filter.Search)))
}

func hasAnyCategory(t *Task, categoryIDs []string) bool {
	for _, id := range categoryIDs {
		if t.HasCategory(id) {
			return true
		}
	}
	return false
}

func matchesSearch(t *Task, search string) bool {
	if search == "" {
		return true
	}
	return strings.Contains(strings.ToLower(t.Title), search) ||
		strings.Contains(strings.ToLower(t.Notes), search)
}

// TasksForCurrentView returns the sorted tasks the active view displays,
// with the stored search query applied on top.
func (s *Store) TasksForCurrentView() []Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.state
	return tasksForView(st, st.CurrentView, st.CurrentListID, st.CurrentCategoryID, st.SearchQuery, s.now())
}

// TasksForView returns the sorted tasks a specific view displays.
func (s *Store) TasksForView(view View, listID, categoryID string) ([]Task, error) {
	if !view.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidView, view)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return tasksForView(s.state, view, listID, categoryID, s.state.SearchQuery, s.now()), nil
}

func tasksForView(st *AppState, view View, listID, categoryID, search string, now time.Time) []Task {
	search = strings.ToLower(strings.TrimSpace(search))

	var out []Task
	for _, t := range st.Tasks {
		if !matchesView(&t, view, listID, categoryID, now) {
			continue
		}
		if !matchesSearch(&t, search) {
			continue
		}
		out = append(out, t)
	}

	SortTasks(out)
	return out
}

func matchesView(t *Task, view View, listID, categoryID string, now time.Time) bool {
	switch view {
	case ViewMyDay:
		return !t.Completed && (t.MyDay || (t.DueDate != nil && sameDay(*t.DueDate, now)))
	case ViewImportant:
		return !t.Completed && t.Important
	case ViewPlanned:
		return t.DueDate != nil
	case ViewCategory:
		return !t.Completed && t.HasCategory(categoryID)
	case ViewList:
		return t.ListID == listID
	default:
		return !t.Completed
	}
}

// TaskCountForList returns the badge count shown next to a list in the
// sidebar. System lists count through their view predicate; user lists count
// their incomplete tasks.
func (s *Store) TaskCountForList(listID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	switch listID {
	case ListMyDay:
		return len(tasksForView(s.state, ViewMyDay, "", "", "", now))
	case ListImportant:
		return len(tasksForView(s.state, ViewImportant, "", "", "", now))
	case ListPlanned:
		count := 0
		for i := range s.state.Tasks {
			if !s.state.Tasks[i].Completed && s.state.Tasks[i].DueDate != nil {
				count++
			}
		}
		return count
	case ListAll:
		return len(tasksForView(s.state, ViewAll, "", "", "", now))
	}

	count := 0
	for i := range s.state.Tasks {
		if !s.state.Tasks[i].Completed && s.state.Tasks[i].ListID == listID {
			count++
		}
	}
	return count
}

// TaskCountForCategory returns the number of incomplete tasks carrying the
// category.
func (s *Store) TaskCountForCategory(categoryID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for i := range s.state.Tasks {
		if !s.state.Tasks[i].Completed && s.state.Tasks[i].HasCategory(categoryID) {
			count++
		}
	}
	return count
}

// ListsInGroup returns the user lists in a group (nil = ungrouped), sorted by
// order.
func (s *Store) ListsInGroup(groupID *string) []TaskList {
	s.mu.Lock()
	defer s.mu.Unlock()
	return listsInGroup(s.state, groupID)
}

func listsInGroup(st *AppState, groupID *string) []TaskList {
	var out []TaskList
	for _, list := range st.Lists {
		if list.IsSystem || !sameGroup(list.GroupID, groupID) {
			continue
		}
		out = append(out, list)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out
}

// GroupedLists pairs a group with its member lists in display order. A nil
// Group holds the ungrouped lists.
type GroupedLists struct {
	Group *ListGroup
	Lists []TaskList
}

// GroupedLists returns the sidebar structure: ungrouped lists first, then
// each group with its member lists, groups sorted by order.
func (s *Store) GroupedLists() []GroupedLists {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := []GroupedLists{{Lists: listsInGroup(s.state, nil)}}

	groups := append([]ListGroup(nil), s.state.ListGroups...)
	sort.SliceStable(groups, func(i, j int) bool { return groups[i].Order < groups[j].Order })
	for i := range groups {
		group := groups[i]
		out = append(out, GroupedLists{
			Group: &group,
			Lists: listsInGroup(s.state, &group.ID),
		})
	}
	return out
}

// GroupForList returns the group containing a list, or nil when the list is
// ungrouped or unknown.
func (s *Store) GroupForList(listID string) *ListGroup {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := s.state.list(listID)
	if list == nil || list.GroupID == nil {
		return nil
	}
	group := s.state.group(*list.GroupID)
	if group == nil {
		return nil
	}
	copied := *group
	return &copied
}

// CategoriesForTask returns the categories a task belongs to. Dangling
// category ids are filtered out.
func (s *Store) CategoriesForTask(taskID string) []Category {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := s.state.task(taskID)
	if t == nil {
		return nil
	}
	var out []Category
	for _, id := range t.CategoryIDs {
		if category := s.state.category(id); category != nil {
			out = append(out, *category)
		}
	}
	return out
}

// Task returns a copy of the task with the given id.
func (s *Store) Task(id string) (*Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := s.state.task(id)
	if t == nil {
		return nil, fmt.Errorf("%w: %q", ErrTaskNotFound, id)
	}
	copied := *t
	return &copied, nil
}

// Tasks returns a copy of every task.
func (s *Store) Tasks() []Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneTasks(s.state.Tasks)
}

// List returns a copy of the list with the given id.
func (s *Store) List(id string) (*TaskList, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := s.state.list(id)
	if list == nil {
		return nil, fmt.Errorf("%w: %q", ErrListNotFound, id)
	}
	copied := *list
	return &copied, nil
}

// Lists returns every list: system lists first, then user lists by group
// scope and order.
func (s *Store) Lists() []TaskList {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := append([]TaskList(nil), s.state.Lists...)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].IsSystem != out[j].IsSystem {
			return out[i].IsSystem
		}
		return out[i].Order < out[j].Order
	})
	return out
}

// Group returns a copy of the group with the given id.
func (s *Store) Group(id string) (*ListGroup, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	group := s.state.group(id)
	if group == nil {
		return nil, fmt.Errorf("%w: %q", ErrGroupNotFound, id)
	}
	copied := *group
	return &copied, nil
}

// Groups returns every group sorted by order.
func (s *Store) Groups() []ListGroup {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := append([]ListGroup(nil), s.state.ListGroups...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out
}

// Category returns a copy of the category with the given id.
func (s *Store) Category(id string) (*Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	category := s.state.category(id)
	if category == nil {
		return nil, fmt.Errorf("%w: %q", ErrCategoryNotFound, id)
	}
	copied := *category
	return &copied, nil
}

// Categories returns every category sorted by name.
func (s *Store) Categories() []Category {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := append([]Category(nil), s.state.Categories...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

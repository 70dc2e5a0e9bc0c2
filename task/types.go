package task

import "time"

// View identifies which derived task view is active.
type View string

const (
	// ViewMyDay shows incomplete tasks flagged for today or due today.
	ViewMyDay View = "my-day"

	// ViewImportant shows incomplete important tasks.
	ViewImportant View = "important"

	// ViewPlanned shows tasks with a due date, regardless of completion.
	ViewPlanned View = "planned"

	// ViewCategory shows incomplete tasks in the selected category.
	ViewCategory View = "category"

	// ViewList shows every task in the selected list.
	ViewList View = "list"

	// ViewAll shows all incomplete tasks irrespective of list.
	ViewAll View = "all"
)

// ValidViews returns all valid view values.
func ValidViews() []View {
	return []View{ViewMyDay, ViewImportant, ViewPlanned, ViewCategory, ViewList, ViewAll}
}

// IsValid returns true if the view is a known valid value.
func (v View) IsValid() bool {
	for _, valid := range ValidViews() {
		if v == valid {
			return true
		}
	}
	return false
}

// Fixed ids of the four system lists. System lists are seeded at store
// initialization and can never be deleted. They hold no tasks directly,
// except "all", which is the virtual default list.
const (
	ListMyDay     = "my-day"
	ListImportant = "important"
	ListPlanned   = "planned"
	ListAll       = "all"
)

// SystemListIDs returns the ids of the four fixed system lists.
func SystemListIDs() []string {
	return []string{ListMyDay, ListImportant, ListPlanned, ListAll}
}

// TaskList is a named container of tasks.
type TaskList struct {
	// ID is a unique identifier.
	ID string `json:"id"`

	// Name is the display name.
	Name string `json:"name"`

	// Emoji is an optional display icon.
	Emoji string `json:"emoji,omitempty"`

	// Color is an optional hex color like "#ff8800".
	Color string `json:"color,omitempty"`

	// IsSystem marks one of the four fixed system lists.
	IsSystem bool `json:"isSystem"`

	// GroupID is the owning group (nil = ungrouped).
	GroupID *string `json:"groupId,omitempty"`

	// Order is the list's position within its group scope.
	Order int `json:"order"`
}

// ListGroup is a named, collapsible, ordered container of lists. Groups never
// hold tasks directly.
type ListGroup struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Emoji     string `json:"emoji,omitempty"`
	Color     string `json:"color,omitempty"`
	Collapsed bool   `json:"collapsed"`
	Order     int    `json:"order"`

	// OverrideListIcons makes member lists display the group's emoji
	// instead of their own.
	OverrideListIcons bool `json:"overrideListIcons"`
}

// Category is a cross-list label. Tasks reference categories by id; deleting
// a category strips its id from tasks but never deletes them.
type Category struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Color       string    `json:"color,omitempty"`
	Emoji       string    `json:"emoji,omitempty"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// TimePreset is a reusable reminder time. Built-in presets are constants, not
// stored records; "deleting" one records its id in DisabledBuiltInPresets.
type TimePreset struct {
	ID       string `json:"id"`
	Label    string `json:"label"`
	Hour     int    `json:"hour"`
	Minute   int    `json:"minute"`
	IsCustom bool   `json:"isCustom"`
}

// AppState is the aggregate root the store mutates and the persistence
// adapter snapshots.
type AppState struct {
	Tasks                  []Task       `json:"tasks"`
	Lists                  []TaskList   `json:"lists"`
	ListGroups             []ListGroup  `json:"listGroups"`
	Categories             []Category   `json:"categories"`
	CurrentView            View         `json:"currentView"`
	CurrentListID          string       `json:"currentListId,omitempty"`
	CurrentCategoryID      string       `json:"currentCategoryId,omitempty"`
	SearchQuery            string       `json:"searchQuery"`
	DarkMode               bool         `json:"darkMode"`
	SidebarCollapsed       bool         `json:"sidebarCollapsed"`
	CustomTimePresets      []TimePreset `json:"customTimePresets"`
	DisabledBuiltInPresets []string     `json:"disabledBuiltInPresets"`
}

// NewAppState returns an empty state with the system lists seeded and the
// default view selected.
func NewAppState() *AppState {
	st := &AppState{CurrentView: ViewAll}
	st.ensureDefaults()
	return st
}

// ensureDefaults seeds the system lists and repairs an unset view. It is
// idempotent and safe to run on loaded snapshots.
func (st *AppState) ensureDefaults() {
	systemNames := map[string]string{
		ListMyDay:     "My Day",
		ListImportant: "Important",
		ListPlanned:   "Planned",
		ListAll:       "Tasks",
	}
	for i, id := range SystemListIDs() {
		if st.list(id) != nil {
			continue
		}
		st.Lists = append(st.Lists, TaskList{
			ID:       id,
			Name:     systemNames[id],
			IsSystem: true,
			Order:    i,
		})
	}
	if !st.CurrentView.IsValid() {
		st.CurrentView = ViewAll
	}
}

func (st *AppState) task(id string) *Task {
	for i := range st.Tasks {
		if st.Tasks[i].ID == id {
			return &st.Tasks[i]
		}
	}
	return nil
}

func (st *AppState) list(id string) *TaskList {
	for i := range st.Lists {
		if st.Lists[i].ID == id {
			return &st.Lists[i]
		}
	}
	return nil
}

func (st *AppState) group(id string) *ListGroup {
	for i := range st.ListGroups {
		if st.ListGroups[i].ID == id {
			return &st.ListGroups[i]
		}
	}
	return nil
}

func (st *AppState) category(id string) *Category {
	for i := range st.Categories {
		if st.Categories[i].ID == id {
			return &st.Categories[i]
		}
	}
	return nil
}

// knownCategoryIDs filters ids down to categories that exist, dropping
// duplicates. Category membership is advisory, so unknown ids are discarded
// rather than rejected.
func (st *AppState) knownCategoryIDs(ids []string) []string {
	var out []string
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if seen[id] || st.category(id) == nil {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}

func cloneTasks(tasks []Task) []Task {
	out := make([]Task, len(tasks))
	copy(out, tasks)
	return out
}

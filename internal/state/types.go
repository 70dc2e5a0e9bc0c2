// Package state persists daybook's application state as a JSON snapshot
// on disk. Every Date-typed field is wrapped as {"kind":"Date","value":…}
// so timestamps round-trip exactly, and snapshots written by older
// versions are migrated on load.
package state

import (
	"daybook/task"
)

// SchemaVersion is the snapshot format written by this version. Snapshots
// without a schemaVersion field are treated as version 0 and migrated.
const SchemaVersion = 1

type snapshot struct {
	SchemaVersion          int              `json:"schemaVersion"`
	Tasks                  []taskRecord     `json:"tasks"`
	Lists                  []listRecord     `json:"lists"`
	ListGroups             []groupRecord    `json:"listGroups"`
	Categories             []categoryRecord `json:"categories"`
	CurrentView            string           `json:"currentView"`
	CurrentListID          string           `json:"currentListId,omitempty"`
	CurrentCategoryID      string           `json:"currentCategoryId,omitempty"`
	SearchQuery            string           `json:"searchQuery"`
	DarkMode               bool             `json:"darkMode"`
	SidebarCollapsed       bool             `json:"sidebarCollapsed"`
	CustomTimePresets      []presetRecord   `json:"customTimePresets"`
	DisabledBuiltInPresets []string         `json:"disabledBuiltInPresets"`
}

// taskRecord keeps Order, Pinned, PinnedGlobally as pointers so a load
// can tell "absent from the snapshot" apart from a zero value and
// backfill defaults.
type taskRecord struct {
	ID             string          `json:"id"`
	Title          string          `json:"title"`
	Notes          string          `json:"notes,omitempty"`
	Completed      bool            `json:"completed"`
	Important      bool            `json:"important"`
	MyDay          bool            `json:"myDay"`
	Pinned         *bool           `json:"pinned,omitempty"`
	PinnedGlobally *bool           `json:"pinnedGlobally,omitempty"`
	DueDate        *Date           `json:"dueDate,omitempty"`
	Reminder       *Date           `json:"reminder,omitempty"`
	Repeat         string          `json:"repeat,omitempty"`
	RepeatDays     []int           `json:"repeatDays,omitempty"`
	Order          *int            `json:"order,omitempty"`
	ListID         string          `json:"listId"`
	CategoryIDs    []string        `json:"categoryIds,omitempty"`
	Steps          []subTaskRecord `json:"steps,omitempty"`
	CreatedAt      Date            `json:"createdAt"`
	UpdatedAt      Date            `json:"updatedAt"`
}

type subTaskRecord struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
	CreatedAt Date   `json:"createdAt"`
}

type listRecord struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Emoji    string  `json:"emoji,omitempty"`
	Color    string  `json:"color,omitempty"`
	IsSystem bool    `json:"isSystem"`
	GroupID  *string `json:"groupId,omitempty"`
	Order    int     `json:"order"`
}

type groupRecord struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	Emoji             string `json:"emoji,omitempty"`
	Color             string `json:"color,omitempty"`
	Collapsed         bool   `json:"collapsed"`
	Order             int    `json:"order"`
	OverrideListIcons bool   `json:"overrideListIcons"`
}

type categoryRecord struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Color       string `json:"color,omitempty"`
	Emoji       string `json:"emoji,omitempty"`
	Description string `json:"description,omitempty"`
	CreatedAt   Date   `json:"createdAt"`
	UpdatedAt   Date   `json:"updatedAt"`
}

type presetRecord struct {
	ID       string `json:"id"`
	Label    string `json:"label"`
	Hour     int    `json:"hour"`
	Minute   int    `json:"minute"`
	IsCustom bool   `json:"isCustom"`
}

func encodeState(st *task.AppState) *snapshot {
	snap := &snapshot{
		SchemaVersion:          SchemaVersion,
		Tasks:                  make([]taskRecord, len(st.Tasks)),
		Lists:                  make([]listRecord, len(st.Lists)),
		ListGroups:             make([]groupRecord, len(st.ListGroups)),
		Categories:             make([]categoryRecord, len(st.Categories)),
		CurrentView:            string(st.CurrentView),
		CurrentListID:          st.CurrentListID,
		CurrentCategoryID:      st.CurrentCategoryID,
		SearchQuery:            st.SearchQuery,
		DarkMode:               st.DarkMode,
		SidebarCollapsed:       st.SidebarCollapsed,
		CustomTimePresets:      make([]presetRecord, len(st.CustomTimePresets)),
		DisabledBuiltInPresets: append([]string(nil), st.DisabledBuiltInPresets...),
	}
	for i := range st.Tasks {
		snap.Tasks[i] = encodeTask(&st.Tasks[i])
	}
	for i, l := range st.Lists {
		snap.Lists[i] = listRecord{
			ID:       l.ID,
			Name:     l.Name,
			Emoji:    l.Emoji,
			Color:    l.Color,
			IsSystem: l.IsSystem,
			GroupID:  l.GroupID,
			Order:    l.Order,
		}
	}
	for i, g := range st.ListGroups {
		snap.ListGroups[i] = groupRecord{
			ID:                g.ID,
			Name:              g.Name,
			Emoji:             g.Emoji,
			Color:             g.Color,
			Collapsed:         g.Collapsed,
			Order:             g.Order,
			OverrideListIcons: g.OverrideListIcons,
		}
	}
	for i, c := range st.Categories {
		snap.Categories[i] = categoryRecord{
			ID:          c.ID,
			Name:        c.Name,
			Color:       c.Color,
			Emoji:       c.Emoji,
			Description: c.Description,
			CreatedAt:   wrapDate(c.CreatedAt),
			UpdatedAt:   wrapDate(c.UpdatedAt),
		}
	}
	for i, p := range st.CustomTimePresets {
		snap.CustomTimePresets[i] = presetRecord(p)
	}
	return snap
}

func encodeTask(t *task.Task) taskRecord {
	order := t.Order
	pinned := t.Pinned
	pinnedGlobally := t.PinnedGlobally
	rec := taskRecord{
		ID:             t.ID,
		Title:          t.Title,
		Notes:          t.Notes,
		Completed:      t.Completed,
		Important:      t.Important,
		MyDay:          t.MyDay,
		Pinned:         &pinned,
		PinnedGlobally: &pinnedGlobally,
		DueDate:        wrapDatePtr(t.DueDate),
		Reminder:       wrapDatePtr(t.Reminder),
		Repeat:         string(t.Repeat),
		RepeatDays:     append([]int(nil), t.RepeatDays...),
		Order:          &order,
		ListID:         t.ListID,
		CategoryIDs:    append([]string(nil), t.CategoryIDs...),
		Steps:          make([]subTaskRecord, len(t.Steps)),
		CreatedAt:      wrapDate(t.CreatedAt),
		UpdatedAt:      wrapDate(t.UpdatedAt),
	}
	for i, s := range t.Steps {
		rec.Steps[i] = subTaskRecord{
			ID:        s.ID,
			Title:     s.Title,
			Completed: s.Completed,
			CreatedAt: wrapDate(s.CreatedAt),
		}
	}
	return rec
}

func decodeState(snap *snapshot) *task.AppState {
	if snap.SchemaVersion < SchemaVersion {
		migrateV0(snap)
	}

	st := &task.AppState{
		Tasks:                  make([]task.Task, len(snap.Tasks)),
		Lists:                  make([]task.TaskList, len(snap.Lists)),
		ListGroups:             make([]task.ListGroup, len(snap.ListGroups)),
		Categories:             make([]task.Category, len(snap.Categories)),
		CurrentView:            task.View(snap.CurrentView),
		CurrentListID:          snap.CurrentListID,
		CurrentCategoryID:      snap.CurrentCategoryID,
		SearchQuery:            snap.SearchQuery,
		DarkMode:               snap.DarkMode,
		SidebarCollapsed:       snap.SidebarCollapsed,
		CustomTimePresets:      make([]task.TimePreset, len(snap.CustomTimePresets)),
		DisabledBuiltInPresets: append([]string(nil), snap.DisabledBuiltInPresets...),
	}
	for i := range snap.Tasks {
		st.Tasks[i] = decodeTask(&snap.Tasks[i])
	}
	for i, l := range snap.Lists {
		st.Lists[i] = task.TaskList{
			ID:       l.ID,
			Name:     l.Name,
			Emoji:    l.Emoji,
			Color:    l.Color,
			IsSystem: l.IsSystem,
			GroupID:  l.GroupID,
			Order:    l.Order,
		}
	}
	for i, g := range snap.ListGroups {
		st.ListGroups[i] = task.ListGroup{
			ID:                g.ID,
			Name:              g.Name,
			Emoji:             g.Emoji,
			Color:             g.Color,
			Collapsed:         g.Collapsed,
			Order:             g.Order,
			OverrideListIcons: g.OverrideListIcons,
		}
	}
	for i, c := range snap.Categories {
		st.Categories[i] = task.Category{
			ID:          c.ID,
			Name:        c.Name,
			Color:       c.Color,
			Emoji:       c.Emoji,
			Description: c.Description,
			CreatedAt:   c.CreatedAt.Time,
			UpdatedAt:   c.UpdatedAt.Time,
		}
	}
	for i, p := range snap.CustomTimePresets {
		st.CustomTimePresets[i] = task.TimePreset(p)
	}
	return st
}

func decodeTask(rec *taskRecord) task.Task {
	t := task.Task{
		ID:          rec.ID,
		Title:       rec.Title,
		Notes:       rec.Notes,
		Completed:   rec.Completed,
		Important:   rec.Important,
		MyDay:       rec.MyDay,
		DueDate:     unwrapDatePtr(rec.DueDate),
		Reminder:    unwrapDatePtr(rec.Reminder),
		Repeat:      task.Repeat(rec.Repeat),
		RepeatDays:  append([]int(nil), rec.RepeatDays...),
		ListID:      rec.ListID,
		CategoryIDs: append([]string(nil), rec.CategoryIDs...),
		Steps:       make([]task.SubTask, len(rec.Steps)),
		CreatedAt:   rec.CreatedAt.Time,
		UpdatedAt:   rec.UpdatedAt.Time,
	}
	if rec.Pinned != nil {
		t.Pinned = *rec.Pinned
	}
	if rec.PinnedGlobally != nil {
		t.PinnedGlobally = *rec.PinnedGlobally
	}
	if rec.Order != nil {
		t.Order = *rec.Order
	}
	if t.Repeat == "" {
		t.Repeat = task.RepeatNone
	}
	for i, s := range rec.Steps {
		t.Steps[i] = task.SubTask{
			ID:        s.ID,
			Title:     s.Title,
			Completed: s.Completed,
			CreatedAt: s.CreatedAt.Time,
		}
	}
	return t
}

// migrateV0 backfills fields that version-0 snapshots may lack: order
// defaults to the task's position in the array, pin flags to false, and
// membership slices to empty.
func migrateV0(snap *snapshot) {
	f := false
	for i := range snap.Tasks {
		rec := &snap.Tasks[i]
		if rec.Order == nil {
			idx := i
			rec.Order = &idx
		}
		if rec.Pinned == nil {
			v := f
			rec.Pinned = &v
		}
		if rec.PinnedGlobally == nil {
			v := f
			rec.PinnedGlobally = &v
		}
		if rec.CategoryIDs == nil {
			rec.CategoryIDs = []string{}
		}
		if rec.Steps == nil {
			rec.Steps = []subTaskRecord{}
		}
	}
	snap.SchemaVersion = SchemaVersion
}

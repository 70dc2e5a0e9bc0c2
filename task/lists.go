package task

import "fmt"

// Relationship deletion policy:
//
//	list  -> tasks       cascade: deleting a list deletes its tasks
//	group -> lists       reassign: deleting a group moves lists to a target
//	category -> tasks    strip: deleting a category removes the membership
//
// The asymmetry is deliberate; every delete command below follows this table.

// ListOptions configures a new list.
type ListOptions struct {
	Emoji string
	Color string

	// GroupID places the list inside a group (nil = ungrouped).
	GroupID *string
}

// AddList creates a new user list, appended at the end of its group scope.
func (s *Store) AddList(name string, opts ListOptions) (*TaskList, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	name = normalizeTitle(name)
	if err := ValidateTitle(name); err != nil {
		return nil, s.fail(err)
	}
	if err := ValidateColor(opts.Color); err != nil {
		return nil, s.fail(err)
	}
	if opts.GroupID != nil && s.state.group(*opts.GroupID) == nil {
		return nil, s.fail(fmt.Errorf("%w: %q", ErrGroupNotFound, *opts.GroupID))
	}

	created := TaskList{
		ID:      GenerateID(name, s.now()),
		Name:    name,
		Emoji:   opts.Emoji,
		Color:   opts.Color,
		GroupID: opts.GroupID,
		Order:   nextListOrder(s.state, opts.GroupID),
	}
	s.state.Lists = append(append([]TaskList(nil), s.state.Lists...), created)
	s.commit([]Event{successEvent("List created", created.Name)})
	return &created, nil
}

func nextListOrder(st *AppState, groupID *string) int {
	order := -1
	for i := range st.Lists {
		if st.Lists[i].IsSystem || !sameGroup(st.Lists[i].GroupID, groupID) {
			continue
		}
		if st.Lists[i].Order > order {
			order = st.Lists[i].Order
		}
	}
	return order + 1
}

func sameGroup(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

// ListUpdate configures fields to update on a list.
// Nil pointers mean "don't update this field".
type ListUpdate struct {
	Name  *string
	Emoji *string
	Color *string
}

// UpdateList updates a user list. System lists cannot be edited.
func (s *Store) UpdateList(id string, update ListUpdate) (*TaskList, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing := s.state.list(id)
	if existing == nil {
		return nil, s.fail(fmt.Errorf("%w: %q", ErrListNotFound, id))
	}
	if existing.IsSystem {
		return nil, s.fail(fmt.Errorf("%w: %q", ErrSystemList, id))
	}
	if update.Name != nil {
		name := normalizeTitle(*update.Name)
		if err := ValidateTitle(name); err != nil {
			return nil, s.fail(err)
		}
		update.Name = &name
	}
	if update.Color != nil {
		if err := ValidateColor(*update.Color); err != nil {
			return nil, s.fail(err)
		}
	}

	lists := append([]TaskList(nil), s.state.Lists...)
	var updated *TaskList
	for i := range lists {
		if lists[i].ID != id {
			continue
		}
		if update.Name != nil {
			lists[i].Name = *update.Name
		}
		if update.Emoji != nil {
			lists[i].Emoji = *update.Emoji
		}
		if update.Color != nil {
			lists[i].Color = *update.Color
		}
		copied := lists[i]
		updated = &copied
		break
	}

	s.state.Lists = lists
	s.commit(nil)
	return updated, nil
}

// DeleteList removes a user list and cascades to every task it owns.
// Returns the number of tasks removed.
func (s *Store) DeleteList(id string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing := s.state.list(id)
	if existing == nil {
		return 0, s.fail(fmt.Errorf("%w: %q", ErrListNotFound, id))
	}
	if existing.IsSystem {
		return 0, s.fail(fmt.Errorf("%w: %q", ErrSystemList, id))
	}
	name := existing.Name

	lists := make([]TaskList, 0, len(s.state.Lists)-1)
	for _, list := range s.state.Lists {
		if list.ID != id {
			lists = append(lists, list)
		}
	}

	removed := 0
	tasks := make([]Task, 0, len(s.state.Tasks))
	for _, t := range s.state.Tasks {
		if t.ListID == id {
			removed++
			continue
		}
		tasks = append(tasks, t)
	}

	s.state.Lists = lists
	s.state.Tasks = tasks
	if s.state.CurrentView == ViewList && s.state.CurrentListID == id {
		s.state.CurrentView = ViewAll
		s.state.CurrentListID = ""
	}

	event := infoEvent("List deleted", name)
	if removed > 0 {
		event = warningEvent("List deleted", fmt.Sprintf("%s, %s", name, countLabel(removed, "task removed", "tasks removed")))
	}
	s.commit([]Event{event})
	return removed, nil
}

// ReorderLists assigns each listed list's order to its index in listIDs,
// scoped to the given group (nil = ungrouped). Lists absent from listIDs
// keep their order.
func (s *Store) ReorderLists(listIDs []string, groupID *string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	position := make(map[string]int, len(listIDs))
	for i, id := range listIDs {
		position[id] = i
	}

	lists := append([]TaskList(nil), s.state.Lists...)
	for i := range lists {
		if lists[i].IsSystem || !sameGroup(lists[i].GroupID, groupID) {
			continue
		}
		if index, ok := position[lists[i].ID]; ok {
			lists[i].Order = index
		}
	}

	s.state.Lists = lists
	s.commit(nil)
	return nil
}

// MoveListToGroup moves a user list into a group, or out of any group when
// groupID is nil. The list lands at the end of the target scope.
func (s *Store) MoveListToGroup(listID string, groupID *string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing := s.state.list(listID)
	if existing == nil {
		return s.fail(fmt.Errorf("%w: %q", ErrListNotFound, listID))
	}
	if existing.IsSystem {
		return s.fail(fmt.Errorf("%w: %q", ErrSystemList, listID))
	}
	if groupID != nil && s.state.group(*groupID) == nil {
		return s.fail(fmt.Errorf("%w: %q", ErrGroupNotFound, *groupID))
	}

	order := nextListOrder(s.state, groupID)
	lists := append([]TaskList(nil), s.state.Lists...)
	for i := range lists {
		if lists[i].ID != listID {
			continue
		}
		lists[i].GroupID = groupID
		lists[i].Order = order
		break
	}

	s.state.Lists = lists
	s.commit(nil)
	return nil
}

// GroupOptions configures a new list group.
type GroupOptions struct {
	Emoji             string
	Color             string
	OverrideListIcons bool
}

// AddGroup creates a new list group, appended at the end of the group order.
func (s *Store) AddGroup(name string, opts GroupOptions) (*ListGroup, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	name = normalizeTitle(name)
	if err := ValidateTitle(name); err != nil {
		return nil, s.fail(err)
	}
	if err := ValidateColor(opts.Color); err != nil {
		return nil, s.fail(err)
	}

	order := -1
	for i := range s.state.ListGroups {
		if s.state.ListGroups[i].Order > order {
			order = s.state.ListGroups[i].Order
		}
	}

	created := ListGroup{
		ID:                GenerateID(name, s.now()),
		Name:              name,
		Emoji:             opts.Emoji,
		Color:             opts.Color,
		Order:             order + 1,
		OverrideListIcons: opts.OverrideListIcons,
	}
	s.state.ListGroups = append(append([]ListGroup(nil), s.state.ListGroups...), created)
	s.commit([]Event{successEvent("Group created", created.Name)})
	return &created, nil
}

// GroupUpdate configures fields to update on a group.
// Nil pointers mean "don't update this field".
type GroupUpdate struct {
	Name              *string
	Emoji             *string
	Color             *string
	OverrideListIcons *bool
}

// UpdateGroup updates a list group.
func (s *Store) UpdateGroup(id string, update GroupUpdate) (*ListGroup, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.group(id) == nil {
		return nil, s.fail(fmt.Errorf("%w: %q", ErrGroupNotFound, id))
	}
	if update.Name != nil {
		name := normalizeTitle(*update.Name)
		if err := ValidateTitle(name); err != nil {
			return nil, s.fail(err)
		}
		update.Name = &name
	}
	if update.Color != nil {
		if err := ValidateColor(*update.Color); err != nil {
			return nil, s.fail(err)
		}
	}

	groups := append([]ListGroup(nil), s.state.ListGroups...)
	var updated *ListGroup
	for i := range groups {
		if groups[i].ID != id {
			continue
		}
		if update.Name != nil {
			groups[i].Name = *update.Name
		}
		if update.Emoji != nil {
			groups[i].Emoji = *update.Emoji
		}
		if update.Color != nil {
			groups[i].Color = *update.Color
		}
		if update.OverrideListIcons != nil {
			groups[i].OverrideListIcons = *update.OverrideListIcons
		}
		copied := groups[i]
		updated = &copied
		break
	}

	s.state.ListGroups = groups
	s.commit(nil)
	return updated, nil
}

// DeleteGroup removes a group and reassigns its member lists to the target
// group (nil = ungrouped). It never deletes lists. Returns the number of
// lists moved.
func (s *Store) DeleteGroup(id string, target *string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing := s.state.group(id)
	if existing == nil {
		return 0, s.fail(fmt.Errorf("%w: %q", ErrGroupNotFound, id))
	}
	if target != nil && *target == id {
		return 0, s.fail(fmt.Errorf("%w: cannot reassign group to itself", ErrGroupNotFound))
	}
	if target != nil && s.state.group(*target) == nil {
		return 0, s.fail(fmt.Errorf("%w: %q", ErrGroupNotFound, *target))
	}
	name := existing.Name

	groups := make([]ListGroup, 0, len(s.state.ListGroups)-1)
	for _, group := range s.state.ListGroups {
		if group.ID != id {
			groups = append(groups, group)
		}
	}

	moved := 0
	order := nextListOrder(s.state, target)
	lists := append([]TaskList(nil), s.state.Lists...)
	for i := range lists {
		if !sameGroup(lists[i].GroupID, &id) {
			continue
		}
		lists[i].GroupID = target
		lists[i].Order = order
		order++
		moved++
	}

	s.state.ListGroups = groups
	s.state.Lists = lists

	event := infoEvent("Group deleted", name)
	if moved > 0 {
		event = warningEvent("Group deleted", fmt.Sprintf("%s, %s", name, countLabel(moved, "list moved", "lists moved")))
	}
	s.commit([]Event{event})
	return moved, nil
}

// ReorderGroups assigns each listed group's order to its index in groupIDs.
func (s *Store) ReorderGroups(groupIDs []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	position := make(map[string]int, len(groupIDs))
	for i, id := range groupIDs {
		position[id] = i
	}

	groups := append([]ListGroup(nil), s.state.ListGroups...)
	for i := range groups {
		if index, ok := position[groups[i].ID]; ok {
			groups[i].Order = index
		}
	}

	s.state.ListGroups = groups
	s.commit(nil)
	return nil
}

// ToggleGroupCollapsed flips a group's collapsed flag.
func (s *Store) ToggleGroupCollapsed(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.group(id) == nil {
		return s.fail(fmt.Errorf("%w: %q", ErrGroupNotFound, id))
	}

	groups := append([]ListGroup(nil), s.state.ListGroups...)
	for i := range groups {
		if groups[i].ID == id {
			groups[i].Collapsed = !groups[i].Collapsed
			break
		}
	}

	s.state.ListGroups = groups
	s.commit(nil)
	return nil
}

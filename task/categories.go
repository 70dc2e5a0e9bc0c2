package task

import "fmt"

// CategoryOptions configures a new category.
type CategoryOptions struct {
	Color       string
	Emoji       string
	Description string
}

// AddCategory creates a new category.
func (s *Store) AddCategory(name string, opts CategoryOptions) (*Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	name = normalizeTitle(name)
	if err := ValidateTitle(name); err != nil {
		return nil, s.fail(err)
	}
	if err := ValidateColor(opts.Color); err != nil {
		return nil, s.fail(err)
	}

	now := s.now()
	created := Category{
		ID:          GenerateID(name, now),
		Name:        name,
		Color:       opts.Color,
		Emoji:       opts.Emoji,
		Description: opts.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.state.Categories = append(append([]Category(nil), s.state.Categories...), created)
	s.commit([]Event{successEvent("Category created", created.Name)})
	return &created, nil
}

// CategoryUpdate configures fields to update on a category.
// Nil pointers mean "don't update this field".
type CategoryUpdate struct {
	Name        *string
	Color       *string
	Emoji       *string
	Description *string
}

// UpdateCategory updates a category and refreshes its updatedAt timestamp.
func (s *Store) UpdateCategory(id string, update CategoryUpdate) (*Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.category(id) == nil {
		return nil, s.fail(fmt.Errorf("%w: %q", ErrCategoryNotFound, id))
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

	now := s.now()
	categories := append([]Category(nil), s.state.Categories...)
	var updated *Category
	for i := range categories {
		if categories[i].ID != id {
			continue
		}
		if update.Name != nil {
			categories[i].Name = *update.Name
		}
		if update.Color != nil {
			categories[i].Color = *update.Color
		}
		if update.Emoji != nil {
			categories[i].Emoji = *update.Emoji
		}
		if update.Description != nil {
			categories[i].Description = *update.Description
		}
		categories[i].UpdatedAt = now
		copied := categories[i]
		updated = &copied
		break
	}

	s.state.Categories = categories
	s.commit(nil)
	return updated, nil
}

// DeleteCategory removes a category and strips its id from every task's
// membership. Tasks are never deleted. Returns the number of tasks affected.
func (s *Store) DeleteCategory(id string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing := s.state.category(id)
	if existing == nil {
		return 0, s.fail(fmt.Errorf("%w: %q", ErrCategoryNotFound, id))
	}
	name := existing.Name

	categories := make([]Category, 0, len(s.state.Categories)-1)
	for _, category := range s.state.Categories {
		if category.ID != id {
			categories = append(categories, category)
		}
	}

	stripped := 0
	tasks := cloneTasks(s.state.Tasks)
	for i := range tasks {
		if !tasks[i].HasCategory(id) {
			continue
		}
		remaining := make([]string, 0, len(tasks[i].CategoryIDs)-1)
		for _, categoryID := range tasks[i].CategoryIDs {
			if categoryID != id {
				remaining = append(remaining, categoryID)
			}
		}
		tasks[i].CategoryIDs = remaining
		stripped++
	}

	s.state.Categories = categories
	s.state.Tasks = tasks
	if s.state.CurrentView == ViewCategory && s.state.CurrentCategoryID == id {
		s.state.CurrentView = ViewAll
		s.state.CurrentCategoryID = ""
	}

	event := infoEvent("Category deleted", name)
	if stripped > 0 {
		event = warningEvent("Category deleted", fmt.Sprintf("%s, removed from %s", name, countLabel(stripped, "task", "tasks")))
	}
	s.commit([]Event{event})
	return stripped, nil
}

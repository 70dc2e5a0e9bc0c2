package task

import (
	"fmt"
	"sort"
)

// BuiltInPresets returns the fixed reminder-time presets. They are constants
// rather than stored records; a "deleted" built-in is recorded in the
// disabled set instead.
func BuiltInPresets() []TimePreset {
	return []TimePreset{
		{ID: "morning", Label: "Morning", Hour: 9, Minute: 0},
		{ID: "noon", Label: "Noon", Hour: 12, Minute: 0},
		{ID: "afternoon", Label: "Afternoon", Hour: 15, Minute: 0},
		{ID: "evening", Label: "Evening", Hour: 18, Minute: 0},
		{ID: "night", Label: "Night", Hour: 21, Minute: 0},
	}
}

func builtInPreset(id string) *TimePreset {
	for _, preset := range BuiltInPresets() {
		if preset.ID == id {
			return &preset
		}
	}
	return nil
}

// AddCustomTimePreset creates a user-defined reminder time.
func (s *Store) AddCustomTimePreset(label string, hour, minute int) (*TimePreset, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	label = normalizeTitle(label)
	if err := ValidateTitle(label); err != nil {
		return nil, s.fail(err)
	}
	if err := ValidatePresetTime(hour, minute); err != nil {
		return nil, s.fail(err)
	}

	created := TimePreset{
		ID:       GenerateID(label, s.now()),
		Label:    label,
		Hour:     hour,
		Minute:   minute,
		IsCustom: true,
	}
	s.state.CustomTimePresets = append(append([]TimePreset(nil), s.state.CustomTimePresets...), created)
	s.commit([]Event{successEvent("Time preset created", fmt.Sprintf("%s (%02d:%02d)", created.Label, hour, minute))})
	return &created, nil
}

// RemoveCustomTimePreset deletes a user-defined preset.
func (s *Store) RemoveCustomTimePreset(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	found := false
	presets := make([]TimePreset, 0, len(s.state.CustomTimePresets))
	for _, preset := range s.state.CustomTimePresets {
		if preset.ID == id {
			found = true
			continue
		}
		presets = append(presets, preset)
	}
	if !found {
		return s.fail(fmt.Errorf("%w: %q", ErrPresetNotFound, id))
	}

	s.state.CustomTimePresets = presets
	s.commit([]Event{infoEvent("Time preset removed", id)})
	return nil
}

// RemoveBuiltInPreset hides a built-in preset by adding its id to the
// disabled set. The preset itself is never deleted.
func (s *Store) RemoveBuiltInPreset(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if builtInPreset(id) == nil {
		return s.fail(fmt.Errorf("%w: %q", ErrNotBuiltInPreset, id))
	}
	for _, disabled := range s.state.DisabledBuiltInPresets {
		if disabled == id {
			return nil
		}
	}

	s.state.DisabledBuiltInPresets = append(append([]string(nil), s.state.DisabledBuiltInPresets...), id)
	s.commit([]Event{infoEvent("Time preset hidden", id)})
	return nil
}

// RestoreBuiltInPreset removes a built-in preset from the disabled set.
func (s *Store) RestoreBuiltInPreset(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if builtInPreset(id) == nil {
		return s.fail(fmt.Errorf("%w: %q", ErrNotBuiltInPreset, id))
	}

	disabled := make([]string, 0, len(s.state.DisabledBuiltInPresets))
	for _, existing := range s.state.DisabledBuiltInPresets {
		if existing != id {
			disabled = append(disabled, existing)
		}
	}

	s.state.DisabledBuiltInPresets = disabled
	s.commit([]Event{infoEvent("Time preset restored", id)})
	return nil
}

// AvailablePresets returns the visible presets: built-ins that are not
// disabled followed by custom presets, sorted by time of day.
func (s *Store) AvailablePresets() []TimePreset {
	s.mu.Lock()
	defer s.mu.Unlock()

	disabled := make(map[string]bool, len(s.state.DisabledBuiltInPresets))
	for _, id := range s.state.DisabledBuiltInPresets {
		disabled[id] = true
	}

	var presets []TimePreset
	for _, preset := range BuiltInPresets() {
		if !disabled[preset.ID] {
			presets = append(presets, preset)
		}
	}
	presets = append(presets, s.state.CustomTimePresets...)

	sort.SliceStable(presets, func(i, j int) bool {
		if presets[i].Hour != presets[j].Hour {
			return presets[i].Hour < presets[j].Hour
		}
		return presets[i].Minute < presets[j].Minute
	})
	return presets
}

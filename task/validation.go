package task

import (
	"errors"
	"fmt"
	"regexp"

	internalstrings "daybook/internal/strings"
)

var (
	// ErrEmptyTitle is returned when a task title or record name is empty.
	ErrEmptyTitle = errors.New("title cannot be empty")

	// ErrTitleTooLong is returned when a title exceeds MaxTitleLength.
	ErrTitleTooLong = errors.New("title exceeds maximum length")

	// ErrTaskNotFound is returned when a task with the given id doesn't exist.
	ErrTaskNotFound = errors.New("task not found")

	// ErrListNotFound is returned when a list with the given id doesn't exist.
	ErrListNotFound = errors.New("list not found")

	// ErrGroupNotFound is returned when a group with the given id doesn't exist.
	ErrGroupNotFound = errors.New("group not found")

	// ErrCategoryNotFound is returned when a category with the given id doesn't exist.
	ErrCategoryNotFound = errors.New("category not found")

	// ErrStepNotFound is returned when a step with the given id doesn't exist.
	ErrStepNotFound = errors.New("step not found")

	// ErrPresetNotFound is returned when a time preset with the given id doesn't exist.
	ErrPresetNotFound = errors.New("time preset not found")

	// ErrSystemList is returned when a command targets one of the fixed
	// system lists with a mutation they don't support.
	ErrSystemList = errors.New("system lists cannot be modified")

	// ErrInvalidView is returned when an unknown view is selected.
	ErrInvalidView = errors.New("invalid view")

	// ErrInvalidRepeat is returned when an unknown repeat kind is provided.
	ErrInvalidRepeat = errors.New("invalid repeat")

	// ErrInvalidRepeatDays is returned when a repeat day is outside 0-6.
	ErrInvalidRepeatDays = errors.New("repeat days must be weekday indices between 0 and 6")

	// ErrInvalidColor is returned for a malformed hex color.
	ErrInvalidColor = errors.New("color must be a hex value like #ff8800")

	// ErrInvalidPresetTime is returned for an out-of-range preset time.
	ErrInvalidPresetTime = errors.New("preset time must be between 00:00 and 23:59")

	// ErrNotBuiltInPreset is returned when a built-in preset operation
	// targets an id that is not a built-in preset.
	ErrNotBuiltInPreset = errors.New("not a built-in preset")

	// ErrAmbiguousID is returned when an id prefix matches multiple records.
	ErrAmbiguousID = errors.New("ambiguous id prefix")
)

var hexColorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// ValidateTitle checks a task title or record name against the shared length
// and emptiness rules.
func ValidateTitle(title string) error {
	if title == "" {
		return ErrEmptyTitle
	}
	if len([]rune(title)) > MaxTitleLength {
		return fmt.Errorf("%w: %d > %d", ErrTitleTooLong, len([]rune(title)), MaxTitleLength)
	}
	return nil
}

// ValidateRepeat checks the repeat kind and its optional weekday restriction.
func ValidateRepeat(repeat Repeat, repeatDays []int) error {
	if !repeat.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidRepeat, repeat)
	}
	for _, day := range repeatDays {
		if day < 0 || day > 6 {
			return fmt.Errorf("%w: got %d", ErrInvalidRepeatDays, day)
		}
	}
	return nil
}

// ValidateColor checks an optional hex color.
func ValidateColor(color string) error {
	if color == "" {
		return nil
	}
	if !hexColorPattern.MatchString(color) {
		return fmt.Errorf("%w: %q", ErrInvalidColor, color)
	}
	return nil
}

// ValidatePresetTime checks an hour/minute pair.
func ValidatePresetTime(hour, minute int) error {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return fmt.Errorf("%w: %02d:%02d", ErrInvalidPresetTime, hour, minute)
	}
	return nil
}

// normalizeTitle collapses interior whitespace before validation so that
// titles round-trip cleanly through editors and shells.
func normalizeTitle(title string) string {
	return internalstrings.NormalizeWhitespace(title)
}

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"daybook/task"
)

func hasChangedFlags(cmd *cobra.Command, flags ...string) bool {
	for _, flag := range flags {
		if cmd.Flags().Changed(flag) {
			return true
		}
	}
	return false
}

func shouldUseEditor(hasFlags bool, editFlag bool, noEditFlag bool, interactive bool) bool {
	if editFlag {
		return true
	}
	if noEditFlag {
		return false
	}
	if hasFlags {
		return false
	}
	return interactive
}

func encodeJSONToStdout(value any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(value)
}

// parseRepeatDays parses a comma-separated list of weekday indices or
// names into 0 (Sunday) through 6 (Saturday).
func parseRepeatDays(value string) ([]int, error) {
	if strings.TrimSpace(value) == "" {
		return nil, nil
	}

	names := map[string]int{
		"sunday": 0, "sun": 0,
		"monday": 1, "mon": 1,
		"tuesday": 2, "tue": 2,
		"wednesday": 3, "wed": 3,
		"thursday": 4, "thu": 4,
		"friday": 5, "fri": 5,
		"saturday": 6, "sat": 6,
	}

	parts := strings.Split(value, ",")
	days := make([]int, 0, len(parts))
	for _, part := range parts {
		part = strings.ToLower(strings.TrimSpace(part))
		if part == "" {
			continue
		}
		if day, ok := names[part]; ok {
			days = append(days, day)
			continue
		}
		day, err := strconv.Atoi(part)
		if err != nil || day < 0 || day > 6 {
			return nil, fmt.Errorf("invalid repeat day %q: use 0-6 or a weekday name", part)
		}
		days = append(days, day)
	}
	return days, nil
}

// parseClock parses "HH:MM" into an hour and minute.
func parseClock(value string) (hour, minute int, err error) {
	parts := strings.SplitN(value, ":", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid time %q: use HH:MM", value)
	}
	hour, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid time %q: use HH:MM", value)
	}
	minute, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid time %q: use HH:MM", value)
	}
	if err := task.ValidatePresetTime(hour, minute); err != nil {
		return 0, 0, err
	}
	return hour, minute, nil
}

// parseReminder parses a reminder expression like "tomorrow 09:00" or
// "friday morning". The last token may be a clock time or the id/label of
// an available preset; the rest is a due-date expression. A bare clock
// time or preset means today.
func parseReminder(store *task.Store, value string, now time.Time) (*time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" || strings.EqualFold(value, "none") {
		return nil, nil
	}

	fields := strings.Fields(value)
	last := fields[len(fields)-1]
	dayExpr := strings.Join(fields[:len(fields)-1], " ")
	if dayExpr == "" {
		dayExpr = "today"
	}

	day, err := task.ParseDueDate(dayExpr, now)
	if err != nil {
		return nil, err
	}
	if day == nil {
		return nil, fmt.Errorf("invalid reminder day %q", dayExpr)
	}

	hour, minute, clockErr := parseClock(last)
	if clockErr != nil {
		preset, ok := matchPreset(store, last)
		if !ok {
			return nil, fmt.Errorf("invalid reminder time %q: use HH:MM or a preset", last)
		}
		hour, minute = preset.Hour, preset.Minute
	}

	at := time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, day.Location())
	return &at, nil
}

func matchPreset(store *task.Store, ref string) (task.TimePreset, bool) {
	for _, preset := range store.AvailablePresets() {
		if preset.ID == ref || strings.EqualFold(preset.Label, ref) {
			return preset, true
		}
	}
	return task.TimePreset{}, false
}

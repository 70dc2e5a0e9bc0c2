package main

import (
	"fmt"
	"os"

	"daybook/internal/ui"
	"daybook/task"
)

// printNotifier renders store events to stderr so command output on
// stdout stays machine-readable. Error events are skipped here; the
// error value itself surfaces through the command's return path.
func printNotifier(event task.Event) {
	var line string
	switch event.Level {
	case task.EventSuccess:
		line = ui.Success("✓ " + event.Title)
	case task.EventWarning:
		line = ui.Warning("! " + event.Title)
	case task.EventError:
		return
	default:
		line = ui.Info("· " + event.Title)
	}
	if event.Description != "" {
		line += " " + ui.Muted(event.Description)
	}
	fmt.Fprintln(os.Stderr, line)
}

// Package ui renders daybook's terminal output: aligned tables, relative
// dates, and lipgloss-styled markers for task and event state.
package ui

import "github.com/charmbracelet/lipgloss"

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))

	mutedStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	boldStyle      = lipgloss.NewStyle().Bold(true)
	overdueStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	importantStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true)
	doneStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Strikethrough(true)
)

// Success styles text as a success marker.
func Success(text string) string { return successStyle.Render(text) }

// Info styles text as an informational marker.
func Info(text string) string { return infoStyle.Render(text) }

// Warning styles text as a warning marker.
func Warning(text string) string { return warningStyle.Render(text) }

// Error styles text as an error marker.
func Error(text string) string { return errorStyle.Render(text) }

// Muted styles text as secondary detail.
func Muted(text string) string { return mutedStyle.Render(text) }

// Bold styles text as a heading or emphasized value.
func Bold(text string) string { return boldStyle.Render(text) }

// Overdue styles a due-date cell for a task past its due day.
func Overdue(text string) string { return overdueStyle.Render(text) }

// Important styles a title cell for an important task.
func Important(text string) string { return importantStyle.Render(text) }

// Done styles a title cell for a completed task.
func Done(text string) string { return doneStyle.Render(text) }

// Checkbox renders a task's completion state.
func Checkbox(completed bool) string {
	if completed {
		return Success("[x]")
	}
	return "[ ]"
}

// Swatch renders a small color sample for a hex color, or "-" when the
// color is unset.
func Swatch(hex string) string {
	if hex == "" {
		return "-"
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Render("●") + " " + hex
}

// TrendArrow renders a direction indicator for stats output.
func TrendArrow(direction string) string {
	switch direction {
	case "up":
		return Success("↑")
	case "down":
		return Error("↓")
	default:
		return Muted("→")
	}
}

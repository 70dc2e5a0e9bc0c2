package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/muesli/reflow/wordwrap"
	"golang.org/x/term"

	"daybook/internal/markdown"
	"daybook/internal/ui"
	"daybook/task"
)

func terminalWidth() int {
	if width, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && width > 0 {
		return width
	}
	return 80
}

func printTaskTable(store *task.Store, tasks []task.Task, now time.Time) {
	table := ui.NewTable([]string{"", "ID", "TITLE", "DUE", "LIST", "AGE"}, len(tasks))
	for i := range tasks {
		t := &tasks[i]
		table.Row(
			taskMarker(t),
			t.ID,
			taskTitleCell(t),
			dueCell(t, now),
			listName(store, t.ListID),
			ui.Muted(ui.FormatTimeAgo(t.CreatedAt, now)),
		)
	}
	if table.Len() == 0 {
		fmt.Println("No tasks.")
		return
	}
	fmt.Print(table.String())
}

func taskMarker(t *task.Task) string {
	marker := ui.Checkbox(t.Completed)
	if t.PinnedGlobally {
		marker += "*"
	} else if t.Pinned {
		marker += "^"
	}
	return marker
}

func taskTitleCell(t *task.Task) string {
	title := ui.TruncateCell(t.Title)
	switch {
	case t.Completed:
		title = ui.Done(title)
	case t.Important:
		title = ui.Important(title)
	}
	if len(t.Steps) > 0 {
		done := 0
		for i := range t.Steps {
			if t.Steps[i].Completed {
				done++
			}
		}
		title += ui.Muted(" [" + strconv.Itoa(done) + "/" + strconv.Itoa(len(t.Steps)) + "]")
	}
	return title
}

func dueCell(t *task.Task, now time.Time) string {
	if t.DueDate == nil {
		return "-"
	}
	text := ui.FormatDueDate(*t.DueDate, now)
	if !t.Completed && (strings.HasSuffix(text, "overdue") || text == "yesterday") {
		return ui.Overdue(text)
	}
	return text
}

func listName(store *task.Store, listID string) string {
	if listID == task.ListAll {
		return "-"
	}
	if list, err := store.List(listID); err == nil {
		return list.Name
	}
	return listID
}

func printTaskDetail(store *task.Store, t *task.Task, now time.Time) {
	title := wordwrap.String(t.Title, terminalWidth()-2)
	fmt.Printf("%s %s\n", ui.Checkbox(t.Completed), ui.Bold(title))
	fmt.Printf("  id:       %s\n", t.ID)
	fmt.Printf("  list:     %s\n", listName(store, t.ListID))
	if t.DueDate != nil {
		fmt.Printf("  due:      %s\n", ui.FormatDueDate(*t.DueDate, now))
	}
	if t.Reminder != nil {
		fmt.Printf("  reminder: %s\n", ui.FormatReminder(*t.Reminder, now))
	}
	if t.Repeat != task.RepeatNone && t.Repeat != "" {
		repeat := string(t.Repeat)
		if len(t.RepeatDays) > 0 {
			days := make([]string, len(t.RepeatDays))
			for i, d := range t.RepeatDays {
				days[i] = time.Weekday(d).String()[:3]
			}
			repeat += " (" + strings.Join(days, ", ") + ")"
		}
		fmt.Printf("  repeat:   %s\n", repeat)
	}
	var flags []string
	if t.Important {
		flags = append(flags, "important")
	}
	if t.MyDay {
		flags = append(flags, "my-day")
	}
	if t.PinnedGlobally {
		flags = append(flags, "pinned everywhere")
	} else if t.Pinned {
		flags = append(flags, "pinned")
	}
	if len(flags) > 0 {
		fmt.Printf("  flags:    %s\n", strings.Join(flags, ", "))
	}
	if categories := store.CategoriesForTask(t.ID); len(categories) > 0 {
		names := make([]string, len(categories))
		for i, c := range categories {
			names[i] = c.Name
		}
		fmt.Printf("  labels:   %s\n", strings.Join(names, ", "))
	}
	fmt.Printf("  created:  %s\n", ui.Muted(ui.FormatTimeAgo(t.CreatedAt, now)))
	for i := range t.Steps {
		step := &t.Steps[i]
		fmt.Printf("  %s %s\n", ui.Checkbox(step.Completed), step.Title+" "+ui.Muted(step.ID))
	}
	if notes := markdown.Render(terminalWidth(), 2, t.Notes); notes != "" {
		fmt.Println()
		fmt.Println(notes)
	}
}

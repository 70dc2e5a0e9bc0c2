package editor

import (
	"bytes"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/template"

	"github.com/BurntSushi/toml"

	"daybook/task"
)

// TaskData holds the fields rendered into the editor template.
type TaskData struct {
	// IsUpdate is true when editing an existing task.
	IsUpdate bool
	// ID is the task id (only for updates).
	ID         string
	Title      string
	List       string
	Due        string
	Repeat     string
	RepeatDays []int
	Important  bool
	MyDay      bool
	Categories []string
	Notes      string
}

// DefaultCreateData returns TaskData for creating a new task.
func DefaultCreateData(listID string) TaskData {
	return TaskData{
		List:   listID,
		Repeat: string(task.RepeatNone),
	}
}

// DataFromTask creates TaskData from an existing task for editing.
func DataFromTask(t *task.Task, due string) TaskData {
	return TaskData{
		IsUpdate:   true,
		ID:         t.ID,
		Title:      t.Title,
		List:       t.ListID,
		Due:        due,
		Repeat:     string(t.Repeat),
		RepeatDays: append([]int(nil), t.RepeatDays...),
		Important:  t.Important,
		MyDay:      t.MyDay,
		Categories: append([]string(nil), t.CategoryIDs...),
		Notes:      t.Notes,
	}
}

var taskTemplate = template.Must(template.New("task").Funcs(template.FuncMap{
	"ints": func(values []int) string {
		parts := make([]string, len(values))
		for i, v := range values {
			parts[i] = strconv.Itoa(v)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	},
	"quoted": func(values []string) string {
		parts := make([]string, len(values))
		for i, v := range values {
			parts[i] = strconv.Quote(v)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	},
}).Parse(`title = {{ printf "%q" .Title }}
list = {{ printf "%q" .List }}
due = {{ printf "%q" .Due }} # YYYY-MM-DD, today, tomorrow, a weekday name, or empty
repeat = {{ printf "%q" .Repeat }} # none, daily, weekly, monthly, yearly
repeat-days = {{ ints .RepeatDays }} # weekday indices 0 (Sunday) to 6, daily only
important = {{ .Important }}
my-day = {{ .MyDay }}
categories = {{ quoted .Categories }} # category ids or names
---
{{ .Notes }}
`))

// RenderTaskTOML renders the task data as editable TOML frontmatter plus
// markdown notes.
func RenderTaskTOML(data TaskData) (string, error) {
	var buf bytes.Buffer
	if err := taskTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render template: %w", err)
	}
	return buf.String(), nil
}

// ParsedTask is the result of parsing the editor output. Due and the list
// and category references are raw strings for the caller to resolve.
type ParsedTask struct {
	Title      string   `toml:"title"`
	List       string   `toml:"list"`
	Due        string   `toml:"due"`
	Repeat     string   `toml:"repeat"`
	RepeatDays []int    `toml:"repeat-days"`
	Important  bool     `toml:"important"`
	MyDay      bool     `toml:"my-day"`
	Categories []string `toml:"categories"`
	Notes      string
}

// ParseTaskTOML parses the TOML frontmatter and notes body from the
// editor output and validates the title and repeat fields.
func ParseTaskTOML(content string) (*ParsedTask, error) {
	frontmatter, body := splitFrontmatter(content)

	var parsed ParsedTask
	if _, err := toml.Decode(frontmatter, &parsed); err != nil {
		return nil, fmt.Errorf("parse TOML: %w", err)
	}
	parsed.Notes = strings.TrimLeft(body, "\n")
	parsed.Repeat = strings.ToLower(strings.TrimSpace(parsed.Repeat))
	if parsed.Repeat == "" {
		parsed.Repeat = string(task.RepeatNone)
	}
	parsed.Due = strings.TrimSpace(parsed.Due)

	if err := task.ValidateTitle(parsed.Title); err != nil {
		return nil, err
	}
	if err := task.ValidateRepeat(task.Repeat(parsed.Repeat), parsed.RepeatDays); err != nil {
		return nil, err
	}

	return &parsed, nil
}

func splitFrontmatter(content string) (string, string) {
	content = strings.TrimLeft(content, "\n")
	if content == "" {
		return "", ""
	}

	lines := strings.Split(content, "\n")
	separatorIndex := -1
	for i, line := range lines {
		if strings.TrimSpace(line) == "---" {
			separatorIndex = i
			break
		}
	}
	if separatorIndex == -1 {
		return content, ""
	}

	frontmatter := strings.Join(lines[:separatorIndex], "\n")
	body := strings.Join(lines[separatorIndex+1:], "\n")
	return frontmatter, body
}

// EditTask opens the editor with pre-populated task data and returns the
// parsed result.
func EditTask(editorCmd string, data TaskData) (*ParsedTask, error) {
	content, err := RenderTaskTOML(data)
	if err != nil {
		return nil, err
	}

	tmpfile, err := os.CreateTemp("", "daybook-task-*.md")
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmpfile.Name()
	defer os.Remove(tmpPath)

	if _, err := tmpfile.WriteString(content); err != nil {
		tmpfile.Close()
		return nil, fmt.Errorf("write temp file: %w", err)
	}
	if err := tmpfile.Close(); err != nil {
		return nil, fmt.Errorf("close temp file: %w", err)
	}

	if err := Edit(editorCmd, tmpPath); err != nil {
		return nil, err
	}

	edited, err := os.ReadFile(tmpPath)
	if err != nil {
		return nil, fmt.Errorf("read edited file: %w", err)
	}

	return ParseTaskTOML(string(edited))
}

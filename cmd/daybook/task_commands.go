package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"daybook/internal/config"
	"daybook/internal/editor"
	"daybook/internal/ui"
	"daybook/task"
)

// daybook add
var addCmd = &cobra.Command{
	Use:   "add [title]",
	Short: "Add a new task",
	Long: `Add a new task.

With no title and no flags, opens $EDITOR on a TOML representation of the
task when running interactively. Use --no-edit to skip the editor, or
--edit to force it.`,
	Args: cobra.ArbitraryArgs,
	RunE: runAdd,
}

var (
	addList       string
	addNotes      string
	addDue        string
	addReminder   string
	addRepeat     string
	addRepeatDays string
	addImportant  bool
	addMyDay      bool
	addPinned     bool
	addCategories []string
	addSteps      []string
	addEdit       bool
	addNoEdit     bool
)

// daybook edit
var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit a task",
	Long: `Edit a task.

With no update flags, opens $EDITOR on a TOML representation of the task
when running interactively (flags pre-populate the buffer). Use --no-edit
to apply flags directly.`,
	Aliases: []string{"update"},
	Args:    cobra.ExactArgs(1),
	RunE:    runEdit,
}

var (
	editTitle         string
	editNotes         string
	editList          string
	editDue           string
	editReminder      string
	editRepeat        string
	editRepeatDays    string
	editImportant     bool
	editMyDay         bool
	editPinned        bool
	editPinnedGlobal  bool
	editCategories    []string
	editEditFlag      bool
	editNoEdit        bool
)

// daybook done
var doneCmd = &cobra.Command{
	Use:   "done <id>...",
	Short: "Toggle task completion",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runToggle(args, func(store *task.Store, id string) (*task.Task, error) {
			return store.ToggleTask(id)
		})
	},
}

// daybook important
var importantCmd = &cobra.Command{
	Use:   "important <id>...",
	Short: "Toggle the important flag",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runToggle(args, func(store *task.Store, id string) (*task.Task, error) {
			return store.ToggleImportant(id)
		})
	},
}

// daybook myday
var myDayCmd = &cobra.Command{
	Use:   "myday <id>...",
	Short: "Toggle membership in today's My Day view",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runToggle(args, func(store *task.Store, id string) (*task.Task, error) {
			return store.ToggleMyDay(id)
		})
	},
}

// daybook pin
var pinCmd = &cobra.Command{
	Use:   "pin <id>...",
	Short: "Toggle pinning to the top of the list (or everywhere with --global)",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runToggle(args, func(store *task.Store, id string) (*task.Task, error) {
			if pinGlobal {
				return store.ToggleGlobalPin(id)
			}
			return store.TogglePin(id)
		})
	},
}

var pinGlobal bool

// daybook rm
var rmCmd = &cobra.Command{
	Use:     "rm <id>...",
	Short:   "Delete one or more tasks",
	Aliases: []string{"delete"},
	Args:    cobra.MinimumNArgs(1),
	RunE:    runRm,
}

// daybook move
var moveCmd = &cobra.Command{
	Use:   "move <id>... --list <list>",
	Short: "Move tasks to another list",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runMove,
}

var moveList string

// daybook reorder
var reorderCmd = &cobra.Command{
	Use:   "reorder <id>... --list <list>",
	Short: "Reorder tasks within a list",
	Long: `Reorder tasks within a list.

The named tasks take positions 0..n-1 in the given order. Tasks in other
lists are left untouched.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runReorder,
}

var reorderList string

// daybook step
var stepCmd = &cobra.Command{
	Use:   "step",
	Short: "Manage checklist steps on a task",
}

var stepAddCmd = &cobra.Command{
	Use:   "add <task-id> <title>",
	Short: "Add a step to a task",
	Args:  cobra.ExactArgs(2),
	RunE:  runStepAdd,
}

var stepDoneCmd = &cobra.Command{
	Use:   "done <task-id> <step-id>",
	Short: "Toggle a step's completion",
	Args:  cobra.ExactArgs(2),
	RunE:  runStepDone,
}

var stepRmCmd = &cobra.Command{
	Use:   "rm <task-id> <step-id>",
	Short: "Delete a step from a task",
	Args:  cobra.ExactArgs(2),
	RunE:  runStepRm,
}

func init() {
	rootCmd.AddCommand(addCmd, editCmd, doneCmd, importantCmd, myDayCmd, pinCmd,
		rmCmd, moveCmd, reorderCmd, stepCmd)
	stepCmd.AddCommand(stepAddCmd, stepDoneCmd, stepRmCmd)

	// add flags
	addCmd.Flags().StringVarP(&addList, "list", "l", "", "List to add the task to (id or name)")
	addCmd.Flags().StringVarP(&addNotes, "notes", "n", "", "Markdown notes")
	addCmd.Flags().StringVarP(&addDue, "due", "d", "", "Due date (YYYY-MM-DD, today, tomorrow, or a weekday)")
	addCmd.Flags().StringVarP(&addReminder, "reminder", "r", "", "Reminder (e.g. \"tomorrow 09:00\" or \"friday morning\")")
	addCmd.Flags().StringVar(&addRepeat, "repeat", "", "Repeat rule (none, daily, weekly, monthly, yearly)")
	addCmd.Flags().StringVar(&addRepeatDays, "repeat-days", "", "Weekdays for daily repeats (e.g. mon,wed,fri)")
	addCmd.Flags().BoolVarP(&addImportant, "important", "i", false, "Mark as important")
	addCmd.Flags().BoolVar(&addMyDay, "myday", false, "Add to today's My Day view")
	addCmd.Flags().BoolVar(&addPinned, "pin", false, "Pin to the top of the list")
	addCmd.Flags().StringArrayVarP(&addCategories, "category", "c", nil, "Category (id or name, repeatable)")
	addCmd.Flags().StringArrayVarP(&addSteps, "step", "s", nil, "Checklist step title (repeatable)")
	addCmd.Flags().BoolVarP(&addEdit, "edit", "e", false, "Open $EDITOR (default if interactive and no flags)")
	addCmd.Flags().BoolVar(&addNoEdit, "no-edit", false, "Do not open $EDITOR")

	// edit flags
	editCmd.Flags().StringVar(&editTitle, "title", "", "New title")
	editCmd.Flags().StringVarP(&editNotes, "notes", "n", "", "New notes")
	editCmd.Flags().StringVarP(&editList, "list", "l", "", "Move to list (id or name)")
	editCmd.Flags().StringVarP(&editDue, "due", "d", "", "New due date (\"none\" clears)")
	editCmd.Flags().StringVarP(&editReminder, "reminder", "r", "", "New reminder (\"none\" clears)")
	editCmd.Flags().StringVar(&editRepeat, "repeat", "", "New repeat rule")
	editCmd.Flags().StringVar(&editRepeatDays, "repeat-days", "", "New weekdays for daily repeats")
	editCmd.Flags().BoolVarP(&editImportant, "important", "i", false, "Set the important flag")
	editCmd.Flags().BoolVar(&editMyDay, "myday", false, "Set My Day membership")
	editCmd.Flags().BoolVar(&editPinned, "pin", false, "Set the pinned flag")
	editCmd.Flags().BoolVar(&editPinnedGlobal, "pin-global", false, "Set the pinned-everywhere flag")
	editCmd.Flags().StringArrayVarP(&editCategories, "category", "c", nil, "Replace categories (repeatable; pass none to clear)")
	editCmd.Flags().BoolVarP(&editEditFlag, "edit", "e", false, "Open $EDITOR (default if interactive)")
	editCmd.Flags().BoolVar(&editNoEdit, "no-edit", false, "Do not open $EDITOR")

	// pin flags
	pinCmd.Flags().BoolVarP(&pinGlobal, "global", "g", false, "Pin across every view")

	// move flags
	moveCmd.Flags().StringVarP(&moveList, "list", "l", "", "Destination list (id or name)")
	moveCmd.MarkFlagRequired("list")

	// reorder flags
	reorderCmd.Flags().StringVarP(&reorderList, "list", "l", "", "List whose tasks are being reordered (id or name)")
	reorderCmd.MarkFlagRequired("list")

	addDueFlagAliases(addCmd, editCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	store, cfg, err := openStore()
	if err != nil {
		return err
	}

	title := joinArgs(args)
	now := time.Now()

	hasFlags := len(args) > 0 || hasChangedFlags(cmd, "list", "notes", "due", "reminder",
		"repeat", "repeat-days", "important", "myday", "pin", "category", "step")
	if shouldUseEditor(hasFlags, addEdit, addNoEdit, editor.IsInteractive()) {
		data := editor.DefaultCreateData(addList)
		data.Title = title
		if cmd.Flags().Changed("due") {
			data.Due = addDue
		}
		if cmd.Flags().Changed("repeat") {
			data.Repeat = addRepeat
		}
		data.Important = addImportant
		data.MyDay = addMyDay
		data.Notes = addNotes

		parsed, err := editor.EditTask(cfg.Editor, data)
		if err != nil {
			return err
		}
		return createFromParsed(store, cfg, parsed, now)
	}

	if title == "" {
		return fmt.Errorf("title is required (use --edit to open editor)")
	}

	opts := task.TaskOptions{
		Notes:     addNotes,
		Important: addImportant,
		MyDay:     addMyDay,
		Pinned:    addPinned,
		Steps:     addSteps,
	}
	if opts.DueDate, err = task.ParseDueDate(addDue, now); err != nil {
		return err
	}
	if opts.Reminder, err = parseReminder(store, addReminder, now); err != nil {
		return err
	}
	opts.Repeat = task.Repeat(addRepeat)
	if opts.RepeatDays, err = parseRepeatDays(addRepeatDays); err != nil {
		return err
	}
	if opts.CategoryIDs, err = resolveCategoryRefs(store, addCategories); err != nil {
		return err
	}

	listID, err := resolveListFlag(store, cfg, addList)
	if err != nil {
		return err
	}

	created, err := store.AddTask(title, listID, opts)
	if err != nil {
		return err
	}
	fmt.Printf("Added task %s: %s\n", created.ID, created.Title)
	return nil
}

func createFromParsed(store *task.Store, cfg *config.Config, parsed *editor.ParsedTask, now time.Time) error {
	opts := task.TaskOptions{
		Notes:      parsed.Notes,
		Important:  parsed.Important,
		MyDay:      parsed.MyDay,
		Repeat:     task.Repeat(parsed.Repeat),
		RepeatDays: parsed.RepeatDays,
	}
	var err error
	if opts.DueDate, err = task.ParseDueDate(parsed.Due, now); err != nil {
		return err
	}
	if opts.CategoryIDs, err = resolveCategoryRefs(store, parsed.Categories); err != nil {
		return err
	}
	listID, err := resolveListFlag(store, cfg, parsed.List)
	if err != nil {
		return err
	}

	created, err := store.AddTask(parsed.Title, listID, opts)
	if err != nil {
		return err
	}
	fmt.Printf("Added task %s: %s\n", created.ID, created.Title)
	return nil
}

func runEdit(cmd *cobra.Command, args []string) error {
	store, cfg, err := openStore()
	if err != nil {
		return err
	}

	id, err := store.ResolveTaskID(args[0])
	if err != nil {
		return err
	}
	now := time.Now()

	flagNames := []string{"title", "notes", "list", "due", "reminder", "repeat",
		"repeat-days", "important", "myday", "pin", "pin-global", "category"}
	hasFlags := hasChangedFlags(cmd, flagNames...)

	if shouldUseEditor(hasFlags, editEditFlag, editNoEdit, editor.IsInteractive()) {
		existing, err := store.Task(id)
		if err != nil {
			return err
		}

		due := ""
		if existing.DueDate != nil {
			due = ui.FormatDate(*existing.DueDate)
		}
		data := editor.DataFromTask(existing, due)
		if cmd.Flags().Changed("title") {
			data.Title = editTitle
		}
		if cmd.Flags().Changed("notes") {
			data.Notes = editNotes
		}
		if cmd.Flags().Changed("due") {
			data.Due = editDue
		}

		parsed, err := editor.EditTask(cfg.Editor, data)
		if err != nil {
			return err
		}
		update, err := updateFromParsed(store, existing, parsed, now)
		if err != nil {
			return err
		}
		updated, err := store.UpdateTask(id, update)
		if err != nil {
			return err
		}
		fmt.Printf("Updated task %s: %s\n", updated.ID, updated.Title)
		return nil
	}

	if !hasFlags {
		return fmt.Errorf("at least one update flag is required (use --edit to open editor)")
	}

	update := task.TaskUpdate{}
	if cmd.Flags().Changed("title") {
		update.Title = &editTitle
	}
	if cmd.Flags().Changed("notes") {
		update.Notes = &editNotes
	}
	if cmd.Flags().Changed("list") {
		listID, err := store.ResolveListID(editList)
		if err != nil {
			return err
		}
		update.ListID = &listID
	}
	if cmd.Flags().Changed("due") {
		due, err := task.ParseDueDate(editDue, now)
		if err != nil {
			return err
		}
		if due == nil {
			update.DueDate = task.ClearTime()
		} else {
			update.DueDate = task.SetTime(*due)
		}
	}
	if cmd.Flags().Changed("reminder") {
		reminder, err := parseReminder(store, editReminder, now)
		if err != nil {
			return err
		}
		if reminder == nil {
			update.Reminder = task.ClearTime()
		} else {
			update.Reminder = task.SetTime(*reminder)
		}
	}
	if cmd.Flags().Changed("repeat") {
		repeat := task.Repeat(editRepeat)
		update.Repeat = &repeat
	}
	if cmd.Flags().Changed("repeat-days") {
		days, err := parseRepeatDays(editRepeatDays)
		if err != nil {
			return err
		}
		update.RepeatDays = &days
	}
	if cmd.Flags().Changed("important") {
		update.Important = &editImportant
	}
	if cmd.Flags().Changed("myday") {
		update.MyDay = &editMyDay
	}
	if cmd.Flags().Changed("pin") {
		update.Pinned = &editPinned
	}
	if cmd.Flags().Changed("pin-global") {
		update.PinnedGlobally = &editPinnedGlobal
	}
	if cmd.Flags().Changed("category") {
		ids, err := resolveCategoryRefs(store, editCategories)
		if err != nil {
			return err
		}
		update.CategoryIDs = &ids
	}

	updated, err := store.UpdateTask(id, update)
	if err != nil {
		return err
	}
	fmt.Printf("Updated task %s: %s\n", updated.ID, updated.Title)
	return nil
}

func updateFromParsed(store *task.Store, existing *task.Task, parsed *editor.ParsedTask, now time.Time) (task.TaskUpdate, error) {
	update := task.TaskUpdate{
		Title:     &parsed.Title,
		Notes:     &parsed.Notes,
		Important: &parsed.Important,
		MyDay:     &parsed.MyDay,
	}

	repeat := task.Repeat(parsed.Repeat)
	update.Repeat = &repeat
	update.RepeatDays = &parsed.RepeatDays

	due, err := task.ParseDueDate(parsed.Due, now)
	if err != nil {
		return task.TaskUpdate{}, err
	}
	switch {
	case due == nil && existing.DueDate != nil:
		update.DueDate = task.ClearTime()
	case due != nil:
		update.DueDate = task.SetTime(*due)
	}

	if parsed.List != "" && parsed.List != existing.ListID {
		listID, err := store.ResolveListID(parsed.List)
		if err != nil {
			return task.TaskUpdate{}, err
		}
		update.ListID = &listID
	}

	ids, err := resolveCategoryRefs(store, parsed.Categories)
	if err != nil {
		return task.TaskUpdate{}, err
	}
	update.CategoryIDs = &ids

	return update, nil
}

func runToggle(args []string, toggle func(*task.Store, string) (*task.Task, error)) error {
	store, _, err := openStore()
	if err != nil {
		return err
	}
	for _, ref := range args {
		id, err := store.ResolveTaskID(ref)
		if err != nil {
			return err
		}
		if _, err := toggle(store, id); err != nil {
			return err
		}
	}
	return nil
}

func runRm(cmd *cobra.Command, args []string) error {
	store, _, err := openStore()
	if err != nil {
		return err
	}
	for _, ref := range args {
		id, err := store.ResolveTaskID(ref)
		if err != nil {
			return err
		}
		if err := store.DeleteTask(id); err != nil {
			return err
		}
	}
	return nil
}

func runMove(cmd *cobra.Command, args []string) error {
	store, _, err := openStore()
	if err != nil {
		return err
	}
	listID, err := store.ResolveListID(moveList)
	if err != nil {
		return err
	}
	for _, ref := range args {
		id, err := store.ResolveTaskID(ref)
		if err != nil {
			return err
		}
		if _, err := store.UpdateTask(id, task.TaskUpdate{ListID: &listID}); err != nil {
			return err
		}
	}
	return nil
}

func runReorder(cmd *cobra.Command, args []string) error {
	store, _, err := openStore()
	if err != nil {
		return err
	}
	listID, err := store.ResolveListID(reorderList)
	if err != nil {
		return err
	}
	ids := make([]string, len(args))
	for i, ref := range args {
		if ids[i], err = store.ResolveTaskID(ref); err != nil {
			return err
		}
	}
	return store.ReorderTasks(ids, listID)
}

func runStepAdd(cmd *cobra.Command, args []string) error {
	store, _, err := openStore()
	if err != nil {
		return err
	}
	id, err := store.ResolveTaskID(args[0])
	if err != nil {
		return err
	}
	step, err := store.AddSubTask(id, args[1])
	if err != nil {
		return err
	}
	fmt.Printf("Added step %s: %s\n", step.ID, step.Title)
	return nil
}

func runStepDone(cmd *cobra.Command, args []string) error {
	store, _, err := openStore()
	if err != nil {
		return err
	}
	id, err := store.ResolveTaskID(args[0])
	if err != nil {
		return err
	}
	stepID, err := store.ResolveStepID(id, args[1])
	if err != nil {
		return err
	}
	return store.ToggleSubTask(id, stepID)
}

func runStepRm(cmd *cobra.Command, args []string) error {
	store, _, err := openStore()
	if err != nil {
		return err
	}
	id, err := store.ResolveTaskID(args[0])
	if err != nil {
		return err
	}
	stepID, err := store.ResolveStepID(id, args[1])
	if err != nil {
		return err
	}
	return store.DeleteSubTask(id, stepID)
}

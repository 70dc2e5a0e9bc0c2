package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"daybook/task"
)

// daybook list
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks",
	Long: `List tasks.

With no flags, shows the current view. --view selects a derived view
(my-day, important, planned, all); --in and --label select a list or
category view. Filter flags narrow the result further.`,
	Aliases: []string{"ls"},
	Args:    cobra.NoArgs,
	RunE:    runList,
}

var (
	listView      string
	listIn        string
	listLabel     string
	listSearch    string
	listDue       string
	listCompleted bool
	listImportant bool
	listJSON      bool
)

// daybook show
var showCmd = &cobra.Command{
	Use:   "show <id>...",
	Short: "Show detailed information about tasks",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runShow,
}

var showJSON bool

// daybook counts
var countsCmd = &cobra.Command{
	Use:   "counts",
	Short: "Show sidebar task counts per list and category",
	Args:  cobra.NoArgs,
	RunE:  runCounts,
}

var countsJSON bool

func init() {
	rootCmd.AddCommand(listCmd, showCmd, countsCmd)

	listCmd.Flags().StringVarP(&listView, "view", "v", "", "View (my-day, important, planned, all)")
	listCmd.Flags().StringVar(&listIn, "in", "", "Show a list's tasks (id or name)")
	listCmd.Flags().StringVar(&listLabel, "label", "", "Show a category's tasks (id or name)")
	listCmd.Flags().StringVarP(&listSearch, "search", "s", "", "Filter by title/notes substring")
	listCmd.Flags().StringVarP(&listDue, "due", "d", "", "Filter by due state (today, overdue)")
	listCmd.Flags().BoolVar(&listCompleted, "completed", false, "Only completed tasks")
	listCmd.Flags().BoolVarP(&listImportant, "important", "i", false, "Only important tasks")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output as JSON")

	showCmd.Flags().BoolVar(&showJSON, "json", false, "Output as JSON")

	countsCmd.Flags().BoolVar(&countsJSON, "json", false, "Output as JSON")
}

func runList(cmd *cobra.Command, args []string) error {
	store, _, err := openStore()
	if err != nil {
		return err
	}
	now := time.Now()

	var tasks []task.Task
	switch {
	case listIn != "":
		listID, err := store.ResolveListID(listIn)
		if err != nil {
			return err
		}
		tasks, err = store.TasksForView(task.ViewList, listID, "")
		if err != nil {
			return err
		}
	case listLabel != "":
		categoryID, err := store.ResolveCategoryID(listLabel)
		if err != nil {
			return err
		}
		tasks, err = store.TasksForView(task.ViewCategory, "", categoryID)
		if err != nil {
			return err
		}
	case listView != "":
		tasks, err = store.TasksForView(task.View(listView), "", "")
		if err != nil {
			return err
		}
	default:
		tasks = store.TasksForCurrentView()
	}

	tasks = applyListFilters(cmd, tasks)

	if listJSON {
		if tasks == nil {
			tasks = []task.Task{}
		}
		return encodeJSONToStdout(tasks)
	}
	printTaskTable(store, tasks, now)
	return nil
}

// applyListFilters narrows view results with the secondary filter flags.
func applyListFilters(cmd *cobra.Command, tasks []task.Task) []task.Task {
	search := listSearch
	due := task.DueFilter(listDue)
	var completed, important *bool
	if cmd.Flags().Changed("completed") {
		completed = &listCompleted
	}
	if cmd.Flags().Changed("important") {
		important = &listImportant
	}
	if search == "" && due == task.DueAny && completed == nil && important == nil {
		return tasks
	}

	now := time.Now()
	filtered := make([]task.Task, 0, len(tasks))
	for _, t := range tasks {
		if !task.MatchesFilter(&t, task.Filter{
			Completed: completed,
			Important: important,
			Search:    search,
			Due:       due,
		}, now) {
			continue
		}
		filtered = append(filtered, t)
	}
	return filtered
}

func runShow(cmd *cobra.Command, args []string) error {
	store, _, err := openStore()
	if err != nil {
		return err
	}
	now := time.Now()

	tasks := make([]task.Task, 0, len(args))
	for _, ref := range args {
		id, err := store.ResolveTaskID(ref)
		if err != nil {
			return err
		}
		t, err := store.Task(id)
		if err != nil {
			return err
		}
		tasks = append(tasks, *t)
	}

	if showJSON {
		return encodeJSONToStdout(tasks)
	}
	for i := range tasks {
		if i > 0 {
			fmt.Println("---")
		}
		printTaskDetail(store, &tasks[i], now)
	}
	return nil
}

type listCount struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func runCounts(cmd *cobra.Command, args []string) error {
	store, _, err := openStore()
	if err != nil {
		return err
	}

	var lists []listCount
	for _, list := range store.Lists() {
		lists = append(lists, listCount{
			ID:    list.ID,
			Name:  list.Name,
			Count: store.TaskCountForList(list.ID),
		})
	}
	var categories []listCount
	for _, category := range store.Categories() {
		categories = append(categories, listCount{
			ID:    category.ID,
			Name:  category.Name,
			Count: store.TaskCountForCategory(category.ID),
		})
	}

	if countsJSON {
		return encodeJSONToStdout(map[string][]listCount{
			"lists":      lists,
			"categories": categories,
		})
	}

	for _, entry := range lists {
		fmt.Printf("%-20s %d\n", entry.Name, entry.Count)
	}
	for _, entry := range categories {
		fmt.Printf("#%-19s %d\n", entry.Name, entry.Count)
	}
	return nil
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"daybook/task"
)

// daybook view
var viewCmd = &cobra.Command{
	Use:   "view [view]",
	Short: "Show or change the active view",
	Long: `Show or change the active view.

With no arguments, prints the current view. Pass a view name (my-day,
important, planned, all), --list, or --label to switch.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runView,
}

var (
	viewList  string
	viewLabel string
)

// daybook search
var searchCmd = &cobra.Command{
	Use:   "search [text]",
	Short: "Set the stored search query (empty clears it)",
	Args:  cobra.ArbitraryArgs,
	RunE:  runSearch,
}

// daybook prefs
var prefsCmd = &cobra.Command{
	Use:   "prefs",
	Short: "Show or change display preferences",
	Args:  cobra.NoArgs,
	RunE:  runPrefs,
}

var (
	prefsDarkMode bool
	prefsSidebar  bool
)

func init() {
	rootCmd.AddCommand(viewCmd, searchCmd, prefsCmd)

	viewCmd.Flags().StringVarP(&viewList, "list", "l", "", "Switch to a list's view (id or name)")
	viewCmd.Flags().StringVar(&viewLabel, "label", "", "Switch to a category's view (id or name)")

	prefsCmd.Flags().BoolVar(&prefsDarkMode, "dark-mode", false, "Enable or disable dark mode")
	prefsCmd.Flags().BoolVar(&prefsSidebar, "sidebar-collapsed", false, "Collapse or expand the sidebar")
}

func runView(cmd *cobra.Command, args []string) error {
	store, _, err := openStore()
	if err != nil {
		return err
	}

	switch {
	case viewList != "":
		listID, err := store.ResolveListID(viewList)
		if err != nil {
			return err
		}
		if err := store.SetView(task.ViewList, listID, ""); err != nil {
			return err
		}
	case viewLabel != "":
		categoryID, err := store.ResolveCategoryID(viewLabel)
		if err != nil {
			return err
		}
		if err := store.SetView(task.ViewCategory, "", categoryID); err != nil {
			return err
		}
	case len(args) == 1:
		if err := store.SetView(task.View(args[0]), "", ""); err != nil {
			return err
		}
	}

	view, listID, categoryID := store.CurrentView()
	switch view {
	case task.ViewList:
		fmt.Printf("view: list %s\n", listName(store, listID))
	case task.ViewCategory:
		name := categoryID
		if category, err := store.Category(categoryID); err == nil {
			name = category.Name
		}
		fmt.Printf("view: category %s\n", name)
	default:
		fmt.Printf("view: %s\n", view)
	}
	if query := store.SearchQuery(); query != "" {
		fmt.Printf("search: %q\n", query)
	}
	return nil
}

func runSearch(cmd *cobra.Command, args []string) error {
	store, _, err := openStore()
	if err != nil {
		return err
	}
	store.SetSearchQuery(joinArgs(args))
	return nil
}

func runPrefs(cmd *cobra.Command, args []string) error {
	store, _, err := openStore()
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("dark-mode") {
		store.SetDarkMode(prefsDarkMode)
	}
	if cmd.Flags().Changed("sidebar-collapsed") {
		store.SetSidebarCollapsed(prefsSidebar)
	}

	state := store.State()
	fmt.Printf("dark-mode: %v\n", state.DarkMode)
	fmt.Printf("sidebar-collapsed: %v\n", state.SidebarCollapsed)
	return nil
}

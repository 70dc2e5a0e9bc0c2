package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"daybook/internal/ui"
	"daybook/task"
)

// daybook categories
var categoriesCmd = &cobra.Command{
	Use:     "categories",
	Short:   "Manage categories (cross-list labels)",
	Aliases: []string{"cats"},
	Args:    cobra.NoArgs,
	RunE:    runCategories,
}

var categoriesJSON bool

var categoriesAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Create a new category",
	Args:  cobra.ExactArgs(1),
	RunE:  runCategoriesAdd,
}

var (
	categoriesAddColor       string
	categoriesAddEmoji       string
	categoriesAddDescription string
)

var categoriesEditCmd = &cobra.Command{
	Use:     "edit <category>",
	Short:   "Update a category",
	Aliases: []string{"update"},
	Args:    cobra.ExactArgs(1),
	RunE:    runCategoriesEdit,
}

var (
	categoriesEditName        string
	categoriesEditColor       string
	categoriesEditEmoji       string
	categoriesEditDescription string
)

var categoriesRmCmd = &cobra.Command{
	Use:     "rm <category>",
	Short:   "Delete a category, stripping it from tasks",
	Aliases: []string{"delete"},
	Args:    cobra.ExactArgs(1),
	RunE:    runCategoriesRm,
}

var categoriesAssignCmd = &cobra.Command{
	Use:   "assign <task-id> [category]...",
	Short: "Replace a task's categories",
	Long: `Replace a task's categories.

Pass category ids or names after the task id. With no categories, the
task's labels are cleared.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCategoriesAssign,
}

func init() {
	rootCmd.AddCommand(categoriesCmd)
	categoriesCmd.AddCommand(categoriesAddCmd, categoriesEditCmd, categoriesRmCmd, categoriesAssignCmd)

	categoriesCmd.Flags().BoolVar(&categoriesJSON, "json", false, "Output as JSON")
	categoriesAddCmd.Flags().StringVar(&categoriesAddColor, "color", "", "Hex color like #ff8800")
	categoriesAddCmd.Flags().StringVar(&categoriesAddEmoji, "emoji", "", "Display icon")
	categoriesAddCmd.Flags().StringVarP(&categoriesAddDescription, "description", "d", "", "Description")
	categoriesEditCmd.Flags().StringVar(&categoriesEditName, "name", "", "New name")
	categoriesEditCmd.Flags().StringVar(&categoriesEditColor, "color", "", "New hex color")
	categoriesEditCmd.Flags().StringVar(&categoriesEditEmoji, "emoji", "", "New display icon")
	categoriesEditCmd.Flags().StringVarP(&categoriesEditDescription, "description", "d", "", "New description")
	addDescriptionFlagAliases(categoriesAddCmd, categoriesEditCmd)
}

func runCategories(cmd *cobra.Command, args []string) error {
	store, _, err := openStore()
	if err != nil {
		return err
	}

	categories := store.Categories()
	if categoriesJSON {
		return encodeJSONToStdout(categories)
	}

	table := ui.NewTable([]string{"ID", "NAME", "COLOR", "TASKS"}, len(categories))
	for i := range categories {
		category := &categories[i]
		name := category.Name
		if category.Emoji != "" {
			name = category.Emoji + " " + name
		}
		table.Row(category.ID, name, ui.Swatch(category.Color), strconv.Itoa(store.TaskCountForCategory(category.ID)))
	}
	if table.Len() == 0 {
		fmt.Println("No categories.")
		return nil
	}
	fmt.Print(table.String())
	return nil
}

func runCategoriesAdd(cmd *cobra.Command, args []string) error {
	store, _, err := openStore()
	if err != nil {
		return err
	}
	created, err := store.AddCategory(args[0], task.CategoryOptions{
		Color:       categoriesAddColor,
		Emoji:       categoriesAddEmoji,
		Description: categoriesAddDescription,
	})
	if err != nil {
		return err
	}
	fmt.Printf("Added category %s: %s\n", created.ID, created.Name)
	return nil
}

func runCategoriesEdit(cmd *cobra.Command, args []string) error {
	store, _, err := openStore()
	if err != nil {
		return err
	}
	id, err := store.ResolveCategoryID(args[0])
	if err != nil {
		return err
	}

	update := task.CategoryUpdate{}
	if cmd.Flags().Changed("name") {
		update.Name = &categoriesEditName
	}
	if cmd.Flags().Changed("color") {
		update.Color = &categoriesEditColor
	}
	if cmd.Flags().Changed("emoji") {
		update.Emoji = &categoriesEditEmoji
	}
	if cmd.Flags().Changed("description") {
		update.Description = &categoriesEditDescription
	}

	_, err = store.UpdateCategory(id, update)
	return err
}

func runCategoriesRm(cmd *cobra.Command, args []string) error {
	store, _, err := openStore()
	if err != nil {
		return err
	}
	id, err := store.ResolveCategoryID(args[0])
	if err != nil {
		return err
	}
	_, err = store.DeleteCategory(id)
	return err
}

func runCategoriesAssign(cmd *cobra.Command, args []string) error {
	store, _, err := openStore()
	if err != nil {
		return err
	}
	id, err := store.ResolveTaskID(args[0])
	if err != nil {
		return err
	}
	ids, err := resolveCategoryRefs(store, args[1:])
	if err != nil {
		return err
	}
	_, err = store.AssignTaskCategories(id, ids)
	return err
}

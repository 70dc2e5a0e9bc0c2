package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"daybook/internal/ui"
	"daybook/task"
)

// daybook lists
var listsCmd = &cobra.Command{
	Use:   "lists",
	Short: "Manage task lists",
	Args:  cobra.NoArgs,
	RunE:  runLists,
}

var listsJSON bool

var listsAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Create a new list",
	Args:  cobra.ExactArgs(1),
	RunE:  runListsAdd,
}

var (
	listsAddEmoji string
	listsAddColor string
	listsAddGroup string
)

var listsEditCmd = &cobra.Command{
	Use:     "edit <list>",
	Short:   "Update a list's name, emoji, or color",
	Aliases: []string{"update"},
	Args:    cobra.ExactArgs(1),
	RunE:    runListsEdit,
}

var (
	listsEditName  string
	listsEditEmoji string
	listsEditColor string
)

var listsRmCmd = &cobra.Command{
	Use:     "rm <list>",
	Short:   "Delete a list and every task in it",
	Aliases: []string{"delete"},
	Args:    cobra.ExactArgs(1),
	RunE:    runListsRm,
}

var listsReorderCmd = &cobra.Command{
	Use:   "reorder <list>...",
	Short: "Reorder lists within a group scope",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runListsReorder,
}

var listsReorderGroup string

var listsMoveCmd = &cobra.Command{
	Use:   "move <list>",
	Short: "Move a list into a group, or out with --ungroup",
	Args:  cobra.ExactArgs(1),
	RunE:  runListsMove,
}

var (
	listsMoveGroup   string
	listsMoveUngroup bool
)

// daybook groups
var groupsCmd = &cobra.Command{
	Use:   "groups",
	Short: "Manage list groups",
	Args:  cobra.NoArgs,
	RunE:  runGroups,
}

var groupsJSON bool

var groupsAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Create a new list group",
	Args:  cobra.ExactArgs(1),
	RunE:  runGroupsAdd,
}

var (
	groupsAddEmoji         string
	groupsAddColor         string
	groupsAddOverrideIcons bool
)

var groupsEditCmd = &cobra.Command{
	Use:     "edit <group>",
	Short:   "Update a group",
	Aliases: []string{"update"},
	Args:    cobra.ExactArgs(1),
	RunE:    runGroupsEdit,
}

var (
	groupsEditName          string
	groupsEditEmoji         string
	groupsEditColor         string
	groupsEditOverrideIcons bool
)

var groupsRmCmd = &cobra.Command{
	Use:     "rm <group>",
	Short:   "Delete a group, reassigning its lists",
	Aliases: []string{"delete"},
	Args:    cobra.ExactArgs(1),
	RunE:    runGroupsRm,
}

var groupsRmInto string

var groupsReorderCmd = &cobra.Command{
	Use:   "reorder <group>...",
	Short: "Reorder groups",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runGroupsReorder,
}

var groupsToggleCmd = &cobra.Command{
	Use:   "toggle <group>",
	Short: "Collapse or expand a group",
	Args:  cobra.ExactArgs(1),
	RunE:  runGroupsToggle,
}

func init() {
	rootCmd.AddCommand(listsCmd, groupsCmd)
	listsCmd.AddCommand(listsAddCmd, listsEditCmd, listsRmCmd, listsReorderCmd, listsMoveCmd)
	groupsCmd.AddCommand(groupsAddCmd, groupsEditCmd, groupsRmCmd, groupsReorderCmd, groupsToggleCmd)

	listsCmd.Flags().BoolVar(&listsJSON, "json", false, "Output as JSON")
	listsAddCmd.Flags().StringVar(&listsAddEmoji, "emoji", "", "Display icon")
	listsAddCmd.Flags().StringVar(&listsAddColor, "color", "", "Hex color like #ff8800")
	listsAddCmd.Flags().StringVarP(&listsAddGroup, "group", "g", "", "Group to place the list in (id or name)")
	listsEditCmd.Flags().StringVar(&listsEditName, "name", "", "New name")
	listsEditCmd.Flags().StringVar(&listsEditEmoji, "emoji", "", "New display icon")
	listsEditCmd.Flags().StringVar(&listsEditColor, "color", "", "New hex color")
	listsReorderCmd.Flags().StringVarP(&listsReorderGroup, "group", "g", "", "Group scope (id or name; default ungrouped)")
	listsMoveCmd.Flags().StringVarP(&listsMoveGroup, "group", "g", "", "Destination group (id or name)")
	listsMoveCmd.Flags().BoolVar(&listsMoveUngroup, "ungroup", false, "Move the list out of any group")

	groupsCmd.Flags().BoolVar(&groupsJSON, "json", false, "Output as JSON")
	groupsAddCmd.Flags().StringVar(&groupsAddEmoji, "emoji", "", "Display icon")
	groupsAddCmd.Flags().StringVar(&groupsAddColor, "color", "", "Hex color like #ff8800")
	groupsAddCmd.Flags().BoolVar(&groupsAddOverrideIcons, "override-icons", false, "Member lists display the group's emoji")
	groupsEditCmd.Flags().StringVar(&groupsEditName, "name", "", "New name")
	groupsEditCmd.Flags().StringVar(&groupsEditEmoji, "emoji", "", "New display icon")
	groupsEditCmd.Flags().StringVar(&groupsEditColor, "color", "", "New hex color")
	groupsEditCmd.Flags().BoolVar(&groupsEditOverrideIcons, "override-icons", false, "Member lists display the group's emoji")
	groupsRmCmd.Flags().StringVar(&groupsRmInto, "into", "", "Group to reassign member lists to (default ungrouped)")
}

func runLists(cmd *cobra.Command, args []string) error {
	store, _, err := openStore()
	if err != nil {
		return err
	}

	if listsJSON {
		return encodeJSONToStdout(store.GroupedLists())
	}

	table := ui.NewTable([]string{"ID", "NAME", "GROUP", "TASKS"}, 0)
	for _, grouped := range store.GroupedLists() {
		groupName := "-"
		if grouped.Group != nil {
			groupName = grouped.Group.Name
			if grouped.Group.Collapsed {
				groupName += " (collapsed)"
			}
		}
		for _, list := range grouped.Lists {
			table.Row(list.ID, listLabelCell(&list), groupName, strconv.Itoa(store.TaskCountForList(list.ID)))
		}
	}
	// System lists live outside the grouped sidebar.
	for _, list := range store.Lists() {
		if list.IsSystem {
			table.Row(list.ID, list.Name, ui.Muted("system"), strconv.Itoa(store.TaskCountForList(list.ID)))
		}
	}
	fmt.Print(table.String())
	return nil
}

func listLabelCell(list *task.TaskList) string {
	label := list.Name
	if list.Emoji != "" {
		label = list.Emoji + " " + label
	}
	return label
}

func runListsAdd(cmd *cobra.Command, args []string) error {
	store, _, err := openStore()
	if err != nil {
		return err
	}

	opts := task.ListOptions{Emoji: listsAddEmoji, Color: listsAddColor}
	if listsAddGroup != "" {
		groupID, err := store.ResolveGroupID(listsAddGroup)
		if err != nil {
			return err
		}
		opts.GroupID = &groupID
	}

	created, err := store.AddList(args[0], opts)
	if err != nil {
		return err
	}
	fmt.Printf("Added list %s: %s\n", created.ID, created.Name)
	return nil
}

func runListsEdit(cmd *cobra.Command, args []string) error {
	store, _, err := openStore()
	if err != nil {
		return err
	}
	id, err := store.ResolveListID(args[0])
	if err != nil {
		return err
	}

	update := task.ListUpdate{}
	if cmd.Flags().Changed("name") {
		update.Name = &listsEditName
	}
	if cmd.Flags().Changed("emoji") {
		update.Emoji = &listsEditEmoji
	}
	if cmd.Flags().Changed("color") {
		update.Color = &listsEditColor
	}

	_, err = store.UpdateList(id, update)
	return err
}

func runListsRm(cmd *cobra.Command, args []string) error {
	store, _, err := openStore()
	if err != nil {
		return err
	}
	id, err := store.ResolveListID(args[0])
	if err != nil {
		return err
	}
	_, err = store.DeleteList(id)
	return err
}

func runListsReorder(cmd *cobra.Command, args []string) error {
	store, _, err := openStore()
	if err != nil {
		return err
	}

	var groupID *string
	if listsReorderGroup != "" {
		id, err := store.ResolveGroupID(listsReorderGroup)
		if err != nil {
			return err
		}
		groupID = &id
	}

	ids := make([]string, len(args))
	for i, ref := range args {
		if ids[i], err = store.ResolveListID(ref); err != nil {
			return err
		}
	}
	return store.ReorderLists(ids, groupID)
}

func runListsMove(cmd *cobra.Command, args []string) error {
	store, _, err := openStore()
	if err != nil {
		return err
	}
	id, err := store.ResolveListID(args[0])
	if err != nil {
		return err
	}

	var groupID *string
	switch {
	case listsMoveUngroup:
	case listsMoveGroup != "":
		target, err := store.ResolveGroupID(listsMoveGroup)
		if err != nil {
			return err
		}
		groupID = &target
	default:
		return fmt.Errorf("either --group or --ungroup is required")
	}
	return store.MoveListToGroup(id, groupID)
}

func runGroups(cmd *cobra.Command, args []string) error {
	store, _, err := openStore()
	if err != nil {
		return err
	}

	groups := store.Groups()
	if groupsJSON {
		return encodeJSONToStdout(groups)
	}

	table := ui.NewTable([]string{"ID", "NAME", "LISTS", "STATE"}, len(groups))
	for i := range groups {
		group := &groups[i]
		state := "open"
		if group.Collapsed {
			state = "collapsed"
		}
		table.Row(group.ID, group.Name, strconv.Itoa(len(store.ListsInGroup(&group.ID))), state)
	}
	if table.Len() == 0 {
		fmt.Println("No groups.")
		return nil
	}
	fmt.Print(table.String())
	return nil
}

func runGroupsAdd(cmd *cobra.Command, args []string) error {
	store, _, err := openStore()
	if err != nil {
		return err
	}
	created, err := store.AddGroup(args[0], task.GroupOptions{
		Emoji:             groupsAddEmoji,
		Color:             groupsAddColor,
		OverrideListIcons: groupsAddOverrideIcons,
	})
	if err != nil {
		return err
	}
	fmt.Printf("Added group %s: %s\n", created.ID, created.Name)
	return nil
}

func runGroupsEdit(cmd *cobra.Command, args []string) error {
	store, _, err := openStore()
	if err != nil {
		return err
	}
	id, err := store.ResolveGroupID(args[0])
	if err != nil {
		return err
	}

	update := task.GroupUpdate{}
	if cmd.Flags().Changed("name") {
		update.Name = &groupsEditName
	}
	if cmd.Flags().Changed("emoji") {
		update.Emoji = &groupsEditEmoji
	}
	if cmd.Flags().Changed("color") {
		update.Color = &groupsEditColor
	}
	if cmd.Flags().Changed("override-icons") {
		update.OverrideListIcons = &groupsEditOverrideIcons
	}

	_, err = store.UpdateGroup(id, update)
	return err
}

func runGroupsRm(cmd *cobra.Command, args []string) error {
	store, _, err := openStore()
	if err != nil {
		return err
	}
	id, err := store.ResolveGroupID(args[0])
	if err != nil {
		return err
	}

	var target *string
	if groupsRmInto != "" {
		into, err := store.ResolveGroupID(groupsRmInto)
		if err != nil {
			return err
		}
		target = &into
	}
	_, err = store.DeleteGroup(id, target)
	return err
}

func runGroupsReorder(cmd *cobra.Command, args []string) error {
	store, _, err := openStore()
	if err != nil {
		return err
	}
	ids := make([]string, len(args))
	for i, ref := range args {
		if ids[i], err = store.ResolveGroupID(ref); err != nil {
			return err
		}
	}
	return store.ReorderGroups(ids)
}

func runGroupsToggle(cmd *cobra.Command, args []string) error {
	store, _, err := openStore()
	if err != nil {
		return err
	}
	id, err := store.ResolveGroupID(args[0])
	if err != nil {
		return err
	}
	return store.ToggleGroupCollapsed(id)
}

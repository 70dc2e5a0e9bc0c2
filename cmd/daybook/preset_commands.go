package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"daybook/internal/ui"
)

// daybook presets
var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "Manage reminder time presets",
	Args:  cobra.NoArgs,
	RunE:  runPresets,
}

var presetsJSON bool

var presetsAddCmd = &cobra.Command{
	Use:   "add <label> <HH:MM>",
	Short: "Add a custom time preset",
	Args:  cobra.ExactArgs(2),
	RunE:  runPresetsAdd,
}

var presetsRmCmd = &cobra.Command{
	Use:     "rm <preset>",
	Short:   "Remove a preset (built-ins are disabled, not deleted)",
	Aliases: []string{"delete"},
	Args:    cobra.ExactArgs(1),
	RunE:    runPresetsRm,
}

var presetsRestoreCmd = &cobra.Command{
	Use:   "restore <preset>",
	Short: "Restore a disabled built-in preset",
	Args:  cobra.ExactArgs(1),
	RunE:  runPresetsRestore,
}

func init() {
	rootCmd.AddCommand(presetsCmd)
	presetsCmd.AddCommand(presetsAddCmd, presetsRmCmd, presetsRestoreCmd)

	presetsCmd.Flags().BoolVar(&presetsJSON, "json", false, "Output as JSON")
}

func runPresets(cmd *cobra.Command, args []string) error {
	store, _, err := openStore()
	if err != nil {
		return err
	}

	presets := store.AvailablePresets()
	if presetsJSON {
		return encodeJSONToStdout(presets)
	}

	table := ui.NewTable([]string{"ID", "LABEL", "TIME", "KIND"}, len(presets))
	for _, preset := range presets {
		kind := "built-in"
		if preset.IsCustom {
			kind = "custom"
		}
		table.Row(preset.ID, preset.Label, ui.FormatClock(preset.Hour, preset.Minute), kind)
	}
	fmt.Print(table.String())
	return nil
}

func runPresetsAdd(cmd *cobra.Command, args []string) error {
	store, _, err := openStore()
	if err != nil {
		return err
	}
	hour, minute, err := parseClock(args[1])
	if err != nil {
		return err
	}
	created, err := store.AddCustomTimePreset(args[0], hour, minute)
	if err != nil {
		return err
	}
	fmt.Printf("Added preset %s: %s at %s\n", created.ID, created.Label, ui.FormatClock(created.Hour, created.Minute))
	return nil
}

func runPresetsRm(cmd *cobra.Command, args []string) error {
	store, _, err := openStore()
	if err != nil {
		return err
	}

	ref := args[0]
	if preset, ok := matchPreset(store, ref); ok {
		ref = preset.ID
		if !preset.IsCustom {
			return store.RemoveBuiltInPreset(ref)
		}
	}
	return store.RemoveCustomTimePreset(ref)
}

func runPresetsRestore(cmd *cobra.Command, args []string) error {
	store, _, err := openStore()
	if err != nil {
		return err
	}
	return store.RestoreBuiltInPreset(args[0])
}

// Package main implements the daybook CLI tool.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"daybook/internal/ui"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Error("error: "+err.Error()))
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "daybook",
	Short:         "Daybook - a personal task manager",
	SilenceErrors: true,
	SilenceUsage:  true,
}

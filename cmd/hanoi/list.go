package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-hanoi/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all variants",
	Long:  `Shows every registered puzzle variant with its win rule.`,
	Args:  cobra.NoArgs,
	Run:   runList,
}

func runList(cmd *cobra.Command, _ []string) {
	out := cmd.OutOrStdout()
	variants := registry.List()

	if len(variants) == 0 {
		fmt.Fprintln(out, "No variants registered.")
		return
	}

	idWidth, titleWidth := len("ID"), len("Title")
	for _, v := range variants {
		idWidth = max(idWidth, len(v.ID))
		titleWidth = max(titleWidth, len(v.Title))
	}

	row := func(id, title, desc string) {
		fmt.Fprintf(out, "  %-*s  %-*s  %s\n", idWidth, id, titleWidth, title, desc)
	}
	row("ID", "Title", "Goal")
	for _, v := range variants {
		row(v.ID, v.Title, v.Description)
	}

	fmt.Fprintf(out, "\nRun 'hanoi play <id>' to start one.\n")
}

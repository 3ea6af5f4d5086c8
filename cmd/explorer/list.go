package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/space-explorer/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available modes",
	Long:  `Shows a list of all registered game modes.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	out := cmd.OutOrStdout()
	modes := registry.List()

	if len(modes) == 0 {
		fmt.Fprintln(out, "No modes available.")
		return
	}

	width := len("ID")
	for _, m := range modes {
		width = max(width, len(m.ID))
	}

	fmt.Fprintln(out, "Available modes:")
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  %-*s  %s\n", width, "ID", "Title")
	fmt.Fprintf(out, "  %-*s  %s\n", width, "--", "-----")
	for _, m := range modes {
		fmt.Fprintf(out, "  %-*s  %s\n", width, m.ID, m.Title)
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'explorer play <id>' to play a mode.")
}

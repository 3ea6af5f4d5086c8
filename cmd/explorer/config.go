package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/space-explorer/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config <mode>",
	Short: "Print the default configuration of a mode",
	Long: `Prints the embedded default YAML of a mode. Save it to
~/.space-explorer/configs/<mode>.yaml or ./configs/<mode>.yaml and edit it
to tune the game; files only need the keys they change.`,
	Args: cobra.ExactArgs(1),
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	data := config.GetDefaultYAML(args[0])
	if data == nil {
		return fmt.Errorf("unknown mode %q", args[0])
	}
	_, err := cmd.OutOrStdout().Write(data)
	return err
}

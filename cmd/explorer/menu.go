package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/space-explorer/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a mode interactively",
	Long: `Shows a menu of all modes. Quitting a game returns to the menu.

Controls:
  Up/Down    - Navigate
  Enter      - Select
  Q/Ctrl+C   - Quit`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(cmd *cobra.Command, args []string) error {
	cfg := runtimeConfig()
	for {
		result, err := tui.RunMenu(cfg)
		if err != nil {
			return err
		}
		if result.Quit {
			return nil
		}
		cfg = result.Config
		if err := playMode(result.GameID, cfg); err != nil {
			return err
		}
	}
}

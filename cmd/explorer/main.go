// explorer is a terminal space shooter built on a tick-driven arena
// simulation.
//
// Usage:
//
//	explorer list              - List available modes
//	explorer play <mode>       - Play a mode
//	explorer menu              - Pick a mode interactively
//	explorer sim <mode>        - Run a mode headless and stream its render events
//	explorer config <mode>     - Print the default config of a mode
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible runs
//	--log-file <path>   - Append logs to a file
//	--debug             - Enable debug logging
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/space-explorer/internal/games/explorer"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagLogFile string
	flagDebug   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "explorer",
	Short: "Space Explorer - a space shooter in your terminal",
	Long: `Space Explorer is a terminal space shooter. Fly the ship, shoot the
aliens and collect planets for extra lives.

Available commands:
  list     - Show all available modes
  play     - Play a specific mode directly
  menu     - Interactive mode picker
  sim      - Headless run that streams render events
  config   - Print a mode's default configuration

Examples:
  explorer list
  explorer play explorer
  explorer play classic --difficulty hard
  explorer sim explorer --ticks 600 --format json
  explorer config classic > ~/.space-explorer/configs/classic.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Append logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}

// openLogger builds the process logger. Without --log-file it writes to
// fallback; the returned func closes the log file.
func openLogger(fallback io.Writer) (*log.Logger, func(), error) {
	w, closeFn := fallback, func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w, closeFn = f, func() { _ = f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "explorer",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	explorer.SetLogger(logger)
	return logger, closeFn, nil
}

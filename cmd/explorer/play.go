package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/space-explorer/internal/config"
	"github.com/vovakirdan/space-explorer/internal/core"
	"github.com/vovakirdan/space-explorer/internal/games/explorer"
	"github.com/vovakirdan/space-explorer/internal/platform/tui"
	"github.com/vovakirdan/space-explorer/internal/registry"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play <mode>",
	Short: "Play a mode",
	Long: `Start playing the specified mode.

Controls:
  Arrows/WASD  - Move (classic: left/right only)
  Space/F      - Fire
  P/Esc        - Pause
  R            - Restart
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Two extra lives, starts at the lowest difficulty
  normal - Starts at 30% difficulty, progresses to max
  hard   - Two fewer lives, starts at 70% difficulty
  fixed  - No progression, stays at the config's initial level

Examples:
  explorer play explorer
  explorer play classic --difficulty hard
  explorer play explorer --config ./my-explorer.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func init() {
	for _, cmd := range []*cobra.Command{playCmd, menuCmd, simCmd} {
		cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom mode config YAML")
		cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	}
}

func runPlay(cmd *cobra.Command, args []string) error {
	return playMode(args[0], runtimeConfig())
}

// playMode runs one mode in the terminal UI.
func playMode(mode string, cfg core.RuntimeConfig) error {
	if err := checkDifficulty(); err != nil {
		return err
	}
	if !registry.Exists(mode) {
		return fmt.Errorf("unknown mode %q, run 'explorer list' to see available modes", mode)
	}

	logger, closeLog, err := openLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	explorer.SetConfigPath(flagConfig)
	explorer.SetDifficultyPreset(flagDifficulty)

	game, err := registry.Create(mode)
	if err != nil {
		return err
	}

	logger.Info("starting", "mode", mode, "seed", cfg.Seed, "fps", cfg.TickRate)
	return tui.Run(game, cfg, logger)
}

// runtimeConfig builds the runtime config from flags and the terminal size.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW, cfg.ScreenH = w, h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

func checkDifficulty() error {
	if flagDifficulty != "" && config.ParsePreset(flagDifficulty) == "" {
		return fmt.Errorf("unknown difficulty %q, expected easy, normal, hard or fixed", flagDifficulty)
	}
	return nil
}

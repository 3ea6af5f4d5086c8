package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/space-explorer/internal/arena"
	"github.com/vovakirdan/space-explorer/internal/config"
	"github.com/vovakirdan/space-explorer/internal/platform/headless"
)

var (
	flagTicks     int
	flagFormat    string
	flagOutput    string
	flagAutopilot bool
)

var simCmd = &cobra.Command{
	Use:   "sim <mode>",
	Short: "Run a mode headless and stream its render events",
	Long: `Runs the arena without a terminal UI and writes every render event
to stdout (or --output). The run stops after --ticks ticks, when the game
ends, or on Ctrl+C. Logs go to stderr unless --log-file is set.

Formats:
  text     - one line per event
  json     - one JSON frame per tick
  msgpack  - back-to-back msgpack frames

Examples:
  explorer sim explorer --ticks 600
  explorer sim classic --seed 42 --format json > run.jsonl
  explorer sim explorer --format msgpack --output run.bin`,
	Args: cobra.ExactArgs(1),
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagTicks, "ticks", 3600, "Maximum ticks to simulate (0 = until game over)")
	simCmd.Flags().StringVar(&flagFormat, "format", string(headless.FormatText), "Output format: text, json, msgpack")
	simCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "Write events to this file instead of stdout")
	simCmd.Flags().BoolVar(&flagAutopilot, "autopilot", true, "Drive the player with the built-in autopilot")
}

func runSim(cmd *cobra.Command, args []string) error {
	mode := args[0]
	if err := checkDifficulty(); err != nil {
		return err
	}
	format, err := headless.ParseFormat(flagFormat)
	if err != nil {
		return err
	}

	logger, closeLog, err := openLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := config.Load(mode, flagConfig)
	if err != nil {
		return err
	}
	config.ApplyPreset(&cfg, config.ParsePreset(flagDifficulty))

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	a, err := arena.New(cfg, seed, arena.WithLogger(logger.With("mode", mode)))
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	var file *os.File
	if flagOutput != "" {
		file, err = os.Create(flagOutput)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		out = file
	}
	w := bufio.NewWriter(out)

	sink, err := headless.NewSink(w, format)
	if err != nil {
		return errors.Join(err, finishOutput(w, file))
	}

	opts := headless.Options{
		Ticks:  flagTicks,
		Dt:     time.Second / time.Duration(max(flagFPS, 1)),
		Logger: logger,
	}
	if flagAutopilot {
		opts.Pilot = headless.Autopilot{}
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	logger.Info("simulating", "mode", mode, "seed", seed, "ticks", flagTicks, "format", format)
	_, runErr := headless.Run(ctx, a, sink, opts)
	if err := finishOutput(w, file); err != nil {
		return err
	}
	if errors.Is(runErr, context.Canceled) {
		return nil
	}
	return runErr
}

// finishOutput flushes buffered events and closes the output file, if any,
// reporting both failures.
func finishOutput(w *bufio.Writer, file *os.File) error {
	flushErr := w.Flush()
	if flushErr != nil {
		flushErr = fmt.Errorf("flush output: %w", flushErr)
	}
	if file == nil {
		return flushErr
	}
	if err := file.Close(); err != nil {
		return errors.Join(flushErr, fmt.Errorf("close output: %w", err))
	}
	return flushErr
}

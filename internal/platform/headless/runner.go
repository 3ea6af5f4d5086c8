package headless

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/space-explorer/internal/arena"
	"github.com/vovakirdan/space-explorer/internal/core"
)

// Pilot produces one intent per tick from the arena state.
type Pilot interface {
	Decide(a *arena.Arena) core.Intent
}

// Options configures a headless run.
type Options struct {
	Ticks  int           // Maximum ticks to simulate, 0 runs until the game ends
	Dt     time.Duration // Elapsed time reported to the arena per tick
	Pilot  Pilot         // Input source, nil runs without input
	Logger *log.Logger
}

// Summary reports the outcome of a run.
type Summary struct {
	Ticks     uint64 `json:"ticks"`
	Score     int    `json:"score"`
	Lives     int    `json:"lives"`
	Collected int    `json:"collected"`
	Wave      int    `json:"wave"`
	Status    string `json:"status"`
	Frames    int    `json:"frames"`
	Events    int    `json:"events"`
}

// Run advances a until it ends, the tick limit is reached or ctx is
// cancelled, writing every batch to sink.
func Run(ctx context.Context, a *arena.Arena, sink *Sink, opts Options) (Summary, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	if err := sink.Write(a.Tick(), a.Flush()); err != nil {
		return summarize(a, sink), err
	}

	for n := 0; opts.Ticks <= 0 || n < opts.Ticks; n++ {
		if err := ctx.Err(); err != nil {
			logger.Warn("run interrupted", "tick", a.Tick())
			return summarize(a, sink), err
		}

		var intents []core.Intent
		if opts.Pilot != nil {
			intents = append(intents, opts.Pilot.Decide(a))
		}

		batch := a.Advance(arena.TickInput{Intents: intents, Dt: opts.Dt})
		if err := sink.Write(a.Tick(), batch); err != nil {
			return summarize(a, sink), err
		}

		if a.Status() == arena.StatusEnded {
			break
		}
	}

	s := summarize(a, sink)
	logger.Info("run finished", "ticks", s.Ticks, "score", s.Score, "status", s.Status)
	return s, nil
}

func summarize(a *arena.Arena, sink *Sink) Summary {
	hud := a.HUD()
	return Summary{
		Ticks:     a.Tick(),
		Score:     hud.Score,
		Lives:     hud.Lives,
		Collected: hud.Collected,
		Wave:      hud.Wave,
		Status:    a.Status().String(),
		Frames:    sink.Frames(),
		Events:    sink.Events(),
	}
}

// Package explorer implements the space shooter modes on top of the arena
// simulation. Each mode is a registry.Game that drives one arena and keeps
// a Scene in sync with the render events it emits.
package explorer

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/space-explorer/internal/arena"
	"github.com/vovakirdan/space-explorer/internal/config"
	"github.com/vovakirdan/space-explorer/internal/core"
	"github.com/vovakirdan/space-explorer/internal/registry"
)

// Package-level settings applied on the next Reset.
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
	logger           = log.New(io.Discard)
)

// SetConfigPath sets a custom config file path for all modes.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names keep the
// config file's difficulty.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// SetLogger routes arena logs to l.
func SetLogger(l *log.Logger) {
	if l != nil {
		logger = l
	}
}

var titles = map[string]string{
	config.ModeExplorer: "Space Explorer",
	config.ModeClassic:  "Space Invaders Classic",
}

// Game runs one mode of the shooter.
type Game struct {
	mode  string
	arena *arena.Arena
	scene *Scene
}

// New creates a game for a mode.
func New(mode string) *Game {
	return &Game{mode: mode}
}

// ID returns the mode identifier.
func (g *Game) ID() string {
	return g.mode
}

// Title returns the display name for this mode.
func (g *Game) Title() string {
	return titles[g.mode]
}

// Reset loads the mode config and starts a new run seeded from cfg.
func (g *Game) Reset(cfg core.RuntimeConfig) error {
	ac, err := config.Load(g.mode, configPath)
	if err != nil {
		return err
	}
	config.ApplyPreset(&ac, difficultyPreset)

	a, err := arena.New(ac, cfg.Seed, arena.WithLogger(logger.With("mode", g.mode)))
	if err != nil {
		return fmt.Errorf("explorer: %s: %w", g.mode, err)
	}

	g.arena = a
	g.scene = NewScene(a.Bounds(), ac.Formation.Enabled())
	g.scene.Apply(a.Flush())
	return nil
}

// Step advances the arena by one tick.
func (g *Game) Step(intents []core.Intent, dt time.Duration) core.StepResult {
	if g.arena == nil {
		return core.StepResult{}
	}
	batch := g.arena.Advance(arena.TickInput{Intents: intents, Dt: dt})
	g.scene.Apply(batch)
	return core.StepResult{State: g.State(), Events: len(batch)}
}

// Render draws the scene.
func (g *Game) Render(dst *core.Screen) {
	if g.scene == nil {
		return
	}
	g.scene.Draw(dst)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.arena == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:     g.arena.Score(),
		Lives:     g.arena.Lives(),
		Collected: g.arena.Collected(),
		Wave:      g.arena.Wave(),
		GameOver:  g.arena.Status() == arena.StatusEnded,
		Paused:    g.arena.Status() == arena.StatusPaused,
	}
}

// Scene returns the render sink, nil before the first Reset.
func (g *Game) Scene() *Scene {
	return g.scene
}

func init() {
	for _, mode := range []string{config.ModeExplorer, config.ModeClassic} {
		registry.Register(mode, func() registry.Game {
			return New(mode)
		})
	}
}

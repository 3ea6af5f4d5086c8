package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/space-explorer/internal/core"
	"github.com/vovakirdan/space-explorer/internal/registry"
)

// Model is the Bubble Tea model that plays one mode.
// Key presses are queued as intents and drained on the next tick.
type Model struct {
	game     registry.Game
	screen   *core.Screen
	config   core.RuntimeConfig
	keys     KeyMap
	help     help.Model
	queue    *core.IntentQueue
	logger   *log.Logger
	state    core.GameState
	lastTick time.Time
	quitting bool
}

// NewModel creates a model for a game that has already been Reset.
func NewModel(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if logger == nil {
		logger = log.Default()
	}
	return Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, playRows(cfg.ScreenH)),
		config: cfg,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		queue:  core.NewIntentQueue(),
		logger: logger,
		state:  game.State(),
	}
}

// playRows leaves the last terminal row for the help line.
func playRows(h int) int {
	return max(h-1, 0)
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, playRows(msg.Height))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey queues the intent for a key press.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch action := m.keys.Action(msg); action {
	case core.ActionQuit:
		m.quitting = true
		m.logger.Debug("quit requested", "game", m.game.ID(), "score", m.state.Score)
		return m, tea.Quit
	case core.ActionNone, core.ActionConfirm:
	default:
		m.queue.PushAction(action)
	}
	return m, nil
}

// handleTick steps the game with the intents queued since the last tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	var dt time.Duration
	if !m.lastTick.IsZero() {
		dt = now.Sub(m.lastTick)
	}
	m.lastTick = now

	prev := m.state
	result := m.game.Step(m.queue.Drain(), dt)
	m.state = result.State

	if m.state.GameOver && !prev.GameOver {
		m.logger.Info("game over", "game", m.game.ID(), "score", m.state.Score, "collected", m.state.Collected)
	}

	return m, tickCmd(m.config.TickRate)
}

// View renders the current frame and the help line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// State returns the last observed game state.
func (m Model) State() core.GameState {
	return m.state
}

// Run resets the game and plays it until the user quits.
func Run(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if err := game.Reset(cfg); err != nil {
		return err
	}

	p := tea.NewProgram(NewModel(game, cfg, logger), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

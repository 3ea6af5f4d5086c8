// Package arena implements the arena simulation loop: it owns every live
// entity, advances them once per tick, resolves proximity collisions and
// reports each change as render events for an external renderer.
//
// An Arena is single-writer and not safe for concurrent use. Input sources
// should queue intents in a core.IntentQueue and hand the drained slice to
// Advance from the goroutine that drives the ticks.
package arena

import (
	"fmt"
	"io"
	"iter"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/space-explorer/internal/config"
	"github.com/vovakirdan/space-explorer/internal/core"
)

// TickInput is everything the loop consumes for one tick.
type TickInput struct {
	Intents []core.Intent // Intents queued since the previous tick
	Dt      time.Duration // Elapsed time, used only in delta timing mode
}

// Option configures an Arena.
type Option func(*Arena)

// WithLogger routes arena state transitions to l.
func WithLogger(l *log.Logger) Option {
	return func(a *Arena) {
		if l != nil {
			a.logger = l
		}
	}
}

// Arena owns the simulation state of one run.
type Arena struct {
	cfg    config.ArenaConfig
	bounds core.Bounds
	diff   *config.DifficultyManager
	logger *log.Logger
	seed   int64
	rng    *rand.Rand

	entities []Entity
	nextID   EntityID

	score     int
	lives     int
	collected int
	wave      int
	tick      uint64
	status    Status
	reported  Status // Last status sent to the renderer

	pending Batch
}

// New validates cfg and creates an arena in its initial running state.
// The initial entities are reported by the first Flush or Advance.
func New(cfg config.ArenaConfig, seed int64, opts ...Option) (*Arena, error) {
	if err := config.Validate(cfg); err != nil {
		return nil, fmt.Errorf("arena: invalid config: %w", err)
	}

	a := &Arena{
		cfg:    cfg,
		bounds: core.Bounds{W: cfg.Arena.Width, H: cfg.Arena.Height},
		diff:   config.NewDifficultyManager(cfg.Difficulty),
		logger: log.New(io.Discard),
		seed:   seed,
	}
	for _, opt := range opts {
		opt(a)
	}

	a.Reset()
	return a, nil
}

// Reset clears every entity and counter back to the initial values and
// reseeds the RNG, so two consecutive resets leave identical state.
func (a *Arena) Reset() {
	for _, e := range a.entities {
		a.emit(RenderEvent{Kind: EventDestroyed, EntityID: e.ID, Category: e.Category, Pos: e.Pos})
	}
	a.entities = a.entities[:0]
	a.nextID = 0
	a.rng = rand.New(rand.NewSource(a.seed))

	a.score = 0
	a.lives = a.cfg.Gameplay.Lives
	a.collected = 0
	a.wave = 1
	a.tick = 0
	a.status = StatusRunning

	a.spawnPlayer()
	if a.cfg.Formation.Enabled() {
		a.spawnFormation()
	}

	a.emitHUD()
	a.emitStatus()
	a.logger.Debug("arena reset", "seed", a.seed, "lives", a.lives, "entities", len(a.entities))
}

// Pause stops the simulation. It is a no-op unless the arena is running.
func (a *Arena) Pause() {
	if a.status == StatusRunning {
		a.status = StatusPaused
		a.logger.Debug("arena paused", "tick", a.tick)
	}
}

// Resume restarts a paused simulation. It is a no-op unless paused.
func (a *Arena) Resume() {
	if a.status == StatusPaused {
		a.status = StatusRunning
		a.logger.Debug("arena resumed", "tick", a.tick)
	}
}

// Spawn adds an entity outside the regular spawn rules.
// Invalid specs are rejected and leave the arena unchanged.
func (a *Arena) Spawn(s Spec) (EntityID, error) {
	return a.add(s)
}

// Flush returns the events emitted since the last Advance or Flush,
// such as the initial entities after New or Reset.
func (a *Arena) Flush() Batch {
	out := a.pending
	a.pending = nil
	return out
}

// Advance runs one tick and returns the resulting render events.
// While paused or ended it only reports the status.
func (a *Arena) Advance(in TickInput) Batch {
	intent := core.Combine(in.Intents...)

	if intent.Restart {
		a.Reset()
	}
	if intent.PauseToggle {
		switch a.status {
		case StatusRunning:
			a.Pause()
		case StatusPaused:
			a.Resume()
		}
	}
	if a.status != StatusRunning {
		a.emitStatus()
		return a.Flush()
	}

	a.tick++
	scale := a.scale(in.Dt)
	before := a.HUD()
	for i := range a.entities {
		a.entities[i].prev = a.entities[i].Pos
	}

	// Player intent first, then every other entity through its category rule.
	shot := a.updatePlayer(intent, scale)
	var fired []Spec
	for i, n := 0, len(a.entities); i < n; i++ {
		e := &a.entities[i]
		if s := updaters[e.Category](a, e, scale); s != nil {
			fired = append(fired, *s)
		}
	}
	if shot != nil {
		fired = append(fired, *shot)
	}
	for _, s := range fired {
		a.mustAdd(s)
	}

	a.spawnRandom()
	a.resolveCollisions()
	a.pruneOutOfBounds()
	a.compact()
	a.emitMoves()
	a.refillFormation()

	if a.HUD() != before {
		a.emitHUD()
	}
	if a.lives <= 0 {
		a.status = StatusEnded
		a.logger.Info("game over", "score", a.score, "collected", a.collected, "tick", a.tick)
	}
	if a.status != a.reported {
		a.emitStatus()
	}
	return a.Flush()
}

// scale converts elapsed time to base ticks according to the timing mode.
func (a *Arena) scale(dt time.Duration) float64 {
	if a.cfg.Timing.Mode != config.TimingDelta {
		return 1
	}
	s := dt.Seconds() * float64(a.cfg.Timing.BaseRate)
	return core.ClampF(s, 0, a.cfg.Timing.MaxScale)
}

// add validates a spec, assigns the next id and reports the creation.
func (a *Arena) add(s Spec) (EntityID, error) {
	if s.Category == CategoryPlayer && a.playerIndex() >= 0 {
		return 0, fmt.Errorf("arena: spawn: %w", ErrDuplicatePlayer)
	}
	e, err := NewEntity(a.nextID+1, s)
	if err != nil {
		return 0, err
	}
	a.nextID = e.ID
	a.entities = append(a.entities, e)
	a.emit(RenderEvent{
		Kind:     EventCreated,
		EntityID: e.ID,
		Category: e.Category,
		Pos:      e.Pos,
		Radius:   e.Radius,
		Visual:   e.Visual,
	})
	return e.ID, nil
}

// mustAdd is add for specs built from a validated config.
func (a *Arena) mustAdd(s Spec) {
	if _, err := a.add(s); err != nil {
		a.logger.Error("spawn rejected", "category", s.Category, "error", err)
	}
}

// destroy marks an entity consumed and reports it.
func (a *Arena) destroy(e *Entity) {
	e.dead = true
	a.emit(RenderEvent{Kind: EventDestroyed, EntityID: e.ID, Category: e.Category, Pos: e.Pos})
}

// compact drops consumed entities, keeping iteration order.
func (a *Arena) compact() {
	alive := a.entities[:0]
	for _, e := range a.entities {
		if !e.dead {
			alive = append(alive, e)
		}
	}
	clear(a.entities[len(alive):])
	a.entities = alive
}

func (a *Arena) emitMoves() {
	for _, e := range a.entities {
		if e.Pos != e.prev {
			a.emit(RenderEvent{Kind: EventMoved, EntityID: e.ID, Category: e.Category, Pos: e.Pos})
		}
	}
}

func (a *Arena) emitHUD() {
	a.emit(RenderEvent{Kind: EventHUD, HUD: a.HUD()})
}

func (a *Arena) emitStatus() {
	a.reported = a.status
	a.emit(RenderEvent{Kind: EventStatus, Status: a.status})
}

func (a *Arena) emitEffect(kind EffectKind, amount int, cause EntityID) {
	a.emit(RenderEvent{Kind: EventEffect, Effect: Effect{Kind: kind, Amount: amount, Cause: cause}})
}

func (a *Arena) emit(ev RenderEvent) {
	ev.Tick = a.tick
	a.pending = append(a.pending, ev)
}

func (a *Arena) playerIndex() int {
	for i := range a.entities {
		if a.entities[i].Category == CategoryPlayer {
			return i
		}
	}
	return -1
}

func (a *Arena) count(c Category, o Owner) int {
	n := 0
	for _, e := range a.entities {
		if e.Category == c && e.Owner == o && !e.dead {
			n++
		}
	}
	return n
}

// HUD returns the current UI counters.
func (a *Arena) HUD() HUD {
	return HUD{Score: a.score, Lives: a.lives, Collected: a.collected, Wave: a.wave}
}

// Score returns the current score.
func (a *Arena) Score() int { return a.score }

// Lives returns the remaining lives.
func (a *Arena) Lives() int { return a.lives }

// Collected returns the number of collectibles picked up.
func (a *Arena) Collected() int { return a.collected }

// Wave returns the current formation wave, starting at 1.
func (a *Arena) Wave() int { return a.wave }

// Tick returns the number of simulated ticks since the last reset.
func (a *Arena) Tick() uint64 { return a.tick }

// Status returns the run state.
func (a *Arena) Status() Status { return a.status }

// Bounds returns the arena rectangle.
func (a *Arena) Bounds() core.Bounds { return a.bounds }

// Len returns the number of live entities.
func (a *Arena) Len() int { return len(a.entities) }

// Entities yields a copy of every live entity in iteration order.
func (a *Arena) Entities() iter.Seq[Entity] {
	return func(yield func(Entity) bool) {
		for _, e := range a.entities {
			if !yield(e) {
				return
			}
		}
	}
}

// Entity looks up a live entity by id.
func (a *Arena) Entity(id EntityID) (Entity, bool) {
	for _, e := range a.entities {
		if e.ID == id {
			return e, true
		}
	}
	return Entity{}, false
}

// Player returns the player entity.
func (a *Arena) Player() (Entity, bool) {
	if i := a.playerIndex(); i >= 0 {
		return a.entities[i], true
	}
	return Entity{}, false
}

package arena

import (
	"iter"

	"github.com/vovakirdan/space-explorer/internal/core"
)

// Status is the arena's run state.
type Status uint8

const (
	StatusRunning Status = iota
	StatusPaused
	StatusEnded
)

// String returns the lowercase status name.
func (s Status) String() string {
	switch s {
	case StatusRunning:
		return "running"
	case StatusPaused:
		return "paused"
	case StatusEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// EventKind selects which fields of a RenderEvent are meaningful.
type EventKind uint8

const (
	EventCreated   EventKind = iota + 1 // EntityID, Pos, Radius, Category, Visual
	EventMoved                          // EntityID, Pos
	EventDestroyed                      // EntityID, Pos
	EventHUD                            // HUD
	EventStatus                         // Status
	EventEffect                         // Effect
)

// String returns the lowercase kind name.
func (k EventKind) String() string {
	switch k {
	case EventCreated:
		return "created"
	case EventMoved:
		return "moved"
	case EventDestroyed:
		return "destroyed"
	case EventHUD:
		return "hud"
	case EventStatus:
		return "status"
	case EventEffect:
		return "effect"
	default:
		return "unknown"
	}
}

// EffectKind names a game-state change caused by a collision or rule.
type EffectKind uint8

const (
	EffectScore       EffectKind = iota + 1 // score += Amount
	EffectLifeLost                          // lives -= 1
	EffectLifeGained                        // lives += 1
	EffectCollected                         // collected += 1
	EffectWaveCleared                       // new formation wave, Amount = wave number
)

// String returns the lowercase effect name.
func (k EffectKind) String() string {
	switch k {
	case EffectScore:
		return "score"
	case EffectLifeLost:
		return "life-lost"
	case EffectLifeGained:
		return "life-gained"
	case EffectCollected:
		return "collected"
	case EffectWaveCleared:
		return "wave-cleared"
	default:
		return "unknown"
	}
}

// Effect describes one applied game-state change.
type Effect struct {
	Kind   EffectKind
	Amount int
	Cause  EntityID // Entity whose collision triggered the effect, 0 for rules
}

// HUD carries the counters shown as UI text.
type HUD struct {
	Score     int
	Lives     int
	Collected int
	Wave      int
}

// RenderEvent is one instruction for an external renderer.
type RenderEvent struct {
	Kind     EventKind
	Tick     uint64
	EntityID EntityID
	Category Category
	Pos      core.Vec2
	Radius   float64
	Visual   string
	HUD      HUD
	Status   Status
	Effect   Effect
}

// Batch is the ordered list of render events produced by one call.
// Its iterators are lazy and may be ranged over any number of times.
type Batch []RenderEvent

// All yields every event in order.
func (b Batch) All() iter.Seq[RenderEvent] {
	return func(yield func(RenderEvent) bool) {
		for _, ev := range b {
			if !yield(ev) {
				return
			}
		}
	}
}

// Of yields events of one kind.
func (b Batch) Of(kind EventKind) iter.Seq[RenderEvent] {
	return func(yield func(RenderEvent) bool) {
		for _, ev := range b {
			if ev.Kind == kind && !yield(ev) {
				return
			}
		}
	}
}

// Effects yields the effects applied in this batch.
func (b Batch) Effects() iter.Seq[Effect] {
	return func(yield func(Effect) bool) {
		for _, ev := range b {
			if ev.Kind == EventEffect && !yield(ev.Effect) {
				return
			}
		}
	}
}

// Count returns the number of events of a kind.
func (b Batch) Count(kind EventKind) int {
	n := 0
	for range b.Of(kind) {
		n++
	}
	return n
}

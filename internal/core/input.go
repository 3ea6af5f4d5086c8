package core

import "sync"

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // A, Left arrow
	ActionRight          // D, Right arrow
	ActionUp             // W, Up arrow
	ActionDown           // S, Down arrow
	ActionFire           // Space
	ActionPause          // P, Escape
	ActionRestart        // R
	ActionQuit           // Q, Ctrl+C
	ActionConfirm        // Enter (menus)
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionFire:
		return "Fire"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionConfirm:
		return "Confirm"
	default:
		return "Unknown"
	}
}

// Move holds the discrete movement directions of an intent.
type Move struct {
	Left, Right, Up, Down bool
}

// Intent is one discrete input sample produced by an input source.
// Several intents collected between two ticks combine into one.
type Intent struct {
	Move        Move
	Fire        bool
	PauseToggle bool
	Restart     bool
}

// IntentFor returns the intent carried by a single action.
func IntentFor(a Action) Intent {
	var in Intent
	switch a {
	case ActionLeft:
		in.Move.Left = true
	case ActionRight:
		in.Move.Right = true
	case ActionUp:
		in.Move.Up = true
	case ActionDown:
		in.Move.Down = true
	case ActionFire:
		in.Fire = true
	case ActionPause:
		in.PauseToggle = true
	case ActionRestart:
		in.Restart = true
	}
	return in
}

// Combine merges intents into one. Directions, fire and restart accumulate;
// pause toggles cancel out in pairs.
func Combine(intents ...Intent) Intent {
	var out Intent
	for _, in := range intents {
		out.Move.Left = out.Move.Left || in.Move.Left
		out.Move.Right = out.Move.Right || in.Move.Right
		out.Move.Up = out.Move.Up || in.Move.Up
		out.Move.Down = out.Move.Down || in.Move.Down
		out.Fire = out.Fire || in.Fire
		out.Restart = out.Restart || in.Restart
		out.PauseToggle = out.PauseToggle != in.PauseToggle
	}
	return out
}

// Direction returns the movement as a (dx, dy) step with y growing downward.
// Opposite directions cancel.
func (m Move) Direction() Vec2 {
	var d Vec2
	if m.Left {
		d.X--
	}
	if m.Right {
		d.X++
	}
	if m.Up {
		d.Y--
	}
	if m.Down {
		d.Y++
	}
	return d
}

// IntentQueue buffers intents between ticks.
// Input sources may Push from any goroutine; the tick driver Drains.
type IntentQueue struct {
	mu      sync.Mutex
	pending []Intent
}

// NewIntentQueue creates an empty queue.
func NewIntentQueue() *IntentQueue {
	return &IntentQueue{pending: make([]Intent, 0, 8)}
}

// Push appends an intent for the next tick.
func (q *IntentQueue) Push(in Intent) {
	q.mu.Lock()
	q.pending = append(q.pending, in)
	q.mu.Unlock()
}

// PushAction is a convenience wrapper around Push(IntentFor(a)).
func (q *IntentQueue) PushAction(a Action) {
	if a == ActionNone {
		return
	}
	q.Push(IntentFor(a))
}

// Drain removes and returns everything queued so far, in arrival order.
func (q *IntentQueue) Drain() []Intent {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.pending) == 0 {
		return nil
	}
	out := q.pending
	q.pending = make([]Intent, 0, cap(out))
	return out
}

// Len returns the number of queued intents.
func (q *IntentQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

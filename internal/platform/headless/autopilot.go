package headless

import (
	"math"

	"github.com/vovakirdan/space-explorer/internal/arena"
	"github.com/vovakirdan/space-explorer/internal/core"
)

// Autopilot tuning, in arena units.
const (
	dodgeRange = 140.0 // Threats closer than this are avoided
	alignSlack = 8.0   // Horizontal distance treated as aligned
)

// Autopilot is a deterministic input source for unattended runs. It dodges
// nearby threats, chases collectibles and otherwise lines up under the
// closest hostile, firing every tick.
type Autopilot struct{}

// Decide returns the intent for the arena's current state.
func (Autopilot) Decide(a *arena.Arena) core.Intent {
	player, ok := a.Player()
	if !ok {
		return core.Intent{}
	}

	in := core.Intent{Fire: true}

	var threat, pickup, target *arena.Entity
	var threatD, pickupD, targetD float64
	for e := range a.Entities() {
		d := e.Pos.Sub(player.Pos).Len() - e.Radius - player.Radius
		switch {
		case e.Category == arena.CategoryHostile || (e.Category == arena.CategoryProjectile && e.Owner == arena.OwnerHostile):
			if d < dodgeRange && (threat == nil || d < threatD) {
				threat, threatD = &e, d
			}
			if e.Category == arena.CategoryHostile && (target == nil || d < targetD) {
				target, targetD = &e, d
			}
		case e.Category == arena.CategoryCollectible:
			if pickup == nil || d < pickupD {
				pickup, pickupD = &e, d
			}
		}
	}

	switch {
	case threat != nil:
		steerAway(&in.Move, player.Pos, threat.Pos, a.Bounds())
	case pickup != nil:
		steerTo(&in.Move, player.Pos, pickup.Pos)
	case target != nil:
		steerTo(&in.Move, player.Pos, core.V(target.Pos.X, player.Pos.Y))
	}

	// Explorer ships shoot along their facing, so face the target first.
	if target != nil && math.Abs(target.Pos.X-player.Pos.X) <= alignSlack && threat == nil {
		in.Move.Up = true
	}
	return in
}

func steerTo(m *core.Move, from, to core.Vec2) {
	d := to.Sub(from)
	m.Left = d.X < -alignSlack
	m.Right = d.X > alignSlack
	m.Up = d.Y < -alignSlack
	m.Down = d.Y > alignSlack
}

// steerAway moves horizontally away from a threat, toward the wider side
// when it is directly above.
func steerAway(m *core.Move, from, threat core.Vec2, b core.Bounds) {
	dx := from.X - threat.X
	if math.Abs(dx) < alignSlack {
		dx = b.W/2 - from.X
	}
	m.Left = dx < 0
	m.Right = dx >= 0
	m.Down = threat.Y < from.Y
}

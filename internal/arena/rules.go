package arena

import (
	"math"

	"github.com/vovakirdan/space-explorer/internal/config"
	"github.com/vovakirdan/space-explorer/internal/core"
)

// updateFunc advances one entity by scale base ticks. A non-nil result is
// a projectile to spawn once every entity has been updated.
type updateFunc func(a *Arena, e *Entity, scale float64) *Spec

// updaters is the per-category rule table.
var updaters = [...]updateFunc{
	CategoryPlayer:      func(*Arena, *Entity, float64) *Spec { return nil }, // driven by intents
	CategoryHostile:     updateHostile,
	CategoryProjectile:  drift,
	CategoryCollectible: drift,
}

// drift moves an entity along its velocity.
func drift(_ *Arena, e *Entity, scale float64) *Spec {
	e.Pos = e.Pos.Add(e.Vel.Scale(scale))
	return nil
}

// updateHostile moves a hostile, reverses it at the side bounds and fires
// once its cooldown elapses.
func updateHostile(a *Arena, e *Entity, scale float64) *Spec {
	e.Pos = e.Pos.Add(e.Vel.Scale(scale))

	if (e.Pos.X-e.Radius <= 0 && e.Vel.X < 0) || (e.Pos.X+e.Radius >= a.bounds.W && e.Vel.X > 0) {
		e.Vel.X = -e.Vel.X
		e.Pos.X = core.ClampF(e.Pos.X, e.Radius, a.bounds.W-e.Radius)
		e.Pos.Y += a.cfg.Hostile.Drop
	}

	if a.cfg.Hostile.FireMax <= 0 {
		return nil
	}
	e.Cooldown -= scale
	if e.Cooldown > 0 {
		return nil
	}
	e.Cooldown = a.fireInterval()

	pc := a.cfg.Projectile
	return &Spec{
		Category: CategoryProjectile,
		Owner:    OwnerHostile,
		Pos:      e.Pos.Add(core.V(0, e.Radius)),
		Vel:      core.V(0, pc.HostileSpeed),
		Radius:   pc.HostileRadius,
	}
}

// updatePlayer applies the tick's intent to the player and returns the
// projectile to fire, if any.
func (a *Arena) updatePlayer(in core.Intent, scale float64) *Spec {
	i := a.playerIndex()
	if i < 0 {
		return nil
	}
	p := &a.entities[i]
	pc := a.cfg.Player

	dir := in.Move.Direction()
	if !pc.Vertical {
		dir.Y = 0
	}
	if !dir.IsZero() {
		p.Facing = dir.Normalize()
	}
	p.Vel = dir.Scale(pc.Speed)
	p.Pos = a.bounds.ClampCircle(p.Pos.Add(p.Vel.Scale(scale)), p.Radius)
	p.Cooldown = math.Max(0, p.Cooldown-scale)

	if !in.Fire || p.Cooldown > 0 {
		return nil
	}
	if limit := pc.MaxProjectiles; limit > 0 && a.count(CategoryProjectile, OwnerPlayer) >= limit {
		return nil
	}
	p.Cooldown = pc.FireCooldown

	aim := core.V(0, -1)
	if pc.Aim == config.AimFacing {
		aim = p.Facing
	}
	return &Spec{
		Category: CategoryProjectile,
		Owner:    OwnerPlayer,
		Pos:      p.Pos.Add(aim.Scale(p.Radius)),
		Vel:      aim.Scale(a.cfg.Projectile.PlayerSpeed),
		Radius:   a.cfg.Projectile.PlayerRadius,
	}
}

// spawnPlayer places the player at its configured start.
func (a *Arena) spawnPlayer() {
	pc := a.cfg.Player
	pos := core.V(pc.StartX, pc.StartY)
	if pos.X == 0 {
		pos.X = a.bounds.W / 2
	}
	if pos.Y == 0 {
		pos.Y = a.bounds.H / 2
	}
	a.mustAdd(Spec{
		Category: CategoryPlayer,
		Pos:      a.bounds.ClampCircle(pos, pc.Radius),
		Radius:   pc.Radius,
	})
}

// spawnRandom runs the per-tick spawn draws. Hostiles and collectibles
// enter just above the top edge at a random horizontal position.
func (a *Arena) spawnRandom() {
	hc := a.cfg.Hostile
	if p := a.diff.SpawnChance(hc.SpawnChance, a.score, a.tick); p > 0 && a.rng.Float64() < p {
		x := a.uniform(hc.Radius, a.bounds.W-hc.Radius)
		a.spawnHostile(core.V(x, -hc.Radius))
	}

	cc := a.cfg.Collectible
	if p := a.diff.SpawnChance(cc.SpawnChance, a.score, a.tick); p > 0 && a.rng.Float64() < p {
		r := a.uniform(cc.MinRadius, cc.MaxRadius)
		a.mustAdd(Spec{
			Category: CategoryCollectible,
			Pos:      core.V(a.uniform(r, a.bounds.W-r), -r),
			Vel:      core.V(0, a.uniform(cc.MinSpeed, cc.MaxSpeed)),
			Radius:   r,
		})
	}
}

// spawnHostile adds a hostile heading left or right at random.
func (a *Arena) spawnHostile(pos core.Vec2) {
	hc := a.cfg.Hostile
	vx := a.diff.Speed(hc.SpeedX, a.score, a.tick)
	if a.rng.Intn(2) == 0 {
		vx = -vx
	}
	a.mustAdd(Spec{
		Category: CategoryHostile,
		Pos:      pos,
		Vel:      core.V(vx, hc.SpeedY),
		Radius:   hc.Radius,
		Cooldown: a.fireInterval(),
	})
}

// spawnFormation lays out the configured hostile grid.
func (a *Arena) spawnFormation() {
	f := a.cfg.Formation
	for row := range f.Rows {
		for col := range f.Cols {
			a.spawnHostile(core.V(
				f.OriginX+float64(col)*f.SpacingX,
				f.OriginY+float64(row)*f.SpacingY,
			))
		}
	}
}

// refillFormation starts the next wave once every hostile is gone.
func (a *Arena) refillFormation() {
	f := a.cfg.Formation
	if !f.Enabled() || !f.Refill {
		return
	}
	for _, e := range a.entities {
		if e.Category == CategoryHostile {
			return
		}
	}
	a.wave++
	a.emitEffect(EffectWaveCleared, a.wave, 0)
	a.spawnFormation()
	a.logger.Debug("wave cleared", "wave", a.wave, "score", a.score)
}

// fireInterval draws the ticks until a hostile's next shot.
func (a *Arena) fireInterval() float64 {
	hc := a.cfg.Hostile
	if hc.FireMax <= 0 {
		return 0
	}
	return a.uniform(hc.FireMin, hc.FireMax)
}

func (a *Arena) uniform(lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + a.rng.Float64()*(hi-lo)
}

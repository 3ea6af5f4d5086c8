package arena

// resolveCollisions applies every collision rule for the tick. Entities
// consumed earlier in the pass, or already outside the arena, take no part.
// Once the player runs out of lives no further contact is applied, so the
// run ends on this tick.
func (a *Arena) resolveCollisions() {
	// Player projectiles against hostiles. The first hostile in iteration
	// order wins when one shot overlaps several.
	for i := range a.entities {
		shot := &a.entities[i]
		if shot.Category != CategoryProjectile || shot.Owner != OwnerPlayer || !a.active(shot) {
			continue
		}
		for j := range a.entities {
			h := &a.entities[j]
			if h.Category != CategoryHostile || !a.active(h) || !Collides(*shot, *h) {
				continue
			}
			a.destroy(shot)
			a.destroy(h)
			a.addScore(a.cfg.Gameplay.HostileScore, h.ID)
			break
		}
	}

	pi := a.playerIndex()
	if pi < 0 {
		return
	}
	player := a.entities[pi]

	for i := range a.entities {
		if a.lives <= 0 {
			return
		}
		e := &a.entities[i]
		if e.Category == CategoryPlayer || !a.active(e) || !Collides(*e, player) {
			continue
		}
		switch {
		case e.Category == CategoryHostile:
			a.destroy(e)
			a.loseLife(e.ID)
		case e.Category == CategoryProjectile && e.Owner == OwnerHostile:
			a.destroy(e)
			a.loseLife(e.ID)
		case e.Category == CategoryCollectible:
			a.destroy(e)
			a.collect(e.ID)
		}
	}
}

// pruneOutOfBounds removes every non-player entity that has left the arena.
func (a *Arena) pruneOutOfBounds() {
	for i := range a.entities {
		e := &a.entities[i]
		if e.dead || e.Category == CategoryPlayer {
			continue
		}
		if a.outside(e) {
			a.destroy(e)
		}
	}
}

// outside reports whether e has left the arena. A projectile is out when
// its center was outside at the start of the tick or is outside now.
// Other entities only leave once the whole circle is out, so spawns just
// above the top edge can drift in.
func (a *Arena) outside(e *Entity) bool {
	if e.Category == CategoryProjectile {
		return !a.bounds.Contains(e.prev) || !a.bounds.Contains(e.Pos)
	}
	return a.bounds.Outside(e.Pos, e.Radius)
}

func (a *Arena) active(e *Entity) bool {
	return !e.dead && !a.outside(e)
}

func (a *Arena) addScore(n int, cause EntityID) {
	if n <= 0 {
		return
	}
	a.score += n
	a.emitEffect(EffectScore, n, cause)
}

// loseLife decrements lives, never below zero.
func (a *Arena) loseLife(cause EntityID) {
	if a.lives <= 0 {
		return
	}
	a.lives--
	a.emitEffect(EffectLifeLost, 1, cause)
	a.logger.Debug("life lost", "lives", a.lives, "cause", cause, "tick", a.tick)
}

// collect counts a pickup and grants a bonus life on every LifeEvery-th one.
func (a *Arena) collect(cause EntityID) {
	a.collected++
	a.emitEffect(EffectCollected, 1, cause)
	a.addScore(a.cfg.Gameplay.CollectibleScore, cause)

	if every := a.cfg.Gameplay.LifeEvery; every > 0 && a.collected%every == 0 {
		a.lives++
		a.emitEffect(EffectLifeGained, 1, cause)
		a.logger.Debug("life gained", "lives", a.lives, "collected", a.collected)
	}
}

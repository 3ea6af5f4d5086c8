package arena

import (
	"errors"
	"fmt"
	"math"

	"github.com/vovakirdan/space-explorer/internal/core"
)

// EntityID identifies an entity within one simulation run.
type EntityID uint64

// Category tags the variant of an entity and selects its update rule.
type Category uint8

const (
	CategoryPlayer Category = iota + 1
	CategoryHostile
	CategoryProjectile
	CategoryCollectible
)

// String returns the lowercase category name.
func (c Category) String() string {
	switch c {
	case CategoryPlayer:
		return "player"
	case CategoryHostile:
		return "hostile"
	case CategoryProjectile:
		return "projectile"
	case CategoryCollectible:
		return "collectible"
	default:
		return "unknown"
	}
}

func (c Category) valid() bool {
	return c >= CategoryPlayer && c <= CategoryCollectible
}

// Owner records which side fired a projectile.
type Owner uint8

const (
	OwnerNone Owner = iota
	OwnerPlayer
	OwnerHostile
)

// String returns the lowercase owner name.
func (o Owner) String() string {
	switch o {
	case OwnerPlayer:
		return "player"
	case OwnerHostile:
		return "hostile"
	default:
		return "none"
	}
}

// Visual tags understood by the bundled renderers.
const (
	VisualPlayer      = "player"
	VisualHostile     = "hostile"
	VisualCollectible = "collectible"
	VisualPlayerShot  = "player-shot"
	VisualHostileShot = "hostile-shot"
)

// Construction errors.
var (
	ErrInvalidCategory = errors.New("invalid category")
	ErrInvalidRadius   = errors.New("radius must be positive and finite")
	ErrInvalidCooldown = errors.New("cooldown must not be negative")
	ErrMissingOwner    = errors.New("projectile requires an owner")
	ErrInvalidPosition = errors.New("position must be finite")
	ErrDuplicatePlayer = errors.New("arena already has a player")
)

// Spec describes an entity to construct.
type Spec struct {
	Category Category
	Owner    Owner
	Visual   string
	Pos      core.Vec2
	Vel      core.Vec2
	Radius   float64
	Cooldown float64 // Ticks until the entity may fire
}

// Entity is one live object in the arena.
type Entity struct {
	ID       EntityID
	Category Category
	Owner    Owner
	Visual   string
	Pos      core.Vec2
	Vel      core.Vec2
	Radius   float64
	Cooldown float64
	Facing   core.Vec2 // Aim direction, player only

	prev core.Vec2 // Position at the start of the current tick
	dead bool      // Consumed this tick, pruned at the end of it
}

// NewEntity validates spec and builds an entity with the given id.
func NewEntity(id EntityID, s Spec) (Entity, error) {
	switch {
	case !s.Category.valid():
		return Entity{}, fmt.Errorf("arena: new entity: %w: %d", ErrInvalidCategory, s.Category)
	case !(s.Radius > 0) || math.IsInf(s.Radius, 0):
		return Entity{}, fmt.Errorf("arena: new %s: %w: %v", s.Category, ErrInvalidRadius, s.Radius)
	case s.Cooldown < 0 || math.IsNaN(s.Cooldown):
		return Entity{}, fmt.Errorf("arena: new %s: %w: %v", s.Category, ErrInvalidCooldown, s.Cooldown)
	case s.Category == CategoryProjectile && s.Owner == OwnerNone:
		return Entity{}, fmt.Errorf("arena: new %s: %w", s.Category, ErrMissingOwner)
	case !finite(s.Pos) || !finite(s.Vel):
		return Entity{}, fmt.Errorf("arena: new %s: %w", s.Category, ErrInvalidPosition)
	}

	owner := s.Owner
	if s.Category != CategoryProjectile {
		owner = OwnerNone
	}
	visual := s.Visual
	if visual == "" {
		visual = defaultVisual(s.Category, owner)
	}

	e := Entity{
		ID:       id,
		Category: s.Category,
		Owner:    owner,
		Visual:   visual,
		Pos:      s.Pos,
		Vel:      s.Vel,
		Radius:   s.Radius,
		Cooldown: s.Cooldown,
		prev:     s.Pos,
	}
	if s.Category == CategoryPlayer {
		e.Facing = core.V(0, -1)
	}
	return e, nil
}

// Alive reports whether the entity has not been consumed this tick.
func (e Entity) Alive() bool {
	return !e.dead
}

// Collides reports whether two entities' circles overlap.
// The test is symmetric and ignores categories.
func Collides(a, b Entity) bool {
	return core.CirclesOverlap(a.Pos, a.Radius, b.Pos, b.Radius)
}

func defaultVisual(c Category, o Owner) string {
	switch c {
	case CategoryPlayer:
		return VisualPlayer
	case CategoryHostile:
		return VisualHostile
	case CategoryCollectible:
		return VisualCollectible
	}
	if o == OwnerHostile {
		return VisualHostileShot
	}
	return VisualPlayerShot
}

func finite(v core.Vec2) bool {
	return !math.IsNaN(v.X) && !math.IsNaN(v.Y) && !math.IsInf(v.X, 0) && !math.IsInf(v.Y, 0)
}

package arena

import (
	"testing"

	"github.com/vovakirdan/space-explorer/internal/core"
)

func TestCollidesSymmetric(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Entity
		expected bool
	}{
		{"same center", Entity{Pos: core.V(0, 0), Radius: 1}, Entity{Pos: core.V(0, 0), Radius: 1}, true},
		{"overlap", Entity{Pos: core.V(0, 0), Radius: 10}, Entity{Pos: core.V(15, 0), Radius: 6}, true},
		{"touching", Entity{Pos: core.V(0, 0), Radius: 10}, Entity{Pos: core.V(15, 0), Radius: 5}, false},
		{"apart", Entity{Pos: core.V(0, 0), Radius: 2}, Entity{Pos: core.V(30, 40), Radius: 2}, false},
		{"diagonal", Entity{Pos: core.V(0, 0), Radius: 3}, Entity{Pos: core.V(3, 4), Radius: 2.5}, true},
		{"different sizes", Entity{Pos: core.V(100, 100), Radius: 27.5}, Entity{Pos: core.V(120, 80), Radius: 3}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ab, ba := Collides(tc.a, tc.b), Collides(tc.b, tc.a)
			if ab != ba {
				t.Fatalf("Collides not symmetric: %v vs %v", ab, ba)
			}
			if ab != tc.expected {
				t.Errorf("Collides() = %v, expected %v", ab, tc.expected)
			}
		})
	}
}

func TestNewEntityDefaults(t *testing.T) {
	p, err := NewEntity(1, Spec{Category: CategoryPlayer, Radius: 20, Owner: OwnerHostile})
	if err != nil {
		t.Fatalf("NewEntity() failed: %v", err)
	}
	if p.Owner != OwnerNone {
		t.Errorf("player Owner = %v, expected none", p.Owner)
	}
	if p.Visual != VisualPlayer || p.Facing != core.V(0, -1) {
		t.Errorf("player visual=%q facing=%v", p.Visual, p.Facing)
	}

	shot, err := NewEntity(2, Spec{Category: CategoryProjectile, Owner: OwnerHostile, Radius: 2})
	if err != nil {
		t.Fatalf("NewEntity() failed: %v", err)
	}
	if shot.Visual != VisualHostileShot {
		t.Errorf("hostile shot visual = %q", shot.Visual)
	}

	custom, _ := NewEntity(3, Spec{Category: CategoryCollectible, Radius: 12, Visual: "planet"})
	if custom.Visual != "planet" {
		t.Errorf("custom visual = %q", custom.Visual)
	}
	if !custom.Alive() {
		t.Error("new entity should be alive")
	}
}

func TestBatchIterators(t *testing.T) {
	b := Batch{
		{Kind: EventCreated, EntityID: 1},
		{Kind: EventEffect, Effect: Effect{Kind: EffectScore, Amount: 20}},
		{Kind: EventMoved, EntityID: 1},
		{Kind: EventEffect, Effect: Effect{Kind: EffectLifeLost, Amount: 1}},
	}

	if b.Count(EventEffect) != 2 || b.Count(EventStatus) != 0 {
		t.Errorf("Count: effects=%d status=%d", b.Count(EventEffect), b.Count(EventStatus))
	}

	// Iterators are restartable.
	for range 2 {
		var kinds []EffectKind
		for ef := range b.Effects() {
			kinds = append(kinds, ef.Kind)
		}
		if len(kinds) != 2 || kinds[0] != EffectScore || kinds[1] != EffectLifeLost {
			t.Errorf("Effects() = %v", kinds)
		}
	}

	n := 0
	for range b.All() {
		n++
		break
	}
	if n != 1 {
		t.Error("early break should stop iteration")
	}
}

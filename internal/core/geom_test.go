package core

import (
	"math"
	"testing"
)

func TestCirclesOverlap(t *testing.T) {
	tests := []struct {
		name     string
		a        Vec2
		ra       float64
		b        Vec2
		rb       float64
		expected bool
	}{
		{"same center", V(10, 10), 1, V(10, 10), 1, true},
		{"overlapping", V(0, 0), 5, V(6, 0), 2, true},
		{"touching (no overlap)", V(0, 0), 5, V(7, 0), 2, false},
		{"far apart", V(0, 0), 5, V(100, 100), 5, false},
		{"diagonal overlap", V(0, 0), 3, V(3, 3), 2, true},
		{"contained", V(0, 0), 20, V(5, 5), 1, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := CirclesOverlap(tc.a, tc.ra, tc.b, tc.rb)
			if result != tc.expected {
				t.Errorf("CirclesOverlap() = %v, expected %v", result, tc.expected)
			}
			// Also test symmetry
			resultReverse := CirclesOverlap(tc.b, tc.rb, tc.a, tc.ra)
			if resultReverse != tc.expected {
				t.Errorf("CirclesOverlap() (reversed) = %v, expected %v", resultReverse, tc.expected)
			}
		})
	}
}

func TestBoundsOutside(t *testing.T) {
	b := Bounds{W: 800, H: 600}

	tests := []struct {
		name     string
		c        Vec2
		r        float64
		expected bool
	}{
		{"center", V(400, 300), 10, false},
		{"touching top from above", V(100, -10), 10, false},
		{"above top", V(100, -11), 10, true},
		{"below bottom", V(100, 650), 10, true},
		{"left of arena", V(-20, 300), 10, true},
		{"right of arena", V(811, 300), 10, true},
		{"straddling right edge", V(805, 300), 10, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := b.Outside(tc.c, tc.r); got != tc.expected {
				t.Errorf("Outside(%v, %v) = %v, expected %v", tc.c, tc.r, got, tc.expected)
			}
		})
	}
}

func TestBoundsContains(t *testing.T) {
	b := Bounds{W: 800, H: 600}

	tests := []struct {
		name     string
		c        Vec2
		expected bool
	}{
		{"center", V(400, 300), true},
		{"top edge", V(400, 0), true},
		{"just above top", V(400, -2), false},
		{"bottom right corner", V(800, 600), true},
		{"below bottom", V(400, 600.5), false},
		{"left of arena", V(-0.1, 300), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := b.Contains(tc.c); got != tc.expected {
				t.Errorf("Contains(%v) = %v, expected %v", tc.c, got, tc.expected)
			}
		})
	}
}

func TestBoundsClampCircle(t *testing.T) {
	b := Bounds{W: 100, H: 50}

	got := b.ClampCircle(V(-5, 70), 10)
	if got != V(10, 40) {
		t.Errorf("ClampCircle() = %v, expected (10, 40)", got)
	}

	inside := V(50, 25)
	if got := b.ClampCircle(inside, 10); got != inside {
		t.Errorf("ClampCircle() moved an inside point to %v", got)
	}
}

func TestVec2Normalize(t *testing.T) {
	n := V(3, 4).Normalize()
	if math.Abs(n.Len()-1) > 1e-9 {
		t.Errorf("Normalize() length = %f, expected 1", n.Len())
	}
	if !V(0, 0).Normalize().IsZero() {
		t.Error("Normalize() of zero vector should stay zero")
	}
}

func TestVec2Arithmetic(t *testing.T) {
	a := V(1, 2)
	b := V(3, 5)

	if a.Add(b) != V(4, 7) {
		t.Errorf("Add() = %v", a.Add(b))
	}
	if b.Sub(a) != V(2, 3) {
		t.Errorf("Sub() = %v", b.Sub(a))
	}
	if a.Scale(2) != V(2, 4) {
		t.Errorf("Scale() = %v", a.Scale(2))
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
		{3.0, 8.0, 2.0, 8.0}, // degenerate range
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

// Package core provides fundamental types and utilities shared by the arena,
// the games built on it and the platform layers. It contains no external
// dependencies (especially no Bubble Tea) to keep simulation logic pure and testable.
package core

import "math"

// Vec2 is a point or direction in arena space.
type Vec2 struct {
	X, Y float64
}

// V is shorthand for constructing a Vec2.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v multiplied by k.
func (v Vec2) Scale(k float64) Vec2 {
	return Vec2{X: v.X * k, Y: v.Y * k}
}

// Len returns the Euclidean length of v.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Normalize returns a unit vector in the direction of v.
// The zero vector is returned unchanged.
func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l == 0 {
		return v
	}
	return Vec2{X: v.X / l, Y: v.Y / l}
}

// IsZero reports whether both components are zero.
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// CirclesOverlap reports whether two circles overlap.
// Touching circles (distance equal to the radius sum) do not overlap.
func CirclesOverlap(a Vec2, ra float64, b Vec2, rb float64) bool {
	dx := b.X - a.X
	dy := b.Y - a.Y
	sum := ra + rb
	return dx*dx+dy*dy < sum*sum
}

// Bounds is the axis-aligned arena rectangle anchored at the origin.
type Bounds struct {
	W, H float64
}

// Outside reports whether a circle lies entirely outside the bounds.
// A circle touching an edge from outside still counts as inside.
func (b Bounds) Outside(c Vec2, r float64) bool {
	return c.X+r < 0 || c.X-r > b.W || c.Y+r < 0 || c.Y-r > b.H
}

// Contains reports whether a point lies inside the bounds, edges included.
func (b Bounds) Contains(c Vec2) bool {
	return c.X >= 0 && c.X <= b.W && c.Y >= 0 && c.Y <= b.H
}

// ClampCircle keeps a circle fully inside the bounds.
func (b Bounds) ClampCircle(c Vec2, r float64) Vec2 {
	return Vec2{
		X: ClampF(c.X, r, b.W-r),
		Y: ClampF(c.Y, r, b.H-r),
	}
}

// Rect represents an axis-aligned cell rectangle on a Screen.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
// When min > max the bounds are degenerate and min wins.
func ClampF(val, min, max float64) float64 {
	if val > max {
		val = max
	}
	if val < min {
		val = min
	}
	return val
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// Package core provides fundamental types and utilities for blockfall.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "fmt"

// Vec is a cell position on a grid. X grows to the right, Y grows downward.
// Both components are unsigned; range checks against a grid are the caller's job.
type Vec struct {
	X, Y uint
}

// V is a convenience constructor for Vec.
func V(x, y uint) Vec {
	return Vec{X: x, Y: y}
}

// String returns a string representation of the vector.
func (v Vec) String() string {
	return fmt.Sprintf("(%d,%d)", v.X, v.Y)
}

// Add returns the component-wise sum of two vectors.
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// Translate moves v in place by o.
func (v *Vec) Translate(o Vec) {
	v.X += o.X
	v.Y += o.Y
}

// Shift returns v offset by a signed delta. ok is false when either component
// would drop below zero, in which case v is returned unchanged.
func (v Vec) Shift(dx, dy int) (Vec, bool) {
	x := int(v.X) + dx
	y := int(v.Y) + dy
	if x < 0 || y < 0 {
		return v, false
	}
	return Vec{X: uint(x), Y: uint(y)}, true
}

// Rect represents an axis-aligned box on the screen.
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

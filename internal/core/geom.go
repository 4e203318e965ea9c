// Package core provides fundamental types and utilities for the platformer.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import (
	"fmt"
	"math"
)

// Vector is an immutable 2D value in level units.
// Every operation returns a new Vector; receivers are never modified.
type Vector struct {
	X, Y float64
}

// Vec creates a new vector.
func Vec(x, y float64) Vector {
	return Vector{X: x, Y: y}
}

// Plus returns the component-wise sum of v and other.
func (v Vector) Plus(other Vector) Vector {
	return Vector{X: v.X + other.X, Y: v.Y + other.Y}
}

// Times returns v scaled by factor.
func (v Vector) Times(factor float64) Vector {
	return Vector{X: v.X * factor, Y: v.Y * factor}
}

// Finite reports whether both components are neither NaN nor infinite.
func (v Vector) Finite() bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) &&
		!math.IsNaN(v.Y) && !math.IsInf(v.Y, 0)
}

// String implements fmt.Stringer.
func (v Vector) String() string {
	return fmt.Sprintf("(%g:%g)", v.X, v.Y)
}

// Rect represents an axis-aligned box in screen cells.
// Used for drawing; simulation bounds live on entities as float64.
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

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
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
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Package core is the dependency-free runtime the minigame sessions are
// built on: the fixed-tick session contract, input frames, the screen
// buffer the pet and games draw into, and reward payloads. Nothing here
// touches Bubble Tea; sessions stay pure so they can be stepped headless
// in tests.
package core

// Rect is an axis-aligned cell rectangle on the screen grid. Games use
// it for framed playfields and for hit checks like the snack basket.
type Rect struct {
	X, Y int
	W, H int
}

// NewRect builds a rectangle from its top-left corner and size.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the first x-coordinate past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the first y-coordinate past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains reports whether the cell (x, y) lies inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Clamp restricts val to [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Min returns the smaller of two ints.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two ints.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

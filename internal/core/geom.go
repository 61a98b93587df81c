// Package core provides the rendering primitives shared by the game and the
// terminal platform. It has no dependency on Bubble Tea so the game logic
// stays pure and testable.
package core

// Rect is an axis-aligned rectangle in screen cells.
type Rect struct {
	X, Y int // Top-left corner
	W, H int
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate just past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate just past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// CenteredIn returns a w x h rectangle centered inside r.
// Offsets never go negative, so an oversized rect is pinned to r's corner.
func (r Rect) CenteredIn(w, h int) Rect {
	x := r.X + max(0, (r.W-w)/2)
	y := r.Y + max(0, (r.H-h)/2)
	return NewRect(x, y, w, h)
}

package engine

import "fmt"

// Box is an axis-aligned bounding box: min corner plus size. Every
// entity uses one for placement and collision.
type Box struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// NewBox creates a box, rejecting negative dimensions. A negative width
// or height is a programming-contract violation, not a runtime state.
func NewBox(x, y, w, h float64) (Box, error) {
	if w < 0 || h < 0 {
		return Box{}, fmt.Errorf("box dimensions must be non-negative, got %gx%g", w, h)
	}
	return Box{X: x, Y: y, W: w, H: h}, nil
}

// CenteredBox creates a w-by-h box whose center sits at (cx, cy)
func CenteredBox(cx, cy, w, h float64) Box {
	return Box{X: cx - w/2, Y: cy - h/2, W: w, H: h}
}

// Right returns the x coordinate of the box's right edge
func (b Box) Right() float64 {
	return b.X + b.W
}

// Bottom returns the y coordinate of the box's bottom edge
func (b Box) Bottom() float64 {
	return b.Y + b.H
}

// CenterX returns the x coordinate of the box's center
func (b Box) CenterX() float64 {
	return b.X + b.W/2
}

// CenterY returns the y coordinate of the box's center
func (b Box) CenterY() float64 {
	return b.Y + b.H/2
}

// Intersects reports whether two boxes overlap. Ranges are half-open,
// so boxes that merely share an edge do not intersect. The test is
// symmetric and has no side effects.
func (b Box) Intersects(o Box) bool {
	return b.X < o.Right() && o.X < b.Right() &&
		b.Y < o.Bottom() && o.Y < b.Bottom()
}

// intersectsAnyWall reports whether the box overlaps any wall in the set
func intersectsAnyWall(b Box, walls []Wall) bool {
	for _, w := range walls {
		if b.Intersects(w.Box) {
			return true
		}
	}
	return false
}

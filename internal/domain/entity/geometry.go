package entity

// Rect is a screen rectangle relative to the window content area.
type Rect struct {
	X, Y int // Top-left position
	W, H int // Width and height
}

// Empty reports whether r has no area, as before the first layout pass.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (cx, cy float64) {
	return float64(r.X) + float64(r.W)/2, float64(r.Y) + float64(r.H)/2
}

// Extent returns the size of r along orientation.
func (r Rect) Extent(o Orientation) int {
	if o == Vertical {
		return r.H
	}
	return r.W
}

// EffectivePosition returns the divider position used when laying s out
// inside an area of the given extent. Unset or out-of-range positions fall
// back to an even split.
func (s *Split) EffectivePosition(extent int) int {
	if extent <= 0 {
		return 0
	}
	if s.Position <= 0 || s.Position >= extent {
		return extent / 2
	}
	return s.Position
}

// ChildRects divides r between the start and end children of s.
func (s *Split) ChildRects(r Rect) (start, end Rect) {
	pos := s.EffectivePosition(r.Extent(s.Orientation))
	if s.Orientation == Vertical {
		return Rect{X: r.X, Y: r.Y, W: r.W, H: pos},
			Rect{X: r.X, Y: r.Y + pos, W: r.W, H: r.H - pos}
	}
	return Rect{X: r.X, Y: r.Y, W: pos, H: r.H},
		Rect{X: r.X + pos, Y: r.Y, W: r.W - pos, H: r.H}
}

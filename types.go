package tableui

// Vec2 represents a 2D vector for positions and sizes.
type Vec2 struct {
	X, Y float64
}

// Rect represents a rectangle with position and size.
type Rect struct {
	X, Y float64 // Top-left position
	W, H float64 // Width and height
}

// Contains returns true if the point is inside the rectangle.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// clampf clamps a float64 value to a range.
func clampf(v, minVal, maxVal float64) float64 {
	if v < minVal {
		return minVal
	}
	if v > maxVal {
		return maxVal
	}
	return v
}

// maxf returns the maximum of two float64 values.
func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

// minf returns the minimum of two float64 values.
func minf(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

package vmath

// Rect is an axis-aligned box in playfield percent units
type Rect struct {
	X, Y, W, H float64
}

// Overlaps is the sole collision primitive: strict AABB overlap, touching edges do not collide
func (a Rect) Overlaps(b Rect) bool {
	return a.X < b.X+b.W &&
		a.X+a.W > b.X &&
		a.Y < b.Y+b.H &&
		a.Y+a.H > b.Y
}

// CenterX returns the horizontal centre
func (a Rect) CenterX() float64 { return a.X + a.W/2 }

// CenterY returns the vertical centre
func (a Rect) CenterY() float64 { return a.Y + a.H/2 }

// Clamp bounds v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampInt bounds v to [lo, hi]
func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

package vmath

// Rect is an axis-aligned rectangle with Min inclusive corner and Max exclusive corner.
type Rect struct {
	Min Vec2
	Max Vec2
}

func Screen(w, h float64) Rect { return Rect{Max: Vec2{w, h}} }

func (r Rect) Width() float64  { return r.Max.X - r.Min.X }
func (r Rect) Height() float64 { return r.Max.Y - r.Min.Y }
func (r Rect) Center() Vec2    { return r.Min.Lerp(r.Max, 0.5) }

// CirclesOverlap reports whether two circles intersect. Touching circles
// (distance exactly ra+rb) do not overlap.
func CirclesOverlap(a Vec2, ra float64, b Vec2, rb float64) bool {
	return a.Dist(b) < ra+rb
}

// CircleInRect reports whether the circle's bounding box intersects r.
func CircleInRect(c Vec2, radius float64, r Rect) bool {
	return c.X+radius > r.Min.X &&
		c.X-radius < r.Max.X &&
		c.Y+radius > r.Min.Y &&
		c.Y-radius < r.Max.Y
}

// CircleOutside reports whether the circle lies beyond r grown by margin on any edge.
func CircleOutside(c Vec2, radius, margin float64, r Rect) bool {
	return c.X+radius+margin < r.Min.X ||
		c.X-radius-margin > r.Max.X ||
		c.Y+radius+margin < r.Min.Y ||
		c.Y-radius-margin > r.Max.Y
}

// Wrap teleports a circle that left r to the opposite edge, one radius outside.
func Wrap(c Vec2, radius float64, r Rect) Vec2 {
	switch {
	case c.X+radius < r.Min.X:
		c.X = r.Max.X + radius
	case c.X-radius > r.Max.X:
		c.X = r.Min.X - radius
	}
	switch {
	case c.Y+radius < r.Min.Y:
		c.Y = r.Max.Y + radius
	case c.Y-radius > r.Max.Y:
		c.Y = r.Min.Y - radius
	}
	return c
}

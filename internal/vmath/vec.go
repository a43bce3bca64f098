package vmath

import "math"

// Vec2 is a 2D point or displacement in simulation space (x right, y down).
type Vec2 struct {
	X float64
	Y float64
}

func V(x, y float64) Vec2 { return Vec2{X: x, Y: y} }

func (v Vec2) Add(o Vec2) Vec2       { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2       { return Vec2{v.X - o.X, v.Y - o.Y} }
func (v Vec2) Scale(f float64) Vec2  { return Vec2{v.X * f, v.Y * f} }
func (v Vec2) Dot(o Vec2) float64    { return v.X*o.X + v.Y*o.Y }
func (v Vec2) LenSq() float64        { return v.X*v.X + v.Y*v.Y }
func (v Vec2) Len() float64          { return math.Sqrt(v.LenSq()) }
func (v Vec2) IsZero() bool          { return v.X == 0 && v.Y == 0 }
func (v Vec2) Dist(o Vec2) float64   { return o.Sub(v).Len() }
func (v Vec2) DistSq(o Vec2) float64 { return o.Sub(v).LenSq() }
func (v Vec2) FlipY() Vec2           { return Vec2{v.X, -v.Y} }
func (v Vec2) Lerp(o Vec2, f float64) Vec2 {
	return Vec2{v.X*(1-f) + o.X*f, v.Y*(1-f) + o.Y*f}
}

// Normalize returns the unit vector of v and its original length.
// A zero vector yields (0,0) and length 0; callers treat that as "no direction".
func (v Vec2) Normalize() (Vec2, float64) {
	l := v.Len()
	if l == 0 {
		return Vec2{}, 0
	}
	return Vec2{v.X / l, v.Y / l}, l
}

// Rotate rotates v by deg degrees (clockwise on a y-down screen).
func (v Vec2) Rotate(deg float64) Vec2 {
	rad := deg * math.Pi / 180
	sin, cos := math.Sincos(rad)
	return Vec2{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// Toward moves from v toward target by at most step. If v already equals
// target it is returned unchanged.
func (v Vec2) Toward(target Vec2, step float64) Vec2 {
	dir, dist := target.Sub(v).Normalize()
	if dist == 0 {
		return v
	}
	return v.Add(dir.Scale(math.Min(dist, step)))
}

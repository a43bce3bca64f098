package world

import "github.com/gravshot/gravshot/internal/vmath"

// Dust is a cosmetic particle drifting under gravity with friction. It wraps
// around the screen, never leaves, and takes no part in collisions.
type Dust struct {
	base
	vel vmath.Vec2
}

func NewDust(pos, vel vmath.Vec2) *Dust {
	return &Dust{base: base{pos: pos}, vel: vel}
}

func (d *Dust) Kind() Kind           { return KindDust }
func (d *Dust) Velocity() vmath.Vec2 { return d.vel }

func (d *Dust) Advance(ctx Context) {
	t := ctx.Tuning()
	d.pos = d.pos.Add(d.vel)
	d.vel = d.vel.Add(ctx.Gravity().Scale(t.DustGravityFactor)).Scale(t.DustFriction)
	d.pos = vmath.Wrap(d.pos, t.DustRadius, ctx.Bounds())
}

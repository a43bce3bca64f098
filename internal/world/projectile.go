package world

import "github.com/gravshot/gravshot/internal/vmath"

// ProjectileRules describe one kind of shot.
type ProjectileRules struct {
	Radius        float64
	GravityFactor float64
}

// Projectile is a free body under gravity that destroys the first on-screen
// adversary it touches.
type Projectile struct {
	base
	rules *ProjectileRules
	vel   vmath.Vec2
}

func NewProjectile(rules *ProjectileRules, pos, vel vmath.Vec2) *Projectile {
	return &Projectile{base: base{pos: pos}, rules: rules, vel: vel}
}

func (p *Projectile) Kind() Kind              { return KindProjectile }
func (p *Projectile) Rules() *ProjectileRules { return p.rules }
func (p *Projectile) Velocity() vmath.Vec2    { return p.vel }
func (p *Projectile) Radius() float64         { return p.rules.Radius }

func (p *Projectile) Advance(ctx Context) {
	p.pos = p.pos.Add(p.vel)
	p.vel = p.vel.Add(ctx.Gravity().Scale(p.rules.GravityFactor))

	bounds := ctx.Bounds()
	if vmath.CircleOutside(p.pos, p.rules.Radius, ctx.Tuning().ProjectileMargin, bounds) {
		ctx.Despawn(p.id)
		return
	}

	// First hit in registration order wins.
	for a := range ctx.Adversaries() {
		if ctx.PendingRemoval(a.id) || !a.OnScreen(bounds) {
			continue
		}
		if vmath.CirclesOverlap(p.pos, p.rules.Radius, a.pos, a.rules.Radius) {
			a.Hit(ctx)
			ctx.Despawn(p.id)
			return
		}
	}
}

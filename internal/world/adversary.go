package world

import (
	"math"

	"github.com/gravshot/gravshot/internal/vmath"
)

// AdversaryRules describe the level's enemy blobs.
type AdversaryRules struct {
	Radius float64
	Speed  float64
}

// Adversary chases the nearest player and kills it on contact.
type Adversary struct {
	base
	rules *AdversaryRules
}

func NewAdversary(rules *AdversaryRules, pos vmath.Vec2) *Adversary {
	return &Adversary{base: base{pos: pos}, rules: rules}
}

func (a *Adversary) Kind() Kind             { return KindAdversary }
func (a *Adversary) Rules() *AdversaryRules { return a.rules }
func (a *Adversary) Radius() float64        { return a.rules.Radius }

// OnScreen reports whether the bounding circle intersects the viewport.
// Off-screen adversaries cannot be shot.
func (a *Adversary) OnScreen(bounds vmath.Rect) bool {
	return vmath.CircleInRect(a.pos, a.rules.Radius, bounds)
}

// Nearest returns the closest player not pending removal. Ties go to the
// player registered first.
func (a *Adversary) Nearest(ctx Context) *Player {
	var nearest *Player
	best := math.Inf(1)
	for p := range ctx.Players() {
		if ctx.PendingRemoval(p.id) {
			continue
		}
		if d := a.pos.DistSq(p.pos); d < best {
			nearest, best = p, d
		}
	}
	return nearest
}

func (a *Adversary) Advance(ctx Context) {
	target := a.Nearest(ctx)
	if target == nil {
		return
	}

	if dir, dist := target.pos.Sub(a.pos).Normalize(); dist > 0 {
		a.pos = a.pos.Add(dir.Scale(a.rules.Speed))
	}

	if vmath.CirclesOverlap(a.pos, a.rules.Radius, target.pos, ctx.Tuning().PlayerCollisionRadius) {
		target.Hit(ctx)
	}
}

// Hit is the reaction to a projectile.
func (a *Adversary) Hit(ctx Context) {
	a.Kill(ctx)
}

// Kill removes the adversary and leaves a fading burst where it died.
func (a *Adversary) Kill(ctx Context) {
	if ctx.PendingRemoval(a.id) {
		return
	}
	ctx.Despawn(a.id)
	t := ctx.Tuning()
	ctx.Spawn(NewEffect(ctx.Frame(), EffectSpec{
		Duration:   t.AdversaryDeathDuration,
		From:       a.pos,
		To:         a.pos,
		FromColor:  t.AdversaryDeathColor,
		ToColor:    t.AdversaryDeathColor.WithAlpha(0),
		FromRadius: a.rules.Radius,
		ToRadius:   a.rules.Radius * t.AdversaryDeathRadiusFactor,
	}))
}

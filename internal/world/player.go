package world

import (
	"math"

	"github.com/gravshot/gravshot/internal/vmath"
)

// PlayerRules describe one player craft. Owned by level content.
type PlayerRules struct {
	Waypoints    []vmath.Vec2 // cyclic path; the craft starts on the first one
	Speed        float64
	InitRotation float64 // degrees
	RotationStep float64 // degrees per frame
	FireInterval int     // frames between shots; <= 0 never fires
	FireVelocity vmath.Vec2
	Projectile   *ProjectileRules
}

// Player follows its waypoints, spins, and fires on a fixed cadence.
type Player struct {
	base
	rules  *PlayerRules
	target int
	rot    float64
}

func NewPlayer(rules *PlayerRules) *Player {
	p := &Player{rules: rules, rot: rules.InitRotation}
	if len(rules.Waypoints) > 0 {
		p.pos = rules.Waypoints[0]
	}
	return p
}

func (p *Player) Kind() Kind          { return KindPlayer }
func (p *Player) Rules() *PlayerRules { return p.rules }
func (p *Player) Rotation() float64   { return p.rot }
func (p *Player) TargetIndex() int    { return p.target }

// Target returns the waypoint the craft is heading for.
func (p *Player) Target() vmath.Vec2 {
	if len(p.rules.Waypoints) == 0 {
		return p.pos
	}
	return p.rules.Waypoints[p.target]
}

// FireVelocity is the muzzle velocity for a shot fired at the current rotation.
func (p *Player) FireVelocity() vmath.Vec2 {
	return p.rules.FireVelocity.Rotate(p.rot)
}

func (p *Player) Advance(ctx Context) {
	p.rot += p.rules.RotationStep

	if n := len(p.rules.Waypoints); n > 0 {
		d := p.Target().Sub(p.pos)
		if math.Abs(d.X) < 1 && math.Abs(d.Y) < 1 {
			p.target = (p.target + 1) % n
		}
		p.pos = p.pos.Toward(p.Target(), p.rules.Speed)
	}

	if p.rules.Projectile != nil && p.rules.FireInterval > 0 && ctx.Frame()%p.rules.FireInterval == 0 {
		ctx.Spawn(NewProjectile(p.rules.Projectile, p.pos, p.FireVelocity()))
	}
}

// Hit is the reaction to an adversary reaching the craft.
func (p *Player) Hit(ctx Context) {
	p.Kill(ctx)
}

// Kill removes the craft, schedules the lose outcome and leaves a death effect.
func (p *Player) Kill(ctx Context) {
	if ctx.PendingRemoval(p.id) {
		return
	}
	ctx.Despawn(p.id)
	t := ctx.Tuning()
	ctx.ScheduleLose(ctx.Frame() + t.LoseDelay)
	ctx.Spawn(NewEffect(ctx.Frame(), EffectSpec{
		Duration:   t.PlayerDeathDuration,
		From:       p.pos,
		To:         p.pos,
		FromColor:  t.PlayerDeathColor,
		ToColor:    t.PlayerDeathColor.WithAlpha(0),
		FromRadius: 0,
		ToRadius:   t.PlayerDeathRadius,
	}))
}

// ProjectPath predicts where a shot fired now would be over the next n frames
// under the given gravity.
func (p *Player) ProjectPath(gravity vmath.Vec2, n int) []vmath.Vec2 {
	if n <= 0 || p.rules.Projectile == nil {
		return nil
	}
	pts := make([]vmath.Vec2, 0, n)
	loc, vel := p.pos, p.FireVelocity()
	for range n {
		loc = loc.Add(vel)
		pts = append(pts, loc)
		vel = vel.Add(gravity.Scale(p.rules.Projectile.GravityFactor))
	}
	return pts
}

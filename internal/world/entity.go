package world

import (
	"fmt"
	"iter"

	"github.com/gravshot/gravshot/internal/core/ecs"
	"github.com/gravshot/gravshot/internal/vmath"
)

// Kind tags the closed set of entity variants.
type Kind uint8

const (
	KindPlayer Kind = iota + 1
	KindProjectile
	KindAdversary
	KindDust
	KindEffect
)

func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindProjectile:
		return "projectile"
	case KindAdversary:
		return "adversary"
	case KindDust:
		return "dust"
	case KindEffect:
		return "effect"
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Entity is a simulated object owned by State. The unexported bind method
// closes the set of implementations to this package.
type Entity interface {
	ID() ecs.EntityID
	Kind() Kind
	Position() vmath.Vec2
	Advance(ctx Context)
	bind(id ecs.EntityID)
}

// Context is what an entity may touch while it advances: read the frame and
// environment, query committed views, and queue mutations.
type Context interface {
	Frame() int
	Tuning() *Tuning
	Bounds() vmath.Rect
	// Gravity is the raw acceleration with the sensor's y axis flipped into
	// simulation space.
	Gravity() vmath.Vec2
	OrientedGravity() vmath.Vec2

	Spawn(e Entity)
	Despawn(id ecs.EntityID)
	PendingRemoval(id ecs.EntityID) bool

	Players() iter.Seq[*Player]
	Adversaries() iter.Seq[*Adversary]

	// ScheduleLose sets the lose marker unless an outcome is already decided.
	ScheduleLose(frame int) bool
}

// Accelerometer is the host's tilt sensor.
type Accelerometer interface {
	RawAcceleration() vmath.Vec2
	OrientedAcceleration() vmath.Vec2
}

type base struct {
	id  ecs.EntityID
	pos vmath.Vec2
}

func (b *base) ID() ecs.EntityID     { return b.id }
func (b *base) Position() vmath.Vec2 { return b.pos }
func (b *base) bind(id ecs.EntityID) { b.id = id }

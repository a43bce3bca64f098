package world

import (
	"fmt"
	"iter"

	"github.com/gravshot/gravshot/internal/core/ecs"
	"github.com/gravshot/gravshot/internal/vmath"
)

// State is the entity registry for one level: it owns every live entity,
// keeps per-kind views, and applies adds and removes only at tick
// boundaries. Accessed only from the simulation goroutine, no locks.
type State struct {
	ecs *ecs.World

	objects     *ecs.Store[Entity] // every live entity, insertion order
	players     *ecs.Store[*Player]
	projectiles *ecs.Store[*Projectile]
	adversaries *ecs.Store[*Adversary]

	frame    int
	tuning   *Tuning
	bounds   vmath.Rect
	accel    Accelerometer
	outcomes Outcomes
}

var _ Context = (*State)(nil)

func NewState(tuning *Tuning, accel Accelerometer) *State {
	s := &State{
		ecs:         ecs.NewWorld(),
		objects:     ecs.NewStore[Entity](),
		players:     ecs.NewStore[*Player](),
		projectiles: ecs.NewStore[*Projectile](),
		adversaries: ecs.NewStore[*Adversary](),
		tuning:      tuning,
		bounds:      tuning.Bounds(),
		accel:       accel,
	}
	reg := s.ecs.Registry()
	reg.Register(s.objects)
	reg.Register(s.players)
	reg.Register(s.projectiles)
	reg.Register(s.adversaries)
	return s
}

// ---------- Mutation ----------

// Add inserts e immediately. Only valid outside the advance phase, i.e. while
// a level is being populated.
func (s *State) Add(e Entity) ecs.EntityID {
	s.ecs.MustBeUnlocked("add " + e.Kind().String())
	id := s.claim(e)
	s.commit(e)
	return id
}

// Spawn queues e for insertion after the current advance pass. The returned
// handle is valid at once; e is not advanced until the next tick.
func (s *State) Spawn(e Entity) {
	s.AddDeferred(e)
}

// AddDeferred is Spawn, returning the new handle.
func (s *State) AddDeferred(e Entity) ecs.EntityID {
	id := s.claim(e)
	s.ecs.QueueSpawn(id, func() { s.commit(e) })
	return id
}

// Despawn queues id for removal after pending adds are applied. Repeated or
// stale handles are ignored.
func (s *State) Despawn(id ecs.EntityID) {
	s.ecs.MarkForDestruction(id)
}

// RemoveDeferred is Despawn.
func (s *State) RemoveDeferred(id ecs.EntityID) { s.Despawn(id) }

func (s *State) PendingRemoval(id ecs.EntityID) bool {
	return s.ecs.MarkedForDestruction(id)
}

// IsPendingRemoval is PendingRemoval.
func (s *State) IsPendingRemoval(id ecs.EntityID) bool { return s.PendingRemoval(id) }

func (s *State) claim(e Entity) ecs.EntityID {
	if !e.ID().IsZero() {
		panic(fmt.Errorf("add %s %s: %w", e.Kind(), e.ID(), ecs.ErrDoubleAdd))
	}
	id := s.ecs.CreateEntity()
	e.bind(id)
	return id
}

func (s *State) commit(e Entity) {
	id := e.ID()
	s.objects.Set(id, e)
	switch v := e.(type) {
	case *Player:
		s.players.Set(id, v)
	case *Projectile:
		s.projectiles.Set(id, v)
	case *Adversary:
		s.adversaries.Set(id, v)
	}
}

// ---------- Tick phases ----------

// BeginFrame increments the frame counter; called once at the start of a tick.
func (s *State) BeginFrame() int {
	s.frame++
	return s.frame
}

// BeginAdvance locks the live set for the advance pass.
func (s *State) BeginAdvance() { s.ecs.Lock() }

// EndAdvance unlocks the live set.
func (s *State) EndAdvance() { s.ecs.Unlock() }

func (s *State) Advancing() bool { return s.ecs.Locked() }

// ApplyAdds commits queued adds in queue order.
func (s *State) ApplyAdds() int { return s.ecs.FlushSpawnQueue() }

// ApplyRemoves destroys queued removals.
func (s *State) ApplyRemoves() int { return s.ecs.FlushDestroyQueue() }

// ---------- Queries ----------

func (s *State) Frame() int          { return s.frame }
func (s *State) Tuning() *Tuning     { return s.tuning }
func (s *State) Bounds() vmath.Rect  { return s.bounds }
func (s *State) Outcomes() *Outcomes { return &s.outcomes }

func (s *State) Gravity() vmath.Vec2 {
	if s.accel == nil {
		return vmath.Vec2{}
	}
	return s.accel.RawAcceleration().FlipY()
}

func (s *State) OrientedGravity() vmath.Vec2 {
	if s.accel == nil {
		return vmath.Vec2{}
	}
	return s.accel.OrientedAcceleration().FlipY()
}

// Get returns a live entity by handle.
func (s *State) Get(id ecs.EntityID) (Entity, bool) {
	return s.objects.Get(id)
}

// Objects yields every live entity in insertion order. This is the draw order.
func (s *State) Objects() iter.Seq[Entity]          { return s.objects.Values() }
func (s *State) Players() iter.Seq[*Player]         { return s.players.Values() }
func (s *State) Projectiles() iter.Seq[*Projectile] { return s.projectiles.Values() }
func (s *State) Adversaries() iter.Seq[*Adversary]  { return s.adversaries.Values() }

func (s *State) Len() int             { return s.objects.Len() }
func (s *State) PlayerCount() int     { return s.players.Len() }
func (s *State) ProjectileCount() int { return s.projectiles.Len() }
func (s *State) AdversaryCount() int  { return s.adversaries.Len() }

// FirstPlayer returns the earliest-registered live player.
func (s *State) FirstPlayer() (*Player, bool) {
	for p := range s.players.Values() {
		return p, true
	}
	return nil, false
}

// ---------- Outcomes ----------

func (s *State) ScheduleLose(frame int) bool {
	return s.outcomes.Schedule(OutcomeLose, frame)
}

func (s *State) ScheduleWin(frame int) bool {
	return s.outcomes.Schedule(OutcomeWin, frame)
}

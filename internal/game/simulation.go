package game

import (
	"iter"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/gravshot/gravshot/internal/core/event"
	coresys "github.com/gravshot/gravshot/internal/core/system"
	"github.com/gravshot/gravshot/internal/level"
	"github.com/gravshot/gravshot/internal/system"
	"github.com/gravshot/gravshot/internal/vmath"
	"github.com/gravshot/gravshot/internal/world"
)

// Options configure one Simulation.
type Options struct {
	Tuning *world.Tuning
	Accel  world.Accelerometer // nil means no gravity
	Bus    *event.Bus          // receives outcome and level events; nil for a private bus
	Seed   int64
	Step   time.Duration // nominal tick length handed to systems
	Log    *zap.Logger
}

// Simulation is one playthrough of one level. It is built fresh for every
// reset and dropped once it has asked for a reset or the next level.
type Simulation struct {
	id     uuid.UUID
	level  level.Level
	state  *world.State
	runner *coresys.Runner
	bus    *event.Bus
	step   time.Duration
	log    *zap.Logger
}

// NewSimulation seeds ambient dust, lets the level populate the world and
// queues the intro effect. No tick has run yet.
func NewSimulation(lvl level.Level, opts Options) *Simulation {
	tuning := opts.Tuning
	if tuning == nil {
		t := world.DefaultTuning()
		tuning = &t
	}
	bus := opts.Bus
	if bus == nil {
		bus = event.NewBus()
	}
	log := opts.Log
	if log == nil {
		log = zap.NewNop()
	}

	id := uuid.New()
	log = log.With(
		zap.String("run", id.String()),
		zap.Int("level", lvl.Number()),
		zap.String("name", lvl.Name()),
	)

	state := world.NewState(tuning, opts.Accel)
	rng := level.Rand(opts.Seed, lvl.Name())

	for range tuning.DustCount {
		pos := vmath.V(float64(rng.IntN(int(tuning.ScreenWidth))), float64(rng.IntN(int(tuning.ScreenHeight))))
		state.Add(world.NewDust(pos, vmath.Vec2{}))
	}
	lvl.Populate(state, rng)
	state.AddDeferred(world.CenterBurst(state.Frame(), tuning, tuning.IntroDuration, tuning.IntroColor, tuning.IntroRadius, 0))

	runner := coresys.NewRunner()
	runner.Register(system.NewAdvanceSystem(state))
	runner.Register(system.NewSpawnSystem(state))
	runner.Register(system.NewCleanupSystem(state))
	runner.Register(system.NewOutcomeSystem(state, bus, log))

	log.Debug("level populated",
		zap.Int("players", state.PlayerCount()),
		zap.Int("adversaries", state.AdversaryCount()),
		zap.Int("dust", tuning.DustCount),
	)

	return &Simulation{
		id:     id,
		level:  lvl,
		state:  state,
		runner: runner,
		bus:    bus,
		step:   opts.Step,
		log:    log,
	}
}

// Advance runs one tick: every live entity advances once, then queued adds
// and removes are applied and outcomes are evaluated. Events land on the bus
// and are delivered when the host flushes it.
func (s *Simulation) Advance() {
	s.state.BeginFrame()
	s.runner.Tick(s.step)
}

func (s *Simulation) ID() uuid.UUID       { return s.id }
func (s *Simulation) Level() level.Level  { return s.level }
func (s *Simulation) State() *world.State { return s.state }
func (s *Simulation) Bus() *event.Bus     { return s.bus }
func (s *Simulation) Frame() int          { return s.state.Frame() }

// Objects yields every live entity in draw order.
func (s *Simulation) Objects() iter.Seq[world.Entity] { return s.state.Objects() }

// HUD returns the title and instruction opacity for the current frame.
func (s *Simulation) HUD() level.HUD { return level.Overlay(s.state.Frame(), s.state.Tuning()) }

// PathProjection predicts the shot p would fire now, under the oriented
// acceleration, for as many frames as the level asks.
func (s *Simulation) PathProjection(p *world.Player) []vmath.Vec2 {
	return p.ProjectPath(s.state.OrientedGravity(), s.level.PathProjectionCount(s.state))
}

// Stats is a point-in-time population count.
type Stats struct {
	Frame       int
	Objects     int
	Players     int
	Projectiles int
	Adversaries int
}

func (s *Simulation) Stats() Stats {
	return Stats{
		Frame:       s.state.Frame(),
		Objects:     s.state.Len(),
		Players:     s.state.PlayerCount(),
		Projectiles: s.state.ProjectileCount(),
		Adversaries: s.state.AdversaryCount(),
	}
}

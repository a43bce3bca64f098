package game

import (
	"time"

	"go.uber.org/zap"

	"github.com/gravshot/gravshot/internal/core/event"
	"github.com/gravshot/gravshot/internal/data"
	"github.com/gravshot/gravshot/internal/input"
	"github.com/gravshot/gravshot/internal/level"
	"github.com/gravshot/gravshot/internal/scripting"
	"github.com/gravshot/gravshot/internal/world"
)

type transition uint8

const (
	stay transition = iota
	resetLevel
	nextLevel
)

// AppOptions configure the level shell.
type AppOptions struct {
	Levels *data.LevelTable
	Hooks  *scripting.Engine // optional Lua overrides
	Tuning *world.Tuning
	Input  input.Source
	Seed   int64
	Step   time.Duration
	Log    *zap.Logger
}

// App owns the current Simulation and switches levels when one asks for a
// reset or the next level. Switches happen between ticks, never inside one.
// Past the last level the App is done and holds no Simulation.
type App struct {
	opts    AppOptions
	bus     *event.Bus
	log     *zap.Logger
	current int // 1-based level number
	sim     *Simulation
	pending transition
	ticks   int
}

func NewApp(opts AppOptions) *App {
	if opts.Log == nil {
		opts.Log = zap.NewNop()
	}
	if opts.Tuning == nil {
		t := world.DefaultTuning()
		opts.Tuning = &t
	}
	if opts.Input == nil {
		opts.Input = input.NewFixed(0, -1)
	}
	a := &App{
		opts: opts,
		bus:  event.NewBus(),
		log:  opts.Log,
	}
	event.Subscribe(a.bus, func(e event.LevelReset) {
		a.log.Info("level reset requested", zap.Int("level", a.current), zap.Int("frame", e.Frame))
		a.pending = resetLevel
	})
	event.Subscribe(a.bus, func(e event.LevelAdvance) {
		a.log.Info("level advance requested", zap.Int("level", a.current), zap.Int("frame", e.Frame))
		a.pending = nextLevel
	})
	return a
}

// Start begins play at level n (1-based).
func (a *App) Start(n int) {
	a.current = n
	a.Reset()
}

// Reset rebuilds the current level from scratch.
func (a *App) Reset() {
	a.pending = stay
	rules := a.opts.Levels.Get(a.current)
	if rules == nil {
		if a.sim != nil {
			a.log.Info("all levels complete", zap.Int("levels", a.opts.Levels.Count()))
		}
		a.sim = nil
		return
	}
	a.sim = NewSimulation(level.NewGeneric(rules, a.opts.Hooks), Options{
		Tuning: a.opts.Tuning,
		Accel:  a.opts.Input,
		Bus:    a.bus,
		Seed:   a.opts.Seed,
		Step:   a.opts.Step,
		Log:    a.log,
	})
	a.log.Info("level started", zap.Int("level", a.current), zap.String("name", rules.Name), zap.Stringer("run", a.sim.ID()))
}

// Next moves on to the following level.
func (a *App) Next() {
	a.current++
	a.Reset()
}

// Tick samples input, advances the current Simulation once, delivers its
// events and applies any requested level switch. It reports whether there
// is still something to play.
func (a *App) Tick() bool {
	if a.sim == nil {
		return false
	}
	a.opts.Input.Update(a.sim.Frame() + 1)
	a.sim.Advance()
	a.ticks++
	a.bus.Flush()

	switch a.pending {
	case resetLevel:
		a.Reset()
	case nextLevel:
		a.Next()
	}
	return a.sim != nil
}

func (a *App) Done() bool              { return a.sim == nil }
func (a *App) Level() int              { return a.current }
func (a *App) Simulation() *Simulation { return a.sim }
func (a *App) Bus() *event.Bus         { return a.bus }
func (a *App) Ticks() int              { return a.ticks }

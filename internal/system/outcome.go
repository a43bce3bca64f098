package system

import (
	"time"

	"go.uber.org/zap"

	"github.com/gravshot/gravshot/internal/core/event"
	coresys "github.com/gravshot/gravshot/internal/core/system"
	"github.com/gravshot/gravshot/internal/world"
)

// OutcomeSystem drives the level outcome state machine.
// Phase 3 (Outcome), after adds and removes have settled.
//
//	Playing → Win  → (win effect)  → Advance → LevelAdvance
//	Playing → Lose → (lose effect) → Reset   → LevelReset
//
// Due markers fire first, then the win and lose triggers are evaluated, win
// before lose. Newly set markers, including a Lose set by a player's hit
// reaction during the update pass, are announced once as OutcomeScheduled.
type OutcomeSystem struct {
	state     *world.State
	bus       *event.Bus
	log       *zap.Logger
	announced [4]bool
}

func NewOutcomeSystem(state *world.State, bus *event.Bus, log *zap.Logger) *OutcomeSystem {
	if log == nil {
		log = zap.NewNop()
	}
	return &OutcomeSystem{state: state, bus: bus, log: log}
}

func (s *OutcomeSystem) Phase() coresys.Phase { return coresys.PhaseOutcome }

func (s *OutcomeSystem) Update(_ time.Duration) {
	frame := s.state.Frame()
	outcomes := s.state.Outcomes()
	t := s.state.Tuning()

	for _, o := range outcomes.DueAt(frame) {
		s.log.Info("outcome fired", zap.Stringer("outcome", o), zap.Int("frame", frame))
		event.Emit(s.bus, event.OutcomeFired{Outcome: o, Frame: frame})

		switch o {
		case world.OutcomeWin:
			outcomes.Schedule(world.OutcomeAdvance, frame+t.WinDuration)
			s.state.AddDeferred(world.CenterBurst(frame, t, t.WinDuration, t.WinColor, 0, t.WinRadius))
		case world.OutcomeLose:
			outcomes.Schedule(world.OutcomeReset, frame+t.LoseDuration)
			s.state.AddDeferred(world.CenterBurst(frame, t, t.LoseDuration, t.LoseColor, 0, t.LoseRadius))
		case world.OutcomeReset:
			event.Emit(s.bus, event.LevelReset{Frame: frame})
		case world.OutcomeAdvance:
			event.Emit(s.bus, event.LevelAdvance{Frame: frame})
		}
	}

	if !outcomes.Decided() {
		switch {
		case s.state.AdversaryCount() == 0:
			s.state.ScheduleWin(frame + t.WinDelay)
		case s.state.PlayerCount() == 0:
			s.state.ScheduleLose(frame + t.LoseDelay)
		}
	}

	s.announce(frame, outcomes)
}

func (s *OutcomeSystem) announce(frame int, outcomes *world.Outcomes) {
	for i := range s.announced {
		if s.announced[i] {
			continue
		}
		o := world.Outcome(i)
		due, ok := outcomes.Marker(o).Due()
		if !ok {
			continue
		}
		s.announced[i] = true
		s.log.Info("outcome scheduled",
			zap.Stringer("outcome", o),
			zap.Int("frame", frame),
			zap.Int("due", due),
		)
		event.Emit(s.bus, event.OutcomeScheduled{Outcome: o, Frame: frame, Due: due})
	}
}

package system

import (
	"time"

	coresys "github.com/gravshot/gravshot/internal/core/system"
	"github.com/gravshot/gravshot/internal/world"
)

// AdvanceSystem steps every live entity exactly once per tick.
// Phase 0 (Update). The live set is locked; entities may only queue
// adds and removes through the context they are handed.
type AdvanceSystem struct {
	state *world.State
}

func NewAdvanceSystem(state *world.State) *AdvanceSystem {
	return &AdvanceSystem{state: state}
}

func (s *AdvanceSystem) Phase() coresys.Phase { return coresys.PhaseUpdate }

func (s *AdvanceSystem) Update(_ time.Duration) {
	s.state.BeginAdvance()
	defer s.state.EndAdvance()

	for e := range s.state.Objects() {
		// Killed earlier this tick: its reactions must not fire.
		if s.state.PendingRemoval(e.ID()) {
			continue
		}
		e.Advance(s.state)
	}
}

package system

import (
	"time"

	coresys "github.com/gravshot/gravshot/internal/core/system"
	"github.com/gravshot/gravshot/internal/world"
)

// CleanupSystem applies the tick's deferred removals after adds have landed.
// Phase 2 (Cleanup).
type CleanupSystem struct {
	state *world.State
}

func NewCleanupSystem(state *world.State) *CleanupSystem {
	return &CleanupSystem{state: state}
}

func (s *CleanupSystem) Phase() coresys.Phase { return coresys.PhaseCleanup }

func (s *CleanupSystem) Update(_ time.Duration) {
	s.state.ApplyRemoves()
}

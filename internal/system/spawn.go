package system

import (
	"time"

	coresys "github.com/gravshot/gravshot/internal/core/system"
	"github.com/gravshot/gravshot/internal/world"
)

// SpawnSystem commits entities queued during the update pass, in queue order.
// Phase 1 (Spawn).
type SpawnSystem struct {
	state *world.State
}

func NewSpawnSystem(state *world.State) *SpawnSystem {
	return &SpawnSystem{state: state}
}

func (s *SpawnSystem) Phase() coresys.Phase { return coresys.PhaseSpawn }

func (s *SpawnSystem) Update(_ time.Duration) {
	s.state.ApplyAdds()
}

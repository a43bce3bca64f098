package system

import "time"

// Phase defines execution ordering within a single tick.
type Phase int

const (
	PhaseUpdate  Phase = iota // 0: advance every live entity; mutations are queued only
	PhaseSpawn                // 1: commit queued adds
	PhaseCleanup              // 2: destroy queued removals
	PhaseOutcome              // 3: fire due schedules, evaluate win/lose triggers
)

func (p Phase) String() string {
	switch p {
	case PhaseUpdate:
		return "update"
	case PhaseSpawn:
		return "spawn"
	case PhaseCleanup:
		return "cleanup"
	case PhaseOutcome:
		return "outcome"
	}
	return "unknown"
}

// System is the interface every per-tick system implements.
type System interface {
	Phase() Phase
	Update(dt time.Duration)
}

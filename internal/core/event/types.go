package event

import "github.com/gravshot/gravshot/internal/world"

// OutcomeScheduled is emitted when a marker is first set.
type OutcomeScheduled struct {
	Outcome world.Outcome
	Frame   int // frame on which the schedule was made
	Due     int // frame on which it fires
}

// OutcomeFired is emitted when a marker's due frame arrives.
type OutcomeFired struct {
	Outcome world.Outcome
	Frame   int
}

// LevelReset asks the shell to rebuild the current level.
type LevelReset struct {
	Frame int
}

// LevelAdvance asks the shell to move on to the next level.
type LevelAdvance struct {
	Frame int
}

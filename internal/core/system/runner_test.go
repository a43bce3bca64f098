package system

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type recorder struct {
	name  string
	phase Phase
	log   *[]string
}

func (r recorder) Phase() Phase { return r.phase }

func (r recorder) Update(time.Duration) { *r.log = append(*r.log, r.name) }

func TestRunnerOrdersByPhaseThenRegistration(t *testing.T) {
	var log []string
	r := NewRunner()
	r.Register(recorder{"outcome", PhaseOutcome, &log})
	r.Register(recorder{"cleanup", PhaseCleanup, &log})
	r.Register(recorder{"update-a", PhaseUpdate, &log})
	r.Register(recorder{"spawn", PhaseSpawn, &log})
	r.Register(recorder{"update-b", PhaseUpdate, &log})

	r.Tick(16 * time.Millisecond)
	assert.Equal(t, []string{"update-a", "update-b", "spawn", "cleanup", "outcome"}, log)

	log = log[:0]
	r.TickPhase(PhaseUpdate, 0)
	assert.Equal(t, []string{"update-a", "update-b"}, log)
}

func TestPhaseString(t *testing.T) {
	assert.Equal(t, "cleanup", PhaseCleanup.String())
	assert.Equal(t, "unknown", Phase(42).String())
}

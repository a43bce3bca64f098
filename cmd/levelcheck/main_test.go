package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gravshot/gravshot/internal/data"
	"github.com/gravshot/gravshot/internal/world"
)

func TestCheck(t *testing.T) {
	levels, err := data.ParseLevelTable([]byte(`
levels:
  - name: empty
    players: [{waypoints: [[160, 240]]}]
  - name: ambush
    players: [{waypoints: [[160, 240]]}]
    adversaries: { count: 1, radius: 5, speed: 10 }
  - name: standoff
    players: [{waypoints: [[160, 240]]}]
    adversaries: { count: 1, radius: 5, speed: 0 }
`))
	require.NoError(t, err)
	tuning := world.DefaultTuning()

	win := check(levels.Get(1), 1000, 1)
	assert.Equal(t, "win", win.Outcome)
	assert.Equal(t, 1+tuning.WinDelay, win.DecidedAt)
	assert.Equal(t, win.DecidedAt+tuning.WinDuration, win.Frames)

	lose := check(levels.Get(2), 1000, 1)
	assert.Equal(t, "lose", lose.Outcome)
	assert.Equal(t, 1, lose.Adversaries)

	stuck := check(levels.Get(3), 200, 1)
	assert.Equal(t, "undecided", stuck.Outcome)
	assert.Equal(t, 200, stuck.Frames)
	assert.Zero(t, stuck.DecidedAt)
}

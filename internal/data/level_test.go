package data

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gravshot/gravshot/internal/vmath"
)

const oneLevel = `
levels:
  - name: probe
    instructions: "Café"
    gravity_arrow_alpha: 200
    path_projection_alpha: 100
    path_projection_count: 12
    players:
      - waypoints: [[0, 0], [10, 0]]
        speed: 10
        init_rotation: 90
        rotation_step: 1
        fire_interval: 30
        fire_velocity: [0, -4]
        projectile: { radius: 3, gravity_factor: 0.5 }
    adversaries: { count: 2, radius: 5, speed: 2 }
`

func TestParseLevelTable(t *testing.T) {
	tbl, err := ParseLevelTable([]byte(oneLevel))
	require.NoError(t, err)
	require.Equal(t, 1, tbl.Count())

	l := tbl.Get(1)
	require.NotNil(t, l)
	assert.Same(t, l, tbl.ByName("probe"))
	assert.Equal(t, 1, l.Number)
	assert.Equal(t, "Café", l.Instructions)
	assert.Equal(t, uint8(200), l.GravityArrowAlpha)
	assert.Equal(t, uint8(100), l.PathProjectionAlpha)
	assert.Equal(t, 12, l.PathProjectionCount)
	assert.Equal(t, 2, l.AdversaryCount)
	assert.Equal(t, 5.0, l.Adversary.Radius)

	require.Len(t, l.Players, 1)
	p := l.Players[0]
	assert.Equal(t, []vmath.Vec2{vmath.V(0, 0), vmath.V(10, 0)}, p.Waypoints)
	assert.Equal(t, vmath.V(0, -4), p.FireVelocity)
	assert.Equal(t, 0.5, p.Projectile.GravityFactor)

	assert.Nil(t, tbl.Get(0))
	assert.Nil(t, tbl.Get(2))
}

func TestParseLevelTableErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"empty", "levels: []", "no levels"},
		{"syntax", "levels: [", "parse level list"},
		{"no players", "levels: [{name: a}]", "no players"},
		{"no waypoints", "levels: [{name: a, players: [{speed: 1}]}]", "no waypoints"},
		{"alpha", "levels: [{name: a, gravity_arrow_alpha: 256, players: [{waypoints: [[0, 0]]}]}]", "gravity_arrow_alpha 256"},
		{"duplicate", "levels: [{name: a, players: [{waypoints: [[0, 0]]}]}, {name: a, players: [{waypoints: [[0, 0]]}]}]", "duplicate name"},
		{"too many players", "levels: [{name: a, players: [" + strings.TrimSuffix(strings.Repeat("{waypoints: [[0, 0]]}, ", 5), ", ") + "]}]", "at most 4"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseLevelTable([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestUnnamedLevelsGetNumberedNames(t *testing.T) {
	tbl, err := ParseLevelTable([]byte("levels: [{players: [{waypoints: [[0, 0]]}]}, {players: [{waypoints: [[1, 1]]}]}]"))
	require.NoError(t, err)
	assert.Equal(t, "level-2", tbl.Get(2).Name)
}

func TestInstructionWidth(t *testing.T) {
	_, err := instructions(strings.Repeat("x", MaxInstructionWidth))
	assert.NoError(t, err)

	_, err = instructions(strings.Repeat("x", MaxInstructionWidth+1))
	assert.Error(t, err)

	// wide runes count double
	_, err = instructions(strings.Repeat("あ", MaxInstructionWidth/2))
	assert.NoError(t, err)
	_, err = instructions(strings.Repeat("あ", MaxInstructionWidth/2+1))
	assert.Error(t, err)

	got, err := instructions("Cafe\u0301")
	require.NoError(t, err)
	assert.Equal(t, "Caf\u00e9", got)

	// width is per line
	_, err = instructions(strings.Repeat("x", 40) + "\n" + strings.Repeat("x", 40))
	assert.NoError(t, err)
}

func TestLoadLevelTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "levels.yaml")
	require.NoError(t, os.WriteFile(path, []byte(oneLevel), 0o644))

	tbl, err := LoadLevelTable(path)
	require.NoError(t, err)
	assert.Equal(t, 1, tbl.Count())

	_, err = LoadLevelTable(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "read level list")
}

func TestShippedLevels(t *testing.T) {
	tbl, err := LoadLevelTable(filepath.Join("..", "..", "data", "yaml", "levels.yaml"))
	require.NoError(t, err)
	assert.Equal(t, 5, tbl.Count())
	assert.Empty(t, tbl.Get(5).Instructions)
}

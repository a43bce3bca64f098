package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gravshot/gravshot/internal/world"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gravshot.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadKeepsDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
[simulation]
seed = 99

[tuning]
lose_delay = 12
win_color = 0x11223344
`))
	require.NoError(t, err)

	assert.Equal(t, int64(99), cfg.Simulation.Seed)
	assert.Equal(t, 16*time.Millisecond, cfg.Simulation.TickRate)
	assert.Equal(t, 1, cfg.Simulation.StartLevel)
	assert.Equal(t, 12, cfg.Tuning.LoseDelay)
	assert.Equal(t, world.DefaultTuning().WinDelay, cfg.Tuning.WinDelay)
	assert.Equal(t, world.RGBA(0x11, 0x22, 0x33, 0x44), cfg.Tuning.WinColor)
	assert.Equal(t, "fixed", cfg.Input.Source)
	assert.Equal(t, "console", cfg.Logging.Format)
}

func TestLoadDuration(t *testing.T) {
	cfg, err := Load(writeConfig(t, "[simulation]\ntick_rate = \"33ms\"\n"))
	require.NoError(t, err)
	assert.Equal(t, 33*time.Millisecond, cfg.Simulation.TickRate)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorContains(t, err, "read config")

	_, err = Load(writeConfig(t, "[simulation\n"))
	assert.ErrorContains(t, err, "parse config")

	_, err = Load(writeConfig(t, "[tuning]\nwin_delay = 0\n[input]\nsource = \"mouse\"\n"))
	require.Error(t, err)
	assert.ErrorContains(t, err, "tuning.win_delay must be at least 1")
	assert.ErrorContains(t, err, `input.source "mouse" unknown`)
}

func TestValidateDefaults(t *testing.T) {
	assert.NoError(t, defaults().Validate())
}

func TestShippedConfig(t *testing.T) {
	cfg, err := Load(filepath.Join("..", "..", "config", "gravshot.toml"))
	require.NoError(t, err)
	assert.Equal(t, "sway", cfg.Input.Source)
	assert.Equal(t, world.RGBA(0xff, 0, 0, 0x40), cfg.Tuning.LoseColor)
}

func TestPath(t *testing.T) {
	t.Setenv(EnvPath, "")
	assert.Equal(t, DefaultPath, Path())
	t.Setenv(EnvPath, "/etc/gravshot.toml")
	assert.Equal(t, "/etc/gravshot.toml", Path())
}

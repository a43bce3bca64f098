package scripting

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/gravshot/gravshot/internal/vmath"
)

const hooks = `
levels["probe"] = {
  instructions = function(ctx)
    if ctx.adversaries == 1 then return "last one" end
    return nil
  end,
  gravity_arrow_alpha = function(ctx)
    return math.max(0, ctx.default - ctx.frame)
  end,
  path_projection_count = function(ctx) return false end,
  path_projection_alpha = function(ctx) error("boom") end,
}

levels["quiet"] = {
  instructions = function(ctx) return false end,
}

function tilt(frame)
  return frame / 10, -1
end
`

func TestLevelHooks(t *testing.T) {
	e, err := NewEngineFromString(hooks, zaptest.NewLogger(t))
	require.NoError(t, err)
	defer e.Close()

	ctx := HookContext{Level: "probe", Number: 1, Frame: 40, Players: 1, Adversaries: 3}

	assert.True(t, e.HasLevelHook("probe", HookInstructions))
	assert.False(t, e.HasLevelHook("other", HookInstructions))

	assert.Equal(t, "aim", e.LevelString("probe", HookInstructions, ctx, "aim"))
	ctx.Adversaries = 1
	assert.Equal(t, "last one", e.LevelString("probe", HookInstructions, ctx, "aim"))
	assert.Empty(t, e.LevelString("quiet", HookInstructions, ctx, "aim"))

	assert.Equal(t, 215, e.LevelInt("probe", HookGravityArrowAlpha, ctx, 255))
	assert.Equal(t, 7, e.LevelInt("probe", HookPathProjectionCount, ctx, 7), "non-number keeps default")
	assert.Equal(t, 9, e.LevelInt("probe", HookPathProjectionAlpha, ctx, 9), "error keeps default")
	assert.Equal(t, 3, e.LevelInt("missing", HookPathProjectionAlpha, ctx, 3))
}

func TestTilt(t *testing.T) {
	e, err := NewEngineFromString(hooks, zaptest.NewLogger(t))
	require.NoError(t, err)
	defer e.Close()

	require.True(t, e.HasTilt())
	v, ok := e.Tilt(5)
	require.True(t, ok)
	assert.Equal(t, vmath.V(0.5, -1), v)

	bare, err := NewEngineFromString("", zaptest.NewLogger(t))
	require.NoError(t, err)
	defer bare.Close()
	assert.False(t, bare.HasTilt())
	_, ok = bare.Tilt(1)
	assert.False(t, ok)
}

func TestNewEngineLoadsDirs(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "core"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "levels"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "core", "util.lua"), []byte("function half(x) return x / 2 end"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "levels", "probe.lua"), []byte(`
levels["probe"] = { gravity_arrow_alpha = function(ctx) return half(ctx.default) end }
`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "levels", "notes.txt"), []byte("not lua"), 0o644))

	e, err := NewEngine(dir, zaptest.NewLogger(t))
	require.NoError(t, err)
	defer e.Close()
	assert.Equal(t, 100, e.LevelInt("probe", HookGravityArrowAlpha, HookContext{}, 200))
}

func TestNewEngineBadScript(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "input"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "input", "bad.lua"), []byte("function ("), 0o644))

	_, err := NewEngine(dir, zaptest.NewLogger(t))
	assert.ErrorContains(t, err, "load input scripts")
}

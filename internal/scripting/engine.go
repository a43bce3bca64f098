package scripting

import (
	"fmt"
	"os"
	"path/filepath"

	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"

	"github.com/gravshot/gravshot/internal/vmath"
)

// Engine wraps a single gopher-lua VM for level hooks and scripted tilt.
// Single-goroutine access only (simulation loop).
type Engine struct {
	vm  *lua.LState
	log *zap.Logger
}

// NewEngine creates a Lua engine and loads all scripts from the given directory.
// Subdirectories load in a fixed order: core helpers first, then levels, then input.
func NewEngine(scriptsDir string, log *zap.Logger) (*Engine, error) {
	if log == nil {
		log = zap.NewNop()
	}
	vm := lua.NewState(lua.Options{
		SkipOpenLibs: false,
	})

	vm.SetGlobal("API_VERSION", lua.LNumber(1))
	vm.SetGlobal("levels", vm.NewTable())

	e := &Engine{vm: vm, log: log}

	for _, sub := range []string{"core", "levels", "input"} {
		p := filepath.Join(scriptsDir, sub)
		if err := e.loadDir(p); err != nil {
			vm.Close()
			return nil, fmt.Errorf("load %s scripts: %w", sub, err)
		}
	}

	return e, nil
}

// NewEngineFromString builds an engine from a single chunk of Lua source.
func NewEngineFromString(src string, log *zap.Logger) (*Engine, error) {
	if log == nil {
		log = zap.NewNop()
	}
	vm := lua.NewState()
	vm.SetGlobal("API_VERSION", lua.LNumber(1))
	vm.SetGlobal("levels", vm.NewTable())
	if err := vm.DoString(src); err != nil {
		vm.Close()
		return nil, fmt.Errorf("load lua source: %w", err)
	}
	return &Engine{vm: vm, log: log}, nil
}

// loadDir loads all .lua files in a directory.
func (e *Engine) loadDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // skip missing dirs
		}
		return err
	}
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".lua" {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if err := e.vm.DoFile(path); err != nil {
			return fmt.Errorf("load %s: %w", path, err)
		}
		e.log.Debug("loaded lua script", zap.String("file", path))
	}
	return nil
}

// Level hook names. Scripts register them as functions on levels["<name>"].
const (
	HookInstructions        = "instructions"
	HookGravityArrowAlpha   = "gravity_arrow_alpha"
	HookPathProjectionAlpha = "path_projection_alpha"
	HookPathProjectionCount = "path_projection_count"
)

// HookContext is the snapshot handed to a level hook.
type HookContext struct {
	Level       string
	Number      int
	Frame       int
	Players     int
	Adversaries int
}

func (e *Engine) hookTable(ctx HookContext, def lua.LValue) *lua.LTable {
	t := e.vm.NewTable()
	t.RawSetString("level", lua.LString(ctx.Level))
	t.RawSetString("number", lua.LNumber(ctx.Number))
	t.RawSetString("frame", lua.LNumber(ctx.Frame))
	t.RawSetString("players", lua.LNumber(ctx.Players))
	t.RawSetString("adversaries", lua.LNumber(ctx.Adversaries))
	t.RawSetString("default", def)
	return t
}

// levelHook returns levels[level][hook] if it is a function.
func (e *Engine) levelHook(level, hook string) (*lua.LFunction, bool) {
	levels, ok := e.vm.GetGlobal("levels").(*lua.LTable)
	if !ok {
		return nil, false
	}
	hooks, ok := levels.RawGetString(level).(*lua.LTable)
	if !ok {
		return nil, false
	}
	fn, ok := hooks.RawGetString(hook).(*lua.LFunction)
	return fn, ok
}

// HasLevelHook reports whether the scripts override hook for level.
func (e *Engine) HasLevelHook(level, hook string) bool {
	_, ok := e.levelHook(level, hook)
	return ok
}

func (e *Engine) callHook(level, hook string, ctx HookContext, def lua.LValue) (lua.LValue, bool) {
	fn, ok := e.levelHook(level, hook)
	if !ok {
		return lua.LNil, false
	}
	if err := e.vm.CallByParam(lua.P{
		Fn:      fn,
		NRet:    1,
		Protect: true,
	}, e.hookTable(ctx, def)); err != nil {
		e.log.Error("lua level hook error",
			zap.String("level", level),
			zap.String("hook", hook),
			zap.Error(err),
		)
		return lua.LNil, false
	}
	result := e.vm.Get(-1)
	e.vm.Pop(1)
	return result, true
}

// LevelInt runs an integer hook. A missing hook, an error or a non-number
// result yields def.
func (e *Engine) LevelInt(level, hook string, ctx HookContext, def int) int {
	v, ok := e.callHook(level, hook, ctx, lua.LNumber(def))
	if !ok {
		return def
	}
	n, ok := v.(lua.LNumber)
	if !ok {
		return def
	}
	return int(n)
}

// LevelString runs a string hook. Returning nil keeps def; returning false
// means "no text".
func (e *Engine) LevelString(level, hook string, ctx HookContext, def string) string {
	v, ok := e.callHook(level, hook, ctx, lua.LString(def))
	if !ok {
		return def
	}
	switch v := v.(type) {
	case lua.LString:
		return string(v)
	case lua.LBool:
		if !bool(v) {
			return ""
		}
	}
	return def
}

// HasTilt reports whether the scripts define tilt(frame).
func (e *Engine) HasTilt() bool {
	_, ok := e.vm.GetGlobal("tilt").(*lua.LFunction)
	return ok
}

// Tilt calls the Lua tilt(frame) function, which returns the raw sensor
// reading as two numbers. ok is false when the function is missing or fails.
func (e *Engine) Tilt(frame int) (vmath.Vec2, bool) {
	fn := e.vm.GetGlobal("tilt")
	if fn == lua.LNil {
		return vmath.Vec2{}, false
	}

	if err := e.vm.CallByParam(lua.P{
		Fn:      fn,
		NRet:    2,
		Protect: true,
	}, lua.LNumber(frame)); err != nil {
		e.log.Error("lua tilt error", zap.Int("frame", frame), zap.Error(err))
		return vmath.Vec2{}, false
	}

	x := e.vm.Get(-2)
	y := e.vm.Get(-1)
	e.vm.Pop(2)
	return vmath.V(float64(lua.LVAsNumber(x)), float64(lua.LVAsNumber(y))), true
}

// Close shuts down the Lua VM.
func (e *Engine) Close() {
	e.vm.Close()
}

// Package level turns authored level rules into a populated world and
// answers the per-frame metadata a presenter needs.
package level

import (
	"math"
	"math/rand/v2"

	"github.com/cespare/xxhash/v2"

	"github.com/gravshot/gravshot/internal/data"
	"github.com/gravshot/gravshot/internal/scripting"
	"github.com/gravshot/gravshot/internal/vmath"
	"github.com/gravshot/gravshot/internal/world"
)

// Level populates a fresh State once, before its first tick, and describes
// how the HUD should look while it runs.
type Level interface {
	Number() int
	Name() string
	Populate(s *world.State, rng *rand.Rand)

	TextRotation(s *world.State) float64
	// Instructions returns the text to show, or "" for none.
	Instructions(s *world.State) string
	GravityArrowAlpha(s *world.State) uint8
	PathProjectionAlpha(s *world.State) uint8
	PathProjectionCount(s *world.State) int
}

// Rand returns the level's deterministic generator. The same seed and
// level name always populate the same world.
func Rand(seed int64, name string) *rand.Rand {
	h := xxhash.Sum64String(name)
	return rand.New(rand.NewPCG(h^uint64(seed), h))
}

// Generic is a Level driven entirely by data.LevelRules, with optional Lua
// overrides for the metadata hooks.
type Generic struct {
	rules *data.LevelRules
	hooks *scripting.Engine
}

var _ Level = (*Generic)(nil)

// NewGeneric builds a level from rules. hooks may be nil.
func NewGeneric(rules *data.LevelRules, hooks *scripting.Engine) *Generic {
	return &Generic{rules: rules, hooks: hooks}
}

func (g *Generic) Number() int             { return g.rules.Number }
func (g *Generic) Name() string            { return g.rules.Name }
func (g *Generic) Rules() *data.LevelRules { return g.rules }

// Populate adds the level's players in authored order, then its adversaries
// at a random whole-degree angle and whole-unit distance from screen center.
func (g *Generic) Populate(s *world.State, rng *rand.Rand) {
	for _, pr := range g.rules.Players {
		s.Add(world.NewPlayer(pr))
	}

	t := s.Tuning()
	center := s.Bounds().Center()
	spread := t.AdversaryMaxDist - t.AdversaryMinDist
	for range g.rules.AdversaryCount {
		rad := float64(rng.IntN(360)) * math.Pi / 180
		dist := t.AdversaryMinDist
		if spread > 0 {
			dist += rng.IntN(spread)
		}
		offset := vmath.V(float64(dist)*math.Cos(rad), float64(dist)*math.Sin(rad))
		s.Add(world.NewAdversary(g.rules.Adversary, center.Add(offset)))
	}
}

// TextRotation follows the first live player, so the title turns with the craft.
func (g *Generic) TextRotation(s *world.State) float64 {
	if p, ok := s.FirstPlayer(); ok {
		return p.Rotation()
	}
	return 0
}

func (g *Generic) Instructions(s *world.State) string {
	if g.hooks == nil {
		return g.rules.Instructions
	}
	return g.hooks.LevelString(g.rules.Name, scripting.HookInstructions, g.hookContext(s), g.rules.Instructions)
}

func (g *Generic) GravityArrowAlpha(s *world.State) uint8 {
	return g.alpha(s, scripting.HookGravityArrowAlpha, g.rules.GravityArrowAlpha)
}

func (g *Generic) PathProjectionAlpha(s *world.State) uint8 {
	return g.alpha(s, scripting.HookPathProjectionAlpha, g.rules.PathProjectionAlpha)
}

func (g *Generic) PathProjectionCount(s *world.State) int {
	if g.hooks == nil {
		return g.rules.PathProjectionCount
	}
	n := g.hooks.LevelInt(g.rules.Name, scripting.HookPathProjectionCount, g.hookContext(s), g.rules.PathProjectionCount)
	return max(n, 0)
}

func (g *Generic) alpha(s *world.State, hook string, def uint8) uint8 {
	if g.hooks == nil {
		return def
	}
	v := g.hooks.LevelInt(g.rules.Name, hook, g.hookContext(s), int(def))
	return uint8(min(max(v, 0), 255))
}

func (g *Generic) hookContext(s *world.State) scripting.HookContext {
	return scripting.HookContext{
		Level:       g.rules.Name,
		Number:      g.rules.Number,
		Frame:       s.Frame(),
		Players:     s.PlayerCount(),
		Adversaries: s.AdversaryCount(),
	}
}

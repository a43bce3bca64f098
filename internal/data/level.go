package data

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
	"gopkg.in/yaml.v3"

	"github.com/gravshot/gravshot/internal/vmath"
	"github.com/gravshot/gravshot/internal/world"
)

const (
	// MaxPlayers is the number of craft a level may field.
	MaxPlayers = 4
	// MaxInstructionWidth is the widest instruction line, in terminal columns.
	MaxInstructionWidth = 48
)

// Point is a YAML [x, y] pair.
type Point [2]float64

func (p Point) Vec() vmath.Vec2 { return vmath.V(p[0], p[1]) }

// ProjectileEntry is the shot fired by one player craft.
type ProjectileEntry struct {
	Radius        float64 `yaml:"radius"`
	GravityFactor float64 `yaml:"gravity_factor"`
}

// PlayerEntry is one player craft of a level.
type PlayerEntry struct {
	Waypoints    []Point         `yaml:"waypoints"`
	Speed        float64         `yaml:"speed"`
	InitRotation float64         `yaml:"init_rotation"`
	RotationStep float64         `yaml:"rotation_step"`
	FireInterval int             `yaml:"fire_interval"`
	FireVelocity Point           `yaml:"fire_velocity"`
	Projectile   ProjectileEntry `yaml:"projectile"`
}

// AdversaryEntry is the adversary wave of a level.
type AdversaryEntry struct {
	Count  int     `yaml:"count"`
	Radius float64 `yaml:"radius"`
	Speed  float64 `yaml:"speed"`
}

// LevelEntry is one level as authored in levels.yaml.
type LevelEntry struct {
	Name                string         `yaml:"name"`
	Instructions        string         `yaml:"instructions"`
	GravityArrowAlpha   int            `yaml:"gravity_arrow_alpha"`
	PathProjectionAlpha int            `yaml:"path_projection_alpha"`
	PathProjectionCount int            `yaml:"path_projection_count"`
	Players             []PlayerEntry  `yaml:"players"`
	Adversaries         AdversaryEntry `yaml:"adversaries"`
}

// LevelRules is a validated level, converted to simulation rules. The rules
// are shared by every Simulation built for the level and never mutated.
type LevelRules struct {
	Number              int // 1-based
	Name                string
	Instructions        string // NFC-normalized, empty for none
	GravityArrowAlpha   uint8
	PathProjectionAlpha uint8
	PathProjectionCount int
	Players             []*world.PlayerRules
	AdversaryCount      int
	Adversary           *world.AdversaryRules
}

// LevelTable holds the ordered level list.
type LevelTable struct {
	levels []*LevelRules
	byName map[string]*LevelRules
}

// LoadLevelTable loads levels.yaml.
func LoadLevelTable(path string) (*LevelTable, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read level list: %w", err)
	}
	return ParseLevelTable(raw)
}

// ParseLevelTable parses a YAML level list.
func ParseLevelTable(raw []byte) (*LevelTable, error) {
	var file struct {
		Levels []LevelEntry `yaml:"levels"`
	}
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse level list: %w", err)
	}
	if len(file.Levels) == 0 {
		return nil, errors.New("parse level list: no levels")
	}

	t := &LevelTable{
		levels: make([]*LevelRules, 0, len(file.Levels)),
		byName: make(map[string]*LevelRules, len(file.Levels)),
	}
	for i := range file.Levels {
		e := &file.Levels[i]
		r, err := e.rules(i + 1)
		if err != nil {
			return nil, fmt.Errorf("level %d (%s): %w", i+1, e.Name, err)
		}
		if _, dup := t.byName[r.Name]; dup {
			return nil, fmt.Errorf("level %d: duplicate name %q", i+1, r.Name)
		}
		t.levels = append(t.levels, r)
		t.byName[r.Name] = r
	}
	return t, nil
}

// Get returns level n (1-based), or nil past either end.
func (t *LevelTable) Get(n int) *LevelRules {
	if n < 1 || n > len(t.levels) {
		return nil
	}
	return t.levels[n-1]
}

// ByName returns a level by name, or nil.
func (t *LevelTable) ByName(name string) *LevelRules {
	return t.byName[name]
}

// Count returns the number of levels loaded.
func (t *LevelTable) Count() int {
	return len(t.levels)
}

func (e *LevelEntry) rules(number int) (*LevelRules, error) {
	name := e.Name
	if name == "" {
		name = fmt.Sprintf("level-%d", number)
	}
	switch n := len(e.Players); {
	case n == 0:
		return nil, errors.New("no players")
	case n > MaxPlayers:
		return nil, fmt.Errorf("%d players, at most %d", n, MaxPlayers)
	}
	if e.Adversaries.Count < 0 {
		return nil, fmt.Errorf("negative adversary count %d", e.Adversaries.Count)
	}
	if e.PathProjectionCount < 0 {
		return nil, fmt.Errorf("negative path projection count %d", e.PathProjectionCount)
	}
	arrow, err := alpha("gravity_arrow_alpha", e.GravityArrowAlpha)
	if err != nil {
		return nil, err
	}
	path, err := alpha("path_projection_alpha", e.PathProjectionAlpha)
	if err != nil {
		return nil, err
	}
	text, err := instructions(e.Instructions)
	if err != nil {
		return nil, err
	}

	r := &LevelRules{
		Number:              number,
		Name:                name,
		Instructions:        text,
		GravityArrowAlpha:   arrow,
		PathProjectionAlpha: path,
		PathProjectionCount: e.PathProjectionCount,
		Players:             make([]*world.PlayerRules, 0, len(e.Players)),
		AdversaryCount:      e.Adversaries.Count,
		Adversary: &world.AdversaryRules{
			Radius: e.Adversaries.Radius,
			Speed:  e.Adversaries.Speed,
		},
	}
	for i := range e.Players {
		p, err := e.Players[i].rules()
		if err != nil {
			return nil, fmt.Errorf("player %d: %w", i+1, err)
		}
		r.Players = append(r.Players, p)
	}
	return r, nil
}

func (p *PlayerEntry) rules() (*world.PlayerRules, error) {
	if len(p.Waypoints) == 0 {
		return nil, errors.New("no waypoints")
	}
	if p.FireInterval < 0 {
		return nil, fmt.Errorf("negative fire interval %d", p.FireInterval)
	}
	wps := make([]vmath.Vec2, len(p.Waypoints))
	for i, w := range p.Waypoints {
		wps[i] = w.Vec()
	}
	return &world.PlayerRules{
		Waypoints:    wps,
		Speed:        p.Speed,
		InitRotation: p.InitRotation,
		RotationStep: p.RotationStep,
		FireInterval: p.FireInterval,
		FireVelocity: p.FireVelocity.Vec(),
		Projectile: &world.ProjectileRules{
			Radius:        p.Projectile.Radius,
			GravityFactor: p.Projectile.GravityFactor,
		},
	}, nil
}

func alpha(field string, v int) (uint8, error) {
	if v < 0 || v > 255 {
		return 0, fmt.Errorf("%s %d out of range 0-255", field, v)
	}
	return uint8(v), nil
}

// instructions normalizes s to NFC and checks every line fits the HUD.
// East Asian wide and fullwidth runes take two columns.
func instructions(s string) (string, error) {
	s = norm.NFC.String(s)
	cols, line := 0, 1
	for _, r := range s {
		if r == '\n' {
			cols, line = 0, line+1
			continue
		}
		switch width.LookupRune(r).Kind() {
		case width.EastAsianWide, width.EastAsianFullwidth:
			cols += 2
		default:
			cols++
		}
		if cols > MaxInstructionWidth {
			return "", fmt.Errorf("instructions line %d wider than %d columns", line, MaxInstructionWidth)
		}
	}
	return s, nil
}

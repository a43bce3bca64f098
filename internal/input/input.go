// Package input provides the acceleration sources a headless host can feed
// into a Simulation in place of a device sensor.
package input

import (
	"math"

	"github.com/gravshot/gravshot/internal/scripting"
	"github.com/gravshot/gravshot/internal/vmath"
	"github.com/gravshot/gravshot/internal/world"
)

// Source is an accelerometer that is sampled once per frame. Readings are in
// sensor space: y up, so an upright device reads about (0, -1).
type Source interface {
	world.Accelerometer
	// Update samples the source for the given frame, before the frame is advanced.
	Update(frame int)
}

// Fixed always reports the same reading.
type Fixed struct {
	Reading vmath.Vec2
}

func NewFixed(x, y float64) *Fixed { return &Fixed{Reading: vmath.V(x, y)} }

func (f *Fixed) Update(int)                       {}
func (f *Fixed) RawAcceleration() vmath.Vec2      { return f.Reading }
func (f *Fixed) OrientedAcceleration() vmath.Vec2 { return f.Reading }

// Sway rocks the device left and right around a base reading.
type Sway struct {
	Base      vmath.Vec2
	Amplitude float64
	Period    int // frames per full swing

	cur vmath.Vec2
}

func NewSway(base vmath.Vec2, amplitude float64, period int) *Sway {
	return &Sway{Base: base, Amplitude: amplitude, Period: period, cur: base}
}

func (s *Sway) Update(frame int) {
	if s.Period <= 0 {
		s.cur = s.Base
		return
	}
	phase := 2 * math.Pi * float64(frame%s.Period) / float64(s.Period)
	s.cur = s.Base.Add(vmath.V(s.Amplitude*math.Sin(phase), 0))
}

func (s *Sway) RawAcceleration() vmath.Vec2      { return s.cur }
func (s *Sway) OrientedAcceleration() vmath.Vec2 { return s.cur }

// Scripted reads the tilt from the Lua tilt(frame) function, falling back to
// a fixed reading when the script is missing or fails.
type Scripted struct {
	engine   *scripting.Engine
	fallback vmath.Vec2
	cur      vmath.Vec2
}

func NewScripted(engine *scripting.Engine, fallback vmath.Vec2) *Scripted {
	return &Scripted{engine: engine, fallback: fallback, cur: fallback}
}

func (s *Scripted) Update(frame int) {
	if v, ok := s.engine.Tilt(frame); ok {
		s.cur = v
		return
	}
	s.cur = s.fallback
}

func (s *Scripted) RawAcceleration() vmath.Vec2      { return s.cur }
func (s *Scripted) OrientedAcceleration() vmath.Vec2 { return s.cur }

package world

import "github.com/gravshot/gravshot/internal/vmath"

// EffectSpec is the linear animation of a circle from one state to another.
type EffectSpec struct {
	Duration   int // frames
	From, To   vmath.Vec2
	FromColor  Color
	ToColor    Color
	FromRadius float64
	ToRadius   float64
}

// Effect is a short-lived growing or shrinking circle. It removes itself
// once its duration has elapsed.
type Effect struct {
	base
	start int
	spec  EffectSpec
}

// NewEffect starts an effect on the given frame.
func NewEffect(frame int, spec EffectSpec) *Effect {
	return &Effect{base: base{pos: spec.From}, start: frame, spec: spec}
}

func (e *Effect) Kind() Kind       { return KindEffect }
func (e *Effect) Start() int       { return e.start }
func (e *Effect) Spec() EffectSpec { return e.spec }

// Expired reports whether the effect has outlived its duration on frame.
func (e *Effect) Expired(frame int) bool {
	return frame > e.start+e.spec.Duration
}

// Progress is the clamped interpolation factor for frame.
func (e *Effect) Progress(frame int) float64 {
	if e.spec.Duration <= 0 {
		return 1
	}
	f := float64(frame-e.start) / float64(e.spec.Duration)
	return min(max(f, 0), 1)
}

// At returns the interpolated center, radius and color for frame.
func (e *Effect) At(frame int) (vmath.Vec2, float64, Color) {
	f := e.Progress(frame)
	s := e.spec
	return s.From.Lerp(s.To, f), s.FromRadius*(1-f) + s.ToRadius*f, s.FromColor.Lerp(s.ToColor, f)
}

func (e *Effect) Advance(ctx Context) {
	frame := ctx.Frame()
	if e.Expired(frame) {
		ctx.Despawn(e.id)
		return
	}
	e.pos, _, _ = e.At(frame)
}

// CenterBurst is a full-screen circle used for the intro, win and lose
// transitions.
func CenterBurst(frame int, t *Tuning, duration int, color Color, fromRadius, toRadius float64) *Effect {
	c := t.Bounds().Center()
	return NewEffect(frame, EffectSpec{
		Duration:   duration,
		From:       c,
		To:         c,
		FromColor:  color,
		ToColor:    color,
		FromRadius: fromRadius,
		ToRadius:   toRadius,
	})
}

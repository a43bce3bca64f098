package vmath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeZero(t *testing.T) {
	n, l := Vec2{}.Normalize()
	assert.Equal(t, Vec2{}, n)
	assert.Zero(t, l)
}

func TestNormalize(t *testing.T) {
	n, l := V(3, 4).Normalize()
	assert.InDelta(t, 5, l, 1e-9)
	assert.InDelta(t, 0.6, n.X, 1e-9)
	assert.InDelta(t, 0.8, n.Y, 1e-9)
}

func TestRotate(t *testing.T) {
	r := V(1, 0).Rotate(90)
	assert.InDelta(t, 0, r.X, 1e-9)
	assert.InDelta(t, 1, r.Y, 1e-9)

	r = V(0, -4).Rotate(180)
	assert.InDelta(t, 0, r.X, 1e-9)
	assert.InDelta(t, 4, r.Y, 1e-9)
}

func TestToward(t *testing.T) {
	p := V(0, 0).Toward(V(10, 0), 4)
	assert.Equal(t, V(4, 0), p)

	// never overshoots
	p = V(0, 0).Toward(V(3, 0), 4)
	assert.Equal(t, V(3, 0), p)

	// degenerate displacement
	p = V(2, 2).Toward(V(2, 2), 4)
	assert.Equal(t, V(2, 2), p)
}

func TestCirclesOverlapThreshold(t *testing.T) {
	assert.True(t, CirclesOverlap(V(0, 0), 3, V(7.99, 0), 5))
	assert.False(t, CirclesOverlap(V(0, 0), 3, V(8, 0), 5))
}

func TestCircleInRect(t *testing.T) {
	screen := Screen(320, 480)
	assert.True(t, CircleInRect(V(-4, 10), 5, screen))
	assert.False(t, CircleInRect(V(-5, 10), 5, screen))
	assert.False(t, CircleInRect(V(100, 485), 5, screen))
	assert.True(t, CircleInRect(V(160, 240), 1, screen))
}

func TestCircleOutside(t *testing.T) {
	screen := Screen(100, 100)
	assert.False(t, CircleOutside(V(-12, 50), 2, 10, screen))
	assert.True(t, CircleOutside(V(-12.5, 50), 2, 10, screen))
	assert.True(t, CircleOutside(V(50, 112.5), 2, 10, screen))
}

func TestWrap(t *testing.T) {
	screen := Screen(100, 50)
	got := Wrap(V(-2, 25), 1, screen)
	assert.Equal(t, V(101, 25), got)

	got = Wrap(V(50, 52), 1, screen)
	assert.Equal(t, V(50, -1), got)

	got = Wrap(V(50, 25), 1, screen)
	assert.Equal(t, V(50, 25), got)
}

func TestLerp(t *testing.T) {
	m := V(0, 0).Lerp(V(10, -10), 0.25)
	require.InDelta(t, 2.5, m.X, 1e-9)
	require.InDelta(t, -2.5, m.Y, 1e-9)
	assert.False(t, math.IsNaN(Screen(10, 20).Center().X))
	assert.Equal(t, V(5, 10), Screen(10, 20).Center())
}

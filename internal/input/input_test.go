package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/gravshot/gravshot/internal/scripting"
	"github.com/gravshot/gravshot/internal/vmath"
)

func TestFixed(t *testing.T) {
	f := NewFixed(0.2, -1)
	f.Update(10)
	assert.Equal(t, vmath.V(0.2, -1), f.RawAcceleration())
	assert.Equal(t, f.RawAcceleration(), f.OrientedAcceleration())
}

func TestSway(t *testing.T) {
	s := NewSway(vmath.V(0, -1), 0.5, 40)

	s.Update(0)
	assert.InDelta(t, 0, s.RawAcceleration().X, 1e-9)

	s.Update(10)
	assert.InDelta(t, 0.5, s.RawAcceleration().X, 1e-9)
	assert.Equal(t, -1.0, s.RawAcceleration().Y)

	s.Update(30)
	assert.InDelta(t, -0.5, s.RawAcceleration().X, 1e-9)

	still := NewSway(vmath.V(0, -1), 0.5, 0)
	still.Update(7)
	assert.Equal(t, vmath.V(0, -1), still.RawAcceleration())
}

func TestScripted(t *testing.T) {
	e, err := scripting.NewEngineFromString(`
function tilt(frame)
  if frame > 2 then error("sensor lost") end
  return frame, -1
end`, zaptest.NewLogger(t))
	require.NoError(t, err)
	defer e.Close()

	s := NewScripted(e, vmath.V(0, -1))
	s.Update(2)
	assert.Equal(t, vmath.V(2, -1), s.RawAcceleration())

	s.Update(3)
	assert.Equal(t, vmath.V(0, -1), s.OrientedAcceleration())
}

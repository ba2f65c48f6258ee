package tween

import (
	"testing"

	"earthquake-explorer/internal/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-5

func TestCurveEndpoints(t *testing.T) {
	for _, c := range []Curve{Linear, QuadraticInOut} {
		assert.Equal(t, float32(0), c.Apply(0), c.String())
		assert.Equal(t, float32(1), c.Apply(1), c.String())
		assert.Equal(t, float32(0), c.Apply(-3), c.String())
		assert.Equal(t, float32(1), c.Apply(7), c.String())
	}
}

func TestLinearIsIdentity(t *testing.T) {
	for _, x := range []float32{0.1, 0.25, 0.5, 0.9} {
		assert.InDelta(t, x, Linear.Apply(x), tol)
	}
}

func TestQuadraticInOutShape(t *testing.T) {
	assert.InDelta(t, 0.5, QuadraticInOut.Apply(0.5), tol)
	assert.InDelta(t, 0.125, QuadraticInOut.Apply(0.25), tol)
	assert.InDelta(t, 0.875, QuadraticInOut.Apply(0.75), tol)
	// symmetric around the midpoint
	for _, x := range []float32{0.1, 0.2, 0.3, 0.4} {
		assert.InDelta(t, 1-QuadraticInOut.Apply(x), QuadraticInOut.Apply(1-x), tol)
	}
}

func TestParseCurve(t *testing.T) {
	c, err := ParseCurve("quadratic-in-out")
	require.NoError(t, err)
	assert.Equal(t, QuadraticInOut, c)

	_, err = ParseCurve("bounce")
	assert.Error(t, err)

	var u Curve
	require.NoError(t, u.UnmarshalText([]byte("linear")))
	assert.Equal(t, Linear, u)
	b, err := QuadraticInOut.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "quadratic-in-out", string(b))
}

func TestTweenSample(t *testing.T) {
	tw := New(geom.V3(0, 0, 0), geom.V3(10, 20, -10), 1, Linear)
	assert.Equal(t, geom.V3(0, 0, 0), tw.Sample())

	half := tw.Advance(0.5)
	assert.InDelta(t, 5, half.Sample().X, tol)
	assert.InDelta(t, 10, half.Sample().Y, tol)
	assert.InDelta(t, -5, half.Sample().Z, tol)
	assert.False(t, half.Done())

	// receiver is not modified
	assert.Equal(t, float32(0), tw.Elapsed)

	end := half.Advance(0.75)
	assert.True(t, end.Done())
	assert.Equal(t, geom.V3(10, 20, -10), end.Sample())
}

func TestTweenZeroDuration(t *testing.T) {
	tw := New(geom.V3(1, 1, 1), geom.V3(2, 2, 2), 0, QuadraticInOut)
	assert.True(t, tw.Done())
	assert.Equal(t, geom.V3(2, 2, 2), tw.Sample())
}

func TestSlotRunsToCompletion(t *testing.T) {
	var s Slot
	_, _, ok := s.Advance(0.1)
	assert.False(t, ok, "empty slot produces no sample")

	s = s.Start(New(geom.V3(0, 0, 0), geom.V3(0, 0, 10), 1, QuadraticInOut))
	require.True(t, s.Active())

	var v geom.Vec3
	for i := 0; i < 59; i++ {
		s, v, ok = s.Advance(1.0 / 60)
		require.True(t, ok)
	}
	assert.True(t, s.Active())
	assert.Less(t, v.Z, float32(10))

	s, v, ok = s.Advance(1.0 / 30)
	require.True(t, ok)
	assert.Equal(t, geom.V3(0, 0, 10), v)
	assert.False(t, s.Active())
}

func TestSlotStartSupersedes(t *testing.T) {
	var s Slot
	s = s.Start(New(geom.V3(0, 0, 0), geom.V3(0, 0, 10), 1, Linear))
	s, _, _ = s.Advance(0.5)

	s = s.Start(New(geom.V3(0, 0, 5), geom.V3(0, 10, 5), 1, Linear))
	cur, ok := s.Current()
	require.True(t, ok)
	assert.Equal(t, float32(0), cur.Elapsed)
	assert.Equal(t, geom.V3(0, 10, 5), cur.To)

	s, v, _ := s.Advance(1)
	assert.Equal(t, geom.V3(0, 10, 5), v)
	assert.False(t, s.Active())
}

package physics

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/lshoek/shymirror/internal/core/observability/log"
)

const tol = 1e-5

var samples = []Vec2{
	New(0, 0),
	New(1, 2),
	New(-3.5, 4.25),
	New(1e-3, -7),
	New(100, 0.5),
}

func TestZeroValue(t *testing.T) {
	var v Vec2
	assert.Equal(t, Zero(), v)
	assert.Equal(t, New(0, 0), v)
}

func TestAddZeroIsIdentity(t *testing.T) {
	for _, a := range samples {
		assert.Equal(t, a, Add(a, Zero()))
	}
}

func TestSubtractUndoesAdd(t *testing.T) {
	for _, a := range samples {
		for _, b := range samples {
			got := Subtract(Add(a, b), b)
			assert.InDelta(t, a.X, got.X, 1e-3)
			assert.InDelta(t, a.Y, got.Y, 1e-3)
		}
	}
}

func TestNormalize(t *testing.T) {
	for _, a := range samples {
		if a == Zero() {
			continue
		}
		assert.InDelta(t, 1.0, Magnitude(Normalize(a)), tol, "normalize %v", a)
	}
	assert.Equal(t, Zero(), Normalize(Zero()))
}

func TestMagnitudeNearFloat32Limit(t *testing.T) {
	big := New(3e38, 3e38)
	assert.False(t, math.IsInf(float64(Magnitude(New(2e19, 2e19))), 0))

	n := Normalize(big)
	assert.InDelta(t, 1.0, Magnitude(n), tol)
	assert.InDelta(t, math.Sqrt2/2, n.X, tol)
	assert.InDelta(t, math.Sqrt2/2, n.Y, tol)

	v := big
	v.LimitSelf(5)
	assert.InDelta(t, 5, Magnitude(v), 1e-4)
}

func TestDotMatchesMagnitude(t *testing.T) {
	for _, a := range samples {
		m := Magnitude(a)
		assert.InDelta(t, m*m, Dot(a, a), 1e-2)
	}
}

func TestMagnitudeAgainstGonum(t *testing.T) {
	for _, a := range samples {
		assert.InDelta(t, r2.Norm(ToR2(a)), Magnitude(a), 1e-4)
		want := FromR2(r2.Unit(ToR2(a)))
		if a == Zero() {
			// gonum divides by zero here; we guard it.
			assert.Equal(t, Zero(), Normalize(a))
			continue
		}
		assert.True(t, Equal(want, Normalize(a), tol), "unit %v", a)
	}
}

func TestMutatingOps(t *testing.T) {
	v := New(1, 2)
	v.AddSelf(New(3, 4))
	assert.Equal(t, New(4, 6), v)

	v.SubtractSelf(New(1, 1))
	assert.Equal(t, New(3, 5), v)

	v.ScaleSelf(2)
	assert.Equal(t, New(6, 10), v)

	require.NoError(t, v.DivideSelf(2))
	assert.Equal(t, New(3, 5), v)
}

func TestDivide(t *testing.T) {
	got, err := Divide(New(4, 2), 2)
	require.NoError(t, err)
	assert.Equal(t, New(2, 1), got)

	got, err = Divide(New(4, 2), 0)
	assert.ErrorIs(t, err, ErrDivisionByZero)
	assert.Equal(t, Zero(), got)
}

func TestDivideSelfByZeroKeepsValue(t *testing.T) {
	v := New(4, 2)
	err := v.DivideSelf(0)
	assert.ErrorIs(t, err, ErrDivisionByZero)
	assert.Equal(t, New(4, 2), v)
}

func TestSetMagnitudeSelf(t *testing.T) {
	v := New(3, 4)
	v.SetMagnitudeSelf(10)
	assert.InDelta(t, 6, v.X, tol)
	assert.InDelta(t, 8, v.Y, tol)

	z := Zero()
	z.SetMagnitudeSelf(42)
	assert.Equal(t, Zero(), z)
}

func TestLimitSelf(t *testing.T) {
	v := New(6, 8) // magnitude 10
	dir := Normalize(v)
	v.LimitSelf(5)
	assert.InDelta(t, 5, Magnitude(v), tol)
	assert.True(t, Equal(dir, Normalize(v), tol))

	small := New(1.8, 2.4) // magnitude 3
	small.LimitSelf(5)
	assert.Equal(t, New(1.8, 2.4), small)
}

func TestConstrainSelf(t *testing.T) {
	tests := []struct {
		name                   string
		in                     Vec2
		minX, maxX, minY, maxY float32
		want                   Vec2
	}{
		{"unit bounds", New(5, -3), 0, 1, 0, 1, New(1, 0)},
		{"inside", New(0.25, 0.75), 0, 1, 0, 1, New(0.25, 0.75)},
		{"honours bounds (original clamped to [0,1])", New(5, -3), -2, 2, -1, 10, New(2, -1)},
		{"per axis", New(-10, 10), 0, 5, 20, 30, New(0, 20)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := tt.in
			v.ConstrainSelf(tt.minX, tt.maxX, tt.minY, tt.maxY)
			assert.Equal(t, tt.want, v)
		})
	}
}

func TestClamp01Self(t *testing.T) {
	v := New(5, -3)
	v.Clamp01Self()
	assert.Equal(t, New(1, 0), v)
}

func TestPureOpsDoNotMutate(t *testing.T) {
	a, b := New(1, 2), New(3, 4)
	_ = Add(a, b)
	_ = Subtract(a, b)
	_ = Scale(a, 3)
	_ = Normalize(a)
	assert.Equal(t, New(1, 2), a)
	assert.Equal(t, New(3, 4), b)
	assert.Equal(t, New(3, 6), Scale(a, 3))
	assert.Equal(t, float32(11), Dot(a, b))
}

func TestDistance(t *testing.T) {
	assert.InDelta(t, 5, Distance(New(1, 1), New(4, 5)), tol)
	assert.InDelta(t, 5, DistanceV(New(1, 1), New(4, 5)), tol)
}

func TestPrint(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Print(&buf, New(1, 2)))
	require.NoError(t, Print(&buf, New(-0.5, 3.14159)))
	assert.Equal(t, "(1.00, 2.00)\n(-0.50, 3.14)\n", buf.String())
	assert.Equal(t, "(1.00, 2.00)", New(1, 2).String())
}

func TestLogSink(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	sink := NewLogSink(log.NewWithCore(core), "")

	require.NoError(t, Print(sink, New(1, 2)))
	sink.Log(New(0.5, 0.25))

	require.Equal(t, 2, logs.Len())
	entries := logs.All()
	assert.Equal(t, "vec2", entries[0].Message)
	assert.Equal(t, "(1.00, 2.00)", entries[0].ContextMap()["value"])
	assert.InDelta(t, 0.5, entries[1].ContextMap()["x"], tol)
	assert.InDelta(t, 0.25, entries[1].ContextMap()["y"], tol)
}

package primitives_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/shapecalc/primitives"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewLineSegment_Invalid verifies that non-positive and non-finite
// lengths are rejected with ErrInvalidArgument.
func TestNewLineSegment_Invalid(t *testing.T) {
	cases := []struct {
		name   string
		length float64
	}{
		{"zero", 0},
		{"negative", -1},
		{"tiny negative", -1e-300},
		{"negative zero", math.Copysign(0, -1)},
		{"NaN", math.NaN()},
		{"positive infinity", math.Inf(1)},
		{"negative infinity", math.Inf(-1)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			seg, err := primitives.NewLineSegment(tc.length)
			assert.ErrorIs(t, err, primitives.ErrInvalidArgument)
			assert.Equal(t, primitives.LineSegment{}, seg, "failed construction must return the zero value")
		})
	}
}

// TestNewLineSegment_Valid verifies that the stored length is the given one.
func TestNewLineSegment_Valid(t *testing.T) {
	for _, length := range []float64{1e-9, 0.5, 1, 3, 10, 1e12, math.MaxFloat64} {
		seg, err := primitives.NewLineSegment(length)
		require.NoError(t, err, "length %g", length)
		assert.Equal(t, length, seg.Length())
		assert.True(t, seg.IsValid())
	}
}

// TestLineSegment_ErrorMessage checks that the error carries the offending value.
func TestLineSegment_ErrorMessage(t *testing.T) {
	_, err := primitives.NewLineSegment(-2.5)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be a positive number")
	assert.Contains(t, err.Error(), "-2.5")
}

// TestLineSegment_ValueSemantics verifies that segments of equal length are
// interchangeable.
func TestLineSegment_ValueSemantics(t *testing.T) {
	a := primitives.MustLineSegment(4)
	b := primitives.MustLineSegment(4)
	c := primitives.MustLineSegment(5)

	assert.True(t, a == b)
	assert.False(t, a == c)

	set := map[primitives.LineSegment]int{a: 1}
	set[b]++
	assert.Equal(t, 2, set[a], "equal segments must collide as map keys")
}

func TestLineSegment_ZeroValueInvalid(t *testing.T) {
	var seg primitives.LineSegment
	assert.False(t, seg.IsValid())
	assert.Equal(t, 0.0, seg.Length())
}

func TestMustLineSegment_Panics(t *testing.T) {
	assert.Panics(t, func() { primitives.MustLineSegment(0) })
	assert.NotPanics(t, func() { primitives.MustLineSegment(1) })
}

func TestLineSegment_String(t *testing.T) {
	assert.Equal(t, "LineSegment(5)", primitives.MustLineSegment(5).String())
	assert.Equal(t, "LineSegment(2.5)", primitives.MustLineSegment(2.5).String())
}

package phase_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvphase/grid"
	"github.com/katalvlaran/lvphase/phase"
)

// TestWrap_Range checks Wrap lands in (−π, π] and is idempotent for random inputs.
func TestWrap_Range(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 10000; i++ {
		x := (rng.Float64() - 0.5) * 200
		w := phase.Wrap(x)
		assert.True(t, w > -math.Pi && w <= math.Pi, "Wrap(%g) = %g out of range", x, w)
		assert.InDelta(t, w, phase.Wrap(w), 1e-12, "Wrap not idempotent at %g", x)
		// w differs from x by a whole number of turns.
		k := (x - w) / (2 * math.Pi)
		assert.InDelta(t, math.Round(k), k, 1e-9)
	}
}

// TestWrap_Values pins a few exact values.
func TestWrap_Values(t *testing.T) {
	cases := []struct {
		in, want float64
	}{
		{0, 0},
		{math.Pi, math.Pi},
		{-math.Pi / 2, -math.Pi / 2},
		{3 * math.Pi / 2, -math.Pi / 2},
		{2 * math.Pi, 0},
		{-5 * math.Pi / 2, -math.Pi / 2},
	}
	for _, tc := range cases {
		assert.InDelta(t, tc.want, phase.Wrap(tc.in), 1e-12, "Wrap(%g)", tc.in)
	}
}

// TestGradient_Fold verifies the π/2 threshold and π fold.
func TestGradient_Fold(t *testing.T) {
	cases := []struct {
		name string
		a, b float64
		want float64
	}{
		{"Small", 0.3, 0.1, 0.2},
		{"ExactThreshold", math.Pi / 2, 0, math.Pi / 2},
		{"AboveThreshold", 2.0, 0, 2.0 - math.Pi},
		{"BelowNegThreshold", 0, 2.0, math.Pi - 2.0},
		{"Zero", 1.1, 1.1, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, phase.Gradient(tc.a, tc.b), 1e-12)
		})
	}
}

// TestWrapGrid leaves the input untouched and wraps the copy.
func TestWrapGrid(t *testing.T) {
	g, err := grid.From2D([][]float64{{0, 3 * math.Pi}, {-3 * math.Pi / 2, 1}})
	require.NoError(t, err)

	w := phase.WrapGrid(g)
	assert.InDelta(t, 3*math.Pi, g.At(0, 1), 1e-12)
	assert.InDelta(t, math.Pi, w.At(0, 1), 1e-9)
	assert.InDelta(t, math.Pi/2, w.At(1, 0), 1e-12)
	assert.InDelta(t, 1, w.At(1, 1), 1e-12)
}

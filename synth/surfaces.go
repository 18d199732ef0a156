// Package synth builds synthetic phase surfaces for tests, demos and
// benchmarks. Every builder returns the TRUE (continuous) surface; wrap it
// with phase.WrapGrid to obtain the measurement an unwrapper sees.
//
// Builders are deterministic, O(R×C), and return nil for non-positive sizes.
package synth

import (
	"math"
	"math/rand"

	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/katalvlaran/lvphase/grid"
)

// Ramp returns the plane v = slopeRow·r + slopeCol·c.
func Ramp(rows, cols int, slopeRow, slopeCol float64) *grid.Grid {
	g, err := grid.New(rows, cols)
	if err != nil {
		return nil
	}
	g.Apply(func(r, c int, _ float64) float64 {
		return slopeRow*float64(r) + slopeCol*float64(c)
	})

	return g
}

// Paraboloid returns v = curvature·((r−rc)² + (c−cc)²) centred on the grid.
func Paraboloid(rows, cols int, curvature float64) *grid.Grid {
	g, err := grid.New(rows, cols)
	if err != nil {
		return nil
	}
	rc, cc := float64(rows-1)/2, float64(cols-1)/2
	g.Apply(func(r, c int, _ float64) float64 {
		dr, dc := float64(r)-rc, float64(c)-cc
		return curvature * (dr*dr + dc*dc)
	})

	return g
}

// Simplex returns layered OpenSimplex noise scaled to [0, amplitude].
// Options: WithSeed, WithAmplitude, WithScale, WithOctaves.
func Simplex(rows, cols int, opts ...Option) *grid.Grid {
	g, err := grid.New(rows, cols)
	if err != nil {
		return nil
	}
	cfg := newConfig(opts...)
	noise := opensimplex.NewNormalized(cfg.seed)

	// Normalizer so the octave sum stays in [0, 1].
	total := 0.0
	for o, w := 0, 1.0; o < cfg.octaves; o, w = o+1, w/2 {
		total += w
	}
	g.Apply(func(r, c int, _ float64) float64 {
		x, y := float64(c)*cfg.scale, float64(r)*cfg.scale
		sum, weight, freq := 0.0, 1.0, 1.0
		for o := 0; o < cfg.octaves; o++ {
			sum += weight * noise.Eval2(x*freq, y*freq)
			weight /= 2
			freq *= 2
		}
		return cfg.amplitude * sum / total
	})

	return g
}

// Vortex returns charge·atan2(r − centerRow, c − centerCol): a phase
// singularity of the given charge at (centerRow, centerCol). The surface is
// multi-valued by nature, so the returned values are already wrapped and the
// 2×2 block enclosing the centre carries a residue. Use a centre off the
// pixel diagonals (e.g. 10.3, 10.4) so no pixel lies exactly on the ±π
// branch line or at equal distance from two block centres.
func Vortex(rows, cols int, centerRow, centerCol float64, charge int) *grid.Grid {
	g, err := grid.New(rows, cols)
	if err != nil {
		return nil
	}
	k := float64(charge)
	g.Apply(func(r, c int, _ float64) float64 {
		theta := k * math.Atan2(float64(r)-centerRow, float64(c)-centerCol)
		return math.Atan2(math.Sin(theta), math.Cos(theta))
	})

	return g
}

// AddNoise returns a copy of g with zero-mean Gaussian noise of standard
// deviation sigma added to every cell. sigma <= 0 returns a plain copy.
func AddNoise(g *grid.Grid, sigma float64, seed int64) *grid.Grid {
	out := g.Clone()
	if sigma <= 0 {
		return out
	}
	rng := rand.New(rand.NewSource(seed))
	out.Apply(func(_, _ int, v float64) float64 { return v + sigma*rng.NormFloat64() })

	return out
}

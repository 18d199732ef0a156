// Package phase holds the two scalar operators shared by every unwrapping
// algorithm: the wrap operator and the wrapped-phase gradient.
//
// Both are pure functions and safe for concurrent use.
package phase

import (
	"math"

	"github.com/katalvlaran/lvphase/grid"
)

const halfPi = math.Pi / 2

// Wrap folds any real value into (−π, π] as atan2(sin x, cos x).
func Wrap(x float64) float64 {
	return math.Atan2(math.Sin(x), math.Cos(x))
}

// Gradient returns the difference a − b of two wrapped phase values, folded
// by π whenever it leaves [−π/2, π/2]:
//
//	d = a − b
//	d > +π/2 → d − π
//	d < −π/2 → d + π
//
// The residue tolerance used by goldstein is calibrated against this fold,
// which is why it is not the textbook 2π fold.
func Gradient(a, b float64) float64 {
	d := a - b
	if d > halfPi {
		d -= math.Pi
	} else if d < -halfPi {
		d += math.Pi
	}

	return d
}

// WrapGrid returns a copy of g with Wrap applied to every cell.
// Complexity: O(R×C).
func WrapGrid(g *grid.Grid) *grid.Grid {
	out := g.Clone()
	out.Apply(func(_, _ int, v float64) float64 { return Wrap(v) })

	return out
}

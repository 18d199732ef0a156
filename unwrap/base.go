package unwrap

import (
	"fmt"

	"github.com/katalvlaran/lvphase/grid"
)

// Minimum grid dimensions accepted by SetWrapped.
const (
	MinRows = 2
	MinCols = 2
)

// Unwrapper is implemented by every phase-unwrapping algorithm.
//
// Unwrap has no result value: on success the unwrapped grid is fully
// populated. Errors are fatal precondition violations and are never retried.
type Unwrapper interface {
	SetWrapped(g *grid.Grid) error
	Wrapped() *grid.Grid
	Unwrapped() *grid.Grid
	Unwrap() error
}

// Base owns the wrapped and unwrapped grids shared by all algorithms.
// Algorithms embed Base and override SetWrapped when they keep derived state,
// calling Base.SetWrapped first.
// The zero Base is unset; Unwrap on an unset algorithm returns ErrNotSet.
type Base struct {
	wrapped   *grid.Grid
	unwrapped *grid.Grid
}

// SetWrapped deep-copies g, allocates a fresh unwrapped grid and seeds its
// [0,0] cell with g[0,0]. Returns ErrNilGrid or ErrDegenerateGrid.
// On error the previous state is kept.
func (b *Base) SetWrapped(g *grid.Grid) error {
	if g == nil {
		return ErrNilGrid
	}
	if g.Rows() < MinRows || g.Cols() < MinCols {
		return fmt.Errorf("%w: got %d×%d", ErrDegenerateGrid, g.Rows(), g.Cols())
	}
	wrapped := g.Clone()
	unwrapped, err := grid.New(wrapped.Rows(), wrapped.Cols())
	if err != nil {
		return err
	}
	unwrapped.Set(0, 0, wrapped.At(0, 0))

	b.wrapped, b.unwrapped = wrapped, unwrapped

	return nil
}

// Wrapped returns a copy of the wrapped grid, or nil if unset.
func (b *Base) Wrapped() *grid.Grid {
	if b.wrapped == nil {
		return nil
	}
	return b.wrapped.Clone()
}

// Unwrapped returns a copy of the unwrapped grid, or nil if unset.
func (b *Base) Unwrapped() *grid.Grid {
	if b.unwrapped == nil {
		return nil
	}
	return b.unwrapped.Clone()
}

// Rows returns the number of rows of the assigned grid (0 if unset).
func (b *Base) Rows() int {
	if b.wrapped == nil {
		return 0
	}
	return b.wrapped.Rows()
}

// Cols returns the number of columns of the assigned grid (0 if unset).
func (b *Base) Cols() int {
	if b.wrapped == nil {
		return 0
	}
	return b.wrapped.Cols()
}

// Ready returns ErrNotSet until a wrapped grid has been assigned.
func (b *Base) Ready() error {
	if b.wrapped == nil || b.unwrapped == nil {
		return ErrNotSet
	}
	return nil
}

// Grids exposes the live wrapped and unwrapped grids to algorithm
// implementations. The wrapped grid must be treated as read-only.
func (b *Base) Grids() (wrapped, unwrapped *grid.Grid) {
	return b.wrapped, b.unwrapped
}

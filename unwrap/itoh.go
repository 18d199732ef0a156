package unwrap

import (
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvphase/grid"
	"github.com/katalvlaran/lvphase/internal/logx"
	"github.com/katalvlaran/lvphase/phase"
)

// Itoh unwraps by cumulative summation of wrapped differences.
//
// Algorithm Outline:
//  1. Column 0, top to bottom (sequential, each step needs the previous one):
//     u[r,0] = u[r−1,0] + Wrap(Δw)   (direction per ColumnDifference)
//  2. Barrier.
//  3. Every row, left to right, in parallel:
//     u[r,c] = u[r,c−1] + Wrap(w[r,c] − w[r,c−1])
//
// The default ColumnDifference is Forward; WithColumnDifference(Backward)
// reproduces the reference behaviour of differencing column 0 backward.
//
// Complexity: O(R×C) time, no extra memory.
type Itoh struct {
	Base
	opts Options
}

var _ Unwrapper = (*Itoh)(nil)

// NewItoh returns an Itoh unwrapper. A non-nil wrapped grid is assigned
// immediately (errors as SetWrapped); a nil grid leaves the unwrapper unset.
func NewItoh(wrapped *grid.Grid, opts ...Option) (*Itoh, error) {
	it := &Itoh{opts: gatherOptions(opts...)}
	if wrapped != nil {
		if err := it.SetWrapped(wrapped); err != nil {
			return nil, err
		}
	}

	return it, nil
}

// Options returns the resolved configuration.
func (it *Itoh) Options() Options { return it.opts }

// Unwrap fills the unwrapped grid. Returns ErrNotSet if no grid was assigned.
func (it *Itoh) Unwrap() error {
	if err := it.Ready(); err != nil {
		return err
	}
	start := time.Now()
	w, u := it.Grids()

	it.unwrapColumn(w, u)

	var eg errgroup.Group
	eg.SetLimit(it.opts.Workers())
	for r := 0; r < w.Rows(); r++ {
		eg.Go(func() error {
			unwrapRow(w, u, r)
			return nil
		})
	}
	_ = eg.Wait() // row tasks never fail

	logx.Logger().Debug("itoh: unwrapped",
		"rows", w.Rows(), "cols", w.Cols(),
		"column_difference", it.opts.columnDiff.String(),
		"elapsed", time.Since(start))

	return nil
}

// unwrapColumn integrates column 0 starting from the seeded u[0,0].
func (it *Itoh) unwrapColumn(w, u *grid.Grid) {
	backward := it.opts.columnDiff == Backward
	for r := 1; r < w.Rows(); r++ {
		d := w.At(r, 0) - w.At(r-1, 0)
		if backward {
			d = w.At(r-1, 0) - w.At(r, 0)
		}
		u.Set(r, 0, u.At(r-1, 0)+phase.Wrap(d))
	}
}

// unwrapRow integrates row r from its already unwrapped first cell.
// Touches only row r of u, so distinct rows may run concurrently.
func unwrapRow(w, u *grid.Grid, r int) {
	wr, ur := w.Row(r), u.Row(r)
	for c := 1; c < len(wr); c++ {
		ur[c] = ur[c-1] + phase.Wrap(wr[c]-wr[c-1])
	}
}

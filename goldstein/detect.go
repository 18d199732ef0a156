package goldstein

import (
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvphase/grid"
	"github.com/katalvlaran/lvphase/internal/logx"
	"github.com/katalvlaran/lvphase/phase"
)

// DetectResidues clears every residue, then tests each 2×2 block whose
// corners are all free of Border and BranchCut flags. The closed-loop
// integral, clockwise from the anchor (r,c):
//
//	G(w[r,c+1], w[r,c]) + G(w[r,c], w[r+1,c]) +
//	G(w[r+1,c], w[r+1,c+1]) + G(w[r+1,c+1], w[r,c+1])
//
// above +ε gives a positive residue at the anchor, below −ε a negative one.
//
// Rows are scanned in parallel into private partitions, which are merged in
// row-major order after the barrier, so the result is deterministic.
// Returns the number of residues found (0 if no grid is set).
func (gs *Goldstein) DetectResidues() int {
	if !gs.stageReady("detect") {
		return 0
	}
	w, _ := gs.Grids()
	gs.residues.clear()

	parts := make([][]Residue, w.Rows()-1)
	var eg errgroup.Group
	eg.SetLimit(gs.opts.Workers())
	for r := range parts {
		eg.Go(func() error {
			parts[r] = gs.scanRow(w, r)
			return nil
		})
	}
	_ = eg.Wait() // row scans never fail

	for _, part := range parts {
		for _, res := range part {
			gs.residues.add(res)
		}
	}

	return gs.residues.len()
}

// scanRow reads flags and phase only; it never writes.
func (gs *Goldstein) scanRow(w *grid.Grid, r int) []Residue {
	var out []Residue
	log := logx.Logger()
	for c := 0; c < w.Cols()-1; c++ {
		if gs.blockAvoided(r, c) {
			continue
		}
		integral := loopIntegral(w, r, c)
		charge := 0
		switch {
		case integral > gs.opts.epsilon:
			charge = 1
		case integral < -gs.opts.epsilon:
			charge = -1
		default:
			continue
		}
		log.Debug("goldstein: residue", "row", r, "col", c, "charge", charge, "integral", integral)
		out = append(out, Residue{Row: r, Col: c, Charge: charge})
	}

	return out
}

func (gs *Goldstein) blockAvoided(r, c int) bool {
	f := gs.flags
	return f.Cell(r, c).IsAvoid() ||
		f.Cell(r, c+1).IsAvoid() ||
		f.Cell(r+1, c).IsAvoid() ||
		f.Cell(r+1, c+1).IsAvoid()
}

func loopIntegral(w *grid.Grid, r, c int) float64 {
	a := w.At(r, c)
	b := w.At(r, c+1)
	cc := w.At(r+1, c+1)
	d := w.At(r+1, c)

	return phase.Gradient(b, a) +
		phase.Gradient(a, d) +
		phase.Gradient(d, cc) +
		phase.Gradient(cc, b)
}

package goldstein

import (
	"github.com/katalvlaran/lvphase/flags"
	"github.com/katalvlaran/lvphase/grid"
	"github.com/katalvlaran/lvphase/internal/logx"
)

// BalanceDipoles connects adjacent residues of opposite charge.
//
// One row-major pass: a residue looks for an opposite partner to its right,
// then below. The first match is cut and both residues leave the set. The
// pass is greedy and local; calling it again without re-detection returns 0.
// Returns the number of pairs removed (0 if no grid is set).
func (gs *Goldstein) BalanceDipoles() int {
	if !gs.stageReady("dipoles") {
		return 0
	}
	f := gs.flags
	log := logx.Logger()
	n := 0
	for r := 0; r < f.Rows(); r++ {
		for c := 0; c < f.Cols(); c++ {
			charge := f.Cell(r, c).Charge()
			if charge == 0 {
				continue
			}
			partner, ok := gs.dipolePartner(r, c, charge)
			if !ok {
				continue
			}
			p := grid.Point{Row: r, Col: c}
			gs.placeBranchCut(p, partner)
			gs.residues.remove(p)
			gs.residues.remove(partner)
			n++
			log.Debug("goldstein: dipole", "from", p.String(), "to", partner.String())
		}
	}
	gs.residues.compact()

	return n
}

func (gs *Goldstein) dipolePartner(r, c, charge int) (grid.Point, bool) {
	want := flags.NegativeResidue
	if charge < 0 {
		want = flags.PositiveResidue
	}
	for _, p := range []grid.Point{{Row: r, Col: c + 1}, {Row: r + 1, Col: c}} {
		if gs.flags.InBounds(p.Row, p.Col) && gs.flags.Cell(p.Row, p.Col).Is(want) {
			return p, true
		}
	}

	return grid.Point{}, false
}

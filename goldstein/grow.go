package goldstein

import (
	"github.com/katalvlaran/lvphase/flags"
	"github.com/katalvlaran/lvphase/grid"
	"github.com/katalvlaran/lvphase/internal/logx"
)

// SearchState is the state of one residue's box search.
type SearchState uint8

const (
	// Searching: the box is still growing.
	Searching SearchState = iota
	// Grounded: a border pixel was reached; the net charge is discharged.
	Grounded
	// Balanced: the accumulated charge reached zero.
	Balanced
	// Exhausted: MaxBoxSize was exceeded without resolution.
	Exhausted
)

// String returns the lower-case state name.
func (s SearchState) String() string {
	switch s {
	case Searching:
		return "searching"
	case Grounded:
		return "grounded"
	case Balanced:
		return "balanced"
	case Exhausted:
		return "exhausted"
	default:
		return "unknown"
	}
}

// search holds one residue's box search. Targets are the pixels the origin
// will be cut to if the search succeeds; nothing is cut before that.
type search struct {
	f       *flags.Grid
	origin  Residue
	active  []grid.Point
	targets []grid.Point
	charge  int
	box     int
	state   SearchState
}

// searchResidue runs the box search for origin until it leaves Searching.
// Active flags are cleared before it returns; Visited flags stay.
func searchResidue(f *flags.Grid, origin Residue, maxBox int) *search {
	p := origin.Point()
	f.Cell(p.Row, p.Col).Mark(flags.Active | flags.Visited)
	s := &search{
		f:      f,
		origin: origin,
		active: []grid.Point{p},
		charge: origin.Charge,
		state:  Searching,
	}
	for s.state == Searching {
		s.grow(maxBox)
	}
	s.release()

	return s
}

// grow widens the box by one and scans around every active pixel,
// including those appended during this scan.
func (s *search) grow(maxBox int) {
	s.box++
	if s.box > maxBox {
		s.state = Exhausted
		return
	}
	for i := 0; i < len(s.active) && s.state == Searching; i++ {
		s.scan(s.active[i])
	}
}

func (s *search) scan(center grid.Point) {
	for r := center.Row - s.box; r <= center.Row+s.box; r++ {
		for c := center.Col - s.box; c <= center.Col+s.box; c++ {
			if !s.f.InBounds(r, c) {
				continue
			}
			s.visit(grid.Point{Row: r, Col: c})
			if s.state != Searching {
				return
			}
		}
	}
}

func (s *search) visit(p grid.Point) {
	cell := s.f.Cell(p.Row, p.Col)
	if cell.Is(flags.Border) {
		s.targets = append(s.targets, p)
		s.charge = 0
		s.state = Grounded
		return
	}
	if cell.Is(flags.BranchCut) || cell.Is(flags.Active) || !cell.IsResidue() {
		return
	}
	if !cell.Is(flags.Visited) {
		s.charge += cell.Charge()
		cell.Mark(flags.Visited)
	}
	cell.Mark(flags.Active)
	s.active = append(s.active, p)
	s.targets = append(s.targets, p)
	if s.charge == 0 {
		s.state = Balanced
	}
}

func (s *search) release() {
	for _, p := range s.active {
		s.f.Cell(p.Row, p.Col).Clear(flags.Active)
	}
}

// ComputeBranchCuts runs a box search from every residue that has not been
// visited yet, in list order. Grounded and Balanced searches commit their
// cuts; Exhausted ones leave no cut. Every residue that ends up neither the
// origin nor a target of a committed search is listed in Report.Unresolved,
// including those only reached by an Exhausted search.
// Residues stay in the list. Returns a zero Report if no grid is set.
func (gs *Goldstein) ComputeBranchCuts() Report {
	if !gs.stageReady("branch cuts") {
		return Report{}
	}
	maxBox := gs.opts.boxLimit(gs.Rows(), gs.Cols())
	log := logx.Logger()

	var rep Report
	residues := gs.residues.snapshot()
	resolved := make(map[grid.Point]bool, len(residues))
	for _, res := range residues {
		if gs.flags.Cell(res.Row, res.Col).Is(flags.Visited) {
			continue
		}
		s := searchResidue(gs.flags, res, maxBox)
		switch s.state {
		case Grounded:
			rep.Grounded++
		case Balanced:
			rep.Balanced++
		}
		if s.state != Exhausted {
			resolved[res.Point()] = true
			for _, t := range s.targets {
				gs.placeBranchCut(res.Point(), t)
				resolved[t] = true
			}
		}
		log.Debug("goldstein: search",
			"residue", res.String(), "state", s.state.String(),
			"box", s.box, "targets", len(s.targets))
	}
	for _, res := range residues {
		if !resolved[res.Point()] {
			rep.Unresolved = append(rep.Unresolved, res)
		}
	}
	rep.Cuts = len(gs.cuts.points)
	gs.report.Grounded = rep.Grounded
	gs.report.Balanced = rep.Balanced
	gs.report.Unresolved = rep.Unresolved
	gs.report.Cuts = rep.Cuts

	return rep
}

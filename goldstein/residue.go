package goldstein

import (
	"fmt"

	"github.com/katalvlaran/lvphase/flags"
	"github.com/katalvlaran/lvphase/grid"
)

// Residue is a detected phase singularity. Row and Col address the upper-left
// pixel (anchor) of the 2×2 block; the singularity itself sits at the block
// centre. Charge is +1 or −1.
type Residue struct {
	Row, Col int
	Charge   int
}

// Point returns the anchor pixel.
func (r Residue) Point() grid.Point { return grid.Point{Row: r.Row, Col: r.Col} }

// String renders the residue as "+[row, col]" or "-[row, col]".
func (r Residue) String() string {
	sign := "+"
	if r.Charge < 0 {
		sign = "-"
	}
	return fmt.Sprintf("%s[%d, %d]", sign, r.Row, r.Col)
}

func (r Residue) flag() flags.Flag {
	if r.Charge > 0 {
		return flags.PositiveResidue
	}
	return flags.NegativeResidue
}

// residueSet keeps the residue flags and the ordered residue list in step:
// every add marks a bit and appends, every remove clears the bits and drops
// the entry. Nothing else writes residue bits.
type residueSet struct {
	f     *flags.Grid
	list  []Residue
	alive []bool
	index map[grid.Point]int // anchor -> position in list
	live  int
}

func newResidueSet(f *flags.Grid) *residueSet {
	return &residueSet{f: f, index: make(map[grid.Point]int)}
}

func (s *residueSet) add(r Residue) {
	p := r.Point()
	cell := s.f.Cell(r.Row, r.Col)
	cell.Clear(flags.Residue)
	cell.Mark(r.flag())
	if i, ok := s.index[p]; ok && s.alive[i] {
		s.list[i] = r
		return
	}
	s.index[p] = len(s.list)
	s.list = append(s.list, r)
	s.alive = append(s.alive, true)
	s.live++
}

// remove clears the residue at p. Reports whether one was present.
func (s *residueSet) remove(p grid.Point) bool {
	s.f.Cell(p.Row, p.Col).Clear(flags.Residue)
	i, ok := s.index[p]
	if !ok || !s.alive[i] {
		return false
	}
	s.alive[i] = false
	delete(s.index, p)
	s.live--

	return true
}

// clear drops every residue and every residue bit.
func (s *residueSet) clear() {
	s.f.ClearAll(flags.Residue)
	s.list = s.list[:0]
	s.alive = s.alive[:0]
	clear(s.index)
	s.live = 0
}

// compact drops removed entries, preserving order.
func (s *residueSet) compact() {
	if s.live == len(s.list) {
		return
	}
	list := s.list[:0]
	for i, r := range s.list {
		if s.alive[i] {
			list = append(list, r)
		}
	}
	s.list = list
	s.alive = s.alive[:len(list)]
	for i := range s.alive {
		s.alive[i] = true
	}
	clear(s.index)
	for i, r := range s.list {
		s.index[r.Point()] = i
	}
}

// len returns the number of live residues.
func (s *residueSet) len() int { return s.live }

// snapshot returns the live residues in detection order.
func (s *residueSet) snapshot() []Residue {
	out := make([]Residue, 0, s.live)
	for i, r := range s.list {
		if s.alive[i] {
			out = append(out, r)
		}
	}

	return out
}

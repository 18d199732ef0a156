package goldstein

import (
	"github.com/katalvlaran/lvphase/flags"
	"github.com/katalvlaran/lvphase/grid"
)

// cutSet is the ordered, duplicate-free set of BranchCut pixels.
// It only grows.
type cutSet struct {
	f      *flags.Grid
	points []grid.Point
}

func newCutSet(f *flags.Grid) *cutSet { return &cutSet{f: f} }

func (s *cutSet) mark(p grid.Point) {
	cell := s.f.Cell(p.Row, p.Col)
	if cell.Is(flags.BranchCut) {
		return
	}
	cell.Mark(flags.BranchCut)
	s.points = append(s.points, p)
}

// placeBranchCut flags every pixel of the straight line between two residue
// anchors and returns the stepped path.
func (gs *Goldstein) placeBranchCut(src, dst grid.Point) []grid.Point {
	path := rasterize(src, dst)
	for _, p := range path {
		gs.cuts.mark(p)
	}

	return path
}

// rasterize returns the 8-connected pixel line from src to dst.
//
// Anchors sit at the upper-left of their 2×2 block, so each endpoint is first
// nudged one pixel towards the other along every axis where that keeps it off
// the leading border row or column. The line is then driven along the axis
// with the larger extent (rows only when strictly larger); the dependent
// coordinate is rounded half up.
func rasterize(src, dst grid.Point) []grid.Point {
	src.Row, dst.Row = nudge(src.Row, dst.Row)
	src.Col, dst.Col = nudge(src.Col, dst.Col)
	if src == dst {
		return []grid.Point{src}
	}

	dRow, dCol := dst.Row-src.Row, dst.Col-src.Col
	if abs(dRow) > abs(dCol) {
		return walk(src.Row, src.Col, dRow, dCol, func(major, minor int) grid.Point {
			return grid.Point{Row: major, Col: minor}
		})
	}

	return walk(src.Col, src.Row, dCol, dRow, func(major, minor int) grid.Point {
		return grid.Point{Row: minor, Col: major}
	})
}

func nudge(s, d int) (int, int) {
	switch {
	case d > s && s > 0:
		s++
	case d < s && d > 0:
		d++
	}

	return s, d
}

// walk steps the major axis from start by ±1 through delta inclusive.
func walk(majorStart, minorStart, delta, minorDelta int, at func(major, minor int) grid.Point) []grid.Point {
	n := abs(delta)
	step := 1
	if delta < 0 {
		step = -1
	}
	slope := float64(minorDelta) / float64(delta)

	path := make([]grid.Point, 0, n+1)
	for k := 0; k <= n; k++ {
		off := k * step
		minor := int(float64(minorStart) + float64(off)*slope + 0.5)
		path = append(path, at(majorStart+off, minor))
	}

	return path
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

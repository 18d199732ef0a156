package goldstein

import (
	"github.com/katalvlaran/lvphase/flags"
	"github.com/katalvlaran/lvphase/grid"
	"github.com/katalvlaran/lvphase/phase"
)

// integrate fills the unwrapped grid by breadth-first path integration that
// never steps onto a Border or BranchCut pixel. Every disconnected region is
// seeded at its first pixel in row-major order. Avoided pixels touching the
// fill are postponed and filled afterwards from any unwrapped neighbour.
// Finally the grid is shifted so that u[0,0] == w[0,0].
// Returns the number of seeded regions.
func (gs *Goldstein) integrate() int {
	w, u := gs.Grids()
	f := gs.flags
	f.ClearAll(flags.Unwrapped | flags.Postponed)

	offsets := grid.Offsets(grid.Conn4)
	rows, cols := w.Rows(), w.Cols()
	var postponed []grid.Point

	step := func(dst, src grid.Point) {
		d := phase.Wrap(w.At(dst.Row, dst.Col) - w.At(src.Row, src.Col))
		u.Set(dst.Row, dst.Col, u.At(src.Row, src.Col)+d)
		f.Cell(dst.Row, dst.Col).Mark(flags.Unwrapped)
	}
	// neighbours visits the in-bounds 4-neighbours of p not yet unwrapped or postponed.
	neighbours := func(p grid.Point, fn func(q grid.Point, cell flags.Cell)) {
		for _, o := range offsets {
			q := grid.Point{Row: p.Row + o[0], Col: p.Col + o[1]}
			if !f.InBounds(q.Row, q.Col) {
				continue
			}
			cell := f.Cell(q.Row, q.Col)
			if cell.Is(flags.Unwrapped | flags.Postponed) {
				continue
			}
			fn(q, cell)
		}
	}

	regions := 0
	queue := make([]grid.Point, 0, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			seed := f.Cell(r, c)
			if seed.IsAvoid() || seed.Is(flags.Unwrapped) {
				continue
			}
			regions++
			u.Set(r, c, w.At(r, c))
			seed.Mark(flags.Unwrapped)
			queue = append(queue[:0], grid.Point{Row: r, Col: c})
			for len(queue) > 0 {
				p := queue[0]
				queue = queue[1:]
				neighbours(p, func(q grid.Point, cell flags.Cell) {
					if cell.IsAvoid() {
						cell.Mark(flags.Postponed)
						postponed = append(postponed, q)
						return
					}
					step(q, p)
					queue = append(queue, q)
				})
			}
		}
	}

	if regions == 0 {
		u.Set(0, 0, w.At(0, 0))
		f.Cell(0, 0).Mark(flags.Unwrapped)
		neighbours(grid.Point{}, func(q grid.Point, cell flags.Cell) {
			cell.Mark(flags.Postponed)
			postponed = append(postponed, q)
		})
	}

	for len(postponed) > 0 {
		p := postponed[0]
		postponed = postponed[1:]
		src, ok := gs.unwrappedNeighbour(p, offsets)
		if !ok {
			continue
		}
		step(p, src)
		f.Cell(p.Row, p.Col).Clear(flags.Postponed)
		neighbours(p, func(q grid.Point, cell flags.Cell) {
			cell.Mark(flags.Postponed)
			postponed = append(postponed, q)
		})
	}

	shift := w.At(0, 0) - u.At(0, 0)
	if shift != 0 {
		u.Apply(func(_, _ int, v float64) float64 { return v + shift })
	}

	return regions
}

func (gs *Goldstein) unwrappedNeighbour(p grid.Point, offsets [][2]int) (grid.Point, bool) {
	for _, o := range offsets {
		q := grid.Point{Row: p.Row + o[0], Col: p.Col + o[1]}
		if gs.flags.InBounds(q.Row, q.Col) && gs.flags.Cell(q.Row, q.Col).Is(flags.Unwrapped) {
			return q, true
		}
	}

	return grid.Point{}, false
}

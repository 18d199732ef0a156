// Package flags provides the per-pixel bit flags used by branch-cut unwrapping.
//
// A Grid stores one Flag byte per pixel. All mutation goes through a Cell,
// an accessor bound to (grid, row, col), so a write is always visible to
// every piece of code iterating the same Grid. There is deliberately no
// helper that takes a bare Flag value and "marks" it.
//
// Border pixels (first/last row and column) are flagged when the Grid is
// created.
package flags

import (
	"fmt"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvphase/grid"
)

// Flag is a set of independent per-pixel bits.
type Flag uint8

// Flag bits. Each occupies exactly one bit.
const (
	PositiveResidue Flag = 1 << iota // 0x01
	NegativeResidue                  // 0x02
	Visited                          // 0x04
	Active                           // 0x08
	BranchCut                        // 0x10
	Border                           // 0x20
	Unwrapped                        // 0x40
	Postponed                        // 0x80
)

// Composite masks.
const (
	// Residue matches either residue polarity.
	Residue = PositiveResidue | NegativeResidue
	// Avoid marks pixels excluded from residue detection and path integration.
	Avoid = Border | BranchCut
)

var flagNames = []struct {
	f    Flag
	name string
}{
	{PositiveResidue, "POSITIVE_RESIDUE"},
	{NegativeResidue, "NEGATIVE_RESIDUE"},
	{Visited, "VISITED"},
	{Active, "ACTIVE"},
	{BranchCut, "BRANCH_CUT"},
	{Border, "BORDER"},
	{Unwrapped, "UNWRAPPED"},
	{Postponed, "POSTPONED"},
}

// String lists the set bits joined by "|", or "0" when none are set.
func (f Flag) String() string {
	if f == 0 {
		return "0"
	}
	var parts []string
	for _, fn := range flagNames {
		if f&fn.f != 0 {
			parts = append(parts, fn.name)
		}
	}

	return strings.Join(parts, "|")
}

// Grid is an R×C matrix of Flag values.
type Grid struct {
	rows, cols int
	bits       []Flag
}

// New allocates a rows×cols flag grid and marks its border pixels.
// Rows are initialized in parallel on up to workers goroutines
// (workers <= 0 means runtime.GOMAXPROCS(0)); each task writes only its own row.
func New(rows, cols, workers int) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("flags.New(%d,%d): %w", rows, cols, grid.ErrInvalidDimensions)
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	g := &Grid{rows: rows, cols: cols, bits: make([]Flag, rows*cols)}

	var eg errgroup.Group
	eg.SetLimit(workers)
	for r := 0; r < rows; r++ {
		eg.Go(func() error {
			g.markBorderRow(r)
			return nil
		})
	}
	_ = eg.Wait() // tasks never fail

	return g, nil
}

func (g *Grid) markBorderRow(r int) {
	row := g.bits[r*g.cols : (r+1)*g.cols]
	if r == 0 || r == g.rows-1 {
		for c := range row {
			row[c] |= Border
		}
		return
	}
	row[0] |= Border
	row[g.cols-1] |= Border
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// InBounds reports whether (row, col) lies within the grid.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// Matches reports whether the flag grid has the shape of p.
func (g *Grid) Matches(p *grid.Grid) bool {
	return p != nil && g.rows == p.Rows() && g.cols == p.Cols()
}

// Cell returns the accessor for (row, col). It panics if the pixel is out of range.
func (g *Grid) Cell(row, col int) Cell {
	if !g.InBounds(row, col) {
		panic(fmt.Sprintf("flags: pixel [%d, %d] out of range for %d×%d grid", row, col, g.rows, g.cols))
	}

	return Cell{g: g, idx: row*g.cols + col}
}

// At returns the flags stored at (row, col).
func (g *Grid) At(row, col int) Flag { return g.Cell(row, col).Flags() }

// ClearAll clears the bits in mask on every pixel.
func (g *Grid) ClearAll(mask Flag) {
	for i := range g.bits {
		g.bits[i] &^= mask
	}
}

// Count returns the number of pixels having any bit of mask set.
func (g *Grid) Count(mask Flag) int {
	n := 0
	for _, b := range g.bits {
		if b&mask != 0 {
			n++
		}
	}

	return n
}

// Points returns, in row-major order, every pixel having any bit of mask set.
func (g *Grid) Points(mask Flag) []grid.Point {
	var out []grid.Point
	for i, b := range g.bits {
		if b&mask != 0 {
			out = append(out, grid.Point{Row: i / g.cols, Col: i % g.cols})
		}
	}

	return out
}

// Clone returns a deep copy.
func (g *Grid) Clone() *Grid {
	bits := make([]Flag, len(g.bits))
	copy(bits, g.bits)

	return &Grid{rows: g.rows, cols: g.cols, bits: bits}
}

// Cell is a mutable view of a single pixel's flags inside a Grid.
// The zero Cell is not usable.
type Cell struct {
	g   *Grid
	idx int
}

// Flags returns the current bits.
func (c Cell) Flags() Flag { return c.g.bits[c.idx] }

// Is reports whether any bit of mask is set.
func (c Cell) Is(mask Flag) bool { return c.g.bits[c.idx]&mask != 0 }

// Mark sets the bits in mask.
func (c Cell) Mark(mask Flag) { c.g.bits[c.idx] |= mask }

// Clear clears the bits in mask.
func (c Cell) Clear(mask Flag) { c.g.bits[c.idx] &^= mask }

// IsResidue reports whether either residue bit is set.
func (c Cell) IsResidue() bool { return c.Is(Residue) }

// IsAvoid reports whether the pixel is a border or branch-cut pixel.
func (c Cell) IsAvoid() bool { return c.Is(Avoid) }

// Charge returns +1 for a positive residue, −1 for a negative one and 0 otherwise.
func (c Cell) Charge() int {
	switch {
	case c.Is(PositiveResidue):
		return 1
	case c.Is(NegativeResidue):
		return -1
	default:
		return 0
	}
}

// Point returns the coordinates of the cell.
func (c Cell) Point() grid.Point {
	return grid.Point{Row: c.idx / c.g.cols, Col: c.idx % c.g.cols}
}

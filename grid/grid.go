package grid

import (
	"fmt"
	"strings"
)

// Grid is a row-major matrix of float64 values.
// rows and cols are fixed at construction; data holds rows*cols elements.
type Grid struct {
	rows, cols int
	data       []float64
}

// New creates a rows×cols grid initialized to zeros.
// Returns ErrInvalidDimensions if rows or cols is not positive.
// Complexity: O(R×C) time and memory.
func New(rows, cols int) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("grid.New(%d,%d): %w", rows, cols, ErrInvalidDimensions)
	}

	return &Grid{rows: rows, cols: cols, data: make([]float64, rows*cols)}, nil
}

// Fill creates a rows×cols grid with every cell set to v.
func Fill(rows, cols int, v float64) (*Grid, error) {
	g, err := New(rows, cols)
	if err != nil {
		return nil, err
	}
	for i := range g.data {
		g.data[i] = v
	}

	return g, nil
}

// From2D constructs a Grid from a non-empty, rectangular 2D slice.
// It deep-copies the input so the caller may keep mutating values.
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(R×C) time and memory.
func From2D(values [][]float64) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	g := &Grid{rows: h, cols: w, data: make([]float64, h*w)}
	for r := 0; r < h; r++ {
		copy(g.data[r*w:(r+1)*w], values[r])
	}

	return g, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Len returns the number of cells.
func (g *Grid) Len() int { return len(g.data) }

// InBounds reports whether (row, col) lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// Index maps (row, col) to a row-major index: row*Cols + col.
func (g *Grid) Index(row, col int) int {
	return row*g.cols + col
}

// Coordinate converts a row-major index back to (row, col).
func (g *Grid) Coordinate(idx int) (row, col int) {
	return idx / g.cols, idx % g.cols
}

// At returns the value at (row, col).
func (g *Grid) At(row, col int) float64 {
	g.mustIndex(row, col)
	return g.data[row*g.cols+col]
}

// Set stores v at (row, col).
func (g *Grid) Set(row, col int, v float64) {
	g.mustIndex(row, col)
	g.data[row*g.cols+col] = v
}

func (g *Grid) mustIndex(row, col int) {
	if !g.InBounds(row, col) {
		panic(fmt.Sprintf("grid: index [%d, %d] out of range for %d×%d grid", row, col, g.rows, g.cols))
	}
}

// Row returns row r as a slice aliasing the grid storage.
// Writes through the slice are visible in the grid.
func (g *Grid) Row(r int) []float64 {
	return g.data[r*g.cols : (r+1)*g.cols : (r+1)*g.cols]
}

// SameShape reports whether o has the same dimensions as g.
func (g *Grid) SameShape(o *Grid) bool {
	return o != nil && g.rows == o.rows && g.cols == o.cols
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	data := make([]float64, len(g.data))
	copy(data, g.data)

	return &Grid{rows: g.rows, cols: g.cols, data: data}
}

// To2D returns the grid as a freshly allocated [][]float64.
func (g *Grid) To2D() [][]float64 {
	out := make([][]float64, g.rows)
	for r := range out {
		out[r] = make([]float64, g.cols)
		copy(out[r], g.data[r*g.cols:(r+1)*g.cols])
	}

	return out
}

// Apply replaces every cell with fn(row, col, value), in row-major order.
func (g *Grid) Apply(fn func(row, col int, v float64) float64) {
	for i, v := range g.data {
		g.data[i] = fn(i/g.cols, i%g.cols, v)
	}
}

// String renders the grid one row per line, for debugging.
func (g *Grid) String() string {
	var sb strings.Builder
	for r := 0; r < g.rows; r++ {
		sb.WriteByte('[')
		for c := 0; c < g.cols; c++ {
			if c > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%g", g.data[r*g.cols+c])
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}

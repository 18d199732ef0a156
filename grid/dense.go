package grid

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Dense returns a copy of the grid as a gonum *mat.Dense.
func (g *Grid) Dense() *mat.Dense {
	data := make([]float64, len(g.data))
	copy(data, g.data)

	return mat.NewDense(g.rows, g.cols, data)
}

// Min returns the smallest cell value.
func (g *Grid) Min() float64 { return floats.Min(g.data) }

// Max returns the largest cell value.
func (g *Grid) Max() float64 { return floats.Max(g.data) }

// Mean returns the arithmetic mean of all cells.
func (g *Grid) Mean() float64 { return floats.Sum(g.data) / float64(len(g.data)) }

package grid

import "errors"

var (
	// ErrEmptyGrid indicates the input 2D slice is empty.
	ErrEmptyGrid = errors.New("grid: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrInvalidDimensions indicates that requested dimensions are non-positive.
	ErrInvalidDimensions = errors.New("grid: dimensions must be > 0")
	// ErrShapeMismatch indicates two grids that must agree in shape do not.
	ErrShapeMismatch = errors.New("grid: shape mismatch")
)

package render

import "errors"

var (
	// ErrNilGrid is returned when Heatmap receives a nil grid.
	ErrNilGrid = errors.New("render: nil grid")

	// ErrTooSmall is returned for grids with fewer than 2 rows or columns,
	// which a heat map cannot place cells for.
	ErrTooSmall = errors.New("render: grid must be at least 2×2")
)

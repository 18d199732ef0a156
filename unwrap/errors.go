package unwrap

import "errors"

var (
	// ErrNilGrid indicates a nil wrapped grid was assigned.
	ErrNilGrid = errors.New("unwrap: wrapped grid is nil")
	// ErrDegenerateGrid indicates a grid with fewer than MinRows rows or MinCols columns.
	ErrDegenerateGrid = errors.New("unwrap: grid must be at least 2×2")
	// ErrNotSet indicates Unwrap was invoked before any wrapped grid was assigned.
	ErrNotSet = errors.New("unwrap: wrapped grid not set")
)

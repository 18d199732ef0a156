// Package grid provides the rectangular float64 grid every lvphase algorithm
// works on: wrapped phase, unwrapped phase and the diagnostic maps.
//
// What:
//
//   - Grid is a row-major R×C matrix of float64 stored in one flat slice.
//   - From2D deep-copies a caller's [][]float64 so later caller mutation
//     cannot leak into an in-flight computation.
//   - Point addresses a cell as (Row, Col); Offsets yields the 4- or 8-connected
//     neighbourhood used by traversals.
//   - Dense copies a grid into gonum's mat.Dense.
//   - Min, Max and Mean use gonum/floats.
//
// Complexity:
//
//   - At, Set, InBounds, Index, Coordinate: O(1).
//   - From2D, Clone, To2D, Dense, Min, Max, Mean: O(R×C) time and memory.
//
// Errors:
//
//   - ErrEmptyGrid: input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrInvalidDimensions: requested dimensions are not positive.
//   - ErrShapeMismatch: two grids were expected to share a shape.
//
// At and Set follow slice semantics and panic on out-of-range indices; callers
// that accept external coordinates check InBounds first.
package grid

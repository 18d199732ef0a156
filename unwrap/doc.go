// Package unwrap defines the common contract of every phase-unwrapping
// algorithm and implements the fast path-integration method of Itoh.
//
// What:
//
//   - Unwrapper is the interface every algorithm satisfies: assign a wrapped
//     grid, run Unwrap, read the unwrapped grid back.
//   - Base owns the wrapped/unwrapped pair. Assigning a wrapped grid deep-copies
//     it, allocates a fresh unwrapped grid and seeds cell [0,0] with the
//     wrapped value there; all unwrapped values are relative to that seed.
//     Getters hand out copies.
//   - Itoh integrates wrapped differences: column 0 top to bottom, then every
//     row left to right. Rows are independent once column 0 is known and are
//     processed in parallel on a bounded worker pool.
//
// Complexity:
//
//   - Itoh.Unwrap: O(R×C) time, O(1) extra memory.
//
// Options:
//
//   - WithWorkers(n): maximum goroutines for row integration (0 = GOMAXPROCS).
//   - WithColumnDifference(d): direction of the column-0 difference.
//
// Errors:
//
//   - ErrNilGrid: a nil grid was assigned.
//   - ErrDegenerateGrid: the grid has fewer than 2 rows or 2 columns.
//   - ErrNotSet: Unwrap was called before a grid was assigned.
//
// Itoh assumes no true phase jump between neighbours exceeds π; it does not
// look at residues. Use package goldstein for noisy data.
package unwrap

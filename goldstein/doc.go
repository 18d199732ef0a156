// Package goldstein implements residue-aware branch-cut phase unwrapping.
//
// 🚀 What is it?
//
//	Path integration gives wrong answers wherever the wrapped data contains
//	residues: 2×2 pixel loops whose wrapped differences do not sum to zero.
//	Goldstein's method connects residues of opposite charge (or a residue and
//	the grid border) with branch cuts, then integrates along paths that never
//	cross a cut, so the result is independent of the path taken.
//
// ✨ Pipeline (each stage is also callable on its own):
//
//  1. DetectResidues     — closed-loop integral test on every 2×2 block.
//  2. BalanceDipoles     — connect adjacent opposite-charge pairs directly.
//  3. ComputeBranchCuts  — expanding box search from every remaining residue,
//     accumulating charge until it is balanced or grounded to the border.
//  4. Unwrap             — flood-fill integration that avoids cut and border
//     pixels, which are filled in afterwards from unwrapped neighbours.
//
// ⚙️ Usage:
//
//	gs, err := goldstein.New(wrapped, goldstein.WithMaxBoxSize(32))
//	if err != nil { ... }
//	report, err := gs.Run()
//	if len(report.Unresolved) > 0 { ... } // non-fatal
//	surface := gs.Unwrapped()
//
// Complexity:
//
//   - DetectResidues:    O(R×C), parallel per row.
//   - BalanceDipoles:    O(R×C), sequential.
//   - ComputeBranchCuts: O(N·B²·A) worst case for N residues, final box size B
//     and active-set size A; sequential.
//   - Unwrap:            O(R×C) time and memory.
//
// Errors:
//
//   - unwrap.ErrNotSet / ErrNilGrid / ErrDegenerateGrid: precondition violations.
//   - ErrShapeMismatch: the flag grid no longer matches the phase grid
//     (internal invariant violation).
//
// Unresolved residues (box search exhausted) are not errors; they are listed
// in Report.Unresolved.
package goldstein

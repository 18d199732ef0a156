// Package lvphase is a toolkit for two-dimensional phase unwrapping:
// recovering a continuous surface from values known only modulo 2π.
//
// 🚀 What is inside?
//
//	grid/       — dense R×C float64 grid, gonum interop
//	phase/      — Wrap and the folded wrapped-phase Gradient
//	flags/      — per-pixel bit flags with a bound Cell accessor
//	unwrap/     — Unwrapper contract, shared Base and the Itoh algorithm
//	goldstein/  — residue detection, dipole balancing, branch cuts and
//	              cut-avoiding integration
//	synth/      — synthetic surfaces (ramps, paraboloids, simplex noise, vortices)
//	imaging/    — 8-bit grayscale images ⇄ grids
//	render/     — gonum/plot heat maps with residue and cut overlays
//	store/      — SQLite run history
//
// ✨ Choosing an algorithm:
//
//   - Itoh: O(R×C), exact when no true step between neighbours reaches π.
//     Fast and parallel, but one bad pixel corrupts everything after it.
//   - Goldstein: isolates inconsistencies with branch cuts first, so errors
//     stay local. Use it for noisy data or data with true singularities.
//
// The core never picks an algorithm on its own; the caller does (see
// cmd/lvphase for a complete pipeline).
//
// Quick example:
//
//	truth := synth.Paraboloid(64, 64, 0.02)
//	gs, _ := goldstein.New(phase.WrapGrid(truth))
//	report, _ := gs.Run()
//	surface := gs.Unwrapped() // equals truth up to a constant
//
// Logging is silent by default; see SetLogger.
package lvphase

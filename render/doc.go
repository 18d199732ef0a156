// Package render draws phase grids as gonum/plot heat maps.
//
// Row 0 of the grid is drawn at the top. Residues can be overlaid as glyphs
// at the centre of their 2×2 block (red for positive, blue for negative) and
// branch cuts as small black boxes on their pixels.
//
//	p, err := render.Heatmap(gs.Unwrapped(),
//		render.WithTitle("unwrapped"),
//		render.WithResidues(gs.Residues()),
//		render.WithCuts(gs.BranchCuts()))
//	if err != nil { ... }
//	err = render.Save(p, "out.png", 6*vg.Inch, 6*vg.Inch)
package render

package render

import (
	"fmt"
	"image/color"
	"path/filepath"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/katalvlaran/lvphase/goldstein"
	"github.com/katalvlaran/lvphase/grid"
)

var (
	positiveColor = color.RGBA{R: 220, A: 255}
	negativeColor = color.RGBA{B: 220, A: 255}
	cutColor      = color.Black
)

// gridXYZ adapts a matrix to plotter.GridXYZ. Column c maps to x = c and
// row r to y = rows−1−r.
type gridXYZ struct{ m *mat.Dense }

func (x gridXYZ) Dims() (c, r int) {
	r, c = x.m.Dims()
	return c, r
}

func (x gridXYZ) Z(c, r int) float64 {
	rows, _ := x.m.Dims()
	return x.m.At(rows-1-r, c)
}

func (x gridXYZ) X(c int) float64 { return float64(c) }
func (x gridXYZ) Y(r int) float64 { return float64(r) }

// Heatmap returns a plot of g with the requested overlays.
func Heatmap(g *grid.Grid, opts ...Option) (*plot.Plot, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if g.Rows() < 2 || g.Cols() < 2 {
		return nil, fmt.Errorf("%w: got %d×%d", ErrTooSmall, g.Rows(), g.Cols())
	}
	o := gatherOptions(opts...)

	p := plot.New()
	p.Title.Text = o.title
	p.X.Label.Text = "Column"
	p.Y.Label.Text = "Row (flipped)"

	hm := plotter.NewHeatMap(gridXYZ{m: g.Dense()}, o.pal)
	if hm.Min == hm.Max {
		hm.Max = hm.Min + 1
	}
	p.Add(hm)

	if err := addResidues(p, g.Rows(), o.residues); err != nil {
		return nil, err
	}
	if err := addCuts(p, g.Rows(), o.cuts); err != nil {
		return nil, err
	}

	return p, nil
}

func addResidues(p *plot.Plot, rows int, res []goldstein.Residue) error {
	var pos, neg plotter.XYs
	for _, r := range res {
		xy := plotter.XY{X: float64(r.Col) + 0.5, Y: float64(rows-1-r.Row) - 0.5}
		if r.Charge > 0 {
			pos = append(pos, xy)
		} else {
			neg = append(neg, xy)
		}
	}
	for _, set := range []struct {
		pts   plotter.XYs
		c     color.Color
		label string
	}{{pos, positiveColor, "+ residue"}, {neg, negativeColor, "− residue"}} {
		if len(set.pts) == 0 {
			continue
		}
		s, err := plotter.NewScatter(set.pts)
		if err != nil {
			return fmt.Errorf("render: residues: %w", err)
		}
		s.GlyphStyle.Color = set.c
		s.GlyphStyle.Shape = draw.CircleGlyph{}
		s.GlyphStyle.Radius = vg.Points(3)
		p.Add(s)
		p.Legend.Add(set.label, s)
	}

	return nil
}

func addCuts(p *plot.Plot, rows int, cuts []grid.Point) error {
	if len(cuts) == 0 {
		return nil
	}
	pts := make(plotter.XYs, len(cuts))
	for i, c := range cuts {
		pts[i] = plotter.XY{X: float64(c.Col), Y: float64(rows - 1 - c.Row)}
	}
	s, err := plotter.NewScatter(pts)
	if err != nil {
		return fmt.Errorf("render: cuts: %w", err)
	}
	s.GlyphStyle.Color = cutColor
	s.GlyphStyle.Shape = draw.BoxGlyph{}
	s.GlyphStyle.Radius = vg.Points(1.5)
	p.Add(s)
	p.Legend.Add("branch cut", s)

	return nil
}

// Save writes p to path; the format follows the file extension (png, svg,
// pdf, ...).
func Save(p *plot.Plot, path string, width, height vg.Length) error {
	if err := p.Save(width, height, filepath.Clean(path)); err != nil {
		return fmt.Errorf("render: save %s: %w", path, err)
	}
	return nil
}

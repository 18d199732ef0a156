package render

import (
	"gonum.org/v1/plot/palette"

	"github.com/katalvlaran/lvphase/goldstein"
	"github.com/katalvlaran/lvphase/grid"
)

// DefaultColors is the number of palette steps used by Heatmap.
const DefaultColors = 256

type options struct {
	title    string
	residues []goldstein.Residue
	cuts     []grid.Point
	pal      palette.Palette
}

// Option configures Heatmap.
type Option func(*options)

// WithTitle sets the plot title.
func WithTitle(title string) Option {
	return func(o *options) { o.title = title }
}

// WithResidues overlays residue markers.
func WithResidues(res []goldstein.Residue) Option {
	return func(o *options) { o.residues = res }
}

// WithCuts overlays branch-cut pixels.
func WithCuts(cuts []grid.Point) Option {
	return func(o *options) { o.cuts = cuts }
}

// WithPalette replaces the default heat palette. Panics on nil or a palette
// with fewer than two colours.
func WithPalette(p palette.Palette) Option {
	if p == nil || len(p.Colors()) < 2 {
		panic("render: WithPalette: palette needs at least two colours")
	}
	return func(o *options) { o.pal = p }
}

func gatherOptions(opts ...Option) options {
	o := options{pal: palette.Heat(DefaultColors, 1)}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

package render_test

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/lvphase/goldstein"
	"github.com/katalvlaran/lvphase/grid"
	"github.com/katalvlaran/lvphase/render"
	"github.com/katalvlaran/lvphase/synth"
)

func TestHeatmap_Errors(t *testing.T) {
	_, err := render.Heatmap(nil)
	assert.ErrorIs(t, err, render.ErrNilGrid)

	g, err := grid.New(1, 5)
	require.NoError(t, err)
	_, err = render.Heatmap(g)
	assert.ErrorIs(t, err, render.ErrTooSmall)

	assert.Panics(t, func() { render.WithPalette(nil) })
}

// TestHeatmap_PNG renders a vortex with overlays and decodes the result.
func TestHeatmap_PNG(t *testing.T) {
	w := synth.Vortex(24, 24, 11.3, 11.4, 1)
	gs, err := goldstein.New(w)
	require.NoError(t, err)
	_, err = gs.Run()
	require.NoError(t, err)

	p, err := render.Heatmap(w,
		render.WithTitle("vortex"),
		render.WithResidues(gs.Residues()),
		render.WithCuts(gs.BranchCuts()),
		render.WithPalette(palette.Heat(16, 1)))
	require.NoError(t, err)
	assert.Equal(t, "vortex", p.Title.Text)

	wt, err := p.WriterTo(3*vg.Inch, 3*vg.Inch, "png")
	require.NoError(t, err)
	var buf bytes.Buffer
	_, err = wt.WriteTo(&buf)
	require.NoError(t, err)

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Positive(t, img.Bounds().Dx())
}

func TestHeatmap_ConstantGrid(t *testing.T) {
	g, err := grid.Fill(4, 4, 0.5)
	require.NoError(t, err)
	p, err := render.Heatmap(g)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "flat.png")
	require.NoError(t, render.Save(p, path, 2*vg.Inch, 2*vg.Inch))
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestSave_BadPath(t *testing.T) {
	g, err := grid.Fill(3, 3, 0)
	require.NoError(t, err)
	p, err := render.Heatmap(g)
	require.NoError(t, err)
	err = render.Save(p, filepath.Join(t.TempDir(), "missing", "x.png"), vg.Inch, vg.Inch)
	assert.Error(t, err)
}

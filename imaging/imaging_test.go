package imaging_test

import (
	"bytes"
	"image"
	"image/color"
	"math"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/katalvlaran/lvphase/grid"
	"github.com/katalvlaran/lvphase/imaging"
)

func gradientGray(w, h int) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetGray(x, y, color.Gray{Y: uint8((x * 255) / (w - 1))})
		}
	}
	return img
}

func TestScale(t *testing.T) {
	assert.InDelta(t, -math.Pi, imaging.Scale(0, 0, 255, -math.Pi, math.Pi), 1e-12)
	assert.InDelta(t, math.Pi, imaging.Scale(255, 0, 255, -math.Pi, math.Pi), 1e-12)
	assert.InDelta(t, 127.5, imaging.Scale(0, -1, 1, 0, 255), 1e-12)
	assert.Equal(t, 3.0, imaging.Scale(42, 5, 5, 3, 9))
}

func TestFromGray(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 3, 2))
	img.SetGray(0, 0, color.Gray{Y: 0})
	img.SetGray(2, 1, color.Gray{Y: 255})
	img.SetGray(1, 0, color.Gray{Y: 51})

	g, err := imaging.FromGray(img, -math.Pi, math.Pi)
	require.NoError(t, err)
	assert.Equal(t, 2, g.Rows())
	assert.Equal(t, 3, g.Cols())
	assert.InDelta(t, -math.Pi, g.At(0, 0), 1e-12)
	assert.InDelta(t, math.Pi, g.At(1, 2), 1e-12)
	assert.InDelta(t, -math.Pi+0.4*math.Pi, g.At(0, 1), 1e-12)
}

func TestFromGray_Errors(t *testing.T) {
	_, err := imaging.FromGray(image.NewGray(image.Rect(0, 0, 0, 4)), 0, 1)
	assert.ErrorIs(t, err, imaging.ErrEmptyImage)

	img := image.NewGray(image.Rect(0, 0, 2, 2))
	for _, r := range [][2]float64{{1, 1}, {2, 1}, {math.NaN(), 1}, {0, math.Inf(1)}} {
		_, err := imaging.FromGray(img, r[0], r[1])
		assert.ErrorIs(t, err, imaging.ErrInvalidRange, "range %v", r)
	}
}

func TestFromImage_Color(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 1))
	img.Set(0, 0, color.RGBA{A: 255})
	img.Set(1, 0, color.RGBA{R: 255, G: 255, B: 255, A: 255})

	g, err := imaging.FromImage(img, 0, 1)
	require.NoError(t, err)
	assert.InDelta(t, 0, g.At(0, 0), 1e-12)
	assert.InDelta(t, 1, g.At(0, 1), 1e-12)
}

func TestToGray(t *testing.T) {
	g, err := grid.From2D([][]float64{{-2, 0}, {1, 2}})
	require.NoError(t, err)
	img := imaging.ToGray(g)
	assert.Equal(t, image.Rect(0, 0, 2, 2), img.Bounds())
	assert.Equal(t, uint8(0), img.GrayAt(0, 0).Y)
	assert.Equal(t, uint8(127), img.GrayAt(1, 0).Y)
	assert.Equal(t, uint8(191), img.GrayAt(0, 1).Y)
	assert.Equal(t, uint8(255), img.GrayAt(1, 1).Y)

	flat, err := grid.Fill(3, 3, 7)
	require.NoError(t, err)
	for _, p := range imaging.ToGray(flat).Pix {
		assert.Zero(t, p)
	}
	assert.Nil(t, imaging.ToGray(nil))
}

// TestRoundTrip maps gray → grid → gray and expects the original pixels.
func TestRoundTrip(t *testing.T) {
	src := gradientGray(16, 4)
	g, err := imaging.FromGray(src, -math.Pi, math.Pi)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, imaging.EncodePNG(&buf, g))
	back, err := imaging.Decode(&buf, -math.Pi, math.Pi)
	require.NoError(t, err)
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			assert.InDelta(t, g.At(r, c), back.At(r, c), 2*math.Pi/255+1e-9, "[%d, %d]", r, c)
		}
	}
}

func TestDecode_Formats(t *testing.T) {
	src := gradientGray(8, 3)
	want, err := imaging.FromGray(src, 0, 255)
	require.NoError(t, err)

	encoders := map[string]func(*bytes.Buffer) error{
		"tiff": func(b *bytes.Buffer) error { return tiff.Encode(b, src, nil) },
		"bmp":  func(b *bytes.Buffer) error { return bmp.Encode(b, src) },
	}
	for name, enc := range encoders {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, enc(&buf))
			got, err := imaging.Decode(&buf, 0, 255)
			require.NoError(t, err)
			assert.Equal(t, want.To2D(), got.To2D())
		})
	}

	_, err = imaging.Decode(bytes.NewReader([]byte("not an image")), 0, 1)
	assert.Error(t, err)
}

func TestSaveLoad(t *testing.T) {
	g, err := grid.From2D([][]float64{{0, 1, 2}, {3, 4, 5}})
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "phase.png")
	require.NoError(t, imaging.SavePNG(path, g))

	back, err := imaging.Load(path, 0, 5)
	require.NoError(t, err)
	assert.InDelta(t, 0, back.At(0, 0), 1e-12)
	assert.InDelta(t, 5, back.At(1, 2), 1e-12)

	_, err = imaging.Load(filepath.Join(t.TempDir(), "missing.png"), 0, 1)
	assert.Error(t, err)
	assert.ErrorIs(t, imaging.SavePNG(path, nil), imaging.ErrNilGrid)
}

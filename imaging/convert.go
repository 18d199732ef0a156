package imaging

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/katalvlaran/lvphase/grid"
)

// Scale maps v linearly from [srcMin, srcMax] to [dstMin, dstMax].
// A degenerate source range maps everything to dstMin.
func Scale(v, srcMin, srcMax, dstMin, dstMax float64) float64 {
	if srcMax == srcMin {
		return dstMin
	}
	return dstMin + (v-srcMin)*(dstMax-dstMin)/(srcMax-srcMin)
}

// FromGray converts img to a grid, mapping pixel values [0, 255] to [lo, hi].
// Row r of the grid is image row Bounds().Min.Y + r.
func FromGray(img *image.Gray, lo, hi float64) (*grid.Grid, error) {
	if err := checkRange(lo, hi); err != nil {
		return nil, err
	}
	b := img.Bounds()
	if b.Empty() {
		return nil, ErrEmptyImage
	}
	g, err := grid.New(b.Dy(), b.Dx())
	if err != nil {
		return nil, fmt.Errorf("imaging: %w", err)
	}
	g.Apply(func(r, c int, _ float64) float64 {
		return Scale(float64(img.GrayAt(b.Min.X+c, b.Min.Y+r).Y), 0, 255, lo, hi)
	})

	return g, nil
}

// FromImage converts any image through color.GrayModel, then as FromGray.
func FromImage(img image.Image, lo, hi float64) (*grid.Grid, error) {
	if gray, ok := img.(*image.Gray); ok {
		return FromGray(gray, lo, hi)
	}
	b := img.Bounds()
	gray := image.NewGray(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			gray.Set(x, y, color.GrayModel.Convert(img.At(x, y)))
		}
	}

	return FromGray(gray, lo, hi)
}

// ToGray renders g as an 8-bit image, stretching [g.Min(), g.Max()] to
// [0, 255]. A constant grid renders black. Returns nil for a nil grid.
func ToGray(g *grid.Grid) *image.Gray {
	if g == nil {
		return nil
	}
	lo, hi := g.Min(), g.Max()
	img := image.NewGray(image.Rect(0, 0, g.Cols(), g.Rows()))
	for r := 0; r < g.Rows(); r++ {
		row := g.Row(r)
		pix := img.Pix[r*img.Stride : r*img.Stride+g.Cols()]
		for c, v := range row {
			pix[c] = toByte(Scale(v, lo, hi, 0, 255))
		}
	}

	return img
}

func toByte(v float64) uint8 {
	switch {
	case math.IsNaN(v) || v <= 0:
		return 0
	case v >= 255:
		return 255
	default:
		return uint8(v)
	}
}

func checkRange(lo, hi float64) error {
	if math.IsNaN(lo) || math.IsNaN(hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) || lo >= hi {
		return fmt.Errorf("%w: [%g, %g]", ErrInvalidRange, lo, hi)
	}
	return nil
}

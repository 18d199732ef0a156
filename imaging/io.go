package imaging

import (
	"fmt"
	"image"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	"image/png"
	"io"
	"os"
	"path/filepath"

	_ "golang.org/x/image/bmp"  // register BMP decoder
	_ "golang.org/x/image/tiff" // register TIFF decoder

	"github.com/katalvlaran/lvphase/grid"
)

// Load decodes the image at path and converts it with FromImage.
func Load(path string, lo, hi float64) (*grid.Grid, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("imaging: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Decode(f, lo, hi)
}

// Decode reads an image in any registered format from r.
func Decode(r io.Reader, lo, hi float64) (*grid.Grid, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("imaging: decode: %w", err)
	}

	return FromImage(img, lo, hi)
}

// EncodePNG writes ToGray(g) as PNG to w.
func EncodePNG(w io.Writer, g *grid.Grid) error {
	if g == nil {
		return ErrNilGrid
	}
	if err := png.Encode(w, ToGray(g)); err != nil {
		return fmt.Errorf("imaging: encode PNG: %w", err)
	}
	return nil
}

// SavePNG writes ToGray(g) as a PNG file.
func SavePNG(path string, g *grid.Grid) error {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("imaging: create file: %w", err)
	}
	if err := EncodePNG(f, g); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}

// Package imaging converts between 8-bit grayscale images and phase grids.
//
// The mapping is linear in both directions:
//
//	FromGray: [0, 255]          → [min, max]  (default [−π, π])
//	ToGray:   [dataMin, dataMax] → [0, 255]
//
// Load decodes PNG, JPEG and GIF through the standard library and TIFF and
// BMP through golang.org/x/image. Colour images are converted with
// color.GrayModel first.
package imaging

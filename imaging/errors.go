package imaging

import "errors"

// Imaging errors.
var (
	// ErrEmptyImage is returned for images with zero width or height.
	ErrEmptyImage = errors.New("imaging: empty image")

	// ErrInvalidRange is returned when min >= max or either bound is not finite.
	ErrInvalidRange = errors.New("imaging: invalid value range")

	// ErrNilGrid is returned when a nil grid is passed for encoding.
	ErrNilGrid = errors.New("imaging: nil grid")
)

package skeletrace

import "errors"

// Sentinel errors returned by Thin. Both are contract violations per the
// component design. Trace returns no error and does not check its
// inputs.
var (
	// ErrDimensionMismatch is returned when len(buf) != width*height.
	ErrDimensionMismatch = errors.New("skeletrace: buffer length does not match width*height")

	// ErrInvalidTile is returned when a tile dimension is non-positive.
	ErrInvalidTile = errors.New("skeletrace: tile width and height must be positive")
)

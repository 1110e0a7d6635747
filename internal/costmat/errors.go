package costmat

import "errors"

var (
	// ErrInvalidDimensions indicates a non-positive n was passed to New.
	ErrInvalidDimensions = errors.New("costmat: n must be > 0")
	// ErrIndexOutOfBounds indicates a row or column index outside [0, n).
	ErrIndexOutOfBounds = errors.New("costmat: index out of bounds")
)

package lsfilter

import "errors"

var (
	// ErrUnknownDimension indicates PathCumulFilter was built for a
	// dimension name the Model no longer has registered.
	ErrUnknownDimension = errors.New("lsfilter: unknown dimension name")

	// ErrIndexOutOfRange indicates a delta referenced a variable index
	// outside the model's index space.
	ErrIndexOutOfRange = errors.New("lsfilter: variable index out of range")
)

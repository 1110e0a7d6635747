package neighbor

import "errors"

// ErrInvalidSize indicates a non-positive n was passed to Build.
var ErrInvalidSize = errors.New("neighbor: n must be > 0")

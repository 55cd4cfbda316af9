package geometry

import "errors"

// Domain errors. Operations return these instead of letting NaN or Inf leak
// into later computations.
var (
	ErrZeroVector      = errors.New("zero-magnitude vector cannot be normalized")
	ErrDegeneratePlane = errors.New("plane normal has zero magnitude")
	ErrDegenerateAxis  = errors.New("rotation axis has zero length")
)

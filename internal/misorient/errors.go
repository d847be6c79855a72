package misorient

import "errors"

var (
	// ErrSingularMatrix is returned when an orientation matrix cannot be inverted.
	ErrSingularMatrix = errors.New("singular matrix")
	// ErrShapeMismatch is returned when input is not a 3x3 matrix.
	ErrShapeMismatch = errors.New("shape mismatch: expected 3x3 matrix")
)

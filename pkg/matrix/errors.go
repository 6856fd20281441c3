package matrix

import "errors"

var (
	ErrEmpty         = errors.New("matrix: at least one column is required")
	ErrShapeMismatch = errors.New("matrix: shape mismatch")
	ErrNotSquare     = errors.New("matrix: matrix is not square")
	ErrOutOfRange    = errors.New("matrix: index out of range")
)

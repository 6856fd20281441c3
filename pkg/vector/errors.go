package vector

import "errors"

var (
	// ErrEmpty is returned when a vector is built without components.
	ErrEmpty = errors.New("vector: at least one component is required")

	// ErrLengthMismatch is returned when two vectors of different length are combined.
	ErrLengthMismatch = errors.New("vector: length mismatch")

	// ErrTooShort is returned when an operation needs more components than the vector has.
	ErrTooShort = errors.New("vector: not enough components")

	// ErrInvalidLine is returned when a persisted line cannot be decoded.
	ErrInvalidLine = errors.New("vector: invalid persisted line")
)

// Package vector provides fixed-length vectors of physical quantities.
//
// Vector is generic over its element type. Both quantity.Measurement and
// quantity.Uncertain satisfy the Element constraint, so the same algebra runs
// with or without uncertainty propagation:
//
//	r, err := vector.NewPosition(
//	    quantity.New(3, quantity.Metre),
//	    quantity.New(4, quantity.Metre),
//	    quantity.New(0, quantity.Metre),
//	)
//	if err != nil {
//	    return err
//	}
//	n, _ := r.Norm() // 5 m
//
// The length is fixed when a vector is built. Combining vectors of different
// length fails with ErrLengthMismatch; dimension errors from the components
// are returned wrapped with the index of the failing component, so
// errors.Is(err, quantity.ErrDimensionMismatch) still matches.
//
// Sums (Dot, Norm2) are accumulated in ascending component order.
//
// # Persistence
//
// Save appends a vector as a single line of space-separated values in a
// caller-chosen unit; Load reads such a file back. Any Appender / Reader
// works, including the backends in pkg/store.
package vector

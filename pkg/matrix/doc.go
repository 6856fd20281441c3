// Package matrix implements small dense matrices of physical quantities.
//
// A Matrix is stored column-major: C columns, each a vector.Vector of length
// R. Like vectors, matrices are generic over the element type, so they work
// with quantity.Measurement and quantity.Uncertain alike.
//
//	a, _ := vector.Of(quantity.Metre, 4, 0)
//	b, _ := vector.Of(quantity.Metre, 0, 4)
//	m, err := matrix.New(a, b)
//	if err != nil {
//	    return err
//	}
//	det, _ := m.Determinant() // 16 m^2
//	inv, _ := m.Inverse()     // entries in m^-1
//
// Determinant, Cofactor, Adjoint and Inverse need a square matrix and fail
// with ErrNotSquare otherwise. Inverse fails with quantity.ErrDivideByZero
// when the determinant is zero. The determinant is computed by cofactor
// expansion, which is fine for the small matrices this package targets.
package matrix

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/physkit/pkg/dimension"
	"github.com/dmitrymomot/physkit/pkg/matrix"
	"github.com/dmitrymomot/physkit/pkg/quantity"
	"github.com/dmitrymomot/physkit/pkg/vector"
)

type measurements = matrix.Matrix[quantity.Measurement]

func fromRows(t *testing.T, u quantity.Unit, rows ...[]float64) measurements {
	t.Helper()
	vs := make([]vector.Vector[quantity.Measurement], len(rows))
	for i, r := range rows {
		v, err := vector.Of(u, r...)
		require.NoError(t, err)
		vs[i] = v
	}
	m, err := matrix.FromRows(vs...)
	require.NoError(t, err)
	return m
}

func assertNear(t *testing.T, want, got measurements) {
	t.Helper()
	require.Equal(t, want.Rows(), got.Rows())
	require.Equal(t, want.Cols(), got.Cols())
	for r := range want.Rows() {
		for c := range want.Cols() {
			w, err := want.At(r, c)
			require.NoError(t, err)
			g, err := got.At(r, c)
			require.NoError(t, err)
			assert.Equal(t, w.Dimension(), g.Dimension(), "(%d, %d)", r, c)
			assert.InDelta(t, w.Value(), g.Value(), 1e-12, "(%d, %d)", r, c)
		}
	}
}

func TestNew(t *testing.T) {
	t.Parallel()

	_, err := matrix.New[quantity.Measurement]()
	require.ErrorIs(t, err, matrix.ErrEmpty)

	a, _ := vector.Of(quantity.Metre, 1, 2)
	b, _ := vector.Of(quantity.Metre, 1, 2, 3)
	_, err = matrix.New(a, b)
	require.ErrorIs(t, err, matrix.ErrShapeMismatch)

	_, err = matrix.Identity(0)
	require.ErrorIs(t, err, matrix.ErrEmpty)
}

func TestZeroValueMatrix(t *testing.T) {
	t.Parallel()

	var m matrix.Matrix[quantity.Measurement]
	var v vector.Vector[quantity.Measurement]
	assert.Equal(t, 0, m.Rows())
	assert.Equal(t, 0, m.Cols())

	_, err := m.MulVector(v)
	require.ErrorIs(t, err, matrix.ErrEmpty)
	_, err = m.Mul(m)
	require.ErrorIs(t, err, matrix.ErrEmpty)
	_, err = m.Trace()
	require.ErrorIs(t, err, matrix.ErrEmpty)
	_, err = m.Determinant()
	require.ErrorIs(t, err, matrix.ErrEmpty)
	_, err = m.Adjoint()
	require.ErrorIs(t, err, matrix.ErrEmpty)
	_, err = m.Inverse()
	require.ErrorIs(t, err, matrix.ErrEmpty)

	id, err := matrix.Identity(2)
	require.NoError(t, err)
	_, err = id.MulVector(v)
	require.ErrorIs(t, err, matrix.ErrShapeMismatch)
}

func TestAccessors(t *testing.T) {
	t.Parallel()

	m := fromRows(t, quantity.Metre, []float64{1, 2, 3}, []float64{4, 5, 6})
	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 3, m.Cols())

	v, err := m.At(1, 2)
	require.NoError(t, err)
	assert.True(t, v.Equal(quantity.New(6, quantity.Metre)))

	row, err := m.Row(0)
	require.NoError(t, err)
	want, _ := vector.Of(quantity.Metre, 1, 2, 3)
	assert.True(t, row.Equal(want))

	col, err := m.Column(1)
	require.NoError(t, err)
	want, _ = vector.Of(quantity.Metre, 2, 5)
	assert.True(t, col.Equal(want))

	_, err = m.At(2, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.Row(-1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.Column(3)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	tr := m.Transpose()
	assert.Equal(t, 3, tr.Rows())
	assert.Equal(t, 2, tr.Cols())
	assert.True(t, tr.Transpose().Equal(m))

	assert.Equal(t, "[(1 m, 2 m, 3 m); (4 m, 5 m, 6 m)]", m.String())
}

func TestArithmetic(t *testing.T) {
	t.Parallel()

	a := fromRows(t, quantity.Unitless, []float64{1, 2}, []float64{3, 4})
	b := fromRows(t, quantity.Unitless, []float64{5, 6}, []float64{7, 8})

	sum, err := a.Add(b)
	require.NoError(t, err)
	assertNear(t, fromRows(t, quantity.Unitless, []float64{6, 8}, []float64{10, 12}), sum)

	diff, err := b.Sub(a)
	require.NoError(t, err)
	assertNear(t, fromRows(t, quantity.Unitless, []float64{4, 4}, []float64{4, 4}), diff)

	prod, err := a.Mul(b)
	require.NoError(t, err)
	assertNear(t, fromRows(t, quantity.Unitless, []float64{19, 22}, []float64{43, 50}), prod)

	assertNear(t, fromRows(t, quantity.Unitless, []float64{2, 4}, []float64{6, 8}), a.Scale(2))

	inMetres := a.MulMeasurement(quantity.New(1, quantity.Metre))
	assertNear(t, fromRows(t, quantity.Metre, []float64{1, 2}, []float64{3, 4}), inMetres)

	x, _ := vector.Of(quantity.Metre, 1, 1)
	y, err := a.MulVector(x)
	require.NoError(t, err)
	want, _ := vector.Of(quantity.Metre, 3, 7)
	assert.True(t, y.Equal(want), "got %s", y)

	t.Run("shape errors", func(t *testing.T) {
		t.Parallel()
		wide := fromRows(t, quantity.Unitless, []float64{1, 2, 3})

		_, err := a.Add(wide)
		require.ErrorIs(t, err, matrix.ErrShapeMismatch)
		_, err = wide.Mul(a)
		require.ErrorIs(t, err, matrix.ErrShapeMismatch)
		short, _ := vector.Of(quantity.Unitless, 1, 2, 3)
		_, err = a.MulVector(short)
		require.ErrorIs(t, err, matrix.ErrShapeMismatch)
	})

	t.Run("dimension errors", func(t *testing.T) {
		t.Parallel()
		_, err := a.Add(inMetres)
		require.ErrorIs(t, err, quantity.ErrDimensionMismatch)
	})
}

func TestDeterminant(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		rows [][]float64
		want float64
	}{
		{"1x1", [][]float64{{-3}}, -3},
		{"diagonal 2x2", [][]float64{{4, 0}, {0, 4}}, 16},
		{"2x2", [][]float64{{1, 2}, {3, 4}}, -2},
		{"3x3", [][]float64{{6, 1, 1}, {4, -2, 5}, {2, 8, 7}}, -306},
		{"singular 3x3", [][]float64{{1, 2, 3}, {2, 4, 6}, {1, 0, 1}}, 0},
		{"4x4", [][]float64{{1, 0, 2, -1}, {3, 0, 0, 5}, {2, 1, 4, -3}, {1, 0, 5, 0}}, 30},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			det, err := fromRows(t, quantity.Unitless, tt.rows...).Determinant()
			require.NoError(t, err)
			assert.InDelta(t, tt.want, det.Value(), 1e-9)
		})
	}

	t.Run("dimension", func(t *testing.T) {
		t.Parallel()
		det, err := fromRows(t, quantity.Metre, []float64{4, 0}, []float64{0, 4}).Determinant()
		require.NoError(t, err)
		assert.True(t, det.Equal(quantity.New(16, quantity.SquareMetre)))
	})

	t.Run("not square", func(t *testing.T) {
		t.Parallel()
		_, err := fromRows(t, quantity.Unitless, []float64{1, 2}).Determinant()
		require.ErrorIs(t, err, matrix.ErrNotSquare)
	})

	t.Run("uncertain", func(t *testing.T) {
		t.Parallel()
		four, err := quantity.NewUncertain(4, 0.1, quantity.Metre)
		require.NoError(t, err)
		zero, err := quantity.NewUncertain(0, 0, quantity.Metre)
		require.NoError(t, err)
		c0, _ := vector.New(four, zero)
		c1, _ := vector.New(zero, four)
		m, err := matrix.New(c0, c1)
		require.NoError(t, err)

		det, err := m.Determinant()
		require.NoError(t, err)
		assert.InDelta(t, 16.0, det.Value(), 1e-12)
		assert.InDelta(t, 0.4*1.4142135623730951, det.Uncertainty(), 1e-12)
		assert.Equal(t, dimension.Area, det.Dimension())
	})
}

func TestTrace(t *testing.T) {
	t.Parallel()

	tr, err := fromRows(t, quantity.Second, []float64{1, 9}, []float64{9, 2}).Trace()
	require.NoError(t, err)
	assert.True(t, tr.Equal(quantity.New(3, quantity.Second)))

	_, err = fromRows(t, quantity.Second, []float64{1, 9}).Trace()
	require.ErrorIs(t, err, matrix.ErrNotSquare)
}

func TestMinorCofactorAdjoint(t *testing.T) {
	t.Parallel()

	m := fromRows(t, quantity.Unitless, []float64{1, 2, 3}, []float64{0, 4, 5}, []float64{1, 0, 6})

	minor, err := m.Minor(0, 1)
	require.NoError(t, err)
	assertNear(t, fromRows(t, quantity.Unitless, []float64{0, 5}, []float64{1, 6}), minor)

	c, err := m.Cofactor(0, 1)
	require.NoError(t, err)
	assert.InDelta(t, 5.0, c.Value(), 1e-12)

	_, err = m.Cofactor(3, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	adj, err := m.Adjoint()
	require.NoError(t, err)
	assertNear(t, fromRows(t, quantity.Unitless,
		[]float64{24, -12, -2},
		[]float64{5, 3, -5},
		[]float64{-4, 2, 4},
	), adj)

	two := fromRows(t, quantity.Unitless, []float64{1, 2}, []float64{3, 4})
	adj, err = two.Adjoint()
	require.NoError(t, err)
	assertNear(t, fromRows(t, quantity.Unitless, []float64{4, -2}, []float64{-3, 1}), adj)

	one := fromRows(t, quantity.Metre, []float64{7})
	adj, err = one.Adjoint()
	require.NoError(t, err)
	assertNear(t, fromRows(t, quantity.Unitless, []float64{1}), adj)

	_, err = one.Minor(0, 0)
	require.ErrorIs(t, err, matrix.ErrShapeMismatch)
	_, err = one.Cofactor(0, 0)
	require.ErrorIs(t, err, matrix.ErrShapeMismatch)
}

func TestInverse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		unit quantity.Unit
		rows [][]float64
	}{
		{"1x1", quantity.Metre, [][]float64{{4}}},
		{"diagonal", quantity.Unitless, [][]float64{{4, 0}, {0, 4}}},
		{"2x2 metres", quantity.Metre, [][]float64{{1, 2}, {3, 4}}},
		{"3x3", quantity.Unitless, [][]float64{{2, 0, 1}, {1, 3, 2}, {1, 1, 2}}},
		{"3x3 newtons", quantity.Newton, [][]float64{{1, 2, 3}, {0, 4, 5}, {1, 0, 6}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			m := fromRows(t, tt.unit, tt.rows...)
			inv, err := m.Inverse()
			require.NoError(t, err)
			col, err := inv.Column(0)
			require.NoError(t, err)
			assert.Equal(t, tt.unit.Dimension().Invert(), col.Dimension())

			id, err := matrix.Identity(m.Rows())
			require.NoError(t, err)

			left, err := inv.Mul(m)
			require.NoError(t, err)
			assertNear(t, id, left)

			right, err := m.Mul(inv)
			require.NoError(t, err)
			assertNear(t, id, right)
		})
	}

	t.Run("singular", func(t *testing.T) {
		t.Parallel()
		_, err := fromRows(t, quantity.Unitless, []float64{1, 2}, []float64{2, 4}).Inverse()
		require.ErrorIs(t, err, quantity.ErrDivideByZero)
	})

	t.Run("not square", func(t *testing.T) {
		t.Parallel()
		_, err := fromRows(t, quantity.Unitless, []float64{1, 2}).Inverse()
		require.ErrorIs(t, err, matrix.ErrNotSquare)
	})
}

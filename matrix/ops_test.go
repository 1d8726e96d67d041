package matrix_test

import (
	"testing"

	"github.com/statforge/formula/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mustStack builds a Dense from column vectors, failing the test on error.
func mustStack(t *testing.T, cols [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.Stack(cols)
	require.NoError(t, err)

	return m
}

// TestTranspose_RoundTrip verifies shape exchange and involution.
func TestTranspose_RoundTrip(t *testing.T) {
	m := mustStack(t, [][]float64{{1, 2, 3}, {4, 5, 6}}) // 3x2

	tr := m.Transpose()
	assert.Equal(t, 2, tr.Rows())
	assert.Equal(t, 3, tr.Cols())

	v, err := tr.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 6.0, v, "tr[1][2] == m[2][1]")

	back := tr.Transpose()
	assert.Equal(t, m.String(), back.String(), "double transpose is identity")
}

// TestMul_KnownProduct checks a hand-computed 2x2 product.
func TestMul_KnownProduct(t *testing.T) {
	// a = [[1 2] [3 4]], b = [[5 6] [7 8]]
	a := mustStack(t, [][]float64{{1, 3}, {2, 4}})
	b := mustStack(t, [][]float64{{5, 7}, {6, 8}})

	p, err := matrix.Mul(a, b)
	require.NoError(t, err)
	assert.Equal(t, "[19, 22]\n[43, 50]\n", p.String())
}

// TestMul_DimensionMismatch verifies inner-dimension validation.
func TestMul_DimensionMismatch(t *testing.T) {
	a := mustStack(t, [][]float64{{1, 2}})        // 2x1
	b := mustStack(t, [][]float64{{1, 2}, {3, 4}}) // 2x2

	_, err := matrix.Mul(a, b)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestMulVec_KnownProduct checks matrix-vector multiplication.
func TestMulVec_KnownProduct(t *testing.T) {
	m := mustStack(t, [][]float64{{1, 3}, {2, 4}}) // [[1 2] [3 4]]

	got, err := m.MulVec([]float64{1, 1})
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 7}, got)

	_, err = m.MulVec([]float64{1})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestSolve_KnownSystem solves a 2x2 system with a known solution.
func TestSolve_KnownSystem(t *testing.T) {
	// [[2 1] [1 3]] x = [3 5] → x = [0.8, 1.4]
	a := mustStack(t, [][]float64{{2, 1}, {1, 3}})

	x, err := matrix.Solve(a, []float64{3, 5})
	require.NoError(t, err)
	require.Len(t, x, 2)
	assert.InDelta(t, 0.8, x[0], 1e-12)
	assert.InDelta(t, 1.4, x[1], 1e-12)
}

// TestSolve_NeedsPivoting exercises the row-swap path with a zero leading
// entry.
func TestSolve_NeedsPivoting(t *testing.T) {
	// [[0 1] [1 0]] x = [2 3] → x = [3, 2]
	a := mustStack(t, [][]float64{{0, 1}, {1, 0}})

	x, err := matrix.Solve(a, []float64{2, 3})
	require.NoError(t, err)
	assert.InDelta(t, 3.0, x[0], 1e-12)
	assert.InDelta(t, 2.0, x[1], 1e-12)
}

// TestSolve_Singular verifies the sentinel on a rank-deficient system.
func TestSolve_Singular(t *testing.T) {
	a := mustStack(t, [][]float64{{1, 2}, {1, 2}}) // second column = first

	_, err := matrix.Solve(a, []float64{1, 2})
	assert.ErrorIs(t, err, matrix.ErrSingular)
}

// TestSolve_ShapeValidation covers non-square systems and rhs length.
func TestSolve_ShapeValidation(t *testing.T) {
	rect := mustStack(t, [][]float64{{1, 2, 3}}) // 3x1
	_, err := matrix.Solve(rect, []float64{1, 2, 3})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	sq := mustStack(t, [][]float64{{1, 0}, {0, 1}})
	_, err = matrix.Solve(sq, []float64{1})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestSolve_DoesNotMutateInputs verifies elimination runs on copies.
func TestSolve_DoesNotMutateInputs(t *testing.T) {
	a := mustStack(t, [][]float64{{2, 1}, {1, 3}})
	before := a.String()
	b := []float64{3, 5}

	_, err := matrix.Solve(a, b)
	require.NoError(t, err)
	assert.Equal(t, before, a.String(), "coefficient matrix must be untouched")
	assert.Equal(t, []float64{3, 5}, b, "rhs must be untouched")
}

package matrix

import (
	"fmt"
	"math"
)

// Transpose returns a new matrix with rows and columns exchanged.
// Determinism: fixed row-major read order, single allocation.
// Complexity: O(r·c) time and memory.
func (m *Dense) Transpose() *Dense {
	t := &Dense{r: m.c, c: m.r, data: make([]float64, len(m.data))}
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			t.data[j*t.c+i] = m.data[i*m.c+j]
		}
	}

	return t
}

// Mul returns the matrix product a·b.
// Stage 1 (Validate): inner dimensions must agree.
// Stage 2 (Execute): classic i-k-j loop over flat storage.
// Returns ErrDimensionMismatch when a.Cols() != b.Rows().
// Complexity: O(r·k·c) time, O(r·c) memory.
func Mul(a, b *Dense) (*Dense, error) {
	if a.c != b.r {
		return nil, fmt.Errorf("Mul: %dx%d by %dx%d: %w", a.r, a.c, b.r, b.c, ErrDimensionMismatch)
	}

	out := &Dense{r: a.r, c: b.c, data: make([]float64, a.r*b.c)}
	for i := 0; i < a.r; i++ {
		for k := 0; k < a.c; k++ {
			aik := a.data[i*a.c+k]
			if aik == 0 {
				continue
			}
			for j := 0; j < b.c; j++ {
				out.data[i*out.c+j] += aik * b.data[k*b.c+j]
			}
		}
	}

	return out, nil
}

// MulVec returns the matrix-vector product m·x as a fresh slice of length
// Rows().
// Returns ErrDimensionMismatch when len(x) != Cols().
// Complexity: O(r·c).
func (m *Dense) MulVec(x []float64) ([]float64, error) {
	if len(x) != m.c {
		return nil, fmt.Errorf("MulVec: vector length %d, want %d: %w", len(x), m.c, ErrDimensionMismatch)
	}

	out := make([]float64, m.r)
	for i := 0; i < m.r; i++ {
		sum := 0.0
		for j := 0; j < m.c; j++ {
			sum += m.data[i*m.c+j] * x[j]
		}
		out[i] = sum
	}

	return out, nil
}

// Solve solves the square linear system a·x = b by Gaussian elimination with
// partial pivoting, returning x. The inputs are not mutated; elimination runs
// on internal copies.
// Stage 1 (Validate): a square, len(b) == a.Rows().
// Stage 2 (Execute): forward elimination with row pivoting.
// Stage 3 (Finalize): back substitution.
// Returns ErrDimensionMismatch on shape violations and ErrSingular when the
// best available pivot is zero.
// Complexity: O(n³) time, O(n²) memory.
func Solve(a *Dense, b []float64) ([]float64, error) {
	if a.r != a.c {
		return nil, fmt.Errorf("Solve: %dx%d is not square: %w", a.r, a.c, ErrDimensionMismatch)
	}
	if len(b) != a.r {
		return nil, fmt.Errorf("Solve: rhs length %d, want %d: %w", len(b), a.r, ErrDimensionMismatch)
	}

	n := a.r
	work := a.Clone()
	rhs := make([]float64, n)
	copy(rhs, b)

	for col := 0; col < n; col++ {
		// Partial pivoting: pick the largest remaining |pivot| for stability.
		pivot := col
		for row := col + 1; row < n; row++ {
			if math.Abs(work.data[row*n+col]) > math.Abs(work.data[pivot*n+col]) {
				pivot = row
			}
		}
		if work.data[pivot*n+col] == 0 {
			return nil, fmt.Errorf("Solve: pivot column %d: %w", col, ErrSingular)
		}
		if pivot != col {
			for j := 0; j < n; j++ {
				work.data[col*n+j], work.data[pivot*n+j] = work.data[pivot*n+j], work.data[col*n+j]
			}
			rhs[col], rhs[pivot] = rhs[pivot], rhs[col]
		}

		// Eliminate below the pivot.
		for row := col + 1; row < n; row++ {
			factor := work.data[row*n+col] / work.data[col*n+col]
			if factor == 0 {
				continue
			}
			for j := col; j < n; j++ {
				work.data[row*n+j] -= factor * work.data[col*n+j]
			}
			rhs[row] -= factor * rhs[col]
		}
	}

	// Back substitution.
	x := make([]float64, n)
	for row := n - 1; row >= 0; row-- {
		sum := rhs[row]
		for j := row + 1; j < n; j++ {
			sum -= work.data[row*n+j] * x[j]
		}
		x[row] = sum / work.data[row*n+row]
	}

	return x, nil
}

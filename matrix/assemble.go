package matrix

import "fmt"

// Stack assembles an ordered list of feature vectors into a design matrix.
// Each input vector holds one derived feature across all n samples; the
// result has shape n × len(columns), with vector k becoming column k.
// This is the vstack-then-transpose step of formula evaluation: feature
// order in equals column order out, with no normalization or deduplication.
//
// Stage 1 (Validate): at least one vector, all lengths equal and positive.
// Stage 2 (Prepare): allocate the n×k Dense.
// Stage 3 (Execute): scatter each vector down its column.
// Returns ErrInvalidDimensions for empty input or empty vectors, and
// ErrDimensionMismatch for ragged lengths.
// Complexity: O(n·k) time and memory.
func Stack(columns [][]float64) (*Dense, error) {
	if len(columns) == 0 {
		return nil, fmt.Errorf("Stack: no columns: %w", ErrInvalidDimensions)
	}
	n := len(columns[0])
	if n == 0 {
		return nil, fmt.Errorf("Stack: empty column: %w", ErrInvalidDimensions)
	}
	for k, col := range columns {
		if len(col) != n {
			return nil, fmt.Errorf("Stack: column %d has length %d, want %d: %w", k, len(col), n, ErrDimensionMismatch)
		}
	}

	m, err := NewDense(n, len(columns))
	if err != nil {
		return nil, err
	}

	// Scatter column-by-column; flat row-major writes keep the inner loop tight.
	for k, col := range columns {
		for i, v := range col {
			m.data[i*m.c+k] = v
		}
	}

	return m, nil
}

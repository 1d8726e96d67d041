package matrix_test

import (
	"fmt"
	"testing"

	"github.com/statforge/formula/matrix"
)

// benchmarkStack assembles k feature vectors of n samples each.
func benchmarkStack(b *testing.B, n, k int) {
	cols := make([][]float64, k)
	for j := range cols {
		col := make([]float64, n)
		for i := range col {
			col[i] = float64(i * (j + 1))
		}
		cols[j] = col
	}

	b.ResetTimer() // ignore fixture setup
	for i := 0; i < b.N; i++ {
		if _, err := matrix.Stack(cols); err != nil {
			b.Fatalf("Stack failed: %v", err)
		}
	}
}

// BenchmarkStack_Narrow measures tall-and-narrow design matrices.
func BenchmarkStack_Narrow(b *testing.B) {
	for _, n := range []int{1000, 100000} {
		b.Run(fmt.Sprintf("n=%d/k=3", n), func(b *testing.B) {
			benchmarkStack(b, n, 3)
		})
	}
}

// BenchmarkStack_Wide measures wide design matrices (many derived features).
func BenchmarkStack_Wide(b *testing.B) {
	benchmarkStack(b, 10000, 64)
}

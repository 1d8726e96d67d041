package formula

import (
	"fmt"
	"strings"

	"github.com/statforge/formula/dataset"
)

// expandFeatures parses the independent expression into the ordered flat
// list of design-matrix columns.
//
// Stage 1 (Split): cut on "+", trim each term, reject duplicates.
// Stage 2 (Dispatch): per term in written order — intercept "1", ":"
// interaction, "*" cross, plain atom via resolve.
// Stage 3 (Finalize): return the ordered columns for matrix assembly.
//
// Column contribution per term: intercept and interaction append one column;
// a cross term appends three ([X1, X2, X1·X2]); a plain atom appends
// whatever resolve yields, preserving its internal sub-order.
func expandFeatures(indep string, ds *dataset.Dataset) ([][]float64, error) {
	raw := strings.Split(indep, "+")
	terms := make([]string, len(raw))
	seen := make(map[string]struct{}, len(raw))
	for i, r := range raw {
		t := strings.TrimSpace(r)
		if _, dup := seen[t]; dup {
			return nil, fmt.Errorf("duplicate term %q: %w", t, ErrSyntax)
		}
		seen[t] = struct{}{}
		terms[i] = t
	}

	var columns [][]float64
	for _, tm := range terms {
		switch {
		case tm == "1":
			columns = append(columns, ones(ds.Len()))

		case strings.Contains(tm, ":"):
			x1, x2, err := operands(tm, ":", ds)
			if err != nil {
				return nil, err
			}
			columns = append(columns, product(x1, x2))

		case strings.Contains(tm, "*"):
			x1, x2, err := operands(tm, "*", ds)
			if err != nil {
				return nil, err
			}
			// Main effects first, then the interaction.
			columns = append(columns, x1, x2, product(x1, x2))

		default:
			vecs, err := resolve(tm, ds)
			if err != nil {
				return nil, err
			}
			columns = append(columns, vecs...)
		}
	}

	return columns, nil
}

// operands splits an interaction or cross term on its operator and resolves
// both sides, each of which must yield exactly one column.
// Returns ErrSyntax when the operand count differs from two or an operand
// expands to multiple columns (dummy or polynomial operands are not
// supported inside ":" and "*").
func operands(tm, op string, ds *dataset.Dataset) ([]float64, []float64, error) {
	parts := strings.Split(tm, op)
	if len(parts) != 2 {
		return nil, nil, fmt.Errorf("operator %q in %q takes exactly two operands: %w", op, tm, ErrSyntax)
	}

	x1, err := resolveSingle(strings.TrimSpace(parts[0]), ds)
	if err != nil {
		return nil, nil, err
	}
	x2, err := resolveSingle(strings.TrimSpace(parts[1]), ds)
	if err != nil {
		return nil, nil, err
	}

	return x1, x2, nil
}

// resolveSingle resolves an atom that must contribute exactly one column.
func resolveSingle(atom string, ds *dataset.Dataset) ([]float64, error) {
	vecs, err := resolve(atom, ds)
	if err != nil {
		return nil, err
	}
	if len(vecs) != 1 {
		return nil, fmt.Errorf("operand %q expands to %d columns, want 1: %w", atom, len(vecs), ErrSyntax)
	}

	return vecs[0], nil
}

// ones returns the intercept column: n ones.
func ones(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = 1
	}

	return out
}

// product returns the elementwise product of two equal-length columns.
func product(a, b []float64) []float64 {
	out := make([]float64, len(a))
	for i := range a {
		out[i] = a[i] * b[i]
	}

	return out
}

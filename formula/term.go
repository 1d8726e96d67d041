package formula

import (
	"fmt"
	"math"
	"strconv"

	"github.com/statforge/formula/dataset"
	"github.com/statforge/formula/transform"
)

// resolve evaluates one trimmed feature atom against ds, returning one or
// more numeric columns of length ds.Len().
//
// Precedence, first match wins:
//  1. raw dataset column — checked before any pattern, so a column literally
//     named "c(age)" shadows dummy interpretation (intentional);
//  2. c(name) categorical dummy → one column per level, canonical order;
//  3. fn(name) named transform → one column;
//  4. I(base^exponentSpec) power → one column;
//  5. poly(name, degree) polynomial → degree columns, powers ascending;
//  6. anything else → ErrUnsupportedTerm.
func resolve(atom string, ds *dataset.Dataset) ([][]float64, error) {
	if ds.HasColumn(atom) {
		col, err := ds.Column(atom)
		if err != nil {
			return nil, err
		}

		return [][]float64{col}, nil
	}

	t := classify(atom)
	switch t.kind {
	case kindDummy:
		return resolveDummy(t, ds)
	case kindTransform:
		return resolveTransform(t, ds)
	case kindPower:
		return resolvePower(atom, t, ds)
	case kindPoly:
		return resolvePoly(t, ds)
	default:
		return nil, fmt.Errorf("term %q: %w", atom, ErrUnsupportedTerm)
	}
}

// resolveDummy expands c(name) into the dataset's one-hot indicators.
func resolveDummy(t term, ds *dataset.Dataset) ([][]float64, error) {
	if !ds.HasColumn(t.column) {
		return nil, fmt.Errorf("dummy column %q: %w", t.column, ErrUnknownColumn)
	}

	vectors, _, err := ds.OneHot(t.column)
	if err != nil {
		return nil, err
	}

	return vectors, nil
}

// resolveTransform applies the named elementwise function to the column.
// classify only emits registered names, but the registry stays the single
// evaluation authority: an unknown name reaching this point surfaces as
// ErrNumeric rather than being silently skipped.
func resolveTransform(t term, ds *dataset.Dataset) ([][]float64, error) {
	col, err := numericColumn(t.column, ds)
	if err != nil {
		return nil, err
	}

	out, err := transform.Apply(t.fn, col)
	if err != nil {
		return nil, fmt.Errorf("transform %q: %w", t.fn, ErrNumeric)
	}

	return [][]float64{out}, nil
}

// resolvePower evaluates I(base^exponentSpec) elementwise. The exponent may
// be fractional or negative. A NaN result (e.g. a fractional power of a
// negative base) aborts with ErrNumeric; infinities pass through, matching
// the underlying float64 power semantics.
func resolvePower(atom string, t term, ds *dataset.Dataset) ([][]float64, error) {
	if t.exp == "" {
		return nil, fmt.Errorf("term %q: malformed power expression: %w", atom, ErrNumeric)
	}

	col, err := numericColumn(t.column, ds)
	if err != nil {
		return nil, err
	}
	exp, err := parseExponent(t.exp)
	if err != nil {
		return nil, fmt.Errorf("term %q: %w", atom, err)
	}

	out := make([]float64, len(col))
	for i, v := range col {
		out[i] = math.Pow(v, exp)
		if math.IsNaN(out[i]) {
			return nil, fmt.Errorf("term %q: base %g with exponent %g: %w", atom, v, exp, ErrNumeric)
		}
	}

	return [][]float64{out}, nil
}

// resolvePoly expands poly(name, degree) into degree columns holding
// successive integer powers name^1 .. name^degree, ascending.
func resolvePoly(t term, ds *dataset.Dataset) ([][]float64, error) {
	degree, err := strconv.Atoi(t.degree)
	if err != nil {
		return nil, fmt.Errorf("polynomial degree %q: %w", t.degree, ErrNumeric)
	}
	if degree < 1 {
		return nil, fmt.Errorf("poly(%s, %d): %w", t.column, degree, ErrDegree)
	}

	col, err := numericColumn(t.column, ds)
	if err != nil {
		return nil, err
	}

	out := make([][]float64, degree)
	// Successive multiplication keeps integer bases exact for small degrees.
	prev := col
	for p := 0; p < degree; p++ {
		cur := make([]float64, len(col))
		if p == 0 {
			copy(cur, col)
		} else {
			for i := range col {
				cur[i] = prev[i] * col[i]
			}
		}
		out[p] = cur
		prev = cur
	}

	return out, nil
}

// numericColumn fetches a referenced column's values, mapping absence onto
// the package's ErrUnknownColumn sentinel.
func numericColumn(name string, ds *dataset.Dataset) ([]float64, error) {
	if !ds.HasColumn(name) {
		return nil, fmt.Errorf("column %q: %w", name, ErrUnknownColumn)
	}

	return ds.Column(name)
}

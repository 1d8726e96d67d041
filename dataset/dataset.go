package dataset

import (
	"fmt"
	"sort"
	"strconv"
)

// New creates an empty Dataset with a fixed row count of n.
// Stage 1 (Validate): n must be positive.
// Stage 2 (Finalize): allocate column storage and return.
// Returns ErrBadRowCount for n < 1.
func New(n int) (*Dataset, error) {
	if n < 1 {
		return nil, fmt.Errorf("New(%d): %w", n, ErrBadRowCount)
	}

	return &Dataset{n: n, cols: make(map[string]*column)}, nil
}

// register validates the (name, length) pair shared by both Add methods.
func (d *Dataset) register(name string, length int) error {
	if name == "" {
		return ErrEmptyName
	}
	if _, ok := d.cols[name]; ok {
		return fmt.Errorf("column %q: %w", name, ErrDuplicateColumn)
	}
	if length != d.n {
		return fmt.Errorf("column %q has %d rows, want %d: %w", name, length, d.n, ErrBadRowCount)
	}

	return nil
}

// AddNumeric registers a numeric column under name. The values slice is
// copied, so later mutation of the caller's slice does not affect the table.
// Returns ErrEmptyName, ErrDuplicateColumn, or ErrBadRowCount.
func (d *Dataset) AddNumeric(name string, values []float64) error {
	if err := d.register(name, len(values)); err != nil {
		return err
	}

	nums := make([]float64, len(values))
	copy(nums, values)
	d.cols[name] = &column{kind: numericKind, nums: nums}
	d.order = append(d.order, name)

	return nil
}

// AddCategorical registers a categorical (string-labelled) column under name.
// The labels slice is copied. Categorical columns participate in OneHot only;
// requesting them via Column yields ErrColumnType.
// Returns ErrEmptyName, ErrDuplicateColumn, or ErrBadRowCount.
func (d *Dataset) AddCategorical(name string, labels []string) error {
	if err := d.register(name, len(labels)); err != nil {
		return err
	}

	cats := make([]string, len(labels))
	copy(cats, labels)
	d.cols[name] = &column{kind: categoricalKind, cats: cats}
	d.order = append(d.order, name)

	return nil
}

// Len returns the fixed row count n.
// Complexity: O(1).
func (d *Dataset) Len() int {
	return d.n
}

// HasColumn reports whether a column named name exists.
// Complexity: O(1).
func (d *Dataset) HasColumn(name string) bool {
	_, ok := d.cols[name]
	return ok
}

// Columns returns the column names in insertion order.
// The returned slice is freshly allocated on every call.
func (d *Dataset) Columns() []string {
	out := make([]string, len(d.order))
	copy(out, d.order)

	return out
}

// Column returns the numeric values of the named column as a fresh slice of
// length Len().
// Returns ErrUnknownColumn for an absent name and ErrColumnType when the
// column is categorical.
func (d *Dataset) Column(name string) ([]float64, error) {
	col, ok := d.cols[name]
	if !ok {
		return nil, fmt.Errorf("column %q: %w", name, ErrUnknownColumn)
	}
	if col.kind != numericKind {
		return nil, fmt.Errorf("column %q: %w", name, ErrColumnType)
	}

	out := make([]float64, d.n)
	copy(out, col.nums)

	return out, nil
}

// OneHot expands the named column into indicator vectors, one per distinct
// value, each of length Len(). The second result lists the distinct values
// (levels) in the canonical order the vectors follow: lexicographic ascending
// for categorical columns, numeric ascending for numeric columns. For every
// row exactly one indicator equals 1 and the rest equal 0.
// Stage 1 (Validate): resolve the column.
// Stage 2 (Prepare): collect distinct values and sort canonically.
// Stage 3 (Execute): fill one indicator vector per level.
// Returns ErrUnknownColumn for an absent name.
// Complexity: O(n·k + k·log k) for k distinct values.
func (d *Dataset) OneHot(name string) ([][]float64, []string, error) {
	col, ok := d.cols[name]
	if !ok {
		return nil, nil, fmt.Errorf("column %q: %w", name, ErrUnknownColumn)
	}

	// Collect the per-row label of each observation.
	labels := make([]string, d.n)
	if col.kind == categoricalKind {
		copy(labels, col.cats)
	} else {
		for i, v := range col.nums {
			labels[i] = strconv.FormatFloat(v, 'g', -1, 64)
		}
	}

	// Determine canonical level order.
	var levels []string
	if col.kind == categoricalKind {
		seen := make(map[string]struct{}, d.n)
		for _, l := range labels {
			if _, ok = seen[l]; !ok {
				seen[l] = struct{}{}
				levels = append(levels, l)
			}
		}
		sort.Strings(levels)
	} else {
		seen := make(map[float64]struct{}, d.n)
		var distinct []float64
		for _, v := range col.nums {
			if _, ok = seen[v]; !ok {
				seen[v] = struct{}{}
				distinct = append(distinct, v)
			}
		}
		sort.Float64s(distinct)
		levels = make([]string, len(distinct))
		for i, v := range distinct {
			levels[i] = strconv.FormatFloat(v, 'g', -1, 64)
		}
	}

	// One indicator vector per level, level order fixed above.
	index := make(map[string]int, len(levels))
	for i, l := range levels {
		index[l] = i
	}
	vectors := make([][]float64, len(levels))
	for i := range vectors {
		vectors[i] = make([]float64, d.n)
	}
	for row, l := range labels {
		vectors[index[l]][row] = 1
	}

	return vectors, levels, nil
}

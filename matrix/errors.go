// Package matrix: sentinel error set.
// Every message carries the "matrix: ..." prefix for consistent grepping.
// Kernels return these sentinels directly; outer layers may wrap them with
// fmt.Errorf("ctx: %w", ...) and callers match via errors.Is.

package matrix

import "errors"

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are
	// non-positive. Constructors validate before allocation.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrIndexOutOfBounds indicates that a row or column index is outside the
	// valid range. Public indexers (At/Set/Row/Col) return this, never panic.
	ErrIndexOutOfBounds = errors.New("matrix: index out of bounds")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. ragged Stack input or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrSingular is returned when elimination meets a pivot of exactly zero
	// after partial pivoting, i.e. the system has no unique solution.
	ErrSingular = errors.New("matrix: singular matrix")
)

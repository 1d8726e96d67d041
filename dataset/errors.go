// Package dataset: sentinel error set.
// All public operations return these sentinels (possibly wrapped with
// fmt.Errorf("ctx: %w", ...)); tests and callers match via errors.Is.
// No operation panics on user input.

package dataset

import "errors"

var (
	// ErrBadRowCount indicates a non-positive row count at construction, or a
	// column whose length differs from the dataset's fixed row count.
	ErrBadRowCount = errors.New("dataset: row count mismatch")

	// ErrEmptyName indicates an attempt to add a column under an empty name.
	ErrEmptyName = errors.New("dataset: empty column name")

	// ErrDuplicateColumn indicates two columns registered under the same name.
	ErrDuplicateColumn = errors.New("dataset: duplicate column name")

	// ErrUnknownColumn indicates a referenced column absent from the dataset.
	ErrUnknownColumn = errors.New("dataset: unknown column")

	// ErrColumnType indicates a categorical column requested where numeric
	// values are required.
	ErrColumnType = errors.New("dataset: column is not numeric")
)

// Package dataset provides the in-memory, column-oriented table consumed by
// the formula engine.
//
// What:
//
//   - Dataset holds named columns over a fixed row count n.
//   - Numeric columns store []float64; categorical columns store []string.
//   - OneHot expands a column into one indicator vector per distinct value,
//     in the canonical order (lexicographic for categorical values, ascending
//     for numeric values).
//
// Why:
//
//   - The formula core only needs four operations — existence check, value
//     retrieval, one-hot expansion, and row count — so the table stays small
//     and deterministic instead of pulling in a dataframe dependency.
//
// Concurrency:
//
//   - A Dataset is mutable only through AddNumeric/AddCategorical. Once
//     construction is finished it is read-only from the engine's perspective
//     and safe for concurrent readers.
//
// Errors:
//
//   - ErrBadRowCount: requested row count is < 1, or a column's length
//     differs from the dataset's row count.
//   - ErrEmptyName: a column was added under an empty name.
//   - ErrDuplicateColumn: a column name was added twice.
//   - ErrUnknownColumn: a referenced column does not exist.
//   - ErrColumnType: a categorical column was requested as numeric values.
package dataset

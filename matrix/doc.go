// Package matrix provides the dense container and assembly kernels behind
// the engine's design matrices.
//
// What:
//
//   - Dense: a row-major float64 matrix with bounds-checked, error-returning
//     accessors (no panics on user input).
//   - Stack: turns an ordered list of equal-length feature vectors into the
//     samples × features design matrix, one vector per column.
//   - Small linear-algebra kernels (Transpose, Mul, MulVec, Solve) used by
//     model-fitting callers such as the OLS demo.
//
// Determinism:
//
//   - Column order in Stack is exactly the input order; no normalization,
//     scaling, or deduplication is applied.
//   - All loops run in fixed row-major order.
//
// Errors:
//
//   - ErrInvalidDimensions: a requested shape has a non-positive dimension.
//   - ErrIndexOutOfBounds: a row or column index is outside the valid range.
//   - ErrDimensionMismatch: operand shapes are incompatible (ragged Stack
//     input, Mul with a.Cols != b.Rows, MulVec/Solve length mismatch).
//   - ErrSingular: a zero pivot was met during Solve's elimination.
package matrix

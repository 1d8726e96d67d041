// Package formula: sentinel error set.
// Every message carries the "formula: ..." prefix. Internal layers wrap these
// with fmt.Errorf("ctx: %w", ...) to attach the offending term; callers match
// via errors.Is. Evaluation never panics on user input.

package formula

import "errors"

var (
	// ErrSyntax covers structural violations of the formula grammar: a
	// separator count other than one, textually duplicate feature terms,
	// ":" or "*" with an operand count other than two, and a multi-column
	// atom (dummy, polynomial) used as an interaction operand.
	ErrSyntax = errors.New("formula: invalid formula syntax")

	// ErrUnknownColumn indicates the response or a referenced column is
	// absent from the dataset.
	ErrUnknownColumn = errors.New("formula: unknown column")

	// ErrUnsupportedTerm indicates an atom that matches none of the
	// recognized syntax forms.
	ErrUnsupportedTerm = errors.New("formula: unsupported term")

	// ErrDegree indicates a polynomial degree below 1.
	ErrDegree = errors.New("formula: polynomial degree must be >= 1")

	// ErrNumeric indicates a failure inside numeric evaluation: a malformed
	// exponent or degree literal, a malformed power expression, or a domain
	// violation such as a fractional power of a negative base.
	ErrNumeric = errors.New("formula: numeric evaluation failed")

	// ErrOption indicates a recognized evaluation option with an invalid
	// value, e.g. a negative chunk size.
	ErrOption = errors.New("formula: invalid option")

	// ErrNilDataset indicates that a nil dataset was passed to Eval.
	ErrNilDataset = errors.New("formula: dataset is nil")
)

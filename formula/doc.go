// Package formula implements the parser/evaluator core: it translates an
// R-style formula string into a design matrix X and a response vector y
// drawn from a dataset.
//
// Grammar (informal EBNF):
//
//	formula     := dependent "~" independent
//	independent := term ("+" term)*
//	term        := "1" | interaction | cross | atom
//	interaction := atom ":" atom
//	cross       := atom "*" atom
//	atom        := columnName | dummyTerm | transformTerm | powerTerm | polyTerm
//	dummyTerm      := "c(" name ")"
//	transformTerm  := fnName "(" name ")"      ; fnName ∈ {log,exp,sin,cos,tan,tanh,sqrt}
//	powerTerm      := "I(" name "^" exponentSpec ")"
//	polyTerm       := "poly(" name "," intLiteral ")"
//	exponentSpec   := numericLiteral | "(" rationalSum ")"
//	rationalSum    := rationalLiteral (whitespace rationalLiteral)*   ; summed
//
// Atom resolution is precedence-ordered and first-match-wins. The dataset
// lookup comes first: a column literally named "c(age)" resolves as a raw
// column and shadows pattern interpretation. This shadowing is intentional.
//
// Column ordering of X is fully deterministic: terms appear in the order
// written, dummy columns follow the dataset's canonical level order,
// polynomial columns ascend from degree 1, and a cross term A*B contributes
// [A, B, A·B].
//
// Evaluation is a pure function of (formula, dataset, options). No state
// survives a call, so a single importing package may evaluate concurrently
// against shared datasets without locking.
//
// Errors:
//
//   - ErrSyntax: separator count != 1, duplicate terms, ":"/"*" arity != 2,
//     or a multi-column atom used as an interaction operand.
//   - ErrUnknownColumn: response or referenced column absent from the dataset.
//   - ErrUnsupportedTerm: an atom matches none of the recognized forms.
//   - ErrDegree: polynomial degree below 1.
//   - ErrNumeric: malformed exponent or degree literal, or a numeric domain
//     violation during power evaluation (NaN result).
//   - ErrOption: a recognized option carries an invalid value.
//
// Every failure aborts the whole evaluation; no partial X or y is returned.
package formula

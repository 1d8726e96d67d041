// Package formula is an in-memory engine that turns R-style model formulas
// into numeric arrays — a design matrix X and a response vector y — drawn
// from a column-oriented dataset.
//
// 🚀 What is statforge/formula?
//
//	A small, deterministic library that brings together:
//		• Formula grammar: "y ~ 1 + x + c(g) + log(z) + I(x^(1/2)) + poly(x,3) + a:b + a*b"
//		• Term resolution: raw columns, categorical dummies, named transforms,
//		  power expressions with exact rational exponents, polynomial expansion
//		• Interactions: pairwise ":" products and "*" cross terms (main effects + product)
//		• Matrix assembly: deterministic column ordering, samples × features output
//
// ✨ Why choose it?
//
//   - Predictable – column order always follows the formula as written
//   - Stateless – every call threads the dataset explicitly; safe for concurrent use
//   - Typed failures – every error is a package sentinel matched via errors.Is
//   - Pure Go core – no cgo; testify for tests, gonum/plot only in the demos
//
// Everything is organized under four subpackages:
//
//	formula/   — the parser/evaluator core: Eval(formula, dataset) → (X, y)
//	dataset/   — column-oriented table: numeric & categorical columns, one-hot
//	transform/ — closed registry of elementwise functions (log, exp, sin, ...)
//	matrix/    — dense design-matrix container and assembly kernels
//
// Quick example:
//
//	ds, _ := dataset.New(3)
//	_ = ds.AddNumeric("x", []float64{1, 2, 3})
//	_ = ds.AddNumeric("y", []float64{10, 20, 30})
//	X, y, err := formula.Eval("y ~ 1 + x", ds)
//	// X = [[1 1] [1 2] [1 3]], y = [10 20 30]
//
// Runnable demos live under cmd/examples.
package formula

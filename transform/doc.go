// Package transform holds the closed registry of elementwise math functions
// that may appear as named transforms inside formula terms.
//
// What:
//
//   - A static mapping from name → single-argument numeric function.
//   - The name set is fixed at design time: log, exp, sin, cos, tan, tanh, sqrt.
//   - Lookup outside the set fails explicitly with ErrUnknownTransform;
//     there is no registration API and no fallthrough.
//
// Why:
//
//   - Formula terms such as "log(income)" or "sqrt(area)" resolve their
//     function here; keeping the set closed keeps the grammar decidable
//     and evaluation deterministic.
//
// Errors:
//
//   - ErrUnknownTransform: requested name is not in the registry.
package transform

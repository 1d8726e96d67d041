// Package formula: term classification types and evaluation options.
package formula

// termKind discriminates the recognized syntactic forms of a feature atom.
// The set is closed; classification produces exactly one kind per atom and
// evaluation switches exhaustively over it.
type termKind int

const (
	// kindDummy is a categorical dummy request: c(name).
	kindDummy termKind = iota

	// kindTransform is a named elementwise transform: fn(name) with fn drawn
	// from the closed transform registry.
	kindTransform

	// kindPower is a power expression: I(name^exponentSpec).
	kindPower

	// kindPoly is a polynomial expansion: poly(name, degree).
	kindPoly

	// kindUnknown marks an atom matching none of the recognized forms.
	kindUnknown
)

// term is the tagged classification of one feature atom. kind selects which
// of the remaining fields carry meaning; unused fields stay zero.
//
// Raw-column atoms never reach classification — the dataset lookup in
// resolve precedes it — so there is no rawColumn kind here.
type term struct {
	kind   termKind
	column string // referenced column name (all kinds)
	fn     string // transform name (kindTransform)
	exp    string // raw exponent spec text, trimmed (kindPower)
	degree string // raw degree literal, trimmed (kindPoly)
}

// Options configures formula evaluation.
//
// Fields:
//   - ChunkSize — reserved for future paginated evaluation. A value of 0
//     (the default) means "all rows at once". Recognized and validated, but
//     currently has no observable effect on output.
type Options struct {
	ChunkSize int
}

// DefaultOptions returns the evaluation defaults: ChunkSize 0 (no chunking).
func DefaultOptions() Options {
	return Options{ChunkSize: 0}
}

// Option mutates Options in the usual functional-option style.
type Option func(*Options)

// WithChunkSize sets the reserved chunk size. Values below 0 are rejected by
// Eval with ErrOption; 0 restores the default. The knob is inert for now and
// exists so callers can opt in before paginated evaluation lands.
func WithChunkSize(n int) Option {
	return func(o *Options) { o.ChunkSize = n }
}

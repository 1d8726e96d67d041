package dataset

// columnKind discriminates the backing storage of a named column.
type columnKind int

const (
	// numericKind columns store float64 values and may appear anywhere a
	// formula expects numbers.
	numericKind columnKind = iota

	// categoricalKind columns store string labels and participate only in
	// one-hot expansion.
	categoricalKind
)

// column is the internal storage for one named column. Exactly one of nums
// or cats is populated, selected by kind.
type column struct {
	kind columnKind
	nums []float64
	cats []string
}

// Dataset is a column-oriented table with a fixed row count.
//
// Construction is two-phase: New fixes the row count, AddNumeric and
// AddCategorical register columns. After construction the table is
// read-only; the formula engine never mutates it.
type Dataset struct {
	n     int                // fixed row count, > 0
	cols  map[string]*column // name → storage
	order []string           // insertion order, for deterministic introspection
}

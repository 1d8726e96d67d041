package formula

import (
	"fmt"
	"strings"

	"github.com/statforge/formula/dataset"
	"github.com/statforge/formula/matrix"
)

// separator splits the formula into its dependent and independent sides.
const separator = "~"

// Eval translates an R-style formula into a design matrix X and a response
// vector y drawn from ds.
//
// Stage 1 (Options): apply functional options and validate them.
// Stage 2 (Split): the formula must contain exactly one "~"; both sides are
// trimmed into the response name and the feature expression.
// Stage 3 (Response): the response must be a numeric dataset column; y is a
// fresh copy of its values.
// Stage 4 (Features): the independent expression expands into ordered
// feature columns, which Stack assembles into the n × totalFeatures matrix.
//
// Eval is a pure function of its arguments: the dataset threads through
// every internal call and no state survives, so concurrent evaluations
// against a shared dataset are safe without locking.
//
// Errors: ErrOption, ErrNilDataset, ErrSyntax, ErrUnknownColumn,
// ErrUnsupportedTerm, ErrDegree, ErrNumeric — see the package doc for the
// taxonomy. Any failure aborts the call; no partial X or y is returned.
func Eval(formula string, ds *dataset.Dataset, opts ...Option) (*matrix.Dense, []float64, error) {
	cfg := DefaultOptions()
	for _, o := range opts {
		o(&cfg)
	}
	// ChunkSize is reserved for paginated evaluation; today it is validated
	// and otherwise inert.
	if cfg.ChunkSize < 0 {
		return nil, nil, fmt.Errorf("chunk size %d: %w", cfg.ChunkSize, ErrOption)
	}
	if ds == nil {
		return nil, nil, ErrNilDataset
	}

	if n := strings.Count(formula, separator); n != 1 {
		return nil, nil, fmt.Errorf("formula %q has %d separators, want 1: %w", formula, n, ErrSyntax)
	}
	dep, indep, _ := strings.Cut(formula, separator)
	dep = strings.TrimSpace(dep)
	indep = strings.TrimSpace(indep)

	if !ds.HasColumn(dep) {
		return nil, nil, fmt.Errorf("response %q: %w", dep, ErrUnknownColumn)
	}
	y, err := ds.Column(dep)
	if err != nil {
		return nil, nil, err
	}

	columns, err := expandFeatures(indep, ds)
	if err != nil {
		return nil, nil, err
	}
	X, err := matrix.Stack(columns)
	if err != nil {
		return nil, nil, err
	}

	return X, y, nil
}

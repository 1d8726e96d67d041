package formula_test

import "github.com/statforge/formula/dataset"

// newTwoColumn builds the two-row fixture used by cross/interaction tests:
// x = [1, 2], z = [3, 4], y = [0, 0].
func newTwoColumn() (*dataset.Dataset, error) {
	ds, err := dataset.New(2)
	if err != nil {
		return nil, err
	}
	if err = ds.AddNumeric("y", []float64{0, 0}); err != nil {
		return nil, err
	}
	if err = ds.AddNumeric("x", []float64{1, 2}); err != nil {
		return nil, err
	}
	if err = ds.AddNumeric("z", []float64{3, 4}); err != nil {
		return nil, err
	}

	return ds, nil
}

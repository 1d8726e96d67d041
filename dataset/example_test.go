package dataset_test

import (
	"fmt"

	"github.com/statforge/formula/dataset"
)

// ExampleDataset_OneHot expands a categorical column into indicator vectors
// in lexicographic level order.
func ExampleDataset_OneHot() {
	ds, _ := dataset.New(4)
	_ = ds.AddCategorical("city", []string{"lviv", "kyiv", "lviv", "odesa"})

	vectors, levels, _ := ds.OneHot("city")
	fmt.Println(levels)
	for _, v := range vectors {
		fmt.Println(v)
	}
	// Output:
	// [kyiv lviv odesa]
	// [0 1 0 0]
	// [1 0 1 0]
	// [0 0 0 1]
}

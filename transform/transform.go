package transform

import (
	"errors"
	"math"
	"sort"
)

// ErrUnknownTransform indicates a lookup for a name outside the closed registry.
var ErrUnknownTransform = errors.New("transform: unknown transform name")

// Func is a single-argument elementwise numeric function.
type Func func(float64) float64

// ops is the closed name → function mapping. The set is fixed at design time;
// adding entries is a source change, not a runtime operation.
var ops = map[string]Func{
	"log":  math.Log,
	"exp":  math.Exp,
	"sin":  math.Sin,
	"cos":  math.Cos,
	"tan":  math.Tan,
	"tanh": math.Tanh,
	"sqrt": math.Sqrt,
}

// Has reports whether name is a registered transform.
// Complexity: O(1).
func Has(name string) bool {
	_, ok := ops[name]
	return ok
}

// Names returns all registered transform names in lexicographic order.
// The returned slice is freshly allocated on every call.
// Complexity: O(k·log k) for k registered names.
func Names() []string {
	names := make([]string, 0, len(ops))
	for name := range ops {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// Lookup returns the elementwise function registered under name.
// Stage 1 (Validate): consult the closed registry.
// Stage 2 (Finalize): return the function or ErrUnknownTransform.
// Complexity: O(1).
func Lookup(name string) (Func, error) {
	fn, ok := ops[name]
	if !ok {
		return nil, ErrUnknownTransform
	}

	return fn, nil
}

// Apply applies the named transform elementwise to src and returns a fresh
// slice of the same length; src is never mutated.
// Returns ErrUnknownTransform when name is outside the registry.
// Complexity: O(n) time and memory.
func Apply(name string, src []float64) ([]float64, error) {
	fn, err := Lookup(name)
	if err != nil {
		return nil, err
	}

	out := make([]float64, len(src))
	for i, v := range src {
		out[i] = fn(v)
	}

	return out, nil
}

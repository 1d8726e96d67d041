package formula

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

// parseExponent turns the raw exponent spec of a power term into a float64.
//
// Two shapes are accepted:
//   - a bare numeric literal: "2", "-1", "0.5";
//   - a parenthesized spec: "(0.5)" parses its inner text as a numeric
//     literal, while "(1/2)" — any inner text containing "/" — treats
//     whitespace-separated tokens as exact rational literals, sums them with
//     big.Rat, and converts the exact sum to float64 at the very end.
//
// The rational path keeps sums like "1/3 1/6" exact before the single final
// rounding, mirroring how fractional exponents are written in R formulas.
// Returns ErrNumeric (wrapped) for every malformed spec.
func parseExponent(spec string) (float64, error) {
	if strings.HasPrefix(spec, "(") && strings.HasSuffix(spec, ")") {
		inner := strings.TrimSpace(spec[1 : len(spec)-1])
		if strings.Contains(inner, "/") {
			return sumRationals(inner)
		}
		spec = inner
	}

	v, err := strconv.ParseFloat(spec, 64)
	if err != nil {
		return 0, fmt.Errorf("exponent %q: %w", spec, ErrNumeric)
	}

	return v, nil
}

// sumRationals sums whitespace-separated exact rational literals ("1/2",
// "3", "-1/4") and converts the total to float64.
func sumRationals(inner string) (float64, error) {
	tokens := strings.Fields(inner)
	if len(tokens) == 0 {
		return 0, fmt.Errorf("empty rational sum: %w", ErrNumeric)
	}

	total := new(big.Rat)
	for _, tok := range tokens {
		r, ok := new(big.Rat).SetString(tok)
		if !ok {
			return 0, fmt.Errorf("rational literal %q: %w", tok, ErrNumeric)
		}
		total.Add(total, r)
	}

	// Single rounding step: the sum stays exact until here.
	f, _ := total.Float64()

	return f, nil
}

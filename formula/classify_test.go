package formula

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestClassify_Kinds exercises the tagged-variant mapping for every
// recognized form, white-box.
func TestClassify_Kinds(t *testing.T) {
	cases := []struct {
		atom string
		want term
	}{
		{"c(group)", term{kind: kindDummy, column: "group"}},
		{"c(g_2)", term{kind: kindDummy, column: "g_2"}},
		{"log(income)", term{kind: kindTransform, column: "income", fn: "log"}},
		{"tanh(x1)", term{kind: kindTransform, column: "x1", fn: "tanh"}},
		{"I(x^2)", term{kind: kindPower, column: "x", exp: "2"}},
		{"I(x ^ (1/2))", term{kind: kindPower, column: "x", exp: "(1/2)"}},
		{"poly(x, 3)", term{kind: kindPoly, column: "x", degree: "3"}},
		{"poly(x,3)", term{kind: kindPoly, column: "x", degree: "3"}},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, classify(tc.atom), "atom %q", tc.atom)
	}
}

// TestClassify_Unknown verifies atoms outside the grammar map to kindUnknown.
func TestClassify_Unknown(t *testing.T) {
	for _, atom := range []string{
		"",
		"c()",          // empty identifier
		"c(a b)",       // not an identifier
		"cube(x)",      // unregistered transform
		"log(x, 2)",    // transform arg is not an identifier
		"poly(x)",      // missing degree
		"Ix^2)",        // mangled call form
		"(x)",          // no function name
	} {
		assert.Equal(t, kindUnknown, classify(atom).kind, "atom %q", atom)
	}
}

// TestClassify_PowerWithoutCaret keeps the power kind but leaves the
// exponent empty; evaluation reports the malformed body.
func TestClassify_PowerWithoutCaret(t *testing.T) {
	got := classify("I(x)")
	assert.Equal(t, kindPower, got.kind)
	assert.Equal(t, "x", got.column)
	assert.Empty(t, got.exp)
}

// TestParseExponent covers bare literals, parenthesized literals, and exact
// rational sums.
func TestParseExponent(t *testing.T) {
	cases := []struct {
		spec string
		want float64
	}{
		{"2", 2},
		{"-1", -1},
		{"0.5", 0.5},
		{"(0.5)", 0.5},
		{"(2)", 2},
		{"(1/2)", 0.5},
		{"(1/4 1/4)", 0.5},
		{"(1/3 1/6)", 0.5}, // exact: 1/3 + 1/6 == 1/2 before rounding
		{"(-1/2)", -0.5},
	}
	for _, tc := range cases {
		got, err := parseExponent(tc.spec)
		require.NoError(t, err, "spec %q", tc.spec)
		assert.InDelta(t, tc.want, got, 1e-15, "spec %q", tc.spec)
	}
}

// TestParseExponent_Malformed verifies every bad spec maps onto ErrNumeric.
func TestParseExponent_Malformed(t *testing.T) {
	for _, spec := range []string{"", "two", "()", "(a/b)", "(1/2 x)", "(/)"} {
		_, err := parseExponent(spec)
		assert.ErrorIs(t, err, ErrNumeric, "spec %q", spec)
	}
}

// TestIsIdent pins the accepted identifier alphabet.
func TestIsIdent(t *testing.T) {
	assert.True(t, isIdent("abc_123"))
	assert.True(t, isIdent("X"))
	assert.False(t, isIdent(""))
	assert.False(t, isIdent("a-b"))
	assert.False(t, isIdent("a b"))
	assert.False(t, isIdent("π"))
}

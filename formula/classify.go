package formula

import (
	"strings"

	"github.com/statforge/formula/transform"
)

// classify maps a trimmed feature atom to its tagged variant. Matching is
// precedence-ordered and first-match-wins: dummy, transform, power,
// polynomial, unknown. Classification is pure syntax — the raw-column
// shadowing check against the dataset happens in resolve, before classify
// is consulted.
func classify(atom string) term {
	// c(name) — categorical dummy. The argument must be a plain identifier.
	if arg, ok := callArg(atom, "c"); ok && isIdent(arg) {
		return term{kind: kindDummy, column: arg}
	}

	// fn(name) — named transform from the closed registry.
	if fn, arg, ok := splitCall(atom); ok && transform.Has(fn) && isIdent(arg) {
		return term{kind: kindTransform, column: arg, fn: fn}
	}

	// I(base^exponentSpec) — power expression. The inner text is kept raw;
	// splitting on "^" and literal parsing happen at evaluation time so
	// malformed contents surface as ErrNumeric, not as a classification miss.
	if inner, ok := callArg(atom, "I"); ok {
		base, exp, found := strings.Cut(inner, "^")
		if !found {
			// Still a power form; evaluation reports the malformed body.
			return term{kind: kindPower, column: strings.TrimSpace(inner)}
		}

		return term{kind: kindPower, column: strings.TrimSpace(base), exp: strings.TrimSpace(exp)}
	}

	// poly(name, degree) — polynomial expansion.
	if inner, ok := callArg(atom, "poly"); ok {
		name, degree, found := strings.Cut(inner, ",")
		if found {
			return term{kind: kindPoly, column: strings.TrimSpace(name), degree: strings.TrimSpace(degree)}
		}
	}

	return term{kind: kindUnknown}
}

// callArg reports whether atom has exactly the shape fn(...) and returns the
// inner text. The closing parenthesis must be the final byte of the atom.
func callArg(atom, fn string) (string, bool) {
	if !strings.HasPrefix(atom, fn+"(") || !strings.HasSuffix(atom, ")") {
		return "", false
	}

	return atom[len(fn)+1 : len(atom)-1], true
}

// splitCall decomposes fn(arg) into its two parts for arbitrary fn names.
// The fn part must be non-empty and must not itself contain parentheses.
func splitCall(atom string) (fn, arg string, ok bool) {
	open := strings.IndexByte(atom, '(')
	if open < 1 || !strings.HasSuffix(atom, ")") {
		return "", "", false
	}

	return atom[:open], atom[open+1 : len(atom)-1], true
}

// isIdent reports whether s is a non-empty run of letters, digits, and
// underscores — the only names dummy and transform forms accept.
func isIdent(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		case r == '_':
		default:
			return false
		}
	}

	return true
}

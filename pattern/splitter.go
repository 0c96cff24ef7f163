package pattern

import (
	"strings"
	"unicode"
)

// Strip removes all whitespace from a pattern string. Whitespace is
// insignificant anywhere in the notation and must be gone before splitting.
func Strip(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}

		return r
	}, s)
}

// SplitSeries decomposes a whitespace-free pattern into its top-level series
// terms. Each term is either a bare id or a still-composite chunk carrying
// embedded "//" and parentheses, e.g.
//
//	"1,(2,3,4)//5//(6,7),8" → ["1", "(2,3,4)//5//(6,7)", "8"]
//
// This is the legacy single-pass scan, preserved exactly for compatibility:
// a comma splits only while outside parenthesis scope, "(" enters scope, and
// ")" leaves scope only when the very next character is a comma. A ")" at
// end of string therefore never clears the flag, which is harmless because
// the final character always force-closes the current term. No balance
// validation is performed; unbalanced input yields undefined term boundaries.
// Prefer Parse for anything that is not a historical input.
// Complexity: O(n).
func SplitSeries(p string) []string {
	var series []string
	var term strings.Builder
	inParallel := false
	for i := 0; i < len(p); i++ {
		v := p[i]
		switch {
		case v == ',' && !inParallel:
			series = append(series, term.String())
			term.Reset()
		case v == '(':
			inParallel = true
			term.WriteByte(v)
		case v == ')' && i+1 < len(p) && p[i+1] == ',':
			inParallel = false
			term.WriteByte(v)
		case i == len(p)-1:
			term.WriteByte(v)
			series = append(series, term.String())
		default:
			term.WriteByte(v)
		}
	}

	return series
}

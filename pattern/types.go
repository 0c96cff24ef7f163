// Package pattern defines the expression tree and sentinel errors for the
// stratigraphy notation of github.com/openenvelope/thstrat.
package pattern

import (
	"errors"
	"strings"
)

// Sentinel errors for pattern parsing.
var (
	// ErrEmptyPattern indicates the input is empty after whitespace removal.
	ErrEmptyPattern = errors.New("pattern: empty pattern")
	// ErrMalformedPattern indicates the input does not match the grammar.
	ErrMalformedPattern = errors.New("pattern: malformed pattern")
)

// Expr is one node of a parsed pattern: a single layer reference, a series
// run, or a parallel group.
type Expr interface {
	// String renders the node back into pattern notation.
	String() string

	isExpr()
}

// Single is a bare layer id.
type Single struct {
	ID string
}

// Series is an ordered run of terms combined in series (resistances add).
type Series struct {
	Terms []Expr
}

// Parallel is a group of branches combined in parallel (conductances add).
type Parallel struct {
	Branches []Expr
}

func (Single) isExpr()   {}
func (Series) isExpr()   {}
func (Parallel) isExpr() {}

// String returns the layer id.
func (e Single) String() string { return e.ID }

// String joins the terms with commas. Parallel children need no parentheses
// because "//" binds tighter than ",".
func (e Series) String() string {
	parts := make([]string, len(e.Terms))
	for i, t := range e.Terms {
		parts[i] = t.String()
	}

	return strings.Join(parts, ",")
}

// String joins the branches with "//", parenthesizing nested series runs.
func (e Parallel) String() string {
	parts := make([]string, len(e.Branches))
	for i, b := range e.Branches {
		if _, nested := b.(Single); nested {
			parts[i] = b.String()
		} else {
			parts[i] = "(" + b.String() + ")"
		}
	}

	return strings.Join(parts, "//")
}

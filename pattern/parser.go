package pattern

import (
	"fmt"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// patternLexer defines the lexical structure of the notation: layer ids,
// the series and parallel separators, and grouping parentheses.
var patternLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Whitespace", Pattern: `\s+`},

	// "//" must be matched as one token; there is no single-slash operator.
	{Name: "DSlash", Pattern: `//`},
	{Name: "Comma", Pattern: `,`},
	{Name: "LParen", Pattern: `\(`},
	{Name: "RParen", Pattern: `\)`},

	// Layer ids: digits in the reference notation, but any word-like key works.
	{Name: "Ident", Pattern: `[A-Za-z0-9_.-]+`},
})

// seriesNode is the grammar start rule: parallel groups joined by commas.
type seriesNode struct {
	Terms []*parallelNode `parser:"@@ ( Comma @@ )*"`
}

// parallelNode is a run of primaries joined by "//".
type parallelNode struct {
	Branches []*primaryNode `parser:"@@ ( DSlash @@ )*"`
}

// primaryNode is a bare id or a parenthesized series run.
type primaryNode struct {
	Group *seriesNode `parser:"LParen @@ RParen"`
	ID    string      `parser:"| @Ident"`
}

var patternParser = participle.MustBuild[seriesNode](
	participle.Lexer(patternLexer),
	participle.Elide("Whitespace"),
)

// Parse parses a pattern into its expression tree. Single-term series and
// single-branch parallel nodes are collapsed, so "5" yields Single{"5"} and
// "(1,2)" yields the same tree as "1,2".
//
// Returns ErrEmptyPattern for blank input and ErrMalformedPattern (carrying
// the lexer position and offending token) for anything outside the grammar.
// Complexity: O(n).
func Parse(s string) (Expr, error) {
	if Strip(s) == "" {
		return nil, ErrEmptyPattern
	}
	node, err := patternParser.ParseString("", s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedPattern, err)
	}

	return node.expr(), nil
}

func (n *seriesNode) expr() Expr {
	if len(n.Terms) == 1 {
		return n.Terms[0].expr()
	}
	terms := make([]Expr, len(n.Terms))
	for i, t := range n.Terms {
		terms[i] = t.expr()
	}

	return Series{Terms: terms}
}

func (n *parallelNode) expr() Expr {
	if len(n.Branches) == 1 {
		return n.Branches[0].expr()
	}
	branches := make([]Expr, len(n.Branches))
	for i, b := range n.Branches {
		branches[i] = b.expr()
	}

	return Parallel{Branches: branches}
}

func (n *primaryNode) expr() Expr {
	if n.Group != nil {
		return n.Group.expr()
	}

	return Single{ID: n.ID}
}

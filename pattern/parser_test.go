package pattern_test

import (
	"testing"

	"github.com/openenvelope/thstrat/pattern"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParse_SingleID collapses a bare id to Single.
func TestParse_SingleID(t *testing.T) {
	e, err := pattern.Parse("5")
	require.NoError(t, err)
	assert.Equal(t, pattern.Single{ID: "5"}, e)
}

// TestParse_Series builds an ordered series of singles.
func TestParse_Series(t *testing.T) {
	e, err := pattern.Parse("1,2,3")
	require.NoError(t, err)

	s, ok := e.(pattern.Series)
	require.True(t, ok)
	require.Len(t, s.Terms, 3)
	assert.Equal(t, pattern.Single{ID: "1"}, s.Terms[0])
	assert.Equal(t, pattern.Single{ID: "3"}, s.Terms[2])
}

// TestParse_Reference parses the worked-example pattern into a series whose
// middle term is a three-branch parallel group with nested series runs.
func TestParse_Reference(t *testing.T) {
	e, err := pattern.Parse("1, (2,3,4)//5//(6,7), 8")
	require.NoError(t, err)

	s, ok := e.(pattern.Series)
	require.True(t, ok)
	require.Len(t, s.Terms, 3)
	assert.Equal(t, pattern.Single{ID: "1"}, s.Terms[0])
	assert.Equal(t, pattern.Single{ID: "8"}, s.Terms[2])

	p, ok := s.Terms[1].(pattern.Parallel)
	require.True(t, ok)
	require.Len(t, p.Branches, 3)

	nested, ok := p.Branches[0].(pattern.Series)
	require.True(t, ok)
	assert.Len(t, nested.Terms, 3)
	assert.Equal(t, pattern.Single{ID: "5"}, p.Branches[1])
}

// TestParse_CollapsesRedundantGroup: "(1,2)" is just the series 1,2.
func TestParse_CollapsesRedundantGroup(t *testing.T) {
	grouped, err := pattern.Parse("(1,2)")
	require.NoError(t, err)
	plain, err := pattern.Parse("1,2")
	require.NoError(t, err)
	assert.Equal(t, plain, grouped)
}

// TestParse_PrecedenceQuirkInput: under the explicit grammar "(1,2)//3,4"
// is a series of a parallel group and a single — unlike the legacy split,
// which keeps it one composite term.
func TestParse_PrecedenceQuirkInput(t *testing.T) {
	e, err := pattern.Parse("(1,2)//3,4")
	require.NoError(t, err)

	s, ok := e.(pattern.Series)
	require.True(t, ok)
	require.Len(t, s.Terms, 2)
	_, ok = s.Terms[0].(pattern.Parallel)
	assert.True(t, ok)
	assert.Equal(t, pattern.Single{ID: "4"}, s.Terms[1])
}

// TestParse_Empty fails with ErrEmptyPattern, including whitespace-only input.
func TestParse_Empty(t *testing.T) {
	_, err := pattern.Parse("")
	assert.ErrorIs(t, err, pattern.ErrEmptyPattern)

	_, err = pattern.Parse("  \t ")
	assert.ErrorIs(t, err, pattern.ErrEmptyPattern)
}

// TestParse_Malformed rejects unbalanced delimiters and empty ids.
func TestParse_Malformed(t *testing.T) {
	for _, bad := range []string{
		"1,(2,3",   // unmatched "("
		"1,2)",     // unmatched ")"
		"1,,2",     // empty id between commas
		"1,",       // trailing separator
		"//1",      // leading separator
		"1//",      // trailing parallel separator
		"(),1",     // empty group
		"1 / 2",    // single slash is not an operator
	} {
		_, err := pattern.Parse(bad)
		assert.ErrorIs(t, err, pattern.ErrMalformedPattern, "input %q", bad)
	}
}

// TestExpr_String round-trips canonical notation.
func TestExpr_String(t *testing.T) {
	for _, in := range []string{
		"5",
		"1,2,3",
		"1//2",
		"1,(2,3,4)//5//(6,7),8",
	} {
		e, err := pattern.Parse(in)
		require.NoError(t, err)
		assert.Equal(t, in, e.String(), "String must render back to notation")
	}
}

// Package pattern implements the compact notation describing how stratigraphy
// layers combine into a series/parallel resistor network.
//
// Grammar:
//
//	series   := parallel ( "," parallel )*
//	parallel := primary ( "//" primary )*
//	primary  := id | "(" series ")"
//
// so "1,(2,3,4)//5//(6,7),8" is a series of three terms whose middle term is
// a three-branch parallel group, two branches being nested series runs.
// Whitespace is insignificant anywhere.
//
// Two entry points are provided:
//
//   - Parse: a recursive-descent parser (built on participle) producing a
//     typed expression tree (Single, Series, Parallel). Malformed input —
//     unbalanced delimiters, empty ids, trailing separators — fails with
//     ErrMalformedPattern.
//   - SplitSeries: the legacy single-pass splitter kept for numeric parity
//     with the original tool. It tracks one bit of state ("inside
//     parentheses") and clears it on a closing parenthesis only when the very
//     next character is a comma. It performs no validation: unbalanced input
//     produces undefined term boundaries rather than an error.
//
// The two agree on every well-formed pattern in which parentheses enclose
// exactly the series runs nested in parallel branches. They disagree on
// inputs like "(1,2)//3,4": the legacy scan never leaves parenthesis scope
// (the ")" is followed by "/", not ","), so the whole string stays one term
// and ",4" becomes part of the last parallel branch, while Parse reads a
// series of the parallel group and "4". Prefer Parse; reach for SplitSeries
// only when bit-for-bit compatibility with historical inputs matters.
//
// Errors:
//
//   - ErrEmptyPattern: the pattern is empty after whitespace removal.
//   - ErrMalformedPattern: the pattern does not match the grammar.
package pattern

// Package transmit reduces a stratigraphy pattern to a single equivalent
// thermal resistance and its transmittance (U-value).
//
// What:
//
//   - Evaluate: parse the pattern (package pattern), fold the expression tree
//     leaf-first — series terms add their resistances, parallel branches add
//     their conductances and take the reciprocal — then scale by the
//     reference area and invert.
//   - EvaluateExpr: the same fold for callers holding a pre-parsed tree.
//   - EvaluateLegacy: the original string-chopping pipeline (legacy splitter,
//     split on "//", strip parentheses, split on ","), kept bit-for-bit for
//     numeric parity with historical inputs.
//
// Why:
//
//   - Per-layer values are resistances-per-area (K/W), each layer divided by
//     its own area, so parallel branches of unequal area combine correctly.
//   - The unit-area series total is additionally multiplied by the
//     caller-supplied reference area before the reciprocal is taken. Area is
//     therefore applied twice: once per layer, once at the top. That is the
//     calculation convention of the original tool and is preserved exactly;
//     do not normalize it away.
//
// Results are returned, never written back: Result carries the transmittance,
// the totals, and a per-layer resistance-per-area map for reporting, leaving
// the input table untouched and safe for concurrent readers.
//
// Errors:
//
//   - stratum.ErrUnknownLayer / stratum.ErrNoResistanceSource propagate from
//     layer lookups, carrying the offending id.
//   - pattern.ErrEmptyPattern / pattern.ErrMalformedPattern propagate from
//     parsing (Evaluate only; the legacy path performs no validation).
//   - ErrZeroResistance: a branch, group, or total resistance is zero (within
//     Options.Epsilon) right before a reciprocal would divide by it.
//
// Any failure aborts the whole evaluation; there is no partial result.
package transmit

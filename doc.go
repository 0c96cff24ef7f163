// Package thstrat computes the thermal transmittance (U-value) of layered
// building envelopes whose courses may be arranged in series, in parallel,
// or in series nested inside parallel branches.
//
// A stratigraphy is a table of layers addressed by id; the topology of the
// resistor network they form is carried by a compact textual pattern:
//
//	"1,(2,3,4)//5//(6,7),8"
//
// where commas join terms in series, "//" joins branches in parallel, and
// parentheses group a series run inside a parallel branch.
//
// The work is organized under flat subpackages:
//
//	stratum/   — Layer, Stratigraphy, per-layer resistance lookup
//	pattern/   — the notation: legacy splitter + recursive-descent parser
//	transmit/  — series/parallel reduction, total resistance, U-value
//	stratfile/ — HCL stratigraphy project files
//	catalog/   — SQLite-backed material library
//	report/    — LaTeX report assembly and pdflatex invocation
//	cmd/       — the thstrat command line tool
//
// The evaluator is pure: it returns per-layer derived values alongside the
// transmittance instead of mutating its inputs, so one stratigraphy table can
// be evaluated from many goroutines without coordination.
package thstrat

// Package transmit defines the evaluation result, options, and sentinel
// errors for github.com/openenvelope/thstrat.
package transmit

import "errors"

// ErrZeroResistance indicates a combined resistance was exactly zero (within
// Options.Epsilon) at the point a reciprocal of it was about to be taken.
var ErrZeroResistance = errors.New("transmit: combined resistance is zero before reciprocal")

// Options configures an evaluation.
//   - Epsilon: resistances with magnitude ≤ Epsilon count as zero for the
//     DegenerateZeroResistance guard (default 1e-12).
type Options struct {
	Epsilon float64
}

// DefaultOptions returns the evaluation defaults: Epsilon=1e-12.
func DefaultOptions() Options {
	return Options{Epsilon: 1e-12}
}

// normalize fills zero fields with defaults; opts may be nil.
func (o *Options) normalize() Options {
	out := DefaultOptions()
	if o != nil && o.Epsilon > 0 {
		out.Epsilon = o.Epsilon
	}

	return out
}

// Result is the outcome of one pattern evaluation.
type Result struct {
	// Transmittance is the U-value: 1 / TotalResistance, in W/(m²·K) under
	// the reference convention.
	Transmittance float64
	// TotalResistance is UnitResistance multiplied by the reference area.
	TotalResistance float64
	// UnitResistance is the series sum of all top-level term resistances, in K/W.
	UnitResistance float64
	// PerLayer maps each referenced layer id to its resistance-per-area
	// (K/W) at full precision. Rounding to 3 decimals is a display concern
	// of the report layer.
	PerLayer map[string]float64
}

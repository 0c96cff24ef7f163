package transmit

import (
	"fmt"
	"math"
	"strings"

	"github.com/openenvelope/thstrat/pattern"
	"github.com/openenvelope/thstrat/stratum"
)

// EvaluateLegacy reduces pat with the original string-chopping pipeline:
// whitespace strip, legacy series split (pattern.SplitSeries), per-term split
// on "//", parenthesis strip and comma split per member. It reproduces the
// reference arithmetic operation for operation and performs no grammar
// validation — unbalanced input yields undefined term boundaries, exactly as
// the original did. Prefer Evaluate for new inputs.
//
// Layer lookups and the zero-resistance guard still fail fast; those were
// hard failures in the original too, just less politely.
func EvaluateLegacy(pat string, strat stratum.Stratigraphy, refArea float64, opts *Options) (Result, error) {
	o := opts.normalize()
	perLayer := make(map[string]float64)

	lookup := func(id string) (float64, error) {
		r, err := strat.UnitResistance(id)
		if err != nil {
			return 0, err
		}
		perLayer[id] = r

		return r, nil
	}

	// seriesSum resolves a comma run of ids to the sum of their resistances.
	seriesSum := func(member string) (float64, error) {
		ids := strings.Split(strings.Trim(member, "()"), ",")
		var sum float64
		for _, id := range ids {
			r, err := lookup(id)
			if err != nil {
				return 0, fmt.Errorf("term %q: %w", member, err)
			}
			sum += r
		}

		return sum, nil
	}

	var unit float64
	for _, term := range pattern.SplitSeries(pattern.Strip(pat)) {
		branches := strings.Split(term, "//")
		if len(branches) == 1 {
			// Plain series term: a bare id, or a parenthesized series run.
			r, err := seriesSum(branches[0])
			if err != nil {
				return Result{}, err
			}
			unit += r

			continue
		}

		// Parallel group: each branch reduced to a resistance first, then
		// conductances summed and inverted.
		var cond float64
		for _, branch := range branches {
			r, err := seriesSum(branch)
			if err != nil {
				return Result{}, err
			}
			if math.Abs(r) <= o.Epsilon {
				return Result{}, fmt.Errorf("%w: branch %q", ErrZeroResistance, branch)
			}
			cond += 1 / r
		}
		if math.Abs(cond) <= o.Epsilon {
			return Result{}, fmt.Errorf("%w: group %q", ErrZeroResistance, term)
		}
		unit += 1 / cond
	}

	return finish(unit, refArea, o.Epsilon, perLayer)
}

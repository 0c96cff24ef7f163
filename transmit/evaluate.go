package transmit

import (
	"fmt"
	"math"

	"github.com/openenvelope/thstrat/pattern"
	"github.com/openenvelope/thstrat/stratum"
)

// Evaluate parses pat with the recursive-descent parser and reduces it
// against strat, returning the transmittance and per-layer derived values.
//
// refArea is the overall surface of the stratigraphy. The unit-area series
// total is multiplied by it before the reciprocal is taken — on top of the
// per-layer division by each layer's own area. This double application of
// area is the behavior contract inherited from the original tool; preserve
// it exactly.
//
// Complexity: O(n) in the number of layer references.
func Evaluate(pat string, strat stratum.Stratigraphy, refArea float64, opts *Options) (Result, error) {
	expr, err := pattern.Parse(pat)
	if err != nil {
		return Result{}, err
	}

	return EvaluateExpr(expr, strat, refArea, opts)
}

// EvaluateExpr reduces a pre-parsed expression tree. See Evaluate.
func EvaluateExpr(expr pattern.Expr, strat stratum.Stratigraphy, refArea float64, opts *Options) (Result, error) {
	o := opts.normalize()
	ev := evaluator{strat: strat, eps: o.Epsilon, perLayer: make(map[string]float64)}

	unit, err := ev.resistance(expr)
	if err != nil {
		return Result{}, err
	}

	return finish(unit, refArea, o.Epsilon, ev.perLayer)
}

// evaluator folds an expression tree leaf-first. It keeps no state across
// evaluations beyond the per-layer record it is building.
type evaluator struct {
	strat    stratum.Stratigraphy
	eps      float64
	perLayer map[string]float64
}

func (ev *evaluator) resistance(expr pattern.Expr) (float64, error) {
	switch e := expr.(type) {
	case pattern.Single:
		r, err := ev.strat.UnitResistance(e.ID)
		if err != nil {
			return 0, err
		}
		ev.perLayer[e.ID] = r

		return r, nil

	case pattern.Series:
		// Series: resistances add, left to right.
		var sum float64
		for _, term := range e.Terms {
			r, err := ev.resistance(term)
			if err != nil {
				return 0, err
			}
			sum += r
		}

		return sum, nil

	case pattern.Parallel:
		// Parallel: conductances add; the group resistance is the reciprocal.
		var cond float64
		for _, branch := range e.Branches {
			r, err := ev.resistance(branch)
			if err != nil {
				return 0, err
			}
			if math.Abs(r) <= ev.eps {
				return 0, fmt.Errorf("%w: branch %q", ErrZeroResistance, branch.String())
			}
			cond += 1 / r
		}
		if math.Abs(cond) <= ev.eps {
			return 0, fmt.Errorf("%w: group %q", ErrZeroResistance, e.String())
		}

		return 1 / cond, nil

	default:
		return 0, fmt.Errorf("transmit: unsupported expression node %T", expr)
	}
}

// finish applies the top-level reference-area scaling and the final
// reciprocal, shared by the tree and legacy pipelines.
func finish(unit, refArea, eps float64, perLayer map[string]float64) (Result, error) {
	total := unit * refArea
	if math.Abs(total) <= eps {
		return Result{}, fmt.Errorf("%w: total resistance", ErrZeroResistance)
	}

	return Result{
		Transmittance:   1 / total,
		TotalResistance: total,
		UnitResistance:  unit,
		PerLayer:        perLayer,
	}, nil
}

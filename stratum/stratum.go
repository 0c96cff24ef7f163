package stratum

import (
	"fmt"
	"sort"
)

// UnitResistance returns the layer's thermal resistance divided by its own
// area, in K/W.
//
// The resistance itself is thickness/conductivity for conductive layers and
// the stored value for resistive ones; conductivity takes precedence, which
// mirrors the lookup order of the original tool when both fields were set.
//
// Returns ErrNoResistanceSource for a zero-value layer and
// ErrNonPositiveArea when Area ≤ 0.
// Complexity: O(1).
func (l Layer) UnitResistance() (float64, error) {
	var r float64
	switch l.src {
	case srcConductivity:
		r = l.Thickness / l.conductivity // (m²·K)/W
	case srcResistance:
		r = l.resistance // (m²·K)/W
	default:
		return 0, ErrNoResistanceSource
	}
	if l.Area <= 0 {
		return 0, ErrNonPositiveArea
	}

	return r / l.Area, nil // K/W
}

// UnitResistance looks up id and returns that layer's resistance-per-area.
// Returns ErrUnknownLayer when the id is absent; layer-level failures are
// wrapped with the offending id for diagnosability.
// Complexity: O(1).
func (s Stratigraphy) UnitResistance(id string) (float64, error) {
	l, ok := s[id]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownLayer, id)
	}
	r, err := l.UnitResistance()
	if err != nil {
		return 0, fmt.Errorf("layer %q: %w", id, err)
	}

	return r, nil
}

// Has reports whether id exists in the table.
func (s Stratigraphy) Has(id string) bool {
	_, ok := s[id]

	return ok
}

// IDs returns all layer ids in ascending lexical order, the reference
// iteration order for reporting.
// Complexity: O(n·log n).
func (s Stratigraphy) IDs() []string {
	ids := make([]string, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// Clone returns a shallow copy of the table. Layers are value types, so the
// copy is independent of the original.
func (s Stratigraphy) Clone() Stratigraphy {
	out := make(Stratigraphy, len(s))
	for id, l := range s {
		out[id] = l
	}

	return out
}

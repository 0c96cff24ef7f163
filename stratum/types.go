// Package stratum defines core types and sentinel errors for stratigraphy
// layers of github.com/openenvelope/thstrat.
package stratum

import "errors"

// Sentinel errors for layer lookups and resistance derivation.
var (
	// ErrUnknownLayer indicates the pattern references an id absent from the table.
	ErrUnknownLayer = errors.New("stratum: unknown layer id")
	// ErrNoResistanceSource indicates a layer carries neither a conductivity nor a resistance.
	ErrNoResistanceSource = errors.New("stratum: layer has neither conductivity nor resistance")
	// ErrNonPositiveArea indicates a layer area is zero or negative.
	ErrNonPositiveArea = errors.New("stratum: layer area must be positive")
)

// source selects which thermal model a Layer carries.
type source int

const (
	// srcNone marks a zero-value Layer; using it fails with ErrNoResistanceSource.
	srcNone source = iota
	// srcConductivity derives resistance as thickness/conductivity.
	srcConductivity
	// srcResistance uses a directly specified resistance.
	srcResistance
)

// Layer is one physical course of a stratigraphy. Build it with Conductive
// or Resistive; the zero value has no resistance source and fails on use.
type Layer struct {
	// Material is an opaque label, informational only; it plays no role in
	// the resistance math and is distinct from the layer id.
	Material string
	// Thickness of the course in meters; meaningful for conductive layers only.
	Thickness float64
	// Area is this layer's own cross-sectional area in m².
	Area float64

	src          source
	conductivity float64
	resistance   float64
}

// Conductive builds a layer modeled by a thickness/conductivity pair.
func Conductive(material string, thickness, conductivity, area float64) Layer {
	return Layer{
		Material:     material,
		Thickness:    thickness,
		Area:         area,
		src:          srcConductivity,
		conductivity: conductivity,
	}
}

// Resistive builds a layer with a directly specified thermal resistance,
// e.g. a surface air film with no meaningful thickness/conductivity pair.
// Thickness may still be recorded for reporting; pass 0 when not applicable.
func Resistive(material string, resistance, area float64) Layer {
	return Layer{
		Material:   material,
		Area:       area,
		src:        srcResistance,
		resistance: resistance,
	}
}

// WithThickness returns a copy of l with the informational thickness set.
// Useful for resistive layers that still have a physical depth to report.
func (l Layer) WithThickness(thickness float64) Layer {
	l.Thickness = thickness

	return l
}

// Conductivity reports the layer conductivity and whether the layer is
// conductivity-modeled.
func (l Layer) Conductivity() (float64, bool) {
	return l.conductivity, l.src == srcConductivity
}

// DirectResistance reports the directly specified resistance and whether the
// layer is resistance-modeled.
func (l Layer) DirectResistance() (float64, bool) {
	return l.resistance, l.src == srcResistance
}

// Stratigraphy is the full collection of layers addressed by id. The map
// carries no ordering; the pattern string does.
type Stratigraphy map[string]Layer

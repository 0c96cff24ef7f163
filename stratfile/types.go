// Package stratfile defines the HCL schema, project model, and sentinel
// errors for stratigraphy files of github.com/openenvelope/thstrat.
package stratfile

import (
	"errors"

	"github.com/openenvelope/thstrat/stratum"
)

// Sentinel errors for project loading and use.
var (
	// ErrDuplicateLayer indicates two layer blocks share the same id.
	ErrDuplicateLayer = errors.New("stratfile: duplicate layer id")
	// ErrMissingThickness indicates a conductivity without a thickness.
	ErrMissingThickness = errors.New("stratfile: conductivity requires a thickness")
	// ErrLayerModel indicates a layer with no conductivity, no resistance,
	// and no material name to resolve against the catalog.
	ErrLayerModel = errors.New("stratfile: layer needs conductivity, resistance, or a material reference")
	// ErrUnresolvedMaterial indicates evaluation was attempted while some
	// layers still await catalog resolution.
	ErrUnresolvedMaterial = errors.New("stratfile: unresolved material reference")
)

// fileSchema is the top-level HCL layout of a stratigraphy file.
type fileSchema struct {
	Pattern string         `hcl:"pattern"`
	Area    float64        `hcl:"area"`
	Report  *ReportConfig  `hcl:"report,block"`
	Layers  []*layerSchema `hcl:"layer,block"`
}

// layerSchema is one layer block. Pointer fields distinguish "absent" from
// an explicit zero.
type layerSchema struct {
	ID           string   `hcl:"id,label"`
	Material     string   `hcl:"material,optional"`
	Thickness    *float64 `hcl:"thickness,optional"`
	Conductivity *float64 `hcl:"conductivity,optional"`
	Resistance   *float64 `hcl:"resistance,optional"`
	Area         float64  `hcl:"area"`
}

// ReportConfig is the optional report block: where to write the LaTeX
// document and which babel language to load.
type ReportConfig struct {
	Filename string `hcl:"filename"`
	Language string `hcl:"language,optional"`
}

// PendingLayer is a layer that referenced a catalog material instead of
// carrying its own conductivity or resistance.
type PendingLayer struct {
	ID        string
	Material  string
	Thickness float64
	Area      float64
}

// Project is a fully decoded stratigraphy file.
type Project struct {
	// Pattern is the series/parallel notation over the layer ids.
	Pattern string
	// Area is the reference area of the whole stratigraphy.
	Area float64
	// Layers holds every layer already carrying a resistance source.
	Layers stratum.Stratigraphy
	// Pending lists layers awaiting conductivity from the materials catalog;
	// see catalog.Resolve.
	Pending []PendingLayer
	// Report is the optional report block, nil when absent.
	Report *ReportConfig
}

package stratfile

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/openenvelope/thstrat/stratum"
	"github.com/openenvelope/thstrat/transmit"
)

// Load reads and decodes a stratigraphy project file from disk.
func Load(path string) (*Project, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("stratfile: read %s: %w", path, err)
	}

	return Parse(src, path)
}

// Parse decodes HCL source into a Project. filename is used in diagnostics
// only.
func Parse(src []byte, filename string) (*Project, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("stratfile: %w", diags)
	}

	var schema fileSchema
	if diags = gohcl.DecodeBody(file.Body, nil, &schema); diags.HasErrors() {
		return nil, fmt.Errorf("stratfile: %w", diags)
	}

	return buildProject(&schema)
}

// buildProject validates the decoded schema and sorts each layer into the
// stratigraphy table or the pending list.
func buildProject(schema *fileSchema) (*Project, error) {
	p := &Project{
		Pattern: schema.Pattern,
		Area:    schema.Area,
		Layers:  make(stratum.Stratigraphy, len(schema.Layers)),
		Report:  schema.Report,
	}

	for _, l := range schema.Layers {
		if p.Layers.Has(l.ID) || pendingHas(p.Pending, l.ID) {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateLayer, l.ID)
		}
		switch {
		case l.Conductivity != nil:
			// Conductivity wins over resistance, the evaluator's lookup order.
			if l.Thickness == nil {
				return nil, fmt.Errorf("%w: layer %q", ErrMissingThickness, l.ID)
			}
			p.Layers[l.ID] = stratum.Conductive(l.Material, *l.Thickness, *l.Conductivity, l.Area)
		case l.Resistance != nil:
			layer := stratum.Resistive(l.Material, *l.Resistance, l.Area)
			if l.Thickness != nil {
				layer = layer.WithThickness(*l.Thickness)
			}
			p.Layers[l.ID] = layer
		case l.Material != "":
			// Catalog materials resolve to a conductivity, so a thickness is
			// required up front.
			if l.Thickness == nil {
				return nil, fmt.Errorf("%w: layer %q", ErrMissingThickness, l.ID)
			}
			p.Pending = append(p.Pending, PendingLayer{
				ID:        l.ID,
				Material:  l.Material,
				Thickness: *l.Thickness,
				Area:      l.Area,
			})
		default:
			return nil, fmt.Errorf("%w: layer %q", ErrLayerModel, l.ID)
		}
	}

	return p, nil
}

func pendingHas(pending []PendingLayer, id string) bool {
	for _, p := range pending {
		if p.ID == id {
			return true
		}
	}

	return false
}

// Evaluate reduces the project's pattern against its layer table. It refuses
// to run while layers still await catalog resolution.
func (p *Project) Evaluate(opts *transmit.Options) (transmit.Result, error) {
	if len(p.Pending) > 0 {
		return transmit.Result{}, fmt.Errorf("%w: layer %q needs material %q",
			ErrUnresolvedMaterial, p.Pending[0].ID, p.Pending[0].Material)
	}

	return transmit.Evaluate(p.Pattern, p.Layers, p.Area, opts)
}

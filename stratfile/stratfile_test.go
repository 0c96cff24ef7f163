package stratfile_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/openenvelope/thstrat/stratfile"
	"github.com/openenvelope/thstrat/stratum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const workedSrc = `
pattern = "1,(2,3,4)//5//(6,7),8"
area    = 3

layer "1" {
  material     = "plaster"
  thickness    = 1
  conductivity = 0.1
  area         = 3
}

layer "2" {
  material   = "air gap"
  resistance = 0.2
  area       = 1
}

layer "3" {
  material     = "brick"
  thickness    = 1
  conductivity = 0.3
  area         = 1
}

layer "4" {
  material   = "air gap"
  resistance = 0.4
  area       = 1
}

layer "5" {
  material     = "concrete"
  thickness    = 3
  conductivity = 0.5
  area         = 1
}

layer "6" {
  material     = "brick"
  thickness    = 1.5
  conductivity = 0.6
  area         = 1
}

layer "7" {
  material   = "air gap"
  thickness  = 1.5
  resistance = 0.7
  area       = 1
}

layer "8" {
  material     = "plaster"
  thickness    = 1
  conductivity = 0.8
  area         = 3
}

report {
  filename = "wall.tex"
  language = "english"
}
`

// TestParse_Worked decodes the reference project end to end.
func TestParse_Worked(t *testing.T) {
	p, err := stratfile.Parse([]byte(workedSrc), "wall.hcl")
	require.NoError(t, err)

	assert.Equal(t, "1,(2,3,4)//5//(6,7),8", p.Pattern)
	assert.Equal(t, 3.0, p.Area)
	assert.Len(t, p.Layers, 8)
	assert.Empty(t, p.Pending)
	require.NotNil(t, p.Report)
	assert.Equal(t, "wall.tex", p.Report.Filename)
	assert.Equal(t, "english", p.Report.Language)

	cnd, ok := p.Layers["1"].Conductivity()
	assert.True(t, ok)
	assert.Equal(t, 0.1, cnd)

	rst, ok := p.Layers["7"].DirectResistance()
	assert.True(t, ok)
	assert.Equal(t, 0.7, rst)
	assert.Equal(t, 1.5, p.Layers["7"].Thickness, "thickness of a resistive layer is kept for reporting")
}

// TestProject_Evaluate runs the loaded project through the evaluator and
// checks the regression oracle.
func TestProject_Evaluate(t *testing.T) {
	p, err := stratfile.Parse([]byte(workedSrc), "wall.hcl")
	require.NoError(t, err)

	res, err := p.Evaluate(nil)
	require.NoError(t, err)
	assert.InDelta(t, 0.06518685905734843, res.Transmittance, 1e-15)
}

// TestLoad round-trips through a file on disk.
func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wall.hcl")
	require.NoError(t, os.WriteFile(path, []byte(workedSrc), 0o644))

	p, err := stratfile.Load(path)
	require.NoError(t, err)
	assert.Len(t, p.Layers, 8)
}

// TestParse_MaterialReference defers to the catalog instead of failing.
func TestParse_MaterialReference(t *testing.T) {
	src := `
pattern = "1"
area    = 1

layer "1" {
  material  = "brick"
  thickness = 0.25
  area      = 1
}
`
	p, err := stratfile.Parse([]byte(src), "test.hcl")
	require.NoError(t, err)

	assert.Empty(t, p.Layers)
	require.Len(t, p.Pending, 1)
	assert.Equal(t, stratfile.PendingLayer{ID: "1", Material: "brick", Thickness: 0.25, Area: 1}, p.Pending[0])

	_, err = p.Evaluate(nil)
	assert.ErrorIs(t, err, stratfile.ErrUnresolvedMaterial)
}

// TestParse_ConductivityWins mirrors the evaluator's lookup-order policy
// when a layer carries both models.
func TestParse_ConductivityWins(t *testing.T) {
	src := `
pattern = "1"
area    = 1

layer "1" {
  thickness    = 2
  conductivity = 0.5
  resistance   = 99
  area         = 1
}
`
	p, err := stratfile.Parse([]byte(src), "test.hcl")
	require.NoError(t, err)

	r, err := p.Layers.UnitResistance("1")
	require.NoError(t, err)
	assert.InDelta(t, 4.0, r, 1e-12, "thickness/conductivity, not the direct resistance")
}

// TestParse_Errors covers the validation taxonomy.
func TestParse_Errors(t *testing.T) {
	t.Run("duplicate id", func(t *testing.T) {
		src := `
pattern = "1"
area    = 1

layer "1" {
  resistance = 0.2
  area       = 1
}

layer "1" {
  resistance = 0.3
  area       = 1
}
`
		_, err := stratfile.Parse([]byte(src), "test.hcl")
		assert.ErrorIs(t, err, stratfile.ErrDuplicateLayer)
	})

	t.Run("conductivity without thickness", func(t *testing.T) {
		src := `
pattern = "1"
area    = 1

layer "1" {
  conductivity = 0.5
  area         = 1
}
`
		_, err := stratfile.Parse([]byte(src), "test.hcl")
		assert.ErrorIs(t, err, stratfile.ErrMissingThickness)
	})

	t.Run("no model at all", func(t *testing.T) {
		src := `
pattern = "1"
area    = 1

layer "1" {
  area = 1
}
`
		_, err := stratfile.Parse([]byte(src), "test.hcl")
		assert.ErrorIs(t, err, stratfile.ErrLayerModel)
	})

	t.Run("invalid HCL", func(t *testing.T) {
		_, err := stratfile.Parse([]byte(`pattern = `), "test.hcl")
		assert.Error(t, err)
	})
}

// TestParse_BuildsStratumTable checks the decoded table is a plain
// stratum.Stratigraphy usable anywhere the evaluator is.
func TestParse_BuildsStratumTable(t *testing.T) {
	p, err := stratfile.Parse([]byte(workedSrc), "wall.hcl")
	require.NoError(t, err)

	var _ stratum.Stratigraphy = p.Layers
	assert.Equal(t, []string{"1", "2", "3", "4", "5", "6", "7", "8"}, p.Layers.IDs())
}

// Package stratfile loads stratigraphy projects from HCL files.
//
// A project file carries the pattern, the reference area, one block per
// layer, and an optional report block:
//
//	pattern = "1,(2,3,4)//5//(6,7),8"
//	area    = 3
//
//	layer "1" {
//	  material     = "plaster"
//	  thickness    = 1
//	  conductivity = 0.1
//	  area         = 3
//	}
//
//	layer "2" {
//	  material   = "air gap"
//	  resistance = 0.2
//	  area       = 1
//	}
//
//	report {
//	  filename = "wall.tex"
//	  language = "english"
//	}
//
// A layer must carry a conductivity (with a thickness), a resistance, or —
// when neither is given — a material name to be resolved against the
// materials catalog (package catalog). When both conductivity and resistance
// are present, conductivity wins, matching the evaluator's lookup order.
//
// Errors:
//
//   - ErrDuplicateLayer: two layer blocks share an id.
//   - ErrMissingThickness: a conductivity is given without a thickness.
//   - ErrLayerModel: a layer has no conductivity, no resistance, and no
//     material name to resolve.
//   - ErrUnresolvedMaterial: Evaluate called while catalog-resolved layers
//     are still pending.
package stratfile

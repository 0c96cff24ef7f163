// Package stratum models the layers of a building stratigraphy and their
// thermal resistance.
//
// What:
//
//   - Layer: one physical course of material, built either from a
//     thickness/conductivity pair (Conductive) or from a directly specified
//     resistance (Resistive). Every layer carries its own cross-sectional
//     area, because parallel branches may have unequal areas.
//   - Stratigraphy: the full id-addressed collection of layers. The
//     collection itself is unordered; ordering lives in the pattern notation
//     (see package pattern).
//
// Why:
//
//   - Surface air films and cavities have no meaningful thickness/conductivity
//     pair, so a direct resistance variant is required alongside the
//     conductivity-based one.
//   - Making the two models explicit constructors removes the "layer has no
//     resistance value" failure mode for layers built through them; only
//     zero-value literals can still trip ErrNoResistanceSource.
//
// Units:
//
//   - Thickness m, conductivity W/(K·m), resistance (m²·K)/W, area m².
//   - UnitResistance returns K/W: the layer resistance divided by its own area.
//
// Errors:
//
//   - ErrUnknownLayer: an id looked up on a Stratigraphy is absent.
//   - ErrNoResistanceSource: a layer has neither conductivity nor resistance.
//   - ErrNonPositiveArea: a layer area is zero or negative.
package stratum

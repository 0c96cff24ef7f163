// Package report assembles the LaTeX stratigraphy report and drives the
// external document compiler.
//
// The document is a fixed template: an article preamble (inputenc, babel,
// ams*, graphicx, geometry, caption, siunitx) and one table listing every
// layer — id, material, thickness, conductivity or resistance, area, and the
// derived resistance-per-area — followed by the reference area, the total
// resistance, and the transmittance. Layers are iterated in ascending
// lexical id order, the reference ordering.
//
// Per-layer resistance-per-area is printed rounded to 3 decimals; that
// rounding is display-only — the evaluator's Result keeps full precision and
// all arithmetic happens there.
//
// The package is a consumer of the evaluator's output and knows nothing of
// the pattern grammar; hand it a complete transmit.Result or nothing. A
// failed evaluation therefore yields no partial document by construction.
package report

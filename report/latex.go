package report

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/openenvelope/thstrat/stratum"
	"github.com/openenvelope/thstrat/transmit"
)

// Options configures document rendering.
//   - Language: the babel language to load (default "english").
type Options struct {
	Language string
}

// DefaultOptions returns the rendering defaults: Language="english".
func DefaultOptions() Options {
	return Options{Language: "english"}
}

func (o *Options) normalize() Options {
	out := DefaultOptions()
	if o != nil && o.Language != "" {
		out.Language = o.Language
	}

	return out
}

// preamble returns the document preamble lines for the given babel language.
func preamble(lang string) []string {
	return []string{
		`\documentclass[10pt,a4paper]{article}`,
		`\usepackage[utf8]{inputenc}`,
		fmt.Sprintf(`\usepackage[%s]{babel}`, lang),
		`\usepackage{amsmath}`,
		`\usepackage{amsfonts}`,
		`\usepackage{amssymb}`,
		`\usepackage{graphicx}`,
		`\usepackage[left=2cm,right=2cm,top=2cm,bottom=2cm]{geometry}`,
		`\usepackage{caption}`,
		`\usepackage{siunitx}`,
	}
}

// table renders the results table: one row per layer in ascending id order,
// with the stratigraphy totals carried on the first row's summary columns.
func table(strat stratum.Stratigraphy, refArea float64, res transmit.Result) []string {
	head := []string{
		`\begin{table}[ht]`,
		`\centering`,
		`\begin{tabular}{c|cccccc|ccc}`,
		`& ` +
			`& ` +
			`[m] & ` +
			`$\left[\dfrac{W}{(K \cdot m)}\right]$ & ` +
			`$\left[\dfrac{(m^2 \cdot K)}{W}\right]$ & ` +
			`[$m^2$] & ` +
			`$\left[\dfrac{K}{W}\right]$ & ` +
			`[$m^2$] & ` +
			`$\left[\dfrac{(m^2 \cdot K)}{W}\right]$ & ` +
			`$\left[\dfrac{W}{(m^2 \cdot K)}\right]$ \\`,
		`n & ` +
			`id & ` +
			`$s_i$ & ` +
			`$\lambda_i$ & ` +
			`$R_i$ & ` +
			`$A_i$ & ` +
			`$R_i/A_i$ & ` +
			`$A$ & ` +
			`$R$ & ` +
			`$K$ \\`,
		`\hline`,
		`\hline`,
	}

	var rows []string
	for i, id := range strat.IDs() {
		l := strat[id]
		cells := []string{id, l.Material, fmt.Sprintf("%g", l.Thickness)}
		// Conductivity goes in the λ column, a direct resistance in the R
		// column; the other one stays blank.
		if cnd, ok := l.Conductivity(); ok {
			cells = append(cells, fmt.Sprintf("%g &", cnd))
		} else if rst, ok := l.DirectResistance(); ok {
			cells = append(cells, fmt.Sprintf("& %g", rst))
		} else {
			cells = append(cells, "&")
		}
		cells = append(cells, fmt.Sprintf("%g", l.Area))
		// Display rounding only; the evaluator keeps full precision.
		cells = append(cells, fmt.Sprintf("%.3f", res.PerLayer[id]))
		if i == 0 {
			cells = append(cells,
				fmt.Sprintf("%g", refArea),
				fmt.Sprintf("%.3f", res.TotalResistance),
				fmt.Sprintf("%.5f", res.Transmittance))
		}
		rows = append(rows, strings.Join(cells, " & ")+` \\`)
	}

	tail := []string{
		`\end{tabular}`,
		`\end{table}`,
	}

	out := make([]string, 0, len(head)+len(rows)+len(tail))
	out = append(out, head...)
	out = append(out, rows...)
	out = append(out, tail...)

	return out
}

// Render writes the full LaTeX document for an evaluated stratigraphy to w.
func Render(w io.Writer, strat stratum.Stratigraphy, refArea float64, res transmit.Result, opts *Options) error {
	o := opts.normalize()

	var doc []string
	doc = append(doc, preamble(o.Language)...)
	doc = append(doc, "", `\begin{document}`, "")
	doc = append(doc, table(strat, refArea, res)...)
	doc = append(doc, "", `\end{document}`, "")

	if _, err := io.WriteString(w, strings.Join(doc, "\n")); err != nil {
		return fmt.Errorf("report: render: %w", err)
	}

	return nil
}

// WriteFile renders the document to the given path.
func WriteFile(path string, strat stratum.Stratigraphy, refArea float64, res transmit.Result, opts *Options) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("report: create %s: %w", path, err)
	}
	if err := Render(f, strat, refArea, res, opts); err != nil {
		f.Close()

		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("report: close %s: %w", path, err)
	}

	return nil
}

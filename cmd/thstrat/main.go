// Command thstrat computes the thermal transmittance of layered building
// envelopes from HCL stratigraphy files and renders LaTeX reports.
package main

import "github.com/openenvelope/thstrat/cmd/thstrat/cmd"

func main() {
	cmd.Execute()
}

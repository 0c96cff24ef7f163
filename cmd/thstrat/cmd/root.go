package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "thstrat",
	Short: "thstrat - U-value calculator for layered building envelopes",
	Long: `thstrat evaluates the thermal transmittance (U-value) of a stratigraphy
whose layers combine in series, in parallel, or in series nested inside
parallel branches, described by a compact pattern notation:

  "1,(2,3,4)//5//(6,7),8"

Examples:
  thstrat calc wall.hcl                          # print the U-value
  thstrat calc wall.hcl --report wall.tex        # also write the LaTeX report
  thstrat calc wall.hcl --materials materials.db # resolve layers from the catalog
  thstrat materials add brick 0.72 --db materials.db`,
	Version: "0.9.0",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelWarn
		if verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: level,
		})))
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

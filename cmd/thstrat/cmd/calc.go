package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/openenvelope/thstrat/catalog"
	"github.com/openenvelope/thstrat/report"
	"github.com/openenvelope/thstrat/stratfile"
)

var (
	calcMaterialsDB string
	calcReportPath  string
	calcLanguage    string
	calcCompile     bool
)

var calcCmd = &cobra.Command{
	Use:   "calc <stratigraphy.hcl>",
	Short: "Evaluate a stratigraphy file and print its U-value",
	Args:  cobra.ExactArgs(1),
	RunE:  runCalc,
}

func runCalc(cmd *cobra.Command, args []string) error {
	project, err := stratfile.Load(args[0])
	if err != nil {
		return err
	}
	slog.Debug("loaded stratigraphy", "file", args[0],
		"layers", len(project.Layers), "pending", len(project.Pending))

	if len(project.Pending) > 0 {
		if calcMaterialsDB == "" {
			return fmt.Errorf("%s references catalog materials; pass --materials", args[0])
		}
		db, err := catalog.Open(calcMaterialsDB)
		if err != nil {
			return err
		}
		defer db.Close()
		if err := db.Resolve(project); err != nil {
			return err
		}
		slog.Debug("resolved materials", "db", calcMaterialsDB)
	}

	res, err := project.Evaluate(nil)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "pattern          %s\n", project.Pattern)
	fmt.Fprintf(out, "reference area   %g m²\n", project.Area)
	fmt.Fprintf(out, "total resistance %.3f (m²·K)/W\n", res.TotalResistance)
	fmt.Fprintf(out, "transmittance    %.5f W/(m²·K)\n", res.Transmittance)

	reportPath := calcReportPath
	lang := calcLanguage
	if project.Report != nil {
		if reportPath == "" {
			reportPath = project.Report.Filename
		}
		if lang == "" {
			lang = project.Report.Language
		}
	}
	if reportPath == "" {
		if calcCompile {
			return fmt.Errorf("--compile needs a report file; pass --report or add a report block")
		}

		return nil
	}

	opts := report.Options{Language: lang}
	if err := report.WriteFile(reportPath, project.Layers, project.Area, res, &opts); err != nil {
		return err
	}
	slog.Debug("wrote report", "file", reportPath)

	if calcCompile {
		if err := report.Compile(cmd.Context(), reportPath); err != nil {
			return err
		}
		slog.Debug("compiled report", "file", reportPath)
	}

	return nil
}

func init() {
	calcCmd.Flags().StringVar(&calcMaterialsDB, "materials", "", "materials catalog database for material references")
	calcCmd.Flags().StringVar(&calcReportPath, "report", "", "write the LaTeX report to this file")
	calcCmd.Flags().StringVar(&calcLanguage, "lang", "", "babel language for the report (default english)")
	calcCmd.Flags().BoolVar(&calcCompile, "compile", false, "run pdflatex on the written report")
	rootCmd.AddCommand(calcCmd)
}

package report

import (
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
)

// Compile runs pdflatex on the rendered document. It executes in the
// document's directory so auxiliary files land next to the source, and
// honors ctx for cancellation.
func Compile(ctx context.Context, path string) error {
	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}

	cmd := exec.CommandContext(ctx, "pdflatex", "-interaction=nonstopmode", base)
	cmd.Dir = dir
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("report: pdflatex %s: %w\n%s", base, err, out)
	}

	return nil
}

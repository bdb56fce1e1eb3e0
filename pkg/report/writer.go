// SPDX-License-Identifier: Apache-2.0

package report

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xataio/svgbench/pkg/bench"
)

// SummaryFileName returns the file name of the summary report for a run
// over dir.
func SummaryFileName(dir string) string {
	return fmt.Sprintf("svgbench - %s.html", folderName(dir))
}

// DetailedFileName returns the file name of the detailed report for a run
// over dir, rendered in format.
func DetailedFileName(dir string, format bench.Format) string {
	return fmt.Sprintf("svgbench - %s_details.%s", folderName(dir), format.Extension())
}

// ChartFileName returns the file name of the chart page for a run over dir.
func ChartFileName(dir string) string {
	return fmt.Sprintf("svgbench - %s_chart.html", folderName(dir))
}

func folderName(dir string) string {
	name := filepath.Base(filepath.Clean(dir))
	if name == "." || name == string(filepath.Separator) {
		return "root"
	}
	return name
}

// WriteFile writes text verbatim to path, replacing any existing file.
func WriteFile(path, text string) error {
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return ReportWriteError{Path: path, Err: err}
	}
	return nil
}

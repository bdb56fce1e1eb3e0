// SPDX-License-Identifier: Apache-2.0

package report

import (
	"strconv"

	"github.com/pterm/pterm"

	"github.com/xataio/svgbench/pkg/bench"
)

// SummaryTable renders the median of every (file, size) cell as a terminal
// table, with one column per size and present backend.
func SummaryTable(run *bench.Run) (string, error) {
	header := []string{"File"}
	for _, size := range run.Sizes {
		for _, slot := range bench.Slots {
			if run.Present(slot) {
				header = append(header, size.String()+" "+run.Backends[slot])
			}
		}
	}

	data := pterm.TableData{header}
	for f, file := range run.Files {
		row := []string{bench.DisplayName(file)}
		for s := range run.Sizes {
			for _, slot := range bench.Slots {
				if run.Present(slot) {
					row = append(row, strconv.FormatInt(run.Stats[slot].At(f, s).Median, 10))
				}
			}
		}
		data = append(data, row)
	}

	totals := bench.SummaryTotals(run)
	row := []string{"Sum (ms)"}
	for s := range run.Sizes {
		for _, slot := range bench.Slots {
			if run.Present(slot) {
				row = append(row, strconv.FormatFloat(float64(totals[slot][s].Sum)/1000, 'f', 2, 64))
			}
		}
	}
	data = append(data, row)

	return pterm.DefaultTable.
		WithHasHeader().
		WithData(data).
		Srender()
}

// SPDX-License-Identifier: Apache-2.0

package bench

import (
	"fmt"
	"math"
	"strconv"
)

const summaryStyle = "table, th, td, tfoot {border: 1px solid black; border-collapse: collapse;} " +
	"td {text-align: right;} tfoot {color: red;} " +
	"body {font-family: Verdana, Arial, Helvetica, sans-serif;}"

// Totals aggregates the medians of one size column across all files, in
// microseconds.
type Totals struct {
	Sum int64
	Min int64
	Max int64
}

// SummaryTotals returns the per-size totals of each backend slot. Slots of
// absent backends are nil.
func SummaryTotals(run *Run) [2][]Totals {
	var totals [2][]Totals

	for _, slot := range Slots {
		if !run.Present(slot) {
			continue
		}
		stats := run.Stats[slot]

		col := make([]Totals, len(run.Sizes))
		for s := range run.Sizes {
			t := Totals{Min: math.MaxInt64, Max: math.MinInt64}
			for f := range run.Files {
				median := stats.At(f, s).Median
				t.Sum += median
				t.Min = min(t.Min, median)
				t.Max = max(t.Max, median)
			}
			col[s] = t
		}
		totals[slot] = col
	}
	return totals
}

// Summary renders the median of every (file, size) cell for both backends,
// followed by the sum, minimum and maximum of the medians of each size.
func Summary(run *Run, format Format) (string, error) {
	if err := checkRun(run); err != nil {
		return "", err
	}
	t, err := newTable(format)
	if err != nil {
		return "", err
	}

	totals := SummaryTotals(run)

	t.document("svgbench Report", summaryStyle)
	t.heading(fmt.Sprintf("Benchmarked %d files from folder '%s' (%d runs)", len(run.Files), run.Dir, run.RunCount))
	t.paragraph("Unless indicated otherwise, the times are in microseconds")

	t.tag("<table>")
	t.tag("<thead>")
	header := []cell{{text: "File", header: true, rowspan: 2}}
	for _, size := range run.Sizes {
		header = append(header, cell{text: size.String(), header: true, colspan: 2})
	}
	t.row(header)

	header = []cell{{tsvOnly: true}}
	for range run.Sizes {
		header = append(header, backendHeaderCells(run)...)
	}
	t.row(header)
	t.tag("</thead>")

	t.tag("<tbody>")
	for f, file := range run.Files {
		cells := []cell{{text: DisplayName(file)}}
		for s := range run.Sizes {
			cells = append(cells, pairCells(run, func(slot Slot) string {
				return itoa(run.Stats[slot].At(f, s).Median)
			})...)
		}
		t.row(cells)
	}
	t.tag("</tbody>")

	footers := []struct {
		label string
		value func(Totals) string
	}{
		{"Sum (milliseconds)", func(v Totals) string { return strconv.FormatFloat(float64(v.Sum)/1000, 'f', 2, 64) }},
		{"Min", func(v Totals) string { return itoa(v.Min) }},
		{"Max", func(v Totals) string { return itoa(v.Max) }},
	}

	t.tag("<tfoot>")
	for _, footer := range footers {
		cells := []cell{{text: footer.label}}
		for s := range run.Sizes {
			cells = append(cells, pairCells(run, func(slot Slot) string {
				return footer.value(totals[slot][s])
			})...)
		}
		t.row(cells)
	}
	t.tag("</tfoot>")
	t.tag("</table>")
	t.end()

	return t.String(), nil
}

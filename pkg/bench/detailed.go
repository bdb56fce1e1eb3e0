// SPDX-License-Identifier: Apache-2.0

package bench

import (
	"fmt"
	"strconv"
)

const detailedStyle = "table, th, td {border: 1px solid black; border-collapse: collapse} " +
	"td {text-align: right} " +
	"body {font-family: Verdana, Arial, Helvetica, sans-serif}"

// Detailed renders every sample of the run: one row per run and one column
// pair per (file, size), followed by the median, mean, minimum and maximum
// of each column taken from the run's Stats.
func Detailed(run *Run, format Format) (string, error) {
	if err := checkRun(run); err != nil {
		return "", err
	}
	t, err := newTable(format)
	if err != nil {
		return "", err
	}

	t.document("svgbench Detailed Report", detailedStyle)
	t.heading(fmt.Sprintf("Benchmarked %d files from folder '%s'", len(run.Files), run.Dir))
	t.paragraph("All times are in microseconds")

	t.tag(`<table style="width:100%">`)
	t.tag("<thead>")
	header := []cell{{text: "Run", header: true, rowspan: 3}}
	for _, file := range run.Files {
		header = append(header, cell{text: DisplayName(file), header: true, colspan: 2 * len(run.Sizes)})
	}
	t.row(header)

	header = []cell{{tsvOnly: true}}
	for range run.Files {
		for _, size := range run.Sizes {
			header = append(header, cell{text: size.String(), header: true, colspan: 2})
		}
	}
	t.row(header)

	header = []cell{{tsvOnly: true}}
	for range len(run.Files) * len(run.Sizes) {
		header = append(header, backendHeaderCells(run)...)
	}
	t.row(header)
	t.tag("</thead>")

	t.tag("<tbody>")
	for r := range run.RunCount {
		cells := []cell{{text: strconv.Itoa(r + 1)}}
		for f := range run.Files {
			for s := range run.Sizes {
				cells = append(cells, pairCells(run, func(slot Slot) string {
					return itoa(run.Times[slot].At(f, s, r))
				})...)
			}
		}
		t.row(cells)
	}
	t.tag("</tbody>")

	footers := []struct {
		label string
		value func(Stats) int64
	}{
		{"Median", func(s Stats) int64 { return s.Median }},
		{"Mean", func(s Stats) int64 { return s.Mean }},
		{"Min", func(s Stats) int64 { return s.Min }},
		{"Max", func(s Stats) int64 { return s.Max }},
	}

	t.tag("<tfoot>")
	for _, footer := range footers {
		cells := []cell{{text: footer.label}}
		for f := range run.Files {
			for s := range run.Sizes {
				cells = append(cells, pairCells(run, func(slot Slot) string {
					return itoa(footer.value(run.Stats[slot].At(f, s)))
				})...)
			}
		}
		t.row(cells)
	}
	t.tag("</tfoot>")
	t.tag("</table>")
	t.end()

	return t.String(), nil
}

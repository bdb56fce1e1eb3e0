// SPDX-License-Identifier: Apache-2.0

package report

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/xataio/svgbench/pkg/bench"
)

// RenderChart writes an HTML page to w with one bar chart per size. Each
// chart has the files on the x-axis and one series of medians per backend.
func RenderChart(w io.Writer, run *bench.Run) error {
	page := components.NewPage()
	page.SetPageTitle(fmt.Sprintf("svgbench - %s", folderName(run.Dir)))
	page.SetLayout("flex")

	for _, c := range sizeCharts(run) {
		page.AddCharts(c)
	}

	if err := page.Render(w); err != nil {
		return fmt.Errorf("render chart: %w", err)
	}
	return nil
}

func sizeCharts(run *bench.Run) []*charts.Bar {
	names := make([]string, len(run.Files))
	for i, file := range run.Files {
		names[i] = bench.DisplayName(file)
	}

	all := make([]*charts.Bar, 0, len(run.Sizes))
	for s, size := range run.Sizes {
		chart := charts.NewBar()
		chart.SetGlobalOptions(
			charts.WithTitleOpts(opts.Title{
				Title:    size.String(),
				Subtitle: fmt.Sprintf("median of %d runs, microseconds", run.RunCount),
			}),
			charts.WithAnimation(false))
		chart.SetXAxis(names)

		for _, slot := range bench.Slots {
			if !run.Present(slot) {
				continue
			}
			data := make([]opts.BarData, len(run.Files))
			for f := range run.Files {
				data[f] = opts.BarData{Value: run.Stats[slot].At(f, s).Median}
			}
			chart.AddSeries(run.Backends[slot], data)
		}

		all = append(all, chart)
	}
	return all
}

// SPDX-License-Identifier: Apache-2.0

package bench_test

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xataio/svgbench/pkg/bench"
	"github.com/xataio/svgbench/pkg/raster"
)

// buildRun returns a single-size run over files whose primary samples are
// the given ones, one row per file.
func buildRun(t *testing.T, files []string, samples ...[]int64) *bench.Run {
	t.Helper()

	tensor, err := bench.NewTensor(len(files), 1, len(samples[0]))
	require.NoError(t, err)
	for f := range files {
		require.NoError(t, tensor.SetSamples(f, 0, samples[f]))
	}
	stats, err := bench.ReduceTensor(tensor)
	require.NoError(t, err)

	run := &bench.Run{
		Dir:      "icons",
		Files:    files,
		Sizes:    []raster.Size{raster.Square(24)},
		RunCount: len(samples[0]),
	}
	run.Backends[bench.Primary] = "rasterx"
	run.Times[bench.Primary] = tensor
	run.Stats[bench.Primary] = stats
	return run
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	f, err := bench.ParseFormat("HTML")
	require.NoError(t, err)
	assert.Equal(t, bench.FormatHTML, f)
	assert.Equal(t, "html", f.Extension())

	f, err = bench.ParseFormat("tsv")
	require.NoError(t, err)
	assert.Equal(t, bench.FormatTSV, f)
	assert.Equal(t, "tsv", f.Extension())

	_, err = bench.ParseFormat("csv")
	assert.ErrorIs(t, err, bench.ErrInvalidFormat)
}

func TestSummaryHTML(t *testing.T) {
	t.Parallel()

	run := buildRun(t, []string{"sub/<odd>.svg", "plain.svg"}, []int64{3, 1, 2}, []int64{1500, 2500, 2000})

	out, err := bench.Summary(run, bench.FormatHTML)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, `<!DOCTYPE html><html><head><meta charset="UTF-8"><meta name="description" content="svgbench Report">`))
	assert.True(t, strings.HasSuffix(out, "</body></html>\n"))
	assert.Contains(t, out, "<h3>Benchmarked 2 files from folder &#39;icons&#39; (3 runs)</h3>")
	assert.Contains(t, out, "<p>Unless indicated otherwise, the times are in microseconds</p>")
	assert.Contains(t, out, `<tr><th rowspan="2">File</th><th colspan="2">24x24</th></tr>`)
	assert.Contains(t, out, "<tr><th>rasterx</th><th></th></tr>")
	assert.Contains(t, out, "<tr><td>&lt;odd&gt;</td><td>2</td><td></td></tr>")
	assert.Contains(t, out, "<tr><td>plain</td><td>2000</td><td></td></tr>")
	assert.Contains(t, out, "<tr><td>Sum (milliseconds)</td><td>2.00</td><td></td></tr>")
	assert.Contains(t, out, "<tr><td>Min</td><td>2</td><td></td></tr>")
	assert.Contains(t, out, "<tr><td>Max</td><td>2000</td><td></td></tr>")

	for _, tag := range []string{"thead", "tbody", "tfoot", "table"} {
		assert.Equal(t, 1, strings.Count(out, "<"+tag+">"), tag)
		assert.Equal(t, 1, strings.Count(out, "</"+tag+">"), tag)
	}
	assert.Less(t, strings.Index(out, "&lt;odd&gt;"), strings.Index(out, "plain"), "files keep their order")
}

func TestDetailedHTML(t *testing.T) {
	t.Parallel()

	run := buildRun(t, []string{"a.svg"}, []int64{4, 9, 2, 7})

	out, err := bench.Detailed(run, bench.FormatHTML)
	require.NoError(t, err)

	assert.Contains(t, out, `content="svgbench Detailed Report"`)
	assert.Contains(t, out, "<h3>Benchmarked 1 files from folder &#39;icons&#39;</h3>")
	assert.Contains(t, out, "<p>All times are in microseconds</p>")
	assert.Contains(t, out, `<table style="width:100%">`)
	assert.Contains(t, out, `<tr><th rowspan="3">Run</th><th colspan="2">a</th></tr>`)
	assert.Contains(t, out, `<tr><th colspan="2">24x24</th></tr>`)

	for i, v := range []int64{4, 9, 2, 7} {
		row := "<tr><td>" + strconv.Itoa(i+1) + "</td><td>" + strconv.FormatInt(v, 10) + "</td><td></td></tr>"
		assert.Contains(t, out, row)
	}
	assert.Contains(t, out, "<tr><td>Median</td><td>5</td><td></td></tr>")
	assert.Contains(t, out, "<tr><td>Mean</td><td>5</td><td></td></tr>")
	assert.Contains(t, out, "<tr><td>Min</td><td>2</td><td></td></tr>")
	assert.Contains(t, out, "<tr><td>Max</td><td>9</td><td></td></tr>")
}

func TestDetailedFooterUsesStats(t *testing.T) {
	t.Parallel()

	run := buildRun(t, []string{"a.svg"}, []int64{4, 9, 2, 7})
	run.Stats[bench.Primary].Set(0, 0, bench.Stats{Min: 1, Max: 2, Median: 3, Mean: 4})

	out, err := bench.Detailed(run, bench.FormatTSV)
	require.NoError(t, err)

	assert.Contains(t, out, "Median\t3\t\n")
	assert.Contains(t, out, "Mean\t4\t\n")
	assert.Contains(t, out, "Min\t1\t\n")
	assert.Contains(t, out, "Max\t2\t\n")
}

func TestFormatsCarrySameValues(t *testing.T) {
	t.Parallel()

	run := buildRun(t, []string{"a.svg", "b.svg"}, []int64{11, 13, 17}, []int64{19, 23, 29})

	for _, render := range []func(*bench.Run, bench.Format) (string, error){bench.Summary, bench.Detailed} {
		html, err := render(run, bench.FormatHTML)
		require.NoError(t, err)
		tsv, err := render(run, bench.FormatTSV)
		require.NoError(t, err)

		for _, v := range []string{"11", "13", "17", "19", "23", "29"} {
			assert.Equal(t, strings.Contains(tsv, "\t"+v+"\t"), strings.Contains(html, "<td>"+v+"</td>"), v)
		}
	}
}

func TestReportRejectsBadInput(t *testing.T) {
	t.Parallel()

	run := buildRun(t, []string{"a.svg"}, []int64{1})

	_, err := bench.Summary(run, bench.InvalidFormat)
	assert.ErrorIs(t, err, bench.ErrInvalidFormat)

	_, err = bench.Detailed(nil, bench.FormatHTML)
	assert.Error(t, err)

	run.RunCount = 2
	_, err = bench.Detailed(run, bench.FormatTSV)
	assert.Error(t, err)
}

// SPDX-License-Identifier: Apache-2.0

package plan_test

import (
	"os"
	"path/filepath"
	"slices"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xataio/svgbench/pkg/bench"
	"github.com/xataio/svgbench/pkg/plan"
	"github.com/xataio/svgbench/pkg/raster"
)

func iconDir() fstest.MapFS {
	svg := &fstest.MapFile{Data: []byte(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 16 16"/>`)}
	return fstest.MapFS{
		"icon10.svg":      svg,
		"icon2.svg":       svg,
		"Arrow.SVG":       svg,
		"icon1.svg":       svg,
		"notes.txt":       {Data: []byte("not an icon")},
		"nested/deep.svg": svg,
	}
}

func TestParseSize(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		input    string
		expected raster.Size
		wantErr  bool
	}{
		{name: "bare number", input: "24", expected: raster.Square(24)},
		{name: "width and height", input: "24x32", expected: raster.Size{Width: 24, Height: 32}},
		{name: "upper case separator", input: "48X48", expected: raster.Square(48)},
		{name: "surrounding spaces", input: " 16 ", expected: raster.Square(16)},
		{name: "zero", input: "0", wantErr: true},
		{name: "negative", input: "-4x4", wantErr: true},
		{name: "missing height", input: "24x", wantErr: true},
		{name: "garbage", input: "big", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			size, err := plan.ParseSize(tc.input)
			if tc.wantErr {
				var sizeErr plan.InvalidSizeError
				require.ErrorAs(t, err, &sizeErr)
				assert.Equal(t, tc.input, sizeErr.Value)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, size)
		})
	}
}

func TestParseSizesDropsRepeats(t *testing.T) {
	t.Parallel()

	sizes, err := plan.ParseSizes([]string{"48", "24", "48x48", "24x32"})
	require.NoError(t, err)
	assert.Equal(t, []raster.Size{raster.Square(48), raster.Square(24), {Width: 24, Height: 32}}, sizes)
}

func TestStandardSizes(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"16x16", "24x24", "32x32", "48x48", "64x64", "96x96", "128x128", "256x256", "512x512"},
		plan.SizeStrings(plan.StandardSizes))
	for _, s := range plan.DefaultSelection {
		assert.True(t, slices.Contains(plan.StandardSizes, s), s.String())
	}
}

func TestDiscover(t *testing.T) {
	t.Parallel()

	files, err := plan.Discover(iconDir())
	require.NoError(t, err)
	assert.Equal(t, []string{"Arrow.SVG", "icon1.svg", "icon2.svg", "icon10.svg"}, files)

	_, err = plan.Discover(fstest.MapFS{"readme.md": {Data: []byte("#")}})
	assert.ErrorIs(t, err, plan.ErrNoSVGFiles)
}

func TestNaturalCompare(t *testing.T) {
	t.Parallel()

	names := []string{"b10", "a", "B2", "b1", "a01", "a1", "x", "b02"}
	slices.SortFunc(names, plan.NaturalCompare)
	assert.Equal(t, []string{"a", "a01", "a1", "b1", "B2", "b02", "b10", "x"}, names)

	assert.Zero(t, plan.NaturalCompare("same", "same"))
	assert.Negative(t, plan.NaturalCompare("file99999999999999999999", "file100000000000000000000"))
}

func TestSelectFiles(t *testing.T) {
	t.Parallel()

	all := []string{"a.svg", "b.svg", "c.svg"}

	selected, err := plan.SelectFiles(all, nil)
	require.NoError(t, err)
	assert.Equal(t, all, selected)

	selected, err = plan.SelectFiles(all, []string{"c.svg", "a.svg"})
	require.NoError(t, err)
	assert.Equal(t, []string{"c.svg", "a.svg"}, selected)

	selected, err = plan.SelectFiles(all, []string{"b.svg", "a.svg", "b.svg"})
	require.NoError(t, err)
	assert.Equal(t, []string{"b.svg", "a.svg"}, selected)

	_, err = plan.SelectFiles(all, []string{"d.svg"})
	assert.ErrorAs(t, err, &plan.UnknownFileError{})
}

func TestParse(t *testing.T) {
	t.Parallel()

	p, err := plan.Parse([]byte(`
dir: icons
files: [icon1.svg, icon10.svg]
sizes: [24x24, 48, 128X128]
runs: 30
secondary: false
detailedFormat: tsv
`))
	require.NoError(t, err)

	assert.Equal(t, "icons", p.Dir)
	assert.Equal(t, []plan.SizeValue{"24x24", "48", "128X128"}, p.Sizes)

	settings, err := p.Resolve(iconDir())
	require.NoError(t, err)

	assert.Equal(t, &plan.Settings{
		Dir:            "icons",
		Files:          []string{"icon1.svg", "icon10.svg"},
		Sizes:          []raster.Size{raster.Square(24), raster.Square(48), raster.Square(128)},
		Runs:           30,
		Secondary:      false,
		DetailedFormat: bench.FormatTSV,
	}, settings)
}

func TestResolveDefaults(t *testing.T) {
	t.Parallel()

	p, err := plan.Parse([]byte("dir: icons\n"))
	require.NoError(t, err)

	settings, err := p.Resolve(iconDir())
	require.NoError(t, err)

	assert.Equal(t, []string{"Arrow.SVG", "icon1.svg", "icon2.svg", "icon10.svg"}, settings.Files)
	assert.Equal(t, plan.DefaultSelection, settings.Sizes)
	assert.Equal(t, plan.DefaultRuns, settings.Runs)
	assert.True(t, settings.Secondary)
	assert.Equal(t, bench.FormatHTML, settings.DetailedFormat)
}

func TestParseRejectsInvalidPlans(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		yaml string
	}{
		{name: "missing dir", yaml: "runs: 20\n"},
		{name: "too few runs", yaml: "dir: icons\nruns: 9\n"},
		{name: "too many runs", yaml: "dir: icons\nruns: 101\n"},
		{name: "unknown key", yaml: "dir: icons\nthreads: 4\n"},
		{name: "bad size", yaml: "dir: icons\nsizes: [big]\n"},
		{name: "zero size", yaml: "dir: icons\nsizes: [0]\n"},
		{name: "empty sizes", yaml: "dir: icons\nsizes: []\n"},
		{name: "unknown format", yaml: "dir: icons\ndetailedFormat: csv\n"},
		{name: "non svg file", yaml: "dir: icons\nfiles: [notes.txt]\n"},
		{name: "not yaml", yaml: "dir: [icons\n"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := plan.Parse([]byte(tc.yaml))
			assert.ErrorAs(t, err, &plan.InvalidPlanError{})
		})
	}
}

func TestResolveUnknownFile(t *testing.T) {
	t.Parallel()

	p, err := plan.Parse([]byte("dir: icons\nfiles: [missing.svg]\n"))
	require.NoError(t, err)

	_, err = p.Resolve(iconDir())
	assert.ErrorAs(t, err, &plan.UnknownFileError{})
}

func TestLoad(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "plan.yaml")
	require.NoError(t, os.WriteFile(path, []byte("dir: icons\nruns: 10\n"), 0o600))

	p, err := plan.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 10, p.Runs)

	_, err = plan.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestCheckRuns(t *testing.T) {
	t.Parallel()

	assert.NoError(t, plan.CheckRuns(10))
	assert.NoError(t, plan.CheckRuns(100))
	assert.Error(t, plan.CheckRuns(9))
	assert.Error(t, plan.CheckRuns(101))
}

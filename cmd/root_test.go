// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xataio/svgbench/pkg/plan"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	root := Prepare()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)

	err := root.Execute()
	return out.String(), err
}

func TestSizesCommand(t *testing.T) {
	out, err := execute(t, "sizes")
	require.NoError(t, err)

	assert.Contains(t, out, "  16x16\n")
	assert.Contains(t, out, "* 24x24\n")
	assert.Contains(t, out, "* 128x128\n")
	assert.Contains(t, out, "  512x512\n")
}

func TestRunCommand(t *testing.T) {
	outDir := t.TempDir()

	_, err := execute(t, "run", filepath.Join("testdata", "icons"),
		"--sizes", "16,32",
		"--runs", "10",
		"--detailed-format", "tsv",
		"--export", "json",
		"--chart",
		"--metrics-file", filepath.Join(outDir, "svgbench.prom"),
		"--output-dir", outDir)
	require.NoError(t, err)

	for _, name := range []string{
		"svgbench - icons.html",
		"svgbench - icons_details.tsv",
		"svgbench - icons_chart.html",
		"svgbench - icons.json",
		"svgbench.prom",
	} {
		assert.FileExists(t, filepath.Join(outDir, name))
	}

	detailed, err := os.ReadFile(filepath.Join(outDir, "svgbench - icons_details.tsv"))
	require.NoError(t, err)
	assert.Contains(t, string(detailed), "Run\tsquare\t")
	assert.Contains(t, string(detailed), "\trasterx\tsurface\t")
}

func TestRunCommandRejectsBadInput(t *testing.T) {
	_, err := execute(t, "run", filepath.Join("testdata", "icons"), "--runs", "5", "--no-surface", "--output-dir", t.TempDir())
	assert.ErrorAs(t, err, &plan.InvalidPlanError{})

	_, err = execute(t, "run", t.TempDir(), "--no-surface")
	assert.ErrorIs(t, err, plan.ErrNoSVGFiles)

	_, err = execute(t, "run", "--plan", "plan.yaml", "--interactive")
	assert.ErrorIs(t, err, errInteractiveWithPlan)
}

func TestValidateCommand(t *testing.T) {
	dir := t.TempDir()

	valid := filepath.Join(dir, "valid.yaml")
	require.NoError(t, os.WriteFile(valid, []byte("dir: icons\nsizes: [24, 48x48]\nruns: 25\n"), 0o600))
	_, err := execute(t, "validate", valid)
	assert.NoError(t, err)

	invalid := filepath.Join(dir, "invalid.yaml")
	require.NoError(t, os.WriteFile(invalid, []byte("dir: icons\nruns: 1000\n"), 0o600))
	_, err = execute(t, "validate", invalid)
	assert.ErrorAs(t, err, &plan.InvalidPlanError{})
}

func TestPreviewCommand(t *testing.T) {
	outDir := t.TempDir()

	_, err := execute(t, "preview", filepath.Join("testdata", "icons", "square.svg"), "--size", "32", "--format", "bmp", "--output-dir", outDir)
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(outDir, "square_rasterx_32x32.bmp"))
	assert.FileExists(t, filepath.Join(outDir, "square_surface_32x32.bmp"))
}

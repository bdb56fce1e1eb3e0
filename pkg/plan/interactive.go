// SPDX-License-Identifier: Apache-2.0

package plan

import (
	"slices"
	"strconv"

	"github.com/pterm/pterm"

	"github.com/xataio/svgbench/pkg/raster"
)

// PromptFiles lets the user pick a subset of files, all selected by default.
func PromptFiles(all []string) ([]string, error) {
	selected, err := pterm.DefaultInteractiveMultiselect.
		WithDefaultText("Files to benchmark").
		WithOptions(all).
		WithDefaultOptions(all).
		Show()
	if err != nil {
		return nil, err
	}
	if len(selected) == 0 {
		return nil, ErrNoSVGFiles
	}
	return SelectFiles(all, selected)
}

// PromptSizes lets the user pick sizes from StandardSizes, with
// DefaultSelection preselected. The result keeps the menu order.
func PromptSizes() ([]raster.Size, error) {
	selected, err := pterm.DefaultInteractiveMultiselect.
		WithDefaultText("Bitmap sizes").
		WithOptions(SizeStrings(StandardSizes)).
		WithDefaultOptions(SizeStrings(DefaultSelection)).
		Show()
	if err != nil {
		return nil, err
	}

	var sizes []raster.Size
	for _, s := range StandardSizes {
		if slices.Contains(selected, s.String()) {
			sizes = append(sizes, s)
		}
	}
	if len(sizes) == 0 {
		return nil, InvalidPlanError{Reason: "no bitmap sizes selected"}
	}
	return sizes, nil
}

// PromptRuns asks for the number of runs, defaulting to DefaultRuns.
func PromptRuns() (int, error) {
	value, err := pterm.DefaultInteractiveTextInput.
		WithDefaultText("Number of runs").
		WithDefaultValue(strconv.Itoa(DefaultRuns)).
		Show()
	if err != nil {
		return 0, err
	}

	runs, err := strconv.Atoi(value)
	if err != nil {
		return 0, InvalidPlanError{Reason: "runs must be a number"}
	}
	return runs, CheckRuns(runs)
}

// PromptSecondary asks whether the secondary backend should take part.
func PromptSecondary(name string) (bool, error) {
	return pterm.DefaultInteractiveConfirm.
		WithDefaultText("Also benchmark the " + name + " backend").
		WithDefaultValue(true).
		Show()
}

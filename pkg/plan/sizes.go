// SPDX-License-Identifier: Apache-2.0

package plan

import (
	"strconv"
	"strings"

	"github.com/xataio/svgbench/pkg/raster"
)

// StandardSizes is the menu of square sizes offered for selection.
var StandardSizes = []raster.Size{
	raster.Square(16),
	raster.Square(24),
	raster.Square(32),
	raster.Square(48),
	raster.Square(64),
	raster.Square(96),
	raster.Square(128),
	raster.Square(256),
	raster.Square(512),
}

// DefaultSelection is the subset of StandardSizes benchmarked when none are
// given.
var DefaultSelection = []raster.Size{
	raster.Square(24),
	raster.Square(48),
	raster.Square(128),
}

// ParseSize parses "N" as an NxN size or "WxH" as a W by H size.
func ParseSize(s string) (raster.Size, error) {
	value := strings.TrimSpace(s)

	w, h, found := strings.Cut(strings.ToLower(value), "x")
	if !found {
		h = w
	}

	width, err := strconv.Atoi(w)
	if err != nil {
		return raster.Size{}, InvalidSizeError{Value: s}
	}
	height, err := strconv.Atoi(h)
	if err != nil {
		return raster.Size{}, InvalidSizeError{Value: s}
	}

	size := raster.Size{Width: width, Height: height}
	if !size.Valid() {
		return raster.Size{}, InvalidSizeError{Value: s}
	}
	return size, nil
}

// ParseSizes parses every value, dropping repeated sizes and keeping the
// first occurrence of each.
func ParseSizes(values []string) ([]raster.Size, error) {
	sizes := make([]raster.Size, 0, len(values))
	seen := make(map[raster.Size]bool, len(values))

	for _, v := range values {
		size, err := ParseSize(v)
		if err != nil {
			return nil, err
		}
		if seen[size] {
			continue
		}
		seen[size] = true
		sizes = append(sizes, size)
	}
	return sizes, nil
}

// SizeStrings formats sizes the way ParseSize reads them.
func SizeStrings(sizes []raster.Size) []string {
	out := make([]string, len(sizes))
	for i, s := range sizes {
		out[i] = s.String()
	}
	return out
}

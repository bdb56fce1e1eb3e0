// SPDX-License-Identifier: Apache-2.0

package plan

import (
	"io/fs"
	"path"
	"slices"
	"strings"
)

// Discover lists the SVG files at the top level of fsys in natural order, so
// that "icon2.svg" comes before "icon10.svg". The extension is matched
// case-insensitively and subdirectories are not searched.
func Discover(fsys fs.FS) ([]string, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, err
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(path.Ext(e.Name()), ".svg") {
			continue
		}
		files = append(files, e.Name())
	}

	if len(files) == 0 {
		return nil, ErrNoSVGFiles
	}

	slices.SortFunc(files, NaturalCompare)
	return files, nil
}

// SelectFiles returns the members of subset in the order given, dropping
// repeated names. An empty subset selects all files.
func SelectFiles(all, subset []string) ([]string, error) {
	if len(subset) == 0 {
		return all, nil
	}

	seen := make(map[string]bool, len(subset))
	selected := make([]string, 0, len(subset))
	for _, name := range subset {
		if !slices.Contains(all, name) {
			return nil, UnknownFileError{Name: name}
		}
		if seen[name] {
			continue
		}
		seen[name] = true
		selected = append(selected, name)
	}
	return selected, nil
}

// NaturalCompare orders strings case-insensitively, comparing runs of
// digits by numeric value. Ties are broken by plain byte order.
func NaturalCompare(a, b string) int {
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		ca, cb := a[i], b[j]

		if isDigit(ca) && isDigit(cb) {
			si, sj := i, j
			for i < len(a) && isDigit(a[i]) {
				i++
			}
			for j < len(b) && isDigit(b[j]) {
				j++
			}
			if c := compareDigits(a[si:i], b[sj:j]); c != 0 {
				return c
			}
			continue
		}

		la, lb := lowerASCII(ca), lowerASCII(cb)
		if la != lb {
			if la < lb {
				return -1
			}
			return 1
		}
		i++
		j++
	}

	switch {
	case len(a)-i < len(b)-j:
		return -1
	case len(a)-i > len(b)-j:
		return 1
	}
	return strings.Compare(a, b)
}

// compareDigits compares two digit runs by value without overflowing.
func compareDigits(a, b string) int {
	a = strings.TrimLeft(a, "0")
	b = strings.TrimLeft(b, "0")
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	return strings.Compare(a, b)
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func lowerASCII(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + 'a' - 'A'
	}
	return c
}

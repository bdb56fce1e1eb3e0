// SPDX-License-Identifier: Apache-2.0

package raster

import (
	"bytes"
	"os"

	"github.com/srwiley/oksvg"
)

// document is a parsed SVG shared by both backends.
type document struct {
	icon   *oksvg.SvgIcon
	width  float64
	height float64
}

func loadDocument(path string) (*document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	// unsupported elements are skipped
	icon, err := oksvg.ReadIconStream(bytes.NewReader(data), oksvg.IgnoreErrorMode)
	if err != nil {
		return nil, ParseError{Path: path, Err: err}
	}

	if icon.ViewBox.W <= 0 || icon.ViewBox.H <= 0 {
		return nil, ParseError{Path: path, Err: ErrNoDimensions}
	}

	return &document{
		icon:   icon,
		width:  icon.ViewBox.W,
		height: icon.ViewBox.H,
	}, nil
}

// fit points the document at the largest rectangle with the document's
// aspect ratio that fits in size, centered.
func (d *document) fit(size Size) {
	w, h := float64(size.Width), float64(size.Height)
	scale := min(w/d.width, h/d.height)
	tw, th := d.width*scale, d.height*scale

	d.icon.SetTarget((w-tw)/2, (h-th)/2, tw, th)
}

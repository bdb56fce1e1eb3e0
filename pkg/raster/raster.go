// SPDX-License-Identifier: Apache-2.0

package raster

import "image"

// Backend is one interchangeable SVG rasterization implementation.
//
// A Backend produces a Bundle per document. Bundles hold the parsed document
// and derive bitmaps at arbitrary sizes on demand.
type Backend interface {
	// Name is the short label used in reports.
	Name() string

	// Available reports whether the backend can rasterize at all.
	Available() bool

	// Load reads and parses the SVG document at path.
	Load(path string) (Bundle, error)
}

// Bundle is a resolution independent image from which bitmaps are derived.
// Bundles are not safe for concurrent use.
type Bundle interface {
	Bitmap(size Size) Bitmap
}

// Bitmap is an RGBA pixel buffer. The zero Bitmap is invalid.
type Bitmap struct {
	img *image.RGBA
}

// NewBitmap wraps img. A nil img yields an invalid Bitmap.
func NewBitmap(img *image.RGBA) Bitmap {
	return Bitmap{img: img}
}

// IsValid reports whether rasterization produced pixels.
func (b Bitmap) IsValid() bool {
	return b.img != nil
}

// Image returns the underlying pixels, nil for an invalid bitmap.
func (b Bitmap) Image() *image.RGBA {
	return b.img
}

// Size returns the bitmap dimensions, the zero Size for an invalid bitmap.
func (b Bitmap) Size() Size {
	if b.img == nil {
		return Size{}
	}
	r := b.img.Bounds()
	return Size{Width: r.Dx(), Height: r.Dy()}
}

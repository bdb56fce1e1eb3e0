// SPDX-License-Identifier: Apache-2.0

package raster

import "fmt"

// Size is a target rasterization resolution in pixels.
type Size struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Square returns a Size with equal width and height.
func Square(n int) Size {
	return Size{Width: n, Height: n}
}

// Valid reports whether both dimensions are positive.
func (s Size) Valid() bool {
	return s.Width > 0 && s.Height > 0
}

// Fits reports whether s is valid and no larger than limit in either dimension.
func (s Size) Fits(limit Size) bool {
	return s.Valid() && s.Width <= limit.Width && s.Height <= limit.Height
}

func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

// SPDX-License-Identifier: Apache-2.0

package raster

import (
	"errors"
	"fmt"
)

var (
	ErrSurfaceUnavailable = errors.New("shared surface is not initialized")
	ErrNoDimensions       = errors.New("document has no usable width, height or viewBox")
)

type ParseError struct {
	Path string
	Err  error
}

func (e ParseError) Unwrap() error {
	return e.Err
}

func (e ParseError) Error() string {
	return fmt.Sprintf("parsing SVG document %q: %s", e.Path, e.Err)
}

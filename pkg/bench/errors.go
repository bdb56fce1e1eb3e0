// SPDX-License-Identifier: Apache-2.0

package bench

import (
	"errors"
	"fmt"

	"github.com/xataio/svgbench/pkg/raster"
)

var (
	ErrNoSamples    = errors.New("cannot reduce an empty set of samples")
	ErrRunCompleted = errors.New("benchmark has already been run")
)

// PreconditionError is returned before any timing work starts when the
// benchmark inputs are unusable.
type PreconditionError struct {
	Reason string
}

func (e PreconditionError) Error() string {
	return "precondition violated: " + e.Reason
}

// RasterizationFailedError aborts a benchmark run. It names the file, size
// and backend of the first rasterization that did not produce a bitmap.
type RasterizationFailedError struct {
	File    string
	Size    raster.Size
	Backend string
	Err     error
}

func (e RasterizationFailedError) Unwrap() error {
	return e.Err
}

func (e RasterizationFailedError) Error() string {
	msg := fmt.Sprintf("couldn't rasterize file %q at size %s with %s", e.File, e.Size, e.Backend)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

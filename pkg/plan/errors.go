// SPDX-License-Identifier: Apache-2.0

package plan

import (
	"errors"
	"fmt"
)

var ErrNoSVGFiles = errors.New("no SVG files found")

type InvalidSizeError struct {
	Value string
}

func (e InvalidSizeError) Error() string {
	return fmt.Sprintf("invalid bitmap size %q: expected N or WxH with positive integers", e.Value)
}

type InvalidPlanError struct {
	Reason string
}

func (e InvalidPlanError) Error() string {
	return "invalid benchmark plan: " + e.Reason
}

type UnknownFileError struct {
	Name string
}

func (e UnknownFileError) Error() string {
	return fmt.Sprintf("file %q is not an SVG file of the benchmark folder", e.Name)
}

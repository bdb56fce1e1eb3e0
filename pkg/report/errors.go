// SPDX-License-Identifier: Apache-2.0

package report

import (
	"errors"
	"fmt"
)

var ErrInvalidExportFormat = errors.New("invalid export format")

// ReportWriteError is returned when a rendered report cannot be persisted.
type ReportWriteError struct {
	Path string
	Err  error
}

func (e ReportWriteError) Unwrap() error {
	return e.Err
}

func (e ReportWriteError) Error() string {
	return fmt.Sprintf("couldn't write report %q: %s", e.Path, e.Err)
}

// SPDX-License-Identifier: Apache-2.0

package bench

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/xataio/svgbench/pkg/raster"
)

// Slot identifies one of the two compared backends.
type Slot int

const (
	Primary Slot = iota
	Secondary
)

// Slots lists the backend slots in report column order.
var Slots = [2]Slot{Primary, Secondary}

// Run is the complete result of one benchmark. It is immutable once returned
// by Runner.Run.
//
// Times and Stats are nil for a backend that did not take part.
type Run struct {
	ID       uuid.UUID
	Dir      string
	Files    []string
	Sizes    []raster.Size
	RunCount int
	Backends [2]string
	Times    [2]*Tensor
	Stats    [2]*Matrix
	Started  time.Time
	Elapsed  time.Duration
}

// Present reports whether the backend in slot took part in the run.
func (r *Run) Present(slot Slot) bool {
	return r.Times[slot] != nil && r.Stats[slot] != nil
}

// DisplayName is how a file is labelled in reports: its base name without
// the extension.
func DisplayName(file string) string {
	base := filepath.Base(file)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

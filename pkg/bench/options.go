// SPDX-License-Identifier: Apache-2.0

package bench

import (
	"time"

	"github.com/xataio/svgbench/pkg/raster"
)

// ProgressFn is called after each (file, backend) collection completes with
// the number of collections done and the total expected.
type ProgressFn func(done, total int)

type options struct {
	// backend compared against the primary one, if any
	secondary raster.Backend

	logger   Logger
	progress ProgressFn

	summaryFormat  Format
	detailedFormat Format

	// passed through to every CollectFile call
	collectOpts []CollectOption

	// clock used to stamp the run, not to time samples
	now func() time.Time
}

type Option func(*options)

// WithSecondaryBackend sets the backend compared against the primary one.
func WithSecondaryBackend(b raster.Backend) Option {
	return func(o *options) {
		o.secondary = b
	}
}

// WithLogger sets the logger used during the run.
func WithLogger(l Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithProgress registers a progress callback.
func WithProgress(fn ProgressFn) Option {
	return func(o *options) {
		o.progress = fn
	}
}

// WithSummaryFormat selects the rendering of the summary report.
func WithSummaryFormat(f Format) Option {
	return func(o *options) {
		o.summaryFormat = f
	}
}

// WithDetailedFormat selects the rendering of the detailed report.
func WithDetailedFormat(f Format) Option {
	return func(o *options) {
		o.detailedFormat = f
	}
}

// WithCollectOptions passes options to every sample collection.
func WithCollectOptions(opts ...CollectOption) Option {
	return func(o *options) {
		o.collectOpts = append(o.collectOpts, opts...)
	}
}

// WithNow sets the clock used to stamp the start and the elapsed time of a
// run. Sample timings use the clock given by WithClock instead.
func WithNow(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

// SPDX-License-Identifier: Apache-2.0

package bench

import (
	"time"

	"github.com/xataio/svgbench/pkg/raster"
)

// Observer is notified of every sample and failure as it is collected. It is
// called outside the timed window.
type Observer interface {
	ObserveSample(backend string, size raster.Size, micros int64)
	ObserveFailure(backend string, size raster.Size)
}

type collectOptions struct {
	now      func() time.Time
	observer Observer
}

type CollectOption func(*collectOptions)

// WithClock replaces the wall clock used to time rasterization.
func WithClock(now func() time.Time) CollectOption {
	return func(o *collectOptions) {
		o.now = now
	}
}

// WithObserver attaches an Observer to the collection.
func WithObserver(obs Observer) CollectOption {
	return func(o *collectOptions) {
		o.observer = obs
	}
}

// CollectFile times the rasterization of the file at path with backend,
// runCount times at each of sizes. The result is indexed [size][run] and
// holds elapsed microseconds.
//
// Each run loads a fresh bundle, which then serves every size of that run
// in order. The first invalid bitmap aborts the collection with a
// RasterizationFailedError and no samples are returned.
func CollectFile(backend raster.Backend, path string, sizes []raster.Size, runCount int, opts ...CollectOption) ([][]int64, error) {
	options := &collectOptions{now: time.Now}
	for _, o := range opts {
		o(options)
	}

	if len(sizes) == 0 {
		return nil, PreconditionError{Reason: "no bitmap sizes to collect"}
	}
	if runCount < 1 {
		return nil, PreconditionError{Reason: "run count must be at least 1"}
	}

	fail := func(size raster.Size, err error) error {
		if options.observer != nil {
			options.observer.ObserveFailure(backend.Name(), size)
		}
		return RasterizationFailedError{
			File:    path,
			Size:    size,
			Backend: backend.Name(),
			Err:     err,
		}
	}

	times := make([][]int64, len(sizes))
	for s := range times {
		times[s] = make([]int64, runCount)
	}

	for run := range runCount {
		bundle, err := backend.Load(path)
		if err != nil {
			return nil, fail(sizes[0], err)
		}

		for s, size := range sizes {
			start := options.now()
			bitmap := bundle.Bitmap(size)
			elapsed := options.now().Sub(start)

			if !bitmap.IsValid() {
				return nil, fail(size, nil)
			}

			micros := max(elapsed.Microseconds(), 0)
			times[s][run] = micros
			if options.observer != nil {
				options.observer.ObserveSample(backend.Name(), size, micros)
			}
		}
	}

	return times, nil
}

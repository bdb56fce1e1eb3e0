// SPDX-License-Identifier: Apache-2.0

package bench_test

import (
	"errors"
	"image"
	"time"

	"github.com/xataio/svgbench/pkg/raster"
)

// fakeBackend hands out bundles that produce blank bitmaps. It records every
// load and every requested size.
type fakeBackend struct {
	name    string
	failAt  raster.Size
	loadErr error

	loads     []string
	requested []raster.Size
}

func newFakeBackend(name string) *fakeBackend {
	return &fakeBackend{name: name}
}

func (b *fakeBackend) Name() string    { return b.name }
func (b *fakeBackend) Available() bool { return true }

func (b *fakeBackend) Load(path string) (raster.Bundle, error) {
	b.loads = append(b.loads, path)
	if b.loadErr != nil {
		return nil, b.loadErr
	}
	return fakeBundle{backend: b}, nil
}

type fakeBundle struct {
	backend *fakeBackend
}

func (f fakeBundle) Bitmap(size raster.Size) raster.Bitmap {
	f.backend.requested = append(f.backend.requested, size)
	if size == f.backend.failAt {
		return raster.Bitmap{}
	}
	return raster.NewBitmap(image.NewRGBA(image.Rect(0, 0, size.Width, size.Height)))
}

var errLoad = errors.New("unreadable document")

// scriptedClock returns a clock for which the n-th timed window lasts
// micros[n] microseconds. It cycles through micros.
func scriptedClock(micros ...int64) func() time.Time {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	calls := 0
	return func() time.Time {
		window := calls / 2
		end := calls%2 == 1
		calls++

		t := base.Add(time.Duration(window) * time.Second)
		if end {
			t = t.Add(time.Duration(micros[window%len(micros)]) * time.Microsecond)
		}
		return t
	}
}

type observation struct {
	backend string
	size    raster.Size
	micros  int64
	failed  bool
}

type recordingObserver struct {
	seen []observation
}

func (o *recordingObserver) ObserveSample(backend string, size raster.Size, micros int64) {
	o.seen = append(o.seen, observation{backend: backend, size: size, micros: micros})
}

func (o *recordingObserver) ObserveFailure(backend string, size raster.Size) {
	o.seen = append(o.seen, observation{backend: backend, size: size, failed: true})
}

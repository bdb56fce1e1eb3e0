// SPDX-License-Identifier: Apache-2.0

package raster

import (
	"fmt"
	"image"
	"sync"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/draw"
)

const SurfaceName = "surface"

// DefaultSurfaceSize is the largest bitmap the shared surface can produce
// unless configured otherwise.
var DefaultSurfaceSize = Square(512)

var _ Backend = (*SurfaceBackend)(nil)

type surfaceOptions struct {
	maxSize Size
}

type SurfaceOption func(*surfaceOptions)

// WithMaxSize sets the dimensions of the shared surface, which is also the
// largest bitmap the backend can produce.
func WithMaxSize(size Size) SurfaceOption {
	return func(o *surfaceOptions) {
		o.maxSize = size
	}
}

// SurfaceBackend renders every bitmap into one off-screen surface that is
// allocated once for the lifetime of the process and copies the requested
// region out. The owner must call Initialize before use and Shutdown when
// done; until Initialize succeeds the backend reports itself unavailable.
type SurfaceBackend struct {
	mu      sync.Mutex
	maxSize Size
	surface *image.RGBA
}

func NewSurfaceBackend(opts ...SurfaceOption) *SurfaceBackend {
	options := &surfaceOptions{maxSize: DefaultSurfaceSize}
	for _, o := range opts {
		o(options)
	}
	return &SurfaceBackend{maxSize: options.maxSize}
}

// Initialize allocates the shared surface. Calling it again is a no-op.
func (b *SurfaceBackend) Initialize() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.surface != nil {
		return nil
	}
	if !b.maxSize.Valid() {
		return fmt.Errorf("invalid surface size %s", b.maxSize)
	}

	b.surface = image.NewRGBA(image.Rect(0, 0, b.maxSize.Width, b.maxSize.Height))
	return nil
}

// Shutdown releases the shared surface.
func (b *SurfaceBackend) Shutdown() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.surface = nil
}

func (b *SurfaceBackend) Name() string { return SurfaceName }

func (b *SurfaceBackend) Available() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.surface != nil
}

// MaxSize is the largest bitmap the backend can produce.
func (b *SurfaceBackend) MaxSize() Size {
	return b.maxSize
}

func (b *SurfaceBackend) Load(path string) (Bundle, error) {
	if !b.Available() {
		return nil, ErrSurfaceUnavailable
	}

	doc, err := loadDocument(path)
	if err != nil {
		return nil, err
	}
	return &surfaceBundle{backend: b, doc: doc}, nil
}

type surfaceBundle struct {
	backend *SurfaceBackend
	doc     *document
}

func (s *surfaceBundle) Bitmap(size Size) Bitmap {
	b := s.backend

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.surface == nil || !size.Fits(b.maxSize) {
		return Bitmap{}
	}

	// The scanner draws over the whole bounds of its destination, so it must
	// only ever see the requested region of the surface.
	region := image.Rect(0, 0, size.Width, size.Height)
	dst := b.surface.SubImage(region).(*image.RGBA)
	draw.Draw(dst, dst.Bounds(), image.Transparent, image.Point{}, draw.Src)

	scanner := rasterx.NewScannerGV(size.Width, size.Height, dst, dst.Bounds())
	dasher := rasterx.NewDasher(size.Width, size.Height, scanner)

	s.doc.fit(size)
	s.doc.icon.Draw(dasher, 1)

	out := image.NewRGBA(region)
	draw.Copy(out, image.Point{}, dst, dst.Bounds(), draw.Src, nil)

	return NewBitmap(out)
}

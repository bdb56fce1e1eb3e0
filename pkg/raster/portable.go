// SPDX-License-Identifier: Apache-2.0

package raster

import (
	"image"

	"github.com/srwiley/rasterx"
)

const PortableName = "rasterx"

var _ Backend = (*PortableBackend)(nil)

// PortableBackend rasterizes with oksvg and rasterx. It needs no setup and
// is always available.
type PortableBackend struct{}

func NewPortableBackend() *PortableBackend {
	return &PortableBackend{}
}

func (b *PortableBackend) Name() string { return PortableName }

func (b *PortableBackend) Available() bool { return true }

func (b *PortableBackend) Load(path string) (Bundle, error) {
	doc, err := loadDocument(path)
	if err != nil {
		return nil, err
	}
	return &portableBundle{doc: doc}, nil
}

type portableBundle struct {
	doc *document
}

func (p *portableBundle) Bitmap(size Size) Bitmap {
	if !size.Valid() {
		return Bitmap{}
	}

	img := image.NewRGBA(image.Rect(0, 0, size.Width, size.Height))
	scanner := rasterx.NewScannerGV(size.Width, size.Height, img, img.Bounds())
	dasher := rasterx.NewDasher(size.Width, size.Height, scanner)

	p.doc.fit(size)
	p.doc.icon.Draw(dasher, 1)

	return NewBitmap(img)
}

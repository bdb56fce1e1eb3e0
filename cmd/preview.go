// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"golang.org/x/image/bmp"

	"github.com/xataio/svgbench/pkg/bench"
	"github.com/xataio/svgbench/pkg/plan"
)

var imageEncoders = map[string]func(io.Writer, image.Image) error{
	"png": png.Encode,
	"bmp": bmp.Encode,
}

func previewCmd() *cobra.Command {
	var sizeValue string
	var format string
	var outputDir string

	previewCmd := &cobra.Command{
		Use:     "preview <file>",
		Short:   "Rasterize an SVG file with every available backend",
		Example: "preview icons/arrow.svg --size 128 --format bmp",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fileName := args[0]

			size, err := plan.ParseSize(sizeValue)
			if err != nil {
				return err
			}
			encode, ok := imageEncoders[format]
			if !ok {
				return fmt.Errorf("unknown image format %q: expected png or bmp", format)
			}

			set, err := openBackends(true)
			if err != nil {
				return err
			}
			defer set.Close()

			for _, backend := range set.all() {
				bundle, err := backend.Load(fileName)
				if err != nil {
					return bench.RasterizationFailedError{File: fileName, Size: size, Backend: backend.Name(), Err: err}
				}
				bitmap := bundle.Bitmap(size)
				if !bitmap.IsValid() {
					return bench.RasterizationFailedError{File: fileName, Size: size, Backend: backend.Name()}
				}

				name := fmt.Sprintf("%s_%s_%s.%s", bench.DisplayName(fileName), backend.Name(), size, format)
				path := filepath.Join(outputDir, name)
				if err := writeWith(path, func(f *os.File) error { return encode(f, bitmap.Image()) }); err != nil {
					return err
				}
				pterm.Success.Printfln("%s: %s", backend.Name(), path)
			}
			return nil
		},
	}

	previewCmd.Flags().StringVar(&sizeValue, "size", "128", "Bitmap size, as N or WxH")
	previewCmd.Flags().StringVar(&format, "format", "png", "Image format: png or bmp")
	previewCmd.Flags().StringVarP(&outputDir, "output-dir", "o", ".", "Folder the images are written to")

	return previewCmd
}

// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"strconv"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/xataio/svgbench/cmd/flags"
	"github.com/xataio/svgbench/pkg/plan"
	"github.com/xataio/svgbench/pkg/raster"
)

// backendSet owns the rasterization backends of one command. The surface
// backend holds a process wide surface between openBackends and Close.
type backendSet struct {
	portable *raster.PortableBackend
	surface  *raster.SurfaceBackend

	// set when the surface backend was requested but could not start
	surfaceErr error
}

func openBackends(withSurface bool) (*backendSet, error) {
	set := &backendSet{portable: raster.NewPortableBackend()}
	if !withSurface {
		return set, nil
	}

	size, err := plan.ParseSize(flags.SurfaceSize())
	if err != nil {
		return nil, err
	}

	surface := raster.NewSurfaceBackend(raster.WithMaxSize(size))
	if err := surface.Initialize(); err != nil {
		set.surfaceErr = err
		return set, nil
	}
	set.surface = surface
	return set, nil
}

// secondary returns the surface backend if it is running.
func (s *backendSet) secondary() (*raster.SurfaceBackend, bool) {
	if s.surface == nil || !s.surface.Available() {
		return nil, false
	}
	return s.surface, true
}

func (s *backendSet) all() []raster.Backend {
	backends := []raster.Backend{s.portable}
	if surface, ok := s.secondary(); ok {
		backends = append(backends, surface)
	}
	return backends
}

func (s *backendSet) Close() {
	if s.surface != nil {
		s.surface.Shutdown()
	}
}

func backendsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "backends",
		Short: "List the rasterization backends and their availability",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := openBackends(true)
			if err != nil {
				return err
			}
			defer set.Close()

			data := pterm.TableData{
				{"Backend", "Available", "Maximum size"},
				{raster.PortableName, strconv.FormatBool(set.portable.Available()), "unlimited"},
			}

			row := []string{raster.SurfaceName, "false", flags.SurfaceSize()}
			if surface, ok := set.secondary(); ok {
				row[1] = "true"
				row[2] = surface.MaxSize().String()
			}
			data = append(data, row)

			if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
				return err
			}
			if set.surfaceErr != nil {
				pterm.Warning.Printfln("%s backend unavailable: %s", raster.SurfaceName, set.surfaceErr)
			}
			return nil
		},
	}
}

// SPDX-License-Identifier: Apache-2.0

package bench

import (
	"path/filepath"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/xataio/svgbench/pkg/raster"
)

type state int

const (
	stateUnconfigured state = iota
	stateConfigured
	stateCompleted
)

// Reports is the outcome of a successful Runner.Run.
type Reports struct {
	Run      *Run
	Summary  string
	Detailed string
}

// Runner benchmarks a set of SVG files at a set of sizes on a primary and,
// optionally, a secondary backend.
//
// A Runner is used for exactly one Setup and Run cycle. Collection is
// strictly sequential so that rasterizations never compete for the CPU.
type Runner struct {
	primary raster.Backend
	options *options

	state state
	dir   string
	files []string
	sizes []raster.Size
}

func NewRunner(primary raster.Backend, opts ...Option) *Runner {
	options := &options{
		logger:         NewNoopLogger(),
		summaryFormat:  FormatHTML,
		detailedFormat: FormatHTML,
		now:            time.Now,
	}
	for _, o := range opts {
		o(options)
	}

	return &Runner{
		primary: primary,
		options: options,
	}
}

// Setup stores the benchmark inputs. Files are names relative to dir and
// are benchmarked in the given order. Nothing is validated until Run.
//
// Setup is ignored once Run has been called; any further Run fails with
// ErrRunCompleted.
func (r *Runner) Setup(dir string, files []string, sizes []raster.Size) {
	if r.state == stateCompleted {
		return
	}
	r.dir = dir
	r.files = slices.Clone(files)
	r.sizes = slices.Clone(sizes)
	r.state = stateConfigured
}

// Run benchmarks every file on the primary backend and, if
// hasSecondBackend, on the secondary one, runCount times at each size. It
// returns both reports, or the first error encountered, in which case no
// report and no partial timings are returned.
func (r *Runner) Run(hasSecondBackend bool, runCount int) (*Reports, error) {
	backends, err := r.checkPreconditions(hasSecondBackend, runCount)
	if err != nil {
		return nil, err
	}
	r.state = stateCompleted

	run := &Run{
		ID:       uuid.New(),
		Dir:      r.dir,
		Files:    r.files,
		Sizes:    r.sizes,
		RunCount: runCount,
		Started:  r.options.now(),
	}
	run.Backends[Primary] = r.primary.Name()
	if r.options.secondary != nil {
		run.Backends[Secondary] = r.options.secondary.Name()
	}

	names := make([]string, len(backends))
	for i, b := range backends {
		names[i] = b.Name()
	}
	r.options.logger.LogRunStart(r.dir, len(r.files), len(r.sizes), runCount, names)

	if err := r.collect(run, backends); err != nil {
		r.options.logger.LogRunFailed(err)
		return nil, err
	}

	for i := range backends {
		m, err := ReduceTensor(run.Times[i])
		if err != nil {
			return nil, err
		}
		run.Stats[i] = m
	}
	run.Elapsed = r.options.now().Sub(run.Started)

	summary, err := Summary(run, r.options.summaryFormat)
	if err != nil {
		return nil, err
	}
	detailed, err := Detailed(run, r.options.detailedFormat)
	if err != nil {
		return nil, err
	}

	r.options.logger.LogRunComplete(run)

	return &Reports{
		Run:      run,
		Summary:  summary,
		Detailed: detailed,
	}, nil
}

func (r *Runner) checkPreconditions(hasSecondBackend bool, runCount int) ([]raster.Backend, error) {
	switch {
	case r.state == stateCompleted:
		return nil, ErrRunCompleted
	case r.state == stateUnconfigured:
		return nil, PreconditionError{Reason: "benchmark is not configured"}
	case r.primary == nil:
		return nil, PreconditionError{Reason: "no primary backend"}
	case len(r.files) == 0:
		return nil, PreconditionError{Reason: "no files to benchmark"}
	case len(r.sizes) == 0:
		return nil, PreconditionError{Reason: "no bitmap sizes to benchmark"}
	case runCount < 1:
		return nil, PreconditionError{Reason: "run count must be at least 1"}
	case hasSecondBackend && r.options.secondary == nil:
		return nil, PreconditionError{Reason: "no secondary backend configured"}
	}

	backends := []raster.Backend{r.primary}
	if hasSecondBackend {
		backends = append(backends, r.options.secondary)
	}
	return backends, nil
}

// collect fills run.Times for every backend. Tensors are only attached to
// run once every file has been collected.
func (r *Runner) collect(run *Run, backends []raster.Backend) error {
	tensors := make([]*Tensor, len(backends))
	for i := range backends {
		t, err := NewTensor(len(run.Files), len(run.Sizes), run.RunCount)
		if err != nil {
			return err
		}
		tensors[i] = t
	}

	done, total := 0, len(run.Files)*len(backends)
	for f, file := range run.Files {
		path := filepath.Join(run.Dir, file)

		for i, backend := range backends {
			r.options.logger.LogCollectStart(file, backend.Name())
			start := time.Now()

			times, err := CollectFile(backend, path, run.Sizes, run.RunCount, r.options.collectOpts...)
			if err != nil {
				return err
			}
			for s := range run.Sizes {
				if err := tensors[i].SetSamples(f, s, times[s]); err != nil {
					return err
				}
			}

			r.options.logger.LogCollectComplete(file, backend.Name(), time.Since(start))
			done++
			if r.options.progress != nil {
				r.options.progress(done, total)
			}
		}
	}

	for i, t := range tensors {
		run.Times[i] = t
	}
	return nil
}

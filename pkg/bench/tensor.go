// SPDX-License-Identifier: Apache-2.0

package bench

import (
	"fmt"
	"slices"
)

// Tensor holds the samples of one backend, indexed [file][size][run]. Every
// (file, size) cell has exactly one sample per run.
type Tensor struct {
	files, sizes, runs int
	data               []int64
}

// NewTensor returns a zeroed tensor with the given extents, all of which must
// be positive.
func NewTensor(files, sizes, runs int) (*Tensor, error) {
	if files < 1 || sizes < 1 || runs < 1 {
		return nil, fmt.Errorf("invalid tensor extents %dx%dx%d", files, sizes, runs)
	}
	return &Tensor{
		files: files,
		sizes: sizes,
		runs:  runs,
		data:  make([]int64, files*sizes*runs),
	}, nil
}

// Dims returns the extents of the tensor.
func (t *Tensor) Dims() (files, sizes, runs int) {
	return t.files, t.sizes, t.runs
}

func (t *Tensor) offset(file, size, run int) int {
	if file < 0 || file >= t.files || size < 0 || size >= t.sizes || run < 0 || run >= t.runs {
		panic(fmt.Sprintf("bench: tensor index [%d][%d][%d] out of range [%d][%d][%d]",
			file, size, run, t.files, t.sizes, t.runs))
	}
	return (file*t.sizes+size)*t.runs + run
}

func (t *Tensor) At(file, size, run int) int64 {
	return t.data[t.offset(file, size, run)]
}

func (t *Tensor) Set(file, size, run int, v int64) {
	t.data[t.offset(file, size, run)] = v
}

// Samples returns a copy of the per-run samples of one cell.
func (t *Tensor) Samples(file, size int) []int64 {
	start := t.offset(file, size, 0)
	return slices.Clone(t.data[start : start+t.runs])
}

// SetSamples replaces the samples of one cell. samples must hold exactly one
// value per run.
func (t *Tensor) SetSamples(file, size int, samples []int64) error {
	if len(samples) != t.runs {
		return fmt.Errorf("cell [%d][%d] needs %d samples, got %d", file, size, t.runs, len(samples))
	}
	start := t.offset(file, size, 0)
	copy(t.data[start:start+t.runs], samples)
	return nil
}

// Matrix holds the Stats of one backend, indexed [file][size].
type Matrix struct {
	files, sizes int
	data         []Stats
}

func NewMatrix(files, sizes int) (*Matrix, error) {
	if files < 1 || sizes < 1 {
		return nil, fmt.Errorf("invalid matrix extents %dx%d", files, sizes)
	}
	return &Matrix{
		files: files,
		sizes: sizes,
		data:  make([]Stats, files*sizes),
	}, nil
}

// ReduceTensor computes the Stats of every cell of t.
func ReduceTensor(t *Tensor) (*Matrix, error) {
	m, err := NewMatrix(t.files, t.sizes)
	if err != nil {
		return nil, err
	}
	for f := range t.files {
		for s := range t.sizes {
			stats, err := Reduce(t.Samples(f, s))
			if err != nil {
				return nil, err
			}
			m.Set(f, s, stats)
		}
	}
	return m, nil
}

func (m *Matrix) Dims() (files, sizes int) {
	return m.files, m.sizes
}

func (m *Matrix) offset(file, size int) int {
	if file < 0 || file >= m.files || size < 0 || size >= m.sizes {
		panic(fmt.Sprintf("bench: matrix index [%d][%d] out of range [%d][%d]",
			file, size, m.files, m.sizes))
	}
	return file*m.sizes + size
}

func (m *Matrix) At(file, size int) Stats {
	return m.data[m.offset(file, size)]
}

func (m *Matrix) Set(file, size int, s Stats) {
	m.data[m.offset(file, size)] = s
}

// SPDX-License-Identifier: Apache-2.0

package bench

import "slices"

// Stats summarises the samples of one (file, size) cell. All values are in
// microseconds and truncated towards zero.
type Stats struct {
	Min    int64 `json:"min"`
	Max    int64 `json:"max"`
	Median int64 `json:"median"`
	Mean   int64 `json:"mean"`
}

// Reduce computes Stats over samples without modifying them.
//
// The median of an even number of samples is the truncated average of the
// two middle values, and the mean is the truncated quotient of the exact
// sum by the sample count.
func Reduce(samples []int64) (Stats, error) {
	n := len(samples)
	if n == 0 {
		return Stats{}, ErrNoSamples
	}

	sorted := slices.Clone(samples)
	slices.Sort(sorted)

	median := sorted[n/2]
	if n%2 == 0 {
		median = (median + sorted[n/2-1]) / 2
	}

	var sum int64
	for _, v := range sorted {
		sum += v
	}

	return Stats{
		Min:    sorted[0],
		Max:    sorted[n-1],
		Median: median,
		Mean:   sum / int64(n),
	}, nil
}

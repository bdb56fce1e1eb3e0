// SPDX-License-Identifier: Apache-2.0

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/xataio/svgbench/pkg/raster"
)

const namespace = "svgbench"

// DurationBuckets spans single icons at small sizes up to large documents at
// the biggest sizes, in microseconds.
var DurationBuckets = prometheus.ExponentialBuckets(10, 2.5, 12)

// Recorder turns collected samples into Prometheus metrics. It implements
// bench.Observer.
type Recorder struct {
	registry *prometheus.Registry

	duration *prometheus.HistogramVec
	failures *prometheus.CounterVec
}

func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "rasterize_duration_microseconds",
			Help:      "Time taken to rasterize one SVG document at one size.",
			Buckets:   DurationBuckets,
		}, []string{"backend", "size"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rasterize_failures_total",
			Help:      "Rasterizations that did not produce a bitmap.",
		}, []string{"backend"}),
	}
	r.registry.MustRegister(r.duration, r.failures)
	return r
}

func (r *Recorder) ObserveSample(backend string, size raster.Size, micros int64) {
	r.duration.WithLabelValues(backend, size.String()).Observe(float64(micros))
}

func (r *Recorder) ObserveFailure(backend string, size raster.Size) {
	r.failures.WithLabelValues(backend).Inc()
}

// Registry returns the registry holding the recorder's metrics.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// WriteTextfile writes the metrics in the text exposition format, suitable
// for the node exporter textfile collector. The file is replaced atomically.
func (r *Recorder) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.registry)
}

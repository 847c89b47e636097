// MIT License
//
// # Copyright (c) 2024 sphinx-core
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

// go/src/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus metrics for molecule build, sign and verify
// operations.
type Metrics struct {
	OpCount   *prometheus.CounterVec
	OpLatency *prometheus.HistogramVec
	ErrCount  *prometheus.CounterVec
}

// New initializes the Prometheus metrics. Callers that want the collectors
// exposed on a /metrics endpoint register them with an
// *prometheus.Registry of their choosing; this package does not register
// against prometheus.DefaultRegisterer itself.
func New() *Metrics {
	return &Metrics{
		OpCount: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "molecule_op_count",
				Help: "Number of build, sign and verify operations performed",
			},
			[]string{"op"},
		),
		OpLatency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "molecule_op_latency_seconds",
				Help:    "Latency of build, sign and verify operations",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"op"},
		),
		ErrCount: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "molecule_op_error_count",
				Help: "Number of build, sign and verify operations that returned an error",
			},
			[]string{"op"},
		),
	}
}

// Collectors returns the set of collectors a caller should register with
// a prometheus.Registerer.
func (m *Metrics) Collectors() []prometheus.Collector {
	return []prometheus.Collector{m.OpCount, m.OpLatency, m.ErrCount}
}

// ObserveOp records one occurrence of op taking durationSeconds, and
// increments the error counter for op when err is non-nil.
func (m *Metrics) ObserveOp(op string, durationSeconds float64, err error) {
	m.OpCount.WithLabelValues(op).Inc()
	m.OpLatency.WithLabelValues(op).Observe(durationSeconds)
	if err != nil {
		m.ErrCount.WithLabelValues(op).Inc()
	}
}
